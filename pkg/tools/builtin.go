package tools

// Builtin returns the full tool set wired to svc.
func Builtin(svc Service) []*Tool {
	return []*Tool{
		NewSearchTool(svc),
		NewQuestionTool(svc),
		NewTagSearchTool(svc),
	}
}

// NewBuiltinRegistry builds a registry containing every builtin tool.
func NewBuiltinRegistry(svc Service) *Registry {
	reg := NewRegistry()
	for _, tool := range Builtin(svc) {
		reg.Register(tool)
	}
	return reg
}
