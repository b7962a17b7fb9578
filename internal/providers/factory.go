package providers

import "fmt"

const (
	dashscopeDefaultBase  = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"
	dashscopeDefaultModel = "qwen3-max"
	openaiDefaultModel    = "gpt-4o-mini"
)

// New builds a provider by name. "openai" covers any compatible endpoint
// via apiBase; "dashscope" pre-fills Alibaba's compatible-mode defaults.
func New(name, apiKey, apiBase, model string) (Provider, error) {
	switch name {
	case "", "openai":
		if model == "" {
			model = openaiDefaultModel
		}
		return NewOpenAIProvider("openai", apiKey, apiBase, model), nil
	case "dashscope":
		if apiBase == "" {
			apiBase = dashscopeDefaultBase
		}
		if model == "" {
			model = dashscopeDefaultModel
		}
		return NewOpenAIProvider("dashscope", apiKey, apiBase, model), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", name)
	}
}
