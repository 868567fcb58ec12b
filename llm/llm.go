package llm

import (
	"fmt"
)

// Supported completion providers
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)

// OptionType defines the type of option
type OptionType string

// Available option types
const (
	ModelNameOption  OptionType = "model"
	MaxTokensOption  OptionType = "max_tokens"
	APITimeoutOption OptionType = "api_timeout"
)

// Option represents a generic configuration option for any LLM provider
type Option struct {
	Type  OptionType
	Value any
}

// WithModel creates an option to set the model name
func WithModel(model string) Option {
	return Option{
		Type:  ModelNameOption,
		Value: model,
	}
}

// WithMaxTokens creates an option to set the max tokens
func WithMaxTokens(maxTokens int) Option {
	return Option{
		Type:  MaxTokensOption,
		Value: maxTokens,
	}
}

// WithAPITimeout creates an option to set the API timeout in seconds
func WithAPITimeout(timeout int) Option {
	return Option{
		Type:  APITimeoutOption,
		Value: timeout,
	}
}

// Request represents the data needed to prompt the LLM
type Request struct {
	SystemPrompt string
	UserPrompt   string
}

// Response represents the response from the LLM
type Response struct {
	Content string
	Error   error
}

// LLM defines the interface for language model prompting
type LLM interface {
	// Prompt sends a request to the language model and returns its response
	Prompt(req Request) Response
}

// NewLLM creates a client for the named provider. The credential is
// supplied by the caller and lives in memory only.
func NewLLM(providerName, apiKey, modelName string, opts ...Option) (LLM, error) {
	options := []Option{
		WithMaxTokens(4000),
		WithAPITimeout(60),
	}
	if modelName != "" {
		options = append(options, WithModel(modelName))
	}
	options = append(options, opts...)

	switch providerName {
	case ProviderOpenAI:
		return NewOpenAI(apiKey, options...)
	case ProviderAnthropic:
		return NewAnthropic(apiKey, options...)
	case ProviderGemini:
		return NewGemini(apiKey, options...)
	}

	return nil, fmt.Errorf("unsupported provider: %s", providerName)
}
