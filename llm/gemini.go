package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/codeassist/code-assistant/common"
	"github.com/codeassist/code-assistant/logger"
	"google.golang.org/genai"
)

// GeminiModel implements the LLM interface using the Gemini Developer API
type GeminiModel struct {
	client     *genai.Client
	modelName  string
	maxTokens  int
	apiTimeout int // in seconds
}

// NewGemini creates a new Gemini client
func NewGemini(apiKey string, opts ...Option) (*GeminiModel, error) {
	if apiKey == "" {
		errMsg := "Gemini API key cannot be empty"
		logger.Error(errMsg)
		return nil, errors.New(errMsg)
	}

	retryClient := common.NewRetryableClient(common.DefaultRetryConfig())

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: retryClient.StandardClient(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := &GeminiModel{
		client:     client,
		modelName:  "gemini-1.5-pro",
		maxTokens:  4000,
		apiTimeout: 60,
	}

	for _, opt := range opts {
		switch opt.Type {
		case ModelNameOption:
			if modelName, ok := opt.Value.(string); ok {
				model.modelName = modelName
			}
		case MaxTokensOption:
			if maxTokens, ok := opt.Value.(int); ok {
				model.maxTokens = maxTokens
			}
		case APITimeoutOption:
			if timeout, ok := opt.Value.(int); ok {
				model.apiTimeout = timeout
			}
		}
	}

	logger.Debugf("Gemini client initialized with model: %s, max tokens: %d, timeout: %d seconds",
		model.modelName, model.maxTokens, model.apiTimeout)

	return model, nil
}

// Prompt sends a request to Gemini and returns the response
func (g *GeminiModel) Prompt(req Request) Response {
	logger.Debugf("Sending prompt to Gemini model: %s", g.modelName)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(g.apiTimeout)*time.Second)
	defer cancel()

	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.2),
	}
	if req.SystemPrompt != "" {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.SystemPrompt}},
		}
	}
	if g.maxTokens > 0 {
		cfg.MaxOutputTokens = int32(g.maxTokens)
	}

	res, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(req.UserPrompt), cfg)
	if err != nil {
		errMsg := fmt.Sprintf("failed to generate content: %v", err)
		logger.Error(errMsg)
		return Response{
			Error: errors.New(errMsg),
		}
	}

	content := textFromCandidates(res)
	if content == "" {
		errMsg := "Gemini response contained no text parts"
		logger.Error(errMsg)
		return Response{
			Error: errors.New(errMsg),
		}
	}

	return Response{
		Content: content,
	}
}

func textFromCandidates(res *genai.GenerateContentResponse) string {
	if res == nil || len(res.Candidates) == 0 || res.Candidates[0].Content == nil {
		return ""
	}

	var text string
	for _, p := range res.Candidates[0].Content.Parts {
		if p.Text == "" {
			continue
		}
		if text == "" {
			text = p.Text
		} else {
			text += "\n" + p.Text
		}
	}
	return text
}
