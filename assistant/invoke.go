package assistant

import (
	"fmt"
	"time"

	"github.com/codeassist/code-assistant/llm"
	"github.com/codeassist/code-assistant/logger"
)

// RetryConfig bounds the invoker's recovery policy. The delay is constant
// between attempts; there is no backoff growth.
type RetryConfig struct {
	MaxAttempts int
	Delay       time.Duration
}

// DefaultRetryConfig returns the stock invoker policy.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		Delay:       2 * time.Second,
	}
}

// InvokeWithRetry sends the request, retrying on any failure until the
// attempt budget runs out. The first successful attempt's content is
// returned as-is; exhaustion yields an error rather than a panic. This is
// the only place in the pipeline with a recovery policy.
func InvokeWithRetry(client llm.LLM, req llm.Request, cfg RetryConfig) (string, error) {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		resp := client.Prompt(req)
		if resp.Error == nil {
			return resp.Content, nil
		}

		lastErr = resp.Error
		logger.Warnf("Completion attempt %d/%d failed: %v", attempt, cfg.MaxAttempts, resp.Error)
		if attempt < cfg.MaxAttempts {
			time.Sleep(cfg.Delay)
		}
	}

	return "", fmt.Errorf("completion failed after %d attempts: %w", cfg.MaxAttempts, lastErr)
}
