package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/codeassist/code-assistant/assistant"
	"github.com/codeassist/code-assistant/common"
	"github.com/codeassist/code-assistant/llm"
	"github.com/codeassist/code-assistant/render"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate code for a requirement",
	Long: `Generate Python code for a natural-language requirement in one shot.
The credential is validated with a single probe call, the completion is
retried on transient failures, and the parsed code plus any test results
are rendered to the terminal.`,
	Run: func(cmd *cobra.Command, args []string) {
		settings := common.WithYamlFile()
		provider, model, retry := resolveCompletionFlags(cmd, settings)

		renderer := render.NewTerminal()

		requirement, _ := cmd.Flags().GetString("query")
		if strings.TrimSpace(requirement) == "" {
			renderer.RenderError("A non-empty query is required. Use -q to supply one.")
			return
		}
		testcases, _ := cmd.Flags().GetString("testcases")

		apiKey := apiKeyFromEnv()
		if apiKey == "" {
			renderer.RenderError("No API key found. Set GEMINI_API_KEY or LLM_API_KEY.")
			return
		}

		session := assistant.NewSession(clientFactory(provider, model, settings), renderer, retry)
		if !session.ProvideCredential(apiKey) {
			return
		}

		renderer.RenderInfo(fmt.Sprintf("Using LLM Provider: %s", provider))
		renderer.RenderInfo(fmt.Sprintf("With Model: %s", model))

		session.Submit(assistant.Query{
			Requirement: strings.TrimSpace(requirement),
			Testcases:   strings.TrimSpace(testcases),
		})
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP("query", "q", "", "The coding requirement to generate code for")
	generateCmd.Flags().StringP("testcases", "t", "", "Testcases the generated code should satisfy (optional)")
	addCompletionFlags(generateCmd)
}

// addCompletionFlags registers the flags shared by commands that talk to
// the completion service.
func addCompletionFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("provider", "p", "", "LLM provider to use (gemini, openai, anthropic)")
	cmd.Flags().StringP("model", "m", "", "LLM model to use")
	cmd.Flags().Int("max-attempts", 0, "Maximum completion attempts per query")
	cmd.Flags().Int("retry-delay", -1, "Seconds to wait between attempts")
}

// resolveCompletionFlags overlays command flags on the settings file.
func resolveCompletionFlags(cmd *cobra.Command, settings common.Settings) (string, string, assistant.RetryConfig) {
	provider, _ := cmd.Flags().GetString("provider")
	if provider == "" {
		provider = settings.Completion.Provider
	}
	model, _ := cmd.Flags().GetString("model")
	if model == "" {
		model = settings.Completion.Model
	}

	retry := assistant.RetryConfig{
		MaxAttempts: settings.Retry.MaxAttempts,
		Delay:       time.Duration(settings.Retry.DelaySeconds) * time.Second,
	}
	if maxAttempts, _ := cmd.Flags().GetInt("max-attempts"); maxAttempts > 0 {
		retry.MaxAttempts = maxAttempts
	}
	if delay, _ := cmd.Flags().GetInt("retry-delay"); delay >= 0 {
		retry.Delay = time.Duration(delay) * time.Second
	}

	return provider, model, retry
}

// clientFactory builds completion clients for the session, binding the
// provider and model up front and the credential at validation time.
func clientFactory(provider, model string, settings common.Settings) assistant.ClientFactory {
	return func(apiKey string) (llm.LLM, error) {
		return llm.NewLLM(provider, apiKey, model,
			llm.WithMaxTokens(settings.Completion.MaxTokens),
			llm.WithAPITimeout(settings.Completion.TimeoutSeconds),
		)
	}
}
