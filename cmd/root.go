package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/codeassist/code-assistant/logger"
)

var (
	// Command line flags
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "code-assistant",
	Short: "Code Assistant - generate Python code with an LLM",
	Long: `Code Assistant turns a natural-language coding request into clean,
documented Python code using a hosted LLM completion endpoint, and reports
optional test results extracted from the response.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Initialize logger with the specified log level
		logger.Init(logLevel)
		logger.Debugf("Log level set to: %s", logLevel)

		// API keys may live in a local .env file
		if err := godotenv.Load(); err == nil {
			logger.Debug("Loaded environment from .env")
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		// Default behavior when no subcommands are provided
		cmd.Help()
	},
}

// Execute runs the root command and handles errors
func Execute() error {
	// Subcommands are added in their respective init() functions
	return rootCmd.Execute()
}

func init() {
	// Add persistent flags that will be available to all subcommands
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"Set the logging level (debug, info, warn, error, dpanic, panic, fatal)")
}

// apiKeyFromEnv resolves the completion credential from the environment.
func apiKeyFromEnv() string {
	for _, name := range []string{"GEMINI_API_KEY", "LLM_API_KEY"} {
		if key := os.Getenv(name); key != "" {
			return key
		}
	}
	return ""
}
