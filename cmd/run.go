package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/codeassist/code-assistant/common"
	"github.com/codeassist/code-assistant/tui"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive assistant",
	Long: `Start the single-page interactive assistant. Enter an API key once per
session, then submit queries and optional testcases; generated code and
test results are rendered in place.`,
	Run: func(cmd *cobra.Command, args []string) {
		settings := common.WithYamlFile()
		provider, model, retry := resolveCompletionFlags(cmd, settings)

		app := tui.NewApp(tui.Config{
			Factory:    clientFactory(provider, model, settings),
			Retry:      retry,
			Provider:   provider,
			Model:      model,
			InitialKey: apiKeyFromEnv(),
		})

		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Printf("error running assistant: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	addCompletionFlags(runCmd)
}
