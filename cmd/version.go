package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codeassist/code-assistant/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the version of the code assistant`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Code Assistant v%s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
