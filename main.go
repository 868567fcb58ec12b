package main

import (
	"os"

	"github.com/codeassist/code-assistant/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
