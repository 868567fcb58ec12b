package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"

	"github.com/codeassist/code-assistant/assistant"
)

// represents the current state of the TUI
type AppState int

const (
	StateAPIKey AppState = iota
	StateValidating
	StateReady
	StateGenerating
)

// Config wires the TUI to the session it drives.
type Config struct {
	Factory  assistant.ClientFactory
	Retry    assistant.RetryConfig
	Provider string
	Model    string
	// InitialKey prefills the credential field, typically from the
	// environment. It is still validated like a typed-in key.
	InitialKey string
}

// main TUI application model
type Model struct {
	state  AppState
	config Config
	width  int
	height int

	keyInput      textinput.Model
	queryInput    textinput.Model
	testcaseInput textinput.Model
	focused       int

	spinner  spinner.Model
	viewport viewport.Model
	markdown *glamour.TermRenderer

	session *assistant.Session
	output  *outputRecorder

	resultView string
	errMsg     string
	keyErr     string
}

// sent when credential validation completes
type credentialCheckedMsg struct {
	ok  bool
	out sessionOutput
}

// sent when a generation cycle completes
type generationDoneMsg struct {
	out sessionOutput
}
