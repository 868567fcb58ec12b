package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/codeassist/code-assistant/assistant"
)

// validateCredential runs the session's credential probe off the UI loop.
func validateCredential(session *assistant.Session, output *outputRecorder, apiKey string) tea.Cmd {
	return func() tea.Msg {
		ok := session.ProvideCredential(apiKey)
		return credentialCheckedMsg{ok: ok, out: output.take()}
	}
}

// submitQuery runs one query through the session off the UI loop. The
// inputs stay locked until the resulting message arrives, so exactly one
// query is in flight at a time.
func submitQuery(session *assistant.Session, output *outputRecorder, q assistant.Query) tea.Cmd {
	return func() tea.Msg {
		session.Submit(q)
		return generationDoneMsg{out: output.take()}
	}
}
