package render

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/codeassist/code-assistant/logger"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

// Terminal renders session output to stdout/stderr for one-shot commands.
type Terminal struct {
	markdown *glamour.TermRenderer
}

// NewTerminal creates a terminal renderer. Markdown rendering is best
// effort; when unavailable the code is printed as plain text.
func NewTerminal() *Terminal {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		logger.Debugf("Markdown renderer unavailable: %v", err)
		r = nil
	}
	return &Terminal{markdown: r}
}

// RenderCode prints generated code with syntax highlighting.
func (t *Terminal) RenderCode(code string) {
	fmt.Println(headerStyle.Render("Generated Code:"))
	if t.markdown != nil {
		fenced := "```python\n" + code + "\n```"
		if out, err := t.markdown.Render(fenced); err == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Println(code)
}

// RenderText prints test results.
func (t *Terminal) RenderText(text string) {
	fmt.Println(headerStyle.Render("Test Results:"))
	fmt.Println(text)
}

// RenderError prints a user-visible error to stderr.
func (t *Terminal) RenderError(msg string) {
	fmt.Fprintln(os.Stderr, errorStyle.Render(msg))
}

// RenderInfo prints an informational note.
func (t *Terminal) RenderInfo(msg string) {
	fmt.Println(infoStyle.Render(msg))
}
