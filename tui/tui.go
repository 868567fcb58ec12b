package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/codeassist/code-assistant/assistant"
	"github.com/codeassist/code-assistant/logger"
)

// NewApp builds the single-page assistant UI: a masked credential field
// gating a query form, with results rendered below the form.
func NewApp(config Config) *Model {
	keyInput := textinput.New()
	keyInput.Placeholder = "Enter your API key"
	keyInput.EchoMode = textinput.EchoPassword
	keyInput.EchoCharacter = '•'
	keyInput.Prompt = "> "
	keyInput.Width = 60
	keyInput.Focus()
	if config.InitialKey != "" {
		keyInput.SetValue(config.InitialKey)
	}

	queryInput := textinput.New()
	queryInput.Placeholder = "e.g., Check if a string is a palindrome"
	queryInput.Prompt = "> "
	queryInput.Width = 72

	testcaseInput := textinput.New()
	testcaseInput.Placeholder = "Sample valid testcases (optional)"
	testcaseInput.Prompt = "> "
	testcaseInput.Width = 72

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorPink)

	markdown, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(96),
	)
	if err != nil {
		logger.Debugf("Markdown renderer unavailable: %v", err)
		markdown = nil
	}

	output := &outputRecorder{}

	return &Model{
		state:         StateAPIKey,
		config:        config,
		keyInput:      keyInput,
		queryInput:    queryInput,
		testcaseInput: testcaseInput,
		spinner:       sp,
		viewport:      viewport.New(80, 20),
		markdown:      markdown,
		session:       assistant.NewSession(config.Factory, output, config.Retry),
		output:        output,
	}
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = max(msg.Height-16, 5)
		return m, nil

	case credentialCheckedMsg:
		if msg.ok {
			m.state = StateReady
			m.keyErr = ""
			m.queryInput.Focus()
			m.focused = 0
			return m, textinput.Blink
		}
		m.state = StateAPIKey
		m.keyErr = firstError(msg.out, "Invalid API Key. Please try again.")
		m.keyInput.Focus()
		return m, textinput.Blink

	case generationDoneMsg:
		m.state = StateReady
		m.presentOutput(msg.out)
		m.queryInput.Focus()
		m.focused = 0
		return m, textinput.Blink

	case spinner.TickMsg:
		if m.state == StateValidating || m.state == StateGenerating {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch m.state {
	case StateAPIKey:
		return m.updateAPIKey(msg)
	case StateReady:
		return m.updateReady(msg)
	default:
		return m, nil
	}
}

func (m *Model) updateAPIKey(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		apiKey := strings.TrimSpace(m.keyInput.Value())
		if apiKey == "" {
			m.keyErr = "Please enter your API key to start."
			return m, nil
		}
		m.state = StateValidating
		m.keyErr = ""
		return m, tea.Batch(
			m.spinner.Tick,
			validateCredential(m.session, m.output, apiKey),
		)
	}

	var cmd tea.Cmd
	m.keyInput, cmd = m.keyInput.Update(msg)
	return m, cmd
}

func (m *Model) updateReady(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "shift+tab":
			m.toggleFocus()
			return m, textinput.Blink

		case "enter":
			requirement := strings.TrimSpace(m.queryInput.Value())
			if requirement == "" {
				// An empty query is a no-op, matching the session.
				return m, nil
			}
			m.state = StateGenerating
			m.errMsg = ""
			q := assistant.Query{
				Requirement: requirement,
				Testcases:   strings.TrimSpace(m.testcaseInput.Value()),
			}
			return m, tea.Batch(
				m.spinner.Tick,
				submitQuery(m.session, m.output, q),
			)
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.queryInput, cmd = m.queryInput.Update(msg)
	cmds = append(cmds, cmd)
	m.testcaseInput, cmd = m.testcaseInput.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *Model) toggleFocus() {
	if m.focused == 0 {
		m.focused = 1
		m.queryInput.Blur()
		m.testcaseInput.Focus()
	} else {
		m.focused = 0
		m.testcaseInput.Blur()
		m.queryInput.Focus()
	}
}

// presentOutput folds one cycle of session output into the result view.
func (m *Model) presentOutput(out sessionOutput) {
	if len(out.errors) > 0 {
		m.errMsg = strings.Join(out.errors, "\n")
		return
	}

	var b strings.Builder
	b.WriteString(sectionStyle.Render("Generated Code:"))
	b.WriteString("\n")
	b.WriteString(m.renderCode(out.code))
	if out.text != "" {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render("Test Results:"))
		b.WriteString("\n")
		b.WriteString(out.text)
		b.WriteString("\n")
	}

	m.resultView = b.String()
	m.viewport.SetContent(m.resultView)
	m.viewport.GotoTop()
}

func (m *Model) renderCode(code string) string {
	if m.markdown != nil {
		fenced := "```python\n" + code + "\n```"
		if out, err := m.markdown.Render(fenced); err == nil {
			return out
		}
	}
	return code + "\n"
}

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Python Code Assistant"))
	b.WriteString("\n")

	switch m.state {
	case StateAPIKey:
		b.WriteString(labelStyle.Render("API Key"))
		b.WriteString("\n")
		b.WriteString(m.keyInput.View())
		b.WriteString("\n\n")
		if m.keyErr != "" {
			b.WriteString(errorStyle.Render(m.keyErr))
		} else {
			b.WriteString(infoStyle.Render("Please enter your API key to start."))
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("press enter to validate. press ctrl+c to quit."))

	case StateValidating:
		b.WriteString(m.spinner.View())
		b.WriteString(infoStyle.Render(" Validating API key..."))

	case StateReady, StateGenerating:
		b.WriteString(readyStyle.Render("Provider: " + m.config.Provider + " · Model: " + m.config.Model))
		b.WriteString("\n\n")
		b.WriteString(labelStyle.Render("Query"))
		b.WriteString("\n")
		b.WriteString(m.queryInput.View())
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Testcases (Optional)"))
		b.WriteString("\n")
		b.WriteString(m.testcaseInput.View())
		b.WriteString("\n")

		if m.state == StateGenerating {
			b.WriteString("\n")
			b.WriteString(m.spinner.View())
			b.WriteString(infoStyle.Render(" Generating..."))
			b.WriteString("\n")
		} else if m.errMsg != "" {
			b.WriteString("\n")
			b.WriteString(errorStyle.Render(m.errMsg))
			b.WriteString("\n")
		} else if m.resultView != "" {
			b.WriteString("\n")
			b.WriteString(resultBorderStyle.Render(m.viewport.View()))
			b.WriteString("\n")
		}

		b.WriteString(helpStyle.Render("tab to switch fields · enter to generate · ctrl+c to quit"))
	}

	return b.String()
}

func firstError(out sessionOutput, fallback string) string {
	if len(out.errors) > 0 {
		return out.errors[0]
	}
	return fallback
}
