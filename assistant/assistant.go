package assistant

import (
	"fmt"

	"github.com/codeassist/code-assistant/llm"
	"github.com/codeassist/code-assistant/logger"
	"github.com/codeassist/code-assistant/parser"
	"github.com/codeassist/code-assistant/prompt"
)

// State models the session lifecycle. A session is gated until a credential
// validates, then cycles through the query pipeline and back to Ready.
type State int

const (
	StateAwaitingCredential State = iota
	StateValidatingCredential
	StateCredentialInvalid
	StateReady
	StateBuildingPrompt
	StateInvoking
	StateParsing
	StatePresenting
)

func (s State) String() string {
	switch s {
	case StateAwaitingCredential:
		return "awaiting-credential"
	case StateValidatingCredential:
		return "validating-credential"
	case StateCredentialInvalid:
		return "credential-invalid"
	case StateReady:
		return "ready"
	case StateBuildingPrompt:
		return "building-prompt"
	case StateInvoking:
		return "invoking"
	case StateParsing:
		return "parsing"
	case StatePresenting:
		return "presenting"
	}
	return "unknown"
}

// Query is one user request: a requirement and optional testcases.
type Query struct {
	Requirement string
	Testcases   string
}

// Renderer is the presentation layer the session reports into. All methods
// are side-effecting sinks.
type Renderer interface {
	RenderCode(code string)
	RenderText(text string)
	RenderError(msg string)
	RenderInfo(msg string)
}

// ClientFactory builds an LLM client for a credential. Injected so tests
// can substitute fakes without touching a live service.
type ClientFactory func(apiKey string) (llm.LLM, error)

// Session drives one credential-gated request/response loop. It is not safe
// for concurrent use; exactly one query is processed end-to-end at a time.
type Session struct {
	state     State
	client    llm.LLM
	newClient ClientFactory
	retry     RetryConfig
	renderer  Renderer
}

// NewSession creates a session awaiting its credential.
func NewSession(factory ClientFactory, renderer Renderer, retry RetryConfig) *Session {
	return &Session{
		state:     StateAwaitingCredential,
		newClient: factory,
		retry:     retry,
		renderer:  renderer,
	}
}

// State returns the session's current state.
func (s *Session) State() State {
	return s.state
}

// ProvideCredential validates the supplied credential with a single live
// probe and gates the session on the outcome. A failed validation is not
// retried; the caller must resupply a credential.
func (s *Session) ProvideCredential(apiKey string) bool {
	s.state = StateValidatingCredential

	client, err := s.newClient(apiKey)
	if err == nil && llm.Validate(client) {
		s.client = client
		s.state = StateReady
		logger.Debug("Credential validated, session ready")
		return true
	}

	s.client = nil
	s.state = StateCredentialInvalid
	s.renderer.RenderError("Invalid API Key. Please try again.")
	return false
}

// Submit runs one query through the pipeline: build prompt, invoke with
// retry, parse, present. Every failure path ends in a rendered message and
// a return to Ready; nothing propagates past this boundary.
func (s *Session) Submit(q Query) {
	if s.state != StateReady {
		logger.Warnf("Query submitted while session is %s, ignoring", s.state)
		return
	}

	// An empty requirement never leaves Ready.
	if q.Requirement == "" {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			s.renderer.RenderError(fmt.Sprintf("Unexpected error: %v", r))
		}
		s.state = StateReady
	}()

	s.state = StateBuildingPrompt
	req := llm.Request{
		SystemPrompt: prompt.GetSystemPrompt(),
		UserPrompt:   prompt.GetGeneratePrompt(q.Requirement, q.Testcases),
	}

	s.state = StateInvoking
	response, err := InvokeWithRetry(s.client, req, s.retry)
	if err != nil {
		s.renderer.RenderError(fmt.Sprintf("Failed to process the query: %v", err))
		return
	}

	s.state = StateParsing
	result := parser.Parse(response)

	s.state = StatePresenting
	s.renderer.RenderCode(result.Code)
	if result.HasTestResults() {
		s.renderer.RenderText(result.TestResults)
	}
}
