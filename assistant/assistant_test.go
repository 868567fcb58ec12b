package assistant

import (
	"errors"
	"strings"
	"testing"

	"github.com/codeassist/code-assistant/llm"
	"github.com/codeassist/code-assistant/parser"
	"github.com/codeassist/code-assistant/prompt"
)

// recordingRenderer captures everything the session presents.
type recordingRenderer struct {
	code   []string
	text   []string
	errors []string
	infos  []string
}

func (r *recordingRenderer) RenderCode(code string) { r.code = append(r.code, code) }
func (r *recordingRenderer) RenderText(text string) { r.text = append(r.text, text) }
func (r *recordingRenderer) RenderError(msg string) { r.errors = append(r.errors, msg) }
func (r *recordingRenderer) RenderInfo(msg string)  { r.infos = append(r.infos, msg) }

func factoryFor(client llm.LLM) ClientFactory {
	return func(apiKey string) (llm.LLM, error) {
		return client, nil
	}
}

func noDelay() RetryConfig {
	return RetryConfig{MaxAttempts: 3, Delay: 0}
}

func TestSessionStartsAwaitingCredential(t *testing.T) {
	session := NewSession(factoryFor(&scriptedLLM{}), &recordingRenderer{}, noDelay())

	if session.State() != StateAwaitingCredential {
		t.Errorf("Expected initial state %v, got %v", StateAwaitingCredential, session.State())
	}
}

func TestSessionRejectsInvalidCredential(t *testing.T) {
	client := &scriptedLLM{responses: []llm.Response{
		{Error: errors.New("401 unauthorized")},
	}}
	renderer := &recordingRenderer{}
	session := NewSession(factoryFor(client), renderer, noDelay())

	if session.ProvideCredential("bad-key") {
		t.Error("Expected credential validation to fail")
	}
	if session.State() != StateCredentialInvalid {
		t.Errorf("Expected state %v, got %v", StateCredentialInvalid, session.State())
	}
	if len(renderer.errors) != 1 {
		t.Fatalf("Expected one rendered error, got %d", len(renderer.errors))
	}
	if client.calls != 1 {
		t.Errorf("Expected a single probe call with no retry, got %d", client.calls)
	}
}

func TestSessionAcceptsValidCredential(t *testing.T) {
	client := &scriptedLLM{responses: []llm.Response{
		{Content: "probe ok"},
	}}
	session := NewSession(factoryFor(client), &recordingRenderer{}, noDelay())

	if !session.ProvideCredential("good-key") {
		t.Fatal("Expected credential validation to succeed")
	}
	if session.State() != StateReady {
		t.Errorf("Expected state %v, got %v", StateReady, session.State())
	}
}

func TestSessionCanRecoverFromInvalidCredential(t *testing.T) {
	client := &scriptedLLM{responses: []llm.Response{
		{Error: errors.New("401 unauthorized")},
		{Content: "probe ok"},
	}}
	session := NewSession(factoryFor(client), &recordingRenderer{}, noDelay())

	session.ProvideCredential("bad-key")
	if !session.ProvideCredential("good-key") {
		t.Fatal("Expected the resupplied credential to validate")
	}
	if session.State() != StateReady {
		t.Errorf("Expected state %v, got %v", StateReady, session.State())
	}
}

func TestSessionIgnoresEmptyRequirement(t *testing.T) {
	client := &scriptedLLM{responses: []llm.Response{
		{Content: "probe ok"},
	}}
	renderer := &recordingRenderer{}
	session := NewSession(factoryFor(client), renderer, noDelay())
	session.ProvideCredential("good-key")

	session.Submit(Query{Requirement: ""})

	if session.State() != StateReady {
		t.Errorf("Expected session to stay %v, got %v", StateReady, session.State())
	}
	if client.calls != 1 {
		t.Errorf("Expected no completion call beyond the probe, got %d calls", client.calls)
	}
	if len(renderer.code)+len(renderer.text)+len(renderer.errors) != 0 {
		t.Error("Expected an empty requirement to render nothing")
	}
}

func TestSessionIgnoresQueriesBeforeCredential(t *testing.T) {
	client := &scriptedLLM{}
	session := NewSession(factoryFor(client), &recordingRenderer{}, noDelay())

	session.Submit(Query{Requirement: "Reverse a string"})

	if client.calls != 0 {
		t.Errorf("Expected no completion calls before a credential, got %d", client.calls)
	}
}

func TestSessionEndToEndHidesNoneTestResults(t *testing.T) {
	client := &scriptedLLM{responses: []llm.Response{
		{Content: "probe ok"},
		{Content: "[CODE]\ndef is_palindrome(s: str) -> bool:\n    return s == s[::-1]\n[END CODE]\n" +
			"[TEST RESULTS]\nNone\n[END TEST RESULTS]"},
	}}
	renderer := &recordingRenderer{}
	session := NewSession(factoryFor(client), renderer, noDelay())
	session.ProvideCredential("good-key")

	session.Submit(Query{Requirement: "Check if a string is a palindrome", Testcases: ""})

	if client.calls != 2 {
		t.Fatalf("Expected probe plus one completion call, got %d", client.calls)
	}
	// The empty testcases field is replaced by the sentinel in the prompt.
	if !strings.Contains(client.lastReq.UserPrompt, prompt.NoTestcases) {
		t.Error("Expected the prompt to contain the no-testcases sentinel")
	}
	if !strings.Contains(client.lastReq.UserPrompt, "Check if a string is a palindrome") {
		t.Error("Expected the prompt to contain the requirement verbatim")
	}
	if len(renderer.code) != 1 || !strings.Contains(renderer.code[0], "is_palindrome") {
		t.Errorf("Expected the extracted code to be rendered, got %v", renderer.code)
	}
	// "None" test results are hidden from rendering.
	if len(renderer.text) != 0 {
		t.Errorf("Expected no test results rendered, got %v", renderer.text)
	}
	if session.State() != StateReady {
		t.Errorf("Expected session back in %v, got %v", StateReady, session.State())
	}
}

func TestSessionRendersTestResultsWhenPresent(t *testing.T) {
	client := &scriptedLLM{responses: []llm.Response{
		{Content: "probe ok"},
		{Content: "[CODE]\nprint(1)\n[END CODE]\n" +
			"[TEST RESULTS]\nInput: 'abba'\nExpected: True\nResult: True\nStatus: PASS\n[END TEST RESULTS]"},
	}}
	renderer := &recordingRenderer{}
	session := NewSession(factoryFor(client), renderer, noDelay())
	session.ProvideCredential("good-key")

	session.Submit(Query{
		Requirement: "Check if a string is a palindrome",
		Testcases:   "is_palindrome('abba') == True",
	})

	if len(renderer.text) != 1 || !strings.Contains(renderer.text[0], "Status: PASS") {
		t.Errorf("Expected test results to be rendered, got %v", renderer.text)
	}
}

func TestSessionReportsRetryExhaustion(t *testing.T) {
	client := &scriptedLLM{responses: []llm.Response{
		{Content: "probe ok"},
		{Error: errors.New("boom")},
		{Error: errors.New("boom")},
		{Error: errors.New("boom")},
	}}
	renderer := &recordingRenderer{}
	session := NewSession(factoryFor(client), renderer, noDelay())
	session.ProvideCredential("good-key")

	session.Submit(Query{Requirement: "Reverse a string"})

	if client.calls != 4 {
		t.Errorf("Expected probe plus exactly 3 attempts, got %d calls", client.calls)
	}
	if len(renderer.errors) != 1 || !strings.Contains(renderer.errors[0], "after 3 attempts") {
		t.Errorf("Expected a rendered exhaustion error, got %v", renderer.errors)
	}
	if len(renderer.code) != 0 {
		t.Error("Expected no code rendered when the invoker yields no response")
	}
	if session.State() != StateReady {
		t.Errorf("Expected session back in %v for the next query, got %v", StateReady, session.State())
	}
}

func TestSessionDegradesToCodeSentinel(t *testing.T) {
	client := &scriptedLLM{responses: []llm.Response{
		{Content: "probe ok"},
		{Content: "prose with no markers at all"},
	}}
	renderer := &recordingRenderer{}
	session := NewSession(factoryFor(client), renderer, noDelay())
	session.ProvideCredential("good-key")

	session.Submit(Query{Requirement: "Reverse a string"})

	if len(renderer.code) != 1 || renderer.code[0] != parser.NoCodeFound {
		t.Errorf("Expected the %q sentinel to be rendered, got %v", parser.NoCodeFound, renderer.code)
	}
	if len(renderer.errors) != 0 {
		t.Errorf("Expected parsing degradation to not be an error, got %v", renderer.errors)
	}
}

// panicLLM simulates a malformed-internal-state failure during invocation.
type panicLLM struct {
	probed bool
}

func (p *panicLLM) Prompt(req llm.Request) llm.Response {
	if !p.probed {
		p.probed = true
		return llm.Response{Content: "probe ok"}
	}
	panic("malformed internal state")
}

func TestSessionRecoversFromPanics(t *testing.T) {
	renderer := &recordingRenderer{}
	session := NewSession(factoryFor(&panicLLM{}), renderer, noDelay())
	session.ProvideCredential("good-key")

	session.Submit(Query{Requirement: "Reverse a string"})

	if len(renderer.errors) != 1 || !strings.Contains(renderer.errors[0], "Unexpected error") {
		t.Errorf("Expected a rendered unexpected-error message, got %v", renderer.errors)
	}
	if session.State() != StateReady {
		t.Errorf("Expected session to survive the panic in %v, got %v", StateReady, session.State())
	}
}
