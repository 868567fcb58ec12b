package tui

import "sync"

// sessionOutput is one cycle's worth of presentation calls.
type sessionOutput struct {
	code   string
	text   string
	errors []string
	infos  []string
}

// outputRecorder implements assistant.Renderer by collecting what the
// session would present, so the Update loop can fold it into the view.
// The session runs inside a tea.Cmd goroutine, hence the lock.
type outputRecorder struct {
	mu  sync.Mutex
	out sessionOutput
}

func (r *outputRecorder) RenderCode(code string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.out.code = code
}

func (r *outputRecorder) RenderText(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.out.text = text
}

func (r *outputRecorder) RenderError(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.out.errors = append(r.out.errors, msg)
}

func (r *outputRecorder) RenderInfo(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.out.infos = append(r.out.infos, msg)
}

// take returns the collected output and resets the recorder for the next
// cycle.
func (r *outputRecorder) take() sessionOutput {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.out
	r.out = sessionOutput{}
	return out
}
