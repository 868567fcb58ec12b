package llm

import (
	"github.com/codeassist/code-assistant/logger"
)

// probePrompt is the minimal input used to exercise a credential.
const probePrompt = "test input"

// Validate reports whether the client's credential is usable by issuing a
// single probe completion. Any failure, of any kind, counts as invalid;
// there is deliberately no retry and no distinction between a bad key and
// an unreachable service.
func Validate(client LLM) bool {
	resp := client.Prompt(Request{UserPrompt: probePrompt})
	if resp.Error != nil {
		logger.Debugf("Credential probe failed: %v", resp.Error)
		return false
	}
	return resp.Content != ""
}
