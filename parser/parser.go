package parser

import (
	"regexp"
	"strings"

	"github.com/codeassist/code-assistant/common"
	"github.com/codeassist/code-assistant/logger"
)

// NoCodeFound is the sentinel used when the response carries no code section.
const NoCodeFound = "No code found."

// Patterns are built from the shared marker constants so the prompt and the
// parser can never drift apart. (?s) lets the sections span newlines.
var (
	codePattern = regexp.MustCompile(`(?s)` +
		regexp.QuoteMeta(common.CodeStart) + `(.*?)` + regexp.QuoteMeta(common.CodeEnd))
	testResultsPattern = regexp.MustCompile(`(?s)` +
		regexp.QuoteMeta(common.TestResultsStart) + `(.*?)` + regexp.QuoteMeta(common.TestResultsEnd))
)

// Result holds the two sections extracted from a completion.
type Result struct {
	Code        string
	TestResults string
}

// Parse extracts the code and test-results sections from raw completion
// text. The completion service is not contractually bound to obey the
// requested format, so a missing section degrades to a sentinel value and a
// log warning, never to an error. The two extractions are independent.
func Parse(response string) Result {
	result := Result{
		Code: NoCodeFound,
	}

	if m := codePattern.FindStringSubmatch(response); m != nil {
		result.Code = strings.TrimSpace(m[1])
	} else {
		logger.Warnf("Completion response contained no %s section", common.CodeStart)
	}

	if m := testResultsPattern.FindStringSubmatch(response); m != nil {
		result.TestResults = strings.TrimSpace(m[1])
	}

	return result
}

// HasTestResults reports whether there is anything worth presenting. The
// prompt asks the model to write the literal "None" when no testcases were
// supplied, and an entirely absent section parses to ""; both mean the same
// thing to a viewer.
func (r Result) HasTestResults() bool {
	return r.TestResults != "" && r.TestResults != "None"
}
