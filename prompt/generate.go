package prompt

import (
	"github.com/codeassist/code-assistant/common"
)

// NoTestcases is substituted for the testcases field when the caller
// supplies none.
const NoTestcases = "No testcases provided"

// GetGeneratePrompt renders the completion request for one query. The
// requirement and testcases are substituted verbatim; the response shape is
// pinned to the shared marker tags so the parser can segment it.
func GetGeneratePrompt(requirement, testcases string) string {
	if testcases == "" {
		testcases = NoTestcases
	}

	return `Requirements: ` + requirement + `

Testcases: ` + testcases + `

Format your response exactly as follows:

` + common.CodeStart + `
<Write your Python code here>
` + common.CodeEnd + `

` + common.TestResultsStart + `
<Show test results if testcases provided>
<Return None if no testcases provided>
<If testcases provided are invalid return Invalid testcase>
` + common.TestResultsEnd + `

Important:
- If test cases are provided, show for each test:
  * Input: <actual input>
  * Expected: <expected output>
  * Result: <actual output>
  * Status: PASS/FAIL
- If no test cases are provided, only show the code section
- Don't explain the code unless specifically asked
- Don't show multiple solutions unless requested
- Don't add any text outside the specified format`
}
