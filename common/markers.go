package common

// Marker tags segmenting a free-text completion into structured fields.
// They are the wire contract between the prompt template and the response
// parser: both sides consume these constants, never their own literals.
const (
	CodeStart        = "[CODE]"
	CodeEnd          = "[END CODE]"
	TestResultsStart = "[TEST RESULTS]"
	TestResultsEnd   = "[END TEST RESULTS]"
)
