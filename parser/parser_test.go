package parser

import (
	"testing"
)

func TestParseRoundTrip(t *testing.T) {
	response := "[CODE]\nprint(1)\n[END CODE]\n[TEST RESULTS]\nNone\n[END TEST RESULTS]"

	result := Parse(response)
	if result.Code != "print(1)" {
		t.Errorf("Expected code %q, got %q", "print(1)", result.Code)
	}
	if result.TestResults != "None" {
		t.Errorf("Expected test results %q, got %q", "None", result.TestResults)
	}
}

func TestParseMissingCodeSection(t *testing.T) {
	result := Parse("The model wrote prose instead of following the format.")

	if result.Code != NoCodeFound {
		t.Errorf("Expected code sentinel %q, got %q", NoCodeFound, result.Code)
	}
	if result.TestResults != "" {
		t.Errorf("Expected empty test results, got %q", result.TestResults)
	}
}

func TestParseSectionsAreIndependent(t *testing.T) {
	// Test results survive a missing code section.
	result := Parse("[TEST RESULTS]\nInput: 'abba'\nStatus: PASS\n[END TEST RESULTS]")
	if result.Code != NoCodeFound {
		t.Errorf("Expected code sentinel, got %q", result.Code)
	}
	if result.TestResults != "Input: 'abba'\nStatus: PASS" {
		t.Errorf("Unexpected test results: %q", result.TestResults)
	}

	// Code survives a missing test-results section.
	result = Parse("[CODE]\ndef f():\n    return 1\n[END CODE]")
	if result.Code != "def f():\n    return 1" {
		t.Errorf("Unexpected code: %q", result.Code)
	}
	if result.TestResults != "" {
		t.Errorf("Expected empty test results, got %q", result.TestResults)
	}
}

func TestParseSpansNewlinesAndTrims(t *testing.T) {
	response := "Some preamble the model added anyway.\n" +
		"[CODE]\n\n\ndef is_palindrome(s: str) -> bool:\n    return s == s[::-1]\n\n[END CODE]\ntrailing text"

	result := Parse(response)
	if result.Code != "def is_palindrome(s: str) -> bool:\n    return s == s[::-1]" {
		t.Errorf("Expected trimmed multi-line code, got %q", result.Code)
	}
}

func TestParseUsesFirstMatch(t *testing.T) {
	response := "[CODE]first[END CODE]\n[CODE]second[END CODE]"

	result := Parse(response)
	if result.Code != "first" {
		t.Errorf("Expected first code section, got %q", result.Code)
	}
}

func TestHasTestResults(t *testing.T) {
	cases := []struct {
		testResults string
		want        bool
	}{
		{"", false},
		{"None", false},
		{"Input: 1\nStatus: PASS", true},
		{"Invalid testcase", true},
	}

	for _, c := range cases {
		r := Result{TestResults: c.testResults}
		if r.HasTestResults() != c.want {
			t.Errorf("HasTestResults(%q) = %v, want %v", c.testResults, !c.want, c.want)
		}
	}
}
