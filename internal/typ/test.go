package typ

import "time"

// TestResult is the outcome of a single test run.
type TestResult string

const (
	TestResultSuccess TestResult = "success"
	TestResultFailure TestResult = "failure"
)

// Valid reports whether the result is a known outcome.
func (r TestResult) Valid() bool {
	switch r {
	case TestResultSuccess, TestResultFailure:
		return true
	}
	return false
}

// Test is one immutable evaluation run recorded against a bot.
type Test struct {
	ID         string     `json:"id"`
	BotID      string     `json:"botId"`
	Date       time.Time  `json:"date"`
	Result     TestResult `json:"result"`
	Conditions string     `json:"conditions,omitempty"`
}

// InsertTest is the input shape for recording a test run. ID and Date are
// assigned server-side.
type InsertTest struct {
	BotID      string     `json:"botId"`
	Result     TestResult `json:"result"`
	Conditions string     `json:"conditions"`
}
