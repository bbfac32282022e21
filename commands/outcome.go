package commands

import "fmt"

// OutcomeKind distinguishes the three results a command can have.
type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeFailure
	OutcomeTerminate
)

// Outcome is the result of running a builtin or external command. The code
// is informational only: it is recorded in the event log and never becomes
// the interpreter's own exit status.
type Outcome struct {
	Kind OutcomeKind
	Code int
}

// Success reports that a command completed with the given code.
func Success(code int) Outcome {
	return Outcome{Kind: OutcomeSuccess, Code: code}
}

// Failure reports that a command failed with the given code.
func Failure(code int) Outcome {
	return Outcome{Kind: OutcomeFailure, Code: code}
}

// Terminate asks the session to end.
func Terminate() Outcome {
	return Outcome{Kind: OutcomeTerminate}
}

// IsTerminate reports whether the session should end.
func (o Outcome) IsTerminate() bool {
	return o.Kind == OutcomeTerminate
}

func (o Outcome) String() string {
	switch o.Kind {
	case OutcomeSuccess:
		return fmt.Sprintf("success(%d)", o.Code)
	case OutcomeFailure:
		return fmt.Sprintf("failure(%d)", o.Code)
	case OutcomeTerminate:
		return "terminate"
	default:
		return fmt.Sprintf("outcome(%d)", o.Kind)
	}
}
