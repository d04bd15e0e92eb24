package regexlib

import "fmt"

// SyntaxError reports malformed expression text. Column is 1-based and
// counts runes.
type SyntaxError struct {
	Column  int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("[col %d] %s", e.Column, e.Message)
}

// InvariantError is the panic value raised when a tree reaches a pass in a
// shape the constructors should have made impossible. It signals a bug in
// this package, never bad input.
type InvariantError struct {
	Message string
}

func (e *InvariantError) Error() string { return "regexlib: invariant violated: " + e.Message }

func invariant(cond bool, format string, args ...any) {
	if !cond {
		panic(&InvariantError{Message: fmt.Sprintf(format, args...)})
	}
}
