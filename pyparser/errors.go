package pyparser

import "fmt"

// ParseError is the base error type for parser failures.
type ParseError struct {
	Message string
	Line    int // 1-based
	Col     int // 0-based
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d, col %d: %s", e.Line, e.Col, e.Message)
	}
	return e.Message
}

// SyntaxError is the parser's sole hard failure, raised when an explicit
// expectation check fails. It carries the expected token type and the
// actual token with its position.
type SyntaxError struct {
	ParseError
	Expected TokenKind
	Got      Token
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d, col %d: expected %s, got %s (%q)",
		e.Got.Line, e.Got.Col, e.Expected, e.Got.Kind, e.Got.Text)
}

func newSyntaxError(expected TokenKind, got Token) *SyntaxError {
	return &SyntaxError{
		ParseError: ParseError{Line: got.Line, Col: got.Col},
		Expected:   expected,
		Got:        got,
	}
}
