package common

import (
	"fmt"
)

// LexError is returned when the input contains a rune the lexer cannot place.
type LexError struct {
	Message string
}

func (le LexError) Error() string {
	return fmt.Sprintf("%s", le.Message)
}

// NewLexError creates a new instance of LexError with the given message.
func NewLexError(message string) LexError {
	return LexError{
		Message: message,
	}
}

// ParseError is returned when the token sequence doesn't form a valid expression.
type ParseError struct {
	Message string
}

func (pe ParseError) Error() string {
	return fmt.Sprintf("%s", pe.Message)
}

// NewParseError creates a new instance of ParseError with the given message.
func NewParseError(message string) ParseError {
	return ParseError{
		Message: message,
	}
}

// EvaluationError is returned when an expression cannot be evaluated under the
// given variable binding.
type EvaluationError struct {
	Message string
}

func (ee EvaluationError) Error() string {
	return fmt.Sprintf("%s", ee.Message)
}

// NewEvaluationError creates a new instance of EvaluationError with the given message.
func NewEvaluationError(message string) EvaluationError {
	return EvaluationError{
		Message: message,
	}
}

// DivisionByZeroError is returned when a division's divisor evaluates to zero.
type DivisionByZeroError struct {
	Message string
}

func (de DivisionByZeroError) Error() string {
	return fmt.Sprintf("%s", de.Message)
}

// NewDivisionByZeroError creates a new instance of DivisionByZeroError with the given message.
func NewDivisionByZeroError(message string) DivisionByZeroError {
	return DivisionByZeroError{
		Message: message,
	}
}
