package frontend

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

//
// This lexer is based on the design of the lexer in the Go template engine.
// For more check this presentation by Rob Pike: https://www.youtube.com/watch?v=HxaD_trXwRE
//

// item represents a single token
type item struct {
	typ itemType
	val string
}

// itemType is an expression token type
type itemType int

const (
	itemError itemType = iota
	itemEOF
	itemWhitespace

	// literals
	itemNumber
	itemVariable

	// symbols
	itemLeftParen  // '('
	itemRightParen // ')'

	// operators
	itemPlus     // '+'
	itemMinus    // '-'
	itemAsterisk // '*'
	itemSlash    // '/'
)

const eof = -1

// lexer is the expression lexer state machine responsible for tokenizing the input.
type lexer struct {
	name  string    // for error reporting
	input string    // the string being scanned right now
	start int       // start position of the current item
	pos   int       // current position in the input
	width int       // width of last token read from the input
	items chan item // channel of scanned items. tokens are emitted via this
}

// stateFn is a function that takes a lexer and returns the new stateFn
type stateFn func(*lexer) stateFn

// predFn is a function to do predicate based filtering/traversal
type predFn func(rune) bool

//
// Helper functions
//

// next returns the next rune in the input.
func (l *lexer) next() (r rune) {
	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	r, l.width =
		utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += l.width
	return r
}

// ignore skips over the pending input before this point.
func (l *lexer) ignore() {
	l.start = l.pos
}

// backup steps back one rune.
// Can be called only once per call of next.
func (l *lexer) backup() {
	l.pos -= l.width
}

// peek returns but does not consume
// the next rune in the input.
func (l *lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

// accept consumes the next rune
// if it's from the valid set.
func (l *lexer) accept(valid string) bool {
	if strings.ContainsRune(valid, l.next()) {
		return true
	}
	l.backup()
	return false
}

// acceptWhile consumes runes while the predFn returns true
// it returns the number of runes accepted
func (l *lexer) acceptWhile(p predFn) (count int) {
	for p(l.next()) {
		count++
	}
	l.backup()
	return count
}

// prevNonWhitespace returns the rune immediately before the current position,
// skipping whitespace. It returns false when the scan reaches the start of
// the input. The unary-minus heuristic depends on the previous raw character
// of the input, not on the previously emitted token.
func (l *lexer) prevNonWhitespace() (rune, bool) {
	s := l.input[:l.pos]
	for len(s) > 0 {
		r, size := utf8.DecodeLastRuneInString(s)
		if !isWhitespace(r) {
			return r, true
		}
		s = s[:len(s)-size]
	}

	return 0, false
}

// errorf returns an error token and terminates the scan by passing
// back a nil pointer that will be the next state, terminating l.nextItem.
func (l *lexer) errorf(format string, args ...interface{}) stateFn {
	l.items <- item{itemError, fmt.Sprintf(format, args...)}
	return nil
}

// emit passes an item back to the client.
func (l *lexer) emit(t itemType) {
	l.items <- item{t, l.input[l.start:l.pos]}
	l.start = l.pos
}

// run starts executing the state machine.
func (l *lexer) run() {
	for state := lexExpression; state != nil; {
		state = state(l)
	}

	close(l.items) // no more tokens
}

// isWhitespace checks if a rune is a whitespace
func isWhitespace(ch rune) bool { return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' }

// isDigit checks if the rune is a digit.
func isDigit(ch rune) bool { return (ch >= '0' && ch <= '9') }

// isNumberChar checks if the rune can appear inside a numeric literal.
func isNumberChar(ch rune) bool { return isDigit(ch) || ch == '.' }

// isOperator checks if the rune is one of the four operators.
func isOperator(ch rune) bool {
	return ch == '+' || ch == '-' || ch == '*' || ch == '/'
}

//
// Public functions used by the consumer of the lexer, in our case the parser.
//

// nextItem returns the next item from the input.
// Called by the parser, not in the lexing goroutine.
func (l *lexer) nextItem() item {
	return <-l.items
}

// drain consumes the remaining items so that the lexing goroutine runs to
// completion and closes the channel. Called by the parser when it stops
// reading before EOF. Returns immediately if the channel is already closed.
func (l *lexer) drain() {
	for range l.items {
	}
}

// newLexer creates a new lexer and starts the state machine
func newLexer(name, input string) (*lexer, chan item) {
	l := &lexer{
		name:  name,
		input: input,
		items: make(chan item),
	}
	go l.run() // Concurrently run state machine.
	return l, l.items
}

//
// State functions - Internal
//

func lexExpression(l *lexer) stateFn {
	wcount := l.acceptWhile(isWhitespace)
	if wcount > 0 {
		l.emit(itemWhitespace)
	}

	next := l.peek()

	switch {
	case next == eof:
		l.emit(itemEOF)
		return nil

	case next == '(':
		l.next()
		l.emit(itemLeftParen)
		return lexExpression

	case next == ')':
		l.next()
		l.emit(itemRightParen)
		return lexExpression

	case next == '-' && l.unaryMinusPosition():
		return lexNumber

	case isOperator(next):
		return lexOperator

	case isNumberChar(next):
		return lexNumber

	case unicode.IsLetter(next):
		return lexVariable
	}

	return l.errorf("unknown rune: %c", next)
}

// unaryMinusPosition reports whether a '-' at the current position starts a
// negative numeric literal rather than a binary subtraction. That is the
// case at the start of the input, after an opening parenthesis and after
// another operator.
func (l *lexer) unaryMinusPosition() bool {
	prev, ok := l.prevNonWhitespace()
	if !ok {
		return true
	}

	return prev == '(' || isOperator(prev)
}

// lexOperator scans single rune operators
func lexOperator(l *lexer) stateFn {
	op := l.next()

	switch op {
	case '+':
		l.emit(itemPlus)

	case '-':
		l.emit(itemMinus)

	case '*':
		l.emit(itemAsterisk)

	case '/':
		l.emit(itemSlash)

	default:
		return l.errorf("unknown rune: %c", op)
	}

	return lexExpression
}

// lexNumber scans a numeric literal: an optional leading minus followed by a
// run of digits and dots. Validation of the literal (a lone "-", "1.2.3")
// happens in the parser when the token is converted to a float.
func lexNumber(l *lexer) stateFn {
	l.accept("-")
	l.acceptWhile(isNumberChar)
	l.emit(itemNumber)
	return lexExpression
}

// lexVariable scans a single letter variable name.
func lexVariable(l *lexer) stateFn {
	l.next()
	l.emit(itemVariable)
	return lexExpression
}
