package parser

import (
	"errors"
	"fmt"

	"github.com/higumachan/conslisp/lexer"
)

var (
	// ErrIncomplete means the input ended before a complete form was read.
	// Supplying more input may fix it.
	ErrIncomplete = errors.New("incomplete input")

	// ErrSyntax is wrapped by every *SyntaxError.
	ErrSyntax = errors.New("syntax error")

	ErrParserUsed = errors.New("parser already used")
)

// SyntaxError reports where no grammar alternative matched.
type SyntaxError struct {
	Offset int
	Line   int
	Column int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at line %d, column %d: %s", e.Line, e.Column, e.Msg)
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

func syntaxError(tok *lexer.Token, format string, args ...interface{}) error {
	line, col := tok.Pos()
	offset, _ := tok.Span()
	return &SyntaxError{
		Offset: offset,
		Line:   line,
		Column: col,
		Msg:    fmt.Sprintf(format, args...),
	}
}
