package lexer

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"sync"
	"unicode/utf8"
)

type lexState func(*Lexer) lexState

const eof = -1

// ErrForceStopped is returned by Scan when Stop was called before the end of
// the input was reached.
var ErrForceStopped = errors.New("lexer was stopped")

var (
	isOpenExpression  = isTokenType(TokenOpenExpression)
	isCloseExpression = isTokenType(TokenCloseExpression)

	isQuote       = isTokenType(TokenQuote)
	isDoubleQuote = isTokenType(TokenDoubleQuote)
	isNewLine     = isTokenType(TokenNewLine)
	isWhitespace  = isTokenType(TokenWhitespace)

	isSign    = isTokenType(TokenSign)
	isWord    = isTokenType(TokenWord)
	isInteger = isTokenType(TokenInteger)
)

// New initializes a Lexer object
func New(r io.Reader) *Lexer {
	return &Lexer{
		in:     bufio.NewReader(r),
		tokens: make(chan Token),
		done:   make(chan struct{}),
		buf:    []rune{},
	}
}

// Lexer represents a lexical analyzer
type Lexer struct {
	in *bufio.Reader

	// set when the last rune read was not valid UTF-8
	invalid bool

	tokens chan Token
	tok    Token

	done     chan struct{}
	stopOnce sync.Once
	lastErr  error

	buf []rune

	start  int
	offset int

	col    int
	cursor int
	lines  int
}

// Tokens returns a channel that is going to receive tokens as soon as they are
// detected.
func (lx *Lexer) Tokens() <-chan Token {
	return lx.tokens
}

// Next waits for the next token and reports whether there was one. It returns
// false once the lexer is done scanning.
func (lx *Lexer) Next() bool {
	tok, ok := <-lx.tokens
	if !ok {
		return false
	}
	lx.tok = tok
	return true
}

// Token returns the token received by the last call to Next.
func (lx *Lexer) Token() Token {
	return lx.tok
}

// Stop asks a running Scan to return early with ErrForceStopped. It is safe
// to call Stop more than once.
func (lx *Lexer) Stop() {
	lx.stopOnce.Do(func() {
		close(lx.done)
	})
}

// Scan starts scanning the reader for tokens. The tokens channel is closed
// when Scan returns.
func (lx *Lexer) Scan() error {
	defer close(lx.tokens)

	for state := lexDefaultState; state != nil; {
		select {
		case <-lx.done:
			return ErrForceStopped
		default:
			state = state(lx)
		}
	}

	if lx.lastErr != nil {
		return lx.lastErr
	}

	return lx.emit(TokenEOF)
}

func (lx *Lexer) emit(tt TokenType) error {
	tok := Token{
		tt:     tt,
		lexeme: string(lx.buf),

		line: lx.lines + 1,
		col:  lx.col + 1,

		offset: lx.start,
		end:    lx.offset,
	}

	select {
	case <-lx.done:
		return ErrForceStopped
	default:
	}

	select {
	case lx.tokens <- tok:
	case <-lx.done:
		return ErrForceStopped
	}

	lx.start = lx.offset
	lx.col = lx.cursor
	lx.buf = lx.buf[0:0]

	if tt == TokenNewLine {
		lx.lines++
		lx.col = 0
		lx.cursor = 0
	}

	return nil
}

// peek never reads more than one rune ahead, so a token is emitted as soon as
// its last rune is available.
func (lx *Lexer) peek() rune {
	r, _, err := lx.in.ReadRune()
	if err != nil {
		return eof
	}
	_ = lx.in.UnreadRune()
	return r
}

func (lx *Lexer) next() (rune, error) {
	r, size, err := lx.in.ReadRune()
	if err != nil {
		return rune(0), err
	}

	lx.invalid = r == utf8.RuneError && size == 1
	lx.offset += size
	lx.cursor++

	lx.buf = append(lx.buf, r)
	return r, nil
}

func lexDefaultState(lx *Lexer) lexState {
	r, err := lx.next()
	if err != nil {
		return lexStateError(err)
	}

	if lx.invalid {
		return lexEmit(TokenInvalid)
	}

	switch {

	case isOpenExpression(r):
		return lexEmit(TokenOpenExpression)
	case isCloseExpression(r):
		return lexEmit(TokenCloseExpression)

	case isQuote(r):
		return lexEmit(TokenQuote)
	case isDoubleQuote(r):
		return lexEmit(TokenDoubleQuote)
	case isNewLine(r):
		return lexEmit(TokenNewLine)
	case isWhitespace(r):
		return lexCollect(TokenWhitespace, isWhitespace)

	case isSign(r):
		return lexEmit(TokenSign)
	case isWord(r):
		return lexCollect(TokenWord, isWordTail)
	case isInteger(r):
		return lexCollect(TokenInteger, isInteger)

	}

	return lexSequence
}

func lexSequence(lx *Lexer) lexState {
	for {
		p := lx.peek()
		if p == eof || isBreak(p) {
			break
		}
		if _, err := lx.next(); err != nil {
			return lexStateError(err)
		}
	}
	return lexEmit(TokenSequence)
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		if err := lx.emit(tt); err != nil {
			return lexStateError(err)
		}
		return lexDefaultState
	}
}

func lexCollect(tt TokenType, accept func(rune) bool) lexState {
	return func(lx *Lexer) lexState {
		for accept(lx.peek()) {
			if _, err := lx.next(); err != nil {
				return lexStateError(err)
			}
		}
		return lexEmit(tt)
	}
}

func lexStateError(err error) lexState {
	if err == io.EOF {
		return nil
	}
	return func(lx *Lexer) lexState {
		lx.lastErr = err
		return nil
	}
}

// Tokenize takes an array of bytes and returns all the tokens within it,
// or an error if the input can't be scanned.
func Tokenize(in []byte) ([]Token, error) {
	lx := New(bytes.NewReader(in))

	errCh := make(chan error, 1)
	go func() {
		errCh <- lx.Scan()
	}()

	tokens := []Token{}
	for lx.Next() {
		tokens = append(tokens, lx.Token())
	}

	if err := <-errCh; err != nil {
		return nil, err
	}

	return tokens, nil
}
