// Package parser reads s-expressions into cons cells.
//
//	s_expr        := s_expr_plain | s_expr_quoted
//	s_expr_plain  := "(" factor* ")"
//	s_expr_quoted := "'(" factor* ")"      ; (quote (factor*))
//	factor        := string | integer | symbol | s_expr
//	string        := '"' [^"]* '"'
//	integer       := ["+" | "-"] digit+
//	symbol        := alpha (alpha | digit | "_" | "!" | "?")*
package parser

import (
	"bytes"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/higumachan/conslisp/cell"
	"github.com/higumachan/conslisp/lexer"
)

var TokenEOF = lexer.NewToken(lexer.TokenEOF, "", 0, 0)

// Parser reads a single top-level form from a stream of tokens.
type Parser struct {
	lx      *lexer.Lexer
	symbols *cell.SymbolTable
	logger  *log.Logger

	nextTok *lexer.Token

	end    int
	parsed bool
}

// New creates a parser that reads from r and interns symbols into st. A nil
// st means the process-wide table.
func New(r io.Reader, st *cell.SymbolTable) *Parser {
	if st == nil {
		st = cell.DefaultSymbols()
	}
	return &Parser{
		lx:      lexer.New(r),
		symbols: st,
		logger:  log.New(io.Discard, "", 0),
	}
}

// SetLogger sets a logger that receives parser traces.
func (p *Parser) SetLogger(logger *log.Logger) {
	p.logger = logger
}

// Offset returns the byte offset right after the last consumed token.
func (p *Parser) Offset() int {
	return p.end
}

// Parse reads one form. It returns as soon as the form is complete, without
// waiting for the rest of the stream. Calling Parse again on the same Parser
// returns ErrParserUsed.
func (p *Parser) Parse() (*cell.Value, error) {
	if p.parsed {
		return nil, ErrParserUsed
	}
	p.parsed = true

	errCh := make(chan error, 1)

	go func() {
		errCh <- p.lx.Scan()
	}()

	value, err := p.expectForm()
	p.lx.Stop()

	if err == ErrIncomplete {
		// the lexer already sent EOF or closed its channel, so it is done
		if lexErr := <-errCh; lexErr != nil && lexErr != lexer.ErrForceStopped {
			// the reader failed, that's why input ended early
			return nil, lexErr
		}
	}
	if err != nil {
		p.logger.Printf("PARSE: %v", err)
		return nil, err
	}

	return value, nil
}

func (p *Parser) read() *lexer.Token {
	tok, ok := <-p.lx.Tokens()
	if ok {
		return &tok
	}
	return TokenEOF
}

func (p *Parser) peek() *lexer.Token {
	if p.nextTok != nil {
		return p.nextTok
	}

	p.nextTok = p.read()
	return p.nextTok
}

func (p *Parser) next() *lexer.Token {
	tok := p.peek()
	p.nextTok = nil

	if !tok.Is(lexer.TokenEOF) {
		_, p.end = tok.Span()
	}
	return tok
}

func (p *Parser) skipSeparators() *lexer.Token {
	for {
		tok := p.next()
		switch tok.Type() {
		case lexer.TokenWhitespace, lexer.TokenNewLine:
			// continue
		default:
			return tok
		}
	}
}

func mergeTokens(tt lexer.TokenType, tokens []*lexer.Token) *lexer.Token {
	var text strings.Builder
	for _, tok := range tokens {
		text.WriteString(tok.Text())
	}

	first, last := tokens[0], tokens[len(tokens)-1]

	line, col := first.Pos()
	offset, _ := first.Span()
	_, end := last.Span()

	return lexer.NewToken(tt, text.String(), line, col).WithSpan(offset, end)
}

func (p *Parser) expectForm() (*cell.Value, error) {
	tok := p.skipSeparators()

	switch tok.Type() {
	case lexer.TokenEOF:
		return nil, ErrIncomplete
	case lexer.TokenOpenExpression:
		return p.expectExpression(tok)
	case lexer.TokenQuote:
		return p.expectQuoted(tok)
	}

	return nil, syntaxError(tok, "expecting %q or %q, got %q", "(", "'(", tok.Text())
}

func (p *Parser) expectExpression(open *lexer.Token) (*cell.Value, error) {
	values := []*cell.Value{}

	for {
		tok := p.skipSeparators()

		switch tok.Type() {
		case lexer.TokenEOF:
			return nil, ErrIncomplete

		case lexer.TokenCloseExpression:
			p.logger.Printf("PARSE: %d factor(s) at %v", len(values), open)
			return cell.List(values...), nil
		}

		value, err := p.expectFactor(tok)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
}

func (p *Parser) expectQuoted(quote *lexer.Token) (*cell.Value, error) {
	tok := p.next()

	switch tok.Type() {
	case lexer.TokenEOF:
		return nil, ErrIncomplete
	case lexer.TokenOpenExpression:
		// ok
	default:
		return nil, syntaxError(tok, "expecting %q after %q", "(", quote.Text())
	}

	body, err := p.expectExpression(tok)
	if err != nil {
		return nil, err
	}

	return cell.List(cell.NewSymbol(cell.SymQuote), body), nil
}

func (p *Parser) expectFactor(tok *lexer.Token) (*cell.Value, error) {
	switch tok.Type() {
	case lexer.TokenDoubleQuote:
		return p.expectString()

	case lexer.TokenSign, lexer.TokenInteger:
		return p.expectInteger(tok)

	case lexer.TokenWord:
		return cell.NewSymbol(p.symbols.Intern(tok.Text())), nil

	case lexer.TokenOpenExpression:
		return p.expectExpression(tok)

	case lexer.TokenQuote:
		return p.expectQuoted(tok)
	}

	return nil, syntaxError(tok, "unexpected %v %q", tok.Type(), tok.Text())
}

func (p *Parser) expectString() (*cell.Value, error) {
	var text strings.Builder

	for {
		tok := p.next()

		switch tok.Type() {
		case lexer.TokenDoubleQuote:
			return cell.NewString(text.String()), nil

		case lexer.TokenEOF:
			return nil, ErrIncomplete

		case lexer.TokenInvalid:
			return nil, syntaxError(tok, "invalid UTF-8 in string")

		default:
			text.WriteString(tok.Text())
		}
	}
}

func (p *Parser) expectInteger(tok *lexer.Token) (*cell.Value, error) {
	tokens := []*lexer.Token{tok}

	if tok.Is(lexer.TokenSign) {
		digits := p.next()

		switch digits.Type() {
		case lexer.TokenEOF:
			return nil, ErrIncomplete
		case lexer.TokenInteger:
			tokens = append(tokens, digits)
		default:
			return nil, syntaxError(digits, "expecting digits after %q", tok.Text())
		}
	}

	literal := mergeTokens(lexer.TokenLiteral, tokens)

	i32, err := strconv.ParseInt(literal.Text(), 10, 32)
	if err != nil {
		return nil, syntaxError(literal, "integer %s out of range", literal.Text())
	}

	return cell.NewInt(int32(i32)), nil
}

// Parse reads the first form of in, interning symbols into st (nil means the
// process-wide table). It returns the form and the input that follows it,
// with leading whitespace removed.
func Parse(in []byte, st *cell.SymbolTable) (*cell.Value, []byte, error) {
	p := New(bytes.NewReader(in), st)

	value, err := p.Parse()
	if err != nil {
		return nil, nil, err
	}

	rest := bytes.TrimLeft(in[p.Offset():], " \f\t\r\n")
	return value, rest, nil
}
