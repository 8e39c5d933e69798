package parser

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/higumachan/conslisp/cell"
)

func TestParserBuildTree(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{
			In:  `()`,
			Out: `nil`,
		},
		{
			In:  `(1 2 3)`,
			Out: `(1 2 3)`,
		},
		{
			In:  `(1 2 (3 4))`,
			Out: `(1 2 (3 4))`,
		},
		{
			In:  "  (1\n\t 2\n\n3\n)  ",
			Out: `(1 2 3)`,
		},
		{
			In:  `(-1 +2 -0)`,
			Out: `(-1 2 0)`,
		},
		{
			In:  `("test" "nadeko")`,
			Out: `("test" "nadeko")`,
		},
		{
			In:  `("a  (b) 'c" "")`,
			Out: `("a  (b) 'c" "")`,
		},
		{
			In:  `(car (quote (1 2 3)))`,
			Out: `(Car (Quote (1 2 3)))`,
		},
		{
			In:  `(cdr '(1 2 3))`,
			Out: `(Cdr (Quote (1 2 3)))`,
		},
		{
			In:  `'(a b)`,
			Out: `(Quote (a b))`,
		},
		{
			In:  `(foo bar_baz? set! x1)`,
			Out: `(foo bar_baz? set! x1)`,
		},
		{
			In:  `(1"a"b)`,
			Out: `(1 "a" b)`,
		},
		{
			In:  `(2147483647 -2147483648)`,
			Out: `(2147483647 -2147483648)`,
		},
		{
			In:  `(((())))`,
			Out: `(((nil)))`,
		},
	}

	for i := range testCases {
		st := cell.NewSymbolTable()

		value, _, err := Parse([]byte(testCases[i].In), st)
		assert.NoError(t, err)
		if !assert.NotNil(t, value) {
			continue
		}

		s, err := value.Render(st)
		assert.NoError(t, err)
		assert.Equal(t, testCases[i].Out, s)
	}
}

func TestParserStructure(t *testing.T) {
	st := cell.NewSymbolTable()

	value, rest, err := Parse([]byte(`(1 "x" foo (2))`), st)
	assert.NoError(t, err)
	assert.Empty(t, rest)

	expected := cell.List(
		cell.NewInt(1),
		cell.NewString("x"),
		cell.NewSymbol(st.Intern("foo")),
		cell.List(cell.NewInt(2)),
	)
	assert.True(t, expected.Equal(value))
}

func TestParserQuoteSugar(t *testing.T) {
	st := cell.NewSymbolTable()

	quoted, _, err := Parse([]byte(`'(1 2 3)`), st)
	assert.NoError(t, err)

	explicit, _, err := Parse([]byte(`(quote (1 2 3))`), st)
	assert.NoError(t, err)

	assert.True(t, quoted.Equal(explicit))
	assert.Equal(t, quoted, explicit)
}

func TestParserSymbolCanonicalization(t *testing.T) {
	st := cell.NewSymbolTable()

	value, _, err := Parse([]byte(`(foo bar foo (foo bar) baz)`), st)
	assert.NoError(t, err)

	values, err := value.Slice()
	assert.NoError(t, err)

	inner, err := values[3].Slice()
	assert.NoError(t, err)

	foo, bar, baz := values[0].Symbol(), values[1].Symbol(), values[4].Symbol()

	assert.Equal(t, foo, values[2].Symbol())
	assert.Equal(t, foo, inner[0].Symbol())
	assert.Equal(t, bar, inner[1].Symbol())

	assert.NotEqual(t, foo, bar)
	assert.NotEqual(t, foo, baz)
	assert.NotEqual(t, bar, baz)

	// a second parse against the same table sees the same identifiers
	again, _, err := Parse([]byte(`(baz)`), st)
	assert.NoError(t, err)
	head, _ := again.Head()
	assert.Equal(t, baz, head.Symbol())
}

func TestParserRest(t *testing.T) {
	testCases := []struct {
		In   string
		Rest string
	}{
		{`(1 2)`, ``},
		{`(1 2) (3)`, `(3)`},
		{"(1)\n\n  '(2) tail", `'(2) tail`},
		{`'(a)b`, `b`},
	}

	for i := range testCases {
		_, rest, err := Parse([]byte(testCases[i].In), cell.NewSymbolTable())
		assert.NoError(t, err)
		assert.Equal(t, testCases[i].Rest, string(rest))
	}
}

func TestParserIncomplete(t *testing.T) {
	testCases := []string{
		``,
		`   `,
		`(1 2`,
		`(1 (2 3)`,
		`'`,
		`'(1`,
		`("abc`,
		`(1 -`,
		`(car (quote (1 2 3))`,
	}

	for i := range testCases {
		value, rest, err := Parse([]byte(testCases[i]), cell.NewSymbolTable())
		assert.Equal(t, ErrIncomplete, err, "input: %q", testCases[i])
		assert.Nil(t, value)
		assert.Nil(t, rest)
	}
}

func TestParserSyntaxError(t *testing.T) {
	testCases := []struct {
		In     string
		Line   int
		Column int
		Offset int
	}{
		{`abc`, 1, 1, 0},
		{`1`, 1, 1, 0},
		{`)`, 1, 1, 0},
		{`(1 _x)`, 1, 4, 3},
		{`(1 - 2)`, 1, 5, 4},
		{`(a-b)`, 1, 4, 3},
		{"(1\n  [2])", 2, 3, 5},
		{`' (1)`, 1, 2, 1},
		{`(1 '2)`, 1, 5, 4},
		{`(2147483648)`, 1, 2, 1},
		{`(-2147483649)`, 1, 2, 1},
		{"(\"a\xffb\")", 1, 4, 3},
		{"(a \xff)", 1, 4, 3},
	}

	for i := range testCases {
		value, _, err := Parse([]byte(testCases[i].In), cell.NewSymbolTable())
		assert.Nil(t, value)
		assert.True(t, errors.Is(err, ErrSyntax), "input: %q", testCases[i].In)

		var syntaxErr *SyntaxError
		if assert.True(t, errors.As(err, &syntaxErr)) {
			assert.Equal(t, testCases[i].Line, syntaxErr.Line, "input: %q", testCases[i].In)
			assert.Equal(t, testCases[i].Column, syntaxErr.Column, "input: %q", testCases[i].In)
			assert.Equal(t, testCases[i].Offset, syntaxErr.Offset, "input: %q", testCases[i].In)
			assert.NotEmpty(t, syntaxErr.Error())
		}
	}
}

func TestParserFailureKeepsSymbolsConsistent(t *testing.T) {
	st := cell.NewSymbolTable()

	_, _, err := Parse([]byte(`(alpha beta`), st)
	assert.Equal(t, ErrIncomplete, err)

	value, _, err := Parse([]byte(`(alpha)`), st)
	assert.NoError(t, err)

	head, _ := value.Head()
	sym, ok := st.Lookup("alpha")
	assert.True(t, ok)
	assert.Equal(t, sym, head.Symbol())
}

func TestParserDefaultSymbols(t *testing.T) {
	value, _, err := Parse([]byte(`(quote x)`), nil)
	assert.NoError(t, err)

	head, _ := value.Head()
	assert.True(t, head.IsSymbol(cell.SymQuote))
}

func TestParserReader(t *testing.T) {
	p := New(bytes.NewReader([]byte(`(1 2) (3)`)), cell.NewSymbolTable())

	value, err := p.Parse()
	assert.NoError(t, err)
	assert.Equal(t, `(1 2)`, value.String())
	assert.Equal(t, 5, p.Offset())
}

func TestParserOpenStream(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	go func() {
		_, _ = pw.Write([]byte(`(1 2)`))
	}()

	type result struct {
		value *cell.Value
		err   error
	}
	done := make(chan result, 1)

	go func() {
		p := New(pr, cell.NewSymbolTable())
		value, err := p.Parse()
		done <- result{value, err}
	}()

	select {
	case res := <-done:
		assert.NoError(t, res.err)
		assert.Equal(t, `(1 2)`, res.value.String())
	case <-time.After(2 * time.Second):
		t.Fatal("Parse did not return while the stream was still open")
	}
}

func TestParserParseTwice(t *testing.T) {
	p := New(bytes.NewReader([]byte(`(1) (2)`)), cell.NewSymbolTable())

	value, err := p.Parse()
	assert.NoError(t, err)
	assert.Equal(t, `(1)`, value.String())

	value, err = p.Parse()
	assert.Nil(t, value)
	assert.Equal(t, ErrParserUsed, err)
}
