// Package conslisp is a small Lisp-like expression engine: s-expressions are
// parsed into cons cells and evaluated with the car, cdr, cond and quote
// special forms.
package conslisp

import (
	"bytes"
	"io"

	"github.com/higumachan/conslisp/cell"
	"github.com/higumachan/conslisp/parser"
)

const whitespace = " \f\t\r\n"

// Reader reads successive top-level forms.
type Reader struct {
	r       io.Reader
	symbols *cell.SymbolTable

	buf    []byte
	loaded bool
}

// NewReader creates a reader over r that interns symbols into st. A nil st
// means the process-wide table.
func NewReader(r io.Reader, st *cell.SymbolTable) *Reader {
	if st == nil {
		st = cell.DefaultSymbols()
	}
	return &Reader{r: r, symbols: st}
}

// Read returns the next form, or io.EOF when only whitespace is left.
func (r *Reader) Read() (*cell.Value, error) {
	if !r.loaded {
		buf, err := io.ReadAll(r.r)
		if err != nil {
			return nil, err
		}
		r.buf, r.loaded = buf, true
	}

	r.buf = bytes.TrimLeft(r.buf, whitespace)
	if len(r.buf) == 0 {
		return nil, io.EOF
	}

	value, rest, err := parser.Parse(r.buf, r.symbols)
	if err != nil {
		return nil, err
	}

	r.buf = rest
	return value, nil
}

// ReadAll returns every remaining form.
func (r *Reader) ReadAll() ([]*cell.Value, error) {
	values := []*cell.Value{}
	for {
		value, err := r.Read()
		if err == io.EOF {
			return values, nil
		}
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
}

// Parse reads the first form of in using the process-wide symbol table and
// returns it along with the rest of the input.
func Parse(in []byte) (*cell.Value, []byte, error) {
	return parser.Parse(in, nil)
}

// Eval evaluates v using the process-wide symbol table.
func Eval(v *cell.Value) (*cell.Value, error) {
	return NewEvaluator(nil).Eval(v)
}

// ReadEval evaluates every form in `in` with the process-wide symbol table
// and returns the result of the last one.
func ReadEval(in []byte) (*cell.Value, error) {
	return NewEvaluator(nil).ReadEval(in)
}

// ReadEval evaluates every form in `in` and returns the result of the last
// one. Empty input evaluates to nil.
func (e *Evaluator) ReadEval(in []byte) (*cell.Value, error) {
	r := NewReader(bytes.NewReader(in), e.symbols)

	res := cell.Nil
	for {
		value, err := r.Read()
		if err == io.EOF {
			return res, nil
		}
		if err != nil {
			return nil, err
		}

		res, err = e.Eval(value)
		if err != nil {
			return nil, err
		}
	}
}
