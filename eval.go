package conslisp

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/higumachan/conslisp/cell"
)

var (
	// ErrNotApplicable means the form is not one of car, cdr, cond or quote,
	// or is a symbol with nothing to evaluate to.
	ErrNotApplicable = errors.New("not applicable")

	// ErrMalformed means a special form got the wrong number or shape of
	// operands.
	ErrMalformed = errors.New("malformed form")

	// ErrNotPair means car or cdr was applied to something that is not a pair.
	ErrNotPair = errors.New("not a pair")

	ErrNoMatchingClause = errors.New("no matching clause")
	ErrCondTest         = errors.New("cond test is neither true nor nil")
	ErrTooDeep          = errors.New("maximum evaluation depth exceeded")
)

type accessor func(*cell.Value) (*cell.Value, bool)

// Evaluator walks cons cell trees and evaluates the car, cdr, cond and quote
// special forms. It holds no bindings, so one Evaluator can be shared between
// goroutines.
type Evaluator struct {
	symbols  *cell.SymbolTable
	logger   *log.Logger
	maxDepth int
}

// NewEvaluator creates an evaluator that names symbols with st. A nil st
// means the process-wide table.
func NewEvaluator(st *cell.SymbolTable) *Evaluator {
	if st == nil {
		st = cell.DefaultSymbols()
	}
	return &Evaluator{
		symbols: st,
		logger:  log.New(io.Discard, "", 0),
	}
}

// SetLogger sets a logger that receives evaluation traces.
func (e *Evaluator) SetLogger(logger *log.Logger) {
	e.logger = logger
}

// SetMaxDepth limits how deeply forms may nest. Zero means no limit.
func (e *Evaluator) SetMaxDepth(depth int) {
	e.maxDepth = depth
}

// Symbols returns the table used by the evaluator.
func (e *Evaluator) Symbols() *cell.SymbolTable {
	return e.symbols
}

// Eval evaluates v. Numbers, strings, true and nil evaluate to themselves;
// lists must be headed by one of the special forms.
func (e *Evaluator) Eval(v *cell.Value) (*cell.Value, error) {
	return e.eval(v, 0)
}

func (e *Evaluator) eval(v *cell.Value, depth int) (*cell.Value, error) {
	if e.maxDepth > 0 && depth > e.maxDepth {
		return nil, ErrTooDeep
	}

	switch v.Type {
	case cell.ValueTypeCons:
		// special form
	case cell.ValueTypeSymbol:
		return nil, e.errorf(ErrNotApplicable, v)
	default:
		return v, nil
	}

	head, _ := v.Head()
	operands, _ := v.Tail()

	if head.Type != cell.ValueTypeSymbol {
		return nil, e.errorf(ErrNotApplicable, v)
	}

	e.logger.Printf("EVAL: %s", e.render(v))

	switch head.Symbol().Kind() {
	case cell.KindCar:
		return e.evalAccessor(v, operands, depth, (*cell.Value).Head)
	case cell.KindCdr:
		return e.evalAccessor(v, operands, depth, (*cell.Value).Tail)
	case cell.KindQuote:
		return e.operand(v, operands)
	case cell.KindCond:
		return e.evalCond(v, operands, depth)
	}

	return nil, e.errorf(ErrNotApplicable, v)
}

// operand returns the only operand of form.
func (e *Evaluator) operand(form *cell.Value, operands *cell.Value) (*cell.Value, error) {
	values, err := operands.Slice()
	if err != nil || len(values) != 1 {
		return nil, e.errorf(ErrMalformed, form)
	}
	return values[0], nil
}

func (e *Evaluator) evalAccessor(form *cell.Value, operands *cell.Value, depth int, fn accessor) (*cell.Value, error) {
	arg, err := e.operand(form, operands)
	if err != nil {
		return nil, err
	}

	value, err := e.eval(arg, depth+1)
	if err != nil {
		return nil, err
	}

	res, ok := fn(value)
	if !ok {
		return nil, e.errorf(ErrNotPair, value)
	}
	return res, nil
}

func (e *Evaluator) evalCond(form *cell.Value, operands *cell.Value, depth int) (*cell.Value, error) {
	clauses, err := operands.Slice()
	if err != nil {
		return nil, e.errorf(ErrMalformed, form)
	}

	for _, clause := range clauses {
		parts, err := clause.Slice()
		if err != nil || len(parts) != 2 {
			return nil, e.errorf(ErrMalformed, clause)
		}

		test, err := e.eval(parts[0], depth+1)
		if err != nil {
			return nil, err
		}

		switch test.Type {
		case cell.ValueTypeTrue:
			return e.eval(parts[1], depth+1)
		case cell.ValueTypeNil:
			continue
		}

		return nil, e.errorf(ErrCondTest, test)
	}

	return nil, e.errorf(ErrNoMatchingClause, form)
}

func (e *Evaluator) render(v *cell.Value) string {
	s, err := v.Render(e.symbols)
	if err != nil {
		return fmt.Sprintf("<%v>", v.Type)
	}
	return s
}

func (e *Evaluator) errorf(err error, v *cell.Value) error {
	return fmt.Errorf("%w: %s", err, e.render(v))
}
