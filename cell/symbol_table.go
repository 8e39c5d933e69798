package cell

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrUndefinedSymbol = errors.New("undefined symbol")
	ErrSymbolExists    = errors.New("symbol already bound")
	ErrNotWellKnown    = errors.New("not a well-known symbol")
)

// SymbolTable is a bidirectional registry between symbol text and Symbol
// identifiers. It only grows and is safe for concurrent use.
type SymbolTable struct {
	mu sync.RWMutex

	forward  map[string]Symbol
	backward map[Symbol]string
}

// NewSymbolTable creates a table that knows the "car", "cdr" and "quote"
// aliases.
func NewSymbolTable() *SymbolTable {
	st := &SymbolTable{
		forward:  make(map[string]Symbol),
		backward: make(map[Symbol]string),
	}
	st.insert("car", SymCar)
	st.insert("cdr", SymCdr)
	st.insert("quote", SymQuote)
	return st
}

var (
	defaultSymbols     *SymbolTable
	defaultSymbolsOnce sync.Once
)

// DefaultSymbols returns the process-wide table, creating it on first use.
func DefaultSymbols() *SymbolTable {
	defaultSymbolsOnce.Do(func() {
		defaultSymbols = NewSymbolTable()
	})
	return defaultSymbols
}

func (st *SymbolTable) insert(text string, sym Symbol) {
	st.forward[text] = sym
	if _, ok := st.backward[sym]; !ok {
		st.backward[sym] = text
	}
}

// Intern returns the symbol bound to text, allocating the next Other index
// when text was never seen before.
func (st *SymbolTable) Intern(text string) Symbol {
	st.mu.RLock()
	sym, ok := st.forward[text]
	st.mu.RUnlock()
	if ok {
		return sym
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	// another goroutine may have won the race between the two locks
	if sym, ok := st.forward[text]; ok {
		return sym
	}

	sym = OtherSymbol(uint64(len(st.forward)))
	st.insert(text, sym)
	return sym
}

// Lookup returns the symbol bound to text without interning it.
func (st *SymbolTable) Lookup(text string) (Symbol, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	sym, ok := st.forward[text]
	return sym, ok
}

// Name returns the display name of sym. Well-known symbols have fixed names,
// whatever text they were bound to.
func (st *SymbolTable) Name(sym Symbol) (string, error) {
	if sym.IsWellKnown() {
		return sym.kind.String(), nil
	}

	st.mu.RLock()
	defer st.mu.RUnlock()

	if text, ok := st.backward[sym]; ok {
		return text, nil
	}
	return "", fmt.Errorf("%w: %v", ErrUndefinedSymbol, sym)
}

// Alias binds one more spelling to a well-known symbol, e.g. "cond" to
// SymCond.
func (st *SymbolTable) Alias(text string, sym Symbol) error {
	if !sym.IsWellKnown() {
		return fmt.Errorf("%w: %v", ErrNotWellKnown, sym)
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	if bound, ok := st.forward[text]; ok {
		if bound == sym {
			return nil
		}
		return fmt.Errorf("%w: %q is %v", ErrSymbolExists, text, bound)
	}

	st.insert(text, sym)
	return nil
}

// Len returns the number of registered spellings.
func (st *SymbolTable) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()

	return len(st.forward)
}
