package cell

import (
	"fmt"
)

// SymbolKind tells a well-known symbol apart from an interned one.
type SymbolKind uint8

// Symbol kinds
const (
	KindOther SymbolKind = iota
	KindCond
	KindCar
	KindCdr
	KindQuote
	KindCons
	KindAdd
	KindSub
	KindMul
	KindDiv
)

var symbolKindName = map[SymbolKind]string{
	KindOther: "Other",
	KindCond:  "Cond",
	KindCar:   "Car",
	KindCdr:   "Cdr",
	KindQuote: "Quote",
	KindCons:  "Cons",
	KindAdd:   "Add",
	KindSub:   "Sub",
	KindMul:   "Mul",
	KindDiv:   "Div",
}

func (k SymbolKind) String() string {
	return symbolKindName[k]
}

// Symbol is the canonical identifier of an interned name. Two symbols are
// equal if and only if they were produced from the same text by the same
// SymbolTable.
type Symbol struct {
	kind  SymbolKind
	index uint64
}

// Well-known symbols
var (
	SymCond  = Symbol{kind: KindCond}
	SymCar   = Symbol{kind: KindCar}
	SymCdr   = Symbol{kind: KindCdr}
	SymQuote = Symbol{kind: KindQuote}
	SymCons  = Symbol{kind: KindCons}
	SymAdd   = Symbol{kind: KindAdd}
	SymSub   = Symbol{kind: KindSub}
	SymMul   = Symbol{kind: KindMul}
	SymDiv   = Symbol{kind: KindDiv}
)

// OtherSymbol returns the identifier for the interned symbol at the given
// sequence index.
func OtherSymbol(index uint64) Symbol {
	return Symbol{kind: KindOther, index: index}
}

// Kind returns the kind of the symbol.
func (s Symbol) Kind() SymbolKind {
	return s.kind
}

// Index returns the sequence index of an interned symbol. The second return
// value is false for well-known symbols.
func (s Symbol) Index() (uint64, bool) {
	if s.kind != KindOther {
		return 0, false
	}
	return s.index, true
}

// IsWellKnown returns true if the symbol is one of the fixed identifiers.
func (s Symbol) IsWellKnown() bool {
	return s.kind != KindOther
}

func (s Symbol) String() string {
	if s.kind == KindOther {
		return fmt.Sprintf("Other(%d)", s.index)
	}
	return s.kind.String()
}
