// Package cell provides the cons cell value model and the symbol table that
// canonicalizes symbol names.
package cell

import (
	"errors"
)

// ErrImproperList is returned when a list does not end with Nil.
var ErrImproperList = errors.New("improper list")

// Value is an immutable Lisp value. The zero value is not valid, use Nil
// or one of the constructors.
type Value struct {
	v interface{}

	Type ValueType
}

type pair struct {
	head *Value
	tail *Value
}

var (
	Nil  = &Value{Type: ValueTypeNil}
	True = &Value{Type: ValueTypeTrue}
)

// NewInt creates a value of type int
func NewInt(v int32) *Value {
	return &Value{v: v, Type: ValueTypeInt}
}

// NewString creates a value of type string
func NewString(v string) *Value {
	return &Value{v: v, Type: ValueTypeString}
}

// NewFloat creates a value of type float
func NewFloat(v float32) *Value {
	return &Value{v: v, Type: ValueTypeFloat}
}

// NewDouble creates a value of type double
func NewDouble(v float64) *Value {
	return &Value{v: v, Type: ValueTypeDouble}
}

// NewSymbol creates a value of type symbol
func NewSymbol(v Symbol) *Value {
	return &Value{v: v, Type: ValueTypeSymbol}
}

// Cons creates a pair out of head and tail.
func Cons(head *Value, tail *Value) *Value {
	return &Value{v: pair{head: head, tail: tail}, Type: ValueTypeCons}
}

// List builds a proper list holding values in order. An empty list is Nil.
func List(values ...*Value) *Value {
	res := Nil
	for i := len(values) - 1; i >= 0; i-- {
		res = Cons(values[i], res)
	}
	return res
}

// Head returns the first element of a pair.
func (v *Value) Head() (*Value, bool) {
	if v.Type != ValueTypeCons {
		return nil, false
	}
	return v.v.(pair).head, true
}

// Tail returns the second element of a pair.
func (v *Value) Tail() (*Value, bool) {
	if v.Type != ValueTypeCons {
		return nil, false
	}
	return v.v.(pair).tail, true
}

// Slice walks a proper list and returns its elements.
func (v *Value) Slice() ([]*Value, error) {
	values := []*Value{}
	for cur := v; ; {
		switch cur.Type {
		case ValueTypeNil:
			return values, nil
		case ValueTypeCons:
			p := cur.v.(pair)
			values = append(values, p.head)
			cur = p.tail
		default:
			return nil, ErrImproperList
		}
	}
}

func (v *Value) Int() int32 {
	return v.v.(int32)
}

func (v *Value) Text() string {
	return v.v.(string)
}

func (v *Value) Float() float32 {
	return v.v.(float32)
}

func (v *Value) Double() float64 {
	return v.v.(float64)
}

func (v *Value) Symbol() Symbol {
	return v.v.(Symbol)
}

// IsNil returns true if v is the list terminator.
func (v *Value) IsNil() bool {
	return v.Type == ValueTypeNil
}

// IsTrue returns true if v is the boolean true value.
func (v *Value) IsTrue() bool {
	return v.Type == ValueTypeTrue
}

// IsCons returns true if v is a pair.
func (v *Value) IsCons() bool {
	return v.Type == ValueTypeCons
}

// IsSymbol returns true if v is the given symbol.
func (v *Value) IsSymbol(sym Symbol) bool {
	return v.Type == ValueTypeSymbol && v.v.(Symbol) == sym
}

// Equal reports whether v and o are structurally equal.
func (v *Value) Equal(o *Value) bool {
	for {
		if v == o {
			return true
		}
		if v == nil || o == nil || v.Type != o.Type {
			return false
		}
		switch v.Type {
		case ValueTypeNil, ValueTypeTrue:
			return true
		case ValueTypeCons:
			a, b := v.v.(pair), o.v.(pair)
			if !a.head.Equal(b.head) {
				return false
			}
			v, o = a.tail, b.tail
		default:
			return v.v == o.v
		}
	}
}
