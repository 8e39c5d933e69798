package cell

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Render returns the textual form of v, using st to name symbols. Strings are
// wrapped in double quotes without escaping, so a string holding '"' does not
// read back as the same value.
func (v *Value) Render(st *SymbolTable) (string, error) {
	var sb strings.Builder
	if err := render(&sb, st, v); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// String renders v with the default symbol table.
func (v *Value) String() string {
	s, err := v.Render(DefaultSymbols())
	if err != nil {
		return fmt.Sprintf("<%v>", err)
	}
	return s
}

func render(sb *strings.Builder, st *SymbolTable, v *Value) error {
	switch v.Type {
	case ValueTypeInt:
		sb.WriteString(strconv.FormatInt(int64(v.Int()), 10))
	case ValueTypeFloat:
		sb.WriteString(strconv.FormatFloat(float64(v.Float()), 'f', -1, 32))
	case ValueTypeDouble:
		sb.WriteString(strconv.FormatFloat(v.Double(), 'f', -1, 64))
	case ValueTypeString:
		sb.WriteByte('"')
		sb.WriteString(v.Text())
		sb.WriteByte('"')
	case ValueTypeNil:
		sb.WriteString("nil")
	case ValueTypeTrue:
		sb.WriteString("t")
	case ValueTypeSymbol:
		name, err := st.Name(v.Symbol())
		if err != nil {
			return err
		}
		sb.WriteString(name)
	case ValueTypeCons:
		sb.WriteByte('(')
		for cur := v; ; {
			p := cur.v.(pair)
			if err := render(sb, st, p.head); err != nil {
				return err
			}
			if p.tail.IsNil() {
				break
			}
			if !p.tail.IsCons() {
				// improper tail, written as a dotted pair
				sb.WriteString(" . ")
				if err := render(sb, st, p.tail); err != nil {
					return err
				}
				break
			}
			sb.WriteByte(' ')
			cur = p.tail
		}
		sb.WriteByte(')')
	default:
		panic("unknown value type")
	}
	return nil
}

// Print writes a human-readable tree of v to w, one value per line.
func Print(w io.Writer, st *SymbolTable, v *Value) error {
	return printLevel(w, st, v, 0)
}

func printLevel(w io.Writer, st *SymbolTable, v *Value, level int) error {
	indent := strings.Repeat("    ", level)

	if !v.IsCons() {
		s, err := v.Render(st)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s(%s): %s\n", indent, v.Type, s)
		return err
	}

	if _, err := fmt.Fprintf(w, "%s(%s):\n", indent, v.Type); err != nil {
		return err
	}
	for cur := v; cur.IsCons(); {
		p := cur.v.(pair)
		if err := printLevel(w, st, p.head, level+1); err != nil {
			return err
		}
		cur = p.tail
	}
	return nil
}
