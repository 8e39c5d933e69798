package cell

// ValueType represents the variant held by a Value
type ValueType uint8

// Value types
const (
	ValueTypeNil ValueType = iota
	ValueTypeInt
	ValueTypeString
	ValueTypeFloat
	ValueTypeDouble
	ValueTypeSymbol
	ValueTypeCons
	ValueTypeTrue
)

func (vt ValueType) String() string {
	s, ok := valueTypeName[vt]
	if ok {
		return s
	}
	return ""
}

var valueTypeName = map[ValueType]string{
	ValueTypeNil:    "nil",
	ValueTypeInt:    "int",
	ValueTypeString: "string",
	ValueTypeFloat:  "float",
	ValueTypeDouble: "double",
	ValueTypeSymbol: "symbol",
	ValueTypeCons:   "cons",
	ValueTypeTrue:   "true",
}
