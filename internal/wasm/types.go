package wasm

import "fmt"

// ValueType is encoded as a single byte in the binary format. wazero itself
// models this the same way (a byte alias with a const group), rather than as
// a real Go enum type, so that it round-trips through the wire format with
// no conversion.
type ValueType = byte

const (
	ValueTypeI32       ValueType = 0x7f
	ValueTypeI64       ValueType = 0x7e
	ValueTypeF32       ValueType = 0x7d
	ValueTypeF64       ValueType = 0x7c
	ValueTypeFuncref   ValueType = 0x70
	ValueTypeExternref ValueType = 0x6f
)

// ValueTypeName returns the textual name of a ValueType, used in error
// messages and the String() method of types that embed one.
func ValueTypeName(t ValueType) string {
	switch t {
	case ValueTypeI32:
		return "i32"
	case ValueTypeI64:
		return "i64"
	case ValueTypeF32:
		return "f32"
	case ValueTypeF64:
		return "f64"
	case ValueTypeFuncref:
		return "funcref"
	case ValueTypeExternref:
		return "externref"
	default:
		return fmt.Sprintf("0x%02x", t)
	}
}

// IsNumberType reports whether t is one of i32/i64/f32/f64.
func IsNumberType(t ValueType) bool {
	switch t {
	case ValueTypeI32, ValueTypeI64, ValueTypeF32, ValueTypeF64:
		return true
	default:
		return false
	}
}

// IsReferenceType reports whether t is funcref or externref.
func IsReferenceType(t ValueType) bool {
	return t == ValueTypeFuncref || t == ValueTypeExternref
}

// IntegerType narrows ValueType to i32/i64, the operand width accepted by
// instructions such as DivideInteger or ShiftRight.
type IntegerType = byte

const (
	IntegerTypeI32 IntegerType = ValueTypeI32
	IntegerTypeI64 IntegerType = ValueTypeI64
)

// FloatType narrows ValueType to f32/f64.
type FloatType = byte

const (
	FloatTypeF32 FloatType = ValueTypeF32
	FloatTypeF64 FloatType = ValueTypeF64
)

// ReferenceType narrows ValueType to funcref/externref, the two kinds a
// Table or Element segment may hold.
type ReferenceType = byte

const (
	ReferenceTypeFuncref   ReferenceType = ValueTypeFuncref
	ReferenceTypeExternref ReferenceType = ValueTypeExternref
)

// ExternType tags the kind of an import or export description.
type ExternType = byte

const (
	ExternTypeFunc   ExternType = 0x00
	ExternTypeTable  ExternType = 0x01
	ExternTypeMemory ExternType = 0x02
	ExternTypeGlobal ExternType = 0x03
)

// ExternTypeName returns the textual name of an ExternType.
func ExternTypeName(t ExternType) string {
	switch t {
	case ExternTypeFunc:
		return "func"
	case ExternTypeTable:
		return "table"
	case ExternTypeMemory:
		return "memory"
	case ExternTypeGlobal:
		return "global"
	default:
		return fmt.Sprintf("0x%02x", t)
	}
}

// ResultType is an ordered list of value types, used for both a function's
// parameters and its results, and for a block's inline result list.
type ResultType struct {
	Types []ValueType
}

// NewResultType returns a ResultType over the given value types.
func NewResultType(types ...ValueType) ResultType {
	return ResultType{Types: types}
}

// Len returns the number of value types in rt.
func (rt ResultType) Len() int { return len(rt.Types) }

// IsEmpty reports whether rt has no value types.
func (rt ResultType) IsEmpty() bool { return len(rt.Types) == 0 }

// FunctionType is the signature of a function: an ordered parameter list and
// an ordered result list.
type FunctionType struct {
	Parameters ResultType
	Results    ResultType
}

// NewFunctionType builds a FunctionType from explicit parameter and result
// value types.
func NewFunctionType(parameters, results []ValueType) FunctionType {
	return FunctionType{Parameters: NewResultType(parameters...), Results: NewResultType(results...)}
}

// Limit bounds the size of a Table or Memory: min is required, max is
// optional (a nil Max means unbounded).
type Limit struct {
	Min uint32
	Max *uint32
}

// NewLimit returns a Limit with the given minimum and no maximum.
func NewLimit(min uint32) Limit { return Limit{Min: min} }

// NewLimitMax returns a Limit with both a minimum and a maximum.
func NewLimitMax(min, max uint32) Limit { return Limit{Min: min, Max: &max} }

// HasMax reports whether l carries an explicit maximum.
func (l Limit) HasMax() bool { return l.Max != nil }

// MemoryType is the type of a linear memory: a Limit counted in 64KiB pages.
type MemoryType struct {
	Limit Limit
}

// NewMemoryType wraps a Limit as a MemoryType.
func NewMemoryType(l Limit) MemoryType { return MemoryType{Limit: l} }

// TableType is the type of a table: an element ReferenceType plus a Limit
// counted in elements.
type TableType struct {
	ElementType ReferenceType
	Limit       Limit
}

// NewTableType builds a TableType from an element type and a Limit.
func NewTableType(elementType ReferenceType, l Limit) TableType {
	return TableType{ElementType: elementType, Limit: l}
}

// GlobalType is the type of a global variable: its value type and whether
// it may be mutated after module instantiation.
type GlobalType struct {
	ValueType ValueType
	Mutable   bool
}

// NewGlobalType builds a GlobalType.
func NewGlobalType(valueType ValueType, mutable bool) GlobalType {
	return GlobalType{ValueType: valueType, Mutable: mutable}
}
