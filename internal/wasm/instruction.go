package wasm

// Instruction is the closed sum type of every decoded instruction. The
// Rust source this module is ported from models instructions as one enum
// per family with per-variant payloads; Go has no sum type, so each family
// becomes its own closed interface implemented by small variant structs,
// the same tagged-interface idiom wazero uses for its own byte-tagged
// value types, scaled up to carry multiple fields per variant.
type Instruction interface {
	isInstruction()
}

// SignExtension selects the signed or unsigned interpretation of an integer
// operand shared by several numeric, memory, and comparison instructions.
type SignExtension int

const (
	SignExtensionSigned SignExtension = iota
	SignExtensionUnsigned
)

// MemoryArgument is the offset/align immediate pair carried by every memory
// load and store instruction.
type MemoryArgument struct {
	Offset uint32
	Align  uint32
}

// NewMemoryArgument builds a MemoryArgument from an explicit offset and
// alignment exponent.
func NewMemoryArgument(offset, align uint32) MemoryArgument {
	return MemoryArgument{Offset: offset, Align: align}
}

// AlignedMemoryArgument builds a MemoryArgument with no offset.
func AlignedMemoryArgument(align uint32) MemoryArgument {
	return MemoryArgument{Align: align}
}

// DefaultMemoryArgument builds a MemoryArgument with no offset and an
// alignment exponent matching a natural access of the given byte width
// (e.g. width=4 for an i32 load). Go has no const-generic size_of, so the
// width is passed explicitly rather than inferred from a type parameter.
func DefaultMemoryArgument(width uint32) MemoryArgument {
	return MemoryArgument{Align: log2(width)}
}

// OffsetDefaultMemoryArgument is DefaultMemoryArgument with an explicit
// offset.
func OffsetDefaultMemoryArgument(offset, width uint32) MemoryArgument {
	return MemoryArgument{Offset: offset, Align: log2(width)}
}

func log2(n uint32) uint32 {
	var e uint32
	for n > 1 {
		n >>= 1
		e++
	}
	return e
}

// BlockType is the inline type annotation carried by block, loop, and if.
type BlockType interface {
	isBlockType()
}

// BlockTypeEmpty is the `0x40` encoding: no parameters, no results.
type BlockTypeEmpty struct{}

// BlockTypeValue is a single inline result type, encoded as the value
// type's own byte.
type BlockTypeValue struct{ Type ValueType }

// BlockTypeIndex references a pre-declared function type by index, encoded
// as a signed LEB128 (s33) index.
type BlockTypeIndex struct{ Index uint32 }

func (BlockTypeEmpty) isBlockType()  {}
func (BlockTypeValue) isBlockType()  {}
func (BlockTypeIndex) isBlockType()  {}

// Expression is a sequence of instructions terminated by 0x0B in the binary
// format. Function bodies, global initializers, and active-segment offsets
// are all expressions.
type Expression struct {
	Instructions []Instruction
}

// NewExpression wraps a slice of instructions as an Expression.
func NewExpression(instructions ...Instruction) Expression {
	return Expression{Instructions: instructions}
}

// IsEmpty reports whether e has no instructions.
func (e Expression) IsEmpty() bool { return len(e.Instructions) == 0 }

// --- Numeric instructions -------------------------------------------------

type NumericInstruction interface {
	Instruction
	isNumericInstruction()
}

type numericBase struct{}

func (numericBase) isInstruction()        {}
func (numericBase) isNumericInstruction() {}

type I32Constant struct {
	numericBase
	Value int32
}

type I64Constant struct {
	numericBase
	Value int64
}

type F32Constant struct {
	numericBase
	Value float32
}

type F64Constant struct {
	numericBase
	Value float64
}

// UnaryNumericOp tags the shape-preserving single-operand numeric
// operators whose opcode alone determines behavior: clz/ctz/popcnt, the
// float unary ops (abs/neg/sqrt/ceil/floor/trunc/nearest), eqz, wrap,
// extendSigned8/16/32, demote, and promote.
type UnaryNumericOp int

const (
	OpCountLeadingZeros UnaryNumericOp = iota
	OpCountTrailingZeros
	OpCountOnes
	OpAbsoluteValue
	OpNegate
	OpSquareRoot
	OpCeiling
	OpFloor
	OpTruncate
	OpNearest
	OpEqualToZero
	OpWrap
	OpExtendSigned8
	OpExtendSigned16
	OpExtendSigned32
	OpDemote
	OpPromote
)

// UnaryNumeric is a single-operand numeric instruction whose opcode the
// codec selects from Op and Type together (e.g. i32.clz and i64.clz share
// OpCountLeadingZeros and differ only in Type).
type UnaryNumeric struct {
	numericBase
	Op   UnaryNumericOp
	Type ValueType
}

type BinaryNumericOp int

const (
	OpAdd BinaryNumericOp = iota
	OpSubtract
	OpMultiply
	OpDivideFloat
	OpAnd
	OpOr
	OpXor
	OpShiftLeft
	OpRotateLeft
	OpRotateRight
	OpMinimum
	OpMaximum
	OpCopySign
	OpEqual
	OpNotEqual
	OpLessThanFloat
	OpGreaterThanFloat
	OpLessThanOrEqualToFloat
	OpGreaterThanOrEqualToFloat
)

// BinaryNumeric is a two-operand numeric instruction whose opcode does not
// depend on signedness (plain add/sub/mul, bitwise ops, float comparisons).
type BinaryNumeric struct {
	numericBase
	Op   BinaryNumericOp
	Type ValueType
}

type SignedBinaryNumericOp int

const (
	OpDivideInteger SignedBinaryNumericOp = iota
	OpRemainder
	OpShiftRight
	OpLessThanInteger
	OpGreaterThanInteger
	OpLessThanOrEqualToInteger
	OpGreaterThanOrEqualToInteger
)

// SignedBinaryNumeric is a two-operand integer instruction whose opcode
// depends on operand signedness (div_s/div_u, shr_s/shr_u, etc).
type SignedBinaryNumeric struct {
	numericBase
	Op   SignedBinaryNumericOp
	Type IntegerType
	Sign SignExtension
}

// ExtendWithSignExtension is the i32-to-i64 extend conversion:
// i64.extend_i32_s or i64.extend_i32_u, chosen by Sign.
type ExtendWithSignExtension struct {
	numericBase
	Sign SignExtension
}

// ConvertAndTruncate is a trapping float-to-int conversion.
type ConvertAndTruncate struct {
	numericBase
	Destination IntegerType
	Source      FloatType
	Sign        SignExtension
}

// ConvertAndTruncateWithSaturation is the non-trapping-float-to-int
// proposal's saturating variant of ConvertAndTruncate.
type ConvertAndTruncateWithSaturation struct {
	numericBase
	Destination IntegerType
	Source      FloatType
	Sign        SignExtension
}

// Convert is an int-to-float conversion.
type Convert struct {
	numericBase
	Destination FloatType
	Source      IntegerType
	Sign        SignExtension
}

// ReinterpretFloat reinterprets a float's bits as an integer of equal
// width, with no conversion.
type ReinterpretFloat struct {
	numericBase
	Destination IntegerType
	Source      FloatType
}

// ReinterpretInteger reinterprets an integer's bits as a float of equal
// width, with no conversion.
type ReinterpretInteger struct {
	numericBase
	Destination FloatType
	Source      IntegerType
}

// --- Reference instructions ------------------------------------------------

type ReferenceInstruction interface {
	Instruction
	isReferenceInstruction()
}

type referenceBase struct{}

func (referenceBase) isInstruction()          {}
func (referenceBase) isReferenceInstruction() {}

type ReferenceNull struct {
	referenceBase
	Type ReferenceType
}

type ReferenceIsNull struct{ referenceBase }

type ReferenceFunction struct {
	referenceBase
	Index uint32
}

// --- Parametric instructions -----------------------------------------------

type ParametricInstruction interface {
	Instruction
	isParametricInstruction()
}

type parametricBase struct{}

func (parametricBase) isInstruction()           {}
func (parametricBase) isParametricInstruction() {}

type Drop struct{ parametricBase }

// Select is a value-polymorphic select; Types is nil for the original
// untyped encoding and non-nil for the explicitly-typed encoding introduced
// alongside reference types.
type Select struct {
	parametricBase
	Types []ValueType
}

// --- Variable instructions --------------------------------------------------

type VariableInstruction interface {
	Instruction
	isVariableInstruction()
}

type variableBase struct{}

func (variableBase) isInstruction()          {}
func (variableBase) isVariableInstruction() {}

type LocalGet struct {
	variableBase
	Index uint32
}

type LocalSet struct {
	variableBase
	Index uint32
}

type LocalTee struct {
	variableBase
	Index uint32
}

type GlobalGet struct {
	variableBase
	Index uint32
}

type GlobalSet struct {
	variableBase
	Index uint32
}

// --- Table instructions ------------------------------------------------------

type TableInstruction interface {
	Instruction
	isTableInstruction()
}

type tableBase struct{}

func (tableBase) isInstruction()       {}
func (tableBase) isTableInstruction() {}

type TableGet struct {
	tableBase
	Index uint32
}

type TableSet struct {
	tableBase
	Index uint32
}

type TableSize struct {
	tableBase
	Index uint32
}

type TableGrow struct {
	tableBase
	Index uint32
}

type TableFill struct {
	tableBase
	Index uint32
}

type TableCopy struct {
	tableBase
	Destination uint32
	Source      uint32
}

type TableInit struct {
	tableBase
	Element uint32
	Table   uint32
}

type ElementDrop struct {
	tableBase
	Element uint32
}

// --- Memory instructions -----------------------------------------------------

type MemoryInstruction interface {
	Instruction
	isMemoryInstruction()
}

type memoryBase struct{}

func (memoryBase) isInstruction()        {}
func (memoryBase) isMemoryInstruction() {}

type Load struct {
	memoryBase
	Type     ValueType
	Argument MemoryArgument
}

type Store struct {
	memoryBase
	Type     ValueType
	Argument MemoryArgument
}

// Load8 covers i32.load8_s/u and i64.load8_s/u.
type Load8 struct {
	memoryBase
	Type     IntegerType
	Sign     SignExtension
	Argument MemoryArgument
}

// Load16 covers i32.load16_s/u and i64.load16_s/u.
type Load16 struct {
	memoryBase
	Type     IntegerType
	Sign     SignExtension
	Argument MemoryArgument
}

// Load32 covers i64.load32_s/u; only i64 has a 32-bit sub-width load.
type Load32 struct {
	memoryBase
	Sign     SignExtension
	Argument MemoryArgument
}

type Store8 struct {
	memoryBase
	Type     IntegerType
	Argument MemoryArgument
}

type Store16 struct {
	memoryBase
	Type     IntegerType
	Argument MemoryArgument
}

type Store32 struct {
	memoryBase
	Argument MemoryArgument
}

type MemorySize struct{ memoryBase }
type MemoryGrow struct{ memoryBase }
type MemoryFill struct{ memoryBase }
type MemoryCopy struct{ memoryBase }

type MemoryInit struct {
	memoryBase
	Data uint32
}

type DataDrop struct {
	memoryBase
	Data uint32
}

// --- Control instructions ----------------------------------------------------

type ControlInstruction interface {
	Instruction
	isControlInstruction()
}

type controlBase struct{}

func (controlBase) isInstruction()        {}
func (controlBase) isControlInstruction() {}

type Nop struct{ controlBase }
type Unreachable struct{ controlBase }

type Block struct {
	controlBase
	Type BlockType
	Body Expression
}

type Loop struct {
	controlBase
	Type BlockType
	Body Expression
}

// If carries both arms; Else is nil for the one-armed encoding (no 0x05
// marker was seen before the terminating 0x0B).
type If struct {
	controlBase
	Type BlockType
	Then Expression
	Else *Expression
}

type Branch struct {
	controlBase
	Label uint32
}

type BranchIf struct {
	controlBase
	Label uint32
}

type BranchTable struct {
	controlBase
	Labels  []uint32
	Default uint32
}

type Return struct{ controlBase }

type Call struct {
	controlBase
	Function uint32
}

// CallIndirect's binary immediate order is type-index then table-index;
// the original Rust source had these transposed, a known bug this port
// does not reproduce.
type CallIndirect struct {
	controlBase
	Type  uint32
	Table uint32
}
