package binary

import "github.com/misalcedo/wasm-ast/internal/wasm"

// unaryOpcode returns the opcode for a single-operand numeric instruction.
// The opcode table has no single unary range: an operator's i32 and i64 forms
// (or its f32 and f64 forms) sit in separate per-type blocks of the table, so
// each case picks its byte from the operand type.
func unaryOpcode(op wasm.UnaryNumericOp, t wasm.ValueType) byte {
	switch op {
	case wasm.OpCountLeadingZeros:
		if t == wasm.ValueTypeI64 {
			return 0x79
		}
		return 0x67
	case wasm.OpCountTrailingZeros:
		if t == wasm.ValueTypeI64 {
			return 0x7A
		}
		return 0x68
	case wasm.OpCountOnes:
		if t == wasm.ValueTypeI64 {
			return 0x7B
		}
		return 0x69
	case wasm.OpEqualToZero:
		if t == wasm.ValueTypeI64 {
			return 0x50
		}
		return 0x45
	case wasm.OpAbsoluteValue:
		if t == wasm.ValueTypeF64 {
			return 0x99
		}
		return 0x8B
	case wasm.OpNegate:
		if t == wasm.ValueTypeF64 {
			return 0x9A
		}
		return 0x8C
	case wasm.OpCeiling:
		if t == wasm.ValueTypeF64 {
			return 0x9B
		}
		return 0x8D
	case wasm.OpFloor:
		if t == wasm.ValueTypeF64 {
			return 0x9C
		}
		return 0x8E
	case wasm.OpTruncate:
		if t == wasm.ValueTypeF64 {
			return 0x9D
		}
		return 0x8F
	case wasm.OpNearest:
		if t == wasm.ValueTypeF64 {
			return 0x9E
		}
		return 0x90
	case wasm.OpSquareRoot:
		if t == wasm.ValueTypeF64 {
			return 0x9F
		}
		return 0x91
	case wasm.OpWrap:
		return 0xA7
	case wasm.OpExtendSigned8:
		if t == wasm.ValueTypeI64 {
			return 0xC2
		}
		return 0xC0
	case wasm.OpExtendSigned16:
		if t == wasm.ValueTypeI64 {
			return 0xC3
		}
		return 0xC1
	case wasm.OpExtendSigned32:
		return 0xC4
	case wasm.OpDemote:
		return 0xB6
	case wasm.OpPromote:
		return 0xBB
	default:
		return 0
	}
}

func binaryOpcode(op wasm.BinaryNumericOp, t wasm.ValueType) byte {
	isI64 := t == wasm.ValueTypeI64
	isF64 := t == wasm.ValueTypeF64
	switch op {
	case wasm.OpAdd:
		switch t {
		case wasm.ValueTypeI32:
			return 0x6A
		case wasm.ValueTypeI64:
			return 0x7C
		case wasm.ValueTypeF32:
			return 0x92
		default:
			return 0xA0
		}
	case wasm.OpSubtract:
		switch t {
		case wasm.ValueTypeI32:
			return 0x6B
		case wasm.ValueTypeI64:
			return 0x7D
		case wasm.ValueTypeF32:
			return 0x93
		default:
			return 0xA1
		}
	case wasm.OpMultiply:
		switch t {
		case wasm.ValueTypeI32:
			return 0x6C
		case wasm.ValueTypeI64:
			return 0x7E
		case wasm.ValueTypeF32:
			return 0x94
		default:
			return 0xA2
		}
	case wasm.OpDivideFloat:
		if isF64 {
			return 0xA3
		}
		return 0x95
	case wasm.OpAnd:
		if isI64 {
			return 0x83
		}
		return 0x71
	case wasm.OpOr:
		if isI64 {
			return 0x84
		}
		return 0x72
	case wasm.OpXor:
		if isI64 {
			return 0x85
		}
		return 0x73
	case wasm.OpShiftLeft:
		if isI64 {
			return 0x86
		}
		return 0x74
	case wasm.OpRotateLeft:
		if isI64 {
			return 0x89
		}
		return 0x77
	case wasm.OpRotateRight:
		if isI64 {
			return 0x8A
		}
		return 0x78
	case wasm.OpMinimum:
		if isF64 {
			return 0xA4
		}
		return 0x96
	case wasm.OpMaximum:
		if isF64 {
			return 0xA5
		}
		return 0x97
	case wasm.OpCopySign:
		if isF64 {
			return 0xA6
		}
		return 0x98
	case wasm.OpEqual:
		switch t {
		case wasm.ValueTypeI32:
			return 0x46
		case wasm.ValueTypeI64:
			return 0x51
		case wasm.ValueTypeF32:
			return 0x5B
		default:
			return 0x61
		}
	case wasm.OpNotEqual:
		switch t {
		case wasm.ValueTypeI32:
			return 0x47
		case wasm.ValueTypeI64:
			return 0x52
		case wasm.ValueTypeF32:
			return 0x5C
		default:
			return 0x62
		}
	case wasm.OpLessThanFloat:
		if isF64 {
			return 0x63
		}
		return 0x5D
	case wasm.OpGreaterThanFloat:
		if isF64 {
			return 0x64
		}
		return 0x5E
	case wasm.OpLessThanOrEqualToFloat:
		if isF64 {
			return 0x65
		}
		return 0x5F
	case wasm.OpGreaterThanOrEqualToFloat:
		if isF64 {
			return 0x66
		}
		return 0x60
	default:
		return 0
	}
}

func signedBinaryOpcode(op wasm.SignedBinaryNumericOp, t wasm.IntegerType, sign wasm.SignExtension) byte {
	isI64 := t == wasm.IntegerTypeI64
	signed := sign == wasm.SignExtensionSigned
	switch op {
	case wasm.OpDivideInteger:
		switch {
		case !isI64 && signed:
			return 0x6D
		case !isI64:
			return 0x6E
		case signed:
			return 0x7F
		default:
			return 0x80
		}
	case wasm.OpRemainder:
		switch {
		case !isI64 && signed:
			return 0x6F
		case !isI64:
			return 0x70
		case signed:
			return 0x81
		default:
			return 0x82
		}
	case wasm.OpShiftRight:
		switch {
		case !isI64 && signed:
			return 0x75
		case !isI64:
			return 0x76
		case signed:
			return 0x87
		default:
			return 0x88
		}
	case wasm.OpLessThanInteger:
		switch {
		case !isI64 && signed:
			return 0x48
		case !isI64:
			return 0x49
		case signed:
			return 0x53
		default:
			return 0x54
		}
	case wasm.OpGreaterThanInteger:
		switch {
		case !isI64 && signed:
			return 0x4A
		case !isI64:
			return 0x4B
		case signed:
			return 0x55
		default:
			return 0x56
		}
	case wasm.OpLessThanOrEqualToInteger:
		switch {
		case !isI64 && signed:
			return 0x4C
		case !isI64:
			return 0x4D
		case signed:
			return 0x57
		default:
			return 0x58
		}
	case wasm.OpGreaterThanOrEqualToInteger:
		switch {
		case !isI64 && signed:
			return 0x4E
		case !isI64:
			return 0x4F
		case signed:
			return 0x59
		default:
			return 0x5A
		}
	default:
		return 0
	}
}

func convertTruncateOpcode(dst wasm.IntegerType, src wasm.FloatType, sign wasm.SignExtension) byte {
	signed := sign == wasm.SignExtensionSigned
	switch {
	case dst == wasm.IntegerTypeI32 && src == wasm.FloatTypeF32 && signed:
		return 0xA8
	case dst == wasm.IntegerTypeI32 && src == wasm.FloatTypeF32:
		return 0xA9
	case dst == wasm.IntegerTypeI32 && src == wasm.FloatTypeF64 && signed:
		return 0xAA
	case dst == wasm.IntegerTypeI32 && src == wasm.FloatTypeF64:
		return 0xAB
	case dst == wasm.IntegerTypeI64 && src == wasm.FloatTypeF32 && signed:
		return 0xAE
	case dst == wasm.IntegerTypeI64 && src == wasm.FloatTypeF32:
		return 0xAF
	case dst == wasm.IntegerTypeI64 && src == wasm.FloatTypeF64 && signed:
		return 0xB0
	default:
		return 0xB1
	}
}

func saturatingTruncateOpcode(dst wasm.IntegerType, src wasm.FloatType, sign wasm.SignExtension) uint32 {
	signed := sign == wasm.SignExtensionSigned
	switch {
	case dst == wasm.IntegerTypeI32 && src == wasm.FloatTypeF32 && signed:
		return 0
	case dst == wasm.IntegerTypeI32 && src == wasm.FloatTypeF32:
		return 1
	case dst == wasm.IntegerTypeI32 && src == wasm.FloatTypeF64 && signed:
		return 2
	case dst == wasm.IntegerTypeI32 && src == wasm.FloatTypeF64:
		return 3
	case dst == wasm.IntegerTypeI64 && src == wasm.FloatTypeF32 && signed:
		return 4
	case dst == wasm.IntegerTypeI64 && src == wasm.FloatTypeF32:
		return 5
	case dst == wasm.IntegerTypeI64 && src == wasm.FloatTypeF64 && signed:
		return 6
	default:
		return 7
	}
}

func convertOpcode(dst wasm.FloatType, src wasm.IntegerType, sign wasm.SignExtension) byte {
	signed := sign == wasm.SignExtensionSigned
	switch {
	case dst == wasm.FloatTypeF32 && src == wasm.IntegerTypeI32 && signed:
		return 0xB2
	case dst == wasm.FloatTypeF32 && src == wasm.IntegerTypeI32:
		return 0xB3
	case dst == wasm.FloatTypeF32 && src == wasm.IntegerTypeI64 && signed:
		return 0xB4
	case dst == wasm.FloatTypeF32 && src == wasm.IntegerTypeI64:
		return 0xB5
	case dst == wasm.FloatTypeF64 && src == wasm.IntegerTypeI32 && signed:
		return 0xB7
	case dst == wasm.FloatTypeF64 && src == wasm.IntegerTypeI32:
		return 0xB8
	case dst == wasm.FloatTypeF64 && src == wasm.IntegerTypeI64 && signed:
		return 0xB9
	default:
		return 0xBA
	}
}

// decodeSimpleOpcode handles every numeric test/comparison/arithmetic/
// conversion instruction whose opcode alone (with no immediate beyond the
// opcode byte itself) determines the decoded instruction.
func decodeSimpleOpcode(op byte) (wasm.Instruction, bool) {
	switch op {
	case 0x45:
		return wasm.UnaryNumeric{Op: wasm.OpEqualToZero, Type: wasm.ValueTypeI32}, true
	case 0x50:
		return wasm.UnaryNumeric{Op: wasm.OpEqualToZero, Type: wasm.ValueTypeI64}, true
	case 0x46:
		return wasm.BinaryNumeric{Op: wasm.OpEqual, Type: wasm.ValueTypeI32}, true
	case 0x47:
		return wasm.BinaryNumeric{Op: wasm.OpNotEqual, Type: wasm.ValueTypeI32}, true
	case 0x48:
		return wasm.SignedBinaryNumeric{Op: wasm.OpLessThanInteger, Type: wasm.IntegerTypeI32, Sign: wasm.SignExtensionSigned}, true
	case 0x49:
		return wasm.SignedBinaryNumeric{Op: wasm.OpLessThanInteger, Type: wasm.IntegerTypeI32, Sign: wasm.SignExtensionUnsigned}, true
	case 0x4A:
		return wasm.SignedBinaryNumeric{Op: wasm.OpGreaterThanInteger, Type: wasm.IntegerTypeI32, Sign: wasm.SignExtensionSigned}, true
	case 0x4B:
		return wasm.SignedBinaryNumeric{Op: wasm.OpGreaterThanInteger, Type: wasm.IntegerTypeI32, Sign: wasm.SignExtensionUnsigned}, true
	case 0x4C:
		return wasm.SignedBinaryNumeric{Op: wasm.OpLessThanOrEqualToInteger, Type: wasm.IntegerTypeI32, Sign: wasm.SignExtensionSigned}, true
	case 0x4D:
		return wasm.SignedBinaryNumeric{Op: wasm.OpLessThanOrEqualToInteger, Type: wasm.IntegerTypeI32, Sign: wasm.SignExtensionUnsigned}, true
	case 0x4E:
		return wasm.SignedBinaryNumeric{Op: wasm.OpGreaterThanOrEqualToInteger, Type: wasm.IntegerTypeI32, Sign: wasm.SignExtensionSigned}, true
	case 0x4F:
		return wasm.SignedBinaryNumeric{Op: wasm.OpGreaterThanOrEqualToInteger, Type: wasm.IntegerTypeI32, Sign: wasm.SignExtensionUnsigned}, true

	case 0x51:
		return wasm.BinaryNumeric{Op: wasm.OpEqual, Type: wasm.ValueTypeI64}, true
	case 0x52:
		return wasm.BinaryNumeric{Op: wasm.OpNotEqual, Type: wasm.ValueTypeI64}, true
	case 0x53:
		return wasm.SignedBinaryNumeric{Op: wasm.OpLessThanInteger, Type: wasm.IntegerTypeI64, Sign: wasm.SignExtensionSigned}, true
	case 0x54:
		return wasm.SignedBinaryNumeric{Op: wasm.OpLessThanInteger, Type: wasm.IntegerTypeI64, Sign: wasm.SignExtensionUnsigned}, true
	case 0x55:
		return wasm.SignedBinaryNumeric{Op: wasm.OpGreaterThanInteger, Type: wasm.IntegerTypeI64, Sign: wasm.SignExtensionSigned}, true
	case 0x56:
		return wasm.SignedBinaryNumeric{Op: wasm.OpGreaterThanInteger, Type: wasm.IntegerTypeI64, Sign: wasm.SignExtensionUnsigned}, true
	case 0x57:
		return wasm.SignedBinaryNumeric{Op: wasm.OpLessThanOrEqualToInteger, Type: wasm.IntegerTypeI64, Sign: wasm.SignExtensionSigned}, true
	case 0x58:
		return wasm.SignedBinaryNumeric{Op: wasm.OpLessThanOrEqualToInteger, Type: wasm.IntegerTypeI64, Sign: wasm.SignExtensionUnsigned}, true
	case 0x59:
		return wasm.SignedBinaryNumeric{Op: wasm.OpGreaterThanOrEqualToInteger, Type: wasm.IntegerTypeI64, Sign: wasm.SignExtensionSigned}, true
	case 0x5A:
		return wasm.SignedBinaryNumeric{Op: wasm.OpGreaterThanOrEqualToInteger, Type: wasm.IntegerTypeI64, Sign: wasm.SignExtensionUnsigned}, true

	case 0x5B:
		return wasm.BinaryNumeric{Op: wasm.OpEqual, Type: wasm.ValueTypeF32}, true
	case 0x5C:
		return wasm.BinaryNumeric{Op: wasm.OpNotEqual, Type: wasm.ValueTypeF32}, true
	case 0x5D:
		return wasm.BinaryNumeric{Op: wasm.OpLessThanFloat, Type: wasm.ValueTypeF32}, true
	case 0x5E:
		return wasm.BinaryNumeric{Op: wasm.OpGreaterThanFloat, Type: wasm.ValueTypeF32}, true
	case 0x5F:
		return wasm.BinaryNumeric{Op: wasm.OpLessThanOrEqualToFloat, Type: wasm.ValueTypeF32}, true
	case 0x60:
		return wasm.BinaryNumeric{Op: wasm.OpGreaterThanOrEqualToFloat, Type: wasm.ValueTypeF32}, true

	case 0x61:
		return wasm.BinaryNumeric{Op: wasm.OpEqual, Type: wasm.ValueTypeF64}, true
	case 0x62:
		return wasm.BinaryNumeric{Op: wasm.OpNotEqual, Type: wasm.ValueTypeF64}, true
	case 0x63:
		return wasm.BinaryNumeric{Op: wasm.OpLessThanFloat, Type: wasm.ValueTypeF64}, true
	case 0x64:
		return wasm.BinaryNumeric{Op: wasm.OpGreaterThanFloat, Type: wasm.ValueTypeF64}, true
	case 0x65:
		return wasm.BinaryNumeric{Op: wasm.OpLessThanOrEqualToFloat, Type: wasm.ValueTypeF64}, true
	case 0x66:
		return wasm.BinaryNumeric{Op: wasm.OpGreaterThanOrEqualToFloat, Type: wasm.ValueTypeF64}, true

	case 0x67:
		return wasm.UnaryNumeric{Op: wasm.OpCountLeadingZeros, Type: wasm.ValueTypeI32}, true
	case 0x68:
		return wasm.UnaryNumeric{Op: wasm.OpCountTrailingZeros, Type: wasm.ValueTypeI32}, true
	case 0x69:
		return wasm.UnaryNumeric{Op: wasm.OpCountOnes, Type: wasm.ValueTypeI32}, true
	case 0x6A:
		return wasm.BinaryNumeric{Op: wasm.OpAdd, Type: wasm.ValueTypeI32}, true
	case 0x6B:
		return wasm.BinaryNumeric{Op: wasm.OpSubtract, Type: wasm.ValueTypeI32}, true
	case 0x6C:
		return wasm.BinaryNumeric{Op: wasm.OpMultiply, Type: wasm.ValueTypeI32}, true
	case 0x6D:
		return wasm.SignedBinaryNumeric{Op: wasm.OpDivideInteger, Type: wasm.IntegerTypeI32, Sign: wasm.SignExtensionSigned}, true
	case 0x6E:
		return wasm.SignedBinaryNumeric{Op: wasm.OpDivideInteger, Type: wasm.IntegerTypeI32, Sign: wasm.SignExtensionUnsigned}, true
	case 0x6F:
		return wasm.SignedBinaryNumeric{Op: wasm.OpRemainder, Type: wasm.IntegerTypeI32, Sign: wasm.SignExtensionSigned}, true
	case 0x70:
		return wasm.SignedBinaryNumeric{Op: wasm.OpRemainder, Type: wasm.IntegerTypeI32, Sign: wasm.SignExtensionUnsigned}, true
	case 0x71:
		return wasm.BinaryNumeric{Op: wasm.OpAnd, Type: wasm.ValueTypeI32}, true
	case 0x72:
		return wasm.BinaryNumeric{Op: wasm.OpOr, Type: wasm.ValueTypeI32}, true
	case 0x73:
		return wasm.BinaryNumeric{Op: wasm.OpXor, Type: wasm.ValueTypeI32}, true
	case 0x74:
		return wasm.BinaryNumeric{Op: wasm.OpShiftLeft, Type: wasm.ValueTypeI32}, true
	case 0x75:
		return wasm.SignedBinaryNumeric{Op: wasm.OpShiftRight, Type: wasm.IntegerTypeI32, Sign: wasm.SignExtensionSigned}, true
	case 0x76:
		return wasm.SignedBinaryNumeric{Op: wasm.OpShiftRight, Type: wasm.IntegerTypeI32, Sign: wasm.SignExtensionUnsigned}, true
	case 0x77:
		return wasm.BinaryNumeric{Op: wasm.OpRotateLeft, Type: wasm.ValueTypeI32}, true
	case 0x78:
		return wasm.BinaryNumeric{Op: wasm.OpRotateRight, Type: wasm.ValueTypeI32}, true

	case 0x79:
		return wasm.UnaryNumeric{Op: wasm.OpCountLeadingZeros, Type: wasm.ValueTypeI64}, true
	case 0x7A:
		return wasm.UnaryNumeric{Op: wasm.OpCountTrailingZeros, Type: wasm.ValueTypeI64}, true
	case 0x7B:
		return wasm.UnaryNumeric{Op: wasm.OpCountOnes, Type: wasm.ValueTypeI64}, true
	case 0x7C:
		return wasm.BinaryNumeric{Op: wasm.OpAdd, Type: wasm.ValueTypeI64}, true
	case 0x7D:
		return wasm.BinaryNumeric{Op: wasm.OpSubtract, Type: wasm.ValueTypeI64}, true
	case 0x7E:
		return wasm.BinaryNumeric{Op: wasm.OpMultiply, Type: wasm.ValueTypeI64}, true
	case 0x7F:
		return wasm.SignedBinaryNumeric{Op: wasm.OpDivideInteger, Type: wasm.IntegerTypeI64, Sign: wasm.SignExtensionSigned}, true
	case 0x80:
		return wasm.SignedBinaryNumeric{Op: wasm.OpDivideInteger, Type: wasm.IntegerTypeI64, Sign: wasm.SignExtensionUnsigned}, true
	case 0x81:
		return wasm.SignedBinaryNumeric{Op: wasm.OpRemainder, Type: wasm.IntegerTypeI64, Sign: wasm.SignExtensionSigned}, true
	case 0x82:
		return wasm.SignedBinaryNumeric{Op: wasm.OpRemainder, Type: wasm.IntegerTypeI64, Sign: wasm.SignExtensionUnsigned}, true
	case 0x83:
		return wasm.BinaryNumeric{Op: wasm.OpAnd, Type: wasm.ValueTypeI64}, true
	case 0x84:
		return wasm.BinaryNumeric{Op: wasm.OpOr, Type: wasm.ValueTypeI64}, true
	case 0x85:
		return wasm.BinaryNumeric{Op: wasm.OpXor, Type: wasm.ValueTypeI64}, true
	case 0x86:
		return wasm.BinaryNumeric{Op: wasm.OpShiftLeft, Type: wasm.ValueTypeI64}, true
	case 0x87:
		return wasm.SignedBinaryNumeric{Op: wasm.OpShiftRight, Type: wasm.IntegerTypeI64, Sign: wasm.SignExtensionSigned}, true
	case 0x88:
		return wasm.SignedBinaryNumeric{Op: wasm.OpShiftRight, Type: wasm.IntegerTypeI64, Sign: wasm.SignExtensionUnsigned}, true
	case 0x89:
		return wasm.BinaryNumeric{Op: wasm.OpRotateLeft, Type: wasm.ValueTypeI64}, true
	case 0x8A:
		return wasm.BinaryNumeric{Op: wasm.OpRotateRight, Type: wasm.ValueTypeI64}, true

	case 0x8B:
		return wasm.UnaryNumeric{Op: wasm.OpAbsoluteValue, Type: wasm.ValueTypeF32}, true
	case 0x8C:
		return wasm.UnaryNumeric{Op: wasm.OpNegate, Type: wasm.ValueTypeF32}, true
	case 0x8D:
		return wasm.UnaryNumeric{Op: wasm.OpCeiling, Type: wasm.ValueTypeF32}, true
	case 0x8E:
		return wasm.UnaryNumeric{Op: wasm.OpFloor, Type: wasm.ValueTypeF32}, true
	case 0x8F:
		return wasm.UnaryNumeric{Op: wasm.OpTruncate, Type: wasm.ValueTypeF32}, true
	case 0x90:
		return wasm.UnaryNumeric{Op: wasm.OpNearest, Type: wasm.ValueTypeF32}, true
	case 0x91:
		return wasm.UnaryNumeric{Op: wasm.OpSquareRoot, Type: wasm.ValueTypeF32}, true
	case 0x92:
		return wasm.BinaryNumeric{Op: wasm.OpAdd, Type: wasm.ValueTypeF32}, true
	case 0x93:
		return wasm.BinaryNumeric{Op: wasm.OpSubtract, Type: wasm.ValueTypeF32}, true
	case 0x94:
		return wasm.BinaryNumeric{Op: wasm.OpMultiply, Type: wasm.ValueTypeF32}, true
	case 0x95:
		return wasm.BinaryNumeric{Op: wasm.OpDivideFloat, Type: wasm.ValueTypeF32}, true
	case 0x96:
		return wasm.BinaryNumeric{Op: wasm.OpMinimum, Type: wasm.ValueTypeF32}, true
	case 0x97:
		return wasm.BinaryNumeric{Op: wasm.OpMaximum, Type: wasm.ValueTypeF32}, true
	case 0x98:
		return wasm.BinaryNumeric{Op: wasm.OpCopySign, Type: wasm.ValueTypeF32}, true

	case 0x99:
		return wasm.UnaryNumeric{Op: wasm.OpAbsoluteValue, Type: wasm.ValueTypeF64}, true
	case 0x9A:
		return wasm.UnaryNumeric{Op: wasm.OpNegate, Type: wasm.ValueTypeF64}, true
	case 0x9B:
		return wasm.UnaryNumeric{Op: wasm.OpCeiling, Type: wasm.ValueTypeF64}, true
	case 0x9C:
		return wasm.UnaryNumeric{Op: wasm.OpFloor, Type: wasm.ValueTypeF64}, true
	case 0x9D:
		return wasm.UnaryNumeric{Op: wasm.OpTruncate, Type: wasm.ValueTypeF64}, true
	case 0x9E:
		return wasm.UnaryNumeric{Op: wasm.OpNearest, Type: wasm.ValueTypeF64}, true
	case 0x9F:
		return wasm.UnaryNumeric{Op: wasm.OpSquareRoot, Type: wasm.ValueTypeF64}, true
	case 0xA0:
		return wasm.BinaryNumeric{Op: wasm.OpAdd, Type: wasm.ValueTypeF64}, true
	case 0xA1:
		return wasm.BinaryNumeric{Op: wasm.OpSubtract, Type: wasm.ValueTypeF64}, true
	case 0xA2:
		return wasm.BinaryNumeric{Op: wasm.OpMultiply, Type: wasm.ValueTypeF64}, true
	case 0xA3:
		return wasm.BinaryNumeric{Op: wasm.OpDivideFloat, Type: wasm.ValueTypeF64}, true
	case 0xA4:
		return wasm.BinaryNumeric{Op: wasm.OpMinimum, Type: wasm.ValueTypeF64}, true
	case 0xA5:
		return wasm.BinaryNumeric{Op: wasm.OpMaximum, Type: wasm.ValueTypeF64}, true
	case 0xA6:
		return wasm.BinaryNumeric{Op: wasm.OpCopySign, Type: wasm.ValueTypeF64}, true

	case 0xA7:
		return wasm.UnaryNumeric{Op: wasm.OpWrap, Type: wasm.ValueTypeI32}, true
	case 0xA8:
		return wasm.ConvertAndTruncate{Destination: wasm.IntegerTypeI32, Source: wasm.FloatTypeF32, Sign: wasm.SignExtensionSigned}, true
	case 0xA9:
		return wasm.ConvertAndTruncate{Destination: wasm.IntegerTypeI32, Source: wasm.FloatTypeF32, Sign: wasm.SignExtensionUnsigned}, true
	case 0xAA:
		return wasm.ConvertAndTruncate{Destination: wasm.IntegerTypeI32, Source: wasm.FloatTypeF64, Sign: wasm.SignExtensionSigned}, true
	case 0xAB:
		return wasm.ConvertAndTruncate{Destination: wasm.IntegerTypeI32, Source: wasm.FloatTypeF64, Sign: wasm.SignExtensionUnsigned}, true
	case 0xAC:
		return wasm.ExtendWithSignExtension{Sign: wasm.SignExtensionSigned}, true
	case 0xAD:
		return wasm.ExtendWithSignExtension{Sign: wasm.SignExtensionUnsigned}, true
	case 0xAE:
		return wasm.ConvertAndTruncate{Destination: wasm.IntegerTypeI64, Source: wasm.FloatTypeF32, Sign: wasm.SignExtensionSigned}, true
	case 0xAF:
		return wasm.ConvertAndTruncate{Destination: wasm.IntegerTypeI64, Source: wasm.FloatTypeF32, Sign: wasm.SignExtensionUnsigned}, true
	case 0xB0:
		return wasm.ConvertAndTruncate{Destination: wasm.IntegerTypeI64, Source: wasm.FloatTypeF64, Sign: wasm.SignExtensionSigned}, true
	case 0xB1:
		return wasm.ConvertAndTruncate{Destination: wasm.IntegerTypeI64, Source: wasm.FloatTypeF64, Sign: wasm.SignExtensionUnsigned}, true
	case 0xB2:
		return wasm.Convert{Destination: wasm.FloatTypeF32, Source: wasm.IntegerTypeI32, Sign: wasm.SignExtensionSigned}, true
	case 0xB3:
		return wasm.Convert{Destination: wasm.FloatTypeF32, Source: wasm.IntegerTypeI32, Sign: wasm.SignExtensionUnsigned}, true
	case 0xB4:
		return wasm.Convert{Destination: wasm.FloatTypeF32, Source: wasm.IntegerTypeI64, Sign: wasm.SignExtensionSigned}, true
	case 0xB5:
		return wasm.Convert{Destination: wasm.FloatTypeF32, Source: wasm.IntegerTypeI64, Sign: wasm.SignExtensionUnsigned}, true
	case 0xB6:
		return wasm.UnaryNumeric{Op: wasm.OpDemote, Type: wasm.ValueTypeF32}, true
	case 0xB7:
		return wasm.Convert{Destination: wasm.FloatTypeF64, Source: wasm.IntegerTypeI32, Sign: wasm.SignExtensionSigned}, true
	case 0xB8:
		return wasm.Convert{Destination: wasm.FloatTypeF64, Source: wasm.IntegerTypeI32, Sign: wasm.SignExtensionUnsigned}, true
	case 0xB9:
		return wasm.Convert{Destination: wasm.FloatTypeF64, Source: wasm.IntegerTypeI64, Sign: wasm.SignExtensionSigned}, true
	case 0xBA:
		return wasm.Convert{Destination: wasm.FloatTypeF64, Source: wasm.IntegerTypeI64, Sign: wasm.SignExtensionUnsigned}, true
	case 0xBB:
		return wasm.UnaryNumeric{Op: wasm.OpPromote, Type: wasm.ValueTypeF64}, true
	case 0xBC:
		return wasm.ReinterpretFloat{Destination: wasm.IntegerTypeI32, Source: wasm.FloatTypeF32}, true
	case 0xBD:
		return wasm.ReinterpretFloat{Destination: wasm.IntegerTypeI64, Source: wasm.FloatTypeF64}, true
	case 0xBE:
		return wasm.ReinterpretInteger{Destination: wasm.FloatTypeF32, Source: wasm.IntegerTypeI32}, true
	case 0xBF:
		return wasm.ReinterpretInteger{Destination: wasm.FloatTypeF64, Source: wasm.IntegerTypeI64}, true

	default:
		return nil, false
	}
}
