package binary

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/misalcedo/wasm-ast/internal/wasm"
)

func TestUnaryOpcode_perType(t *testing.T) {
	require.Equal(t, byte(0x67), unaryOpcode(wasm.OpCountLeadingZeros, wasm.ValueTypeI32))
	require.Equal(t, byte(0x79), unaryOpcode(wasm.OpCountLeadingZeros, wasm.ValueTypeI64))
	require.Equal(t, byte(0x8B), unaryOpcode(wasm.OpAbsoluteValue, wasm.ValueTypeF32))
	require.Equal(t, byte(0x99), unaryOpcode(wasm.OpAbsoluteValue, wasm.ValueTypeF64))
	require.Equal(t, byte(0xA7), unaryOpcode(wasm.OpWrap, wasm.ValueTypeI32))
	require.Equal(t, byte(0xB6), unaryOpcode(wasm.OpDemote, wasm.ValueTypeF32))
	require.Equal(t, byte(0xBB), unaryOpcode(wasm.OpPromote, wasm.ValueTypeF64))
}

func TestBinaryOpcode_divideFloat(t *testing.T) {
	require.Equal(t, byte(0x95), binaryOpcode(wasm.OpDivideFloat, wasm.ValueTypeF32))
	require.Equal(t, byte(0xA3), binaryOpcode(wasm.OpDivideFloat, wasm.ValueTypeF64))
}

func TestSignedBinaryOpcode_signedness(t *testing.T) {
	require.Equal(t, byte(0x6D), signedBinaryOpcode(wasm.OpDivideInteger, wasm.IntegerTypeI32, wasm.SignExtensionSigned))
	require.Equal(t, byte(0x6E), signedBinaryOpcode(wasm.OpDivideInteger, wasm.IntegerTypeI32, wasm.SignExtensionUnsigned))
	require.Equal(t, byte(0x7F), signedBinaryOpcode(wasm.OpDivideInteger, wasm.IntegerTypeI64, wasm.SignExtensionSigned))
	require.Equal(t, byte(0x80), signedBinaryOpcode(wasm.OpDivideInteger, wasm.IntegerTypeI64, wasm.SignExtensionUnsigned))
}

func TestConvertTruncateOpcode_allCombinations(t *testing.T) {
	require.Equal(t, byte(0xA8), convertTruncateOpcode(wasm.IntegerTypeI32, wasm.FloatTypeF32, wasm.SignExtensionSigned))
	require.Equal(t, byte(0xA9), convertTruncateOpcode(wasm.IntegerTypeI32, wasm.FloatTypeF32, wasm.SignExtensionUnsigned))
	require.Equal(t, byte(0xAA), convertTruncateOpcode(wasm.IntegerTypeI32, wasm.FloatTypeF64, wasm.SignExtensionSigned))
	require.Equal(t, byte(0xAB), convertTruncateOpcode(wasm.IntegerTypeI32, wasm.FloatTypeF64, wasm.SignExtensionUnsigned))
	require.Equal(t, byte(0xAE), convertTruncateOpcode(wasm.IntegerTypeI64, wasm.FloatTypeF32, wasm.SignExtensionSigned))
	require.Equal(t, byte(0xAF), convertTruncateOpcode(wasm.IntegerTypeI64, wasm.FloatTypeF32, wasm.SignExtensionUnsigned))
	require.Equal(t, byte(0xB0), convertTruncateOpcode(wasm.IntegerTypeI64, wasm.FloatTypeF64, wasm.SignExtensionSigned))
	require.Equal(t, byte(0xB1), convertTruncateOpcode(wasm.IntegerTypeI64, wasm.FloatTypeF64, wasm.SignExtensionUnsigned))
}

func TestSaturatingTruncateOpcode_allCombinations(t *testing.T) {
	require.Equal(t, uint32(0), saturatingTruncateOpcode(wasm.IntegerTypeI32, wasm.FloatTypeF32, wasm.SignExtensionSigned))
	require.Equal(t, uint32(1), saturatingTruncateOpcode(wasm.IntegerTypeI32, wasm.FloatTypeF32, wasm.SignExtensionUnsigned))
	require.Equal(t, uint32(2), saturatingTruncateOpcode(wasm.IntegerTypeI32, wasm.FloatTypeF64, wasm.SignExtensionSigned))
	require.Equal(t, uint32(3), saturatingTruncateOpcode(wasm.IntegerTypeI32, wasm.FloatTypeF64, wasm.SignExtensionUnsigned))
	require.Equal(t, uint32(4), saturatingTruncateOpcode(wasm.IntegerTypeI64, wasm.FloatTypeF32, wasm.SignExtensionSigned))
	require.Equal(t, uint32(5), saturatingTruncateOpcode(wasm.IntegerTypeI64, wasm.FloatTypeF32, wasm.SignExtensionUnsigned))
	require.Equal(t, uint32(6), saturatingTruncateOpcode(wasm.IntegerTypeI64, wasm.FloatTypeF64, wasm.SignExtensionSigned))
	require.Equal(t, uint32(7), saturatingTruncateOpcode(wasm.IntegerTypeI64, wasm.FloatTypeF64, wasm.SignExtensionUnsigned))
}

func TestConvertOpcode_allCombinations(t *testing.T) {
	require.Equal(t, byte(0xB2), convertOpcode(wasm.FloatTypeF32, wasm.IntegerTypeI32, wasm.SignExtensionSigned))
	require.Equal(t, byte(0xB3), convertOpcode(wasm.FloatTypeF32, wasm.IntegerTypeI32, wasm.SignExtensionUnsigned))
	require.Equal(t, byte(0xB4), convertOpcode(wasm.FloatTypeF32, wasm.IntegerTypeI64, wasm.SignExtensionSigned))
	require.Equal(t, byte(0xB5), convertOpcode(wasm.FloatTypeF32, wasm.IntegerTypeI64, wasm.SignExtensionUnsigned))
	require.Equal(t, byte(0xB7), convertOpcode(wasm.FloatTypeF64, wasm.IntegerTypeI32, wasm.SignExtensionSigned))
	require.Equal(t, byte(0xB8), convertOpcode(wasm.FloatTypeF64, wasm.IntegerTypeI32, wasm.SignExtensionUnsigned))
	require.Equal(t, byte(0xB9), convertOpcode(wasm.FloatTypeF64, wasm.IntegerTypeI64, wasm.SignExtensionSigned))
	require.Equal(t, byte(0xBA), convertOpcode(wasm.FloatTypeF64, wasm.IntegerTypeI64, wasm.SignExtensionUnsigned))
}

func TestDecodeSimpleOpcode_unknown(t *testing.T) {
	_, ok := decodeSimpleOpcode(0xEE)
	require.False(t, ok)
}

// Every opcode byte in the 0x45-0xBF range that decodeSimpleOpcode handles
// must decode to a distinct instruction value: no two bytes may collapse to
// the same (op, type) pair, since that would make the encoder's choice
// ambiguous on the way back.
func TestDecodeSimpleOpcode_opcodesAreUnique(t *testing.T) {
	seen := map[wasm.Instruction]byte{}
	for op := 0x45; op <= 0xBF; op++ {
		ins, ok := decodeSimpleOpcode(byte(op))
		if !ok {
			continue
		}
		if prior, exists := seen[ins]; exists {
			t.Fatalf("opcode 0x%x and 0x%x both decode to %#v", prior, op, ins)
		}
		seen[ins] = byte(op)
	}
	require.NotEmpty(t, seen)
}
