package binary

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/misalcedo/wasm-ast/internal/wasm"
)

func roundTripValueType(t *testing.T, vt wasm.ValueType, features wasm.Features) wasm.ValueType {
	t.Helper()
	var buf bytes.Buffer
	e := NewEncoder(&buf)
	require.NoError(t, e.ValueType(vt))

	d := NewDecoder(bytes.NewReader(buf.Bytes()), features)
	got, err := d.ValueType()
	require.NoError(t, err)
	return got
}

func TestValueType_roundTrip(t *testing.T) {
	for _, vt := range []wasm.ValueType{
		wasm.ValueTypeI32, wasm.ValueTypeI64, wasm.ValueTypeF32, wasm.ValueTypeF64,
		wasm.ValueTypeFuncref, wasm.ValueTypeExternref,
	} {
		t.Run(wasm.ValueTypeName(vt), func(t *testing.T) {
			require.Equal(t, vt, roundTripValueType(t, vt, wasm.FeaturesAll))
		})
	}
}

func TestValueType_invalid(t *testing.T) {
	d := NewDecoder(bytes.NewReader([]byte{0x01}), wasm.FeaturesAll)
	_, err := d.ValueType()
	require.Error(t, err)
}

func TestReferenceType_gatedByFeature(t *testing.T) {
	var buf bytes.Buffer
	e := NewEncoder(&buf)
	require.NoError(t, e.ReferenceType(wasm.ValueTypeExternref))

	d := NewDecoder(bytes.NewReader(buf.Bytes()), wasm.Features1_0)
	_, err := d.ReferenceType()
	require.Error(t, err)

	d = NewDecoder(bytes.NewReader(buf.Bytes()), wasm.FeatureReferenceTypes)
	got, err := d.ReferenceType()
	require.NoError(t, err)
	require.Equal(t, wasm.ValueTypeExternref, got)
}

func TestResultType_roundTrip(t *testing.T) {
	tests := []wasm.ResultType{
		wasm.NewResultType(),
		wasm.NewResultType(wasm.ValueTypeI32),
		wasm.NewResultType(wasm.ValueTypeI32, wasm.ValueTypeI64, wasm.ValueTypeF32, wasm.ValueTypeF64),
	}
	for _, rt := range tests {
		var buf bytes.Buffer
		e := NewEncoder(&buf)
		require.NoError(t, e.ResultType(rt))

		d := NewDecoder(bytes.NewReader(buf.Bytes()), wasm.FeaturesAll)
		got, err := d.ResultType()
		require.NoError(t, err)
		require.Equal(t, rt.Types, got.Types)
	}
}

func TestFunctionType_roundTrip(t *testing.T) {
	ft := wasm.NewFunctionType([]wasm.ValueType{wasm.ValueTypeI32, wasm.ValueTypeI64}, []wasm.ValueType{wasm.ValueTypeF64})

	var buf bytes.Buffer
	e := NewEncoder(&buf)
	require.NoError(t, e.FunctionType(ft))
	require.Equal(t, byte(functionTypeTag), buf.Bytes()[0])

	d := NewDecoder(bytes.NewReader(buf.Bytes()), wasm.FeaturesAll)
	got, err := d.FunctionType()
	require.NoError(t, err)
	require.Equal(t, ft, got)
}

func TestLimit_roundTrip(t *testing.T) {
	tests := []wasm.Limit{
		wasm.NewLimit(0),
		wasm.NewLimit(10),
		wasm.NewLimitMax(1, 5),
	}
	for _, l := range tests {
		var buf bytes.Buffer
		e := NewEncoder(&buf)
		require.NoError(t, e.Limit(l))

		d := NewDecoder(bytes.NewReader(buf.Bytes()), wasm.FeaturesAll)
		got, err := d.Limit()
		require.NoError(t, err)
		require.Equal(t, l.Min, got.Min)
		require.Equal(t, l.HasMax(), got.HasMax())
		if l.HasMax() {
			require.Equal(t, *l.Max, *got.Max)
		}
	}
}

func TestMemoryType_roundTrip(t *testing.T) {
	mt := wasm.NewMemoryType(wasm.NewLimitMax(1, 2))

	var buf bytes.Buffer
	e := NewEncoder(&buf)
	require.NoError(t, e.MemoryType(mt))

	d := NewDecoder(bytes.NewReader(buf.Bytes()), wasm.FeaturesAll)
	got, err := d.MemoryType()
	require.NoError(t, err)
	require.Equal(t, mt.Limit.Min, got.Limit.Min)
}

func TestTableType_roundTrip(t *testing.T) {
	tt := wasm.NewTableType(wasm.ValueTypeFuncref, wasm.NewLimit(3))

	var buf bytes.Buffer
	e := NewEncoder(&buf)
	require.NoError(t, e.TableType(tt))

	d := NewDecoder(bytes.NewReader(buf.Bytes()), wasm.FeaturesAll)
	got, err := d.TableType()
	require.NoError(t, err)
	require.Equal(t, tt.ElementType, got.ElementType)
	require.Equal(t, tt.Limit.Min, got.Limit.Min)
}

func TestGlobalType_roundTrip(t *testing.T) {
	tests := []wasm.GlobalType{
		wasm.NewGlobalType(wasm.ValueTypeI32, true),
		wasm.NewGlobalType(wasm.ValueTypeF64, false),
	}
	for _, gt := range tests {
		var buf bytes.Buffer
		e := NewEncoder(&buf)
		require.NoError(t, e.GlobalType(gt))

		d := NewDecoder(bytes.NewReader(buf.Bytes()), wasm.FeaturesAll)
		got, err := d.GlobalType()
		require.NoError(t, err)
		require.Equal(t, gt, got)
	}
}
