package wasm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModule_AddType(t *testing.T) {
	m := NewModule()
	idx := m.AddType(NewFunctionType([]ValueType{ValueTypeI32}, []ValueType{ValueTypeI64}))
	require.Equal(t, uint32(0), idx)
	require.Equal(t, FunctionType{
		Parameters: NewResultType(ValueTypeI32),
		Results:    NewResultType(ValueTypeI64),
	}, m.FunctionTypes[0])

	idx = m.AddType(NewFunctionType(nil, nil))
	require.Equal(t, uint32(1), idx)
}

func TestModule_AddFunction_accountsForImports(t *testing.T) {
	m := NewModule()
	_, err := m.AddImport(Import{Module: "env", Name: "f0", Description: ImportDescriptionFunction{Type: 0}})
	require.NoError(t, err)

	idx, err := m.AddFunction(NewFunction(0, ResultType{}, Expression{}))
	require.NoError(t, err)
	require.Equal(t, uint32(1), idx, "defined functions are indexed after imported functions")

	idx, err = m.AddFunction(NewFunction(0, ResultType{}, Expression{}))
	require.NoError(t, err)
	require.Equal(t, uint32(2), idx)
}

func TestModule_AddTable_AddMemory_AddGlobal_accountForImports(t *testing.T) {
	m := NewModule()
	_, err := m.AddImport(Import{Module: "env", Name: "t", Description: ImportDescriptionTable{}})
	require.NoError(t, err)
	_, err = m.AddImport(Import{Module: "env", Name: "mem", Description: ImportDescriptionMemory{}})
	require.NoError(t, err)
	_, err = m.AddImport(Import{Module: "env", Name: "g", Description: ImportDescriptionGlobal{}})
	require.NoError(t, err)

	tableIdx, err := m.AddTable(NewTable(NewTableType(ReferenceTypeFuncref, NewLimit(0))))
	require.NoError(t, err)
	require.Equal(t, uint32(1), tableIdx)

	memIdx, err := m.AddMemory(NewMemory(NewMemoryType(NewLimit(1))))
	require.NoError(t, err)
	require.Equal(t, uint32(1), memIdx)

	globalIdx, err := m.AddGlobal(ImmutableGlobal(ValueTypeI32, NewExpression(I32Constant{Value: 1})))
	require.NoError(t, err)
	require.Equal(t, uint32(1), globalIdx)
}

func TestModule_AddImport_indexesWithinOwnKind(t *testing.T) {
	m := NewModule()
	fnIdx, err := m.AddImport(Import{Module: "env", Name: "f0", Description: ImportDescriptionFunction{}})
	require.NoError(t, err)
	require.Equal(t, uint32(0), fnIdx)

	memIdx, err := m.AddImport(Import{Module: "env", Name: "mem", Description: ImportDescriptionMemory{}})
	require.NoError(t, err)
	require.Equal(t, uint32(0), memIdx, "different kind, own index space")

	fnIdx, err = m.AddImport(Import{Module: "env", Name: "f1", Description: ImportDescriptionFunction{}})
	require.NoError(t, err)
	require.Equal(t, uint32(1), fnIdx)
}

func TestModule_AddElement_AddData_positional(t *testing.T) {
	m := NewModule()
	idx, err := m.AddElement(NewPassiveElement(ReferenceTypeFuncref, nil))
	require.NoError(t, err)
	require.Equal(t, uint32(0), idx)

	idx, err = m.AddElement(NewPassiveElement(ReferenceTypeFuncref, nil))
	require.NoError(t, err)
	require.Equal(t, uint32(1), idx)

	dataIdx, err := m.AddData(NewPassiveData([]byte("x")))
	require.NoError(t, err)
	require.Equal(t, uint32(0), dataIdx)
}

func TestModule_AddCustom_insertionPoints(t *testing.T) {
	m := NewModule()
	m.AddCustom(SectionIDType, Custom{Name: "before-type", Content: []byte{1}})
	m.AddCustom(SectionIDType, Custom{Name: "also-before-type", Content: []byte{2}})
	m.AddCustom(SectionIDDataCount+1, Custom{Name: "trailing", Content: []byte{3}})

	require.Len(t, m.Customs[SectionIDType], 2)
	require.Equal(t, "before-type", m.Customs[SectionIDType][0].Name)
	require.Equal(t, "trailing", m.Customs[SectionIDDataCount+1][0].Name)
}

func TestModule_IncludeDataCount(t *testing.T) {
	m := NewModule()
	require.Nil(t, m.DataCount)

	_, err := m.AddData(NewPassiveData([]byte("x")))
	require.NoError(t, err)
	m.IncludeDataCount()
	require.NotNil(t, m.DataCount)
	require.Equal(t, uint32(1), *m.DataCount)

	// A later AddData does not retroactively update a snapshot already taken.
	_, err = m.AddData(NewPassiveData([]byte("y")))
	require.NoError(t, err)
	require.Equal(t, uint32(1), *m.DataCount)
}
