package binary

import (
	"bytes"
	"fmt"

	"go.uber.org/zap"

	"github.com/misalcedo/wasm-ast/internal/codeclog"
	"github.com/misalcedo/wasm-ast/internal/wasm"
)

const (
	externFunc   = 0x00
	externTable  = 0x01
	externMemory = 0x02
	externGlobal = 0x03
)

func (e *Encoder) ImportDescription(d wasm.ImportDescription) error {
	switch v := d.(type) {
	case wasm.ImportDescriptionFunction:
		if err := e.Byte(externFunc); err != nil {
			return err
		}
		return e.U32(v.Type)
	case wasm.ImportDescriptionTable:
		if err := e.Byte(externTable); err != nil {
			return err
		}
		return e.TableType(v.Type)
	case wasm.ImportDescriptionMemory:
		if err := e.Byte(externMemory); err != nil {
			return err
		}
		return e.MemoryType(v.Type)
	case wasm.ImportDescriptionGlobal:
		if err := e.Byte(externGlobal); err != nil {
			return err
		}
		return e.GlobalType(v.Type)
	default:
		return fmt.Errorf("unsupported import description %T", d)
	}
}

func (d *Decoder) ImportDescription() (wasm.ImportDescription, error) {
	tag, err := d.Byte()
	if err != nil {
		return nil, err
	}
	switch tag {
	case externFunc:
		t, err := d.U32()
		return wasm.ImportDescriptionFunction{Type: t}, err
	case externTable:
		t, err := d.TableType()
		return wasm.ImportDescriptionTable{Type: t}, err
	case externMemory:
		t, err := d.MemoryType()
		return wasm.ImportDescriptionMemory{Type: t}, err
	case externGlobal:
		t, err := d.GlobalType()
		return wasm.ImportDescriptionGlobal{Type: t}, err
	default:
		return nil, fmt.Errorf("invalid import description tag 0x%02x", tag)
	}
}

func (e *Encoder) Import(i wasm.Import) error {
	if err := e.Name(i.Module); err != nil {
		return err
	}
	if err := e.Name(i.Name); err != nil {
		return err
	}
	return e.ImportDescription(i.Description)
}

func (d *Decoder) Import() (wasm.Import, error) {
	module, err := d.Name()
	if err != nil {
		return wasm.Import{}, err
	}
	name, err := d.Name()
	if err != nil {
		return wasm.Import{}, err
	}
	desc, err := d.ImportDescription()
	if err != nil {
		return wasm.Import{}, err
	}
	return wasm.Import{Module: module, Name: name, Description: desc}, nil
}

func (e *Encoder) ExportDescription(d wasm.ExportDescription) error {
	var tag byte
	switch d.(type) {
	case wasm.ExportDescriptionFunction:
		tag = externFunc
	case wasm.ExportDescriptionTable:
		tag = externTable
	case wasm.ExportDescriptionMemory:
		tag = externMemory
	case wasm.ExportDescriptionGlobal:
		tag = externGlobal
	default:
		return fmt.Errorf("unsupported export description %T", d)
	}
	if err := e.Byte(tag); err != nil {
		return err
	}
	return e.U32(d.Index())
}

func (d *Decoder) ExportDescription() (wasm.ExportDescription, error) {
	tag, err := d.Byte()
	if err != nil {
		return nil, err
	}
	idx, err := d.U32()
	if err != nil {
		return nil, err
	}
	switch tag {
	case externFunc:
		return wasm.ExportDescriptionFunction{Idx: idx}, nil
	case externTable:
		return wasm.ExportDescriptionTable{Idx: idx}, nil
	case externMemory:
		return wasm.ExportDescriptionMemory{Idx: idx}, nil
	case externGlobal:
		return wasm.ExportDescriptionGlobal{Idx: idx}, nil
	default:
		return nil, fmt.Errorf("invalid export description tag 0x%02x", tag)
	}
}

func (e *Encoder) Export(x wasm.Export) error {
	if err := e.Name(x.Name); err != nil {
		return err
	}
	return e.ExportDescription(x.Description)
}

func (d *Decoder) Export() (wasm.Export, error) {
	name, err := d.Name()
	if err != nil {
		return wasm.Export{}, err
	}
	desc, err := d.ExportDescription()
	if err != nil {
		return wasm.Export{}, err
	}
	return wasm.Export{Name: name, Description: desc}, nil
}

func (e *Encoder) Table(t wasm.Table) error { return e.TableType(t.Type) }

func (d *Decoder) Table() (wasm.Table, error) {
	t, err := d.TableType()
	return wasm.NewTable(t), err
}

func (e *Encoder) Memory(m wasm.Memory) error { return e.MemoryType(m.Type) }

func (d *Decoder) Memory() (wasm.Memory, error) {
	t, err := d.MemoryType()
	return wasm.NewMemory(t), err
}

func (e *Encoder) Global(g wasm.Global) error {
	if err := e.GlobalType(g.Type); err != nil {
		return err
	}
	return e.Expression(g.Initializer)
}

func (d *Decoder) Global() (wasm.Global, error) {
	t, err := d.GlobalType()
	if err != nil {
		return wasm.Global{}, err
	}
	init, err := d.Expression()
	if err != nil {
		return wasm.Global{}, err
	}
	return wasm.NewGlobal(t, init), nil
}

// elementKindFuncref is the single byte used by the four element segment
// encodings that carry a funcref elemkind marker instead of a full
// reference type.
const elementKindFuncref = 0x00

// Element writes one of the 8 element segment encodings (flags 0-7), chosen
// from el's Mode, its Type, and whether its Initializers are all plain
// function references. Flags 0-4 imply funcref, so they are used only for
// funcref segments.
func (e *Encoder) Element(el wasm.Element) error {
	indices, isFuncIndices := wasm.FunctionIndexInitializers(el.Initializers)
	isFuncIndices = isFuncIndices && el.Type == wasm.ReferenceTypeFuncref
	codeclog.Logger().Debug("selecting element segment variant",
		zap.Bool("func-index-shape", isFuncIndices), zap.String("mode", fmt.Sprintf("%T", el.Mode)))
	switch mode := el.Mode.(type) {
	case wasm.ElementModeActive:
		if mode.Table == 0 && isFuncIndices && el.Type == wasm.ReferenceTypeFuncref {
			if err := e.U32(0); err != nil {
				return err
			}
			if err := e.Expression(mode.Offset); err != nil {
				return err
			}
			return e.Vector(len(indices), func(i int) error { return e.U32(indices[i]) })
		}
		if isFuncIndices {
			if err := e.U32(2); err != nil {
				return err
			}
			if err := e.U32(mode.Table); err != nil {
				return err
			}
			if err := e.Expression(mode.Offset); err != nil {
				return err
			}
			if err := e.Byte(elementKindFuncref); err != nil {
				return err
			}
			return e.Vector(len(indices), func(i int) error { return e.U32(indices[i]) })
		}
		if mode.Table == 0 && el.Type == wasm.ReferenceTypeFuncref {
			if err := e.U32(4); err != nil {
				return err
			}
			if err := e.Expression(mode.Offset); err != nil {
				return err
			}
			return e.Vector(len(el.Initializers), func(i int) error { return e.Expression(el.Initializers[i]) })
		}
		if err := e.U32(6); err != nil {
			return err
		}
		if err := e.U32(mode.Table); err != nil {
			return err
		}
		if err := e.Expression(mode.Offset); err != nil {
			return err
		}
		if err := e.ReferenceType(el.Type); err != nil {
			return err
		}
		return e.Vector(len(el.Initializers), func(i int) error { return e.Expression(el.Initializers[i]) })
	case wasm.ElementModePassive:
		if isFuncIndices {
			if err := e.U32(1); err != nil {
				return err
			}
			if err := e.Byte(elementKindFuncref); err != nil {
				return err
			}
			return e.Vector(len(indices), func(i int) error { return e.U32(indices[i]) })
		}
		if err := e.U32(5); err != nil {
			return err
		}
		if err := e.ReferenceType(el.Type); err != nil {
			return err
		}
		return e.Vector(len(el.Initializers), func(i int) error { return e.Expression(el.Initializers[i]) })
	case wasm.ElementModeDeclarative:
		if isFuncIndices {
			if err := e.U32(3); err != nil {
				return err
			}
			if err := e.Byte(elementKindFuncref); err != nil {
				return err
			}
			return e.Vector(len(indices), func(i int) error { return e.U32(indices[i]) })
		}
		if err := e.U32(7); err != nil {
			return err
		}
		if err := e.ReferenceType(el.Type); err != nil {
			return err
		}
		return e.Vector(len(el.Initializers), func(i int) error { return e.Expression(el.Initializers[i]) })
	default:
		return fmt.Errorf("unsupported element mode %T", mode)
	}
}

func (d *Decoder) Element() (wasm.Element, error) {
	flags, err := d.U32()
	if err != nil {
		return wasm.Element{}, err
	}
	toExpressions := func(indices []uint32) []wasm.Expression {
		out := make([]wasm.Expression, len(indices))
		for i, idx := range indices {
			out[i] = wasm.NewExpression(wasm.ReferenceFunction{Index: idx})
		}
		return out
	}
	readIndices := func() ([]uint32, error) {
		var indices []uint32
		_, err := d.Vector(func(i int) error {
			idx, err := d.U32()
			if err != nil {
				return err
			}
			indices = append(indices, idx)
			return nil
		})
		return indices, err
	}
	readExpressions := func() ([]wasm.Expression, error) {
		var exprs []wasm.Expression
		_, err := d.Vector(func(i int) error {
			expr, err := d.Expression()
			if err != nil {
				return err
			}
			exprs = append(exprs, expr)
			return nil
		})
		return exprs, err
	}
	switch flags {
	case 0:
		offset, err := d.Expression()
		if err != nil {
			return wasm.Element{}, err
		}
		indices, err := readIndices()
		if err != nil {
			return wasm.Element{}, err
		}
		return wasm.NewActiveElement(0, offset, wasm.ReferenceTypeFuncref, toExpressions(indices)), nil
	case 1:
		if _, err := d.Byte(); err != nil {
			return wasm.Element{}, err
		}
		indices, err := readIndices()
		if err != nil {
			return wasm.Element{}, err
		}
		return wasm.NewPassiveElement(wasm.ReferenceTypeFuncref, toExpressions(indices)), nil
	case 2:
		table, err := d.U32()
		if err != nil {
			return wasm.Element{}, err
		}
		offset, err := d.Expression()
		if err != nil {
			return wasm.Element{}, err
		}
		if _, err := d.Byte(); err != nil {
			return wasm.Element{}, err
		}
		indices, err := readIndices()
		if err != nil {
			return wasm.Element{}, err
		}
		return wasm.NewActiveElement(table, offset, wasm.ReferenceTypeFuncref, toExpressions(indices)), nil
	case 3:
		if _, err := d.Byte(); err != nil {
			return wasm.Element{}, err
		}
		indices, err := readIndices()
		if err != nil {
			return wasm.Element{}, err
		}
		return wasm.NewDeclarativeElement(wasm.ReferenceTypeFuncref, toExpressions(indices)), nil
	case 4:
		offset, err := d.Expression()
		if err != nil {
			return wasm.Element{}, err
		}
		exprs, err := readExpressions()
		if err != nil {
			return wasm.Element{}, err
		}
		return wasm.NewActiveElement(0, offset, wasm.ReferenceTypeFuncref, exprs), nil
	case 5:
		kind, err := d.ReferenceType()
		if err != nil {
			return wasm.Element{}, err
		}
		exprs, err := readExpressions()
		if err != nil {
			return wasm.Element{}, err
		}
		return wasm.NewPassiveElement(kind, exprs), nil
	case 6:
		table, err := d.U32()
		if err != nil {
			return wasm.Element{}, err
		}
		offset, err := d.Expression()
		if err != nil {
			return wasm.Element{}, err
		}
		kind, err := d.ReferenceType()
		if err != nil {
			return wasm.Element{}, err
		}
		exprs, err := readExpressions()
		if err != nil {
			return wasm.Element{}, err
		}
		return wasm.NewActiveElement(table, offset, kind, exprs), nil
	case 7:
		kind, err := d.ReferenceType()
		if err != nil {
			return wasm.Element{}, err
		}
		exprs, err := readExpressions()
		if err != nil {
			return wasm.Element{}, err
		}
		return wasm.NewDeclarativeElement(kind, exprs), nil
	default:
		return wasm.Element{}, fmt.Errorf("invalid element segment flags %d", flags)
	}
}

func (e *Encoder) Data(d wasm.Data) error {
	switch mode := d.Mode.(type) {
	case wasm.DataModeActive:
		if mode.Memory == 0 {
			if err := e.U32(0); err != nil {
				return err
			}
			if err := e.Expression(mode.Offset); err != nil {
				return err
			}
			return e.VectorBytes(d.Bytes)
		}
		if err := e.U32(2); err != nil {
			return err
		}
		if err := e.U32(mode.Memory); err != nil {
			return err
		}
		if err := e.Expression(mode.Offset); err != nil {
			return err
		}
		return e.VectorBytes(d.Bytes)
	case wasm.DataModePassive:
		if err := e.U32(1); err != nil {
			return err
		}
		return e.VectorBytes(d.Bytes)
	default:
		return fmt.Errorf("unsupported data mode %T", mode)
	}
}

func (d *Decoder) Data() (wasm.Data, error) {
	flags, err := d.U32()
	if err != nil {
		return wasm.Data{}, err
	}
	switch flags {
	case 0:
		offset, err := d.Expression()
		if err != nil {
			return wasm.Data{}, err
		}
		bytes, err := d.VectorBytes()
		if err != nil {
			return wasm.Data{}, err
		}
		return wasm.NewActiveData(0, offset, bytes), nil
	case 1:
		bytes, err := d.VectorBytes()
		if err != nil {
			return wasm.Data{}, err
		}
		return wasm.NewPassiveData(bytes), nil
	case 2:
		mem, err := d.U32()
		if err != nil {
			return wasm.Data{}, err
		}
		offset, err := d.Expression()
		if err != nil {
			return wasm.Data{}, err
		}
		bytes, err := d.VectorBytes()
		if err != nil {
			return wasm.Data{}, err
		}
		return wasm.NewActiveData(mem, offset, bytes), nil
	default:
		return wasm.Data{}, fmt.Errorf("invalid data segment flags %d", flags)
	}
}

// Code writes one function's entry in the code section: its body's
// byte-length prefix followed by its run-length-encoded locals and
// instruction stream.
func (e *Encoder) Code(f wasm.Function) error {
	capture := &byteCollector{}
	inner := NewEncoder(capture)
	if err := inner.locals(f.Locals); err != nil {
		return err
	}
	if err := inner.Expression(f.Body); err != nil {
		return err
	}
	return e.VectorBytes(capture.bytes)
}

// byteCollector is a minimal io.Writer accumulating every byte written to
// it. Code renders a function body into one and takes the body's length
// prefix from the collected bytes.
type byteCollector struct{ bytes []byte }

func (b *byteCollector) Write(p []byte) (int, error) {
	b.bytes = append(b.bytes, p...)
	return len(p), nil
}

// locals writes a ResultType as the code section's run-length-grouped
// local-declaration vector: consecutive equal types collapse into one
// (count, type) pair.
func (e *Encoder) locals(locals wasm.ResultType) error {
	groups := groupLocals(locals.Types)
	return e.Vector(len(groups), func(i int) error {
		if err := e.U32(groups[i].count); err != nil {
			return err
		}
		return e.ValueType(groups[i].valueType)
	})
}

type localGroup struct {
	count     uint32
	valueType wasm.ValueType
}

func groupLocals(types []wasm.ValueType) []localGroup {
	var groups []localGroup
	for _, t := range types {
		if len(groups) > 0 && groups[len(groups)-1].valueType == t {
			groups[len(groups)-1].count++
			continue
		}
		groups = append(groups, localGroup{count: 1, valueType: t})
	}
	return groups
}

func (d *Decoder) Code(typeIndex uint32) (wasm.Function, error) {
	size, err := d.U32()
	if err != nil {
		return wasm.Function{}, err
	}
	raw, err := d.Bytes(int(size))
	if err != nil {
		return wasm.Function{}, err
	}
	inner := NewDecoder(bytes.NewReader(raw), d.Features)
	var locals []wasm.ValueType
	_, err = inner.Vector(func(i int) error {
		count, err := inner.U32()
		if err != nil {
			return err
		}
		vt, err := inner.ValueType()
		if err != nil {
			return err
		}
		for j := uint32(0); j < count; j++ {
			locals = append(locals, vt)
		}
		return nil
	})
	if err != nil {
		return wasm.Function{}, err
	}
	body, err := inner.Expression()
	if err != nil {
		return wasm.Function{}, err
	}
	return wasm.NewFunction(typeIndex, wasm.NewResultType(locals...), body), nil
}

func (e *Encoder) Start(s wasm.Start) error { return e.U32(s.Function) }

func (d *Decoder) Start() (wasm.Start, error) {
	f, err := d.U32()
	return wasm.Start{Function: f}, err
}

func (e *Encoder) Custom(c wasm.Custom) error {
	if err := e.Name(c.Name); err != nil {
		return err
	}
	return e.Bytes(c.Content)
}

func (d *Decoder) Custom(contentLen int) (wasm.Custom, error) {
	start := d.Offset()
	name, err := d.Name()
	if err != nil {
		return wasm.Custom{}, err
	}
	consumed := int(d.Offset() - start)
	content, err := d.Bytes(contentLen - consumed)
	if err != nil {
		return wasm.Custom{}, err
	}
	return wasm.Custom{Name: name, Content: content}, nil
}
