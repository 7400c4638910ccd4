package binary

import (
	"fmt"

	"github.com/misalcedo/wasm-ast/internal/wasm"
)

const functionTypeTag = 0x60

func (e *Encoder) ValueType(t wasm.ValueType) error { return e.Byte(t) }

func (d *Decoder) ValueType() (wasm.ValueType, error) {
	b, err := d.Byte()
	if err != nil {
		return 0, err
	}
	switch b {
	case wasm.ValueTypeI32, wasm.ValueTypeI64, wasm.ValueTypeF32, wasm.ValueTypeF64:
		return b, nil
	case wasm.ValueTypeFuncref, wasm.ValueTypeExternref:
		return b, nil
	default:
		return 0, fmt.Errorf("invalid value type byte 0x%02x", b)
	}
}

func (e *Encoder) ReferenceType(t wasm.ReferenceType) error { return e.Byte(t) }

func (d *Decoder) ReferenceType() (wasm.ReferenceType, error) {
	b, err := d.Byte()
	if err != nil {
		return 0, err
	}
	if b != wasm.ValueTypeFuncref && b != wasm.ValueTypeExternref {
		return 0, fmt.Errorf("invalid reference type byte 0x%02x", b)
	}
	if b == wasm.ValueTypeExternref {
		if err := d.Features.Require(wasm.FeatureReferenceTypes); err != nil {
			return 0, err
		}
	}
	return b, nil
}

func (e *Encoder) ResultType(rt wasm.ResultType) error {
	return e.Vector(len(rt.Types), func(i int) error { return e.ValueType(rt.Types[i]) })
}

func (d *Decoder) ResultType() (wasm.ResultType, error) {
	var types []wasm.ValueType
	_, err := d.Vector(func(i int) error {
		t, err := d.ValueType()
		if err != nil {
			return err
		}
		types = append(types, t)
		return nil
	})
	if err != nil {
		return wasm.ResultType{}, err
	}
	return wasm.NewResultType(types...), nil
}

func (e *Encoder) FunctionType(ft wasm.FunctionType) error {
	if err := e.Byte(functionTypeTag); err != nil {
		return err
	}
	if err := e.ResultType(ft.Parameters); err != nil {
		return err
	}
	return e.ResultType(ft.Results)
}

func (d *Decoder) FunctionType() (wasm.FunctionType, error) {
	tag, err := d.Byte()
	if err != nil {
		return wasm.FunctionType{}, err
	}
	if tag != functionTypeTag {
		return wasm.FunctionType{}, fmt.Errorf("invalid function type tag 0x%02x", tag)
	}
	params, err := d.ResultType()
	if err != nil {
		return wasm.FunctionType{}, err
	}
	results, err := d.ResultType()
	if err != nil {
		return wasm.FunctionType{}, err
	}
	return wasm.FunctionType{Parameters: params, Results: results}, nil
}

func (e *Encoder) Limit(l wasm.Limit) error {
	if l.HasMax() {
		if err := e.Byte(0x01); err != nil {
			return err
		}
		if err := e.U32(l.Min); err != nil {
			return err
		}
		return e.U32(*l.Max)
	}
	if err := e.Byte(0x00); err != nil {
		return err
	}
	return e.U32(l.Min)
}

func (d *Decoder) Limit() (wasm.Limit, error) {
	tag, err := d.Byte()
	if err != nil {
		return wasm.Limit{}, err
	}
	min, err := d.U32()
	if err != nil {
		return wasm.Limit{}, err
	}
	switch tag {
	case 0x00:
		return wasm.NewLimit(min), nil
	case 0x01:
		max, err := d.U32()
		if err != nil {
			return wasm.Limit{}, err
		}
		return wasm.NewLimitMax(min, max), nil
	default:
		return wasm.Limit{}, fmt.Errorf("invalid limit tag 0x%02x", tag)
	}
}

func (e *Encoder) MemoryType(mt wasm.MemoryType) error { return e.Limit(mt.Limit) }

func (d *Decoder) MemoryType() (wasm.MemoryType, error) {
	l, err := d.Limit()
	if err != nil {
		return wasm.MemoryType{}, err
	}
	return wasm.NewMemoryType(l), nil
}

func (e *Encoder) TableType(tt wasm.TableType) error {
	if err := e.ReferenceType(tt.ElementType); err != nil {
		return err
	}
	return e.Limit(tt.Limit)
}

func (d *Decoder) TableType() (wasm.TableType, error) {
	elem, err := d.ReferenceType()
	if err != nil {
		return wasm.TableType{}, err
	}
	l, err := d.Limit()
	if err != nil {
		return wasm.TableType{}, err
	}
	return wasm.NewTableType(elem, l), nil
}

func (e *Encoder) GlobalType(gt wasm.GlobalType) error {
	if err := e.ValueType(gt.ValueType); err != nil {
		return err
	}
	mutable := byte(0x00)
	if gt.Mutable {
		mutable = 0x01
	}
	return e.Byte(mutable)
}

func (d *Decoder) GlobalType() (wasm.GlobalType, error) {
	vt, err := d.ValueType()
	if err != nil {
		return wasm.GlobalType{}, err
	}
	mutable, err := d.Byte()
	if err != nil {
		return wasm.GlobalType{}, err
	}
	if mutable != 0x00 && mutable != 0x01 {
		return wasm.GlobalType{}, fmt.Errorf("invalid mutability byte 0x%02x", mutable)
	}
	return wasm.NewGlobalType(vt, mutable == 0x01), nil
}
