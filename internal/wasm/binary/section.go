package binary

import (
	"bytes"
	"io"

	"go.uber.org/zap"

	"github.com/misalcedo/wasm-ast/internal/codeclog"
	"github.com/misalcedo/wasm-ast/internal/wasm"
)

var magic = [4]byte{0x00, 0x61, 0x73, 0x6D}
var version = [4]byte{0x01, 0x00, 0x00, 0x00}

// sectionOrder is the fixed relative order the 12 non-custom sections must
// appear in. DataCount sits between Element and Code despite its id (12)
// sorting after Code (10) and Data (11): validators need the data segment
// count before they see any memory.init/data.drop in a function body.
var sectionOrder = []wasm.SectionID{
	wasm.SectionIDType,
	wasm.SectionIDImport,
	wasm.SectionIDFunction,
	wasm.SectionIDTable,
	wasm.SectionIDMemory,
	wasm.SectionIDGlobal,
	wasm.SectionIDExport,
	wasm.SectionIDStart,
	wasm.SectionIDElement,
	wasm.SectionIDDataCount,
	wasm.SectionIDCode,
	wasm.SectionIDData,
}

// trailingCustomBucket is the insertion-point key for custom sections that
// appear after the last standard section.
const trailingCustomBucket = wasm.SectionIDDataCount + 1

// Encode renders m as a complete Wasm binary module to w.
func Encode(m *wasm.Module, w io.Writer) error {
	e := NewEncoder(w)
	if err := e.Bytes(magic[:]); err != nil {
		return emitErr("preamble", err)
	}
	if err := e.Bytes(version[:]); err != nil {
		return emitErr("preamble", err)
	}

	writeCustoms := func(before wasm.SectionID) error {
		for _, c := range m.Customs[before] {
			codeclog.Logger().Debug("emitting custom section",
				zap.String("name", c.Name), zap.Uint8("insertion-point", before))
			if err := e.section(wasm.SectionIDCustom, func(inner *Encoder) error {
				return inner.Custom(c)
			}); err != nil {
				return emitErr("custom section", err)
			}
		}
		return nil
	}

	for _, id := range sectionOrder {
		if err := writeCustoms(id); err != nil {
			return err
		}
		if err := e.standardSection(id, m); err != nil {
			return err
		}
	}
	return writeCustoms(trailingCustomBucket)
}

// section renders body into a countingWriter to learn its length, then
// writes the id byte and the u32 length, and renders body a second time
// into the real output.
func (e *Encoder) section(id wasm.SectionID, body func(*Encoder) error) error {
	counter := &countingWriter{}
	if err := body(NewEncoder(counter)); err != nil {
		return err
	}
	if err := e.Byte(id); err != nil {
		return err
	}
	if err := e.U32(uint32(counter.n)); err != nil {
		return err
	}
	return body(e)
}

func (e *Encoder) standardSection(id wasm.SectionID, m *wasm.Module) error {
	switch id {
	case wasm.SectionIDType:
		if len(m.FunctionTypes) == 0 {
			codeclog.Logger().Debug("skipping empty section", zap.String("section", sectionName(id)))
			return nil
		}
		return emitErr("type section", e.section(id, func(inner *Encoder) error {
			return inner.Vector(len(m.FunctionTypes), func(i int) error { return inner.FunctionType(m.FunctionTypes[i]) })
		}))
	case wasm.SectionIDImport:
		if len(m.Imports) == 0 {
			return nil
		}
		return emitErr("import section", e.section(id, func(inner *Encoder) error {
			return inner.Vector(len(m.Imports), func(i int) error { return inner.Import(m.Imports[i]) })
		}))
	case wasm.SectionIDFunction:
		if len(m.Functions) == 0 {
			return nil
		}
		return emitErr("function section", e.section(id, func(inner *Encoder) error {
			return inner.Vector(len(m.Functions), func(i int) error { return inner.U32(m.Functions[i].Type) })
		}))
	case wasm.SectionIDTable:
		if len(m.Tables) == 0 {
			return nil
		}
		return emitErr("table section", e.section(id, func(inner *Encoder) error {
			return inner.Vector(len(m.Tables), func(i int) error { return inner.Table(m.Tables[i]) })
		}))
	case wasm.SectionIDMemory:
		if len(m.Memories) == 0 {
			return nil
		}
		return emitErr("memory section", e.section(id, func(inner *Encoder) error {
			return inner.Vector(len(m.Memories), func(i int) error { return inner.Memory(m.Memories[i]) })
		}))
	case wasm.SectionIDGlobal:
		if len(m.Globals) == 0 {
			return nil
		}
		return emitErr("global section", e.section(id, func(inner *Encoder) error {
			return inner.Vector(len(m.Globals), func(i int) error { return inner.Global(m.Globals[i]) })
		}))
	case wasm.SectionIDExport:
		if len(m.Exports) == 0 {
			return nil
		}
		return emitErr("export section", e.section(id, func(inner *Encoder) error {
			return inner.Vector(len(m.Exports), func(i int) error { return inner.Export(m.Exports[i]) })
		}))
	case wasm.SectionIDStart:
		if m.Start == nil {
			return nil
		}
		return emitErr("start section", e.section(id, func(inner *Encoder) error { return inner.Start(*m.Start) }))
	case wasm.SectionIDElement:
		if len(m.Elements) == 0 {
			return nil
		}
		return emitErr("element section", e.section(id, func(inner *Encoder) error {
			return inner.Vector(len(m.Elements), func(i int) error { return inner.Element(m.Elements[i]) })
		}))
	case wasm.SectionIDDataCount:
		if m.DataCount == nil {
			return nil
		}
		return emitErr("data count section", e.section(id, func(inner *Encoder) error { return inner.U32(*m.DataCount) }))
	case wasm.SectionIDCode:
		if len(m.Functions) == 0 {
			return nil
		}
		return emitErr("code section", e.section(id, func(inner *Encoder) error {
			return inner.Vector(len(m.Functions), func(i int) error { return inner.Code(m.Functions[i]) })
		}))
	case wasm.SectionIDData:
		if len(m.Data) == 0 {
			return nil
		}
		return emitErr("data section", e.section(id, func(inner *Encoder) error {
			return inner.Vector(len(m.Data), func(i int) error { return inner.Data(m.Data[i]) })
		}))
	default:
		return nil
	}
}

// Decode parses a complete Wasm binary module from b under the given
// feature set.
func Decode(b []byte, features wasm.Features) (*wasm.Module, error) {
	d := NewDecoder(bytes.NewReader(b), features)

	var magicBuf [4]byte
	got, err := d.Bytes(4)
	if err != nil {
		return nil, parseErr(d.Offset(), "preamble", err)
	}
	copy(magicBuf[:], got)
	if magicBuf != magic {
		return nil, parseErr(0, "preamble", ErrInvalidMagic)
	}
	got, err = d.Bytes(4)
	if err != nil {
		return nil, parseErr(d.Offset(), "preamble", err)
	}
	copy(magicBuf[:], got)
	if magicBuf != version {
		return nil, parseErr(4, "preamble", ErrInvalidVersion)
	}

	m := wasm.NewModule()
	lastOrderIdx := -1
	bucket := sectionOrder[0]

	var functionTypeIndices []uint32

	for d.Remaining() > 0 {
		sectionStart := d.Offset()
		id, err := d.Byte()
		if err != nil {
			return nil, parseErr(sectionStart, "section id", err)
		}
		length, err := d.U32()
		if err != nil {
			return nil, parseErr(sectionStart, "section length", err)
		}
		content, err := d.Bytes(int(length))
		if err != nil {
			return nil, parseErr(sectionStart, "section content", err)
		}
		sub := NewDecoder(bytes.NewReader(content), features)

		if id == wasm.SectionIDCustom {
			c, err := sub.Custom(len(content))
			if err != nil {
				return nil, parseErr(sectionStart, "custom section", err)
			}
			codeclog.Logger().Debug("parsed custom section",
				zap.String("name", c.Name), zap.Uint8("insertion-point", bucket))
			m.AddCustom(bucket, c)
			continue
		}

		idx := indexOf(sectionOrder, id)
		if idx < 0 || idx <= lastOrderIdx {
			return nil, parseErr(sectionStart, "section id", ErrSectionOutOfOrder)
		}
		lastOrderIdx = idx
		if idx+1 < len(sectionOrder) {
			bucket = sectionOrder[idx+1]
		} else {
			bucket = trailingCustomBucket
		}

		switch id {
		case wasm.SectionIDType:
			_, err = sub.Vector(func(i int) error {
				ft, err := sub.FunctionType()
				if err != nil {
					return err
				}
				m.AddType(ft)
				return nil
			})
		case wasm.SectionIDImport:
			_, err = sub.Vector(func(i int) error {
				imp, err := sub.Import()
				if err != nil {
					return err
				}
				_, err = m.AddImport(imp)
				return err
			})
		case wasm.SectionIDFunction:
			_, err = sub.Vector(func(i int) error {
				t, err := sub.U32()
				if err != nil {
					return err
				}
				functionTypeIndices = append(functionTypeIndices, t)
				return nil
			})
		case wasm.SectionIDTable:
			_, err = sub.Vector(func(i int) error {
				t, err := sub.Table()
				if err != nil {
					return err
				}
				_, err = m.AddTable(t)
				return err
			})
		case wasm.SectionIDMemory:
			_, err = sub.Vector(func(i int) error {
				mem, err := sub.Memory()
				if err != nil {
					return err
				}
				_, err = m.AddMemory(mem)
				return err
			})
		case wasm.SectionIDGlobal:
			_, err = sub.Vector(func(i int) error {
				g, err := sub.Global()
				if err != nil {
					return err
				}
				_, err = m.AddGlobal(g)
				return err
			})
		case wasm.SectionIDExport:
			_, err = sub.Vector(func(i int) error {
				x, err := sub.Export()
				if err != nil {
					return err
				}
				m.AddExport(x)
				return nil
			})
		case wasm.SectionIDStart:
			s, serr := sub.Start()
			if serr != nil {
				err = serr
				break
			}
			m.Start = &s
		case wasm.SectionIDElement:
			_, err = sub.Vector(func(i int) error {
				el, err := sub.Element()
				if err != nil {
					return err
				}
				_, err = m.AddElement(el)
				return err
			})
		case wasm.SectionIDDataCount:
			n, derr := sub.U32()
			if derr != nil {
				err = derr
				break
			}
			m.DataCount = &n
		case wasm.SectionIDCode:
			i := 0
			_, err = sub.Vector(func(_ int) error {
				if i >= len(functionTypeIndices) {
					return ErrFunctionCodeMismatch
				}
				f, err := sub.Code(functionTypeIndices[i])
				if err != nil {
					return err
				}
				m.Functions = append(m.Functions, f)
				i++
				return nil
			})
			if err == nil && i != len(functionTypeIndices) {
				err = ErrFunctionCodeMismatch
			}
		case wasm.SectionIDData:
			_, err = sub.Vector(func(i int) error {
				data, err := sub.Data()
				if err != nil {
					return err
				}
				_, err = m.AddData(data)
				return err
			})
		}
		if err != nil {
			return nil, parseErr(sectionStart, sectionName(id), err)
		}
		if sub.Remaining() != 0 {
			return nil, parseErr(sectionStart, sectionName(id), ErrTrailingBytes)
		}
	}

	// P7/I4: a present data-count field must agree with the actual number
	// of data segments, whether or not a Data section was present at all.
	if m.DataCount != nil && int(*m.DataCount) != len(m.Data) {
		return nil, parseErr(d.Offset(), "data count section", ErrDataCountMismatch)
	}

	// P8: a Function section with no Code section is a count mismatch too.
	if len(m.Functions) != len(functionTypeIndices) {
		return nil, parseErr(d.Offset(), "code section", ErrFunctionCodeMismatch)
	}

	return m, nil
}

func indexOf(ids []wasm.SectionID, id wasm.SectionID) int {
	for i, x := range ids {
		if x == id {
			return i
		}
	}
	return -1
}

func sectionName(id wasm.SectionID) string {
	switch id {
	case wasm.SectionIDType:
		return "type section"
	case wasm.SectionIDImport:
		return "import section"
	case wasm.SectionIDFunction:
		return "function section"
	case wasm.SectionIDTable:
		return "table section"
	case wasm.SectionIDMemory:
		return "memory section"
	case wasm.SectionIDGlobal:
		return "global section"
	case wasm.SectionIDExport:
		return "export section"
	case wasm.SectionIDStart:
		return "start section"
	case wasm.SectionIDElement:
		return "element section"
	case wasm.SectionIDDataCount:
		return "data count section"
	case wasm.SectionIDCode:
		return "code section"
	case wasm.SectionIDData:
		return "data section"
	default:
		return "section"
	}
}
