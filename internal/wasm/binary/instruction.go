package binary

import (
	"fmt"

	"github.com/misalcedo/wasm-ast/internal/wasm"
)

const (
	opBlock    = 0x02
	opLoop     = 0x03
	opIf       = 0x04
	opElse     = 0x05
	opEnd      = 0x0B
	opBr       = 0x0C
	opBrIf     = 0x0D
	opBrTable  = 0x0E
	opReturn   = 0x0F
	opCall     = 0x10
	opCallInd  = 0x11

	opRefNull = 0xD0
	opRefIsNull = 0xD1
	opRefFunc = 0xD2

	opDrop      = 0x1A
	opSelect    = 0x1B
	opSelectVec = 0x1C

	opLocalGet  = 0x20
	opLocalSet  = 0x21
	opLocalTee  = 0x22
	opGlobalGet = 0x23
	opGlobalSet = 0x24

	opTableGet = 0x25
	opTableSet = 0x26

	opMemorySize = 0x3F
	opMemoryGrow = 0x40

	opExtGCPrefix = 0xFC

	opExtMemoryInit  = 8
	opExtDataDrop    = 9
	opExtMemoryCopy  = 10
	opExtMemoryFill  = 11
	opExtTableInit   = 12
	opExtElemDrop    = 13
	opExtTableCopy   = 14
	opExtTableGrow   = 15
	opExtTableSize   = 16
	opExtTableFill   = 17
)

// Instruction writes a single instruction, including its opcode and
// immediates.
func (e *Encoder) Instruction(ins wasm.Instruction) error {
	switch v := ins.(type) {
	case wasm.Unreachable:
		return e.Byte(0x00)
	case wasm.Nop:
		return e.Byte(0x01)
	case wasm.Block:
		return e.controlBlock(opBlock, v.Type, v.Body)
	case wasm.Loop:
		return e.controlBlock(opLoop, v.Type, v.Body)
	case wasm.If:
		if err := e.Byte(opIf); err != nil {
			return err
		}
		if err := e.BlockType(v.Type); err != nil {
			return err
		}
		if err := e.instructions(v.Then.Instructions); err != nil {
			return err
		}
		if v.Else != nil {
			if err := e.Byte(opElse); err != nil {
				return err
			}
			if err := e.instructions(v.Else.Instructions); err != nil {
				return err
			}
		}
		return e.Byte(opEnd)
	case wasm.Branch:
		return e.immediate(opBr, v.Label)
	case wasm.BranchIf:
		return e.immediate(opBrIf, v.Label)
	case wasm.BranchTable:
		if err := e.Byte(opBrTable); err != nil {
			return err
		}
		if err := e.Vector(len(v.Labels), func(i int) error { return e.U32(v.Labels[i]) }); err != nil {
			return err
		}
		return e.U32(v.Default)
	case wasm.Return:
		return e.Byte(opReturn)
	case wasm.Call:
		return e.immediate(opCall, v.Function)
	case wasm.CallIndirect:
		if err := e.Byte(opCallInd); err != nil {
			return err
		}
		if err := e.U32(v.Type); err != nil {
			return err
		}
		return e.U32(v.Table)

	case wasm.ReferenceNull:
		if err := e.Byte(opRefNull); err != nil {
			return err
		}
		return e.ReferenceType(v.Type)
	case wasm.ReferenceIsNull:
		return e.Byte(opRefIsNull)
	case wasm.ReferenceFunction:
		return e.immediate(opRefFunc, v.Index)

	case wasm.Drop:
		return e.Byte(opDrop)
	case wasm.Select:
		if v.Types == nil {
			return e.Byte(opSelect)
		}
		if err := e.Byte(opSelectVec); err != nil {
			return err
		}
		return e.Vector(len(v.Types), func(i int) error { return e.ValueType(v.Types[i]) })

	case wasm.LocalGet:
		return e.immediate(opLocalGet, v.Index)
	case wasm.LocalSet:
		return e.immediate(opLocalSet, v.Index)
	case wasm.LocalTee:
		return e.immediate(opLocalTee, v.Index)
	case wasm.GlobalGet:
		return e.immediate(opGlobalGet, v.Index)
	case wasm.GlobalSet:
		return e.immediate(opGlobalSet, v.Index)

	case wasm.TableGet:
		return e.immediate(opTableGet, v.Index)
	case wasm.TableSet:
		return e.immediate(opTableSet, v.Index)
	case wasm.TableSize:
		return e.extImmediate(opExtTableSize, v.Index)
	case wasm.TableGrow:
		return e.extImmediate(opExtTableGrow, v.Index)
	case wasm.TableFill:
		return e.extImmediate(opExtTableFill, v.Index)
	case wasm.TableCopy:
		if err := e.Byte(opExtGCPrefix); err != nil {
			return err
		}
		if err := e.U32(opExtTableCopy); err != nil {
			return err
		}
		if err := e.U32(v.Destination); err != nil {
			return err
		}
		return e.U32(v.Source)
	case wasm.TableInit:
		if err := e.Byte(opExtGCPrefix); err != nil {
			return err
		}
		if err := e.U32(opExtTableInit); err != nil {
			return err
		}
		if err := e.U32(v.Element); err != nil {
			return err
		}
		return e.U32(v.Table)
	case wasm.ElementDrop:
		return e.extImmediate(opExtElemDrop, v.Element)

	case wasm.Load:
		return e.loadOpcode(v.Type, v.Argument)
	case wasm.Store:
		return e.storeOpcode(v.Type, v.Argument)
	case wasm.Load8:
		return e.subWidthLoadOpcode(v.Type, v.Sign, 8, v.Argument)
	case wasm.Load16:
		return e.subWidthLoadOpcode(v.Type, v.Sign, 16, v.Argument)
	case wasm.Load32:
		op := byte(0x34)
		if v.Sign == wasm.SignExtensionUnsigned {
			op = 0x35
		}
		return e.memoryOp(op, v.Argument)
	case wasm.Store8:
		op := byte(0x3A)
		if v.Type == wasm.IntegerTypeI64 {
			op = 0x3C
		}
		return e.memoryOp(op, v.Argument)
	case wasm.Store16:
		op := byte(0x3B)
		if v.Type == wasm.IntegerTypeI64 {
			op = 0x3D
		}
		return e.memoryOp(op, v.Argument)
	case wasm.Store32:
		return e.memoryOp(0x3E, v.Argument)
	case wasm.MemorySize:
		if err := e.Byte(opMemorySize); err != nil {
			return err
		}
		return e.Byte(0x00)
	case wasm.MemoryGrow:
		if err := e.Byte(opMemoryGrow); err != nil {
			return err
		}
		return e.Byte(0x00)
	case wasm.MemoryFill:
		if err := e.Byte(opExtGCPrefix); err != nil {
			return err
		}
		if err := e.U32(opExtMemoryFill); err != nil {
			return err
		}
		return e.Byte(0x00)
	case wasm.MemoryCopy:
		if err := e.Byte(opExtGCPrefix); err != nil {
			return err
		}
		if err := e.U32(opExtMemoryCopy); err != nil {
			return err
		}
		if err := e.Byte(0x00); err != nil {
			return err
		}
		return e.Byte(0x00)
	case wasm.MemoryInit:
		if err := e.Byte(opExtGCPrefix); err != nil {
			return err
		}
		if err := e.U32(opExtMemoryInit); err != nil {
			return err
		}
		if err := e.U32(v.Data); err != nil {
			return err
		}
		return e.Byte(0x00)
	case wasm.DataDrop:
		return e.extImmediate(opExtDataDrop, v.Data)

	case wasm.I32Constant:
		if err := e.Byte(0x41); err != nil {
			return err
		}
		return e.I32(v.Value)
	case wasm.I64Constant:
		if err := e.Byte(0x42); err != nil {
			return err
		}
		return e.I64(v.Value)
	case wasm.F32Constant:
		if err := e.Byte(0x43); err != nil {
			return err
		}
		return e.F32(v.Value)
	case wasm.F64Constant:
		if err := e.Byte(0x44); err != nil {
			return err
		}
		return e.F64(v.Value)

	case wasm.UnaryNumeric:
		return e.Byte(unaryOpcode(v.Op, v.Type))
	case wasm.BinaryNumeric:
		return e.Byte(binaryOpcode(v.Op, v.Type))
	case wasm.SignedBinaryNumeric:
		return e.Byte(signedBinaryOpcode(v.Op, v.Type, v.Sign))
	case wasm.ExtendWithSignExtension:
		op := byte(0xAD)
		if v.Sign == wasm.SignExtensionSigned {
			op = 0xAC
		}
		return e.Byte(op)
	case wasm.ConvertAndTruncate:
		return e.Byte(convertTruncateOpcode(v.Destination, v.Source, v.Sign))
	case wasm.ConvertAndTruncateWithSaturation:
		if err := e.Byte(opExtGCPrefix); err != nil {
			return err
		}
		return e.U32(saturatingTruncateOpcode(v.Destination, v.Source, v.Sign))
	case wasm.Convert:
		return e.Byte(convertOpcode(v.Destination, v.Source, v.Sign))
	case wasm.ReinterpretFloat:
		op := byte(0xBC)
		if v.Destination == wasm.IntegerTypeI64 {
			op = 0xBD
		}
		return e.Byte(op)
	case wasm.ReinterpretInteger:
		op := byte(0xBE)
		if v.Destination == wasm.FloatTypeF64 {
			op = 0xBF
		}
		return e.Byte(op)

	default:
		return fmt.Errorf("unsupported instruction type %T", ins)
	}
}

func (e *Encoder) instructions(ins []wasm.Instruction) error {
	for _, i := range ins {
		if err := e.Instruction(i); err != nil {
			return err
		}
	}
	return nil
}

// Expression writes ins followed by the 0x0B terminator.
func (e *Encoder) Expression(expr wasm.Expression) error {
	if err := e.instructions(expr.Instructions); err != nil {
		return err
	}
	return e.Byte(opEnd)
}

func (e *Encoder) controlBlock(op byte, bt wasm.BlockType, body wasm.Expression) error {
	if err := e.Byte(op); err != nil {
		return err
	}
	if err := e.BlockType(bt); err != nil {
		return err
	}
	return e.Expression(body)
}

func (e *Encoder) immediate(op byte, idx uint32) error {
	if err := e.Byte(op); err != nil {
		return err
	}
	return e.U32(idx)
}

func (e *Encoder) extImmediate(sub uint32, idx uint32) error {
	if err := e.Byte(opExtGCPrefix); err != nil {
		return err
	}
	if err := e.U32(sub); err != nil {
		return err
	}
	return e.U32(idx)
}

func (e *Encoder) memoryOp(op byte, arg wasm.MemoryArgument) error {
	if err := e.Byte(op); err != nil {
		return err
	}
	if err := e.U32(arg.Align); err != nil {
		return err
	}
	return e.U32(arg.Offset)
}

func (e *Encoder) loadOpcode(t wasm.ValueType, arg wasm.MemoryArgument) error {
	var op byte
	switch t {
	case wasm.ValueTypeI32:
		op = 0x28
	case wasm.ValueTypeI64:
		op = 0x29
	case wasm.ValueTypeF32:
		op = 0x2A
	case wasm.ValueTypeF64:
		op = 0x2B
	default:
		return fmt.Errorf("invalid load type %s", wasm.ValueTypeName(t))
	}
	return e.memoryOp(op, arg)
}

func (e *Encoder) storeOpcode(t wasm.ValueType, arg wasm.MemoryArgument) error {
	var op byte
	switch t {
	case wasm.ValueTypeI32:
		op = 0x36
	case wasm.ValueTypeI64:
		op = 0x37
	case wasm.ValueTypeF32:
		op = 0x38
	case wasm.ValueTypeF64:
		op = 0x39
	default:
		return fmt.Errorf("invalid store type %s", wasm.ValueTypeName(t))
	}
	return e.memoryOp(op, arg)
}

func (e *Encoder) subWidthLoadOpcode(t wasm.IntegerType, sign wasm.SignExtension, width int, arg wasm.MemoryArgument) error {
	var op byte
	switch {
	case t == wasm.IntegerTypeI32 && width == 8 && sign == wasm.SignExtensionSigned:
		op = 0x2C
	case t == wasm.IntegerTypeI32 && width == 8:
		op = 0x2D
	case t == wasm.IntegerTypeI32 && width == 16 && sign == wasm.SignExtensionSigned:
		op = 0x2E
	case t == wasm.IntegerTypeI32 && width == 16:
		op = 0x2F
	case t == wasm.IntegerTypeI64 && width == 8 && sign == wasm.SignExtensionSigned:
		op = 0x30
	case t == wasm.IntegerTypeI64 && width == 8:
		op = 0x31
	case t == wasm.IntegerTypeI64 && width == 16 && sign == wasm.SignExtensionSigned:
		op = 0x32
	case t == wasm.IntegerTypeI64 && width == 16:
		op = 0x33
	default:
		return fmt.Errorf("invalid sub-width load: %s, width %d", wasm.ValueTypeName(t), width)
	}
	return e.memoryOp(op, arg)
}

// BlockType writes a block type's inline annotation.
func (e *Encoder) BlockType(bt wasm.BlockType) error {
	switch v := bt.(type) {
	case wasm.BlockTypeEmpty:
		return e.Byte(0x40)
	case wasm.BlockTypeValue:
		return e.ValueType(v.Type)
	case wasm.BlockTypeIndex:
		return e.I64(int64(v.Index))
	default:
		return fmt.Errorf("unsupported block type %T", bt)
	}
}

func (d *Decoder) BlockType() (wasm.BlockType, error) {
	b, err := d.PeekByte()
	if err != nil {
		return nil, err
	}
	if b == 0x40 {
		d.Byte() //nolint:errcheck // already peeked successfully
		return wasm.BlockTypeEmpty{}, nil
	}
	switch b {
	case wasm.ValueTypeI32, wasm.ValueTypeI64, wasm.ValueTypeF32, wasm.ValueTypeF64,
		wasm.ValueTypeFuncref, wasm.ValueTypeExternref:
		vt, err := d.ValueType()
		if err != nil {
			return nil, err
		}
		return wasm.BlockTypeValue{Type: vt}, nil
	default:
		idx, err := d.I33()
		if err != nil {
			return nil, err
		}
		return wasm.BlockTypeIndex{Index: uint32(idx)}, nil
	}
}

func (d *Decoder) MemoryArgument() (wasm.MemoryArgument, error) {
	align, err := d.U32()
	if err != nil {
		return wasm.MemoryArgument{}, err
	}
	offset, err := d.U32()
	if err != nil {
		return wasm.MemoryArgument{}, err
	}
	return wasm.MemoryArgument{Offset: offset, Align: align}, nil
}

// Expression reads instructions up to and consuming the 0x0B terminator.
func (d *Decoder) Expression() (wasm.Expression, error) {
	ins, term, err := d.instructionSequence(opEnd)
	if err != nil {
		return wasm.Expression{}, err
	}
	if term != opEnd {
		return wasm.Expression{}, ErrUnexpectedEnd
	}
	return wasm.Expression{Instructions: ins}, nil
}

// instructionSequence reads instructions until it consumes one of the given
// terminator bytes, which it returns. It is used directly (rather than via
// Expression) for if's then-arm, which may end at either 0x05 or 0x0B.
func (d *Decoder) instructionSequence(terminators ...byte) ([]wasm.Instruction, byte, error) {
	var ins []wasm.Instruction
	for {
		b, err := d.PeekByte()
		if err != nil {
			return nil, 0, ErrUnexpectedEnd
		}
		for _, t := range terminators {
			if b == t {
				d.Byte() //nolint:errcheck // already peeked successfully
				return ins, b, nil
			}
		}
		i, err := d.instruction()
		if err != nil {
			return nil, 0, err
		}
		ins = append(ins, i)
	}
}

func (d *Decoder) instruction() (wasm.Instruction, error) {
	op, err := d.Byte()
	if err != nil {
		return nil, err
	}
	switch op {
	case 0x00:
		return wasm.Unreachable{}, nil
	case 0x01:
		return wasm.Nop{}, nil
	case opBlock:
		bt, err := d.BlockType()
		if err != nil {
			return nil, err
		}
		body, err := d.Expression()
		if err != nil {
			return nil, err
		}
		return wasm.Block{Type: bt, Body: body}, nil
	case opLoop:
		bt, err := d.BlockType()
		if err != nil {
			return nil, err
		}
		body, err := d.Expression()
		if err != nil {
			return nil, err
		}
		return wasm.Loop{Type: bt, Body: body}, nil
	case opIf:
		bt, err := d.BlockType()
		if err != nil {
			return nil, err
		}
		thenIns, term, err := d.instructionSequence(opElse, opEnd)
		if err != nil {
			return nil, err
		}
		ifInstr := wasm.If{Type: bt, Then: wasm.Expression{Instructions: thenIns}}
		if term == opElse {
			elseIns, term2, err := d.instructionSequence(opEnd)
			if err != nil {
				return nil, err
			}
			if term2 != opEnd {
				return nil, ErrUnexpectedEnd
			}
			elseExpr := wasm.Expression{Instructions: elseIns}
			ifInstr.Else = &elseExpr
		}
		return ifInstr, nil
	case opBr:
		l, err := d.U32()
		return wasm.Branch{Label: l}, err
	case opBrIf:
		l, err := d.U32()
		return wasm.BranchIf{Label: l}, err
	case opBrTable:
		var labels []uint32
		_, err := d.Vector(func(i int) error {
			l, err := d.U32()
			if err != nil {
				return err
			}
			labels = append(labels, l)
			return nil
		})
		if err != nil {
			return nil, err
		}
		def, err := d.U32()
		if err != nil {
			return nil, err
		}
		return wasm.BranchTable{Labels: labels, Default: def}, nil
	case opReturn:
		return wasm.Return{}, nil
	case opCall:
		f, err := d.U32()
		return wasm.Call{Function: f}, err
	case opCallInd:
		typeIdx, err := d.U32()
		if err != nil {
			return nil, err
		}
		tableIdx, err := d.U32()
		if err != nil {
			return nil, err
		}
		return wasm.CallIndirect{Type: typeIdx, Table: tableIdx}, nil

	case opRefNull:
		if err := d.Features.Require(wasm.FeatureReferenceTypes); err != nil {
			return nil, err
		}
		rt, err := d.ReferenceType()
		return wasm.ReferenceNull{Type: rt}, err
	case opRefIsNull:
		if err := d.Features.Require(wasm.FeatureReferenceTypes); err != nil {
			return nil, err
		}
		return wasm.ReferenceIsNull{}, nil
	case opRefFunc:
		if err := d.Features.Require(wasm.FeatureReferenceTypes); err != nil {
			return nil, err
		}
		idx, err := d.U32()
		return wasm.ReferenceFunction{Index: idx}, err

	case opDrop:
		return wasm.Drop{}, nil
	case opSelect:
		return wasm.Select{}, nil
	case opSelectVec:
		if err := d.Features.Require(wasm.FeatureReferenceTypes); err != nil {
			return nil, err
		}
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
			return nil, err
		}
		if types == nil {
			types = []wasm.ValueType{}
		}
		return wasm.Select{Types: types}, nil

	case opLocalGet:
		idx, err := d.U32()
		return wasm.LocalGet{Index: idx}, err
	case opLocalSet:
		idx, err := d.U32()
		return wasm.LocalSet{Index: idx}, err
	case opLocalTee:
		idx, err := d.U32()
		return wasm.LocalTee{Index: idx}, err
	case opGlobalGet:
		idx, err := d.U32()
		return wasm.GlobalGet{Index: idx}, err
	case opGlobalSet:
		idx, err := d.U32()
		return wasm.GlobalSet{Index: idx}, err

	case opTableGet:
		if err := d.Features.Require(wasm.FeatureReferenceTypes); err != nil {
			return nil, err
		}
		idx, err := d.U32()
		return wasm.TableGet{Index: idx}, err
	case opTableSet:
		if err := d.Features.Require(wasm.FeatureReferenceTypes); err != nil {
			return nil, err
		}
		idx, err := d.U32()
		return wasm.TableSet{Index: idx}, err

	case 0x28, 0x29, 0x2A, 0x2B:
		arg, err := d.MemoryArgument()
		if err != nil {
			return nil, err
		}
		t := map[byte]wasm.ValueType{0x28: wasm.ValueTypeI32, 0x29: wasm.ValueTypeI64, 0x2A: wasm.ValueTypeF32, 0x2B: wasm.ValueTypeF64}[op]
		return wasm.Load{Type: t, Argument: arg}, nil
	case 0x2C, 0x2D, 0x2E, 0x2F, 0x30, 0x31, 0x32, 0x33:
		arg, err := d.MemoryArgument()
		if err != nil {
			return nil, err
		}
		return decodeSubWidthLoad(op, arg), nil
	case 0x34, 0x35:
		arg, err := d.MemoryArgument()
		if err != nil {
			return nil, err
		}
		sign := wasm.SignExtensionSigned
		if op == 0x35 {
			sign = wasm.SignExtensionUnsigned
		}
		return wasm.Load32{Sign: sign, Argument: arg}, nil
	case 0x36, 0x37, 0x38, 0x39:
		arg, err := d.MemoryArgument()
		if err != nil {
			return nil, err
		}
		t := map[byte]wasm.ValueType{0x36: wasm.ValueTypeI32, 0x37: wasm.ValueTypeI64, 0x38: wasm.ValueTypeF32, 0x39: wasm.ValueTypeF64}[op]
		return wasm.Store{Type: t, Argument: arg}, nil
	case 0x3A, 0x3C:
		arg, err := d.MemoryArgument()
		if err != nil {
			return nil, err
		}
		t := wasm.IntegerTypeI32
		if op == 0x3C {
			t = wasm.IntegerTypeI64
		}
		return wasm.Store8{Type: t, Argument: arg}, nil
	case 0x3B, 0x3D:
		arg, err := d.MemoryArgument()
		if err != nil {
			return nil, err
		}
		t := wasm.IntegerTypeI32
		if op == 0x3D {
			t = wasm.IntegerTypeI64
		}
		return wasm.Store16{Type: t, Argument: arg}, nil
	case 0x3E:
		arg, err := d.MemoryArgument()
		return wasm.Store32{Argument: arg}, err
	case opMemorySize:
		if _, err := d.Byte(); err != nil {
			return nil, err
		}
		return wasm.MemorySize{}, nil
	case opMemoryGrow:
		if _, err := d.Byte(); err != nil {
			return nil, err
		}
		return wasm.MemoryGrow{}, nil

	case 0x41:
		v, err := d.I32()
		return wasm.I32Constant{Value: v}, err
	case 0x42:
		v, err := d.I64()
		return wasm.I64Constant{Value: v}, err
	case 0x43:
		v, err := d.F32()
		return wasm.F32Constant{Value: v}, err
	case 0x44:
		v, err := d.F64()
		return wasm.F64Constant{Value: v}, err

	case 0xC0, 0xC1, 0xC2, 0xC3, 0xC4:
		if err := d.Features.Require(wasm.FeatureSignExtensionOps); err != nil {
			return nil, err
		}
		switch op {
		case 0xC0:
			return wasm.UnaryNumeric{Op: wasm.OpExtendSigned8, Type: wasm.ValueTypeI32}, nil
		case 0xC1:
			return wasm.UnaryNumeric{Op: wasm.OpExtendSigned16, Type: wasm.ValueTypeI32}, nil
		case 0xC2:
			return wasm.UnaryNumeric{Op: wasm.OpExtendSigned8, Type: wasm.ValueTypeI64}, nil
		case 0xC3:
			return wasm.UnaryNumeric{Op: wasm.OpExtendSigned16, Type: wasm.ValueTypeI64}, nil
		default:
			return wasm.UnaryNumeric{Op: wasm.OpExtendSigned32, Type: wasm.ValueTypeI64}, nil
		}

	case opExtGCPrefix:
		return d.extendedInstruction()

	default:
		if ins, ok := decodeSimpleOpcode(op); ok {
			return ins, nil
		}
		return nil, &ErrUnknownOpcode{Byte: uint32(op)}
	}
}

func decodeSubWidthLoad(op byte, arg wasm.MemoryArgument) wasm.Instruction {
	switch op {
	case 0x2C:
		return wasm.Load8{Type: wasm.IntegerTypeI32, Sign: wasm.SignExtensionSigned, Argument: arg}
	case 0x2D:
		return wasm.Load8{Type: wasm.IntegerTypeI32, Sign: wasm.SignExtensionUnsigned, Argument: arg}
	case 0x2E:
		return wasm.Load16{Type: wasm.IntegerTypeI32, Sign: wasm.SignExtensionSigned, Argument: arg}
	case 0x2F:
		return wasm.Load16{Type: wasm.IntegerTypeI32, Sign: wasm.SignExtensionUnsigned, Argument: arg}
	case 0x30:
		return wasm.Load8{Type: wasm.IntegerTypeI64, Sign: wasm.SignExtensionSigned, Argument: arg}
	case 0x31:
		return wasm.Load8{Type: wasm.IntegerTypeI64, Sign: wasm.SignExtensionUnsigned, Argument: arg}
	case 0x32:
		return wasm.Load16{Type: wasm.IntegerTypeI64, Sign: wasm.SignExtensionSigned, Argument: arg}
	default:
		return wasm.Load16{Type: wasm.IntegerTypeI64, Sign: wasm.SignExtensionUnsigned, Argument: arg}
	}
}

func (d *Decoder) extendedInstruction() (wasm.Instruction, error) {
	sub, err := d.U32()
	if err != nil {
		return nil, err
	}
	if sub <= 7 {
		if err := d.Features.Require(wasm.FeatureNonTrappingFloatToIntConversion); err != nil {
			return nil, err
		}
	} else {
		if err := d.Features.Require(wasm.FeatureBulkMemoryOperations); err != nil {
			return nil, err
		}
	}
	switch sub {
	case 0:
		return wasm.ConvertAndTruncateWithSaturation{Destination: wasm.IntegerTypeI32, Source: wasm.FloatTypeF32, Sign: wasm.SignExtensionSigned}, nil
	case 1:
		return wasm.ConvertAndTruncateWithSaturation{Destination: wasm.IntegerTypeI32, Source: wasm.FloatTypeF32, Sign: wasm.SignExtensionUnsigned}, nil
	case 2:
		return wasm.ConvertAndTruncateWithSaturation{Destination: wasm.IntegerTypeI32, Source: wasm.FloatTypeF64, Sign: wasm.SignExtensionSigned}, nil
	case 3:
		return wasm.ConvertAndTruncateWithSaturation{Destination: wasm.IntegerTypeI32, Source: wasm.FloatTypeF64, Sign: wasm.SignExtensionUnsigned}, nil
	case 4:
		return wasm.ConvertAndTruncateWithSaturation{Destination: wasm.IntegerTypeI64, Source: wasm.FloatTypeF32, Sign: wasm.SignExtensionSigned}, nil
	case 5:
		return wasm.ConvertAndTruncateWithSaturation{Destination: wasm.IntegerTypeI64, Source: wasm.FloatTypeF32, Sign: wasm.SignExtensionUnsigned}, nil
	case 6:
		return wasm.ConvertAndTruncateWithSaturation{Destination: wasm.IntegerTypeI64, Source: wasm.FloatTypeF64, Sign: wasm.SignExtensionSigned}, nil
	case 7:
		return wasm.ConvertAndTruncateWithSaturation{Destination: wasm.IntegerTypeI64, Source: wasm.FloatTypeF64, Sign: wasm.SignExtensionUnsigned}, nil
	case opExtMemoryInit:
		idx, err := d.U32()
		if err != nil {
			return nil, err
		}
		if _, err := d.Byte(); err != nil {
			return nil, err
		}
		return wasm.MemoryInit{Data: idx}, nil
	case opExtDataDrop:
		idx, err := d.U32()
		return wasm.DataDrop{Data: idx}, err
	case opExtMemoryCopy:
		if _, err := d.Byte(); err != nil {
			return nil, err
		}
		if _, err := d.Byte(); err != nil {
			return nil, err
		}
		return wasm.MemoryCopy{}, nil
	case opExtMemoryFill:
		if _, err := d.Byte(); err != nil {
			return nil, err
		}
		return wasm.MemoryFill{}, nil
	case opExtTableInit:
		elemIdx, err := d.U32()
		if err != nil {
			return nil, err
		}
		tableIdx, err := d.U32()
		if err != nil {
			return nil, err
		}
		return wasm.TableInit{Element: elemIdx, Table: tableIdx}, nil
	case opExtElemDrop:
		idx, err := d.U32()
		return wasm.ElementDrop{Element: idx}, err
	case opExtTableCopy:
		dst, err := d.U32()
		if err != nil {
			return nil, err
		}
		src, err := d.U32()
		if err != nil {
			return nil, err
		}
		return wasm.TableCopy{Destination: dst, Source: src}, nil
	case opExtTableGrow:
		idx, err := d.U32()
		return wasm.TableGrow{Index: idx}, err
	case opExtTableSize:
		idx, err := d.U32()
		return wasm.TableSize{Index: idx}, err
	case opExtTableFill:
		idx, err := d.U32()
		return wasm.TableFill{Index: idx}, err
	default:
		return nil, &ErrUnknownOpcode{Byte: sub}
	}
}
