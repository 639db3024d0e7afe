package cil

import (
	"math"

	"github.com/wippyai/cil-codec/cil/internal/binary"
	"github.com/wippyai/cil-codec/errors"
)

// Encoder writes instructions as raw CIL code.
// Offsets must already be final; the encoder does not recompute them.
type Encoder struct {
	w       *binary.Writer
	builder OperandBuilder
}

// NewEncoder creates an encoder. A nil builder can only encode bodies
// without local, argument, member or string operands.
func NewEncoder(builder OperandBuilder) *Encoder {
	if builder == nil {
		builder = NewOperandBuilder(nil, nil)
	}
	return &Encoder{w: binary.NewWriter(), builder: builder}
}

// EncodeInstructions encodes instructions in one call.
func EncodeInstructions(instructions []*Instruction, builder OperandBuilder) ([]byte, error) {
	e := NewEncoder(builder)
	if err := e.Encode(instructions); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

// Encode writes every instruction. On error nothing is kept: a body is
// either encoded in full or not at all.
func (e *Encoder) Encode(instructions []*Instruction) error {
	e.w = binary.NewWriter()
	for _, ins := range instructions {
		if err := e.writeInstruction(ins); err != nil {
			e.w = binary.NewWriter()
			return err
		}
	}
	return nil
}

// Bytes returns the encoded code.
func (e *Encoder) Bytes() []byte {
	return e.w.Bytes()
}

func (e *Encoder) writeInstruction(ins *Instruction) error {
	op := ins.OpCode
	if op == nil {
		return errors.New(errors.PhaseEncode, errors.KindInvalidInput).At(ins.Offset).Detail("instruction without opcode").Build()
	}
	if !validOperand(op.OperandType, ins.Operand) {
		if op.OperandType.IsBranch() || op.OperandType == OperandSwitch {
			return errors.Unresolvable(ins.Offset, op.Name, "branch has no target")
		}
		err := errors.OperandShape(op.Name, op.OperandType.String(), ins.Operand)
		err.Phase = errors.PhaseEncode
		err.Offset = ins.Offset
		return err
	}

	if op.Size == 2 {
		e.w.Byte(op.Byte1)
		e.w.Byte(op.Byte2)
	} else {
		e.w.Byte(op.Byte1)
	}
	return e.writeOperand(ins)
}

func (e *Encoder) writeOperand(ins *Instruction) error {
	op := ins.OpCode
	switch op.OperandType {
	case OperandNone:
		return nil

	case OperandShortArgument, OperandArgument, OperandShortVariable, OperandVariable:
		index, err := e.index(ins)
		if err != nil {
			return err
		}
		return e.writeIndex(ins, index)

	case OperandShortInt8:
		e.w.WriteI8(int8(ins.Operand.(Int8)))
	case OperandInt32:
		e.w.WriteI32(int32(ins.Operand.(Int32)))
	case OperandInt64:
		e.w.WriteI64(int64(ins.Operand.(Int64)))
	case OperandShortFloat32:
		e.w.WriteF32(float32(ins.Operand.(Float32)))
	case OperandFloat64:
		e.w.WriteF64(float64(ins.Operand.(Float64)))

	case OperandShortBranchTarget, OperandBranchTarget:
		delta, err := branchDelta(ins, ins.Operand.(Label))
		if err != nil {
			return err
		}
		if op.OperandType == OperandShortBranchTarget {
			if delta < math.MinInt8 || delta > math.MaxInt8 {
				return overflow(ins, delta, "int8 branch delta")
			}
			e.w.WriteI8(int8(delta))
		} else {
			e.w.WriteI32(int32(delta))
		}

	case OperandSwitch:
		table := ins.Operand.(SwitchTable)
		e.w.WriteU32(uint32(len(table)))
		for _, l := range table {
			delta, err := branchDelta(ins, l)
			if err != nil {
				return err
			}
			e.w.WriteI32(int32(delta))
		}

	case OperandString:
		switch o := ins.Operand.(type) {
		case RawToken:
			e.w.WriteU32(uint32(o))
		case String:
			token := e.builder.StringToken(string(o))
			if token&0x00FFFFFF == 0 {
				return errors.InvalidToken(ins.Offset, op.Name, FormatOperand(o), token)
			}
			e.w.WriteU32(token)
		}

	default:
		switch o := ins.Operand.(type) {
		case RawToken:
			e.w.WriteU32(uint32(o))
		case MemberRef:
			if o.Member == nil {
				return errors.Unresolvable(ins.Offset, op.Name, "member reference is nil")
			}
			token := e.builder.MemberToken(o.Member)
			if token.RID() == 0 {
				return errors.InvalidToken(ins.Offset, op.Name, o.Member, uint32(token))
			}
			e.w.WriteU32(uint32(token))
		}
	}
	return nil
}

func (e *Encoder) index(ins *Instruction) (int, error) {
	switch o := ins.Operand.(type) {
	case RawIndex:
		return int(o), nil
	case *Variable:
		if i := e.builder.VariableIndex(o); i >= 0 {
			return i, nil
		}
		return 0, errors.Unresolvable(ins.Offset, ins.OpCode.Name, "variable "+o.String()+" is not a local of this body")
	case *Parameter:
		if i := e.builder.ParameterIndex(o); i >= 0 {
			return i, nil
		}
		return 0, errors.Unresolvable(ins.Offset, ins.OpCode.Name, "parameter "+o.String()+" is not a parameter of this method")
	}
	return 0, errors.Unresolvable(ins.Offset, ins.OpCode.Name, "operand is not an index")
}

func (e *Encoder) writeIndex(ins *Instruction, index int) error {
	switch ins.OpCode.OperandType {
	case OperandShortArgument, OperandShortVariable:
		if index > math.MaxUint8 {
			return overflow(ins, index, "uint8 index")
		}
		e.w.Byte(byte(index))
	default:
		if index > math.MaxUint16 {
			return overflow(ins, index, "uint16 index")
		}
		e.w.WriteU16(uint16(index))
	}
	return nil
}

func branchDelta(ins *Instruction, l Label) (int, error) {
	target, ok := l.(*Instruction)
	if !ok || target == nil {
		return 0, errors.Unresolvable(ins.Offset, ins.OpCode.Name, "branch target "+formatLabel(l)+" is not linked to an instruction")
	}
	return target.Offset - (ins.Offset + ins.Size()), nil
}

func overflow(ins *Instruction, value int, target string) *errors.Error {
	err := errors.Overflow(errors.PhaseEncode, ins.Offset, value, target)
	err.OpCode = ins.OpCode.Name
	return err
}
