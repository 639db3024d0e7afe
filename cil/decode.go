package cil

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/wippyai/cil-codec/cil/internal/binary"
	"github.com/wippyai/cil-codec/errors"
)

// Decoder turns raw CIL code into instructions.
type Decoder struct {
	r        *binary.Reader
	resolver OperandResolver
}

// NewDecoder creates a decoder over code. A nil resolver leaves every
// cross-reference operand in raw form.
func NewDecoder(code []byte, resolver OperandResolver) *Decoder {
	return &Decoder{
		r:        binary.NewReader(code),
		resolver: resolver,
	}
}

// DecodeInstructions decodes code in one call.
func DecodeInstructions(code []byte, resolver OperandResolver) ([]*Instruction, error) {
	return NewDecoder(code, resolver).Decode()
}

// Decode reads every instruction, then resolves operands.
// Operands the resolver does not know stay raw.
func (d *Decoder) Decode() ([]*Instruction, error) {
	var instructions []*Instruction
	for d.r.Len() > 0 {
		ins, err := d.readInstruction()
		if err != nil {
			return nil, err
		}
		instructions = append(instructions, ins)
	}

	unresolved := 0
	for _, ins := range instructions {
		if !d.resolve(instructions, ins) {
			unresolved++
		}
	}
	if unresolved > 0 {
		Logger().Debug("operands left unresolved",
			zap.Int("count", unresolved),
			zap.Int("instructions", len(instructions)))
	}
	return instructions, nil
}

func (d *Decoder) readInstruction() (*Instruction, error) {
	offset := d.r.Position()
	b, err := d.r.ReadByte()
	if err != nil {
		return nil, errors.Truncated(offset, "opcode", err)
	}

	op := Lookup(b)
	if b == EscapeByte {
		b2, err := d.r.ReadByte()
		if err != nil {
			return nil, errors.Truncated(offset, "two-byte opcode", err)
		}
		op = LookupTwoByte(b2)
	}
	if op.Invalid() {
		Logger().Debug("unassigned opcode", zap.Int("offset", offset), zap.String("opcode", op.Name))
	}

	operand, err := d.readRawOperand(op)
	if e, ok := err.(*errors.Error); ok {
		e.Offset = offset
		e.OpCode = op.Name
		return nil, e
	}
	if err != nil {
		return nil, errors.New(errors.PhaseDecode, errors.KindMalformedBytecode).
			At(offset).
			OpCode(op.Name).
			Detail("stream ended while reading %s operand", op.OperandType).
			Cause(err).
			Build()
	}
	return &Instruction{Offset: offset, OpCode: op, Operand: operand}, nil
}

func (d *Decoder) readRawOperand(op *OpCode) (Operand, error) {
	r := d.r
	switch op.OperandType {
	case OperandNone:
		return nil, nil
	case OperandShortArgument, OperandShortVariable:
		v, err := r.ReadByte()
		return RawIndex(v), err
	case OperandArgument, OperandVariable:
		v, err := r.ReadU16()
		return RawIndex(v), err
	case OperandShortInt8:
		v, err := r.ReadI8()
		return Int8(v), err
	case OperandInt32:
		v, err := r.ReadI32()
		return Int32(v), err
	case OperandInt64:
		v, err := r.ReadI64()
		return Int64(v), err
	case OperandShortFloat32:
		v, err := r.ReadF32()
		return Float32(v), err
	case OperandFloat64:
		v, err := r.ReadF64()
		return Float64(v), err
	case OperandShortBranchTarget:
		v, err := r.ReadI8()
		return RawOffset(v), err
	case OperandBranchTarget:
		v, err := r.ReadI32()
		return RawOffset(v), err
	case OperandSwitch:
		count, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		if uint64(count)*4 > uint64(r.Len()) {
			return nil, errors.Malformed(errors.NoOffset, fmt.Sprintf("switch table of %d targets extends past end of code", count), nil)
		}
		table := make(SwitchTable, count)
		for i := range table {
			v, err := r.ReadI32()
			if err != nil {
				return nil, err
			}
			table[i] = RawOffset(v)
		}
		return table, nil
	default:
		v, err := r.ReadU32()
		return RawToken(v), err
	}
}

// resolve replaces the raw operand of ins in place and reports whether every part resolved.
func (d *Decoder) resolve(instructions []*Instruction, ins *Instruction) bool {
	switch raw := ins.Operand.(type) {
	case RawOffset:
		if t := findByOffset(instructions, ins.Offset+ins.Size()+int(raw)); t != nil {
			ins.Operand = t
			return true
		}
		Logger().Debug("branch target not found",
			zap.Int("offset", ins.Offset),
			zap.Int32("delta", int32(raw)))
		return false

	case SwitchTable:
		next := ins.Offset + ins.Size()
		ok := true
		for i, l := range raw {
			delta, isRaw := l.(RawOffset)
			if !isRaw {
				continue
			}
			if t := findByOffset(instructions, next+int(delta)); t != nil {
				raw[i] = t
			} else {
				ok = false
			}
		}
		return ok

	case RawIndex:
		if d.resolver == nil {
			return false
		}
		switch ins.OpCode.OperandType {
		case OperandShortArgument, OperandArgument:
			if p, ok := d.resolver.ResolveParameter(int(raw)); ok {
				ins.Operand = p
				return true
			}
		case OperandShortVariable, OperandVariable:
			if v, ok := d.resolver.ResolveVariable(int(raw)); ok {
				ins.Operand = v
				return true
			}
		}
		return false

	case RawToken:
		if d.resolver == nil {
			return false
		}
		if ins.OpCode.OperandType == OperandString {
			if s, ok := d.resolver.ResolveString(Token(raw)); ok {
				ins.Operand = String(s)
				return true
			}
			return false
		}
		if m, ok := d.resolver.ResolveMember(Token(raw)); ok && m != nil {
			ins.Operand = MemberRef{Member: m}
			return true
		}
		return false
	}
	return true
}

func findByOffset(instructions []*Instruction, offset int) *Instruction {
	i, found := slices.BinarySearchFunc(instructions, offset, func(ins *Instruction, off int) int {
		return ins.Offset - off
	})
	if !found {
		return nil
	}
	return instructions[i]
}
