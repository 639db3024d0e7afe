package cil

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wippyai/cil-codec/errors"
)

// Operand is the value carried by an instruction. The set of implementations is closed:
//
//	Int8, Int32, Int64, Float32, Float64, String  literals
//	*Variable, *Parameter                         locals and arguments
//	MemberRef                                     fields, methods, types, signatures
//	*Instruction                                  branch targets
//	SwitchTable                                   switch targets
//	RawIndex, RawOffset, RawToken                 values the decoder could not resolve
//
// Instructions whose opcode takes no operand carry a nil Operand.
type Operand interface {
	isOperand()
}

type (
	Int8    int8
	Int32   int32
	Int64   int64
	Float32 float32
	Float64 float64
	String  string
)

// MemberRef wraps a resolved metadata member.
type MemberRef struct {
	Member Member
}

// Label is a switch target: an *Instruction or an unresolved RawOffset.
type Label interface {
	Operand
	isLabel()
}

// SwitchTable holds the targets of a switch instruction in table order.
type SwitchTable []Label

// RawIndex is a local or argument index that was not resolved.
type RawIndex uint16

// RawOffset is a branch delta, relative to the end of the instruction, whose target was not found.
type RawOffset int32

// RawToken is a metadata token that was not resolved. It also serves as a
// placeholder Member, so it can stand in for an unresolved catch type.
type RawToken Token

func (t RawToken) String() string { return Token(t).String() }

func (Int8) isOperand()         {}
func (Int32) isOperand()        {}
func (Int64) isOperand()        {}
func (Float32) isOperand()      {}
func (Float64) isOperand()      {}
func (String) isOperand()       {}
func (*Variable) isOperand()    {}
func (*Parameter) isOperand()   {}
func (MemberRef) isOperand()    {}
func (*Instruction) isOperand() {}
func (SwitchTable) isOperand()  {}
func (RawIndex) isOperand()     {}
func (RawOffset) isOperand()    {}
func (RawToken) isOperand()     {}

func (*Instruction) isLabel() {}
func (RawOffset) isLabel()    {}

// CheckOperand reports whether operand has the shape required by t.
func CheckOperand(t OperandType, operand Operand) error {
	if validOperand(t, operand) {
		return nil
	}
	return errors.OperandShape("", t.String(), operand)
}

func validOperand(t OperandType, operand Operand) bool {
	switch t {
	case OperandNone:
		return operand == nil
	case OperandShortArgument, OperandArgument:
		switch operand.(type) {
		case *Parameter, RawIndex:
			return true
		}
	case OperandShortVariable, OperandVariable:
		switch operand.(type) {
		case *Variable, RawIndex:
			return true
		}
	case OperandShortInt8:
		_, ok := operand.(Int8)
		return ok
	case OperandInt32:
		_, ok := operand.(Int32)
		return ok
	case OperandInt64:
		_, ok := operand.(Int64)
		return ok
	case OperandShortFloat32:
		_, ok := operand.(Float32)
		return ok
	case OperandFloat64:
		_, ok := operand.(Float64)
		return ok
	case OperandShortBranchTarget, OperandBranchTarget:
		switch operand.(type) {
		case *Instruction, RawOffset:
			return true
		}
	case OperandField, OperandMethod, OperandSignature, OperandToken, OperandTypeRef:
		switch operand.(type) {
		case MemberRef, RawToken:
			return true
		}
	case OperandString:
		switch operand.(type) {
		case String, RawToken:
			return true
		}
	case OperandSwitch:
		_, ok := operand.(SwitchTable)
		return ok
	}
	return false
}

// IsRaw reports whether operand is an unresolved decoder placeholder.
// A switch table is raw if any of its labels is.
func IsRaw(operand Operand) bool {
	switch o := operand.(type) {
	case RawIndex, RawOffset, RawToken:
		return true
	case SwitchTable:
		for _, l := range o {
			if _, ok := l.(RawOffset); ok {
				return true
			}
		}
	}
	return false
}

// FormatOperand renders an operand the way it appears in listings.
func FormatOperand(operand Operand) string {
	switch o := operand.(type) {
	case nil:
		return ""
	case Int8:
		return strconv.Itoa(int(o))
	case Int32:
		return strconv.FormatInt(int64(o), 10)
	case Int64:
		return strconv.FormatInt(int64(o), 10)
	case Float32:
		return strconv.FormatFloat(float64(o), 'g', -1, 32)
	case Float64:
		return strconv.FormatFloat(float64(o), 'g', -1, 64)
	case String:
		return strconv.Quote(string(o))
	case *Variable:
		return o.String()
	case *Parameter:
		return o.String()
	case MemberRef:
		if o.Member == nil {
			return "<nil>"
		}
		return o.Member.String()
	case *Instruction:
		return formatLabel(o)
	case RawOffset:
		return formatLabel(o)
	case SwitchTable:
		parts := make([]string, len(o))
		for i, l := range o {
			parts[i] = formatLabel(l)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case RawIndex:
		return "#" + strconv.Itoa(int(o))
	case RawToken:
		return Token(o).String()
	}
	return fmt.Sprintf("%v", operand)
}

func formatLabel(l Label) string {
	switch t := l.(type) {
	case *Instruction:
		if t == nil {
			return "<nil>"
		}
		return fmt.Sprintf("IL_%04X", t.Offset)
	case RawOffset:
		return fmt.Sprintf("IL_?%+d", int32(t))
	}
	return "<nil>"
}
