package cil

import (
	"fmt"

	"github.com/wippyai/cil-codec/errors"
)

// Instruction is a single CIL instruction.
// Offset is only meaningful after the owning sequence recomputed offsets.
type Instruction struct {
	Operand Operand
	OpCode  *OpCode
	Offset  int
}

// NewInstruction creates an instruction after checking the operand shape.
func NewInstruction(op *OpCode, operand Operand) (*Instruction, error) {
	if op == nil {
		return nil, errors.InvalidInput(errors.PhaseConstruct, "nil opcode")
	}
	if !validOperand(op.OperandType, operand) {
		return nil, errors.OperandShape(op.Name, op.OperandType.String(), operand)
	}
	return &Instruction{OpCode: op, Operand: operand}, nil
}

// MustInstruction is like NewInstruction but panics on a shape mismatch.
// Intended for static instruction lists and tests.
func MustInstruction(op *OpCode, operand Operand) *Instruction {
	ins, err := NewInstruction(op, operand)
	if err != nil {
		panic(err)
	}
	return ins
}

// Size returns the encoded size in bytes.
func (i *Instruction) Size() int {
	return i.OpCode.Size + i.OperandSize()
}

// OperandSize returns the encoded size of the operand.
func (i *Instruction) OperandSize() int {
	if i.OpCode.OperandType == OperandSwitch {
		table, _ := i.Operand.(SwitchTable)
		return 4 * (len(table) + 1)
	}
	return i.OpCode.OperandType.FixedSize()
}

// StackContext holds facts about the enclosing method used for stack accounting.
type StackContext struct {
	ReturnsValue bool
}

// StackPopCount returns the number of values the instruction pops.
func (i *Instruction) StackPopCount(ctx StackContext) int {
	if i.OpCode.StackPop != StackVarPop {
		return i.OpCode.StackPop.Count()
	}
	if i.OpCode == Ret {
		if ctx.ReturnsValue {
			return 1
		}
		return 0
	}

	count := 0
	if sig, ok := i.signature(); ok {
		count = sig.ParameterCount
		if sig.HasThis && i.OpCode != Newobj {
			count++
		}
	}
	if i.OpCode == Calli {
		count++
	}
	return count
}

// StackPushCount returns the number of values the instruction pushes.
func (i *Instruction) StackPushCount() int {
	if i.OpCode.StackPush != StackVarPush {
		return i.OpCode.StackPush.Count()
	}
	if sig, ok := i.signature(); ok && sig.ReturnsValue {
		return 1
	}
	return 0
}

func (i *Instruction) signature() (MethodSignature, bool) {
	ref, ok := i.Operand.(MemberRef)
	if !ok {
		return MethodSignature{}, false
	}
	c, ok := ref.Member.(Callable)
	if !ok {
		return MethodSignature{}, false
	}
	return c.MethodSignature(), true
}

// Targets returns the resolved branch targets of a branch or switch instruction.
// Unresolved targets are skipped.
func (i *Instruction) Targets() []*Instruction {
	switch o := i.Operand.(type) {
	case *Instruction:
		if o != nil && i.OpCode.OperandType.IsBranch() {
			return []*Instruction{o}
		}
	case SwitchTable:
		targets := make([]*Instruction, 0, len(o))
		for _, l := range o {
			if t, ok := l.(*Instruction); ok && t != nil {
				targets = append(targets, t)
			}
		}
		return targets
	}
	return nil
}

// ResolvedOperand returns the operand, failing with an unresolved operand
// error when decoding left it in raw form.
func (i *Instruction) ResolvedOperand() (Operand, error) {
	if IsRaw(i.Operand) {
		return nil, errors.UnresolvedOperand(i.Offset, i.OpCode.Name, i.Operand)
	}
	return i.Operand, nil
}

// retarget replaces references to old with repl in the operand. It reports whether anything changed.
func (i *Instruction) retarget(old, repl *Instruction) bool {
	switch o := i.Operand.(type) {
	case *Instruction:
		if o == old {
			i.Operand = repl
			return true
		}
	case SwitchTable:
		changed := false
		for j, l := range o {
			if t, ok := l.(*Instruction); ok && t == old {
				o[j] = repl
				changed = true
			}
		}
		return changed
	}
	return false
}

func (i *Instruction) String() string {
	if i.Operand == nil {
		return fmt.Sprintf("IL_%04X: %s", i.Offset, i.OpCode.Name)
	}
	return fmt.Sprintf("IL_%04X: %s %s", i.Offset, i.OpCode.Name, FormatOperand(i.Operand))
}
