package cil

import (
	"iter"
	"slices"

	"github.com/wippyai/cil-codec/errors"
)

// Sequence is the ordered instruction list of one method body.
//
// Branch operands and exception handler boundaries reference instructions by
// pointer. Replace re-points every reference it knows about; other edits leave
// dangling references for VerifyLabels to report.
type Sequence struct {
	scope VariableScope
	end   *Instruction
	items []*Instruction
}

// NewSequence creates a sequence owned by scope. A nil scope resolves no locals or arguments.
func NewSequence(scope VariableScope, instructions ...*Instruction) *Sequence {
	if scope == nil {
		scope = emptyScope{}
	}
	s := &Sequence{
		scope: scope,
		end:   &Instruction{OpCode: Nop},
		items: slices.Clone(instructions),
	}
	s.CalculateOffsets()
	return s
}

// Scope returns the locals and arguments the sequence resolves against.
func (s *Sequence) Scope() VariableScope {
	return s.scope
}

// Len returns the number of instructions.
func (s *Sequence) Len() int {
	return len(s.items)
}

// At returns the instruction at index i, or nil when out of range.
func (s *Sequence) At(i int) *Instruction {
	if i < 0 || i >= len(s.items) {
		return nil
	}
	return s.items[i]
}

// Items returns the underlying slice. It must not be modified by the caller.
func (s *Sequence) Items() []*Instruction {
	return s.items
}

// All iterates over the instructions in order.
func (s *Sequence) All() iter.Seq[*Instruction] {
	return func(yield func(*Instruction) bool) {
		for _, ins := range s.items {
			if !yield(ins) {
				return
			}
		}
	}
}

// IndexOf returns the index of ins, or -1.
func (s *Sequence) IndexOf(ins *Instruction) int {
	return slices.Index(s.items, ins)
}

// Contains reports whether ins belongs to the sequence.
func (s *Sequence) Contains(ins *Instruction) bool {
	return s.IndexOf(ins) >= 0
}

// Add appends instructions.
func (s *Sequence) Add(instructions ...*Instruction) {
	s.items = append(s.items, instructions...)
}

// Insert places ins before index i. i may equal Len.
func (s *Sequence) Insert(i int, ins *Instruction) error {
	if i < 0 || i > len(s.items) {
		return errors.OutOfBounds(errors.PhaseConstruct, i, len(s.items))
	}
	s.items = slices.Insert(s.items, i, ins)
	return nil
}

// RemoveAt removes and returns the instruction at index i.
func (s *Sequence) RemoveAt(i int) (*Instruction, error) {
	if i < 0 || i >= len(s.items) {
		return nil, errors.OutOfBounds(errors.PhaseConstruct, i, len(s.items))
	}
	ins := s.items[i]
	s.items = slices.Delete(s.items, i, i+1)
	return ins, nil
}

// Remove removes ins and reports whether it was present.
func (s *Sequence) Remove(ins *Instruction) bool {
	i := s.IndexOf(ins)
	if i < 0 {
		return false
	}
	s.items = slices.Delete(s.items, i, i+1)
	return true
}

// Replace swaps old for repl in place and re-points every branch and switch
// operand that referenced old. It reports whether old was found.
func (s *Sequence) Replace(old, repl *Instruction) bool {
	i := s.IndexOf(old)
	if i < 0 {
		return false
	}
	s.items[i] = repl
	s.retarget(old, repl)
	return true
}

func (s *Sequence) retarget(old, repl *Instruction) int {
	n := 0
	for _, ins := range s.items {
		if ins.retarget(old, repl) {
			n++
		}
	}
	return n
}

// End returns the end-of-code label. Its offset equals Size after CalculateOffsets.
// End-exclusive handler boundaries that close at the end of the body point here.
func (s *Sequence) End() *Instruction {
	return s.end
}

// Size returns the encoded code size in bytes.
func (s *Sequence) Size() int {
	size := 0
	for _, ins := range s.items {
		size += ins.Size()
	}
	return size
}

// CalculateOffsets assigns offsets from 0 in sequence order.
func (s *Sequence) CalculateOffsets() {
	offset := 0
	for _, ins := range s.items {
		ins.Offset = offset
		offset += ins.Size()
	}
	s.end.Offset = offset
}

// GetByOffset returns the instruction starting at offset, or nil.
// Offsets must be current.
func (s *Sequence) GetByOffset(offset int) *Instruction {
	if i := s.GetIndexByOffset(offset); i >= 0 {
		return s.items[i]
	}
	return nil
}

// GetIndexByOffset returns the index of the instruction starting at offset, or -1.
func (s *Sequence) GetIndexByOffset(offset int) int {
	i, found := slices.BinarySearchFunc(s.items, offset, func(ins *Instruction, off int) int {
		return ins.Offset - off
	})
	if !found {
		return -1
	}
	return i
}
