package cil

import (
	"fmt"
	"math"

	"github.com/wippyai/cil-codec/errors"
)

type stackState struct {
	index int
	depth int
}

type maxStackCalculator struct {
	body     *MethodBody
	items    []*Instruction
	recorded []int
	agenda   []stackState
	handlers map[int][]*ExceptionHandler
	ctx      StackContext
}

// ComputeMaxStack walks every path through the body and returns the largest
// evaluation stack depth reached. Offsets are recomputed first.
func (b *MethodBody) ComputeMaxStack() (int, error) {
	if !b.decoded {
		return 0, errors.NotDecoded("method body")
	}
	b.Instructions.CalculateOffsets()
	items := b.Instructions.Items()
	if len(items) == 0 {
		return 0, nil
	}

	c := &maxStackCalculator{
		body:     b,
		items:    items,
		recorded: make([]int, len(items)),
		ctx:      StackContext{ReturnsValue: b.ReturnsValue},
	}
	for i := range c.recorded {
		c.recorded[i] = -1
	}
	if len(b.ExceptionHandlers) > 0 {
		c.handlers = make(map[int][]*ExceptionHandler, len(b.ExceptionHandlers))
		for _, h := range b.ExceptionHandlers {
			if h.TryStart == nil {
				continue
			}
			c.handlers[h.TryStart.Offset] = append(c.handlers[h.TryStart.Offset], h)
		}
	}
	return c.compute()
}

// UpdateMaxStack stores the computed max stack in MaxStack.
func (b *MethodBody) UpdateMaxStack() error {
	n, err := b.ComputeMaxStack()
	if err != nil {
		return err
	}
	if n > math.MaxUint16 {
		return errors.Overflow(errors.PhaseAnalyze, errors.NoOffset, n, "uint16 max stack")
	}
	b.MaxStack = uint16(n)
	return nil
}

func (c *maxStackCalculator) compute() (int, error) {
	result := 0
	c.agenda = append(c.agenda, stackState{index: 0, depth: 0})

	for len(c.agenda) > 0 {
		state := c.agenda[len(c.agenda)-1]
		c.agenda = c.agenda[:len(c.agenda)-1]

		if state.index >= len(c.items) {
			last := c.items[len(c.items)-1]
			return 0, errors.InvalidLabel(last.Offset, "control falls through the end of the method body")
		}

		if recorded := c.recorded[state.index]; recorded >= 0 {
			if recorded != state.depth {
				return 0, errors.StackImbalance(c.items[state.index].Offset,
					fmt.Sprintf("stack depth %d does not match %d recorded by an earlier path", state.depth, recorded))
			}
		} else {
			c.recorded[state.index] = state.depth
			if err := c.scheduleNatural(state); err != nil {
				return 0, err
			}
			if err := c.scheduleExceptional(state); err != nil {
				return 0, err
			}
		}

		result = max(result, state.depth)
	}
	return result, nil
}

func (c *maxStackCalculator) scheduleNatural(state stackState) error {
	ins := c.items[state.index]

	next := state.depth - ins.StackPopCount(c.ctx)
	if next < 0 {
		return errors.StackImbalance(ins.Offset, fmt.Sprintf("%s pops more values than the stack holds", ins.OpCode.Name))
	}
	next += ins.StackPushCount()

	if ins.OpCode == Jmp {
		if next != 0 {
			return errors.StackImbalance(ins.Offset, "stack must be empty at jmp")
		}
		return nil
	}

	switch ins.OpCode.FlowControl {
	case FlowBranch:
		if ins.OpCode == Leave || ins.OpCode == LeaveS {
			next = 0
		}
		return c.scheduleLabel(state.index, ins.Operand, next)

	case FlowConditionalBranch:
		if table, ok := ins.Operand.(SwitchTable); ok {
			for _, l := range table {
				if err := c.scheduleLabel(state.index, l, next); err != nil {
					return err
				}
			}
		} else if err := c.scheduleLabel(state.index, ins.Operand, next); err != nil {
			return err
		}
		c.push(state.index+1, next)

	case FlowThrow:
		// the stack is discarded

	case FlowReturn:
		if next != 0 {
			return errors.StackImbalance(ins.Offset, fmt.Sprintf("%d values left on the stack at %s", next, ins.OpCode.Name))
		}

	default:
		c.push(state.index+1, next)
	}
	return nil
}

func (c *maxStackCalculator) scheduleExceptional(state stackState) error {
	ins := c.items[state.index]
	handlers, ok := c.handlers[ins.Offset]
	if !ok {
		return nil
	}
	if state.depth != 0 {
		return errors.StackImbalance(ins.Offset, "try block entered with a non-empty stack")
	}

	for _, h := range handlers {
		depth := 0
		if h.Type == HandlerException || h.Type == HandlerFilter {
			depth = 1
		}
		if h.HandlerStart != nil {
			if err := c.scheduleLabel(state.index, h.HandlerStart, depth); err != nil {
				return err
			}
		}
		if h.Type == HandlerFilter && h.FilterStart != nil {
			if err := c.scheduleLabel(state.index, h.FilterStart, 1); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *maxStackCalculator) scheduleLabel(from int, operand Operand, depth int) error {
	ins := c.items[from]
	offset := -1
	switch t := operand.(type) {
	case *Instruction:
		if t != nil {
			offset = t.Offset
		}
	case RawOffset:
		offset = ins.Offset + ins.Size() + int(t)
	}

	index := -1
	if offset >= 0 {
		index = c.body.Instructions.GetIndexByOffset(offset)
	}
	if t, ok := operand.(*Instruction); ok && index >= 0 && c.items[index] != t {
		index = -1
	}
	if index < 0 {
		return errors.InvalidLabel(ins.Offset,
			fmt.Sprintf("%s transfers control to IL_%04X, which is not an instruction of the body", ins.OpCode.Name, offset))
	}
	c.push(index, depth)
	return nil
}

func (c *maxStackCalculator) push(index, depth int) {
	c.agenda = append(c.agenda, stackState{index: index, depth: depth})
}
