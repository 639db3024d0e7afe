package cil

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/wippyai/cil-codec/errors"
)

// VerifyLabels checks that every branch target, switch target and handler
// boundary references an instruction of this body, or the End label for
// end-exclusive boundaries. All problems are reported together.
func (b *MethodBody) VerifyLabels() error {
	if !b.decoded {
		return errors.NotDecoded("method body")
	}
	b.Instructions.CalculateOffsets()

	var err error
	for _, ins := range b.Instructions.Items() {
		switch ins.OpCode.OperandType {
		case OperandShortBranchTarget, OperandBranchTarget:
			err = multierr.Append(err, b.verifyBranchLabel(ins, ins.Operand))
		case OperandSwitch:
			table, ok := ins.Operand.(SwitchTable)
			if !ok {
				err = multierr.Append(err, errors.InvalidLabel(ins.Offset, "switch table is missing"))
				continue
			}
			for _, l := range table {
				err = multierr.Append(err, b.verifyBranchLabel(ins, l))
			}
		}
	}

	for i, h := range b.ExceptionHandlers {
		err = multierr.Append(err, b.verifyHandlerLabel(i, "try start", h.TryStart, false))
		err = multierr.Append(err, b.verifyHandlerLabel(i, "try end", h.TryEnd, true))
		err = multierr.Append(err, b.verifyHandlerLabel(i, "handler start", h.HandlerStart, false))
		err = multierr.Append(err, b.verifyHandlerLabel(i, "handler end", h.HandlerEnd, true))
		if h.Type == HandlerFilter {
			err = multierr.Append(err, b.verifyHandlerLabel(i, "filter start", h.FilterStart, false))
		}
	}

	if n := len(multierr.Errors(err)); n > 0 {
		Logger().Debug("invalid labels found", zap.Int("count", n))
	}
	return err
}

func (b *MethodBody) verifyBranchLabel(ins *Instruction, operand Operand) error {
	switch t := operand.(type) {
	case *Instruction:
		if t == nil {
			break
		}
		if !b.present(t) {
			return errors.InvalidLabel(ins.Offset, fmt.Sprintf("%s references an instruction that is not in the method body", ins.OpCode.Name))
		}
		return nil
	case RawOffset:
		target := ins.Offset + ins.Size() + int(t)
		if b.Instructions.GetIndexByOffset(target) < 0 {
			return errors.InvalidLabel(ins.Offset, fmt.Sprintf("%s references offset IL_%04X, which is not an instruction", ins.OpCode.Name, target))
		}
		return nil
	}
	return errors.InvalidLabel(ins.Offset, fmt.Sprintf("branch target of %s is nil", ins.OpCode.Name))
}

func (b *MethodBody) verifyHandlerLabel(index int, name string, label *Instruction, endExclusive bool) error {
	switch {
	case label == nil:
		return errors.InvalidLabel(errors.NoOffset, fmt.Sprintf("%s of exception handler %d is nil", name, index))
	case endExclusive && label == b.Instructions.End():
		return nil
	case !b.present(label):
		return errors.InvalidLabel(label.Offset, fmt.Sprintf("%s of exception handler %d references an instruction that is not in the method body", name, index))
	}
	return nil
}

func (b *MethodBody) present(ins *Instruction) bool {
	return b.Instructions.GetByOffset(ins.Offset) == ins
}
