package cil

import "fmt"

// EscapeByte introduces a two-byte opcode.
const EscapeByte byte = 0xFE

// OperandType describes the operand that follows an opcode.
type OperandType byte

const (
	OperandNone OperandType = iota
	OperandShortArgument
	OperandArgument
	OperandShortVariable
	OperandVariable
	OperandShortInt8
	OperandInt32
	OperandInt64
	OperandShortFloat32
	OperandFloat64
	OperandShortBranchTarget
	OperandBranchTarget
	OperandField
	OperandMethod
	OperandSignature
	OperandToken
	OperandTypeRef
	OperandString
	OperandSwitch
)

var operandTypeNames = [...]string{
	OperandNone:              "None",
	OperandShortArgument:     "ShortArgument",
	OperandArgument:          "Argument",
	OperandShortVariable:     "ShortVariable",
	OperandVariable:          "Variable",
	OperandShortInt8:         "ShortInt8",
	OperandInt32:             "Int32",
	OperandInt64:             "Int64",
	OperandShortFloat32:      "ShortFloat32",
	OperandFloat64:           "Float64",
	OperandShortBranchTarget: "ShortBranchTarget",
	OperandBranchTarget:      "BranchTarget",
	OperandField:             "Field",
	OperandMethod:            "Method",
	OperandSignature:         "Signature",
	OperandToken:             "Token",
	OperandTypeRef:           "Type",
	OperandString:            "String",
	OperandSwitch:            "Switch",
}

func (t OperandType) String() string {
	if int(t) < len(operandTypeNames) {
		return operandTypeNames[t]
	}
	return fmt.Sprintf("OperandType(%d)", byte(t))
}

// FixedSize returns the encoded operand size in bytes.
// For OperandSwitch it is the size of the count field only.
func (t OperandType) FixedSize() int {
	switch t {
	case OperandNone:
		return 0
	case OperandShortArgument, OperandShortVariable, OperandShortInt8, OperandShortBranchTarget:
		return 1
	case OperandArgument, OperandVariable:
		return 2
	case OperandInt64, OperandFloat64:
		return 8
	default:
		return 4
	}
}

// IsMember reports whether the operand is a metadata token resolved to a Member.
func (t OperandType) IsMember() bool {
	switch t {
	case OperandField, OperandMethod, OperandSignature, OperandToken, OperandTypeRef:
		return true
	}
	return false
}

// IsBranch reports whether the operand is a single relative branch target.
func (t OperandType) IsBranch() bool {
	return t == OperandShortBranchTarget || t == OperandBranchTarget
}

// FlowControl classifies how an instruction transfers control.
type FlowControl byte

const (
	FlowNext FlowControl = iota
	FlowBranch
	FlowBreak
	FlowCall
	FlowConditionalBranch
	FlowMeta
	FlowPhi
	FlowReturn
	FlowThrow
)

var flowControlNames = [...]string{
	FlowNext:              "Next",
	FlowBranch:            "Branch",
	FlowBreak:             "Break",
	FlowCall:              "Call",
	FlowConditionalBranch: "ConditionalBranch",
	FlowMeta:              "Meta",
	FlowPhi:               "Phi",
	FlowReturn:            "Return",
	FlowThrow:             "Throw",
}

func (f FlowControl) String() string {
	if int(f) < len(flowControlNames) {
		return flowControlNames[f]
	}
	return fmt.Sprintf("FlowControl(%d)", byte(f))
}

// StackBehaviour describes the values an opcode pops or pushes.
type StackBehaviour byte

const (
	StackPop0 StackBehaviour = iota
	StackPop1
	StackPop1Pop1
	StackPopI
	StackPopIPop1
	StackPopIPopI
	StackPopIPopI8
	StackPopIPopIPopI
	StackPopIPopR4
	StackPopIPopR8
	StackPopRef
	StackPopRefPop1
	StackPopRefPopI
	StackPopRefPopIPopI
	StackPopRefPopIPopI8
	StackPopRefPopIPopR4
	StackPopRefPopIPopR8
	StackPopRefPopIPopRef
	StackPopRefPopIPop1
	StackVarPop
	StackPush0
	StackPush1
	StackPush1Push1
	StackPushI
	StackPushI8
	StackPushR4
	StackPushR8
	StackPushRef
	StackVarPush
)

// Count returns the fixed number of stack slots. Variable behaviours return 0.
func (s StackBehaviour) Count() int {
	switch s {
	case StackPop0, StackPush0, StackVarPop, StackVarPush:
		return 0
	case StackPop1, StackPopI, StackPopRef,
		StackPush1, StackPushI, StackPushI8, StackPushR4, StackPushR8, StackPushRef:
		return 1
	case StackPop1Pop1, StackPopIPop1, StackPopIPopI, StackPopIPopI8, StackPopIPopR4, StackPopIPopR8,
		StackPopRefPop1, StackPopRefPopI, StackPush1Push1:
		return 2
	default:
		return 3
	}
}

// IsVariable reports whether the count depends on the operand.
func (s StackBehaviour) IsVariable() bool {
	return s == StackVarPop || s == StackVarPush
}

// OpCode describes one CIL opcode. Descriptors are immutable and shared.
type OpCode struct {
	Name        string
	Code        uint16
	Size        int
	Byte1       byte
	Byte2       byte
	OperandType OperandType
	StackPop    StackBehaviour
	StackPush   StackBehaviour
	FlowControl FlowControl
	invalid     bool
}

// Invalid reports whether the descriptor stands for an unassigned encoding.
func (op *OpCode) Invalid() bool {
	return op.invalid
}

func (op *OpCode) String() string {
	return op.Name
}

var (
	oneByteOpCodes [256]*OpCode
	twoByteOpCodes [256]*OpCode
	opCodesByName  = make(map[string]*OpCode)
)

func newOpCode(name string, code uint16, operand OperandType, pop, push StackBehaviour, flow FlowControl) *OpCode {
	op := &OpCode{
		Name:        name,
		Code:        code,
		OperandType: operand,
		StackPop:    pop,
		StackPush:   push,
		FlowControl: flow,
	}
	if code > 0xFF {
		op.Size = 2
		op.Byte1 = byte(code >> 8)
		op.Byte2 = byte(code)
	} else {
		op.Size = 1
		op.Byte1 = byte(code)
	}
	return op
}

func register(op *OpCode) {
	table := &oneByteOpCodes
	slot := op.Byte1
	if op.Size == 2 {
		if op.Byte1 != EscapeByte {
			panic(fmt.Sprintf("cil: opcode %s has invalid prefix 0x%02X", op.Name, op.Byte1))
		}
		table = &twoByteOpCodes
		slot = op.Byte2
	}
	if prev := table[slot]; prev != nil {
		panic(fmt.Sprintf("cil: opcode %s collides with %s at 0x%04X", op.Name, prev.Name, op.Code))
	}
	table[slot] = op
	if !op.invalid {
		opCodesByName[op.Name] = op
	}
}

func init() {
	for _, op := range allOpCodes {
		register(op)
	}
	for i := range 256 {
		if oneByteOpCodes[i] == nil {
			op := newOpCode(fmt.Sprintf("unknown.%02x", i), uint16(i), OperandNone, StackPop0, StackPush0, FlowNext)
			op.invalid = true
			register(op)
		}
		if twoByteOpCodes[i] == nil {
			op := newOpCode(fmt.Sprintf("unknown.fe%02x", i), 0xFE00|uint16(i), OperandNone, StackPop0, StackPush0, FlowNext)
			op.invalid = true
			register(op)
		}
	}
}

// Lookup returns the single-byte opcode for b. The result is never nil.
func Lookup(b byte) *OpCode {
	return oneByteOpCodes[b]
}

// LookupTwoByte returns the opcode encoded as 0xFE b. The result is never nil.
func LookupTwoByte(b byte) *OpCode {
	return twoByteOpCodes[b]
}

// LookupCode returns the opcode for a full code value (0xFExx for two-byte forms).
func LookupCode(code uint16) *OpCode {
	if code > 0xFF {
		if byte(code>>8) != EscapeByte {
			return nil
		}
		return twoByteOpCodes[byte(code)]
	}
	return oneByteOpCodes[byte(code)]
}

// LookupName returns the opcode with the given mnemonic, such as "ldc.i4.s".
func LookupName(name string) (*OpCode, bool) {
	op, ok := opCodesByName[name]
	return op, ok
}
