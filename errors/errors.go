package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseDecode    Phase = "decode"    // bytes to instructions
	PhaseEncode    Phase = "encode"    // instructions to bytes
	PhaseConstruct Phase = "construct" // instruction construction
	PhaseAnalyze   Phase = "analyze"   // stack analysis
	PhaseVerify    Phase = "verify"    // label verification
	PhaseConfig    Phase = "config"    // tool configuration
)

// Kind categorizes the error
type Kind string

const (
	KindMalformedBytecode   Kind = "malformed_bytecode"
	KindUnresolvedOperand   Kind = "unresolved_operand"
	KindUnresolvableToken   Kind = "unresolvable_token"
	KindInvalidToken        Kind = "invalid_token"
	KindInvalidOperandShape Kind = "invalid_operand_shape"
	KindStackImbalance      Kind = "stack_imbalance"
	KindInvalidLabel        Kind = "invalid_label"
	KindOverflow            Kind = "overflow"
	KindOutOfBounds         Kind = "out_of_bounds"
	KindNotDecoded          Kind = "not_decoded"
	KindInvalidInput        Kind = "invalid_input"
)

// NoOffset marks an error that is not tied to a code offset.
const NoOffset = -1

// Error is the structured error type used throughout the codec
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	OpCode string
	Detail string
	Offset int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Offset >= 0 {
		fmt.Fprintf(&b, " at IL_%04X", e.Offset)
	}

	if e.OpCode != "" {
		b.WriteString(" (")
		b.WriteString(e.OpCode)
		b.WriteByte(')')
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error.
// A target with an empty Phase matches on Kind alone.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Phase == "" {
		return e.Kind == t.Kind
	}
	return e.Phase == t.Phase && e.Kind == t.Kind
}

// Sentinels for errors.Is checks that only care about the category.
var (
	ErrMalformedBytecode   = &Error{Kind: KindMalformedBytecode, Offset: NoOffset}
	ErrUnresolvedOperand   = &Error{Kind: KindUnresolvedOperand, Offset: NoOffset}
	ErrUnresolvableToken   = &Error{Kind: KindUnresolvableToken, Offset: NoOffset}
	ErrInvalidToken        = &Error{Kind: KindInvalidToken, Offset: NoOffset}
	ErrInvalidOperandShape = &Error{Kind: KindInvalidOperandShape, Offset: NoOffset}
	ErrStackImbalance      = &Error{Kind: KindStackImbalance, Offset: NoOffset}
	ErrInvalidLabel        = &Error{Kind: KindInvalidLabel, Offset: NoOffset}
	ErrOverflow            = &Error{Kind: KindOverflow, Offset: NoOffset}
	ErrNotDecoded          = &Error{Kind: KindNotDecoded, Offset: NoOffset}
)

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase:  phase,
			Kind:   kind,
			Offset: NoOffset,
		},
	}
}

// At sets the code offset
func (b *Builder) At(offset int) *Builder {
	b.err.Offset = offset
	return b
}

// OpCode sets the mnemonic of the offending instruction
func (b *Builder) OpCode(name string) *Builder {
	b.err.OpCode = name
	return b
}

// Detail sets the detail message
func (b *Builder) Detail(format string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(format, args...)
	} else {
		b.err.Detail = format
	}
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Malformed creates a malformed bytecode error at the given offset
func Malformed(offset int, detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindMalformedBytecode,
		Offset: offset,
		Detail: detail,
		Cause:  cause,
	}
}

// Truncated creates a malformed bytecode error for a stream that ended early
func Truncated(offset int, what string, cause error) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindMalformedBytecode,
		Offset: offset,
		Detail: fmt.Sprintf("stream ended while reading %s", what),
		Cause:  cause,
	}
}

// OperandShape creates an invalid operand shape error
func OperandShape(opcode, operandType string, operand any) *Error {
	return &Error{
		Phase:  PhaseConstruct,
		Kind:   KindInvalidOperandShape,
		Offset: NoOffset,
		OpCode: opcode,
		Detail: fmt.Sprintf("operand of type %T is not valid for %s operands", operand, operandType),
		Value:  operand,
	}
}

// UnresolvedOperand creates an error for a raw operand demanded in resolved form
func UnresolvedOperand(offset int, opcode string, operand any) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindUnresolvedOperand,
		Offset: offset,
		OpCode: opcode,
		Detail: fmt.Sprintf("operand %v was not resolved", operand),
		Value:  operand,
	}
}

// Unresolvable creates an encode-time error for an operand that has no concrete form
func Unresolvable(offset int, opcode, detail string) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindUnresolvableToken,
		Offset: offset,
		OpCode: opcode,
		Detail: detail,
	}
}

// InvalidToken creates an encode-time error for a token without a row id
func InvalidToken(offset int, opcode string, member any, token uint32) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindInvalidToken,
		Offset: offset,
		OpCode: opcode,
		Detail: fmt.Sprintf("member %v has invalid metadata token 0x%08X", member, token),
		Value:  member,
	}
}

// Overflow creates an overflow error
func Overflow(phase Phase, offset int, value any, target string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOverflow,
		Offset: offset,
		Detail: fmt.Sprintf("value %v overflows %s", value, target),
		Value:  value,
	}
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, index, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Offset: NoOffset,
		Detail: fmt.Sprintf("index %d out of bounds (length %d)", index, length),
		Value:  index,
	}
}

// StackImbalance creates a stack imbalance error
func StackImbalance(offset int, detail string) *Error {
	return &Error{
		Phase:  PhaseAnalyze,
		Kind:   KindStackImbalance,
		Offset: offset,
		Detail: detail,
	}
}

// InvalidLabel creates a label verification error
func InvalidLabel(offset int, detail string) *Error {
	return &Error{
		Phase:  PhaseVerify,
		Kind:   KindInvalidLabel,
		Offset: offset,
		Detail: detail,
	}
}

// NotDecoded creates an error for a body accessed before decoding
func NotDecoded(what string) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindNotDecoded,
		Offset: NoOffset,
		Detail: fmt.Sprintf("%s not decoded", what),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Offset: NoOffset,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Offset: NoOffset,
		Detail: detail,
		Cause:  cause,
	}
}
