package cil

import (
	"fmt"
	"io"
	"slices"

	"go.uber.org/zap"

	"github.com/wippyai/cil-codec/cil/internal/binary"
	"github.com/wippyai/cil-codec/errors"
)

// Method header flags, ECMA-335 II.25.4.
const (
	headerTinyFormat uint16 = 0x2
	headerFatFormat  uint16 = 0x3
	headerFormatMask uint16 = 0x3
	headerMoreSects  uint16 = 0x8
	headerInitLocals uint16 = 0x10

	fatHeaderSize   = 12
	tinyMaxCodeSize = 64
	defaultMaxStack = 8
)

// MethodBody is a decoded or pending CIL method body.
//
// A body read with ReadMethodBody starts out undecoded: only the header is
// parsed. EnsureDecoded decodes the code and exception handlers once. Set
// Parameters and ReturnsValue before decoding so argument operands and stack
// accounting resolve against the method's signature.
type MethodBody struct {
	LocalVariables    *LocalSignature
	Instructions      *Sequence
	md                MetadataResolver
	ExceptionHandlers []*ExceptionHandler
	// Parameters lists the method's arguments, the implicit this first for instance methods.
	Parameters   []*Parameter
	raw          []byte
	codeStart    int
	codeSize     int
	MaxStack     uint16
	InitLocals   bool
	ReturnsValue bool
	moreSects    bool
	decoded      bool
}

// NewMethodBody creates an empty, decoded body.
func NewMethodBody() *MethodBody {
	b := &MethodBody{
		MaxStack: defaultMaxStack,
		decoded:  true,
	}
	b.Instructions = NewSequence(b)
	return b
}

// ReadMethodBody parses the header of the body at the start of data.
// The code and exception handlers stay undecoded until EnsureDecoded.
// md may be nil, in which case no member or string operand resolves.
func ReadMethodBody(data []byte, md MetadataResolver) (*MethodBody, error) {
	h, err := readHeader(data)
	if err != nil {
		return nil, err
	}

	b := &MethodBody{
		md:         md,
		raw:        data,
		codeStart:  h.size,
		codeSize:   h.codeSize,
		MaxStack:   h.maxStack,
		InitLocals: h.flags&headerInitLocals != 0,
		moreSects:  h.flags&headerMoreSects != 0,
	}
	b.Instructions = NewSequence(b)

	if h.localSig != 0 {
		b.LocalVariables = resolveLocals(md, h.localSig)
	}

	Logger().Debug("read method body header",
		zap.Bool("fat", h.fat),
		zap.Int("code_size", h.codeSize),
		zap.Uint16("max_stack", h.maxStack))
	return b, nil
}

func resolveLocals(md MetadataResolver, token Token) *LocalSignature {
	if md != nil {
		if m, ok := md.ResolveMember(token); ok {
			if sig, ok := m.(*LocalSignature); ok {
				return sig
			}
		}
	}
	Logger().Debug("local signature left unresolved", zap.Stringer("token", token))
	return &LocalSignature{Token: token}
}

type header struct {
	flags    uint16
	size     int
	codeSize int
	localSig Token
	maxStack uint16
	fat      bool
}

func readHeader(data []byte) (header, error) {
	r := binary.NewReader(data)
	first, err := r.ReadByte()
	if err != nil {
		return header{}, errors.Truncated(0, "method header", err)
	}

	var h header
	switch uint16(first) & headerFormatMask {
	case headerTinyFormat:
		h = header{
			flags:    uint16(first) & headerFormatMask,
			size:     1,
			codeSize: int(first >> 2),
			maxStack: defaultMaxStack,
		}
	case headerFatFormat:
		if err := r.Seek(0); err != nil {
			return header{}, errors.Truncated(0, "method header", err)
		}
		flags, err := r.ReadU16()
		if err != nil {
			return header{}, errors.Truncated(0, "fat method header", err)
		}
		maxStack, err := r.ReadU16()
		if err != nil {
			return header{}, errors.Truncated(0, "fat method header", err)
		}
		codeSize, err := r.ReadU32()
		if err != nil {
			return header{}, errors.Truncated(0, "fat method header", err)
		}
		localSig, err := r.ReadU32()
		if err != nil {
			return header{}, errors.Truncated(0, "fat method header", err)
		}
		h = header{
			flags:    flags,
			size:     int(flags>>12) * 4,
			codeSize: int(codeSize),
			localSig: Token(localSig),
			maxStack: maxStack,
			fat:      true,
		}
		if h.size < fatHeaderSize {
			return header{}, errors.Malformed(0, fmt.Sprintf("fat header size %d is smaller than %d", h.size, fatHeaderSize), nil)
		}
	default:
		return header{}, errors.Malformed(0, fmt.Sprintf("invalid method header format 0x%02X", first), nil)
	}

	if h.codeSize > len(data)-h.size {
		return header{}, errors.Malformed(h.size, fmt.Sprintf("code size %d exceeds the %d bytes available", h.codeSize, len(data)-h.size), nil)
	}
	return h, nil
}

// Decoded reports whether the code has been decoded.
func (b *MethodBody) Decoded() bool {
	return b.decoded
}

// EnsureDecoded decodes the code and exception handlers if that has not happened yet.
// On failure the body stays undecoded.
func (b *MethodBody) EnsureDecoded() error {
	if b.decoded {
		return nil
	}

	code := b.raw[b.codeStart : b.codeStart+b.codeSize]
	instructions, err := DecodeInstructions(code, NewOperandResolver(b.md, b))
	if err != nil {
		return err
	}
	seq := NewSequence(b, instructions...)

	var handlers []*ExceptionHandler
	if b.moreSects {
		r := binary.NewReader(b.raw)
		if err := r.Seek(b.codeStart + b.codeSize); err != nil {
			return errors.Truncated(b.codeStart+b.codeSize, "extra sections", err)
		}
		handlers, err = readExceptionHandlers(r, seq, b.md)
		if err != nil {
			return err
		}
	}

	b.Instructions = seq
	b.ExceptionHandlers = handlers
	b.raw = nil
	b.decoded = true
	return nil
}

// CodeSize returns the size of the code in bytes.
func (b *MethodBody) CodeSize() int {
	if !b.decoded {
		return b.codeSize
	}
	return b.Instructions.Size()
}

// IsFat reports whether the body needs the 12-byte header.
func (b *MethodBody) IsFat() bool {
	return b.MaxStack > defaultMaxStack ||
		b.CodeSize() >= tinyMaxCodeSize ||
		b.LocalVariables != nil ||
		b.InitLocals ||
		len(b.ExceptionHandlers) > 0 ||
		(!b.decoded && b.moreSects)
}

// PhysicalLength returns the number of bytes Bytes would produce.
// On a decoded body it recomputes instruction offsets first, as Bytes does.
// An undecoded body reports the size of its original encoding, extra
// sections included.
func (b *MethodBody) PhysicalLength() int {
	if !b.decoded {
		if n, err := MethodBodySize(b.raw); err == nil {
			return n
		}
		return b.codeStart + b.codeSize
	}
	b.Instructions.CalculateOffsets()
	size := b.CodeSize()
	if !b.IsFat() {
		return 1 + size
	}
	size += fatHeaderSize
	if len(b.ExceptionHandlers) > 0 {
		size = align4(size) + handlerTableSize(b.ExceptionHandlers)
	}
	return size
}

func align4(n int) int {
	return (n + 3) &^ 3
}

// Bytes encodes the body.
func (b *MethodBody) Bytes(mb MetadataBuilder) ([]byte, error) {
	if !b.decoded {
		return nil, errors.NotDecoded("method body")
	}
	if mb == nil {
		mb = emptyMetadata{}
	}

	b.Instructions.CalculateOffsets()
	code, err := EncodeInstructions(b.Instructions.Items(), NewOperandBuilder(mb, b))
	if err != nil {
		return nil, err
	}

	w := binary.NewWriter()
	if b.IsFat() {
		if err := b.writeFatHeader(w, mb, len(code)); err != nil {
			return nil, err
		}
	} else {
		w.Byte(byte(headerTinyFormat) | byte(len(code)<<2))
	}
	w.WriteBytes(code)

	if len(b.ExceptionHandlers) > 0 {
		if err := writeExceptionHandlers(w, b.ExceptionHandlers, mb); err != nil {
			return nil, err
		}
	}
	return w.Bytes(), nil
}

// Write encodes the body to w.
func (b *MethodBody) Write(w io.Writer, mb MetadataBuilder) error {
	data, err := b.Bytes(mb)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func (b *MethodBody) writeFatHeader(w *binary.Writer, mb MetadataBuilder, codeSize int) error {
	flags := headerFatFormat | (fatHeaderSize/4)<<12
	if len(b.ExceptionHandlers) > 0 {
		flags |= headerMoreSects
	}
	if b.InitLocals {
		flags |= headerInitLocals
	}

	var localSig Token
	if sig := b.LocalVariables; sig != nil {
		localSig = mb.MemberToken(sig)
		if localSig.RID() == 0 {
			localSig = sig.Token
		}
		if localSig.RID() == 0 && len(sig.Variables) > 0 {
			return errors.InvalidToken(errors.NoOffset, "", sig, uint32(localSig))
		}
	}

	w.WriteU16(flags)
	w.WriteU16(b.MaxStack)
	w.WriteU32(uint32(codeSize))
	w.WriteU32(uint32(localSig))
	return nil
}

// ReplaceInstruction swaps old for repl and re-points branch operands and
// handler boundaries that referenced old.
func (b *MethodBody) ReplaceInstruction(old, repl *Instruction) bool {
	if !b.Instructions.Replace(old, repl) {
		return false
	}
	for _, h := range b.ExceptionHandlers {
		h.retarget(old, repl)
	}
	return true
}

// ResolveVariable returns the local at index.
func (b *MethodBody) ResolveVariable(index int) (*Variable, bool) {
	if b.LocalVariables == nil || index < 0 || index >= len(b.LocalVariables.Variables) {
		return nil, false
	}
	return b.LocalVariables.Variables[index], true
}

// ResolveParameter returns the parameter at index.
func (b *MethodBody) ResolveParameter(index int) (*Parameter, bool) {
	if index < 0 || index >= len(b.Parameters) {
		return nil, false
	}
	return b.Parameters[index], true
}

// VariableIndex returns the index of v among the locals, or -1.
func (b *MethodBody) VariableIndex(v *Variable) int {
	if b.LocalVariables == nil {
		return -1
	}
	return slices.Index(b.LocalVariables.Variables, v)
}

// ParameterIndex returns the index of p among the parameters, or -1.
func (b *MethodBody) ParameterIndex(p *Parameter) int {
	return slices.Index(b.Parameters, p)
}

// MethodBodySize returns the number of bytes the encoded body at the start of
// data occupies, extra sections included, without decoding it.
func MethodBodySize(data []byte) (int, error) {
	h, err := readHeader(data)
	if err != nil {
		return 0, err
	}
	end := h.size + h.codeSize
	if h.flags&headerMoreSects == 0 {
		return end, nil
	}

	r := binary.NewReader(data)
	if err := r.Seek(end); err != nil {
		return 0, errors.Truncated(end, "extra sections", err)
	}
	for {
		if err := r.Align(4); err != nil {
			return 0, errors.Truncated(r.Position(), "extra section alignment", err)
		}
		start := r.Position()
		flags, dataSize, err := readSectionHeader(r)
		if err != nil {
			return 0, err
		}
		if err := r.Seek(start + dataSize); err != nil {
			return 0, errors.Truncated(start, "extra section", err)
		}
		if flags&sectMoreSects == 0 {
			return r.Position(), nil
		}
	}
}
