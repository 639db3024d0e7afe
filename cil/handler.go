package cil

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/wippyai/cil-codec/cil/internal/binary"
	"github.com/wippyai/cil-codec/errors"
)

// HandlerType is the kind of an exception handling clause.
type HandlerType uint32

const (
	HandlerException HandlerType = 0
	HandlerFilter    HandlerType = 1
	HandlerFinally   HandlerType = 2
	HandlerFault     HandlerType = 4
)

func (t HandlerType) String() string {
	switch t {
	case HandlerException:
		return "catch"
	case HandlerFilter:
		return "filter"
	case HandlerFinally:
		return "finally"
	case HandlerFault:
		return "fault"
	}
	return fmt.Sprintf("HandlerType(%d)", uint32(t))
}

// Extra section flags.
const (
	sectEHTable    byte = 0x01
	sectOptILTable byte = 0x02
	sectFatFormat  byte = 0x40
	sectMoreSects  byte = 0x80
)

const (
	smallHandlerSize = 12
	fatHandlerSize   = 24

	// A small section stores its size in one byte, header included.
	maxSmallHandlers = (math.MaxUint8 - 4) / smallHandlerSize
	maxFatHandlers   = (1<<24 - 1 - 4) / fatHandlerSize
)

// ExceptionHandler is one protected region. End boundaries are exclusive and
// may point at the sequence's End label.
type ExceptionHandler struct {
	CatchType    Member
	TryStart     *Instruction
	TryEnd       *Instruction
	HandlerStart *Instruction
	HandlerEnd   *Instruction
	FilterStart  *Instruction
	Type         HandlerType
}

func labelOffset(ins *Instruction) int {
	if ins == nil {
		return 0
	}
	return ins.Offset
}

// NeedsFatEncoding reports whether the region cannot be stored in the small format.
func (h *ExceptionHandler) NeedsFatEncoding() bool {
	tryStart, tryEnd := labelOffset(h.TryStart), labelOffset(h.TryEnd)
	handlerStart, handlerEnd := labelOffset(h.HandlerStart), labelOffset(h.HandlerEnd)
	return tryStart > math.MaxUint16 ||
		tryEnd > math.MaxUint16 ||
		handlerStart > math.MaxUint16 ||
		handlerEnd > math.MaxUint16 ||
		tryEnd-tryStart > math.MaxUint8 ||
		handlerEnd-handlerStart > math.MaxUint8
}

// Labels returns the boundaries the handler references, nil entries included.
func (h *ExceptionHandler) Labels() []*Instruction {
	labels := []*Instruction{h.TryStart, h.TryEnd, h.HandlerStart, h.HandlerEnd}
	if h.Type == HandlerFilter {
		labels = append(labels, h.FilterStart)
	}
	return labels
}

func (h *ExceptionHandler) retarget(old, repl *Instruction) bool {
	changed := false
	for _, p := range []**Instruction{&h.TryStart, &h.TryEnd, &h.HandlerStart, &h.HandlerEnd, &h.FilterStart} {
		if *p == old {
			*p = repl
			changed = true
		}
	}
	return changed
}

// readExceptionHandlers reads the chain of extra sections that follows the code.
// r must be positioned right after the code. Sections other than EH tables are skipped.
func readExceptionHandlers(r *binary.Reader, seq *Sequence, md MetadataResolver) ([]*ExceptionHandler, error) {
	var handlers []*ExceptionHandler
	for {
		if err := r.Align(4); err != nil {
			return nil, errors.Truncated(r.Position(), "extra section alignment", err)
		}
		start := r.Position()
		flags, dataSize, err := readSectionHeader(r)
		if err != nil {
			return nil, err
		}

		if flags&sectEHTable != 0 {
			fat := flags&sectFatFormat != 0
			rowSize := smallHandlerSize
			if fat {
				rowSize = fatHandlerSize
			}
			count := dataSize / rowSize
			for range count {
				h, err := readExceptionHandler(r, seq, md, fat)
				if err != nil {
					return nil, err
				}
				handlers = append(handlers, h)
			}
			Logger().Debug("read exception handler section",
				zap.Bool("fat", fat),
				zap.Int("handlers", count))
		}

		if err := r.Seek(start + dataSize); err != nil {
			return nil, errors.Truncated(start, "extra section", err)
		}
		if flags&sectMoreSects == 0 {
			return handlers, nil
		}
	}
}

func readSectionHeader(r *binary.Reader) (flags byte, dataSize int, err error) {
	start := r.Position()
	flags, err = r.ReadByte()
	if err != nil {
		return 0, 0, errors.Truncated(start, "extra section header", err)
	}
	if flags&sectFatFormat != 0 {
		v, err := r.ReadU24()
		if err != nil {
			return 0, 0, errors.Truncated(start, "extra section header", err)
		}
		dataSize = int(v)
	} else {
		v, err := r.ReadByte()
		if err != nil {
			return 0, 0, errors.Truncated(start, "extra section header", err)
		}
		if _, err := r.ReadU16(); err != nil {
			return 0, 0, errors.Truncated(start, "extra section header", err)
		}
		dataSize = int(v)
	}
	if dataSize < 4 {
		return 0, 0, errors.Malformed(start, fmt.Sprintf("extra section size %d is smaller than its header", dataSize), nil)
	}
	return flags, dataSize, nil
}

func readExceptionHandler(r *binary.Reader, seq *Sequence, md MetadataResolver, fat bool) (*ExceptionHandler, error) {
	pos := r.Position()
	var kind, tryStart, tryLen, handlerStart, handlerLen uint32
	var err error
	read := func(dst *uint32, width int) {
		if err != nil {
			return
		}
		switch width {
		case 1:
			var v byte
			v, err = r.ReadByte()
			*dst = uint32(v)
		case 2:
			var v uint16
			v, err = r.ReadU16()
			*dst = uint32(v)
		default:
			*dst, err = r.ReadU32()
		}
	}
	if fat {
		read(&kind, 4)
		read(&tryStart, 4)
		read(&tryLen, 4)
		read(&handlerStart, 4)
		read(&handlerLen, 4)
	} else {
		read(&kind, 2)
		read(&tryStart, 2)
		read(&tryLen, 1)
		read(&handlerStart, 2)
		read(&handlerLen, 1)
	}
	var extra uint32
	read(&extra, 4)
	if err != nil {
		return nil, errors.Truncated(pos, "exception handler clause", err)
	}

	h := &ExceptionHandler{
		Type:         HandlerType(kind),
		TryStart:     labelAt(seq, int(tryStart)),
		TryEnd:       labelAt(seq, int(tryStart)+int(tryLen)),
		HandlerStart: labelAt(seq, int(handlerStart)),
		HandlerEnd:   labelAt(seq, int(handlerStart)+int(handlerLen)),
	}
	switch h.Type {
	case HandlerException:
		token := Token(extra)
		h.CatchType = RawToken(token)
		if md != nil {
			if m, ok := md.ResolveMember(token); ok && m != nil {
				h.CatchType = m
			}
		}
	case HandlerFilter:
		h.FilterStart = labelAt(seq, int(extra))
	}
	return h, nil
}

func labelAt(seq *Sequence, offset int) *Instruction {
	if ins := seq.GetByOffset(offset); ins != nil {
		return ins
	}
	if offset == seq.End().Offset {
		return seq.End()
	}
	Logger().Debug("handler boundary not at an instruction", zap.Int("offset", offset))
	return nil
}

// handlerTableSize returns the encoded size of the EH section, header included.
func handlerTableSize(handlers []*ExceptionHandler) int {
	if len(handlers) == 0 {
		return 0
	}
	if useFatHandlers(handlers) {
		return 4 + len(handlers)*fatHandlerSize
	}
	return 4 + len(handlers)*smallHandlerSize
}

func useFatHandlers(handlers []*ExceptionHandler) bool {
	if len(handlers) > maxSmallHandlers {
		return true
	}
	for _, h := range handlers {
		if h.NeedsFatEncoding() {
			return true
		}
	}
	return false
}

// writeExceptionHandlers writes a single EH section, aligned to 4 bytes.
// All clauses share one format: fat if any clause needs it.
func writeExceptionHandlers(w *binary.Writer, handlers []*ExceptionHandler, mb MetadataBuilder) error {
	if len(handlers) > maxFatHandlers {
		return errors.Overflow(errors.PhaseEncode, errors.NoOffset, len(handlers), "exception handler section")
	}
	fat := useFatHandlers(handlers)
	w.Align(4)

	size := handlerTableSize(handlers)
	if fat {
		w.Byte(sectEHTable | sectFatFormat)
		w.WriteU24(uint32(size))
	} else {
		w.Byte(sectEHTable)
		w.Byte(byte(size))
		w.WriteU16(0)
	}

	for i, h := range handlers {
		if err := writeExceptionHandler(w, h, mb, fat); err != nil {
			if e, ok := err.(*errors.Error); ok && e.Detail != "" {
				e.Detail = fmt.Sprintf("handler %d: %s", i, e.Detail)
			}
			return err
		}
	}
	return nil
}

func writeExceptionHandler(w *binary.Writer, h *ExceptionHandler, mb MetadataBuilder, fat bool) error {
	for _, l := range h.Labels() {
		if l == nil {
			return errors.Unresolvable(errors.NoOffset, "", "boundary is not linked to an instruction")
		}
	}
	tryStart, tryLen := h.TryStart.Offset, h.TryEnd.Offset-h.TryStart.Offset
	handlerStart, handlerLen := h.HandlerStart.Offset, h.HandlerEnd.Offset-h.HandlerStart.Offset
	if tryLen < 0 || handlerLen < 0 {
		return errors.New(errors.PhaseEncode, errors.KindInvalidInput).
			At(tryStart).
			Detail("region end precedes its start").
			Build()
	}

	var extra uint32
	switch h.Type {
	case HandlerException:
		switch c := h.CatchType.(type) {
		case nil:
			return errors.Unresolvable(tryStart, "", "catch clause without catch type")
		case RawToken:
			extra = uint32(c)
		default:
			token := mb.MemberToken(c)
			if token.RID() == 0 {
				return errors.InvalidToken(tryStart, "", c, uint32(token))
			}
			extra = uint32(token)
		}
	case HandlerFilter:
		extra = uint32(h.FilterStart.Offset)
	}

	if fat {
		w.WriteU32(uint32(h.Type))
		w.WriteU32(uint32(tryStart))
		w.WriteU32(uint32(tryLen))
		w.WriteU32(uint32(handlerStart))
		w.WriteU32(uint32(handlerLen))
	} else {
		w.WriteU16(uint16(h.Type))
		w.WriteU16(uint16(tryStart))
		w.Byte(byte(tryLen))
		w.WriteU16(uint16(handlerStart))
		w.Byte(byte(handlerLen))
	}
	w.WriteU32(extra)
	return nil
}
