package metadata

import (
	"unicode/utf16"
)

// maxHeapOffset is the largest offset a user-string token can carry.
const maxHeapOffset = 0x00FFFFFF

// stringHeap assigns #US heap offsets. Offset 0 holds the empty blob, so the
// first string lands at 1. Each entry is a compressed length, the UTF-16LE
// code units and one trailing flag byte.
type stringHeap struct {
	offsets map[string]uint32
	values  map[uint32]string
	next    uint32
}

func newStringHeap() *stringHeap {
	return &stringHeap{
		offsets: make(map[string]uint32),
		values:  make(map[uint32]string),
		next:    1,
	}
}

// intern returns the offset of s, appending it on first use.
// The second result is true when s was appended.
func (h *stringHeap) intern(s string) (uint32, bool, bool) {
	if off, ok := h.offsets[s]; ok {
		return off, false, true
	}
	off := h.next
	if off > maxHeapOffset {
		return 0, false, false
	}
	h.offsets[s] = off
	h.values[off] = s
	h.next += entrySize(s)
	return off, true, true
}

// pin records s at a fixed offset without moving the append cursor below it.
func (h *stringHeap) pin(off uint32, s string) {
	if old, ok := h.values[off]; ok {
		delete(h.offsets, old)
	}
	h.values[off] = s
	h.offsets[s] = off
	if end := off + entrySize(s); end > h.next {
		h.next = end
	}
}

func (h *stringHeap) lookup(off uint32) (string, bool) {
	s, ok := h.values[off]
	return s, ok
}

func (h *stringHeap) size() uint32 {
	return h.next
}

func entrySize(s string) uint32 {
	n := uint32(len(utf16.Encode([]rune(s))))*2 + 1
	return compressedSize(n) + n
}

// compressedSize returns the width of n in ECMA-335 compressed form.
func compressedSize(n uint32) uint32 {
	switch {
	case n < 0x80:
		return 1
	case n < 0x4000:
		return 2
	}
	return 4
}
