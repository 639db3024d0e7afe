package cil

import "fmt"

// Token is a metadata token: table index in the high byte, row id in the low 24 bits.
type Token uint32

// Common metadata table tags.
const (
	TableTypeRef       byte = 0x01
	TableTypeDef       byte = 0x02
	TableField         byte = 0x04
	TableMethodDef     byte = 0x06
	TableMemberRef     byte = 0x0A
	TableStandAloneSig byte = 0x11
	TableTypeSpec      byte = 0x1B
	TableMethodSpec    byte = 0x2B
	TableUserString    byte = 0x70
)

// NewToken packs a table tag and row id.
func NewToken(table byte, rid uint32) Token {
	return Token(uint32(table)<<24 | rid&0x00FFFFFF)
}

// Table returns the table tag.
func (t Token) Table() byte {
	return byte(t >> 24)
}

// RID returns the row id. Zero means the token refers to nothing.
func (t Token) RID() uint32 {
	return uint32(t) & 0x00FFFFFF
}

func (t Token) String() string {
	return fmt.Sprintf("0x%08X", uint32(t))
}

// Member is anything an instruction can reference through a metadata token:
// fields, methods, types, signatures.
type Member interface {
	fmt.Stringer
}

// MethodSignature describes the stack shape of a call.
type MethodSignature struct {
	HasThis        bool
	ParameterCount int
	ReturnsValue   bool
}

// Callable is a Member that can be the target of call, callvirt, newobj, calli or jmp.
type Callable interface {
	Member
	MethodSignature() MethodSignature
}

// Variable is a local variable of a method body.
type Variable struct {
	Name string
	Type string
}

func (v *Variable) String() string {
	if v.Name != "" {
		return v.Name
	}
	return "V?"
}

// Parameter is a method parameter. The implicit this of an instance method is parameter 0.
type Parameter struct {
	Name string
	Type string
}

func (p *Parameter) String() string {
	if p.Name != "" {
		return p.Name
	}
	return "A?"
}

// LocalSignature is the stand-alone signature describing a body's locals.
type LocalSignature struct {
	Variables []*Variable
	Token     Token
}

func (s *LocalSignature) String() string {
	return fmt.Sprintf("locals(%d) %s", len(s.Variables), s.Token)
}
