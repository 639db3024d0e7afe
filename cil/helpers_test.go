package cil_test

import (
	"github.com/wippyai/cil-codec/cil"
)

type testMethod struct {
	name string
	sig  cil.MethodSignature
}

func (m *testMethod) String() string                       { return m.name }
func (m *testMethod) MethodSignature() cil.MethodSignature { return m.sig }

type testType struct {
	name string
}

func (t *testType) String() string { return t.name }

// testMetadata is a tiny two-way token table.
type testMetadata struct {
	members map[cil.Token]cil.Member
	strings map[cil.Token]string
}

func newTestMetadata() *testMetadata {
	return &testMetadata{
		members: make(map[cil.Token]cil.Member),
		strings: make(map[cil.Token]string),
	}
}

func (md *testMetadata) addMember(token cil.Token, m cil.Member) cil.Member {
	md.members[token] = m
	return m
}

func (md *testMetadata) addString(token cil.Token, s string) {
	md.strings[token] = s
}

func (md *testMetadata) ResolveMember(token cil.Token) (cil.Member, bool) {
	m, ok := md.members[token]
	return m, ok
}

func (md *testMetadata) ResolveString(token cil.Token) (string, bool) {
	s, ok := md.strings[token]
	return s, ok
}

func (md *testMetadata) MemberToken(m cil.Member) cil.Token {
	for token, candidate := range md.members {
		if candidate == m {
			return token
		}
	}
	return 0
}

func (md *testMetadata) StringToken(s string) uint32 {
	for token, candidate := range md.strings {
		if candidate == s {
			return uint32(token)
		}
	}
	return 0
}

func must(ins *cil.Instruction, err error) *cil.Instruction {
	if err != nil {
		panic(err)
	}
	return ins
}

func newBody(instructions ...*cil.Instruction) *cil.MethodBody {
	body := cil.NewMethodBody()
	body.Instructions.Add(instructions...)
	body.Instructions.CalculateOffsets()
	return body
}
