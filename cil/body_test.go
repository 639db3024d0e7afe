package cil_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/wippyai/cil-codec/cil"
	cilerrors "github.com/wippyai/cil-codec/errors"
)

func TestTinyHeader(t *testing.T) {
	body := newBody(cil.MustInstruction(cil.Ret, nil))
	body.MaxStack = 2

	if body.IsFat() {
		t.Fatal("expected tiny body")
	}
	data, err := body.Bytes(nil)
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if !bytes.Equal(data, []byte{0x06, 0x2A}) {
		t.Errorf("got % x, want 06 2a", data)
	}
	if body.PhysicalLength() != len(data) {
		t.Errorf("PhysicalLength = %d, want %d", body.PhysicalLength(), len(data))
	}
}

func TestFatHeaderTriggers(t *testing.T) {
	tests := []struct {
		name  string
		setup func(b *cil.MethodBody)
	}{
		{"max stack above 8", func(b *cil.MethodBody) { b.MaxStack = 9 }},
		{"code of 64 bytes", func(b *cil.MethodBody) {
			for range 63 {
				b.Instructions.Add(cil.MustInstruction(cil.Nop, nil))
			}
		}},
		{"locals", func(b *cil.MethodBody) {
			b.LocalVariables = &cil.LocalSignature{Token: 0x11000001, Variables: []*cil.Variable{{}}}
		}},
		{"init locals", func(b *cil.MethodBody) { b.InitLocals = true }},
		{"exception handler", func(b *cil.MethodBody) {
			ret := b.Instructions.At(0)
			b.ExceptionHandlers = append(b.ExceptionHandlers, &cil.ExceptionHandler{
				Type:         cil.HandlerFinally,
				TryStart:     ret,
				TryEnd:       b.Instructions.End(),
				HandlerStart: ret,
				HandlerEnd:   b.Instructions.End(),
			})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := newBody(cil.MustInstruction(cil.Ret, nil))
			tt.setup(body)
			if !body.IsFat() {
				t.Fatal("expected fat body")
			}
			data, err := body.Bytes(nil)
			if err != nil {
				t.Fatalf("Bytes: %v", err)
			}
			if data[0]&0x3 != 0x3 || data[1]>>4 != 3 {
				t.Errorf("header starts % x, want fat format with size 3", data[:2])
			}
			if body.PhysicalLength() != len(data) {
				t.Errorf("PhysicalLength = %d, encoded %d", body.PhysicalLength(), len(data))
			}
		})
	}
}

func TestFatHeaderLayout(t *testing.T) {
	md := newTestMetadata()
	sig := &cil.LocalSignature{Variables: []*cil.Variable{{Name: "a"}}}
	md.addMember(0x11000007, sig)

	body := newBody(cil.MustInstruction(cil.Ldloc0, nil), cil.MustInstruction(cil.Ret, nil))
	body.MaxStack = 0x20
	body.InitLocals = true
	body.LocalVariables = sig

	data, err := body.Bytes(md)
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	want := []byte{
		0x13, 0x30, // flags: fat, init locals, size 3
		0x20, 0x00, // max stack
		0x02, 0x00, 0x00, 0x00, // code size
		0x07, 0x00, 0x00, 0x11, // local signature token
		0x06, 0x2A,
	}
	if !bytes.Equal(data, want) {
		t.Errorf("got  % x\nwant % x", data, want)
	}
}

func TestLocalsWithoutTokenFail(t *testing.T) {
	body := newBody(cil.MustInstruction(cil.Ret, nil))
	body.LocalVariables = &cil.LocalSignature{Variables: []*cil.Variable{{}}}

	if _, err := body.Bytes(newTestMetadata()); !errors.Is(err, cilerrors.ErrInvalidToken) {
		t.Errorf("expected invalid token, got %v", err)
	}
}

func TestReadTinyBody(t *testing.T) {
	body, err := cil.ReadMethodBody([]byte{0x0A, 0x17, 0x2A, 0xFF}, nil)
	if err != nil {
		t.Fatalf("ReadMethodBody: %v", err)
	}
	if body.Decoded() {
		t.Fatal("body should not be decoded yet")
	}
	if body.CodeSize() != 2 || body.MaxStack != 8 || body.IsFat() {
		t.Errorf("code size %d, max stack %d, fat %v", body.CodeSize(), body.MaxStack, body.IsFat())
	}
	if _, err := body.Bytes(nil); !errors.Is(err, cilerrors.ErrNotDecoded) {
		t.Errorf("Bytes before decode: got %v", err)
	}

	if err := body.EnsureDecoded(); err != nil {
		t.Fatalf("EnsureDecoded: %v", err)
	}
	if err := body.EnsureDecoded(); err != nil {
		t.Fatalf("second EnsureDecoded: %v", err)
	}
	if !body.Decoded() || body.Instructions.Len() != 2 {
		t.Fatalf("decoded %d instructions", body.Instructions.Len())
	}
	if body.Instructions.At(0).OpCode != cil.LdcI41 {
		t.Errorf("first instruction = %v", body.Instructions.At(0))
	}
}

func TestReadMethodBodyErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"invalid format", []byte{0x00}},
		{"other invalid format", []byte{0x05}},
		{"tiny code past end", []byte{0x0A, 0x00}},
		{"truncated fat header", []byte{0x03, 0x30, 0x08, 0x00}},
		{"fat header too small", []byte{0x03, 0x20, 0x08, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}},
		{"fat code past end", []byte{0x03, 0x30, 0x08, 0x00, 0x10, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x2A}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := cil.ReadMethodBody(tt.data, nil); !errors.Is(err, cilerrors.ErrMalformedBytecode) {
				t.Errorf("expected malformed bytecode, got %v", err)
			}
			if _, err := cil.MethodBodySize(tt.data); err == nil {
				t.Error("MethodBodySize should fail too")
			}
		})
	}
}

func TestEnsureDecodedFailureKeepsState(t *testing.T) {
	body, err := cil.ReadMethodBody([]byte{0x06, 0x20}, nil)
	if err != nil {
		t.Fatalf("ReadMethodBody: %v", err)
	}
	if err := body.EnsureDecoded(); !errors.Is(err, cilerrors.ErrMalformedBytecode) {
		t.Fatalf("expected malformed bytecode, got %v", err)
	}
	if body.Decoded() {
		t.Error("body should stay undecoded after failure")
	}
}

func TestReadFatBodyResolvesLocals(t *testing.T) {
	md := newTestMetadata()
	sig := &cil.LocalSignature{Token: 0x11000002, Variables: []*cil.Variable{{Name: "x"}, {Name: "y"}}}
	md.addMember(0x11000002, sig)

	data := []byte{
		0x13, 0x30, 0x01, 0x00, // fat, init locals, max stack 1
		0x03, 0x00, 0x00, 0x00, // code size
		0x02, 0x00, 0x00, 0x11, // locals
		0x07, // ldloc.1
		0x26, // pop
		0x2A, // ret
	}
	body, err := cil.ReadMethodBody(data, md)
	if err != nil {
		t.Fatalf("ReadMethodBody: %v", err)
	}
	if body.LocalVariables != sig || !body.InitLocals || body.MaxStack != 1 {
		t.Errorf("locals %v, init %v, max stack %d", body.LocalVariables, body.InitLocals, body.MaxStack)
	}
	if err := body.EnsureDecoded(); err != nil {
		t.Fatalf("EnsureDecoded: %v", err)
	}

	body.Instructions.ExpandMacros()
	if body.Instructions.At(0).Operand != sig.Variables[1] {
		t.Errorf("expanded ldloc.1 operand = %v, want y", body.Instructions.At(0).Operand)
	}
	body.Instructions.OptimizeMacros()

	out, err := body.Bytes(md)
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Errorf("got  % x\nwant % x", out, data)
	}
}

func TestUnresolvedLocalsKeepToken(t *testing.T) {
	data := []byte{
		0x03, 0x30, 0x08, 0x00,
		0x01, 0x00, 0x00, 0x00,
		0x05, 0x00, 0x00, 0x11,
		0x2A,
	}
	body, err := cil.ReadMethodBody(data, nil)
	if err != nil {
		t.Fatalf("ReadMethodBody: %v", err)
	}
	if body.LocalVariables == nil || body.LocalVariables.Token != 0x11000005 {
		t.Fatalf("locals = %v", body.LocalVariables)
	}
	if err := body.EnsureDecoded(); err != nil {
		t.Fatalf("EnsureDecoded: %v", err)
	}
	out, err := body.Bytes(nil)
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Errorf("got  % x\nwant % x", out, data)
	}
}

func TestWriteToWriter(t *testing.T) {
	body := newBody(cil.MustInstruction(cil.Ret, nil))
	var buf bytes.Buffer
	if err := body.Write(&buf, nil); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), []byte{0x06, 0x2A}) {
		t.Errorf("got % x", buf.Bytes())
	}
}

func TestReplaceInstructionRepointsHandlers(t *testing.T) {
	old := cil.MustInstruction(cil.Nop, nil)
	ret := cil.MustInstruction(cil.Ret, nil)
	br := cil.MustInstruction(cil.BrS, old)
	body := newBody(old, br, ret)
	body.ExceptionHandlers = []*cil.ExceptionHandler{{
		Type:         cil.HandlerFault,
		TryStart:     old,
		TryEnd:       br,
		HandlerStart: br,
		HandlerEnd:   ret,
	}}

	repl := cil.MustInstruction(cil.LdcI40, nil)
	if !body.ReplaceInstruction(old, repl) {
		t.Fatal("ReplaceInstruction returned false")
	}
	if body.ExceptionHandlers[0].TryStart != repl {
		t.Error("handler try start not re-pointed")
	}
	if br.Operand != repl {
		t.Error("branch not re-pointed")
	}
	if body.ReplaceInstruction(old, repl) {
		t.Error("replacing a missing instruction should report false")
	}
}

func TestVariableScope(t *testing.T) {
	body := bodyWithLocals(2, 1)
	v := body.LocalVariables.Variables

	if got, ok := body.ResolveVariable(1); !ok || got != v[1] {
		t.Errorf("ResolveVariable(1) = %v, %v", got, ok)
	}
	if _, ok := body.ResolveVariable(2); ok {
		t.Error("ResolveVariable(2) should miss")
	}
	if _, ok := body.ResolveParameter(-1); ok {
		t.Error("ResolveParameter(-1) should miss")
	}
	if body.VariableIndex(v[0]) != 0 || body.VariableIndex(&cil.Variable{}) != -1 {
		t.Error("VariableIndex mismatch")
	}
	if body.ParameterIndex(body.Parameters[0]) != 0 || body.ParameterIndex(nil) != -1 {
		t.Error("ParameterIndex mismatch")
	}

	empty := cil.NewMethodBody()
	if _, ok := empty.ResolveVariable(0); ok || empty.VariableIndex(v[0]) != -1 {
		t.Error("body without locals should resolve nothing")
	}
}
