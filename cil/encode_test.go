package cil_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/wippyai/cil-codec/cil"
	cilerrors "github.com/wippyai/cil-codec/errors"
)

// richCode exercises every operand shape.
var richCode = []byte{
	0x00,       // IL_0000 nop
	0x02,       // IL_0001 ldarg.0
	0x0E, 0x05, // IL_0002 ldarg.s 5
	0xFE, 0x0C, 0x02, 0x01, // IL_0004 ldloc 0x0102
	0x1F, 0xFD, // IL_0008 ldc.i4.s -3
	0x20, 0x78, 0x56, 0x34, 0x12, // IL_000A ldc.i4
	0x21, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80, // IL_000F ldc.i8
	0x22, 0x00, 0x00, 0xC0, 0x3F, // IL_0018 ldc.r4 1.5
	0x23, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // IL_001D ldc.r8 0
	0x72, 0x01, 0x00, 0x00, 0x70, // IL_0026 ldstr
	0x28, 0x01, 0x00, 0x00, 0x0A, // IL_002B call
	0x45, 0x02, 0x00, 0x00, 0x00, // IL_0030 switch
	0x00, 0x00, 0x00, 0x00, // -> IL_003D
	0xC3, 0xFF, 0xFF, 0xFF, // -> IL_0000
	0x2B, 0xFE, // IL_003D br.s IL_003D
	0x2A, // IL_003F ret
}

func TestRoundTripRaw(t *testing.T) {
	instructions, err := cil.DecodeInstructions(richCode, nil)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(instructions) != 14 {
		t.Fatalf("expected 14 instructions, got %d", len(instructions))
	}

	encoded, err := cil.EncodeInstructions(instructions, nil)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !bytes.Equal(encoded, richCode) {
		t.Errorf("round trip mismatch:\ngot  % x\nwant % x", encoded, richCode)
	}
}

func TestRoundTripResolved(t *testing.T) {
	md := newTestMetadata()
	md.addMember(0x0A000001, &testMethod{name: "M"})
	md.addString(0x70000001, "hello")

	body := cil.NewMethodBody()
	body.Parameters = make([]*cil.Parameter, 6)
	for i := range body.Parameters {
		body.Parameters[i] = &cil.Parameter{}
	}

	instructions, err := cil.DecodeInstructions(richCode, cil.NewOperandResolver(md, body))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if instructions[2].Operand != body.Parameters[5] {
		t.Errorf("ldarg.s operand = %v, want parameter 5", instructions[2].Operand)
	}

	encoded, err := cil.EncodeInstructions(instructions, cil.NewOperandBuilder(md, body))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !bytes.Equal(encoded, richCode) {
		t.Errorf("round trip mismatch:\ngot  % x\nwant % x", encoded, richCode)
	}
}

func TestEncodeBranchRelativeToNextInstruction(t *testing.T) {
	ret := cil.MustInstruction(cil.Ret, nil)
	seq := cil.NewSequence(nil,
		cil.MustInstruction(cil.Br, ret),
		cil.MustInstruction(cil.Nop, nil),
		ret,
	)

	encoded, err := cil.EncodeInstructions(seq.Items(), nil)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := []byte{0x38, 0x01, 0x00, 0x00, 0x00, 0x00, 0x2A}
	if !bytes.Equal(encoded, want) {
		t.Errorf("got % x, want % x", encoded, want)
	}
}

func TestEncodeErrors(t *testing.T) {
	md := newTestMetadata()
	far := cil.MustInstruction(cil.Ret, nil)
	nops := make([]*cil.Instruction, 200)
	for i := range nops {
		nops[i] = cil.MustInstruction(cil.Nop, nil)
	}

	tests := []struct {
		name    string
		build   func() []*cil.Instruction
		builder cil.OperandBuilder
		want    error
	}{
		{
			name: "raw branch offset",
			build: func() []*cil.Instruction {
				return []*cil.Instruction{cil.MustInstruction(cil.Br, cil.RawOffset(3))}
			},
			want: cilerrors.ErrUnresolvableToken,
		},
		{
			name: "nil branch target",
			build: func() []*cil.Instruction {
				return []*cil.Instruction{{OpCode: cil.BrS}}
			},
			want: cilerrors.ErrUnresolvableToken,
		},
		{
			name: "raw switch target",
			build: func() []*cil.Instruction {
				ret := cil.MustInstruction(cil.Ret, nil)
				return []*cil.Instruction{cil.MustInstruction(cil.Switch, cil.SwitchTable{ret, cil.RawOffset(0)}), ret}
			},
			want: cilerrors.ErrUnresolvableToken,
		},
		{
			name: "unregistered member",
			build: func() []*cil.Instruction {
				return []*cil.Instruction{cil.MustInstruction(cil.Call, cil.MemberRef{Member: &testMethod{name: "Unknown"}})}
			},
			builder: cil.NewOperandBuilder(md, nil),
			want:    cilerrors.ErrInvalidToken,
		},
		{
			name: "unregistered string",
			build: func() []*cil.Instruction {
				return []*cil.Instruction{cil.MustInstruction(cil.Ldstr, cil.String("missing"))}
			},
			builder: cil.NewOperandBuilder(md, nil),
			want:    cilerrors.ErrInvalidToken,
		},
		{
			name: "short branch out of range",
			build: func() []*cil.Instruction {
				seq := cil.NewSequence(nil, cil.MustInstruction(cil.BrS, far))
				seq.Add(nops...)
				seq.Add(far)
				seq.CalculateOffsets()
				return seq.Items()
			},
			want: cilerrors.ErrOverflow,
		},
		{
			name: "short index out of range",
			build: func() []*cil.Instruction {
				return []*cil.Instruction{cil.MustInstruction(cil.LdlocS, cil.RawIndex(300))}
			},
			want: cilerrors.ErrOverflow,
		},
		{
			name: "variable outside scope",
			build: func() []*cil.Instruction {
				return []*cil.Instruction{cil.MustInstruction(cil.Ldloc, &cil.Variable{Name: "stray"})}
			},
			want: cilerrors.ErrUnresolvableToken,
		},
		{
			name: "wrong operand shape",
			build: func() []*cil.Instruction {
				return []*cil.Instruction{{OpCode: cil.LdcI4, Operand: cil.String("x")}}
			},
			want: cilerrors.ErrInvalidOperandShape,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := cil.EncodeInstructions(tt.build(), tt.builder)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if encoded != nil {
				t.Errorf("expected no output on error, got % x", encoded)
			}
		})
	}
}

func TestEncoderDiscardsPartialOutput(t *testing.T) {
	e := cil.NewEncoder(nil)
	err := e.Encode([]*cil.Instruction{
		cil.MustInstruction(cil.Nop, nil),
		cil.MustInstruction(cil.Br, cil.RawOffset(0)),
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(e.Bytes()) != 0 {
		t.Errorf("encoder kept %d bytes after failure", len(e.Bytes()))
	}
}
