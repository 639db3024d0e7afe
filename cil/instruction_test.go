package cil_test

import (
	"errors"
	"testing"

	"github.com/wippyai/cil-codec/cil"
	cilerrors "github.com/wippyai/cil-codec/errors"
)

func sampleOperand(kind cil.OperandType, target *cil.Instruction) cil.Operand {
	switch kind {
	case cil.OperandShortArgument, cil.OperandArgument, cil.OperandShortVariable, cil.OperandVariable:
		return cil.RawIndex(1)
	case cil.OperandShortInt8:
		return cil.Int8(1)
	case cil.OperandInt32:
		return cil.Int32(1)
	case cil.OperandInt64:
		return cil.Int64(1)
	case cil.OperandShortFloat32:
		return cil.Float32(1)
	case cil.OperandFloat64:
		return cil.Float64(1)
	case cil.OperandShortBranchTarget, cil.OperandBranchTarget:
		return target
	case cil.OperandString:
		return cil.String("s")
	case cil.OperandSwitch:
		return cil.SwitchTable{target, target, target}
	case cil.OperandNone:
		return nil
	}
	return cil.MemberRef{Member: &testType{name: "T"}}
}

func TestInstructionSizeFormula(t *testing.T) {
	target := cil.MustInstruction(cil.Nop, nil)
	for code := range 0x200 {
		var op *cil.OpCode
		if code < 0x100 {
			op = cil.Lookup(byte(code))
		} else {
			op = cil.LookupTwoByte(byte(code))
		}
		if op.Invalid() {
			continue
		}

		ins, err := cil.NewInstruction(op, sampleOperand(op.OperandType, target))
		if err != nil {
			t.Fatalf("%s: %v", op.Name, err)
		}
		want := op.Size + op.OperandType.FixedSize()
		if op.OperandType == cil.OperandSwitch {
			want = op.Size + 4*(3+1)
		}
		if got := ins.Size(); got != want {
			t.Errorf("%s: Size() = %d, want %d", op.Name, got, want)
		}
	}
}

func TestNewInstructionRejectsWrongShape(t *testing.T) {
	tests := []struct {
		name    string
		op      *cil.OpCode
		operand cil.Operand
	}{
		{"string for ldc.i4", cil.LdcI4, cil.String("text")},
		{"int8 for ldc.i4", cil.LdcI4, cil.Int8(1)},
		{"operand for nop", cil.Nop, cil.Int32(1)},
		{"missing operand for call", cil.Call, nil},
		{"variable for ldarg", cil.Ldarg, &cil.Variable{Name: "v"}},
		{"parameter for ldloc", cil.Ldloc, &cil.Parameter{Name: "p"}},
		{"member for ldstr", cil.Ldstr, cil.MemberRef{Member: &testType{name: "T"}}},
		{"single target for switch", cil.Switch, cil.MustInstruction(cil.Nop, nil)},
		{"switch table for br", cil.Br, cil.SwitchTable{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cil.NewInstruction(tt.op, tt.operand)
			if !errors.Is(err, cilerrors.ErrInvalidOperandShape) {
				t.Fatalf("expected invalid operand shape, got %v", err)
			}
		})
	}
}

func TestNewInstructionAcceptsRawForms(t *testing.T) {
	tests := []struct {
		op      *cil.OpCode
		operand cil.Operand
	}{
		{cil.Ldloc, cil.RawIndex(4)},
		{cil.StargS, cil.RawIndex(1)},
		{cil.Br, cil.RawOffset(-10)},
		{cil.Call, cil.RawToken(0x0A000001)},
		{cil.Ldstr, cil.RawToken(0x70000001)},
		{cil.Switch, cil.SwitchTable{cil.RawOffset(0)}},
	}
	for _, tt := range tests {
		if _, err := cil.NewInstruction(tt.op, tt.operand); err != nil {
			t.Errorf("%s: %v", tt.op.Name, err)
		}
		if !cil.IsRaw(tt.operand) {
			t.Errorf("%s: IsRaw(%v) = false", tt.op.Name, tt.operand)
		}
	}
}

func TestResolvedOperand(t *testing.T) {
	member := cil.MemberRef{Member: &testType{name: "T"}}
	ins := cil.MustInstruction(cil.Call, member)
	got, err := ins.ResolvedOperand()
	if err != nil || got != member {
		t.Errorf("resolved call: got %v, %v", got, err)
	}

	raw := cil.MustInstruction(cil.Call, cil.RawToken(0x0A000002))
	raw.Offset = 6
	_, err = raw.ResolvedOperand()
	if !errors.Is(err, cilerrors.ErrUnresolvedOperand) {
		t.Fatalf("raw call: got %v, want unresolved operand", err)
	}
	var e *cilerrors.Error
	if !errors.As(err, &e) || e.Offset != 6 || e.OpCode != "call" {
		t.Errorf("error lacks location: %v", err)
	}

	sw := cil.MustInstruction(cil.Switch, cil.SwitchTable{cil.RawOffset(4)})
	if _, err := sw.ResolvedOperand(); !errors.Is(err, cilerrors.ErrUnresolvedOperand) {
		t.Errorf("raw switch target: got %v", err)
	}
}

func TestInstructionStackCounts(t *testing.T) {
	static := &testMethod{name: "Static", sig: cil.MethodSignature{ParameterCount: 2, ReturnsValue: true}}
	instance := &testMethod{name: "Instance", sig: cil.MethodSignature{HasThis: true, ParameterCount: 1}}
	ctor := &testMethod{name: ".ctor", sig: cil.MethodSignature{HasThis: true, ParameterCount: 3}}
	fnptr := &testMethod{name: "sig", sig: cil.MethodSignature{ParameterCount: 1, ReturnsValue: true}}

	tests := []struct {
		name     string
		ins      *cil.Instruction
		ctx      cil.StackContext
		wantPop  int
		wantPush int
	}{
		{"nop", cil.MustInstruction(cil.Nop, nil), cil.StackContext{}, 0, 0},
		{"add", cil.MustInstruction(cil.Add, nil), cil.StackContext{}, 2, 1},
		{"dup", cil.MustInstruction(cil.Dup, nil), cil.StackContext{}, 1, 2},
		{"stelem.ref", cil.MustInstruction(cil.StelemRef, nil), cil.StackContext{}, 3, 0},
		{"static call", cil.MustInstruction(cil.Call, cil.MemberRef{Member: static}), cil.StackContext{}, 2, 1},
		{"instance callvirt", cil.MustInstruction(cil.Callvirt, cil.MemberRef{Member: instance}), cil.StackContext{}, 2, 0},
		{"newobj", cil.MustInstruction(cil.Newobj, cil.MemberRef{Member: ctor}), cil.StackContext{}, 3, 1},
		{"calli", cil.MustInstruction(cil.Calli, cil.MemberRef{Member: fnptr}), cil.StackContext{}, 2, 1},
		{"unresolved call", cil.MustInstruction(cil.Call, cil.RawToken(0x0A000001)), cil.StackContext{}, 0, 0},
		{"ret void", cil.MustInstruction(cil.Ret, nil), cil.StackContext{}, 0, 0},
		{"ret value", cil.MustInstruction(cil.Ret, nil), cil.StackContext{ReturnsValue: true}, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ins.StackPopCount(tt.ctx); got != tt.wantPop {
				t.Errorf("StackPopCount = %d, want %d", got, tt.wantPop)
			}
			if got := tt.ins.StackPushCount(); got != tt.wantPush {
				t.Errorf("StackPushCount = %d, want %d", got, tt.wantPush)
			}
		})
	}
}

func TestInstructionString(t *testing.T) {
	target := cil.MustInstruction(cil.Ret, nil)
	target.Offset = 0x10

	tests := []struct {
		ins  *cil.Instruction
		want string
	}{
		{cil.MustInstruction(cil.Nop, nil), "IL_0000: nop"},
		{cil.MustInstruction(cil.LdcI4S, cil.Int8(-3)), "IL_0000: ldc.i4.s -3"},
		{cil.MustInstruction(cil.Ldstr, cil.String("hi")), `IL_0000: ldstr "hi"`},
		{cil.MustInstruction(cil.Br, target), "IL_0000: br IL_0010"},
		{cil.MustInstruction(cil.Switch, cil.SwitchTable{target, cil.RawOffset(4)}), "IL_0000: switch (IL_0010, IL_?+4)"},
		{cil.MustInstruction(cil.Call, cil.RawToken(0x0A000002)), "IL_0000: call 0x0A000002"},
		{cil.MustInstruction(cil.Ldloc, cil.RawIndex(7)), "IL_0000: ldloc #7"},
	}

	for _, tt := range tests {
		if got := tt.ins.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
