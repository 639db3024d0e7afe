package cil_test

import (
	"errors"
	"testing"

	"github.com/wippyai/cil-codec/cil"
	cilerrors "github.com/wippyai/cil-codec/errors"
)

func TestComputeMaxStack(t *testing.T) {
	static2 := cil.MemberRef{Member: &testMethod{name: "Add", sig: cil.MethodSignature{ParameterCount: 2, ReturnsValue: true}}}
	instance1 := cil.MemberRef{Member: &testMethod{name: "Print", sig: cil.MethodSignature{HasThis: true, ParameterCount: 1}}}
	ctor := cil.MemberRef{Member: &testMethod{name: ".ctor", sig: cil.MethodSignature{HasThis: true, ParameterCount: 3}}}

	tests := []struct {
		name         string
		returnsValue bool
		build        func() []*cil.Instruction
		want         int
	}{
		{
			name: "arithmetic",
			build: func() []*cil.Instruction {
				return []*cil.Instruction{
					cil.MustInstruction(cil.LdcI41, nil),
					cil.MustInstruction(cil.LdcI42, nil),
					cil.MustInstruction(cil.Add, nil),
					cil.MustInstruction(cil.Pop, nil),
					cil.MustInstruction(cil.Ret, nil),
				}
			},
			want: 2,
		},
		{
			name:         "static call returning a value",
			returnsValue: true,
			build: func() []*cil.Instruction {
				return []*cil.Instruction{
					cil.MustInstruction(cil.LdcI41, nil),
					cil.MustInstruction(cil.LdcI42, nil),
					cil.MustInstruction(cil.Call, static2),
					cil.MustInstruction(cil.Ret, nil),
				}
			},
			want: 2,
		},
		{
			name: "instance call pops this",
			build: func() []*cil.Instruction {
				return []*cil.Instruction{
					cil.MustInstruction(cil.Ldnull, nil),
					cil.MustInstruction(cil.LdcI40, nil),
					cil.MustInstruction(cil.Callvirt, instance1),
					cil.MustInstruction(cil.Ret, nil),
				}
			},
			want: 2,
		},
		{
			name: "newobj pushes the instance",
			build: func() []*cil.Instruction {
				return []*cil.Instruction{
					cil.MustInstruction(cil.LdcI40, nil),
					cil.MustInstruction(cil.LdcI41, nil),
					cil.MustInstruction(cil.LdcI42, nil),
					cil.MustInstruction(cil.Newobj, ctor),
					cil.MustInstruction(cil.Pop, nil),
					cil.MustInstruction(cil.Ret, nil),
				}
			},
			want: 3,
		},
		{
			name: "throw ends the path",
			build: func() []*cil.Instruction {
				return []*cil.Instruction{
					cil.MustInstruction(cil.LdcI41, nil),
					cil.MustInstruction(cil.Ldnull, nil),
					cil.MustInstruction(cil.Throw, nil),
				}
			},
			want: 2,
		},
		{
			name: "branches merging with equal depth",
			build: func() []*cil.Instruction {
				ret := cil.MustInstruction(cil.Ret, nil)
				join := cil.MustInstruction(cil.Pop, nil)
				other := cil.MustInstruction(cil.LdcI42, nil)
				return []*cil.Instruction{
					cil.MustInstruction(cil.LdcI40, nil),
					cil.MustInstruction(cil.BrtrueS, other),
					cil.MustInstruction(cil.LdcI41, nil),
					cil.MustInstruction(cil.BrS, join),
					other,
					join,
					ret,
				}
			},
			want: 1,
		},
		{
			name: "switch",
			build: func() []*cil.Instruction {
				a := cil.MustInstruction(cil.Ret, nil)
				b := cil.MustInstruction(cil.Ret, nil)
				return []*cil.Instruction{
					cil.MustInstruction(cil.LdcI40, nil),
					cil.MustInstruction(cil.Switch, cil.SwitchTable{a, b}),
					a,
					b,
				}
			},
			want: 1,
		},
		{
			name: "leave empties the stack",
			build: func() []*cil.Instruction {
				ret := cil.MustInstruction(cil.Ret, nil)
				return []*cil.Instruction{
					cil.MustInstruction(cil.LdcI41, nil),
					cil.MustInstruction(cil.LdcI42, nil),
					cil.MustInstruction(cil.LeaveS, ret),
					ret,
				}
			},
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := newBody(tt.build()...)
			body.ReturnsValue = tt.returnsValue

			got, err := body.ComputeMaxStack()
			if err != nil {
				t.Fatalf("ComputeMaxStack: %v", err)
			}
			if got != tt.want {
				t.Errorf("ComputeMaxStack() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestComputeMaxStackErrors(t *testing.T) {
	target := &testMethod{name: "Target"}

	tests := []struct {
		name  string
		build func() *cil.MethodBody
		want  error
	}{
		{
			name: "pop on empty stack",
			build: func() *cil.MethodBody {
				return newBody(cil.MustInstruction(cil.Pop, nil), cil.MustInstruction(cil.Ret, nil))
			},
			want: cilerrors.ErrStackImbalance,
		},
		{
			name: "value left at ret",
			build: func() *cil.MethodBody {
				return newBody(cil.MustInstruction(cil.LdcI41, nil), cil.MustInstruction(cil.Ret, nil))
			},
			want: cilerrors.ErrStackImbalance,
		},
		{
			name: "value missing at ret",
			build: func() *cil.MethodBody {
				body := newBody(cil.MustInstruction(cil.Ret, nil))
				body.ReturnsValue = true
				return body
			},
			want: cilerrors.ErrStackImbalance,
		},
		{
			name: "paths merge with different depths",
			build: func() *cil.MethodBody {
				join := cil.MustInstruction(cil.Nop, nil)
				return newBody(
					cil.MustInstruction(cil.LdcI40, nil),
					cil.MustInstruction(cil.BrtrueS, join),
					cil.MustInstruction(cil.LdcI41, nil),
					join,
					cil.MustInstruction(cil.Ret, nil),
				)
			},
			want: cilerrors.ErrStackImbalance,
		},
		{
			name: "jmp with values on the stack",
			build: func() *cil.MethodBody {
				return newBody(
					cil.MustInstruction(cil.LdcI41, nil),
					cil.MustInstruction(cil.Jmp, cil.MemberRef{Member: target}),
				)
			},
			want: cilerrors.ErrStackImbalance,
		},
		{
			name: "try entered with values on the stack",
			build: func() *cil.MethodBody {
				ret := cil.MustInstruction(cil.Ret, nil)
				try := cil.MustInstruction(cil.Pop, nil)
				handler := cil.MustInstruction(cil.Endfinally, nil)
				body := newBody(
					cil.MustInstruction(cil.LdcI41, nil),
					try,
					cil.MustInstruction(cil.LeaveS, ret),
					handler,
					ret,
				)
				body.ExceptionHandlers = []*cil.ExceptionHandler{{
					Type:         cil.HandlerFinally,
					TryStart:     try,
					TryEnd:       handler,
					HandlerStart: handler,
					HandlerEnd:   ret,
				}}
				return body
			},
			want: cilerrors.ErrStackImbalance,
		},
		{
			name: "control runs off the end",
			build: func() *cil.MethodBody {
				return newBody(cil.MustInstruction(cil.Nop, nil))
			},
			want: cilerrors.ErrInvalidLabel,
		},
		{
			name: "branch outside the body",
			build: func() *cil.MethodBody {
				elsewhere := cil.MustInstruction(cil.Ret, nil)
				return newBody(cil.MustInstruction(cil.BrS, elsewhere), cil.MustInstruction(cil.Ret, nil))
			},
			want: cilerrors.ErrInvalidLabel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build().ComputeMaxStack()
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestMaxStackWithHandlers(t *testing.T) {
	ret := cil.MustInstruction(cil.Ret, nil)
	try := cil.MustInstruction(cil.Nop, nil)
	filter := cil.MustInstruction(cil.Pop, nil)
	handler := cil.MustInstruction(cil.Pop, nil)
	body := newBody(
		try,
		cil.MustInstruction(cil.LeaveS, ret),
		filter,
		cil.MustInstruction(cil.LdcI41, nil),
		cil.MustInstruction(cil.Endfilter, nil),
		handler,
		cil.MustInstruction(cil.LeaveS, ret),
		ret,
	)
	body.ExceptionHandlers = []*cil.ExceptionHandler{{
		Type:         cil.HandlerFilter,
		TryStart:     try,
		TryEnd:       filter,
		HandlerStart: handler,
		HandlerEnd:   ret,
		FilterStart:  filter,
	}}

	got, err := body.ComputeMaxStack()
	if err != nil {
		t.Fatalf("ComputeMaxStack: %v", err)
	}
	if got != 1 {
		t.Errorf("ComputeMaxStack() = %d, want 1", got)
	}
}

func TestMaxStackFromDecodedBody(t *testing.T) {
	body, err := cil.ReadMethodBody(tryCatchBody, nil)
	if err != nil {
		t.Fatalf("ReadMethodBody: %v", err)
	}
	if _, err := body.ComputeMaxStack(); !errors.Is(err, cilerrors.ErrNotDecoded) {
		t.Fatalf("expected not decoded, got %v", err)
	}
	if err := body.EnsureDecoded(); err != nil {
		t.Fatalf("EnsureDecoded: %v", err)
	}

	body.MaxStack = 0
	if err := body.UpdateMaxStack(); err != nil {
		t.Fatalf("UpdateMaxStack: %v", err)
	}
	if body.MaxStack != 1 {
		t.Errorf("MaxStack = %d, want 1", body.MaxStack)
	}
}

func TestMaxStackEmptyBody(t *testing.T) {
	got, err := cil.NewMethodBody().ComputeMaxStack()
	if err != nil || got != 0 {
		t.Errorf("ComputeMaxStack() = %d, %v; want 0, nil", got, err)
	}
}
