package cil

import (
	"math"

	"go.uber.org/zap"
)

var (
	shortBranches = map[*OpCode]*OpCode{
		BrS: Br, BrfalseS: Brfalse, BrtrueS: Brtrue,
		BeqS: Beq, BgeS: Bge, BgtS: Bgt, BleS: Ble, BltS: Blt,
		BneUnS: BneUn, BgeUnS: BgeUn, BgtUnS: BgtUn, BleUnS: BleUn, BltUnS: BltUn,
		LeaveS: Leave,
	}
	longBranches = invert(shortBranches)

	shortIndexed = map[*OpCode]*OpCode{
		LdargS: Ldarg, LdargaS: Ldarga, StargS: Starg,
		LdlocS: Ldloc, LdlocaS: Ldloca, StlocS: Stloc,
	}
	longIndexed = invert(shortIndexed)

	ldargMacros = [4]*OpCode{Ldarg0, Ldarg1, Ldarg2, Ldarg3}
	ldlocMacros = [4]*OpCode{Ldloc0, Ldloc1, Ldloc2, Ldloc3}
	stlocMacros = [4]*OpCode{Stloc0, Stloc1, Stloc2, Stloc3}

	// indexed by value+1
	ldcMacros = [10]*OpCode{LdcI4M1, LdcI40, LdcI41, LdcI42, LdcI43, LdcI44, LdcI45, LdcI46, LdcI47, LdcI48}
)

func invert(m map[*OpCode]*OpCode) map[*OpCode]*OpCode {
	out := make(map[*OpCode]*OpCode, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// ExpandMacros rewrites every compact form into its explicit-operand form
// and recomputes offsets. No instruction gets smaller.
func (s *Sequence) ExpandMacros() {
	for _, ins := range s.items {
		s.expand(ins)
	}
	s.CalculateOffsets()
}

func (s *Sequence) expand(ins *Instruction) {
	op := ins.OpCode
	if long, ok := shortBranches[op]; ok {
		ins.OpCode = long
		return
	}
	if long, ok := shortIndexed[op]; ok {
		ins.OpCode = long
		return
	}

	for n := range 4 {
		switch op {
		case ldlocMacros[n]:
			ins.OpCode, ins.Operand = Ldloc, s.variable(n)
			return
		case stlocMacros[n]:
			ins.OpCode, ins.Operand = Stloc, s.variable(n)
			return
		case ldargMacros[n]:
			ins.OpCode, ins.Operand = Ldarg, s.parameter(n)
			return
		}
	}

	if op == LdcI4S {
		if v, ok := ins.Operand.(Int8); ok {
			ins.OpCode, ins.Operand = LdcI4, Int32(v)
		}
		return
	}
	for i, m := range ldcMacros {
		if op == m {
			ins.OpCode, ins.Operand = LdcI4, Int32(i-1)
			return
		}
	}
}

func (s *Sequence) variable(index int) Operand {
	if v, ok := s.scope.ResolveVariable(index); ok {
		return v
	}
	Logger().Debug("macro local not in scope", zap.Int("index", index))
	return RawIndex(index)
}

func (s *Sequence) parameter(index int) Operand {
	if p, ok := s.scope.ResolveParameter(index); ok {
		return p
	}
	Logger().Debug("macro argument not in scope", zap.Int("index", index))
	return RawIndex(index)
}

// OptimizeMacros rewrites instructions into their most compact forms in a
// single pass. Branch distances are measured against the offsets at the start
// of the pass, so a branch that only comes into short range after later
// instructions shrink stays long until the next pass.
func (s *Sequence) OptimizeMacros() {
	s.CalculateOffsets()
	before := s.end.Offset
	for _, ins := range s.items {
		s.optimize(ins)
	}
	s.CalculateOffsets()
	Logger().Debug("optimized macros",
		zap.Int("before", before),
		zap.Int("after", s.end.Offset))
}

// OptimizeMacrosFixedPoint repeats OptimizeMacros until the code size stops
// shrinking and returns the number of passes run.
func (s *Sequence) OptimizeMacrosFixedPoint() int {
	passes := 0
	for {
		before := s.Size()
		s.OptimizeMacros()
		passes++
		if s.end.Offset >= before {
			return passes
		}
	}
}

func (s *Sequence) optimize(ins *Instruction) {
	op := ins.OpCode
	switch {
	case longBranches[op] != nil:
		s.optimizeBranch(ins)
	case op.OperandType == OperandVariable || op.OperandType == OperandShortVariable:
		s.optimizeVariable(ins)
	case op.OperandType == OperandArgument || op.OperandType == OperandShortArgument:
		s.optimizeArgument(ins)
	case op == LdcI4 || op == LdcI4S:
		optimizeLdc(ins)
	}
}

func (s *Sequence) optimizeBranch(ins *Instruction) {
	target, ok := ins.Operand.(*Instruction)
	if !ok || target == nil {
		return
	}
	delta := target.Offset - (ins.Offset + 2)
	if delta >= math.MinInt8 && delta <= math.MaxInt8 {
		ins.OpCode = longBranches[ins.OpCode]
	}
}

func (s *Sequence) optimizeVariable(ins *Instruction) {
	index := -1
	switch o := ins.Operand.(type) {
	case *Variable:
		index = s.scope.VariableIndex(o)
	case RawIndex:
		index = int(o)
	}
	if index < 0 {
		return
	}

	long := ins.OpCode
	if l, ok := shortIndexed[long]; ok {
		long = l
	}
	if index <= 3 {
		switch long {
		case Ldloc:
			ins.OpCode, ins.Operand = ldlocMacros[index], nil
			return
		case Stloc:
			ins.OpCode, ins.Operand = stlocMacros[index], nil
			return
		}
	}
	if index <= math.MaxUint8 {
		ins.OpCode = longIndexed[long]
	} else {
		ins.OpCode = long
	}
}

func (s *Sequence) optimizeArgument(ins *Instruction) {
	index := -1
	switch o := ins.Operand.(type) {
	case *Parameter:
		index = s.scope.ParameterIndex(o)
	case RawIndex:
		index = int(o)
	}
	if index < 0 {
		return
	}

	long := ins.OpCode
	if l, ok := shortIndexed[long]; ok {
		long = l
	}
	if index <= 3 && long == Ldarg {
		ins.OpCode, ins.Operand = ldargMacros[index], nil
		return
	}
	if index <= math.MaxUint8 {
		ins.OpCode = longIndexed[long]
	} else {
		ins.OpCode = long
	}
}

func optimizeLdc(ins *Instruction) {
	var v int32
	switch o := ins.Operand.(type) {
	case Int32:
		v = int32(o)
	case Int8:
		v = int32(o)
	default:
		return
	}
	switch {
	case v >= -1 && v <= 8:
		ins.OpCode, ins.Operand = ldcMacros[v+1], nil
	case v >= math.MinInt8 && v <= math.MaxInt8:
		ins.OpCode, ins.Operand = LdcI4S, Int8(v)
	}
}
