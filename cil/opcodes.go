package cil

// Opcodes defined by ECMA-335 Partition III.
var (
	Nop         = newOpCode("nop", 0x00, OperandNone, StackPop0, StackPush0, FlowNext)
	Break       = newOpCode("break", 0x01, OperandNone, StackPop0, StackPush0, FlowBreak)
	Ldarg0      = newOpCode("ldarg.0", 0x02, OperandNone, StackPop0, StackPush1, FlowNext)
	Ldarg1      = newOpCode("ldarg.1", 0x03, OperandNone, StackPop0, StackPush1, FlowNext)
	Ldarg2      = newOpCode("ldarg.2", 0x04, OperandNone, StackPop0, StackPush1, FlowNext)
	Ldarg3      = newOpCode("ldarg.3", 0x05, OperandNone, StackPop0, StackPush1, FlowNext)
	Ldloc0      = newOpCode("ldloc.0", 0x06, OperandNone, StackPop0, StackPush1, FlowNext)
	Ldloc1      = newOpCode("ldloc.1", 0x07, OperandNone, StackPop0, StackPush1, FlowNext)
	Ldloc2      = newOpCode("ldloc.2", 0x08, OperandNone, StackPop0, StackPush1, FlowNext)
	Ldloc3      = newOpCode("ldloc.3", 0x09, OperandNone, StackPop0, StackPush1, FlowNext)
	Stloc0      = newOpCode("stloc.0", 0x0A, OperandNone, StackPop1, StackPush0, FlowNext)
	Stloc1      = newOpCode("stloc.1", 0x0B, OperandNone, StackPop1, StackPush0, FlowNext)
	Stloc2      = newOpCode("stloc.2", 0x0C, OperandNone, StackPop1, StackPush0, FlowNext)
	Stloc3      = newOpCode("stloc.3", 0x0D, OperandNone, StackPop1, StackPush0, FlowNext)
	LdargS      = newOpCode("ldarg.s", 0x0E, OperandShortArgument, StackPop0, StackPush1, FlowNext)
	LdargaS     = newOpCode("ldarga.s", 0x0F, OperandShortArgument, StackPop0, StackPushI, FlowNext)
	StargS      = newOpCode("starg.s", 0x10, OperandShortArgument, StackPop1, StackPush0, FlowNext)
	LdlocS      = newOpCode("ldloc.s", 0x11, OperandShortVariable, StackPop0, StackPush1, FlowNext)
	LdlocaS     = newOpCode("ldloca.s", 0x12, OperandShortVariable, StackPop0, StackPushI, FlowNext)
	StlocS      = newOpCode("stloc.s", 0x13, OperandShortVariable, StackPop1, StackPush0, FlowNext)
	Ldnull      = newOpCode("ldnull", 0x14, OperandNone, StackPop0, StackPushRef, FlowNext)
	LdcI4M1     = newOpCode("ldc.i4.m1", 0x15, OperandNone, StackPop0, StackPushI, FlowNext)
	LdcI40      = newOpCode("ldc.i4.0", 0x16, OperandNone, StackPop0, StackPushI, FlowNext)
	LdcI41      = newOpCode("ldc.i4.1", 0x17, OperandNone, StackPop0, StackPushI, FlowNext)
	LdcI42      = newOpCode("ldc.i4.2", 0x18, OperandNone, StackPop0, StackPushI, FlowNext)
	LdcI43      = newOpCode("ldc.i4.3", 0x19, OperandNone, StackPop0, StackPushI, FlowNext)
	LdcI44      = newOpCode("ldc.i4.4", 0x1A, OperandNone, StackPop0, StackPushI, FlowNext)
	LdcI45      = newOpCode("ldc.i4.5", 0x1B, OperandNone, StackPop0, StackPushI, FlowNext)
	LdcI46      = newOpCode("ldc.i4.6", 0x1C, OperandNone, StackPop0, StackPushI, FlowNext)
	LdcI47      = newOpCode("ldc.i4.7", 0x1D, OperandNone, StackPop0, StackPushI, FlowNext)
	LdcI48      = newOpCode("ldc.i4.8", 0x1E, OperandNone, StackPop0, StackPushI, FlowNext)
	LdcI4S      = newOpCode("ldc.i4.s", 0x1F, OperandShortInt8, StackPop0, StackPushI, FlowNext)
	LdcI4       = newOpCode("ldc.i4", 0x20, OperandInt32, StackPop0, StackPushI, FlowNext)
	LdcI8       = newOpCode("ldc.i8", 0x21, OperandInt64, StackPop0, StackPushI8, FlowNext)
	LdcR4       = newOpCode("ldc.r4", 0x22, OperandShortFloat32, StackPop0, StackPushR4, FlowNext)
	LdcR8       = newOpCode("ldc.r8", 0x23, OperandFloat64, StackPop0, StackPushR8, FlowNext)
	Dup         = newOpCode("dup", 0x25, OperandNone, StackPop1, StackPush1Push1, FlowNext)
	Pop         = newOpCode("pop", 0x26, OperandNone, StackPop1, StackPush0, FlowNext)
	Jmp         = newOpCode("jmp", 0x27, OperandMethod, StackPop0, StackPush0, FlowCall)
	Call        = newOpCode("call", 0x28, OperandMethod, StackVarPop, StackVarPush, FlowCall)
	Calli       = newOpCode("calli", 0x29, OperandSignature, StackVarPop, StackVarPush, FlowCall)
	Ret         = newOpCode("ret", 0x2A, OperandNone, StackVarPop, StackPush0, FlowReturn)
	BrS         = newOpCode("br.s", 0x2B, OperandShortBranchTarget, StackPop0, StackPush0, FlowBranch)
	BrfalseS    = newOpCode("brfalse.s", 0x2C, OperandShortBranchTarget, StackPopI, StackPush0, FlowConditionalBranch)
	BrtrueS     = newOpCode("brtrue.s", 0x2D, OperandShortBranchTarget, StackPopI, StackPush0, FlowConditionalBranch)
	BeqS        = newOpCode("beq.s", 0x2E, OperandShortBranchTarget, StackPop1Pop1, StackPush0, FlowConditionalBranch)
	BgeS        = newOpCode("bge.s", 0x2F, OperandShortBranchTarget, StackPop1Pop1, StackPush0, FlowConditionalBranch)
	BgtS        = newOpCode("bgt.s", 0x30, OperandShortBranchTarget, StackPop1Pop1, StackPush0, FlowConditionalBranch)
	BleS        = newOpCode("ble.s", 0x31, OperandShortBranchTarget, StackPop1Pop1, StackPush0, FlowConditionalBranch)
	BltS        = newOpCode("blt.s", 0x32, OperandShortBranchTarget, StackPop1Pop1, StackPush0, FlowConditionalBranch)
	BneUnS      = newOpCode("bne.un.s", 0x33, OperandShortBranchTarget, StackPop1Pop1, StackPush0, FlowConditionalBranch)
	BgeUnS      = newOpCode("bge.un.s", 0x34, OperandShortBranchTarget, StackPop1Pop1, StackPush0, FlowConditionalBranch)
	BgtUnS      = newOpCode("bgt.un.s", 0x35, OperandShortBranchTarget, StackPop1Pop1, StackPush0, FlowConditionalBranch)
	BleUnS      = newOpCode("ble.un.s", 0x36, OperandShortBranchTarget, StackPop1Pop1, StackPush0, FlowConditionalBranch)
	BltUnS      = newOpCode("blt.un.s", 0x37, OperandShortBranchTarget, StackPop1Pop1, StackPush0, FlowConditionalBranch)
	Br          = newOpCode("br", 0x38, OperandBranchTarget, StackPop0, StackPush0, FlowBranch)
	Brfalse     = newOpCode("brfalse", 0x39, OperandBranchTarget, StackPopI, StackPush0, FlowConditionalBranch)
	Brtrue      = newOpCode("brtrue", 0x3A, OperandBranchTarget, StackPopI, StackPush0, FlowConditionalBranch)
	Beq         = newOpCode("beq", 0x3B, OperandBranchTarget, StackPop1Pop1, StackPush0, FlowConditionalBranch)
	Bge         = newOpCode("bge", 0x3C, OperandBranchTarget, StackPop1Pop1, StackPush0, FlowConditionalBranch)
	Bgt         = newOpCode("bgt", 0x3D, OperandBranchTarget, StackPop1Pop1, StackPush0, FlowConditionalBranch)
	Ble         = newOpCode("ble", 0x3E, OperandBranchTarget, StackPop1Pop1, StackPush0, FlowConditionalBranch)
	Blt         = newOpCode("blt", 0x3F, OperandBranchTarget, StackPop1Pop1, StackPush0, FlowConditionalBranch)
	BneUn       = newOpCode("bne.un", 0x40, OperandBranchTarget, StackPop1Pop1, StackPush0, FlowConditionalBranch)
	BgeUn       = newOpCode("bge.un", 0x41, OperandBranchTarget, StackPop1Pop1, StackPush0, FlowConditionalBranch)
	BgtUn       = newOpCode("bgt.un", 0x42, OperandBranchTarget, StackPop1Pop1, StackPush0, FlowConditionalBranch)
	BleUn       = newOpCode("ble.un", 0x43, OperandBranchTarget, StackPop1Pop1, StackPush0, FlowConditionalBranch)
	BltUn       = newOpCode("blt.un", 0x44, OperandBranchTarget, StackPop1Pop1, StackPush0, FlowConditionalBranch)
	Switch      = newOpCode("switch", 0x45, OperandSwitch, StackPopI, StackPush0, FlowConditionalBranch)
	LdindI1     = newOpCode("ldind.i1", 0x46, OperandNone, StackPopI, StackPushI, FlowNext)
	LdindU1     = newOpCode("ldind.u1", 0x47, OperandNone, StackPopI, StackPushI, FlowNext)
	LdindI2     = newOpCode("ldind.i2", 0x48, OperandNone, StackPopI, StackPushI, FlowNext)
	LdindU2     = newOpCode("ldind.u2", 0x49, OperandNone, StackPopI, StackPushI, FlowNext)
	LdindI4     = newOpCode("ldind.i4", 0x4A, OperandNone, StackPopI, StackPushI, FlowNext)
	LdindU4     = newOpCode("ldind.u4", 0x4B, OperandNone, StackPopI, StackPushI, FlowNext)
	LdindI8     = newOpCode("ldind.i8", 0x4C, OperandNone, StackPopI, StackPushI8, FlowNext)
	LdindI      = newOpCode("ldind.i", 0x4D, OperandNone, StackPopI, StackPushI, FlowNext)
	LdindR4     = newOpCode("ldind.r4", 0x4E, OperandNone, StackPopI, StackPushR4, FlowNext)
	LdindR8     = newOpCode("ldind.r8", 0x4F, OperandNone, StackPopI, StackPushR8, FlowNext)
	LdindRef    = newOpCode("ldind.ref", 0x50, OperandNone, StackPopI, StackPushRef, FlowNext)
	StindRef    = newOpCode("stind.ref", 0x51, OperandNone, StackPopIPopI, StackPush0, FlowNext)
	StindI1     = newOpCode("stind.i1", 0x52, OperandNone, StackPopIPopI, StackPush0, FlowNext)
	StindI2     = newOpCode("stind.i2", 0x53, OperandNone, StackPopIPopI, StackPush0, FlowNext)
	StindI4     = newOpCode("stind.i4", 0x54, OperandNone, StackPopIPopI, StackPush0, FlowNext)
	StindI8     = newOpCode("stind.i8", 0x55, OperandNone, StackPopIPopI8, StackPush0, FlowNext)
	StindR4     = newOpCode("stind.r4", 0x56, OperandNone, StackPopIPopR4, StackPush0, FlowNext)
	StindR8     = newOpCode("stind.r8", 0x57, OperandNone, StackPopIPopR8, StackPush0, FlowNext)
	Add         = newOpCode("add", 0x58, OperandNone, StackPop1Pop1, StackPush1, FlowNext)
	Sub         = newOpCode("sub", 0x59, OperandNone, StackPop1Pop1, StackPush1, FlowNext)
	Mul         = newOpCode("mul", 0x5A, OperandNone, StackPop1Pop1, StackPush1, FlowNext)
	Div         = newOpCode("div", 0x5B, OperandNone, StackPop1Pop1, StackPush1, FlowNext)
	DivUn       = newOpCode("div.un", 0x5C, OperandNone, StackPop1Pop1, StackPush1, FlowNext)
	Rem         = newOpCode("rem", 0x5D, OperandNone, StackPop1Pop1, StackPush1, FlowNext)
	RemUn       = newOpCode("rem.un", 0x5E, OperandNone, StackPop1Pop1, StackPush1, FlowNext)
	And         = newOpCode("and", 0x5F, OperandNone, StackPop1Pop1, StackPush1, FlowNext)
	Or          = newOpCode("or", 0x60, OperandNone, StackPop1Pop1, StackPush1, FlowNext)
	Xor         = newOpCode("xor", 0x61, OperandNone, StackPop1Pop1, StackPush1, FlowNext)
	Shl         = newOpCode("shl", 0x62, OperandNone, StackPop1Pop1, StackPush1, FlowNext)
	Shr         = newOpCode("shr", 0x63, OperandNone, StackPop1Pop1, StackPush1, FlowNext)
	ShrUn       = newOpCode("shr.un", 0x64, OperandNone, StackPop1Pop1, StackPush1, FlowNext)
	Neg         = newOpCode("neg", 0x65, OperandNone, StackPop1, StackPush1, FlowNext)
	Not         = newOpCode("not", 0x66, OperandNone, StackPop1, StackPush1, FlowNext)
	ConvI1      = newOpCode("conv.i1", 0x67, OperandNone, StackPop1, StackPushI, FlowNext)
	ConvI2      = newOpCode("conv.i2", 0x68, OperandNone, StackPop1, StackPushI, FlowNext)
	ConvI4      = newOpCode("conv.i4", 0x69, OperandNone, StackPop1, StackPushI, FlowNext)
	ConvI8      = newOpCode("conv.i8", 0x6A, OperandNone, StackPop1, StackPushI8, FlowNext)
	ConvR4      = newOpCode("conv.r4", 0x6B, OperandNone, StackPop1, StackPushR4, FlowNext)
	ConvR8      = newOpCode("conv.r8", 0x6C, OperandNone, StackPop1, StackPushR8, FlowNext)
	ConvU4      = newOpCode("conv.u4", 0x6D, OperandNone, StackPop1, StackPushI, FlowNext)
	ConvU8      = newOpCode("conv.u8", 0x6E, OperandNone, StackPop1, StackPushI8, FlowNext)
	Callvirt    = newOpCode("callvirt", 0x6F, OperandMethod, StackVarPop, StackVarPush, FlowCall)
	Cpobj       = newOpCode("cpobj", 0x70, OperandTypeRef, StackPopIPopI, StackPush0, FlowNext)
	Ldobj       = newOpCode("ldobj", 0x71, OperandTypeRef, StackPopI, StackPush1, FlowNext)
	Ldstr       = newOpCode("ldstr", 0x72, OperandString, StackPop0, StackPushRef, FlowNext)
	Newobj      = newOpCode("newobj", 0x73, OperandMethod, StackVarPop, StackPushRef, FlowCall)
	Castclass   = newOpCode("castclass", 0x74, OperandTypeRef, StackPopRef, StackPushRef, FlowNext)
	Isinst      = newOpCode("isinst", 0x75, OperandTypeRef, StackPopRef, StackPushI, FlowNext)
	ConvRUn     = newOpCode("conv.r.un", 0x76, OperandNone, StackPop1, StackPushR8, FlowNext)
	Unbox       = newOpCode("unbox", 0x79, OperandTypeRef, StackPopRef, StackPushI, FlowNext)
	Throw       = newOpCode("throw", 0x7A, OperandNone, StackPopRef, StackPush0, FlowThrow)
	Ldfld       = newOpCode("ldfld", 0x7B, OperandField, StackPopRef, StackPush1, FlowNext)
	Ldflda      = newOpCode("ldflda", 0x7C, OperandField, StackPopRef, StackPushI, FlowNext)
	Stfld       = newOpCode("stfld", 0x7D, OperandField, StackPopRefPop1, StackPush0, FlowNext)
	Ldsfld      = newOpCode("ldsfld", 0x7E, OperandField, StackPop0, StackPush1, FlowNext)
	Ldsflda     = newOpCode("ldsflda", 0x7F, OperandField, StackPop0, StackPushI, FlowNext)
	Stsfld      = newOpCode("stsfld", 0x80, OperandField, StackPop1, StackPush0, FlowNext)
	Stobj       = newOpCode("stobj", 0x81, OperandTypeRef, StackPopIPop1, StackPush0, FlowNext)
	ConvOvfI1Un = newOpCode("conv.ovf.i1.un", 0x82, OperandNone, StackPop1, StackPushI, FlowNext)
	ConvOvfI2Un = newOpCode("conv.ovf.i2.un", 0x83, OperandNone, StackPop1, StackPushI, FlowNext)
	ConvOvfI4Un = newOpCode("conv.ovf.i4.un", 0x84, OperandNone, StackPop1, StackPushI, FlowNext)
	ConvOvfI8Un = newOpCode("conv.ovf.i8.un", 0x85, OperandNone, StackPop1, StackPushI8, FlowNext)
	ConvOvfU1Un = newOpCode("conv.ovf.u1.un", 0x86, OperandNone, StackPop1, StackPushI, FlowNext)
	ConvOvfU2Un = newOpCode("conv.ovf.u2.un", 0x87, OperandNone, StackPop1, StackPushI, FlowNext)
	ConvOvfU4Un = newOpCode("conv.ovf.u4.un", 0x88, OperandNone, StackPop1, StackPushI, FlowNext)
	ConvOvfU8Un = newOpCode("conv.ovf.u8.un", 0x89, OperandNone, StackPop1, StackPushI8, FlowNext)
	ConvOvfIUn  = newOpCode("conv.ovf.i.un", 0x8A, OperandNone, StackPop1, StackPushI, FlowNext)
	ConvOvfUUn  = newOpCode("conv.ovf.u.un", 0x8B, OperandNone, StackPop1, StackPushI, FlowNext)
	Box         = newOpCode("box", 0x8C, OperandTypeRef, StackPop1, StackPushRef, FlowNext)
	Newarr      = newOpCode("newarr", 0x8D, OperandTypeRef, StackPopI, StackPushRef, FlowNext)
	Ldlen       = newOpCode("ldlen", 0x8E, OperandNone, StackPopRef, StackPushI, FlowNext)
	Ldelema     = newOpCode("ldelema", 0x8F, OperandTypeRef, StackPopRefPopI, StackPushI, FlowNext)
	LdelemI1    = newOpCode("ldelem.i1", 0x90, OperandNone, StackPopRefPopI, StackPushI, FlowNext)
	LdelemU1    = newOpCode("ldelem.u1", 0x91, OperandNone, StackPopRefPopI, StackPushI, FlowNext)
	LdelemI2    = newOpCode("ldelem.i2", 0x92, OperandNone, StackPopRefPopI, StackPushI, FlowNext)
	LdelemU2    = newOpCode("ldelem.u2", 0x93, OperandNone, StackPopRefPopI, StackPushI, FlowNext)
	LdelemI4    = newOpCode("ldelem.i4", 0x94, OperandNone, StackPopRefPopI, StackPushI, FlowNext)
	LdelemU4    = newOpCode("ldelem.u4", 0x95, OperandNone, StackPopRefPopI, StackPushI, FlowNext)
	LdelemI8    = newOpCode("ldelem.i8", 0x96, OperandNone, StackPopRefPopI, StackPushI8, FlowNext)
	LdelemI     = newOpCode("ldelem.i", 0x97, OperandNone, StackPopRefPopI, StackPushI, FlowNext)
	LdelemR4    = newOpCode("ldelem.r4", 0x98, OperandNone, StackPopRefPopI, StackPushR4, FlowNext)
	LdelemR8    = newOpCode("ldelem.r8", 0x99, OperandNone, StackPopRefPopI, StackPushR8, FlowNext)
	LdelemRef   = newOpCode("ldelem.ref", 0x9A, OperandNone, StackPopRefPopI, StackPushRef, FlowNext)
	StelemI     = newOpCode("stelem.i", 0x9B, OperandNone, StackPopRefPopIPopI, StackPush0, FlowNext)
	StelemI1    = newOpCode("stelem.i1", 0x9C, OperandNone, StackPopRefPopIPopI, StackPush0, FlowNext)
	StelemI2    = newOpCode("stelem.i2", 0x9D, OperandNone, StackPopRefPopIPopI, StackPush0, FlowNext)
	StelemI4    = newOpCode("stelem.i4", 0x9E, OperandNone, StackPopRefPopIPopI, StackPush0, FlowNext)
	StelemI8    = newOpCode("stelem.i8", 0x9F, OperandNone, StackPopRefPopIPopI8, StackPush0, FlowNext)
	StelemR4    = newOpCode("stelem.r4", 0xA0, OperandNone, StackPopRefPopIPopR4, StackPush0, FlowNext)
	StelemR8    = newOpCode("stelem.r8", 0xA1, OperandNone, StackPopRefPopIPopR8, StackPush0, FlowNext)
	StelemRef   = newOpCode("stelem.ref", 0xA2, OperandNone, StackPopRefPopIPopRef, StackPush0, FlowNext)
	Ldelem      = newOpCode("ldelem", 0xA3, OperandTypeRef, StackPopRefPopI, StackPush1, FlowNext)
	Stelem      = newOpCode("stelem", 0xA4, OperandTypeRef, StackPopRefPopIPop1, StackPush0, FlowNext)
	UnboxAny    = newOpCode("unbox.any", 0xA5, OperandTypeRef, StackPopRef, StackPush1, FlowNext)
	ConvOvfI1   = newOpCode("conv.ovf.i1", 0xB3, OperandNone, StackPop1, StackPushI, FlowNext)
	ConvOvfU1   = newOpCode("conv.ovf.u1", 0xB4, OperandNone, StackPop1, StackPushI, FlowNext)
	ConvOvfI2   = newOpCode("conv.ovf.i2", 0xB5, OperandNone, StackPop1, StackPushI, FlowNext)
	ConvOvfU2   = newOpCode("conv.ovf.u2", 0xB6, OperandNone, StackPop1, StackPushI, FlowNext)
	ConvOvfI4   = newOpCode("conv.ovf.i4", 0xB7, OperandNone, StackPop1, StackPushI, FlowNext)
	ConvOvfU4   = newOpCode("conv.ovf.u4", 0xB8, OperandNone, StackPop1, StackPushI, FlowNext)
	ConvOvfI8   = newOpCode("conv.ovf.i8", 0xB9, OperandNone, StackPop1, StackPushI8, FlowNext)
	ConvOvfU8   = newOpCode("conv.ovf.u8", 0xBA, OperandNone, StackPop1, StackPushI8, FlowNext)
	Refanyval   = newOpCode("refanyval", 0xC2, OperandTypeRef, StackPop1, StackPushI, FlowNext)
	Ckfinite    = newOpCode("ckfinite", 0xC3, OperandNone, StackPop1, StackPushR8, FlowNext)
	Mkrefany    = newOpCode("mkrefany", 0xC6, OperandTypeRef, StackPopI, StackPush1, FlowNext)
	Ldtoken     = newOpCode("ldtoken", 0xD0, OperandToken, StackPop0, StackPushI, FlowNext)
	ConvU2      = newOpCode("conv.u2", 0xD1, OperandNone, StackPop1, StackPushI, FlowNext)
	ConvU1      = newOpCode("conv.u1", 0xD2, OperandNone, StackPop1, StackPushI, FlowNext)
	ConvI       = newOpCode("conv.i", 0xD3, OperandNone, StackPop1, StackPushI, FlowNext)
	ConvOvfI    = newOpCode("conv.ovf.i", 0xD4, OperandNone, StackPop1, StackPushI, FlowNext)
	ConvOvfU    = newOpCode("conv.ovf.u", 0xD5, OperandNone, StackPop1, StackPushI, FlowNext)
	AddOvf      = newOpCode("add.ovf", 0xD6, OperandNone, StackPop1Pop1, StackPush1, FlowNext)
	AddOvfUn    = newOpCode("add.ovf.un", 0xD7, OperandNone, StackPop1Pop1, StackPush1, FlowNext)
	MulOvf      = newOpCode("mul.ovf", 0xD8, OperandNone, StackPop1Pop1, StackPush1, FlowNext)
	MulOvfUn    = newOpCode("mul.ovf.un", 0xD9, OperandNone, StackPop1Pop1, StackPush1, FlowNext)
	SubOvf      = newOpCode("sub.ovf", 0xDA, OperandNone, StackPop1Pop1, StackPush1, FlowNext)
	SubOvfUn    = newOpCode("sub.ovf.un", 0xDB, OperandNone, StackPop1Pop1, StackPush1, FlowNext)
	Endfinally  = newOpCode("endfinally", 0xDC, OperandNone, StackPop0, StackPush0, FlowReturn)
	Leave       = newOpCode("leave", 0xDD, OperandBranchTarget, StackPop0, StackPush0, FlowBranch)
	LeaveS      = newOpCode("leave.s", 0xDE, OperandShortBranchTarget, StackPop0, StackPush0, FlowBranch)
	StindI      = newOpCode("stind.i", 0xDF, OperandNone, StackPopIPopI, StackPush0, FlowNext)
	ConvU       = newOpCode("conv.u", 0xE0, OperandNone, StackPop1, StackPushI, FlowNext)
	Prefix7     = newOpCode("prefix7", 0xF8, OperandNone, StackPop0, StackPush0, FlowMeta)
	Prefix6     = newOpCode("prefix6", 0xF9, OperandNone, StackPop0, StackPush0, FlowMeta)
	Prefix5     = newOpCode("prefix5", 0xFA, OperandNone, StackPop0, StackPush0, FlowMeta)
	Prefix4     = newOpCode("prefix4", 0xFB, OperandNone, StackPop0, StackPush0, FlowMeta)
	Prefix3     = newOpCode("prefix3", 0xFC, OperandNone, StackPop0, StackPush0, FlowMeta)
	Prefix2     = newOpCode("prefix2", 0xFD, OperandNone, StackPop0, StackPush0, FlowMeta)
	Prefix1     = newOpCode("prefix1", 0xFE, OperandNone, StackPop0, StackPush0, FlowMeta)
	Prefixref   = newOpCode("prefixref", 0xFF, OperandNone, StackPop0, StackPush0, FlowMeta)
	Arglist     = newOpCode("arglist", 0xFE00, OperandNone, StackPop0, StackPushI, FlowNext)
	Ceq         = newOpCode("ceq", 0xFE01, OperandNone, StackPop1Pop1, StackPushI, FlowNext)
	Cgt         = newOpCode("cgt", 0xFE02, OperandNone, StackPop1Pop1, StackPushI, FlowNext)
	CgtUn       = newOpCode("cgt.un", 0xFE03, OperandNone, StackPop1Pop1, StackPushI, FlowNext)
	Clt         = newOpCode("clt", 0xFE04, OperandNone, StackPop1Pop1, StackPushI, FlowNext)
	CltUn       = newOpCode("clt.un", 0xFE05, OperandNone, StackPop1Pop1, StackPushI, FlowNext)
	Ldftn       = newOpCode("ldftn", 0xFE06, OperandMethod, StackPop0, StackPushI, FlowNext)
	Ldvirtftn   = newOpCode("ldvirtftn", 0xFE07, OperandMethod, StackPopRef, StackPushI, FlowNext)
	Ldarg       = newOpCode("ldarg", 0xFE09, OperandArgument, StackPop0, StackPush1, FlowNext)
	Ldarga      = newOpCode("ldarga", 0xFE0A, OperandArgument, StackPop0, StackPushI, FlowNext)
	Starg       = newOpCode("starg", 0xFE0B, OperandArgument, StackPop1, StackPush0, FlowNext)
	Ldloc       = newOpCode("ldloc", 0xFE0C, OperandVariable, StackPop0, StackPush1, FlowNext)
	Ldloca      = newOpCode("ldloca", 0xFE0D, OperandVariable, StackPop0, StackPushI, FlowNext)
	Stloc       = newOpCode("stloc", 0xFE0E, OperandVariable, StackPop1, StackPush0, FlowNext)
	Localloc    = newOpCode("localloc", 0xFE0F, OperandNone, StackPopI, StackPushI, FlowNext)
	Endfilter   = newOpCode("endfilter", 0xFE11, OperandNone, StackPopI, StackPush0, FlowReturn)
	Unaligned   = newOpCode("unaligned.", 0xFE12, OperandShortInt8, StackPop0, StackPush0, FlowMeta)
	Volatile    = newOpCode("volatile.", 0xFE13, OperandNone, StackPop0, StackPush0, FlowMeta)
	Tail        = newOpCode("tail.", 0xFE14, OperandNone, StackPop0, StackPush0, FlowMeta)
	Initobj     = newOpCode("initobj", 0xFE15, OperandTypeRef, StackPopI, StackPush0, FlowNext)
	Constrained = newOpCode("constrained.", 0xFE16, OperandTypeRef, StackPop0, StackPush0, FlowMeta)
	Cpblk       = newOpCode("cpblk", 0xFE17, OperandNone, StackPopIPopIPopI, StackPush0, FlowNext)
	Initblk     = newOpCode("initblk", 0xFE18, OperandNone, StackPopIPopIPopI, StackPush0, FlowNext)
	Rethrow     = newOpCode("rethrow", 0xFE1A, OperandNone, StackPop0, StackPush0, FlowThrow)
	Sizeof      = newOpCode("sizeof", 0xFE1C, OperandTypeRef, StackPop0, StackPushI, FlowNext)
	Refanytype  = newOpCode("refanytype", 0xFE1D, OperandNone, StackPop1, StackPushI, FlowNext)
	Readonly    = newOpCode("readonly.", 0xFE1E, OperandNone, StackPop0, StackPush0, FlowMeta)
)

var allOpCodes = []*OpCode{
	Nop, Break, Ldarg0, Ldarg1, Ldarg2, Ldarg3, Ldloc0, Ldloc1, Ldloc2, Ldloc3, Stloc0, Stloc1,
	Stloc2, Stloc3, LdargS, LdargaS, StargS, LdlocS, LdlocaS, StlocS, Ldnull, LdcI4M1, LdcI40, LdcI41,
	LdcI42, LdcI43, LdcI44, LdcI45, LdcI46, LdcI47, LdcI48, LdcI4S, LdcI4, LdcI8, LdcR4, LdcR8, Dup,
	Pop, Jmp, Call, Calli, Ret, BrS, BrfalseS, BrtrueS, BeqS, BgeS, BgtS, BleS, BltS, BneUnS, BgeUnS,
	BgtUnS, BleUnS, BltUnS, Br, Brfalse, Brtrue, Beq, Bge, Bgt, Ble, Blt, BneUn, BgeUn, BgtUn, BleUn,
	BltUn, Switch, LdindI1, LdindU1, LdindI2, LdindU2, LdindI4, LdindU4, LdindI8, LdindI, LdindR4,
	LdindR8, LdindRef, StindRef, StindI1, StindI2, StindI4, StindI8, StindR4, StindR8, Add, Sub, Mul,
	Div, DivUn, Rem, RemUn, And, Or, Xor, Shl, Shr, ShrUn, Neg, Not, ConvI1, ConvI2, ConvI4, ConvI8,
	ConvR4, ConvR8, ConvU4, ConvU8, Callvirt, Cpobj, Ldobj, Ldstr, Newobj, Castclass, Isinst, ConvRUn,
	Unbox, Throw, Ldfld, Ldflda, Stfld, Ldsfld, Ldsflda, Stsfld, Stobj, ConvOvfI1Un, ConvOvfI2Un,
	ConvOvfI4Un, ConvOvfI8Un, ConvOvfU1Un, ConvOvfU2Un, ConvOvfU4Un, ConvOvfU8Un, ConvOvfIUn,
	ConvOvfUUn, Box, Newarr, Ldlen, Ldelema, LdelemI1, LdelemU1, LdelemI2, LdelemU2, LdelemI4,
	LdelemU4, LdelemI8, LdelemI, LdelemR4, LdelemR8, LdelemRef, StelemI, StelemI1, StelemI2, StelemI4,
	StelemI8, StelemR4, StelemR8, StelemRef, Ldelem, Stelem, UnboxAny, ConvOvfI1, ConvOvfU1,
	ConvOvfI2, ConvOvfU2, ConvOvfI4, ConvOvfU4, ConvOvfI8, ConvOvfU8, Refanyval, Ckfinite, Mkrefany,
	Ldtoken, ConvU2, ConvU1, ConvI, ConvOvfI, ConvOvfU, AddOvf, AddOvfUn, MulOvf, MulOvfUn, SubOvf,
	SubOvfUn, Endfinally, Leave, LeaveS, StindI, ConvU, Prefix7, Prefix6, Prefix5, Prefix4, Prefix3,
	Prefix2, Prefix1, Prefixref, Arglist, Ceq, Cgt, CgtUn, Clt, CltUn, Ldftn, Ldvirtftn, Ldarg,
	Ldarga, Starg, Ldloc, Ldloca, Stloc, Localloc, Endfilter, Unaligned, Volatile, Tail, Initobj,
	Constrained, Cpblk, Initblk, Rethrow, Sizeof, Refanytype, Readonly,
}
