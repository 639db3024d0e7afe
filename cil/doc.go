// Package cil reads and writes CIL method bodies as defined by ECMA-335 Partition II §25.4
// and Partition III.
//
// The package turns the raw bytes of a method body into an editable sequence of
// instructions with resolved operands and writes such a sequence back to bytes.
// Branch operands point at *Instruction values, member operands at whatever the
// caller's metadata layer hands back, and exception handler boundaries at
// instructions in the same body.
//
// # Decoding
//
//	body, err := cil.ReadMethodBody(data, md)
//	if err != nil {
//	    return err
//	}
//	if err := body.EnsureDecoded(); err != nil {
//	    return err
//	}
//	for ins := range body.Instructions.All() {
//	    fmt.Println(ins)
//	}
//
// Decoding is permissive: operands the resolver cannot resolve are kept in raw
// form (RawToken, RawIndex, RawOffset) so the rest of the body stays usable.
//
// # Encoding
//
//	body.Instructions.OptimizeMacros()
//	out, err := body.Bytes(mb)
//
// Encoding is strict. A branch without a concrete target, a member without a
// row id, or a short-form value out of range aborts the whole body.
//
// # Macro forms
//
// ExpandMacros rewrites compact opcodes (ldloc.0, ldc.i4.s, br.s, ...) into
// their explicit-operand forms. OptimizeMacros does the inverse in one pass;
// OptimizeMacrosFixedPoint repeats it until the code stops shrinking.
//
// # Concurrency
//
// Method bodies and sequences are not safe for concurrent mutation. Distinct
// bodies may be processed in parallel. The opcode tables are immutable after
// package initialization.
package cil
