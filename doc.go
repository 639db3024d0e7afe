// Package cilcodec reads and writes .NET CIL method bodies.
//
// The codec turns the bytes of a method body into an editable list of
// instructions and back, keeping branch targets, locals, arguments and
// exception handler boundaries as references instead of raw numbers.
//
// # Architecture Overview
//
//	cilcodec/
//	├── cil/               Opcodes, instructions, decoder, encoder, method bodies
//	├── metadata/          In-memory token table and user-string heap
//	├── errors/            Structured error types for debugging
//	├── internal/config/   cilc.toml loading
//	├── internal/listing/  Text and YAML listings of decoded bodies
//	└── cmd/cilc/          Command line tool and interactive browser
//
// # Quick Start
//
// Decode a body, shrink it, and write it back:
//
//	table := metadata.NewTable(metadata.Options{Placeholders: true})
//
//	body, err := cil.ReadMethodBody(data, table)
//	if err != nil {
//	    return err
//	}
//	if err := body.EnsureDecoded(); err != nil {
//	    return err
//	}
//
//	body.Instructions.OptimizeMacros()
//	if err := body.UpdateMaxStack(); err != nil {
//	    return err
//	}
//	out, err := body.Bytes(table)
//
// # Building Bodies
//
// Instructions reference each other directly:
//
//	ret := cil.MustInstruction(cil.Ret, nil)
//	body := cil.NewMethodBody()
//	body.Instructions.Add(
//	    cil.MustInstruction(cil.Ldarg0, nil),
//	    cil.MustInstruction(cil.Brfalse, ret),
//	    cil.MustInstruction(cil.Nop, nil),
//	    ret,
//	)
//
// Offsets are assigned by CalculateOffsets, which Bytes calls before encoding.
// After removing or replacing instructions, VerifyLabels reports branches and
// handler boundaries that no longer point into the body.
//
// # Error Handling
//
// All errors are *errors.Error values carrying the phase, kind and code offset:
//
//	if errors.Is(err, cilerrors.ErrInvalidToken) {
//	    // a member has no metadata row
//	}
//
// # Logging
//
// The cil package logs at debug level through zap. It is silent until a
// logger is installed:
//
//	cil.SetLogger(zap.NewExample())
package cilcodec
