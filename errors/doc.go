// Package errors provides structured error types for the CIL codec.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the code offset, the mnemonic of the offending instruction,
// and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseEncode, errors.KindOverflow).
//		At(0x1C).
//		OpCode("br.s").
//		Detail("branch delta %d does not fit in int8", delta).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Truncated(offset, "operand", io.ErrUnexpectedEOF)
//	err := errors.InvalidToken(offset, "call", member, token)
//
// Sentinels such as ErrMalformedBytecode match any phase on Kind alone:
//
//	if errors.Is(err, cilerrors.ErrInvalidToken) { ... }
package errors
