// Package errors provides structured error types for the watfreq pipeline.
//
// Errors are categorized by Phase (where in the run the error occurred) and
// Kind (error category), and carry an optional path, detail message and
// cause chain.
//
// Use the Builder for structured construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindInvalidData).
//		Path("code", "body 3").
//		Detail("unknown opcode 0x%02x", op).
//		Build()
//
// Or the convenience constructors for common patterns:
//
//	err := errors.ReadFailed(path, cause)
//	err := errors.Unsupported(errors.PhaseDecode, "SIMD instructions")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
