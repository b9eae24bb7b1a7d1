// Package wasm recovers instruction mnemonics from WebAssembly binary
// modules so the frequency pipeline applies to .wasm input as well as text.
//
// The scanner walks the section framing, decodes every function body in the
// code section and emits the WAT mnemonic of each opcode in decode order.
// Immediates are skipped, not interpreted; nothing is validated beyond what
// decoding requires. For real validation, Validate compiles the module with
// wazero.
//
// Supported: the WASM 2.0 core instruction set, including saturating
// truncations, sign extension, bulk memory, table ops and reference types.
//
// Not supported: SIMD (v128), threads/atomics, GC types. Modules using
// these fail with a structured unsupported error.
package wasm
