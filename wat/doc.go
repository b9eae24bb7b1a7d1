// Package wat provides lexical scanning of WebAssembly Text format source.
//
// Unlike the regex scan in package analyzer, the lexer understands WAT
// syntax: line comments (;;), nested block comments ((; ;)) and string
// literals are skipped, so mnemonics mentioned in comments or embedded in
// data segments are not counted.
//
// Basic usage:
//
//	tokens := wat.Instructions(source)
//	report := analyzer.AnalyzeTokens(tokens, analyzer.Options{})
//
// Not supported: no parsing or validation happens here; the lexer does not
// verify that an identifier is a real instruction, only that it has the
// dotted <class>.<op> operator shape.
package wat
