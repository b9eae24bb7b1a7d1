// Package analyzer implements the operator sequence frequency pipeline.
//
// The pipeline is a single pass: extract dotted operator tokens from raw
// text, build sliding windows of N consecutive tokens, count occurrences of
// each distinct window, and sort the result by ascending count.
//
// Basic usage:
//
//	report := analyzer.Analyze(source, analyzer.Options{Length: 5})
//	report.WriteText(os.Stdout)
//
// Tokens can also be supplied directly, e.g. from the WAT lexer in package
// wat or from the binary scanner in package wasm:
//
//	report := analyzer.AnalyzeTokens(wat.Instructions(source), analyzer.Options{})
//
// By default the window bound reproduces the historical analyzer: windows
// start at every index in [0, tokens-2) regardless of N, so trailing windows
// may run short when N > 3. Options.Exact switches to full N-token windows.
package analyzer
