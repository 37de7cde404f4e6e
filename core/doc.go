// Package core holds the few definitions every lvsearch matcher agrees on.
//
// Symbols:
//
//	Texts and patterns are plain slices []E where E satisfies Symbol
//	(~byte or ~rune). Byte slices give byte offsets, rune slices give
//	code-point offsets. String helpers in the matcher packages work on bytes.
//
// Shared policy (Precheck):
//
//   - empty pattern            → index 0
//   - pattern longer than text → NotFound
//
// Every matcher is a pure function: no globals, no locks, safe to call from any
// number of goroutines at once.
package core
