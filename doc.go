// Package lvlvec is a generic, dynamically-resizable sequence container
// built from two explicit layers: raw capacity below, live elements above.
//
// 🚀 What is lvlvec?
//
//	A small, dependency-free library that makes the size/capacity split of
//	a growable array an explicit, testable contract:
//		• rawbuf — a fixed-capacity slab with ownership transfer and a
//		  destroy primitive, but no knowledge of which slots are live
//		• vec    — Vector[T]: amortized O(1) append, positional insert and
//		  erase, exact Reserve, Resize, deep Clone and copy-and-swap Assign
//
// ✨ Why choose lvlvec?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – reallocation builds the new buffer fully
//     before the old one is touched, so a failed grow never corrupts state
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – install a per-element clone hook (WithCloneFunc) when
//     element values own shared state
//
// Under the hood, everything is organized under two subpackages:
//
//	rawbuf/ — fixed-capacity storage slab; capacity, addressing, Swap, Clear
//	vec/    — Vector[T]: the dynamic sequence built on exactly one rawbuf
//
// Quick ASCII example of the invariant every operation preserves:
//
//	    ┌───┬───┬───┬───┬───┬───┐
//	    │ a │ b │ c │ · │ · │ · │   live: [0,size)   dead: [size,cap)
//	    └───┴───┴───┴───┴───┴───┘
//	          size=3     cap=6
//
// Dive into the examples/ directory for full usage patterns, growth-policy
// details and the exception-safety notes on each operation.
//
//	go get github.com/katalvlaran/lvlvec
package lvlvec
