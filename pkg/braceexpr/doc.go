// Package braceexpr parses and expands brace expressions, the pattern
// language of hitfmt style rules.
//
// # Syntax
//
//   - `{a,b,c}` - alternation, at least two branches, branches may be empty
//   - `{1..9}`, `{a..e}` - inclusive ranges of integers or single characters
//   - `{0..20..5}` - ranges with a step
//   - `{01..10}` - zero-padded numeric ranges
//   - `x{a,{b,c}}y` - nesting; text around a group is kept around each branch
//   - `\{`, `\}`, `\,`, `\.`, `\\` - escapes that drop structural meaning
//
// Ranges are stored normalized (Lo <= Hi). A range written high to low is
// flagged Reversed and expands in the order it was written, so `{3..1}`
// yields 3, 2, 1.
//
// # Expansion
//
// Expand enumerates the Cartesian product of a tree with the rightmost group
// varying fastest:
//
//	a{1,2}{x,y} -> a1x a1y a2x a2y
//
// Products above Limits.EagerCap are not materialized; Expand hands back a
// Matcher that interprets the tree on demand. Products above
// Limits.HardCeiling fail with an OVERFLOW error.
package braceexpr
