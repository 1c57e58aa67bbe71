// Package rules compiles an ordered list of style rules into an immutable
// matching structure.
//
// # Rules
//
// A rule pairs a brace expression pattern with a style directive:
//
//	[[rules]]
//	pattern = "{if,else,end}"
//	style = "keyword"
//
//	[[rules]]
//	pattern = "v{0..9}"
//	style = "version"
//
// The index of a rule in the list is its priority; earlier rules win ties.
//
// # Matching
//
// Patterns that expand to a manageable number of strings are inserted into a
// byte trie. Larger expansions are kept as lazy matchers and tried after the
// trie, in priority order. At any position the longest match wins, and among
// matches of the same length the rule declared first wins.
//
// A CompiledStyle is never mutated after Compile returns and may be shared
// by any number of goroutines.
package rules
