package main

// Command descriptions
const (
	MsgRootShort = "Highlight text with brace expression style sheets"
	MsgRootLong  = `hitfmt formats text with a style sheet: an ordered list of brace expression
patterns, each paired with a style. Every span of the input matching a
pattern is rendered in that pattern's style; the rest passes through.

Input is read from the files given as arguments, or from stdin.`
	MsgRootExample = `  hitfmt -s keywords main.i
  hitfmt -s ./styles/moose.toml -f html input.i > input.html
  cat log.txt | hitfmt -s '[[rules]]
pattern = "{ERROR,WARN}"
style = "error"'`

	MsgExpandShort     = "Print the strings a brace expression expands to"
	MsgCheckShort      = "Compile a style sheet and report on it"
	MsgInitShort       = "Write a starter style sheet"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate the man page"
)

// Flag descriptions
const (
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagStyle   = "Style sheet: a file path, a style name, or inline TOML source"
	MsgFlagFormat  = "Output format: auto, plain, ansi, html, xml, markup"
	MsgFlagPalette = "YAML palette file overriding terminal styles"
	MsgFlagConfig  = "Config file (default $XDG_CONFIG_HOME/hitfmt/config.toml)"
	MsgFlagForce   = "Overwrite an existing file"
	MsgFlagCount   = "Only print the number of strings"
)

// Output messages
const (
	MsgExpandLazy   = "%s: %d strings, matched lazily (longest %d bytes)\n"
	MsgCheckSummary = "%s: %d rules, %d literals, %d lazy rules\n"
	MsgInitCreated  = "Created style sheet %s\n"
	MsgVersion      = "hitfmt version %s\n  commit: %s\n  built:  %s\n"
)

// Error messages
const (
	MsgErrNoStyle   = "no style given: use --style or set styles.default"
	MsgErrReadInput = "failed to read %s"
	MsgErrExists    = "%s already exists, use --force to overwrite"
)
