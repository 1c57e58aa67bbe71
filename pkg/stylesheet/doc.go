// Package stylesheet loads style sheets: named rule lists with the terminal
// styles their directives map to.
//
// A sheet is TOML, or YAML when the file ends in .yaml or .yml:
//
//	name = "shell"
//	include = ["base.toml"]
//
//	[[rules]]
//	pattern = "{if,then,else,fi}"
//	style = "keyword"
//
//	[styles.keyword]
//	foreground = "#d33682"
//	bold = true
//
// Includes are resolved relative to the including sheet. The including
// sheet's rules come first, so they take priority over included rules, and
// its styles replace included styles of the same name.
package stylesheet
