package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pterm/pterm"

	"github.com/idaholab/moose-language-support/pkg/errors"
)

// renderError formats err for stderr. Style definition errors show their
// details, and syntax errors point at the offending byte of the pattern.
func renderError(err error) string {
	if err == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", pterm.Error.Prefix.Text, err.Error())

	details := errors.GetErrorDetails(err)
	if len(details) == 0 {
		return b.String()
	}

	keys := make([]string, 0, len(details))
	for k := range details {
		if k == errors.DetailOffset {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "\n  %s: %v", k, details[k])
	}

	pattern, hasPattern := details[errors.DetailPattern].(string)
	if offset, ok := errors.Offset(err); ok && hasPattern && offset <= len(pattern) {
		fmt.Fprintf(&b, "\n\n    %s\n    %s^", pattern, strings.Repeat(" ", offset))
	}
	return b.String()
}
