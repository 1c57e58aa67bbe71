// Package testutil provides helpers shared by hitfmt tests.
//
// Key components:
//   - Isolate: points the XDG directories at a temporary tree so tests never
//     read the user's config or styles, nor write to their log file
//   - CreateFile, ReadFile, FileExists: fixture files on the real filesystem
//   - StyleDir: a directory of named style sheets
//
// All test data should be defined inline, not in external files.
package testutil
