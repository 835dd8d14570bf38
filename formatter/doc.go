// Package formatter serializes export documents.
//
// Output is plain JSON with unescaped HTML characters, either compact or
// indented, written to a file or to stdout.
package formatter
