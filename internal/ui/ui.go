// Package ui formats the diagnostics written to the error stream. The
// diagnostic strings are part of the CLI contract, so no colors or decorations
// are applied.
package ui

import (
	"fmt"
	"io"
)

// helpHint is appended to every argument diagnostic.
const helpHint = "    Try /? or /help"

// PrintArgError writes an argument or option diagnostic followed by the help
// hint.
func PrintArgError(w io.Writer, msg string) {
	fmt.Fprintf(w, "ERROR: %s\n", msg)
	fmt.Fprintln(w, helpHint)
}

// PrintFileError writes a file or same-name diagnostic.
func PrintFileError(w io.Writer, msg string) {
	fmt.Fprintf(w, "Error: %s\n", msg)
}

// PrintNameError writes the multi-line array-name diagnostic enumerating the
// allowed character classes and the first-character restriction.
func PrintNameError(w io.Writer) {
	fmt.Fprintln(w, "Error: Invalid array name")
	fmt.Fprintln(w, "    Only the following ASCII characters are allowed:")
	fmt.Fprintln(w, "        '_'")
	fmt.Fprintln(w, "        '0' to '9'")
	fmt.Fprintln(w, "        'A' to 'Z'")
	fmt.Fprintln(w, "        'a' to 'z'")
	fmt.Fprintln(w, "    The first character can't be '0' to '9'.")
}
