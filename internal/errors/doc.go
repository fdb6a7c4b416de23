// Package errors provides structured, actionable error messages for Bindkit.
//
// Every error raised by the binding pass, the wire bridge, or the CLI carries
// a unique code (e.g. "B002") that maps to:
//   - A short message describing the error
//   - A detailed explanation
//   - A documentation URL
//
// # Error Categories
//
// Errors are organized into categories:
//   - validation: binding configuration errors (malformed attributes,
//     unresolved handler names, mismatched list lengths)
//   - protocol: wire bridge errors (invalid messages, connection issues)
//   - config: bindkit.json errors
//   - cli: command-line errors (missing documents, parse failures)
//
// # Usage
//
//	err := errors.New("B002").
//	    WithSubject("onClick").
//	    WithSuggestion(`Register the handler before binding: reg["onClick"] = ...`)
//
//	fmt.Println(err.Format())
package errors
