// Package dom provides the minimal document model Bindkit binds against.
//
// It is not a browser DOM. It implements exactly the surface the binding
// pass and the wire bridge need: attribute access, document-order queries
// for elements carrying an attribute, listener registration, and
// synchronous event dispatch with the target element attached to the
// event object.
//
// Documents can be parsed from real HTML (Parse, ParseFile) or built in
// Go with the element constructors (Div, Button, ...). Both produce the
// same tree and behave identically under binding and dispatch.
package dom
