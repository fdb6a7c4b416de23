// Package server hosts a bound document over HTTP and bridges native
// browser events into it over WebSocket.
//
// The document lives on the server. Each WebSocket connection gets its
// own Session: a fresh copy of the document, bound against the
// application's handler registry in one binding pass. A small client
// script, injected into the served page, forwards native events for
// bindable elements; the session dispatches them into its document and
// acknowledges each one.
package server
