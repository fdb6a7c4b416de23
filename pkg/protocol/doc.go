// Package protocol defines the wire format for the Bindkit bridge.
//
// The bridge carries native DOM events from the client page to the
// server-side bound document, and acknowledgments or errors back. Each
// WebSocket message is one JSON frame: an envelope with a kind tag and
// a payload.
//
// Client → Server: event, ping
// Server → Client: ack, error, pong
//
// The format is JSON rather than a binary codec: bridge messages are a
// handful of small fields, and debuggability in the browser console
// outweighs the framing overhead at this message rate.
package protocol
