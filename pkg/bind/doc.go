// Package bind implements the declarative binding pass.
//
// A binding pass scans a document for elements carrying paired
// data-events / data-handlers attributes, parses both lists, validates
// every declared handler name against the caller's registry, and
// attaches one listener per (event, handler) pair. Position i of the
// event list is bound to position i of the handler list.
//
// The registry is an explicit argument, never ambient state: independent
// passes with different registries over the same or different documents
// do not interfere.
//
// A pass performs no bookkeeping across invocations. Running it twice
// attaches every listener twice.
package bind
