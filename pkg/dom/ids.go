package dom

import (
	"fmt"
	"sync"
)

// IDGenerator generates unique element ids for the wire bridge.
type IDGenerator struct {
	counter uint32
	mu      sync.Mutex
}

// NewIDGenerator creates a new IDGenerator.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// Next returns the next id (e.g., "bk1", "bk2", ...).
func (g *IDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter++
	return fmt.Sprintf("bk%d", g.counter)
}

// Reset resets the counter to 0.
func (g *IDGenerator) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter = 0
}

// Current returns the current counter value without incrementing.
func (g *IDGenerator) Current() uint32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.counter
}

// EnsureIDs assigns generated ids to elements that carry the given
// attribute but have no id. The bridge targets elements by id, so every
// bindable element needs one before the page is served.
func EnsureIDs(d *Document, attrName string, gen *IDGenerator) {
	for _, e := range d.ElementsWithAttr(attrName) {
		if e.ID() == "" {
			e.SetAttr("id", gen.Next())
		}
	}
}
