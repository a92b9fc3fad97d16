package editor

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// IDGenerator produces candidate ids for new list entries.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator generates random UUID strings.
type UUIDGenerator struct{}

// NewID returns a new random UUID string.
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// SequenceGenerator generates predictable ids ("prefix-1", "prefix-2", ...).
// Safe for concurrent use.
type SequenceGenerator struct {
	prefix string
	mu     sync.Mutex
	next   int
}

// NewSequenceGenerator creates a SequenceGenerator with the given prefix.
func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{prefix: prefix}
}

// NewID returns the next id in the sequence.
func (g *SequenceGenerator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return fmt.Sprintf("%s-%d", g.prefix, g.next)
}

// freshID draws ids until one is non-empty and unused in list.
func freshID[T Identified](ids IDGenerator, list []T) string {
	for {
		id := ids.NewID()
		if id != "" && indexOf(list, id) < 0 {
			return id
		}
	}
}
