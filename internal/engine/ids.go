package engine

import (
	"sync"

	"github.com/google/uuid"
)

// IDGenerator produces unique ids for players, games and events.
type IDGenerator interface {
	New() string
}

// UUIDv7Generator generates time-sortable UUIDv7 ids.
//
// UUIDv7 embeds a timestamp in the most significant bits, so ids sort by
// creation time, which keeps exported ledgers readable.
//
// Panics if UUID generation fails (should never happen in practice).
type UUIDv7Generator struct{}

// New returns a hyphenated UUIDv7 string.
func (UUIDv7Generator) New() string {
	return uuid.Must(uuid.NewV7()).String()
}

// FixedGenerator returns predetermined ids for tests, enabling exact
// assertions and golden comparisons.
//
// Panics when all ids are consumed; fail-fast catches a test creating more
// entities than it expected.
type FixedGenerator struct {
	mu  sync.Mutex
	ids []string
	idx int
}

// NewFixedGenerator creates a generator that returns ids in order.
func NewFixedGenerator(ids ...string) *FixedGenerator {
	return &FixedGenerator{ids: ids}
}

// New returns the next predetermined id.
func (g *FixedGenerator) New() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.idx >= len(g.ids) {
		panic("FixedGenerator: all ids exhausted")
	}
	id := g.ids[g.idx]
	g.idx++
	return id
}
