package concern

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// TicketNumberGenerator produces the next ticket number for a calendar year.
// Numbers look like GRV-2025-00001 and restart at 1 each January.
//
// Implementations must be safe under concurrent creates: a read-then-insert
// generator can hand out duplicates, so the database-backed implementation
// computes the next sequence inside the same transaction as the insert.
type TicketNumberGenerator interface {
	Next(ctx context.Context, year int) (string, error)
}

// FormatTicketNumber renders a year and sequence as a ticket number.
func FormatTicketNumber(year int, sequence int) string {
	return fmt.Sprintf("GRV-%04d-%05d", year, sequence)
}

// InMemoryTicketNumberGenerator is a process-local generator used in tests
// and seeding. Counters reset per year key.
type InMemoryTicketNumberGenerator struct {
	mu       sync.Mutex
	counters map[int]int
}

func NewInMemoryTicketNumberGenerator() *InMemoryTicketNumberGenerator {
	return &InMemoryTicketNumberGenerator{
		counters: make(map[int]int),
	}
}

func (g *InMemoryTicketNumberGenerator) Next(ctx context.Context, year int) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if year == 0 {
		year = time.Now().Year()
	}

	g.counters[year]++
	return FormatTicketNumber(year, g.counters[year]), nil
}
