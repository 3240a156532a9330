package analysis

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// DueDateSource supplies due dates for extracted action items
type DueDateSource interface {
	Next() string
}

// RandomDueDates yields "April <20..29>, 2025"
type RandomDueDates struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomDueDates creates a due date source. A zero seed uses the current time.
func NewRandomDueDates(seed int64) *RandomDueDates {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomDueDates{rng: rand.New(rand.NewSource(seed))}
}

func (d *RandomDueDates) Next() string {
	d.mu.Lock()
	day := 20 + d.rng.Intn(10)
	d.mu.Unlock()
	return fmt.Sprintf("April %d, 2025", day)
}

// FixedDueDate always returns the same date
type FixedDueDate string

func (d FixedDueDate) Next() string {
	return string(d)
}
