package checkout

import (
	"crypto/rand"
	"fmt"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

const orderNumberSuffixLen = 10

// NumberGenerator produces order numbers of the form ORD-<unix millis>-<suffix>.
// The suffix is the tail of a monotonic ULID, so numbers generated by one process
// within the same millisecond never repeat.
type NumberGenerator struct {
	mu      sync.Mutex
	now     func() time.Time
	entropy *ulid.MonotonicEntropy
}

// NewNumberGenerator creates a generator. A nil clock means time.Now.
func NewNumberGenerator(now func() time.Time) *NumberGenerator {
	if now == nil {
		now = time.Now
	}
	return &NumberGenerator{
		now:     now,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Next returns a new order number.
func (g *NumberGenerator) Next() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	t := g.now()
	id, err := ulid.New(ulid.Timestamp(t), g.entropy)
	if err != nil {
		return "", fmt.Errorf("failed to generate order number: %w", err)
	}

	s := id.String()
	return fmt.Sprintf("ORD-%d-%s", t.UnixMilli(), s[len(s)-orderNumberSuffixLen:]), nil
}
