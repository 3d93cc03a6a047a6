package utils

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Clock abstracts time retrieval so business logic is deterministic in tests.
type Clock interface {
	Now() time.Time
}

// RealClock returns the actual current time.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant. Test helper.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time { return c.T }

// IDGenerator produces collision-resistant string identifiers with a short
// caller-supplied prefix, e.g. "MEM-MB3K2F1A-X7Q9". IDs sort roughly by
// creation time because the middle segment is the base-36 encoded timestamp.
type IDGenerator interface {
	NewID(prefix string) string
}

// Generator is the default IDGenerator. It needs no coordination with the
// store: the millisecond timestamp plus four random base-36 characters make
// collisions overwhelmingly unlikely at the row volumes we deal with.
type Generator struct {
	clock Clock

	mu   sync.Mutex
	rand *rand.Rand
}

// NewGenerator creates a Generator backed by the given clock and a
// time-seeded random source.
func NewGenerator(clock Clock) *Generator {
	if clock == nil {
		clock = RealClock{}
	}
	return &Generator{
		clock: clock,
		rand:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewID returns a new identifier of the form PREFIX-TIMESTAMP36-RAND36.
func (g *Generator) NewID(prefix string) string {
	if prefix == "" {
		prefix = "ID"
	}

	millis := g.clock.Now().UnixMilli()
	ts := strings.ToUpper(strconv.FormatInt(millis, 36))

	g.mu.Lock()
	n := g.rand.Int63n(36 * 36 * 36 * 36)
	g.mu.Unlock()

	suffix := strings.ToUpper(strconv.FormatInt(n, 36))
	for len(suffix) < 4 {
		suffix = "0" + suffix
	}

	return fmt.Sprintf("%s-%s-%s", prefix, ts, suffix)
}
