package charge

import (
	"fmt"
	"strconv"
	"strings"
)

// =============================================================================
// ID GENERATOR - Monotonic chg_NNN identifiers
// =============================================================================

// Generator produces unique, monotonically increasing charge IDs of the
// form chg_NNN (zero-padded to at least 3 digits).
//
// The counter never decrements and never reuses a value, including IDs of
// deleted charges, for the lifetime of the generator. It is owned by a
// single store instance and seeded from the loaded collection at
// construction time; it is not safe for multiple processes sharing the
// same storage.
type Generator struct {
	counter     int
	initialized bool
}

// NewGenerator returns a generator seeded from the given existing IDs.
func NewGenerator(existingIDs []string) *Generator {
	g := &Generator{}
	g.Init(existingIDs)
	return g
}

// Init scans the existing IDs, extracts each numeric suffix, and sets the
// counter to the maximum found (0 if none). Non-conforming IDs are ignored.
// Must be called before the first Next call.
func (g *Generator) Init(existingIDs []string) {
	max := 0
	for _, id := range existingIDs {
		suffix, ok := strings.CutPrefix(id, "chg_")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(suffix)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	g.counter = max
	g.initialized = true
}

// Next increments the counter and returns the next ID. Returns
// ErrGeneratorUninitialized if Init has not been called.
func (g *Generator) Next() (string, error) {
	if !g.initialized {
		return "", ErrGeneratorUninitialized
	}
	g.counter++
	return fmt.Sprintf("chg_%03d", g.counter), nil
}
