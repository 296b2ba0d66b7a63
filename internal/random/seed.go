// Package random provides the random sources used by scenario draws and
// mistake rolls.
//
// Production code seeds a math/rand generator from crypto/rand; tests
// inject a Fixed source so every draw is reproducible.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Source is the subset of *rand.Rand the simulation depends on.
type Source interface {
	Intn(n int) int
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// New returns a deterministic generator for seed.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Fixed replays a scripted list of values, each reduced modulo n.
// Once exhausted it keeps returning 0. Every call is counted, scripted
// or not.
type Fixed struct {
	values []int
	calls  int
}

func NewFixed(values ...int) *Fixed {
	return &Fixed{values: values}
}

func (f *Fixed) Intn(n int) int {
	if n <= 0 {
		panic("random: invalid argument to Intn")
	}
	i := f.calls
	f.calls++
	if i >= len(f.values) {
		return 0
	}
	v := f.values[i]
	if v < 0 {
		v = -v
	}
	return v % n
}

// Calls reports how many times Intn has been called.
func (f *Fixed) Calls() int {
	return f.calls
}
