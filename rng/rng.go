// Package rng provides the random sources used by the environment and the
// agent. Everything that draws random numbers takes a Rand so runs can be
// replayed from a seed or scripted in tests.
package rng

import (
	"golang.org/x/exp/rand"
)

type Rand interface {
	Intn(n int) int
}

// New returns a PCG-backed source seeded with seed.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Derive returns n independent seeds drawn from a source seeded with seed.
func Derive(seed uint64, n int) []uint64 {
	randGen := New(seed)
	seeds := make([]uint64, n)
	for i := range seeds {
		seeds[i] = randGen.Uint64()
	}
	return seeds
}

// Sequence replays a fixed list of values, cycling when exhausted. Each value
// is reduced modulo n, so Sequence{3}.Intn(2) == 1.
type Sequence struct {
	Values []int
	idx    int
}

func NewSequence(values ...int) *Sequence {
	return &Sequence{Values: values}
}

func (s *Sequence) Intn(n int) int {
	if n <= 0 {
		panic("rng: invalid argument to Intn")
	}
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.idx%len(s.Values)]
	s.idx++
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
