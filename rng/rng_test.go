package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequence(t *testing.T) {
	t.Run("replays values in order and cycles", func(t *testing.T) {
		s := NewSequence(0, 1, 2)
		var got []int
		for i := 0; i < 5; i++ {
			got = append(got, s.Intn(4))
		}
		assert.Equal(t, []int{0, 1, 2, 0, 1}, got)
	})

	t.Run("reduces values modulo n", func(t *testing.T) {
		s := NewSequence(5, -1)
		assert.Equal(t, 1, s.Intn(2))
		assert.Equal(t, 3, s.Intn(4))
	})

	t.Run("empty sequence returns zero", func(t *testing.T) {
		s := NewSequence()
		assert.Equal(t, 0, s.Intn(10))
	})
}

func TestNewIsDeterministic(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}

func TestDerive(t *testing.T) {
	seeds := Derive(7, 8)
	assert.Len(t, seeds, 8)
	assert.Equal(t, seeds, Derive(7, 8))
	assert.NotEqual(t, seeds, Derive(8, 8))
}
