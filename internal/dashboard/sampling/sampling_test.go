package sampling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSource_SameSeedSameStream(t *testing.T) {
	a := New(42, StreamSales)
	b := New(42, StreamSales)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Uniform(0, 1), b.Uniform(0, 1))
	}
}

func TestSource_StreamsAreIndependent(t *testing.T) {
	a := New(42, StreamSales)
	b := New(42, StreamInventory)

	same := 0
	for i := 0; i < 100; i++ {
		if a.Uniform(0, 1) == b.Uniform(0, 1) {
			same++
		}
	}
	assert.Less(t, same, 100)
}

func TestSource_Ranges(t *testing.T) {
	s := New(7, StreamEmployees)

	for i := 0; i < 1000; i++ {
		u := s.Uniform(0.9, 1.2)
		assert.GreaterOrEqual(t, u, 0.9)
		assert.Less(t, u, 1.2)

		n := s.IntBetween(19, 61)
		assert.GreaterOrEqual(t, n, 19)
		assert.LessOrEqual(t, n, 61)

		assert.Contains(t, []string{"a", "b"}, s.Pick([]string{"a", "b"}))
	}
}

func TestSource_Weighted(t *testing.T) {
	s := New(1, StreamSales)
	counts := make([]int, 3)

	for i := 0; i < 10000; i++ {
		counts[s.Weighted([]float64{0.6, 0.4, 0})]++
	}

	assert.Zero(t, counts[2])
	assert.InDelta(t, 6000, counts[0], 400)
}
