package playlist

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

// seqRand returns the given values in order, modulo n.
type seqRand struct {
	vals []int
	pos  int
}

func (r *seqRand) IntN(n int) int {
	v := r.vals[r.pos%len(r.vals)]
	r.pos++
	return v % n
}

func TestNextIndex_Sequential(t *testing.T) {
	tests := []struct {
		name    string
		current int
		count   int
		want    int
	}{
		{"first to second", 0, 3, 1},
		{"middle", 1, 3, 2},
		{"wraps at end", 2, 3, 0},
		{"single song stays", 0, 1, 0},
		{"empty playlist is a no-op", 4, 0, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextIndex(tt.current, tt.count, false, nil)
			if got != tt.want {
				t.Errorf("NextIndex(%d, %d) = %d, want %d", tt.current, tt.count, got, tt.want)
			}
		})
	}
}

func TestNextIndex_SequentialCyclesThroughAll(t *testing.T) {
	for count := 1; count <= 7; count++ {
		seen := make(map[int]bool)
		idx := 0
		for range count {
			assert.False(t, seen[idx], "count=%d: index %d visited twice", count, idx)
			seen[idx] = true
			idx = NextIndex(idx, count, false, nil)
		}
		assert.Len(t, seen, count)
		assert.Equal(t, 0, idx, "count=%d: should be back at the start", count)
	}
}

func TestNextIndex_ShuffleNeverReturnsCurrent(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for count := 2; count <= 6; count++ {
		for current := range count {
			for range 200 {
				got := NextIndex(current, count, true, rng)
				assert.NotEqual(t, current, got)
				assert.GreaterOrEqual(t, got, 0)
				assert.Less(t, got, count)
			}
		}
	}
}

func TestNextIndex_ShuffleSingleSongReturnsCurrent(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	assert.Equal(t, 0, NextIndex(0, 1, true, rng))
}

func TestRandomIndex_SkipsCurrent(t *testing.T) {
	// Draws are taken among count-1 slots; slots at or above current shift up.
	rng := &seqRand{vals: []int{0, 1, 2}}

	assert.Equal(t, 0, RandomIndex(1, 4, rng))
	assert.Equal(t, 2, RandomIndex(1, 4, rng))
	assert.Equal(t, 3, RandomIndex(1, 4, rng))
}

func TestRandomIndex_ReachesEveryOtherIndex(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	seen := make(map[int]bool)
	for range 500 {
		seen[RandomIndex(2, 5, rng)] = true
	}
	assert.Equal(t, map[int]bool{0: true, 1: true, 3: true, 4: true}, seen)
}

func TestPreviousIndex_PopsHistory(t *testing.T) {
	h := NewHistory()
	h.Push(0)
	h.Push(1)
	h.Push(2)

	first := PreviousIndex(3, 5, h)
	second := PreviousIndex(first, 5, h)

	assert.Equal(t, 1, first)
	assert.Equal(t, 0, second)
	assert.Equal(t, 0, h.Len())
}

func TestPreviousIndex_DecrementsWithoutHistory(t *testing.T) {
	tests := []struct {
		name    string
		current int
		count   int
		history []int
		want    int
	}{
		{"empty history", 2, 4, nil, 1},
		{"wraps to last", 0, 4, nil, 3},
		{"single entry is not enough", 2, 4, []int{1}, 1},
		{"empty playlist", 0, 0, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHistory()
			for _, i := range tt.history {
				h.Push(i)
			}
			got := PreviousIndex(tt.current, tt.count, h)
			if got != tt.want {
				t.Errorf("PreviousIndex(%d, %d) = %d, want %d", tt.current, tt.count, got, tt.want)
			}
		})
	}
}
