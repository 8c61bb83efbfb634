package playlist

// Rand is the random source used for shuffle.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// RandomIndex returns a uniformly chosen index in [0,count) different from
// current. With a single song (or none) it returns current.
func RandomIndex(current, count int, rng Rand) int {
	if count <= 1 {
		return current
	}
	if current < 0 || current >= count {
		return rng.IntN(count)
	}
	// Draw among the count-1 other indices and skip over current.
	i := rng.IntN(count - 1)
	if i >= current {
		i++
	}
	return i
}

// NextIndex returns the index that follows current.
// Shuffle picks a random other index, sequential wraps around.
// With an empty playlist it returns current unchanged; callers must guard.
func NextIndex(current, count int, shuffle bool, rng Rand) int {
	if count <= 0 {
		return current
	}
	if shuffle {
		return RandomIndex(current, count, rng)
	}
	return (current + 1) % count
}

// PreviousIndex returns the index to go back to.
//
// With at least two history entries the most recent one (the current song)
// is discarded and the one beneath it is returned. Otherwise it steps back
// by one, wrapping to the last song.
func PreviousIndex(current, count int, history *History) int {
	if count <= 0 {
		return current
	}
	if history != nil && history.Len() > 1 {
		history.Pop()
		prev, _ := history.Pop()
		if prev >= 0 && prev < count {
			return prev
		}
	}
	prev := current - 1
	if prev < 0 {
		prev = count - 1
	}
	return prev
}
