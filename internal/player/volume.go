package player

import "math"

// silentVolume is the beep gain used for level 0, low enough to be inaudible.
const silentVolume = -10

func clampLevel(level float64) float64 {
	return max(0, min(level, 1))
}

// levelToVolume maps a linear 0..1 level onto beep's base-2 gain, where 0
// leaves the signal unchanged and each -1 halves it.
func levelToVolume(level float64) float64 {
	switch level = clampLevel(level); level {
	case 0:
		return silentVolume
	case 1:
		return 0
	}
	return math.Log2(level)
}
