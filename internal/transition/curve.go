package transition

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Curve maps handoff progress (0..1) to a volume fraction (0..1).
type Curve func(progress float64) float64

// Curve names accepted by CurveByName.
const (
	CurveLinear     = "linear"
	CurveEqualPower = "equal-power"
	CurveSpring     = "spring"
)

// Linear ramps volume proportionally to progress.
func Linear(progress float64) float64 {
	return clamp01(progress)
}

// EqualPower ramps along a quarter sine, which sounds even when mixed.
func EqualPower(progress float64) float64 {
	return math.Sin(clamp01(progress) * math.Pi / 2)
}

// Spring returns a curve following a critically damped spring settling on
// full volume over steps frames.
func Spring(steps int) Curve {
	steps = max(steps, 1)
	spring := harmonica.NewSpring(harmonica.FPS(steps), 6.0, 1.0)
	table := make([]float64, steps+1)
	pos, vel := 0.0, 0.0
	for i := 1; i <= steps; i++ {
		pos, vel = spring.Update(pos, vel, 1.0)
		table[i] = clamp01(pos)
	}
	table[steps] = 1
	return func(progress float64) float64 {
		i := int(math.Round(clamp01(progress) * float64(steps)))
		return table[i]
	}
}

// CurveByName returns the named curve, falling back to Linear.
func CurveByName(name string, steps int) Curve {
	switch name {
	case CurveEqualPower:
		return EqualPower
	case CurveSpring:
		return Spring(steps)
	default:
		return Linear
	}
}

func clamp01(v float64) float64 {
	return max(0, min(v, 1))
}
