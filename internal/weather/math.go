package weather

import "math"

func sinAt(x, wave, phase float64) float64 {
	if wave == 0 {
		return 0
	}
	return math.Sin(x/wave + phase)
}

func abs(v float64) float64 { return math.Abs(v) }
