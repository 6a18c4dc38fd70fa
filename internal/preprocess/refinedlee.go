package preprocess

import "math"

// Epsilons guarding the Refined Lee weight computation. They are constants
// of the algorithm, not tunables: epsMean guards the coefficient-of-variation
// division for near-zero local means, epsWeight guards the weight
// denominator. Both are far below typical backscatter magnitudes.
const (
	refinedLeeEpsMean   = 1e-10
	refinedLeeEpsWeight = 1e-10
)

// DefaultWindowSize and DefaultLooks are the preprocessing contract of the
// shipped model variants. They are persisted in the descriptor next to the
// weights and must be identical between training and inference.
const (
	DefaultWindowSize = 7
	DefaultLooks      = 5.0
)

// RefinedLee despeckles a single amplitude band. The filter works in the
// power domain: for each pixel it computes local mean and variance over a
// window-sized neighborhood with reflected borders, derives the coefficient
// of variation, and blends the pixel with its local mean by an adaptive
// weight. A weight of 0 replaces the pixel with the local mean (homogeneous
// region), a weight of 1 keeps the observed value (edge). looks is the
// effective number of looks of the sensor.
//
// All statistics are accumulated in float64; the mean_sq - mean² form
// cancels catastrophically in float32 on near-uniform regions.
func RefinedLee(band []float64, width, height, window int, looks float64) []float64 {
	if window < 3 {
		window = DefaultWindowSize
	}
	if window%2 == 0 {
		window++
	}
	if looks <= 0 {
		looks = DefaultLooks
	}

	power := make([]float64, len(band))
	for i, v := range band {
		power[i] = v * v
	}

	half := window / 2
	invLooks := 1.0 / looks
	out := make([]float64, len(band))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var sum, sumSq float64
			for dy := -half; dy <= half; dy++ {
				yy := reflect(y+dy, height)
				row := yy * width
				for dx := -half; dx <= half; dx++ {
					xx := reflect(x+dx, width)
					p := power[row+xx]
					sum += p
					sumSq += p * p
				}
			}

			n := float64(window * window)
			mean := sum / n
			variance := sumSq/n - mean*mean
			if variance < 0 {
				// float rounding on near-uniform windows
				variance = 0
			}

			ci := math.Sqrt(variance) / (mean + refinedLeeEpsMean)
			ci2 := ci * ci
			k := 1 + (ci2-invLooks)/(ci2*(1+invLooks)+refinedLeeEpsWeight)
			if k < 0 {
				k = 0
			} else if k > 1 {
				k = 1
			}

			idx := y*width + x
			filtered := mean + k*(power[idx]-mean)
			out[idx] = math.Sqrt(filtered)
		}
	}
	return out
}

// reflect mirrors an out-of-range index back into [0, n).
func reflect(i, n int) int {
	if i < 0 {
		return -i - 1
	}
	if i >= n {
		return 2*n - i - 1
	}
	return i
}
