package preprocess

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefinedLee(t *testing.T) {
	t.Parallel()

	t.Run("constant band is preserved", func(t *testing.T) {
		t.Parallel()

		const w, h = 12, 9
		band := make([]float64, w*h)
		for i := range band {
			band[i] = 0.3
		}

		out := RefinedLee(band, w, h, DefaultWindowSize, DefaultLooks)
		require.Len(t, out, w*h)
		for _, v := range out {
			assert.InDelta(t, 0.3, v, 1e-6)
		}
	})

	t.Run("no NaN on zero band", func(t *testing.T) {
		t.Parallel()

		const w, h = 8, 8
		band := make([]float64, w*h)

		out := RefinedLee(band, w, h, DefaultWindowSize, DefaultLooks)
		for _, v := range out {
			require.False(t, math.IsNaN(v))
			assert.Equal(t, 0.0, v)
		}
	})

	t.Run("preserves a strong point target", func(t *testing.T) {
		t.Parallel()

		// a bright scatterer drives the coefficient of variation far above
		// the speckle floor, so the adaptive weight saturates at 1 and the
		// observed value survives
		const w, h = 15, 15
		band := make([]float64, w*h)
		for i := range band {
			band[i] = 0.2
		}
		center := (h/2)*w + w/2
		band[center] = 5.0

		out := RefinedLee(band, w, h, DefaultWindowSize, DefaultLooks)
		assert.InDelta(t, 5.0, out[center], 1e-6)
	})

	t.Run("smooths a homogeneous noisy region", func(t *testing.T) {
		t.Parallel()

		const w, h = 15, 15
		band := make([]float64, w*h)
		for i := range band {
			if i%2 == 0 {
				band[i] = 0.19
			} else {
				band[i] = 0.21
			}
		}

		out := RefinedLee(band, w, h, DefaultWindowSize, DefaultLooks)

		variance := func(vals []float64) float64 {
			var mean float64
			for _, v := range vals {
				mean += v
			}
			mean /= float64(len(vals))
			var acc float64
			for _, v := range vals {
				acc += (v - mean) * (v - mean)
			}
			return acc / float64(len(vals))
		}
		assert.Less(t, variance(out), variance(band))
	})

	t.Run("output stays non-negative", func(t *testing.T) {
		t.Parallel()

		const w, h = 10, 10
		band := make([]float64, w*h)
		for i := range band {
			band[i] = float64(i%7) * 0.13
		}

		out := RefinedLee(band, w, h, 5, 4.0)
		for _, v := range out {
			assert.GreaterOrEqual(t, v, 0.0)
		}
	})

	t.Run("degenerate parameters fall back to defaults", func(t *testing.T) {
		t.Parallel()

		const w, h = 6, 6
		band := make([]float64, w*h)
		for i := range band {
			band[i] = 0.4
		}

		out := RefinedLee(band, w, h, 0, -1)
		for _, v := range out {
			assert.InDelta(t, 0.4, v, 1e-6)
		}
	})
}

func TestReflect(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, reflect(-1, 10))
	assert.Equal(t, 1, reflect(-2, 10))
	assert.Equal(t, 9, reflect(10, 10))
	assert.Equal(t, 8, reflect(11, 10))
	assert.Equal(t, 5, reflect(5, 10))
}
