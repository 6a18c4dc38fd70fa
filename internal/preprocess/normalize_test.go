package preprocess

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func TestStandardize(t *testing.T) {
	t.Parallel()

	t.Run("zero mean unit variance", func(t *testing.T) {
		t.Parallel()

		band := []float64{0.1, 0.4, 0.2, 0.9, 0.5, 0.3, 0.7, 0.6}
		out := Standardize(band)
		require.Len(t, out, len(band))

		assert.InDelta(t, 0.0, stat.Mean(out, nil), 1e-9)

		var variance float64
		for _, v := range out {
			variance += v * v
		}
		variance /= float64(len(out))
		assert.InDelta(t, 1.0, variance, 1e-4)
	})

	t.Run("constant band yields zeros not NaN", func(t *testing.T) {
		t.Parallel()

		band := []float64{0.42, 0.42, 0.42, 0.42}
		out := Standardize(band)
		for _, v := range out {
			require.False(t, math.IsNaN(v))
			assert.InDelta(t, 0.0, v, 1e-9)
		}
	})

	t.Run("input untouched", func(t *testing.T) {
		t.Parallel()

		band := []float64{0.1, 0.9}
		Standardize(band)
		assert.Equal(t, []float64{0.1, 0.9}, band)
	})
}

func TestStandardizeWithIncidence(t *testing.T) {
	t.Parallel()

	t.Run("reference angle matches plain standardization", func(t *testing.T) {
		t.Parallel()

		band := []float64{0.1, 0.4, 0.2, 0.9}
		incidence := []float64{ThetaRefDegrees, ThetaRefDegrees, ThetaRefDegrees, ThetaRefDegrees}

		withIncidence := StandardizeWithIncidence(band, incidence)
		plain := Standardize(band)

		// at theta_ref the correction factor is ~1 everywhere, and
		// standardization absorbs any uniform scale exactly
		for i := range plain {
			assert.InDelta(t, plain[i], withIncidence[i], 1e-6)
		}
	})

	t.Run("steeper incidence brightens relative to flatter", func(t *testing.T) {
		t.Parallel()

		// identical backscatter observed at two angles must not come out
		// identical after correction
		band := []float64{0.5, 0.5, 0.2, 0.8}
		incidence := []float64{25.0, 45.0, 35.0, 35.0}

		out := StandardizeWithIncidence(band, incidence)
		assert.NotEqual(t, out[0], out[1])
	})
}
