package preprocess

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Epsilon floors every denominator in the normalization path. It must match
// the value the model was trained with; changing it silently shifts the
// input distribution the model sees.
const Epsilon = 1e-8

// ThetaRefDegrees is the nominal incidence angle the cosine-squared
// radiometric correction is referenced to.
const ThetaRefDegrees = 35.0

// Standardize returns a zero-mean, unit-variance copy of the band. The
// statistics are computed per tile, so the operation depends only on the
// tile's own values. Epsilon is added to the variance before the square
// root, so a constant-valued band comes back all zero instead of NaN.
func Standardize(band []float64) []float64 {
	mean := stat.Mean(band, nil)

	var variance float64
	for _, v := range band {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(band))

	denom := math.Sqrt(variance + Epsilon)
	out := make([]float64, len(band))
	for i, v := range band {
		out[i] = (v - mean) / denom
	}
	return out
}

// StandardizeWithIncidence applies a cosine-squared radiometric correction
// referenced to ThetaRefDegrees before standardizing. The incidence grid is
// in degrees on disk and converted to radians here. Both grids must be
// co-registered and of equal length.
func StandardizeWithIncidence(band, incidenceDeg []float64) []float64 {
	cosRef := math.Cos(ThetaRefDegrees * math.Pi / 180.0)
	cos2Ref := cosRef * cosRef

	corrected := make([]float64, len(band))
	for i, v := range band {
		cosInc := math.Cos(incidenceDeg[i] * math.Pi / 180.0)
		corrected[i] = v * cos2Ref / (cosInc*cosInc + Epsilon)
	}
	return Standardize(corrected)
}
