package dataset

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// AugmentConfig controls the SAR-safe randomized perturbations applied to
// training samples. Horizontal flips are deliberately absent: mirroring the
// range direction breaks the physical sensor-looking geometry of the scene.
type AugmentConfig struct {
	FlipProb       float64
	NoiseProb      float64
	NoiseStdDev    float64
	SpeckleProb    float64
	ContrastProb   float64
	ContrastMin    float64
	ContrastMax    float64
	BrightnessProb float64
	BrightnessMin  float64
	BrightnessMax  float64
}

func DefaultAugmentConfig() AugmentConfig {
	return AugmentConfig{
		FlipProb:       0.5,
		NoiseProb:      0.5,
		NoiseStdDev:    0.02,
		SpeckleProb:    0.3,
		ContrastProb:   0.3,
		ContrastMin:    0.8,
		ContrastMax:    1.2,
		BrightnessProb: 0.3,
		BrightnessMin:  0.9,
		BrightnessMax:  1.1,
	}
}

// Augment perturbs one sample in place. Every randomized choice is drawn
// independently per call, so repeated epochs over the same tile see fresh
// perturbations. Labels only move with the geometric transform.
func Augment(s *Sample, cfg AugmentConfig, rng *rand.Rand) {
	if rng.Float64() < cfg.FlipProb {
		flipVertical(s)
	}

	if rng.Float64() < cfg.NoiseProb {
		// receiver thermal noise model
		noise := distuv.Normal{Mu: 0, Sigma: cfg.NoiseStdDev, Src: rng}
		for i := range s.VH {
			s.VH[i] += noise.Rand()
			s.VV[i] += noise.Rand()
		}
	}

	if rng.Float64() < cfg.SpeckleProb {
		// single-look multiplicative speckle, Gamma with shape 1 and mean 1
		speckle := distuv.Gamma{Alpha: 1, Beta: 1, Src: rng}
		for i := range s.VH {
			s.VH[i] *= speckle.Rand()
			s.VV[i] *= speckle.Rand()
		}
	}

	if rng.Float64() < cfg.ContrastProb {
		adjustContrast(s.VH, uniform(rng, cfg.ContrastMin, cfg.ContrastMax))
		adjustContrast(s.VV, uniform(rng, cfg.ContrastMin, cfg.ContrastMax))
	}

	if rng.Float64() < cfg.BrightnessProb {
		factor := uniform(rng, cfg.BrightnessMin, cfg.BrightnessMax)
		adjustBrightness(s.VH, factor)
		adjustBrightness(s.VV, factor)
	}
}

func uniform(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}

// flipVertical mirrors the sample top to bottom. Along-track flips keep the
// left/right looking geometry intact.
func flipVertical(s *Sample) {
	for y := 0; y < s.Height/2; y++ {
		top := y * s.Width
		bottom := (s.Height - 1 - y) * s.Width
		for x := 0; x < s.Width; x++ {
			s.VH[top+x], s.VH[bottom+x] = s.VH[bottom+x], s.VH[top+x]
			s.VV[top+x], s.VV[bottom+x] = s.VV[bottom+x], s.VV[top+x]
			if s.Labels != nil {
				s.Labels[top+x], s.Labels[bottom+x] = s.Labels[bottom+x], s.Labels[top+x]
			}
		}
	}
}

// adjustContrast scales a channel about its own mean. Radar amplitude can
// not go negative, so the result is clamped at zero.
func adjustContrast(channel []float64, factor float64) {
	mean := stat.Mean(channel, nil)
	for i, v := range channel {
		v = mean + (v-mean)*factor
		if v < 0 {
			v = 0
		}
		channel[i] = v
	}
}

// adjustBrightness scales a channel and clamps it to [0, 1].
func adjustBrightness(channel []float64, factor float64) {
	for i, v := range channel {
		v *= factor
		if v < 0 {
			v = 0
		} else if v > 1 {
			v = 1
		}
		channel[i] = v
	}
}
