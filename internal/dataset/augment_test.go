package dataset

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeSample(width, height int) *Sample {
	n := width * height
	s := &Sample{
		Name:   "tile_0001.tif",
		VH:     make([]float64, n),
		VV:     make([]float64, n),
		Labels: make([]int, n),
		Width:  width,
		Height: height,
	}
	for i := 0; i < n; i++ {
		s.VH[i] = float64(i) / float64(n)
		s.VV[i] = float64(n-i) / float64(n)
		s.Labels[i] = i % 5
	}
	return s
}

func cloneSample(s *Sample) *Sample {
	c := *s
	c.VH = append([]float64(nil), s.VH...)
	c.VV = append([]float64(nil), s.VV...)
	c.Labels = append([]int(nil), s.Labels...)
	return &c
}

func TestAugmentFlip(t *testing.T) {
	t.Parallel()

	t.Run("labels move with channels", func(t *testing.T) {
		t.Parallel()

		s := makeSample(4, 3)
		original := cloneSample(s)

		cfg := AugmentConfig{FlipProb: 1}
		Augment(s, cfg, rand.New(rand.NewPCG(1, 2)))

		for y := 0; y < s.Height; y++ {
			srcRow := (s.Height - 1 - y) * s.Width
			dstRow := y * s.Width
			for x := 0; x < s.Width; x++ {
				assert.Equal(t, original.VH[srcRow+x], s.VH[dstRow+x])
				assert.Equal(t, original.VV[srcRow+x], s.VV[dstRow+x])
				assert.Equal(t, original.Labels[srcRow+x], s.Labels[dstRow+x])
			}
		}
	})

	t.Run("double flip restores the sample", func(t *testing.T) {
		t.Parallel()

		s := makeSample(5, 4)
		original := cloneSample(s)

		cfg := AugmentConfig{FlipProb: 1}
		rng := rand.New(rand.NewPCG(1, 2))
		Augment(s, cfg, rng)
		Augment(s, cfg, rng)

		assert.Equal(t, original.VH, s.VH)
		assert.Equal(t, original.VV, s.VV)
		assert.Equal(t, original.Labels, s.Labels)
	})

	t.Run("zero probability leaves sample untouched", func(t *testing.T) {
		t.Parallel()

		s := makeSample(4, 4)
		original := cloneSample(s)

		Augment(s, AugmentConfig{}, rand.New(rand.NewPCG(1, 2)))

		assert.Equal(t, original.VH, s.VH)
		assert.Equal(t, original.VV, s.VV)
		assert.Equal(t, original.Labels, s.Labels)
	})
}

func TestAugmentNoise(t *testing.T) {
	t.Parallel()

	s := makeSample(8, 8)
	original := cloneSample(s)

	cfg := AugmentConfig{NoiseProb: 1, NoiseStdDev: 0.02}
	Augment(s, cfg, rand.New(rand.NewPCG(3, 4)))

	assert.NotEqual(t, original.VH, s.VH)
	assert.NotEqual(t, original.VV, s.VV)
	assert.Equal(t, original.Labels, s.Labels)

	// perturbations stay near the configured scale
	for i := range s.VH {
		assert.InDelta(t, original.VH[i], s.VH[i], 0.2)
	}
}

func TestAugmentSpeckle(t *testing.T) {
	t.Parallel()

	s := makeSample(8, 8)
	original := cloneSample(s)

	cfg := AugmentConfig{SpeckleProb: 1}
	Augment(s, cfg, rand.New(rand.NewPCG(5, 6)))

	assert.NotEqual(t, original.VH, s.VH)
	assert.Equal(t, original.Labels, s.Labels)

	// multiplicative speckle cannot flip signs
	for _, v := range s.VH {
		assert.GreaterOrEqual(t, v, 0.0)
	}
}

func TestAugmentContrast(t *testing.T) {
	t.Parallel()

	s := makeSample(6, 6)

	cfg := AugmentConfig{ContrastProb: 1, ContrastMin: 3.0, ContrastMax: 3.0}
	Augment(s, cfg, rand.New(rand.NewPCG(7, 8)))

	// aggressive contrast stretch clamps at zero instead of going negative
	for _, v := range s.VH {
		assert.GreaterOrEqual(t, v, 0.0)
	}
	for _, v := range s.VV {
		assert.GreaterOrEqual(t, v, 0.0)
	}
}

func TestAugmentBrightness(t *testing.T) {
	t.Parallel()

	s := makeSample(6, 6)

	cfg := AugmentConfig{BrightnessProb: 1, BrightnessMin: 5.0, BrightnessMax: 5.0}
	Augment(s, cfg, rand.New(rand.NewPCG(9, 10)))

	for _, v := range s.VH {
		require.GreaterOrEqual(t, v, 0.0)
		require.LessOrEqual(t, v, 1.0)
	}
}

func TestDefaultAugmentConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultAugmentConfig()
	assert.Equal(t, 0.5, cfg.FlipProb)
	assert.Greater(t, cfg.NoiseStdDev, 0.0)
	assert.Less(t, cfg.ContrastMin, cfg.ContrastMax)
	assert.Less(t, cfg.BrightnessMin, cfg.BrightnessMax)
}
