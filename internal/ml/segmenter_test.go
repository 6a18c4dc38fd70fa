package ml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgmax(t *testing.T) {
	t.Parallel()

	t.Run("picks the strongest class per pixel", func(t *testing.T) {
		t.Parallel()

		// 2x1 tile, 3 classes, class-major planes
		logits := []float32{
			0.1, 0.9, // class 0
			0.8, 0.2, // class 1
			0.3, 0.3, // class 2
		}
		out := Argmax(logits, 3, 2, 1)
		assert.Equal(t, []int{1, 0}, out)
	})

	t.Run("ties resolve to the lowest index", func(t *testing.T) {
		t.Parallel()

		logits := []float32{
			0.5, // class 0
			0.5, // class 1
		}
		out := Argmax(logits, 2, 1, 1)
		assert.Equal(t, []int{0}, out)
	})

	t.Run("single class", func(t *testing.T) {
		t.Parallel()

		logits := []float32{-1.5, 2.0, 0.0}
		out := Argmax(logits, 1, 3, 1)
		assert.Equal(t, []int{0, 0, 0}, out)
	})

	t.Run("negative logits", func(t *testing.T) {
		t.Parallel()

		logits := []float32{
			-3.0, // class 0
			-1.0, // class 1
			-2.0, // class 2
		}
		out := Argmax(logits, 3, 1, 1)
		require.Len(t, out, 1)
		assert.Equal(t, 1, out[0])
	})
}
