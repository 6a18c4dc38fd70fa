package classes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForVariant(t *testing.T) {
	t.Parallel()

	t.Run("known variants", func(t *testing.T) {
		t.Parallel()

		m10, err := ForVariant("landcover10")
		require.NoError(t, err)
		assert.Equal(t, 10, m10.Size())

		m30, err := ForVariant("landcover30")
		require.NoError(t, err)
		assert.Equal(t, 30, m30.Size())
	})

	t.Run("unknown variant", func(t *testing.T) {
		t.Parallel()

		_, err := ForVariant("landcover99")
		assert.Error(t, err)
	})
}

func TestMappingRoundTrip(t *testing.T) {
	t.Parallel()

	for _, variant := range []string{"landcover10", "landcover30"} {
		t.Run(variant, func(t *testing.T) {
			t.Parallel()

			m, err := ForVariant(variant)
			require.NoError(t, err)

			for i, code := range m.Codes() {
				assert.Equal(t, i, m.Forward(code))
				assert.Equal(t, code, m.Reverse(m.Forward(code)))
			}
		})
	}
}

func TestMappingOrderMatters(t *testing.T) {
	t.Parallel()

	m, err := ForVariant("landcover10")
	require.NoError(t, err)

	// positions are the dense training indices, so the table order is part
	// of the model contract
	assert.Equal(t, int16(11), m.Reverse(0))
	assert.Equal(t, int16(21), m.Reverse(1))
	assert.Equal(t, int16(121), m.Reverse(9))
}

func TestMappingUnmappedValues(t *testing.T) {
	t.Parallel()

	m, err := ForVariant("landcover10")
	require.NoError(t, err)

	t.Run("forward unknown code", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, IgnoreIndex, m.Forward(12))
		assert.Equal(t, IgnoreIndex, m.Forward(0))
		assert.Equal(t, IgnoreIndex, m.Forward(NodataCode))
	})

	t.Run("reverse out of range index", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, NodataCode, m.Reverse(-1))
		assert.Equal(t, NodataCode, m.Reverse(10))
	})
}

func TestNewRejectsDuplicateCodes(t *testing.T) {
	t.Parallel()

	_, err := New("broken", []int16{11, 21, 11})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "twice")
}

func TestApplyForwardAndReverse(t *testing.T) {
	t.Parallel()

	m, err := ForVariant("landcover10")
	require.NoError(t, err)

	labels := []int16{11, 21, 12, 121, -9999}
	indices := m.ApplyForward(labels)
	assert.Equal(t, []int{0, 1, IgnoreIndex, 9, IgnoreIndex}, indices)

	codes := m.ApplyReverse([]int{0, 9, 3, -1, 42})
	assert.Equal(t, []int16{11, 121, 41, NodataCode, NodataCode}, codes)
}

func TestValidateClassCount(t *testing.T) {
	t.Parallel()

	m, err := ForVariant("landcover10")
	require.NoError(t, err)

	assert.NoError(t, m.ValidateClassCount(10))
	assert.Error(t, m.ValidateClassCount(30))
}
