package inference

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sar-guardian/sar-landcover-poc/internal/classes"
	"github.com/sar-guardian/sar-landcover-poc/internal/preprocess"
)

type stubSegmenter struct {
	numClasses int
}

func (s *stubSegmenter) Segment(_ context.Context, vh, _ []float64, width, height int) ([]float32, int, error) {
	return make([]float32, s.numClasses*width*height), s.numClasses, nil
}

func newTestOrchestrator(t *testing.T) *Orchestrator {
	t.Helper()
	mapping, err := classes.ForVariant("landcover10")
	require.NoError(t, err)

	o, err := New(preprocess.DefaultDescriptors["landcover10"], mapping, &stubSegmenter{numClasses: 10}, t.TempDir())
	require.NoError(t, err)
	return o
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("valid configuration", func(t *testing.T) {
		t.Parallel()

		o := newTestOrchestrator(t)
		assert.Equal(t, 4, o.Workers)
	})

	t.Run("invalid descriptor", func(t *testing.T) {
		t.Parallel()

		mapping, err := classes.ForVariant("landcover10")
		require.NoError(t, err)

		desc := preprocess.DefaultDescriptors["landcover10"]
		desc.Normalization = "bogus"
		_, err = New(desc, mapping, &stubSegmenter{numClasses: 10}, t.TempDir())
		assert.Error(t, err)
	})

	t.Run("mapping and descriptor class count disagree", func(t *testing.T) {
		t.Parallel()

		mapping, err := classes.ForVariant("landcover30")
		require.NoError(t, err)

		_, err = New(preprocess.DefaultDescriptors["landcover10"], mapping, &stubSegmenter{numClasses: 10}, t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "classes")
	})
}

func TestOutputName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "tile_0001_landcover.tif", OutputName("tile_0001.tif"))
	assert.Equal(t, "scene_landcover.tif", OutputName("scene.tiff"))
}

func TestProcessBatchPreconditions(t *testing.T) {
	t.Parallel()

	t.Run("incidence variant requires an angle directory", func(t *testing.T) {
		t.Parallel()

		o := newTestOrchestrator(t)
		_, err := o.ProcessBatch(context.Background(), t.TempDir(), t.TempDir(), "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "incidence-angle")
	})

	t.Run("cardinality mismatch aborts before any tile", func(t *testing.T) {
		t.Parallel()

		o := newTestOrchestrator(t)

		root := t.TempDir()
		vhDir := filepath.Join(root, "vh")
		vvDir := filepath.Join(root, "vv")
		angleDir := filepath.Join(root, "angle")
		for _, dir := range []string{vhDir, vvDir, angleDir} {
			require.NoError(t, os.MkdirAll(dir, 0755))
		}
		require.NoError(t, os.WriteFile(filepath.Join(vhDir, "a.tif"), nil, 0644))
		require.NoError(t, os.WriteFile(filepath.Join(vhDir, "b.tif"), nil, 0644))
		require.NoError(t, os.WriteFile(filepath.Join(vvDir, "a.tif"), nil, 0644))
		require.NoError(t, os.WriteFile(filepath.Join(angleDir, "a.tif"), nil, 0644))

		_, err := o.ProcessBatch(context.Background(), vhDir, vvDir, angleDir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "tile cardinality mismatch")

		// nothing was written
		entries, readErr := os.ReadDir(o.OutDir)
		require.NoError(t, readErr)
		assert.Empty(t, entries)
	})
}
