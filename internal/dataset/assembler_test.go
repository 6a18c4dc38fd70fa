package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTiles(t *testing.T, dir string, names ...string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}
	return dir
}

func TestAssemble(t *testing.T) {
	t.Parallel()

	t.Run("pairs tiles by sorted position", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		vhDir := writeTiles(t, filepath.Join(root, "vh"), "b_vh.tif", "a_vh.tif")
		vvDir := writeTiles(t, filepath.Join(root, "vv"), "a_vv.tif", "b_vv.tif")

		col, err := Assemble(vhDir, vvDir, "", "")
		require.NoError(t, err)
		require.Len(t, col.Tiles, 2)

		assert.Equal(t, "a_vh.tif", col.Tiles[0].Name)
		assert.Equal(t, filepath.Join(vvDir, "a_vv.tif"), filepath.Clean(col.Tiles[0].VV))
		assert.Equal(t, "b_vh.tif", col.Tiles[1].Name)
		assert.False(t, col.UseAngle)
		assert.False(t, col.HasLabels)
	})

	t.Run("ignores non-raster files", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		vhDir := writeTiles(t, filepath.Join(root, "vh"), "a.tif", "readme.txt", "index.json")
		vvDir := writeTiles(t, filepath.Join(root, "vv"), "a.tif")

		col, err := Assemble(vhDir, vvDir, "", "")
		require.NoError(t, err)
		assert.Len(t, col.Tiles, 1)
	})

	t.Run("cardinality mismatch fails before any tile is opened", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		vhDir := writeTiles(t, filepath.Join(root, "vh"), "a.tif", "b.tif")
		vvDir := writeTiles(t, filepath.Join(root, "vv"), "a.tif")

		_, err := Assemble(vhDir, vvDir, "", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "tile cardinality mismatch")
	})

	t.Run("angle cardinality mismatch", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		vhDir := writeTiles(t, filepath.Join(root, "vh"), "a.tif")
		vvDir := writeTiles(t, filepath.Join(root, "vv"), "a.tif")
		angleDir := writeTiles(t, filepath.Join(root, "angle"))

		_, err := Assemble(vhDir, vvDir, angleDir, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "incidence-angle tiles")
	})

	t.Run("label cardinality mismatch", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		vhDir := writeTiles(t, filepath.Join(root, "vh"), "a.tif")
		vvDir := writeTiles(t, filepath.Join(root, "vv"), "a.tif")
		labelDir := writeTiles(t, filepath.Join(root, "label"), "a.tif", "b.tif")

		_, err := Assemble(vhDir, vvDir, "", labelDir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "label tiles")
	})

	t.Run("empty tile directory", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		vhDir := writeTiles(t, filepath.Join(root, "vh"))
		vvDir := writeTiles(t, filepath.Join(root, "vv"))

		_, err := Assemble(vhDir, vvDir, "", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no raster tiles")
	})

	t.Run("full channel set", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		vhDir := writeTiles(t, filepath.Join(root, "vh"), "a.tif")
		vvDir := writeTiles(t, filepath.Join(root, "vv"), "a.tif")
		angleDir := writeTiles(t, filepath.Join(root, "angle"), "a.tif")
		labelDir := writeTiles(t, filepath.Join(root, "label"), "a.tif")

		col, err := Assemble(vhDir, vvDir, angleDir, labelDir)
		require.NoError(t, err)
		require.Len(t, col.Tiles, 1)

		assert.True(t, col.UseAngle)
		assert.True(t, col.HasLabels)
		assert.NotEmpty(t, col.Tiles[0].Angle)
		assert.NotEmpty(t, col.Tiles[0].Label)
	})
}
