package inference

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sar-guardian/sar-landcover-poc/internal/raster"
)

func TestWriteFootprintIndex(t *testing.T) {
	t.Parallel()

	results := []Result{
		{
			Name:       "tile_0001.tif",
			OutputPath: "/out/tile_0001_landcover.tif",
			Width:      100,
			Height:     50,
			Ref: raster.Georef{
				// origin (500000, 6000000), 10m pixels, north-up
				Transform: [6]float64{500000, 10, 0, 6000000, 0, -10},
			},
		},
	}

	path := filepath.Join(t.TempDir(), "footprints.geojson")
	require.NoError(t, WriteFootprintIndex(path, results))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	fc, err := geojson.UnmarshalFeatureCollection(data)
	require.NoError(t, err)
	require.Len(t, fc.Features, 1)

	feature := fc.Features[0]
	assert.Equal(t, "tile_0001.tif", feature.Properties["tile"])
	assert.Equal(t, "/out/tile_0001_landcover.tif", feature.Properties["prediction"])

	polygon, ok := feature.Geometry.(orb.Polygon)
	require.True(t, ok)
	require.Len(t, polygon, 1)
	require.Len(t, polygon[0], 5)

	assert.Equal(t, orb.Point{500000, 6000000}, polygon[0][0])
	assert.Equal(t, orb.Point{501000, 6000000}, polygon[0][1])
	assert.Equal(t, orb.Point{501000, 5999500}, polygon[0][2])
	assert.Equal(t, orb.Point{500000, 5999500}, polygon[0][3])
	assert.Equal(t, polygon[0][0], polygon[0][4])
}

func TestWriteFootprintIndexEmptyBatch(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "footprints.geojson")
	require.NoError(t, WriteFootprintIndex(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	fc, err := geojson.UnmarshalFeatureCollection(data)
	require.NoError(t, err)
	assert.Empty(t, fc.Features)
}
