package inference

import (
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// WriteFootprintIndex writes a GeoJSON FeatureCollection with one polygon
// per processed tile, in the coordinate space of the tiles' projection. The
// index is a convenience layer for browsing a batch in GIS tooling.
func WriteFootprintIndex(path string, results []Result) error {
	fc := geojson.NewFeatureCollection()

	for _, res := range results {
		t := res.Ref.Transform
		corner := func(col, row float64) orb.Point {
			return orb.Point{
				t[0] + col*t[1] + row*t[2],
				t[3] + col*t[4] + row*t[5],
			}
		}

		w := float64(res.Width)
		h := float64(res.Height)
		ring := orb.Ring{
			corner(0, 0),
			corner(w, 0),
			corner(w, h),
			corner(0, h),
			corner(0, 0),
		}

		feature := geojson.NewFeature(orb.Polygon{ring})
		feature.Properties["tile"] = res.Name
		feature.Properties["prediction"] = res.OutputPath
		fc.Append(feature)
	}

	data, err := fc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal footprint index: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write footprint index: %w", err)
	}
	return nil
}
