package render

import (
	"fmt"

	"github.com/fogleman/gg"

	"github.com/sar-guardian/sar-landcover-poc/internal/classes"
	"github.com/sar-guardian/sar-landcover-poc/internal/properties"
	"github.com/sar-guardian/sar-landcover-poc/internal/raster"
)

// RenderPrediction rasterizes a prediction tile into a colorized PNG using
// the land-cover color map. Nodata pixels render black.
func RenderPrediction(predictionPath, outputPath string) error {
	grid, err := raster.ReadGrid(predictionPath)
	if err != nil {
		return err
	}

	dc := gg.NewContext(grid.Width, grid.Height)
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			code := int16(grid.At(x, y))
			if code == classes.NodataCode {
				dc.SetRGB(0, 0, 0)
			} else if c, ok := properties.ColorMap[code]; ok {
				dc.SetRGB(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255)
			} else {
				c := properties.UnknownColor
				dc.SetRGB(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255)
			}
			dc.SetPixel(x, y)
		}
	}

	if err := dc.SavePNG(outputPath); err != nil {
		return fmt.Errorf("failed to save preview image: %v", err)
	}

	fmt.Println("Preview image created successfully at", outputPath)
	return nil
}
