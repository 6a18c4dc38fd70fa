package raster

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/airbusgeo/godal"
)

// Georef is the spatial metadata of a tile: affine transform plus projection
// WKT. It is captured verbatim from a source tile and copied unchanged to any
// raster derived from it.
type Georef struct {
	Transform  [6]float64
	Projection string
}

// Grid is a single-band tile read into memory. Pixel values are held as
// float64 regardless of the on-disk type.
type Grid struct {
	Data   []float64
	Width  int
	Height int
	Ref    Georef
}

func (g *Grid) At(x, y int) float64 {
	return g.Data[y*g.Width+x]
}

// ReadGrid reads band 1 of a georeferenced raster into a Grid.
func ReadGrid(path string) (*Grid, error) {
	ds, err := godal.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open raster %s: %w", path, err)
	}
	defer ds.Close()

	width := ds.Structure().SizeX
	height := ds.Structure().SizeY

	geoTransform, err := ds.GeoTransform()
	if err != nil {
		return nil, fmt.Errorf("failed to get GeoTransform of %s: %w", path, err)
	}

	bands := ds.Bands()
	if len(bands) == 0 {
		return nil, fmt.Errorf("raster %s has no bands", path)
	}

	data := make([]float64, width*height)
	if err := bands[0].Read(0, 0, data, width, height); err != nil {
		return nil, fmt.Errorf("failed to read raster data from %s: %w", path, err)
	}

	return &Grid{
		Data:   data,
		Width:  width,
		Height: height,
		Ref: Georef{
			Transform:  geoTransform,
			Projection: ds.Projection(),
		},
	}, nil
}

// WriteInt16 writes a single-band Int16 GTiff with LZW compression, carrying
// the given georeferencing and nodata value. The file is written to a
// temporary path and renamed into place so an aborted run never leaves a
// truncated tile behind.
func WriteInt16(path string, data []int16, width, height int, ref Georef, nodata int16) error {
	tmpPath := path + ".tmp"

	if err := writeInt16(tmpPath, data, width, height, ref, nodata); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp raster into place: %w", err)
	}
	return nil
}

func writeInt16(path string, data []int16, width, height int, ref Georef, nodata int16) error {
	if len(data) != width*height {
		return fmt.Errorf("raster data size mismatch: expected %d, got %d", width*height, len(data))
	}

	ds, err := godal.Create(godal.GTiff, path, 1, godal.Int16, width, height,
		godal.CreationOption("COMPRESS=LZW"))
	if err != nil {
		return fmt.Errorf("failed to create raster %s: %w", path, err)
	}

	if err := ds.SetGeoTransform(ref.Transform); err != nil {
		ds.Close()
		return fmt.Errorf("failed to set GeoTransform on %s: %w", path, err)
	}
	if ref.Projection != "" {
		if err := ds.SetProjection(ref.Projection); err != nil {
			ds.Close()
			return fmt.Errorf("failed to set projection on %s: %w", path, err)
		}
	}

	band := ds.Bands()[0]
	if err := band.SetNoData(float64(nodata)); err != nil {
		ds.Close()
		return fmt.Errorf("failed to set nodata on %s: %w", path, err)
	}
	if err := band.Write(0, 0, data, width, height); err != nil {
		ds.Close()
		return fmt.Errorf("failed to write raster data to %s: %w", path, err)
	}

	return ds.Close()
}

// WriteFloat32 writes a single-band Float32 GTiff with LZW compression.
func WriteFloat32(path string, data []float64, width, height int, ref Georef) error {
	if len(data) != width*height {
		return fmt.Errorf("raster data size mismatch: expected %d, got %d", width*height, len(data))
	}

	buf := make([]float32, len(data))
	for i, v := range data {
		buf[i] = float32(v)
	}

	ds, err := godal.Create(godal.GTiff, path, 1, godal.Float32, width, height,
		godal.CreationOption("COMPRESS=LZW"))
	if err != nil {
		return fmt.Errorf("failed to create raster %s: %w", path, err)
	}

	if err := ds.SetGeoTransform(ref.Transform); err != nil {
		ds.Close()
		return fmt.Errorf("failed to set GeoTransform on %s: %w", path, err)
	}
	if ref.Projection != "" {
		if err := ds.SetProjection(ref.Projection); err != nil {
			ds.Close()
			return fmt.Errorf("failed to set projection on %s: %w", path, err)
		}
	}

	if err := ds.Bands()[0].Write(0, 0, buf, width, height); err != nil {
		ds.Close()
		return fmt.Errorf("failed to write raster data to %s: %w", path, err)
	}

	return ds.Close()
}

// ListTiles returns the names of the raster tiles in a directory, sorted by
// filename. The sort order is the tile alignment mechanism across channel
// directories, so it must be identical for every directory of a tile set.
func ListTiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read tile directory %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext == ".tif" || ext == ".tiff" {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
