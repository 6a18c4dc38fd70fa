package dataset

import (
	"fmt"

	"github.com/sar-guardian/sar-landcover-poc/internal/classes"
	"github.com/sar-guardian/sar-landcover-poc/internal/preprocess"
	"github.com/sar-guardian/sar-landcover-poc/internal/raster"
)

// TilePaths groups the co-registered rasters of one geographic tile. Angle
// and Label are empty when the corresponding channel is not in use.
type TilePaths struct {
	Name  string
	VH    string
	VV    string
	Angle string
	Label string
}

// Collection is an ordered set of aligned tiles.
type Collection struct {
	Tiles     []TilePaths
	UseAngle  bool
	HasLabels bool
}

// Assemble pairs the tiles of the VH, VV and optional angle and label
// directories into an aligned collection. Tiles are paired by sorted
// filename position, so the filename stem convention must sort every channel
// of one geographic extent to the same index. A cardinality mismatch between
// the directories is a fatal precondition failure raised before any tile is
// opened.
func Assemble(vhDir, vvDir, angleDir, labelDir string) (*Collection, error) {
	vhNames, err := raster.ListTiles(vhDir)
	if err != nil {
		return nil, err
	}
	vvNames, err := raster.ListTiles(vvDir)
	if err != nil {
		return nil, err
	}
	if len(vhNames) == 0 {
		return nil, fmt.Errorf("no raster tiles found in %s", vhDir)
	}
	if len(vhNames) != len(vvNames) {
		return nil, fmt.Errorf("tile cardinality mismatch: %d VH tiles but %d VV tiles", len(vhNames), len(vvNames))
	}

	col := &Collection{
		UseAngle:  angleDir != "",
		HasLabels: labelDir != "",
	}

	var angleNames, labelNames []string
	if col.UseAngle {
		angleNames, err = raster.ListTiles(angleDir)
		if err != nil {
			return nil, err
		}
		if len(angleNames) != len(vhNames) {
			return nil, fmt.Errorf("tile cardinality mismatch: %d VH tiles but %d incidence-angle tiles", len(vhNames), len(angleNames))
		}
	}
	if col.HasLabels {
		labelNames, err = raster.ListTiles(labelDir)
		if err != nil {
			return nil, err
		}
		if len(labelNames) != len(vhNames) {
			return nil, fmt.Errorf("tile cardinality mismatch: %d VH tiles but %d label tiles", len(vhNames), len(labelNames))
		}
	}

	for i, name := range vhNames {
		tp := TilePaths{
			Name: name,
			VH:   vhDir + "/" + name,
			VV:   vvDir + "/" + vvNames[i],
		}
		if col.UseAngle {
			tp.Angle = angleDir + "/" + angleNames[i]
		}
		if col.HasLabels {
			tp.Label = labelDir + "/" + labelNames[i]
		}
		col.Tiles = append(col.Tiles, tp)
	}
	return col, nil
}

// Sample is one model input: two stacked channels (VH then VV), the dense
// label grid when labels are present, and the spatial metadata captured from
// the VH tile, which is the canonical georeferencing source for any output
// derived from this sample.
type Sample struct {
	Name   string
	VH     []float64
	VV     []float64
	Labels []int
	Width  int
	Height int
	Ref    raster.Georef
}

// LoadSample reads one tile and runs the full preprocessing pipeline the
// descriptor prescribes: optional Refined Lee despeckling per channel, then
// plain or incidence-corrected standardization. The exact same path runs at
// training and inference time.
func LoadSample(tp TilePaths, desc preprocess.Descriptor, mapping *classes.Mapping) (*Sample, error) {
	s, angle, err := loadRaw(tp, desc.Normalization == preprocess.NormalizationIncidence, mapping)
	if err != nil {
		return nil, err
	}

	if desc.SpeckleFilter {
		s.VH = preprocess.RefinedLee(s.VH, s.Width, s.Height, desc.WindowSize, desc.Looks)
		s.VV = preprocess.RefinedLee(s.VV, s.Width, s.Height, desc.WindowSize, desc.Looks)
	}

	switch desc.Normalization {
	case preprocess.NormalizationIncidence:
		s.VH = preprocess.StandardizeWithIncidence(s.VH, angle)
		s.VV = preprocess.StandardizeWithIncidence(s.VV, angle)
	default:
		s.VH = preprocess.Standardize(s.VH)
		s.VV = preprocess.Standardize(s.VV)
	}
	return s, nil
}

// LoadRawSample reads one tile without despeckling or normalization. The
// dataset materialization flow augments raw amplitudes and leaves the
// radiometric pipeline to training time.
func LoadRawSample(tp TilePaths, mapping *classes.Mapping) (*Sample, error) {
	s, _, err := loadRaw(tp, false, mapping)
	return s, err
}

func loadRaw(tp TilePaths, needAngle bool, mapping *classes.Mapping) (*Sample, []float64, error) {
	vh, err := raster.ReadGrid(tp.VH)
	if err != nil {
		return nil, nil, err
	}
	vv, err := raster.ReadGrid(tp.VV)
	if err != nil {
		return nil, nil, err
	}
	if vv.Width != vh.Width || vv.Height != vh.Height {
		return nil, nil, fmt.Errorf("tile %s: VV extent %dx%d does not match VH extent %dx%d",
			tp.Name, vv.Width, vv.Height, vh.Width, vh.Height)
	}

	s := &Sample{
		Name:   tp.Name,
		VH:     vh.Data,
		VV:     vv.Data,
		Width:  vh.Width,
		Height: vh.Height,
		Ref:    vh.Ref,
	}

	var angle []float64
	if needAngle {
		if tp.Angle == "" {
			return nil, nil, fmt.Errorf("tile %s: incidence-angle normalization requested but no angle tile available", tp.Name)
		}
		ag, err := raster.ReadGrid(tp.Angle)
		if err != nil {
			return nil, nil, err
		}
		if ag.Width != vh.Width || ag.Height != vh.Height {
			return nil, nil, fmt.Errorf("tile %s: incidence-angle extent %dx%d does not match VH extent %dx%d",
				tp.Name, ag.Width, ag.Height, vh.Width, vh.Height)
		}
		angle = ag.Data
	}

	if tp.Label != "" {
		lg, err := raster.ReadGrid(tp.Label)
		if err != nil {
			return nil, nil, err
		}
		if lg.Width != vh.Width || lg.Height != vh.Height {
			return nil, nil, fmt.Errorf("tile %s: label extent %dx%d does not match VH extent %dx%d",
				tp.Name, lg.Width, lg.Height, vh.Width, vh.Height)
		}
		codes := make([]int16, len(lg.Data))
		for i, v := range lg.Data {
			codes[i] = int16(v)
		}
		s.Labels = mapping.ApplyForward(codes)
	}

	return s, angle, nil
}
