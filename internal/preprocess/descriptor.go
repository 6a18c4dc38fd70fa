package preprocess

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Normalization modes.
const (
	NormalizationPlain     = "plain"
	NormalizationIncidence = "incidence"
)

// Descriptor is the preprocessing contract of a trained model variant. It is
// persisted as JSON next to the weights and loaded back at inference so the
// exact training-time pipeline is replayed instead of being re-declared per
// call site.
type Descriptor struct {
	Variant       string  `json:"variant"`
	Normalization string  `json:"normalization"`
	ThetaRefDeg   float64 `json:"theta_ref_deg"`
	Epsilon       float64 `json:"epsilon"`
	SpeckleFilter bool    `json:"speckle_filter"`
	WindowSize    int     `json:"window_size"`
	Looks         float64 `json:"looks"`
	Channels      int     `json:"channels"`
	Classes       int     `json:"classes"`
}

// DefaultDescriptors describes the shipped model variants.
var DefaultDescriptors = map[string]Descriptor{
	"landcover10": {
		Variant:       "landcover10",
		Normalization: NormalizationIncidence,
		ThetaRefDeg:   ThetaRefDegrees,
		Epsilon:       Epsilon,
		SpeckleFilter: true,
		WindowSize:    DefaultWindowSize,
		Looks:         DefaultLooks,
		Channels:      2,
		Classes:       10,
	},
	"landcover30": {
		Variant:       "landcover30",
		Normalization: NormalizationPlain,
		ThetaRefDeg:   ThetaRefDegrees,
		Epsilon:       Epsilon,
		SpeckleFilter: false,
		WindowSize:    DefaultWindowSize,
		Looks:         DefaultLooks,
		Channels:      2,
		Classes:       30,
	},
}

func (d Descriptor) Validate() error {
	switch d.Normalization {
	case NormalizationPlain, NormalizationIncidence:
	default:
		return fmt.Errorf("unknown normalization mode %q", d.Normalization)
	}
	if d.Channels != 2 {
		return fmt.Errorf("descriptor %s declares %d channels, expected 2 (VH, VV)", d.Variant, d.Channels)
	}
	if d.Classes <= 0 {
		return fmt.Errorf("descriptor %s declares %d classes", d.Variant, d.Classes)
	}
	if d.SpeckleFilter {
		if d.WindowSize < 3 || d.WindowSize%2 == 0 {
			return fmt.Errorf("descriptor %s has invalid speckle window %d, need odd >= 3", d.Variant, d.WindowSize)
		}
		if d.Looks <= 0 {
			return fmt.Errorf("descriptor %s has invalid looks %f", d.Variant, d.Looks)
		}
	}
	return nil
}

// DescriptorPathForWeights derives the descriptor location from a weights
// file, e.g. model/landcover10.pt -> model/landcover10.json.
func DescriptorPathForWeights(weightsPath string) string {
	ext := filepath.Ext(weightsPath)
	return strings.TrimSuffix(weightsPath, ext) + ".json"
}

// LoadDescriptor reads and validates a descriptor file.
func LoadDescriptor(path string) (Descriptor, error) {
	var d Descriptor
	data, err := os.ReadFile(path)
	if err != nil {
		return d, fmt.Errorf("failed to read preprocessing descriptor: %w", err)
	}
	if err := json.Unmarshal(data, &d); err != nil {
		return d, fmt.Errorf("failed to parse preprocessing descriptor %s: %w", path, err)
	}
	if err := d.Validate(); err != nil {
		return d, err
	}
	return d, nil
}

// SaveDescriptor writes a descriptor through a temp file and rename.
func SaveDescriptor(path string, d Descriptor) error {
	if err := d.Validate(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal descriptor: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write descriptor: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename descriptor into place: %w", err)
	}
	return nil
}
