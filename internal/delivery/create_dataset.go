package delivery

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/sar-guardian/sar-landcover-poc/internal/classes"
	"github.com/sar-guardian/sar-landcover-poc/internal/dataset"
	"github.com/sar-guardian/sar-landcover-poc/internal/raster"
)

// CreateTrainingDataset materializes augmented copies of labeled tiles into
// outDir/vh, outDir/vv and outDir/label. Augmentation runs on raw
// amplitudes; despeckling and normalization stay in the training pipeline so
// the materialized tiles remain preprocessing-agnostic. Labels are written
// as dense indices with the ignore sentinel as nodata. Validation tiles must
// never pass through here: the training/validation split happens before
// this stage.
func CreateTrainingDataset(vhDir, vvDir, labelDir, outDir string, copies int, cfg dataset.AugmentConfig, mapping *classes.Mapping) error {
	if copies < 1 {
		copies = 1
	}

	col, err := dataset.Assemble(vhDir, vvDir, "", labelDir)
	if err != nil {
		return err
	}
	if !col.HasLabels {
		return fmt.Errorf("training dataset creation requires a label directory")
	}

	for _, sub := range []string{"vh", "vv", "label"} {
		if err := os.MkdirAll(filepath.Join(outDir, sub), 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	target := len(col.Tiles) * copies
	progressBar := progressbar.Default(int64(target), "Creating training dataset")

	written := 0
	for _, tp := range col.Tiles {
		for copyIdx := 0; copyIdx < copies; copyIdx++ {
			sample, err := dataset.LoadRawSample(tp, mapping)
			if err != nil {
				return err
			}

			dataset.Augment(sample, cfg, rng)

			stem := strings.TrimSuffix(tp.Name, filepath.Ext(tp.Name))
			name := fmt.Sprintf("%s_aug%02d.tif", stem, copyIdx)

			if err := raster.WriteFloat32(filepath.Join(outDir, "vh", name), sample.VH, sample.Width, sample.Height, sample.Ref); err != nil {
				return err
			}
			if err := raster.WriteFloat32(filepath.Join(outDir, "vv", name), sample.VV, sample.Width, sample.Height, sample.Ref); err != nil {
				return err
			}

			labelGrid := make([]int16, len(sample.Labels))
			for i, idx := range sample.Labels {
				labelGrid[i] = int16(idx)
			}
			if err := raster.WriteInt16(filepath.Join(outDir, "label", name), labelGrid, sample.Width, sample.Height, sample.Ref, classes.IgnoreIndex); err != nil {
				return err
			}

			written++
			progressBar.Add(1)
		}
	}
	progressBar.Finish()

	fmt.Printf("Materialized %d augmented tiles into %s\n", written, outDir)
	return nil
}
