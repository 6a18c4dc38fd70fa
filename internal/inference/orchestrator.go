package inference

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gammazero/workerpool"
	"github.com/schollz/progressbar/v3"

	"github.com/sar-guardian/sar-landcover-poc/internal/classes"
	"github.com/sar-guardian/sar-landcover-poc/internal/dataset"
	"github.com/sar-guardian/sar-landcover-poc/internal/ml"
	"github.com/sar-guardian/sar-landcover-poc/internal/preprocess"
	"github.com/sar-guardian/sar-landcover-poc/internal/raster"
	"github.com/sar-guardian/sar-landcover-poc/internal/utils"
)

// Orchestrator drives the per-tile pipeline: load, preprocess, infer, remap,
// write. Tiles are independent of each other, so the batch path fans them
// out over a worker pool; each tile writes its own output file.
type Orchestrator struct {
	Desc    preprocess.Descriptor
	Mapping *classes.Mapping
	Model   ml.Segmenter
	OutDir  string
	Workers int
}

func New(desc preprocess.Descriptor, mapping *classes.Mapping, model ml.Segmenter, outDir string) (*Orchestrator, error) {
	if err := desc.Validate(); err != nil {
		return nil, err
	}
	if err := mapping.ValidateClassCount(desc.Classes); err != nil {
		return nil, err
	}
	return &Orchestrator{
		Desc:    desc,
		Mapping: mapping,
		Model:   model,
		OutDir:  outDir,
		Workers: 4,
	}, nil
}

// Result describes one written prediction tile.
type Result struct {
	Name       string
	OutputPath string
	Width      int
	Height     int
	Ref        raster.Georef
}

// OutputName derives the prediction filename from the input tile name.
func OutputName(tileName string) string {
	stem := strings.TrimSuffix(tileName, filepath.Ext(tileName))
	return stem + "_landcover.tif"
}

// ProcessTile runs the full pipeline for one tile and writes the prediction
// raster. The VH tile's transform and projection are carried through to the
// output untouched.
func (o *Orchestrator) ProcessTile(ctx context.Context, tp dataset.TilePaths) (*Result, error) {
	var sample *dataset.Sample
	var err error
	utils.ExecuteWithGDALLock(func() {
		sample, err = dataset.LoadSample(tp, o.Desc, o.Mapping)
	})
	if err != nil {
		return nil, err
	}

	logits, numClasses, err := o.Model.Segment(ctx, sample.VH, sample.VV, sample.Width, sample.Height)
	if err != nil {
		return nil, fmt.Errorf("tile %s: %w", tp.Name, err)
	}
	if err := o.Mapping.ValidateClassCount(numClasses); err != nil {
		return nil, err
	}

	prediction := ml.Argmax(logits, numClasses, sample.Width, sample.Height)
	codes := o.Mapping.ApplyReverse(prediction)

	outPath := filepath.Join(o.OutDir, OutputName(tp.Name))
	utils.ExecuteWithGDALLock(func() {
		err = raster.WriteInt16(outPath, codes, sample.Width, sample.Height, sample.Ref, classes.NodataCode)
	})
	if err != nil {
		return nil, err
	}

	return &Result{
		Name:       tp.Name,
		OutputPath: outPath,
		Width:      sample.Width,
		Height:     sample.Height,
		Ref:        sample.Ref,
	}, nil
}

// ProcessBatch runs the pipeline over every tile of the aligned directories.
// Cardinality across VH/VV/angle is verified before the first tile is
// touched; a tile that fails after that aborts the batch, leaving the tiles
// already written intact.
func (o *Orchestrator) ProcessBatch(ctx context.Context, vhDir, vvDir, angleDir string) ([]Result, error) {
	if o.Desc.Normalization == preprocess.NormalizationIncidence && angleDir == "" {
		return nil, fmt.Errorf("model variant %s requires an incidence-angle directory", o.Desc.Variant)
	}

	col, err := dataset.Assemble(vhDir, vvDir, angleDir, "")
	if err != nil {
		return nil, err
	}

	fmt.Printf("Running inference over %d tiles with model variant %s\n", len(col.Tiles), o.Desc.Variant)
	progressBar := progressbar.Default(int64(len(col.Tiles)), "Predicting tiles")

	wp := workerpool.New(o.Workers)
	var mu sync.Mutex
	var firstErr error
	results := make([]Result, len(col.Tiles))

	for i, tp := range col.Tiles {
		mu.Lock()
		aborted := firstErr != nil
		mu.Unlock()
		if aborted {
			break
		}

		wp.Submit(func() {
			mu.Lock()
			aborted := firstErr != nil
			mu.Unlock()
			if aborted {
				return
			}

			res, err := o.ProcessTile(ctx, tp)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			results[i] = *res
			progressBar.Add(1)
		})
	}
	wp.StopWait()
	progressBar.Finish()

	if firstErr != nil {
		return nil, fmt.Errorf("batch inference aborted: %w", firstErr)
	}
	return results, nil
}
