package delivery

import (
	"context"
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/schollz/progressbar/v3"

	"github.com/sar-guardian/sar-landcover-poc/internal/classes"
	"github.com/sar-guardian/sar-landcover-poc/internal/dataset"
	"github.com/sar-guardian/sar-landcover-poc/internal/metrics"
	"github.com/sar-guardian/sar-landcover-poc/internal/ml"
	"github.com/sar-guardian/sar-landcover-poc/internal/notification"
	"github.com/sar-guardian/sar-landcover-poc/internal/preprocess"
)

// ClassReport is one row of the per-class evaluation CSV.
type ClassReport struct {
	Index   int     `csv:"index"`
	Code    int16   `csv:"code"`
	IoU     float64 `csv:"iou"`
	Present bool    `csv:"present"`
}

// EvaluationSummary aggregates an evaluation run.
type EvaluationSummary struct {
	Tiles         int
	ValidPixels   int64
	PixelAccuracy float64
	MeanIoU       float64
}

// EvaluateModel runs inference over labeled tiles and scores it. Pixels with
// labels outside the mapping table carry the ignore index and never enter
// the metrics; a fully unmapped batch scores 0.0 rather than erroring.
func EvaluateModel(ctx context.Context, desc preprocess.Descriptor, mapping *classes.Mapping, model ml.Segmenter,
	vhDir, vvDir, angleDir, labelDir, reportPath string) (*EvaluationSummary, error) {

	if err := mapping.ValidateClassCount(desc.Classes); err != nil {
		return nil, err
	}
	if desc.Normalization == preprocess.NormalizationIncidence && angleDir == "" {
		return nil, fmt.Errorf("model variant %s requires an incidence-angle directory", desc.Variant)
	}

	col, err := dataset.Assemble(vhDir, vvDir, angleDir, labelDir)
	if err != nil {
		return nil, err
	}
	if !col.HasLabels {
		return nil, fmt.Errorf("evaluation requires a label directory")
	}

	engine := metrics.NewEngine(mapping.Size())
	progressBar := progressbar.Default(int64(len(col.Tiles)), "Evaluating tiles")

	for _, tp := range col.Tiles {
		sample, err := dataset.LoadSample(tp, desc, mapping)
		if err != nil {
			return nil, err
		}

		logits, numClasses, err := model.Segment(ctx, sample.VH, sample.VV, sample.Width, sample.Height)
		if err != nil {
			return nil, fmt.Errorf("tile %s: %w", tp.Name, err)
		}
		if err := mapping.ValidateClassCount(numClasses); err != nil {
			return nil, err
		}

		prediction := ml.Argmax(logits, numClasses, sample.Width, sample.Height)
		if err := engine.Update(prediction, sample.Labels); err != nil {
			return nil, fmt.Errorf("tile %s: %w", tp.Name, err)
		}
		progressBar.Add(1)
	}
	progressBar.Finish()

	summary := &EvaluationSummary{
		Tiles:         len(col.Tiles),
		ValidPixels:   engine.ValidPixels(),
		PixelAccuracy: engine.PixelAccuracy(),
		MeanIoU:       engine.MeanIoU(),
	}

	if reportPath != "" {
		if err := writeClassReport(reportPath, mapping, engine); err != nil {
			return nil, err
		}
	}

	message := fmt.Sprintf("Evaluation of %s finished\nTiles: %d\nValid pixels: %d\nPixel accuracy: %.4f\nMean IoU: %.4f",
		desc.Variant, summary.Tiles, summary.ValidPixels, summary.PixelAccuracy, summary.MeanIoU)
	fmt.Println(message)
	notification.SendDiscordSuccessNotification(message)

	return summary, nil
}

func writeClassReport(path string, mapping *classes.Mapping, engine *metrics.Engine) error {
	ious, present := engine.IoUPerClass()

	var rows []ClassReport
	for i, code := range mapping.Codes() {
		rows = append(rows, ClassReport{
			Index:   i,
			Code:    code,
			IoU:     ious[i],
			Present: present[i],
		})
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating evaluation report: %w", err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("error writing evaluation report: %w", err)
	}
	fmt.Printf("Evaluation report saved to: %s\n", path)
	return nil
}
