package metrics

import (
	"fmt"

	"github.com/sar-guardian/sar-landcover-poc/internal/classes"
)

// Engine accumulates a confusion matrix over dense class indices. Pixels
// whose label is classes.IgnoreIndex never enter the matrix; predictions
// outside 0..Classes-1 count as valid but always wrong.
type Engine struct {
	Classes   int
	confusion []int64 // Classes x Classes, row = label, col = prediction
	valid     int64
	correct   int64
}

func NewEngine(numClasses int) *Engine {
	return &Engine{
		Classes:   numClasses,
		confusion: make([]int64, numClasses*numClasses),
	}
}

// Update folds one tile's predictions and labels into the running totals.
func (e *Engine) Update(predictions, labels []int) error {
	if len(predictions) != len(labels) {
		return fmt.Errorf("prediction grid has %d pixels but label grid has %d", len(predictions), len(labels))
	}
	for i, label := range labels {
		if label == classes.IgnoreIndex {
			continue
		}
		if label < 0 || label >= e.Classes {
			return fmt.Errorf("label index %d out of range for %d classes", label, e.Classes)
		}
		e.valid++
		pred := predictions[i]
		if pred == label {
			e.correct++
		}
		if pred >= 0 && pred < e.Classes {
			e.confusion[label*e.Classes+pred]++
		}
	}
	return nil
}

// ValidPixels is the number of non-ignored pixels seen so far.
func (e *Engine) ValidPixels() int64 { return e.valid }

// PixelAccuracy is the fraction of valid pixels predicted correctly. With no
// valid pixels at all it is 0.0 by convention, never a division error.
func (e *Engine) PixelAccuracy() float64 {
	if e.valid == 0 {
		return 0.0
	}
	return float64(e.correct) / float64(e.valid)
}

// IoUPerClass returns the intersection-over-union of each class together
// with a presence flag. A class with an empty union (never labeled, never
// predicted) is absent and excluded from the mean.
func (e *Engine) IoUPerClass() ([]float64, []bool) {
	ious := make([]float64, e.Classes)
	present := make([]bool, e.Classes)
	for c := 0; c < e.Classes; c++ {
		var labeled, predicted int64
		for k := 0; k < e.Classes; k++ {
			labeled += e.confusion[c*e.Classes+k]
			predicted += e.confusion[k*e.Classes+c]
		}
		intersection := e.confusion[c*e.Classes+c]
		union := labeled + predicted - intersection
		if union > 0 {
			ious[c] = float64(intersection) / float64(union)
			present[c] = true
		}
	}
	return ious, present
}

// MeanIoU averages IoU over the classes present in the accumulated data.
func (e *Engine) MeanIoU() float64 {
	ious, present := e.IoUPerClass()
	var sum float64
	var count int
	for c, ok := range present {
		if ok {
			sum += ious[c]
			count++
		}
	}
	if count == 0 {
		return 0.0
	}
	return sum / float64(count)
}
