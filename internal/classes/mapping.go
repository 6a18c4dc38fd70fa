package classes

import "fmt"

// IgnoreIndex marks label pixels excluded from loss and metric computation.
const IgnoreIndex = -1

// NodataCode marks output pixels with no valid class. It is distinct from
// every domain land-cover code and doubles as the raster nodata value.
const NodataCode int16 = -9999

// Mapping is the bijection between sparse domain land-cover codes and the
// dense contiguous class indices a model variant was trained with. The
// reverse direction is derived by inversion, never declared separately, so
// the two can not diverge.
type Mapping struct {
	variant string
	codes   []int16
	forward map[int16]int
}

// tables holds one authoritative code list per model variant. Order matters:
// position in the list is the dense training index.
var tables = map[string][]int16{
	"landcover10": {11, 21, 31, 41, 51, 71, 81, 82, 90, 121},
	"landcover30": {
		11, 12, 21, 22, 23, 24, 31, 32, 41, 42,
		43, 51, 52, 61, 71, 72, 73, 74, 81, 82,
		90, 95, 111, 121, 122, 123, 124, 131, 141, 142,
	},
}

// ForVariant returns the mapping table of a model variant.
func ForVariant(variant string) (*Mapping, error) {
	codes, ok := tables[variant]
	if !ok {
		return nil, fmt.Errorf("no class mapping table for model variant %q", variant)
	}
	return New(variant, codes)
}

// New builds a mapping from an ordered code list. Duplicate codes are
// rejected: the forward mapping must stay injective for the inversion to be
// exact.
func New(variant string, codes []int16) (*Mapping, error) {
	forward := make(map[int16]int, len(codes))
	for i, code := range codes {
		if _, exists := forward[code]; exists {
			return nil, fmt.Errorf("class mapping %q declares code %d twice", variant, code)
		}
		forward[code] = i
	}
	m := &Mapping{
		variant: variant,
		codes:   append([]int16(nil), codes...),
		forward: forward,
	}
	return m, nil
}

func (m *Mapping) Variant() string { return m.variant }

// Size is the dense class count and must equal the model's output class
// count at every call site.
func (m *Mapping) Size() int { return len(m.codes) }

// Codes returns the ordered domain codes, index position == dense index.
func (m *Mapping) Codes() []int16 {
	return append([]int16(nil), m.codes...)
}

// Forward maps a domain code to its dense index, or IgnoreIndex for any code
// outside the table. Unknown codes are expected data, not errors.
func (m *Mapping) Forward(code int16) int {
	if idx, ok := m.forward[code]; ok {
		return idx
	}
	return IgnoreIndex
}

// Reverse maps a dense index back to its domain code. A trained model should
// never emit an index outside 0..Size()-1, but the lookup still has to
// define the unmapped case: it becomes NodataCode.
func (m *Mapping) Reverse(index int) int16 {
	if index < 0 || index >= len(m.codes) {
		return NodataCode
	}
	return m.codes[index]
}

// ApplyForward converts a label grid of domain codes into dense indices,
// with unmapped codes becoming IgnoreIndex.
func (m *Mapping) ApplyForward(labels []int16) []int {
	out := make([]int, len(labels))
	for i, code := range labels {
		out[i] = m.Forward(code)
	}
	return out
}

// ApplyReverse converts a prediction grid of dense indices back into domain
// codes, with out-of-table indices becoming NodataCode.
func (m *Mapping) ApplyReverse(indices []int) []int16 {
	out := make([]int16, len(indices))
	for i, idx := range indices {
		out[i] = m.Reverse(idx)
	}
	return out
}

// ValidateClassCount fails when the table size disagrees with the model's
// output class count. A silent mismatch here corrupts every prediction, so
// it is checked once at startup.
func (m *Mapping) ValidateClassCount(modelClasses int) error {
	if modelClasses != len(m.codes) {
		return fmt.Errorf("class mapping %q has %d classes but model outputs %d",
			m.variant, len(m.codes), modelClasses)
	}
	return nil
}
