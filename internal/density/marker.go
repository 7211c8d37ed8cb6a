package density

import (
	"math"

	"github.com/globe-engine/internal/domain"
)

const (
	// MarkerHeightScale stretches a marker along its normal per unit of intensity.
	MarkerHeightScale = 0.35

	rampGain = 1.8
)

// markerBase is the pale yellow used for the lowest non-zero intensity.
var markerBase = [3]float64{1, 1, 180.0 / 255}

// Markers converts normalised samples to instanced marker styles. Zero
// intensity markers are hidden; colour ramps from pale yellow to red and
// saturates once sqrt(1.8*v) reaches 1.
func Markers(samples []domain.DensitySample) []domain.Marker {
	markers := make([]domain.Marker, len(samples))
	for i, s := range samples {
		markers[i] = MarkerFor(s.Normalized)
	}
	return markers
}

// MarkerFor styles a single intensity value.
func MarkerFor(value float64) domain.Marker {
	if math.IsNaN(value) {
		value = 0
	}

	t := math.Sqrt(math.Min(value, 1) * rampGain)
	if math.IsNaN(t) {
		t = 0
	}

	return domain.Marker{
		Visible: value > 0,
		Height:  value * MarkerHeightScale,
		Color: [3]float64{
			clamp01(markerBase[0] + (1-markerBase[0])*t),
			clamp01(markerBase[1] * (1 - t)),
			clamp01(markerBase[2] * (1 - t)),
		},
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
