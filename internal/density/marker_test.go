package density

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/globe-engine/internal/domain"
)

func TestMarkerFor(t *testing.T) {
	hidden := MarkerFor(0)
	assert.False(t, hidden.Visible)
	assert.Equal(t, 0.0, hidden.Height)
	assert.InDelta(t, 180.0/255, hidden.Color[2], 1e-12)

	full := MarkerFor(1)
	assert.True(t, full.Visible)
	assert.InDelta(t, MarkerHeightScale, full.Height, 1e-12)
	assert.Equal(t, 1.0, full.Color[0])
	assert.Equal(t, 0.0, full.Color[1], "ramp saturates at pure red")
	assert.Equal(t, 0.0, full.Color[2])

	nan := MarkerFor(math.NaN())
	assert.False(t, nan.Visible)
	assert.Equal(t, 0.0, nan.Height)
}

func TestMarkers_PreservesOrder(t *testing.T) {
	samples := []domain.DensitySample{{Normalized: 0}, {Normalized: 0.5}, {Normalized: 0.25}}
	markers := Markers(samples)

	assert.Len(t, markers, 3)
	assert.False(t, markers[0].Visible)
	assert.InDelta(t, 0.5*MarkerHeightScale, markers[1].Height, 1e-12)
	assert.InDelta(t, 0.25*MarkerHeightScale, markers[2].Height, 1e-12)
}
