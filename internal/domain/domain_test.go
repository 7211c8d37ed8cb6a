package domain

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeoPoint_Valid(t *testing.T) {
	tests := []struct {
		name     string
		point    GeoPoint
		expected bool
	}{
		{name: "origin", point: GeoPoint{0, 0}, expected: true},
		{name: "corners", point: GeoPoint{-180, 90}, expected: true},
		{name: "lat above pole", point: GeoPoint{0, 90.5}, expected: false},
		{name: "lon past antimeridian", point: GeoPoint{181, 0}, expected: false},
		{name: "NaN", point: GeoPoint{math.NaN(), 0}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.point.Valid())
		})
	}
}

func TestBoundingBox(t *testing.T) {
	box, ok := BoundingBoxFromSlice([]float64{-10, -5, 30, 15})
	require.True(t, ok)

	assert.Equal(t, 40.0, box.Width())
	assert.Equal(t, 20.0, box.Height())
	assert.True(t, box.Contains(GeoPoint{Lon: 30, Lat: 15}))
	assert.False(t, box.Contains(GeoPoint{Lon: 31, Lat: 0}))

	_, ok = BoundingBoxFromSlice([]float64{1, 2, 3})
	assert.False(t, ok)
}

func TestRing_OpenAndClosed(t *testing.T) {
	closed := Ring{{0, 0}, {1, 0}, {1, 1}, {0, 0}}
	open := Ring{{0, 0}, {1, 0}, {1, 1}}

	assert.True(t, closed.Closed())
	assert.False(t, open.Closed())
	assert.Equal(t, open, closed.Open())

	orbRing := open.Orb()
	require.Len(t, orbRing, 4)
	assert.Equal(t, orbRing[0], orbRing[3])
}

func TestGeometry_EachRing(t *testing.T) {
	g := NewMultiPolygonGeometry([]Polygon{
		{Ring{{0, 0}, {1, 0}, {1, 1}}, Ring{{0.2, 0.2}, {0.4, 0.2}, {0.4, 0.4}}},
		{Ring{{5, 5}, {6, 5}, {6, 6}}},
	})

	type visit struct{ polygon, ring int }
	var visits []visit
	g.EachRing(func(polygon, ring int, _ Ring) {
		visits = append(visits, visit{polygon, ring})
	})

	assert.Equal(t, 3, g.RingCount())
	assert.Equal(t, []visit{{0, 0}, {0, 1}, {1, 0}}, visits)
}

func TestDensityKey_String(t *testing.T) {
	assert.Equal(t, "density:100000:1", DensityKey{Count: 100000, Radius: 1}.String())
	assert.Equal(t, "density:10:0.5", DensityKey{Count: 10, Radius: 0.5}.String())
	assert.Equal(t, "density:ab12:10:0.5", DensityKey{Raster: "ab12", Count: 10, Radius: 0.5}.String())
}

func TestRasterGrid_Fingerprint(t *testing.T) {
	grid := func() *RasterGrid {
		return &RasterGrid{
			Width:   2,
			Height:  1,
			BBox:    BoundingBox{LonMin: -180, LatMin: -90, LonMax: 180, LatMax: 90},
			Samples: []float64{1, 2},
		}
	}
	base := grid().Fingerprint()
	assert.NotEmpty(t, base)
	assert.Equal(t, base, grid().Fingerprint())

	changedCell := grid()
	changedCell.Samples[1] = 3
	assert.NotEqual(t, base, changedCell.Fingerprint())

	changedBox := grid()
	changedBox.BBox.LatMax = 80
	assert.NotEqual(t, base, changedBox.Fingerprint())

	transposed := grid()
	transposed.Width, transposed.Height = 1, 2
	assert.NotEqual(t, base, transposed.Fingerprint())
}

func TestHoverEventMessage_JSON(t *testing.T) {
	msg := HoverEventMessage{
		ID:        uuid.New(),
		SessionID: uuid.New(),
		Type:      HoverHighlight,
		Code:      "FRA",
		At:        time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	data, err := json.Marshal(msg)
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.Equal(t, "highlight", fields["type"])
	assert.Equal(t, "FRA", fields["code"])
	assert.Equal(t, msg.SessionID.String(), fields["session_id"])
}
