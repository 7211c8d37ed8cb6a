package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/globe-engine/internal/domain"
	"github.com/globe-engine/internal/hitregion"
	"github.com/globe-engine/internal/registry"
	"github.com/globe-engine/internal/usecase"
)

func square(lonMin, latMin, lonMax, latMax float64) domain.Ring {
	return domain.Ring{{Lon: lonMin, Lat: latMin}, {Lon: lonMax, Lat: latMin}, {Lon: lonMax, Lat: latMax}, {Lon: lonMin, Lat: latMax}}
}

// testFeatures: AAA around (0,0), BBB around (90,0)
func testFeatures() []domain.Feature {
	return []domain.Feature{
		{Code: "AAA", Name: "Alpha", Geometry: domain.NewPolygonGeometry(domain.Polygon{square(-10, -10, 10, 10)})},
		{Code: "BBB", Name: "Beta", Geometry: domain.NewPolygonGeometry(domain.Polygon{square(80, -10, 100, 10)})},
	}
}

// testRaster covers the globe with a 4x2 grid; the north-west cell is empty.
func testRaster() *domain.RasterGrid {
	return &domain.RasterGrid{
		Width:   4,
		Height:  2,
		BBox:    domain.BoundingBox{LonMin: -180, LatMin: -90, LonMax: 180, LatMax: 90},
		Samples: []float64{0, 10, 100, 1000, 1, 2, 3, 4},
	}
}

func newTestSession(t *testing.T, raster *domain.RasterGrid) *usecase.GlobeSession {
	t.Helper()
	opts := registry.DefaultOptions()

	reg, report, err := registry.Load(testFeatures(), opts)
	require.NoError(t, err)
	require.Empty(t, report.Issues)

	regions, err := hitregion.Build(reg, hitregion.Options{Radius: opts.Radius, BorderOffset: opts.BorderOffset})
	require.NoError(t, err)

	return usecase.NewGlobeSession(reg, regions, raster)
}
