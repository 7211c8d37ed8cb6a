// Package density samples a geographic raster at sphere points and compresses
// the values into [0, 1] with log1p so sparse and dense areas stay distinguishable.
package density

import (
	"math"

	"github.com/globe-engine/internal/domain"
	"github.com/globe-engine/internal/pkg/errors"
	"github.com/globe-engine/internal/projection"
)

// ValidateRaster checks the grid dimensions against its sample array and bbox.
func ValidateRaster(g *domain.RasterGrid) error {
	if g == nil {
		return errors.ErrMalformedRaster.WithMessage("raster is nil")
	}
	if g.Width <= 0 || g.Height <= 0 {
		return errors.ErrMalformedRaster.WithDetails(map[string]interface{}{
			"width":  g.Width,
			"height": g.Height,
		})
	}
	if len(g.Samples) != g.Width*g.Height {
		return errors.ErrMalformedRaster.WithDetails(map[string]interface{}{
			"expected_samples": g.Width * g.Height,
			"samples":          len(g.Samples),
		})
	}
	if !(g.BBox.Width() > 0) || !(g.BBox.Height() > 0) {
		return errors.ErrMalformedRaster.WithDetails(map[string]interface{}{
			"bbox": []float64{g.BBox.LonMin, g.BBox.LatMin, g.BBox.LonMax, g.BBox.LatMax},
		})
	}
	return nil
}

// PixelIndex maps a geographic point to raster column/row. ok is false when
// the point falls outside the grid.
func PixelIndex(g *domain.RasterGrid, geo domain.GeoPoint) (x, y int, ok bool) {
	fx := math.Floor((geo.Lon - g.BBox.LonMin) / g.BBox.Width() * float64(g.Width))
	fy := math.Floor((g.BBox.LatMax - geo.Lat) / g.BBox.Height() * float64(g.Height))
	if math.IsNaN(fx) || math.IsNaN(fy) {
		return 0, 0, false
	}
	if fx < 0 || fx >= float64(g.Width) || fy < 0 || fy >= float64(g.Height) {
		return 0, 0, false
	}
	return int(fx), int(fy), true
}

// Lookup returns the raw cell value under the point. Points outside the
// raster and missing cells (NaN, Inf, negative no-data) read as 0.
func Lookup(g *domain.RasterGrid, geo domain.GeoPoint) float64 {
	x, y, ok := PixelIndex(g, geo)
	if !ok {
		return 0
	}
	return cellValue(g.At(x, y))
}

func cellValue(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// Sample looks up every point in the raster and normalises the batch.
func Sample(points []domain.SpherePoint, g *domain.RasterGrid, radius float64) ([]domain.DensitySample, error) {
	if err := ValidateRaster(g); err != nil {
		return nil, err
	}

	samples := make([]domain.DensitySample, len(points))
	raw := make([]float64, len(points))
	for i, p := range points {
		geo, err := projection.FromSphere(p, radius)
		if err != nil {
			return nil, err
		}
		raw[i] = Lookup(g, geo)
		samples[i] = domain.DensitySample{Point: p, Raw: raw[i]}
	}

	for i, v := range Normalize(raw) {
		samples[i].Normalized = v
	}

	return samples, nil
}

// Normalize maps raw values to log1p(v) / log1p(max) where max is taken over
// the positive values. A batch without positive values normalises to all zeros.
func Normalize(raw []float64) []float64 {
	out := make([]float64, len(raw))

	maxRaw := 0.0
	for _, v := range raw {
		if v > maxRaw {
			maxRaw = v
		}
	}
	if maxRaw == 0 {
		return out
	}

	denom := math.Log1p(maxRaw)
	for i, v := range raw {
		if !(v > 0) {
			continue
		}
		n := math.Log1p(v) / denom
		if n > 1 {
			n = 1
		}
		out[i] = n
	}

	return out
}
