package domain

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// RasterGrid - растр плотности населения, неизменяемый после загрузки
type RasterGrid struct {
	Width   int         `json:"width"`
	Height  int         `json:"height"`
	BBox    BoundingBox `json:"bbox"`
	Samples []float64   `json:"samples"`
}

// At returns the cell value in row-major order without bounds checking.
func (g *RasterGrid) At(x, y int) float64 {
	return g.Samples[y*g.Width+x]
}

// Fingerprint identifies the grid by its dimensions, bbox and cell values.
func (g *RasterGrid) Fingerprint() string {
	d := xxhash.New()
	buf := make([]byte, 8)
	put := func(v float64) {
		binary.LittleEndian.PutUint64(buf, math.Float64bits(v))
		d.Write(buf)
	}

	put(float64(g.Width))
	put(float64(g.Height))
	put(g.BBox.LonMin)
	put(g.BBox.LatMin)
	put(g.BBox.LonMax)
	put(g.BBox.LatMax)
	for _, v := range g.Samples {
		put(v)
	}
	return strconv.FormatUint(d.Sum64(), 16)
}

// DensitySample - значение растра в точке сферы
type DensitySample struct {
	Point      SpherePoint `json:"point"`
	Raw        float64     `json:"raw"`
	Normalized float64     `json:"normalized"`
}

// Marker - стиль точки плотности для инстансного рендера
type Marker struct {
	Visible bool       `json:"visible"`
	Height  float64    `json:"height"`
	Color   [3]float64 `json:"color"`
}

// DensityKey - ключ кеша выборки плотности. Raster - отпечаток растра, см. RasterGrid.Fingerprint
type DensityKey struct {
	Raster string
	Count  int
	Radius float64
}

func (k DensityKey) String() string {
	if k.Raster == "" {
		return fmt.Sprintf("density:%d:%g", k.Count, k.Radius)
	}
	return fmt.Sprintf("density:%s:%d:%g", k.Raster, k.Count, k.Radius)
}
