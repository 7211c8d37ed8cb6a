package domain

import (
	"math"

	"github.com/golang/geo/r3"
)

// GeoPoint - географическая точка в градусах (lon ∈ [-180,180], lat ∈ [-90,90])
type GeoPoint struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// Valid reports whether the point lies inside the geographic domain.
func (p GeoPoint) Valid() bool {
	if math.IsNaN(p.Lon) || math.IsNaN(p.Lat) {
		return false
	}
	return p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}

// SpherePoint - декартова точка на поверхности сферы (Y смотрит на северный полюс)
type SpherePoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Vector returns the point as an r3 vector.
func (p SpherePoint) Vector() r3.Vector {
	return r3.Vector{X: p.X, Y: p.Y, Z: p.Z}
}

// Norm returns the distance from the sphere centre.
func (p SpherePoint) Norm() float64 {
	return p.Vector().Norm()
}

// SpherePointFromVector converts an r3 vector back into a SpherePoint.
func SpherePointFromVector(v r3.Vector) SpherePoint {
	return SpherePoint{X: v.X, Y: v.Y, Z: v.Z}
}

// BoundingBox - географический прямоугольник растра
type BoundingBox struct {
	LonMin float64 `json:"lon_min"`
	LatMin float64 `json:"lat_min"`
	LonMax float64 `json:"lon_max"`
	LatMax float64 `json:"lat_max"`
}

// BoundingBoxFromSlice builds a box from the [lonMin, latMin, lonMax, latMax] wire form.
func BoundingBoxFromSlice(b []float64) (BoundingBox, bool) {
	if len(b) != 4 {
		return BoundingBox{}, false
	}
	return BoundingBox{LonMin: b[0], LatMin: b[1], LonMax: b[2], LatMax: b[3]}, true
}

// Width returns the longitude span.
func (b BoundingBox) Width() float64 {
	return b.LonMax - b.LonMin
}

// Height returns the latitude span.
func (b BoundingBox) Height() float64 {
	return b.LatMax - b.LatMin
}

// Contains reports whether the point lies inside the box, edges included.
func (b BoundingBox) Contains(p GeoPoint) bool {
	return p.Lon >= b.LonMin && p.Lon <= b.LonMax && p.Lat >= b.LatMin && p.Lat <= b.LatMax
}
