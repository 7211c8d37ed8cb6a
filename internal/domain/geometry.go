package domain

import "github.com/paulmach/orb"

// GeometryType - тип геометрии страны (GeoJSON)
type GeometryType string

const (
	GeometryPolygon      GeometryType = "Polygon"
	GeometryMultiPolygon GeometryType = "MultiPolygon"
)

// Ring is an ordered vertex sequence. Closure is implicit: the first vertex
// does not have to be repeated at the end.
type Ring []GeoPoint

// Closed reports whether the last vertex repeats the first one.
func (r Ring) Closed() bool {
	return len(r) > 1 && r[0] == r[len(r)-1]
}

// Open returns the ring without the duplicated closing vertex.
func (r Ring) Open() Ring {
	if r.Closed() {
		return r[:len(r)-1]
	}
	return r
}

// Orb returns the ring as a closed orb.Ring with X = lon, Y = lat.
func (r Ring) Orb() orb.Ring {
	open := r.Open()
	out := make(orb.Ring, 0, len(open)+1)
	for _, p := range open {
		out = append(out, orb.Point{p.Lon, p.Lat})
	}
	if len(out) > 0 {
		out = append(out, out[0])
	}
	return out
}

// Polygon - внешний контур и дыры; первое кольцо всегда внешнее
type Polygon []Ring

// Geometry - Polygon или MultiPolygon
type Geometry struct {
	Type     GeometryType `json:"type"`
	Polygons []Polygon    `json:"polygons"`
}

// NewPolygonGeometry wraps a single polygon.
func NewPolygonGeometry(p Polygon) Geometry {
	return Geometry{Type: GeometryPolygon, Polygons: []Polygon{p}}
}

// NewMultiPolygonGeometry wraps several polygons.
func NewMultiPolygonGeometry(ps []Polygon) Geometry {
	return Geometry{Type: GeometryMultiPolygon, Polygons: ps}
}

// RingCount returns the total number of rings across all polygons.
func (g Geometry) RingCount() int {
	n := 0
	for _, p := range g.Polygons {
		n += len(p)
	}
	return n
}

// EachRing calls fn for every ring in traversal order.
func (g Geometry) EachRing(fn func(polygon, ring int, r Ring)) {
	for pi, p := range g.Polygons {
		for ri, r := range p {
			fn(pi, ri, r)
		}
	}
}
