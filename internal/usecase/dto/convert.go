package dto

import (
	"github.com/globe-engine/internal/domain"
)

// ConvertCountry maps a registry entry to its response form.
func ConvertCountry(c domain.Country) CountryResponse {
	return CountryResponse{
		Code:      c.Code,
		Name:      c.Name,
		Center:    c.Center,
		CenterGeo: c.CenterGeo,
		Rings:     c.Geometry.RingCount(),
	}
}

// ConvertRegion maps a hit region and its border line.
func ConvertRegion(r domain.HitRegion, border []domain.SpherePoint) RegionResponse {
	outline := make([][2]float64, len(r.Outline))
	for i, p := range r.Outline {
		outline[i] = [2]float64{p[0], p[1]}
	}
	return RegionResponse{
		ID:         r.ID,
		Owner:      r.Owner,
		Polygon:    r.Polygon,
		Ring:       r.Ring,
		Hole:       r.Hole,
		Degenerate: r.Degenerate(),
		Area:       r.Area,
		Outline:    outline,
		Border:     border,
	}
}

// ToRay converts the wire form of a pointer ray.
func (r RayInput) ToRay() domain.Ray {
	return domain.Ray{
		Origin:    domain.SpherePoint{X: r.Origin[0], Y: r.Origin[1], Z: r.Origin[2]},
		Direction: domain.SpherePoint{X: r.Direction[0], Y: r.Direction[1], Z: r.Direction[2]},
	}
}

// ToGeo converts the wire form of a map point.
func (g GeoInput) ToGeo() domain.GeoPoint {
	return domain.GeoPoint{Lon: g.Lon, Lat: g.Lat}
}

// ToIntersections converts renderer-side hits, keeping their order.
func ToIntersections(hits []HitInput) []domain.Intersection {
	out := make([]domain.Intersection, len(hits))
	for i, h := range hits {
		out[i] = domain.Intersection{Region: -1, Owner: h.Owner, Distance: h.Distance}
	}
	return out
}
