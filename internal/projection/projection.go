// Package projection converts between geographic coordinates and points on a
// Y-up sphere, and between sphere points and the local equirectangular chart
// used for hit testing.
//
// The forward transform places longitude 0 on the +X axis and the north pole
// on +Y:
//
//	phi   = (90 - lat) * pi/180
//	theta = (lon + 180) * pi/180
//	x = -r sin(phi) cos(theta)
//	y =  r cos(phi)
//	z =  r sin(phi) sin(theta)
package projection

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/globe-engine/internal/domain"
	"github.com/globe-engine/internal/pkg/errors"
)

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)

func checkRadius(radius float64) error {
	if !(radius > 0) || math.IsInf(radius, 1) {
		return errors.ErrInvalidArgument.WithDetails(map[string]interface{}{
			"radius": radius,
		})
	}
	return nil
}

// ToSphere projects a geographic point onto a sphere of the given radius.
func ToSphere(geo domain.GeoPoint, radius float64) (domain.SpherePoint, error) {
	if err := checkRadius(radius); err != nil {
		return domain.SpherePoint{}, err
	}
	return toSphere(geo, radius), nil
}

func toSphere(geo domain.GeoPoint, radius float64) domain.SpherePoint {
	phi := (90 - geo.Lat) * degToRad
	theta := (geo.Lon + 180) * degToRad
	sinPhi := math.Sin(phi)

	return domain.SpherePoint{
		X: -radius * sinPhi * math.Cos(theta),
		Y: radius * math.Cos(phi),
		Z: radius * sinPhi * math.Sin(theta),
	}
}

// FromSphere is the inverse of ToSphere. At the poles the longitude is
// undefined and comes back as whatever atan2 yields for the residual x/z.
func FromSphere(p domain.SpherePoint, radius float64) (domain.GeoPoint, error) {
	if err := checkRadius(radius); err != nil {
		return domain.GeoPoint{}, err
	}
	return fromSphere(p, radius), nil
}

func fromSphere(p domain.SpherePoint, radius float64) domain.GeoPoint {
	return domain.GeoPoint{
		Lon: math.Atan2(-p.Z, p.X) * radToDeg,
		Lat: math.Asin(clampUnit(p.Y/radius)) * radToDeg,
	}
}

// MustToSphere is ToSphere for callers that already validated the radius.
func MustToSphere(geo domain.GeoPoint, radius float64) domain.SpherePoint {
	p, err := ToSphere(geo, radius)
	if err != nil {
		panic(err)
	}
	return p
}

// MustFromSphere is FromSphere for callers that already validated the radius.
func MustFromSphere(p domain.SpherePoint, radius float64) domain.GeoPoint {
	g, err := FromSphere(p, radius)
	if err != nil {
		panic(err)
	}
	return g
}

// ToChart maps a sphere point to the hit-testing chart: u = atan2(z, x),
// v = asin(y / |p|). The point is renormalised first, so points lifted above
// the surface land on the same chart position as their surface footprint.
func ToChart(p domain.SpherePoint) orb.Point {
	n := p.Norm()
	if n == 0 {
		return orb.Point{0, 0}
	}
	return orb.Point{
		math.Atan2(p.Z, p.X),
		math.Asin(clampUnit(p.Y / n)),
	}
}

// FromChart lifts a chart point back onto a sphere of the given radius with
// theta = u and phi = pi/2 - v.
func FromChart(c orb.Point, radius float64) domain.SpherePoint {
	theta := c[0]
	phi := math.Pi/2 - c[1]
	sinPhi := math.Sin(phi)

	return domain.SpherePoint{
		X: radius * sinPhi * math.Cos(theta),
		Y: radius * math.Cos(phi),
		Z: radius * sinPhi * math.Sin(theta),
	}
}

// clampUnit keeps asin arguments inside [-1, 1] against rounding drift.
func clampUnit(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
