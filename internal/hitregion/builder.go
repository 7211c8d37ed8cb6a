// Package hitregion turns country rings into 2D outlines on the
// equirectangular chart (u = atan2(z, x), v = asin(y/|p|)) so pointer hits can
// be resolved with planar point-in-polygon tests instead of 3D mesh queries.
package hitregion

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/globe-engine/internal/domain"
	"github.com/globe-engine/internal/pkg/errors"
	"github.com/globe-engine/internal/projection"
)

// minArea is the chart area below which an outline counts as collinear.
const minArea = 1e-15

// Options - параметры построения регионов
type Options struct {
	Radius       float64
	BorderOffset float64
}

// BorderRadius is the radius at which border lines and pick meshes sit.
func (o Options) BorderRadius() float64 {
	return o.Radius * o.BorderOffset
}

// CountrySource is the read side of the registry the builder needs.
type CountrySource interface {
	All() []domain.Country
}

// Set - все регионы сессии и таблица владельцев
type Set struct {
	opts    Options
	regions []domain.HitRegion
	borders [][]domain.SpherePoint

	// owners is the side table from region identity to country code.
	owners  map[domain.RegionID]string
	byOwner map[string][]domain.RegionID
	holes   map[domain.RegionID][]domain.RegionID
}

// Build creates one HitRegion per ring of every country, in registry order.
func Build(src CountrySource, opts Options) (*Set, error) {
	if !(opts.Radius > 0) {
		return nil, errors.ErrInvalidArgument.WithDetails(map[string]interface{}{
			"radius": opts.Radius,
		})
	}
	if !(opts.BorderOffset > 0) {
		opts.BorderOffset = 1
	}

	set := &Set{
		opts:    opts,
		owners:  make(map[domain.RegionID]string),
		byOwner: make(map[string][]domain.RegionID),
		holes:   make(map[domain.RegionID][]domain.RegionID),
	}

	for _, c := range src.All() {
		var outer domain.RegionID
		c.Geometry.EachRing(func(pi, ri int, ring domain.Ring) {
			id := domain.RegionID(len(set.regions))
			border := BorderLine(ring, opts.BorderRadius())
			region := outlineRegion(border)
			region.ID = id
			region.Owner = c.Code
			region.Polygon = pi
			region.Ring = ri
			region.Hole = ri > 0

			set.regions = append(set.regions, region)
			set.borders = append(set.borders, border)
			set.owners[id] = c.Code
			set.byOwner[c.Code] = append(set.byOwner[c.Code], id)

			if ri == 0 {
				outer = id
			} else {
				set.holes[outer] = append(set.holes[outer], id)
			}
		})
	}

	return set, nil
}

// BorderLine projects a ring onto the sphere as an open polyline.
func BorderLine(ring domain.Ring, radius float64) []domain.SpherePoint {
	points := make([]domain.SpherePoint, len(ring))
	for i, v := range ring {
		points[i] = projection.MustToSphere(v, radius)
	}
	return points
}

// Outline re-projects sphere points to the chart and closes the ring.
func Outline(points []domain.SpherePoint) orb.Ring {
	outline := make(orb.Ring, 0, len(points)+1)
	for _, p := range points {
		outline = append(outline, projection.ToChart(p))
	}
	if n := len(outline); n > 0 && outline[0] != outline[n-1] {
		outline = append(outline, outline[0])
	}
	return outline
}

func outlineRegion(points []domain.SpherePoint) domain.HitRegion {
	outline := Outline(points)
	region := domain.HitRegion{
		Outline: outline,
		Bound:   outline.Bound(),
	}
	if distinct(outline) < 3 {
		return region
	}
	if area := math.Abs(planar.Area(outline)); area > minArea {
		region.Area = area
	}
	return region
}

func distinct(r orb.Ring) int {
	seen := make(map[orb.Point]struct{}, len(r))
	for _, p := range r {
		seen[p] = struct{}{}
	}
	return len(seen)
}

// Lift maps chart vertices back onto a sphere, e.g. after tessellation.
func Lift(outline orb.Ring, radius float64) []domain.SpherePoint {
	points := make([]domain.SpherePoint, len(outline))
	for i, c := range outline {
		points[i] = projection.FromChart(c, radius)
	}
	return points
}

// Options returns the options the set was built with.
func (s *Set) Options() Options {
	return s.opts
}

// Len returns the number of regions.
func (s *Set) Len() int {
	return len(s.regions)
}

// Regions returns every region in traversal order.
func (s *Set) Regions() []domain.HitRegion {
	out := make([]domain.HitRegion, len(s.regions))
	copy(out, s.regions)
	return out
}

// Region returns a region by id.
func (s *Set) Region(id domain.RegionID) (domain.HitRegion, bool) {
	if id < 0 || int(id) >= len(s.regions) {
		return domain.HitRegion{}, false
	}
	return s.regions[id], true
}

// Owner resolves the country code that owns a region.
func (s *Set) Owner(id domain.RegionID) (string, bool) {
	code, ok := s.owners[id]
	return code, ok
}

// ByOwner returns the regions of a country in traversal order.
func (s *Set) ByOwner(code string) []domain.HitRegion {
	ids := s.byOwner[code]
	out := make([]domain.HitRegion, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.regions[id])
	}
	return out
}

// Border returns the sphere polyline a region was built from.
func (s *Set) Border(id domain.RegionID) []domain.SpherePoint {
	if id < 0 || int(id) >= len(s.borders) {
		return nil
	}
	return s.borders[id]
}
