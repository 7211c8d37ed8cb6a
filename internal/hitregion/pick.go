package hitregion

import (
	"math"
	"sort"

	"github.com/golang/geo/r3"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/globe-engine/internal/domain"
	"github.com/globe-engine/internal/projection"
)

// Pick intersects the ray with the border sphere and returns every region
// hit, nearest first. Both the entry and exit points are tested, so a country
// on the far side shows up behind the one facing the camera. Equal distances
// keep traversal order.
//
// A hit inside a hole of the same polygon does not count for that polygon.
func (s *Set) Pick(ray domain.Ray) []domain.Intersection {
	dir := ray.Direction.Vector()
	if dir.Norm() == 0 {
		return nil
	}
	dir = dir.Normalize()
	origin := ray.Origin.Vector()

	var hits []domain.Intersection
	for _, t := range sphereHits(origin, dir, s.opts.BorderRadius()) {
		p := domain.SpherePointFromVector(origin.Add(dir.Mul(t)))
		for _, id := range s.match(projection.ToChart(p)) {
			hits = append(hits, domain.Intersection{
				Region:   id,
				Owner:    s.owners[id],
				Distance: t,
				Point:    p,
			})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
	return hits
}

// PickGeo resolves a geographic position directly; all hits have distance 0.
func (s *Set) PickGeo(geo domain.GeoPoint) []domain.Intersection {
	p := projection.MustToSphere(geo, s.opts.BorderRadius())

	var hits []domain.Intersection
	for _, id := range s.match(projection.ToChart(p)) {
		hits = append(hits, domain.Intersection{
			Region: id,
			Owner:  s.owners[id],
			Point:  p,
		})
	}
	return hits
}

// match returns the outer regions containing c, excluding their holes.
func (s *Set) match(c orb.Point) []domain.RegionID {
	var ids []domain.RegionID
	for _, r := range s.regions {
		if r.Hole || !contains(r, c) {
			continue
		}
		inHole := false
		for _, h := range s.holes[r.ID] {
			if contains(s.regions[h], c) {
				inHole = true
				break
			}
		}
		if !inHole {
			ids = append(ids, r.ID)
		}
	}
	return ids
}

func contains(r domain.HitRegion, c orb.Point) bool {
	if r.Degenerate() || !r.Bound.Contains(c) {
		return false
	}
	return planar.RingContains(r.Outline, c)
}

// sphereHits returns the non-negative ray parameters where a ray with unit
// direction crosses a sphere centred at the origin, ascending.
func sphereHits(origin, dir r3.Vector, radius float64) []float64 {
	b := origin.Dot(dir)
	c := origin.Dot(origin) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return nil
	}

	sq := math.Sqrt(disc)
	var out []float64
	for _, t := range []float64{-b - sq, -b + sq} {
		if t >= 0 && (len(out) == 0 || t != out[0]) {
			out = append(out, t)
		}
	}
	return out
}
