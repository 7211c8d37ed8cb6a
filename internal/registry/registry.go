// Package registry holds the immutable set of countries loaded once per
// session, keyed by country code and iterable in load order.
package registry

import (
	stderrors "errors"
	"fmt"
	"math"
	"strings"

	"github.com/paulmach/orb/planar"

	"github.com/globe-engine/internal/domain"
	"github.com/globe-engine/internal/pkg/errors"
	"github.com/globe-engine/internal/projection"
)

// Options controls how derived fields are computed during Load.
type Options struct {
	// Radius of the globe; centers are placed at Radius*BorderOffset.
	Radius       float64
	BorderOffset float64
}

// DefaultOptions matches a unit globe with borders lifted by 0.1%.
func DefaultOptions() Options {
	return Options{Radius: 1, BorderOffset: 1.001}
}

// Registry - неизменяемый реестр стран
type Registry struct {
	countries []domain.Country
	index     map[string]int
}

// LoadIssue describes a feature that was skipped.
type LoadIssue struct {
	Index int
	Code  string
	Err   error
}

func (i LoadIssue) String() string {
	return fmt.Sprintf("feature %d (%s): %v", i.Index, i.Code, i.Err)
}

// LoadReport lists every feature that did not make it into the registry.
type LoadReport struct {
	Loaded int
	Issues []LoadIssue
}

// Duplicates returns the issues caused by a repeated country code.
func (r *LoadReport) Duplicates() []LoadIssue {
	return r.filter(errors.ErrDuplicateKey)
}

// Malformed returns the issues caused by invalid geometry.
func (r *LoadReport) Malformed() []LoadIssue {
	return r.filter(errors.ErrMalformedGeometry)
}

func (r *LoadReport) filter(target *errors.AppError) []LoadIssue {
	var out []LoadIssue
	for _, issue := range r.Issues {
		if stderrors.Is(issue.Err, target) {
			out = append(out, issue)
		}
	}
	return out
}

// Load builds a registry from features. Loading is best-effort: features with
// malformed geometry are skipped, and when a code repeats the first
// occurrence wins and every later one is reported as a duplicate.
func Load(features []domain.Feature, opts Options) (*Registry, *LoadReport, error) {
	if !(opts.Radius > 0) {
		return nil, nil, errors.ErrInvalidArgument.WithDetails(map[string]interface{}{
			"radius": opts.Radius,
		})
	}
	if !(opts.BorderOffset > 0) {
		opts.BorderOffset = 1
	}

	reg := &Registry{
		countries: make([]domain.Country, 0, len(features)),
		index:     make(map[string]int, len(features)),
	}
	report := &LoadReport{}

	for i, f := range features {
		code := strings.TrimSpace(f.Code)

		if err := validateFeature(code, f.Geometry); err != nil {
			report.Issues = append(report.Issues, LoadIssue{Index: i, Code: code, Err: err})
			continue
		}

		if first, ok := reg.index[code]; ok {
			report.Issues = append(report.Issues, LoadIssue{
				Index: i,
				Code:  code,
				Err: errors.ErrDuplicateKey.WithDetails(map[string]interface{}{
					"code":        code,
					"first_index": first,
				}),
			})
			continue
		}

		country := domain.Country{
			Code:     code,
			Name:     displayName(f.Name, code),
			Geometry: f.Geometry,
		}
		// a zero center is how source tables mark "unknown"
		if f.Center != nil && f.Center.Norm() > 0 {
			country.Center = *f.Center
			country.CenterGeo = projection.MustFromSphere(*f.Center, f.Center.Norm())
		} else {
			country.CenterGeo = Centroid(f.Geometry)
			country.Center = projection.MustToSphere(country.CenterGeo, opts.Radius*opts.BorderOffset)
		}

		reg.index[code] = len(reg.countries)
		reg.countries = append(reg.countries, country)
	}

	report.Loaded = len(reg.countries)
	return reg, report, nil
}

func displayName(name, code string) string {
	if n := strings.TrimSpace(name); n != "" {
		return n
	}
	return code
}

func validateFeature(code string, g domain.Geometry) error {
	if code == "" {
		return errors.ErrMalformedGeometry.WithMessage("feature has no country code")
	}

	switch g.Type {
	case domain.GeometryPolygon:
		if len(g.Polygons) != 1 {
			return errors.ErrMalformedGeometry.WithMessage("polygon must hold exactly one ring set, got %d", len(g.Polygons))
		}
	case domain.GeometryMultiPolygon:
		if len(g.Polygons) == 0 {
			return errors.ErrMalformedGeometry.WithMessage("multipolygon has no polygons")
		}
	default:
		return errors.ErrMalformedGeometry.WithMessage("unsupported geometry type %q", g.Type)
	}

	for pi, p := range g.Polygons {
		if len(p) == 0 {
			return errors.ErrMalformedGeometry.WithMessage("polygon %d has no rings", pi)
		}
		for ri, r := range p {
			if len(r) == 0 {
				return errors.ErrMalformedGeometry.WithMessage("polygon %d ring %d is empty", pi, ri)
			}
			for vi, v := range r {
				if !v.Valid() {
					return errors.ErrMalformedGeometry.WithMessage(
						"polygon %d ring %d vertex %d out of range (%v, %v)", pi, ri, vi, v.Lon, v.Lat)
				}
			}
		}
	}

	return nil
}

// Centroid returns the planar lon/lat centroid of the largest outer ring.
// When every outer ring is degenerate it falls back to the middle vertex of
// the first ring.
func Centroid(g domain.Geometry) domain.GeoPoint {
	var (
		best     domain.GeoPoint
		bestArea float64
	)

	for _, p := range g.Polygons {
		if len(p) == 0 {
			continue
		}
		c, area := planar.CentroidArea(p[0].Orb())
		area = math.Abs(area)
		if area > bestArea {
			bestArea = area
			best = domain.GeoPoint{Lon: c[0], Lat: c[1]}
		}
	}
	if bestArea > 0 {
		return best
	}

	if len(g.Polygons) > 0 && len(g.Polygons[0]) > 0 {
		first := g.Polygons[0][0]
		if len(first) > 0 {
			return first[len(first)/2]
		}
	}
	return domain.GeoPoint{}
}

// Get returns the country with the given code.
func (r *Registry) Get(code string) (domain.Country, bool) {
	i, ok := r.index[code]
	if !ok {
		return domain.Country{}, false
	}
	return r.countries[i], true
}

// All returns the countries in load order.
func (r *Registry) All() []domain.Country {
	out := make([]domain.Country, len(r.countries))
	copy(out, r.countries)
	return out
}

// Codes returns the country codes in load order.
func (r *Registry) Codes() []string {
	out := make([]string, len(r.countries))
	for i, c := range r.countries {
		out[i] = c.Code
	}
	return out
}

// Len returns the number of registered countries.
func (r *Registry) Len() int {
	return len(r.countries)
}
