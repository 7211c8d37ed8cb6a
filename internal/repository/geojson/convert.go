// Package geojson reads country features from GeoJSON FeatureCollections.
package geojson

import (
	"fmt"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/globe-engine/internal/domain"
)

// Properties - имена свойств feature, из которых берутся код и название
type Properties struct {
	Code string
	Name string
}

// DefaultProperties matches Natural Earth admin-0 exports: admin is the full
// country name, name the short label.
func DefaultProperties() Properties {
	return Properties{Code: "iso_a3", Name: "admin"}
}

// fallbackNameProperty is consulted when the configured name property is empty.
const fallbackNameProperty = "name"

// ToFeature converts a decoded GeoJSON feature. Non-polygonal geometry is
// passed through with its GeoJSON type so the registry can reject it.
func ToFeature(f *geojson.Feature, props Properties) domain.Feature {
	code := strings.TrimSpace(f.Properties.MustString(props.Code, ""))

	name := f.Properties.MustString(props.Name, "")
	if name == "" {
		name = f.Properties.MustString(fallbackNameProperty, "")
	}

	return domain.Feature{
		Code:     code,
		Name:     name,
		Geometry: ToGeometry(f.Geometry),
	}
}

// ToGeometry maps an orb geometry onto the domain polygon model.
func ToGeometry(g orb.Geometry) domain.Geometry {
	switch v := g.(type) {
	case orb.Polygon:
		return domain.NewPolygonGeometry(toPolygon(v))
	case orb.MultiPolygon:
		polygons := make([]domain.Polygon, 0, len(v))
		for _, p := range v {
			polygons = append(polygons, toPolygon(p))
		}
		return domain.NewMultiPolygonGeometry(polygons)
	case nil:
		return domain.Geometry{}
	default:
		return domain.Geometry{Type: domain.GeometryType(g.GeoJSONType())}
	}
}

func toPolygon(p orb.Polygon) domain.Polygon {
	out := make(domain.Polygon, 0, len(p))
	for _, r := range p {
		ring := make(domain.Ring, 0, len(r))
		for _, pt := range r {
			ring = append(ring, domain.GeoPoint{Lon: pt.Lon(), Lat: pt.Lat()})
		}
		out = append(out, ring.Open())
	}
	return out
}

// ToFeatures converts a whole collection, keeping source order.
func ToFeatures(fc *geojson.FeatureCollection, props Properties) []domain.Feature {
	features := make([]domain.Feature, 0, len(fc.Features))
	for _, f := range fc.Features {
		features = append(features, ToFeature(f, props))
	}
	return features
}

// DecodeCollection parses a FeatureCollection document.
func DecodeCollection(data []byte) (*geojson.FeatureCollection, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode feature collection: %w", err)
	}
	return fc, nil
}
