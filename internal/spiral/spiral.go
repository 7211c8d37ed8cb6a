// Package spiral generates approximately equal-area point sets on a sphere
// using the golden-angle (Fibonacci) spiral.
package spiral

import (
	"math"

	"github.com/globe-engine/internal/domain"
	"github.com/globe-engine/internal/pkg/errors"
)

// GoldenRatio is (1 + sqrt 5) / 2.
var GoldenRatio = (1 + math.Sqrt(5)) / 2

// Generate returns exactly count points on a sphere of the given radius.
// Point i has inclination acos(1 - 2i/count) and azimuth 2*pi*i*GoldenRatio,
// so the first point is the north pole and inclination grows strictly with i.
func Generate(count int, radius float64) ([]domain.SpherePoint, error) {
	if count < 1 {
		return nil, errors.ErrInvalidArgument.WithDetails(map[string]interface{}{
			"count": count,
		})
	}
	if !(radius > 0) || math.IsInf(radius, 1) {
		return nil, errors.ErrInvalidArgument.WithDetails(map[string]interface{}{
			"radius": radius,
		})
	}

	points := make([]domain.SpherePoint, count)
	n := float64(count)
	for i := range points {
		t := float64(i) / n
		inclination := math.Acos(1 - 2*t)
		azimuth := float64(i) * 2 * math.Pi * GoldenRatio
		points[i] = fromSpherical(inclination, azimuth, radius)
	}

	return points, nil
}

// fromSpherical converts polar angle from +Y and azimuth around Y.
func fromSpherical(inclination, azimuth, radius float64) domain.SpherePoint {
	sinInc := math.Sin(inclination)
	return domain.SpherePoint{
		X: radius * sinInc * math.Cos(azimuth),
		Y: radius * math.Cos(inclination),
		Z: radius * sinInc * math.Sin(azimuth),
	}
}
