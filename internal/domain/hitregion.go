package domain

import "github.com/paulmach/orb"

// RegionID - индекс региона в наборе, стабильный в порядке обхода
type RegionID int

// HitRegion - 2D контур одного кольца страны в локальной равнопромежуточной карте
type HitRegion struct {
	ID      RegionID  `json:"id"`
	Owner   string    `json:"owner"`
	Polygon int       `json:"polygon"`
	Ring    int       `json:"ring"`
	Hole    bool      `json:"hole"`
	Outline orb.Ring  `json:"outline"`
	Area    float64   `json:"area"`
	Bound   orb.Bound `json:"-"`
}

// Degenerate reports whether the outline has no area and can never be hit.
func (r HitRegion) Degenerate() bool {
	return r.Area == 0
}

// Ray - луч указателя в мировых координатах
type Ray struct {
	Origin    SpherePoint `json:"origin"`
	Direction SpherePoint `json:"direction"`
}

// Intersection - результат запроса пересечения, ближайшие первыми
type Intersection struct {
	Region   RegionID    `json:"region"`
	Owner    string      `json:"owner"`
	Distance float64     `json:"distance"`
	Point    SpherePoint `json:"point"`
}
