package dto

// HoverRequest - запрос подсветки. Ровно один из режимов: луч, точка на карте или готовый список пересечений
type HoverRequest struct {
	Ray   *RayInput  `json:"ray,omitempty"`
	Point *GeoInput  `json:"point,omitempty"`
	Hits  []HitInput `json:"hits,omitempty" validate:"omitempty,max=1000,dive"`
}

// Mode returns the number of populated query modes.
func (r HoverRequest) Mode() int {
	n := 0
	if r.Ray != nil {
		n++
	}
	if r.Point != nil {
		n++
	}
	if r.Hits != nil {
		n++
	}
	return n
}

// RayInput - луч указателя в мировых координатах
type RayInput struct {
	Origin    [3]float64 `json:"origin" validate:"dive,finite"`
	Direction [3]float64 `json:"direction" validate:"dive,finite"`
}

// GeoInput - географическая точка
type GeoInput struct {
	Lon float64 `json:"lon" validate:"finite,min=-180,max=180"`
	Lat float64 `json:"lat" validate:"finite,min=-90,max=90"`
}

// HitInput - пересечение, найденное рендерером самостоятельно
type HitInput struct {
	Owner    string  `json:"owner" validate:"required,max=16"`
	Distance float64 `json:"distance" validate:"finite,min=0"`
}

// DensityRequest - параметры выборки плотности
type DensityRequest struct {
	Count int `query:"count" validate:"omitempty,min=1,max=500000"`
}

// SpiralRequest - параметры генератора точек
type SpiralRequest struct {
	Count  int     `query:"count" validate:"required,min=1,max=500000"`
	Radius float64 `query:"radius" validate:"omitempty,finite,gt=0"`
}
