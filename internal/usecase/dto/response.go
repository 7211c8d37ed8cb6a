package dto

import (
	"github.com/globe-engine/internal/domain"
)

// CountryResponse - страна реестра
type CountryResponse struct {
	Code      string             `json:"code"`
	Name      string             `json:"name"`
	Center    domain.SpherePoint `json:"center"`
	CenterGeo domain.GeoPoint    `json:"center_geo"`
	Rings     int                `json:"rings"`
}

// CountryListResponse - все страны в порядке загрузки
type CountryListResponse struct {
	Countries []CountryResponse `json:"countries"`
	Total     int               `json:"total"`
}

// RegionResponse - контур для пикинга и линия границы для рендера
type RegionResponse struct {
	ID         domain.RegionID      `json:"id"`
	Owner      string               `json:"owner"`
	Polygon    int                  `json:"polygon"`
	Ring       int                  `json:"ring"`
	Hole       bool                 `json:"hole"`
	Degenerate bool                 `json:"degenerate"`
	Area       float64              `json:"area"`
	Outline    [][2]float64         `json:"outline"`
	Border     []domain.SpherePoint `json:"border"`
}

// RegionListResponse - набор регионов
type RegionListResponse struct {
	Regions []RegionResponse `json:"regions"`
	Total   int              `json:"total"`
}

// HoverResponse - события перехода и итоговое состояние
type HoverResponse struct {
	Events []domain.HoverEvent   `json:"events"`
	State  domain.HoverState     `json:"state"`
	Hits   []domain.Intersection `json:"hits,omitempty"`
}

// DensityResponse - выборка плотности по спирали со стилями маркеров
type DensityResponse struct {
	Count   int                    `json:"count"`
	Radius  float64                `json:"radius"`
	Cached  bool                   `json:"cached"`
	Samples []domain.DensitySample `json:"samples"`
	Markers []domain.Marker        `json:"markers"`
}

// SpiralResponse - точки спирали Фибоначчи
type SpiralResponse struct {
	Count  int                  `json:"count"`
	Radius float64              `json:"radius"`
	Points []domain.SpherePoint `json:"points"`
}

// HealthResponse - состояние сервиса
type HealthResponse struct {
	Status    string `json:"status"`
	SessionID string `json:"session_id"`
	Countries int    `json:"countries"`
	Regions   int    `json:"regions"`
	Raster    bool   `json:"raster"`
}
