package domain

// Feature - входная запись коллекции стран ещё до регистрации
type Feature struct {
	Code     string       `json:"code"`
	Name     string       `json:"name"`
	Geometry Geometry     `json:"geometry"`
	Center   *SpherePoint `json:"center,omitempty"`
}

// Country - неизменяемая запись реестра
type Country struct {
	Code     string      `json:"code"`
	Name     string      `json:"name"`
	Geometry Geometry    `json:"-"`
	Center   SpherePoint `json:"center"`

	// CenterGeo is the geographic position of Center.
	CenterGeo GeoPoint `json:"center_geo"`
}
