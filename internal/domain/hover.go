package domain

// HoverEventType - тип события подсветки
type HoverEventType string

const (
	HoverHighlight   HoverEventType = "highlight"
	HoverUnhighlight HoverEventType = "unhighlight"
)

// HoverEvent - переход подсветки для рендерера
type HoverEvent struct {
	Type  HoverEventType `json:"type"`
	Code  string         `json:"code"`
	Style BorderStyle    `json:"style"`
}

// BorderStyle - визуальное состояние границы и подписи страны
type BorderStyle struct {
	Color        uint32  `json:"color"`
	Opacity      float64 `json:"opacity"`
	DepthTest    bool    `json:"depth_test"`
	RenderOrder  int     `json:"render_order"`
	LabelVisible bool    `json:"label_visible"`
}

var (
	// NormalBorderStyle applies to every non-highlighted country.
	NormalBorderStyle = BorderStyle{Color: 0xff0000, Opacity: 0.6, DepthTest: true, RenderOrder: 0}

	// HighlightBorderStyle is drawn above everything else.
	HighlightBorderStyle = BorderStyle{Color: 0xffffff, Opacity: 1, DepthTest: false, RenderOrder: 100, LabelVisible: true}
)

// HoverState - текущая подсвеченная страна (Active=false означает отсутствие)
type HoverState struct {
	Code   string `json:"code,omitempty"`
	Active bool   `json:"active"`
}
