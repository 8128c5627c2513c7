// Данный файл должен быть сгенерирован из openapi спецификации и называться types.gen.go
package rest

// OptimizeRequest Входные данные для расчёта оптимальной цены
type OptimizeRequest struct {
	BaseCost        float64 `json:"baseCost" validate:"gt=0,lte=1000000"`
	OverheadPct     int     `json:"overheadPct" validate:"min=5,max=40"`
	ShippingCost    float64 `json:"shippingCost" validate:"min=1,max=10"`
	MarketingPct    int     `json:"marketingPct" validate:"min=0,max=25"`
	OrderQuantity   int     `json:"orderQuantity" validate:"min=100,max=10000"`
	Segment         string  `json:"segment" validate:"required,oneof=Budget Mid-Range Premium Luxury"`
	Season          string  `json:"season" validate:"required,oneof=Spring/Summer Fall/Winter Year-round"`
	ProductCategory string  `json:"productCategory,omitempty" validate:"max=64"`
}

type Anchors struct {
	MinViable float64 `json:"minViable"`
	Target    float64 `json:"target"`
	Premium   float64 `json:"premium"`
}

type AnchorMargins struct {
	MinViable int `json:"minViable"`
	Target    int `json:"target"`
	Premium   int `json:"premium"`
}

type ProjectionPoint struct {
	Price     float64 `json:"price"`
	Volume    float64 `json:"volume"`
	Revenue   float64 `json:"revenue"`
	Profit    float64 `json:"profit"`
	MarginPct float64 `json:"marginPct"`
}

type TargetComparison struct {
	DiffPct  float64 `json:"diffPct"`
	Text     string  `json:"text"`
	Severity string  `json:"severity"`
}

type Optimization struct {
	OptimalPrice           float64          `json:"optimalPrice"`
	OptimalVolume          float64          `json:"optimalVolume"`
	OptimalProfit          float64          `json:"optimalProfit"`
	OptimalMarginPct       float64          `json:"optimalMarginPct"`
	DeviationFromTargetPct float64          `json:"deviationFromTargetPct"`
	Score                  int              `json:"score"`
	ConfidenceTier         string           `json:"confidenceTier"`
	TargetComparison       TargetComparison `json:"targetComparison"`
	SegmentTip             string           `json:"segmentTip"`
}

type CostComponent struct {
	Component  string  `json:"component"`
	Amount     float64 `json:"amount"`
	PctOfTotal float64 `json:"pctOfTotal"`
}

// OptimizeResponse Результат оптимизации цены
type OptimizeResponse struct {
	ProductCategory string            `json:"productCategory,omitempty"`
	TotalUnitCost   float64           `json:"totalUnitCost"`
	VolumeDiscount  float64           `json:"volumeDiscount"`
	Anchors         Anchors           `json:"anchors"`
	AnchorMargins   AnchorMargins     `json:"anchorMargins"`
	Curve           []ProjectionPoint `json:"curve"`
	Optimization    Optimization      `json:"optimization"`
	CostBreakdown   []CostComponent   `json:"costBreakdown"`
}

type SegmentPolicy struct {
	Segment      string  `json:"segment"`
	TargetMargin float64 `json:"targetMargin"`
	Elasticity   float64 `json:"elasticity"`
}

type SeasonFactor struct {
	Season string  `json:"season"`
	Factor float64 `json:"factor"`
}

type Product struct {
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	SubCategory     string  `json:"subCategory"`
	MinPrice        float64 `json:"minPrice"`
	AvgPrice        float64 `json:"avgPrice"`
	MaxPrice        float64 `json:"maxPrice"`
	MarketVolume    int     `json:"marketVolume"`
	PriceTrend      string  `json:"priceTrend"`
	MarginPotential string  `json:"marginPotential"`
}

type Products struct {
	Items []Product `json:"items"`
}

type MarketSummary struct {
	AvgPrice     float64 `json:"avgPrice"`
	MinPrice     float64 `json:"minPrice"`
	MaxPrice     float64 `json:"maxPrice"`
	MarketVolume int     `json:"marketVolume"`
	Trend        string  `json:"trend"`
}

// Positioning Рекомендация по ценовому позиционированию
type Positioning struct {
	Products             int           `json:"products"`
	Summary              MarketSummary `json:"summary"`
	MarginPotentialScore float64       `json:"marginPotentialScore"`
	EmptyDomain          bool          `json:"emptyDomain"`
	Strategy             string        `json:"strategy"`
	Confidence           int           `json:"confidence"`
	Advice               string        `json:"advice"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке (для отображения в UI в будущем)
	Message string `json:"message"`

	// SupportID Идентификатор запроса для поддержки
	SupportID string `json:"supportId"`
}

// ErrorCode Код ошибки
type ErrorCode string
