package entity

import "margin_engine/internal/domain/value"

// CostInputs структура себестоимости единицы товара.
type CostInputs struct {
	BaseCost      float64
	OverheadPct   float64
	ShippingCost  float64
	MarketingPct  float64
	OrderQuantity int
}

// QuoteRequest полностью заданный запрос на расчёт цены.
type QuoteRequest struct {
	Costs           CostInputs
	Segment         value.Segment
	Season          value.Season
	ProductCategory string
}

// CostRollup итог свёртки себестоимости.
type CostRollup struct {
	Overhead       float64
	Marketing      float64
	PreDiscount    float64
	VolumeDiscount float64
	TotalUnitCost  float64
}

type CostComponent struct {
	Component  string
	Amount     float64
	PctOfTotal float64
}

// Anchors якорные цены, MinViable <= Target <= Premium.
type Anchors struct {
	MinViable float64
	Target    float64
	Premium   float64
}

// AnchorMargins маржа каждой якорной цены в целых процентах.
type AnchorMargins struct {
	MinViable int
	Target    int
	Premium   int
}

type ProjectionPoint struct {
	Price     float64
	Volume    float64
	Revenue   float64
	Profit    float64
	MarginPct float64
}

type TargetComparison struct {
	DiffPct  float64
	Text     string
	Severity value.Severity
}

type OptimizationResult struct {
	OptimalPrice           float64
	OptimalVolume          float64
	OptimalProfit          float64
	OptimalMarginPct       float64
	DeviationFromTargetPct float64
	Score                  int
	ConfidenceTier         value.ConfidenceTier
	TargetComparison       TargetComparison
	SegmentTip             string
}

// Quote результат оптимизации. Curve отсортирована по возрастанию цены.
type Quote struct {
	ProductCategory string
	TotalUnitCost   float64
	VolumeDiscount  float64
	Anchors         Anchors
	AnchorMargins   AnchorMargins
	Curve           []ProjectionPoint
	Optimization    OptimizationResult
	CostBreakdown   []CostComponent
}

// Clone глубокая копия, чтобы вызывающий не мог изменить закэшированное значение.
func (q Quote) Clone() Quote {
	q.Curve = append([]ProjectionPoint(nil), q.Curve...)
	q.CostBreakdown = append([]CostComponent(nil), q.CostBreakdown...)

	return q
}
