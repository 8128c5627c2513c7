package value

import (
	"fmt"
)

// Segment рыночный сегмент товара. Набор закрыт.
type Segment string

const (
	SegmentBudget   Segment = "Budget"
	SegmentMidRange Segment = "Mid-Range"
	SegmentPremium  Segment = "Premium"
	SegmentLuxury   Segment = "Luxury"
)

// SegmentPolicy целевая маржа и коэффициент эластичности спроса сегмента.
type SegmentPolicy struct {
	TargetMargin float64
	Elasticity   float64
}

var segmentPolicies = map[Segment]SegmentPolicy{ //nolint:gochecknoglobals
	SegmentBudget:   {TargetMargin: 0.25, Elasticity: 2.0}, //nolint:mnd
	SegmentMidRange: {TargetMargin: 0.40, Elasticity: 1.5}, //nolint:mnd
	SegmentPremium:  {TargetMargin: 0.60, Elasticity: 1.0}, //nolint:mnd
	SegmentLuxury:   {TargetMargin: 0.80, Elasticity: 0.7}, //nolint:mnd
}

// Segments возвращает сегменты в порядке возрастания позиционирования.
func Segments() []Segment {
	return []Segment{SegmentBudget, SegmentMidRange, SegmentPremium, SegmentLuxury}
}

func ParseSegment(s string) (Segment, error) {
	segment := Segment(s)
	if _, ok := segmentPolicies[segment]; !ok {
		return "", fmt.Errorf("unknown segment %q", s)
	}

	return segment, nil
}

func (s Segment) String() string {
	return string(s)
}

// Policy возвращает встроенную политику сегмента. Для неизвестного
// сегмента возвращается нулевое значение и false.
func (s Segment) Policy() (SegmentPolicy, bool) {
	p, ok := segmentPolicies[s]
	return p, ok
}

// Tip рекомендация по ценообразованию для сегмента.
func (s Segment) Tip() string {
	switch s {
	case SegmentBudget:
		return "Tip: In the budget segment, consider bundle pricing and volume discounts to maximize total sales value."
	case SegmentMidRange:
		return "Tip: For mid-range products, emphasize value-to-price ratio in marketing to justify the premium over budget alternatives."
	case SegmentPremium:
		return "Tip: Premium products benefit from tiered pricing strategies with 'good-better-best' options to capture different consumer segments."
	case SegmentLuxury:
		return "Tip: For luxury positioning, consider limited editions and exclusivity to maintain premium positioning and price integrity."
	default:
		return ""
	}
}
