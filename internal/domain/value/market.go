package value

import "fmt"

type PriceTrend string

const (
	TrendUp   PriceTrend = "up"
	TrendFlat PriceTrend = "flat"
	TrendDown PriceTrend = "down"
)

func ParsePriceTrend(s string) (PriceTrend, error) {
	switch t := PriceTrend(s); t {
	case TrendUp, TrendFlat, TrendDown:
		return t, nil
	default:
		return "", fmt.Errorf("unknown price trend %q", s)
	}
}

type MarginPotential string

const (
	MarginHigh   MarginPotential = "High"
	MarginMedium MarginPotential = "Medium"
	MarginLow    MarginPotential = "Low"
)

func ParseMarginPotential(s string) (MarginPotential, error) {
	switch m := MarginPotential(s); m {
	case MarginHigh, MarginMedium, MarginLow:
		return m, nil
	default:
		return "", fmt.Errorf("unknown margin potential %q", s)
	}
}

// Score числовой вес: High=3, Medium=2, Low=1.
func (m MarginPotential) Score() float64 {
	switch m {
	case MarginHigh:
		return 3 //nolint:mnd
	case MarginMedium:
		return 2 //nolint:mnd
	case MarginLow:
		return 1
	default:
		return 0
	}
}

// PriceRange диапазон средней рыночной цены товара.
type PriceRange string

const (
	PriceRangeAll      PriceRange = "All Ranges"
	PriceRangeBudget   PriceRange = "Budget"
	PriceRangeMidRange PriceRange = "Mid-Range"
	PriceRangePremium  PriceRange = "Premium"
	PriceRangeLuxury   PriceRange = "Luxury"
)

// ParsePriceRange пустая строка трактуется как "All Ranges".
func ParsePriceRange(s string) (PriceRange, error) {
	if s == "" {
		return PriceRangeAll, nil
	}

	switch r := PriceRange(s); r {
	case PriceRangeAll, PriceRangeBudget, PriceRangeMidRange, PriceRangePremium, PriceRangeLuxury:
		return r, nil
	default:
		return "", fmt.Errorf("unknown price range %q", s)
	}
}

// Contains проверяет, попадает ли средняя цена в диапазон.
func (r PriceRange) Contains(avgPrice float64) bool {
	switch r {
	case PriceRangeBudget:
		return avgPrice < 18 //nolint:mnd
	case PriceRangeMidRange:
		return avgPrice >= 18 && avgPrice < 25 //nolint:mnd
	case PriceRangePremium:
		return avgPrice >= 25 && avgPrice < 35 //nolint:mnd
	case PriceRangeLuxury:
		return avgPrice >= 35 //nolint:mnd
	default:
		return true
	}
}
