package entity

import "margin_engine/internal/domain/value"

// Product сопоставимый товар рынка.
type Product struct {
	Name            string
	Category        string
	SubCategory     string
	MinPrice        float64
	AvgPrice        float64
	MaxPrice        float64
	MarketVolume    int
	PriceTrend      value.PriceTrend
	MarginPotential value.MarginPotential
}

// ProductFilter пустые поля означают "любой".
type ProductFilter struct {
	Category    string
	SubCategory string
	PriceRange  value.PriceRange
}

type MarketTrend string

const (
	MarketRising    MarketTrend = "Rising"
	MarketStable    MarketTrend = "Stable"
	MarketDeclining MarketTrend = "Declining"
)

type MarketSummary struct {
	AvgPrice     float64
	MinPrice     float64
	MaxPrice     float64
	MarketVolume int
	Trend        MarketTrend
}

type PricingStrategy string

const (
	StrategyPremium     PricingStrategy = "Premium"
	StrategyBalanced    PricingStrategy = "Balanced"
	StrategyCompetitive PricingStrategy = "Competitive"
)

type Positioning struct {
	Products             []Product
	Summary              MarketSummary
	MarginPotentialScore float64
	// EmptyDomain выставляется, когда под фильтр не попал ни один товар
	// и использована нейтральная оценка.
	EmptyDomain bool
	Strategy    PricingStrategy
	Confidence  int
	Advice      string
}
