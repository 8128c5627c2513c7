package server

import (
	"fmt"
	"net/url"

	"margin_engine/internal/domain/entity"
	"margin_engine/internal/domain/value"
	"margin_engine/pkg/rest"
)

func newDomainQuoteRequest(request rest.OptimizeRequest) (entity.QuoteRequest, error) {
	segment, err := value.ParseSegment(request.Segment)
	if err != nil {
		return entity.QuoteRequest{}, fmt.Errorf("value.ParseSegment: %w", err)
	}

	season, err := value.ParseSeason(request.Season)
	if err != nil {
		return entity.QuoteRequest{}, fmt.Errorf("value.ParseSeason: %w", err)
	}

	return entity.QuoteRequest{
		Costs: entity.CostInputs{
			BaseCost:      request.BaseCost,
			OverheadPct:   float64(request.OverheadPct),
			ShippingCost:  request.ShippingCost,
			MarketingPct:  float64(request.MarketingPct),
			OrderQuantity: request.OrderQuantity,
		},
		Segment:         segment,
		Season:          season,
		ProductCategory: request.ProductCategory,
	}, nil
}

func newRESTOptimizeResponse(q entity.Quote) rest.OptimizeResponse {
	curve := make([]rest.ProjectionPoint, 0, len(q.Curve))
	for _, p := range q.Curve {
		curve = append(curve, rest.ProjectionPoint{
			Price:     p.Price,
			Volume:    p.Volume,
			Revenue:   p.Revenue,
			Profit:    p.Profit,
			MarginPct: p.MarginPct,
		})
	}

	breakdown := make([]rest.CostComponent, 0, len(q.CostBreakdown))
	for _, c := range q.CostBreakdown {
		breakdown = append(breakdown, rest.CostComponent{
			Component:  c.Component,
			Amount:     c.Amount,
			PctOfTotal: c.PctOfTotal,
		})
	}

	o := q.Optimization

	return rest.OptimizeResponse{
		ProductCategory: q.ProductCategory,
		TotalUnitCost:   q.TotalUnitCost,
		VolumeDiscount:  q.VolumeDiscount,
		Anchors: rest.Anchors{
			MinViable: q.Anchors.MinViable,
			Target:    q.Anchors.Target,
			Premium:   q.Anchors.Premium,
		},
		AnchorMargins: rest.AnchorMargins{
			MinViable: q.AnchorMargins.MinViable,
			Target:    q.AnchorMargins.Target,
			Premium:   q.AnchorMargins.Premium,
		},
		Curve: curve,
		Optimization: rest.Optimization{
			OptimalPrice:           o.OptimalPrice,
			OptimalVolume:          o.OptimalVolume,
			OptimalProfit:          o.OptimalProfit,
			OptimalMarginPct:       o.OptimalMarginPct,
			DeviationFromTargetPct: o.DeviationFromTargetPct,
			Score:                  o.Score,
			ConfidenceTier:         o.ConfidenceTier.String(),
			TargetComparison: rest.TargetComparison{
				DiffPct:  o.TargetComparison.DiffPct,
				Text:     o.TargetComparison.Text,
				Severity: string(o.TargetComparison.Severity),
			},
			SegmentTip: o.SegmentTip,
		},
		CostBreakdown: breakdown,
	}
}

func newDomainProductFilter(query url.Values) (entity.ProductFilter, error) {
	priceRange, err := value.ParsePriceRange(query.Get("priceRange"))
	if err != nil {
		return entity.ProductFilter{}, fmt.Errorf("value.ParsePriceRange: %w", err)
	}

	return entity.ProductFilter{
		Category:    query.Get("category"),
		SubCategory: query.Get("subCategory"),
		PriceRange:  priceRange,
	}, nil
}

func newRESTProduct(p entity.Product) rest.Product {
	return rest.Product{
		Name:            p.Name,
		Category:        p.Category,
		SubCategory:     p.SubCategory,
		MinPrice:        p.MinPrice,
		AvgPrice:        p.AvgPrice,
		MaxPrice:        p.MaxPrice,
		MarketVolume:    p.MarketVolume,
		PriceTrend:      string(p.PriceTrend),
		MarginPotential: string(p.MarginPotential),
	}
}

func newRESTProducts(products []entity.Product) rest.Products {
	items := make([]rest.Product, 0, len(products))
	for _, p := range products {
		items = append(items, newRESTProduct(p))
	}

	return rest.Products{Items: items}
}

func newRESTPositioning(p entity.Positioning) rest.Positioning {
	return rest.Positioning{
		Products: len(p.Products),
		Summary: rest.MarketSummary{
			AvgPrice:     p.Summary.AvgPrice,
			MinPrice:     p.Summary.MinPrice,
			MaxPrice:     p.Summary.MaxPrice,
			MarketVolume: p.Summary.MarketVolume,
			Trend:        string(p.Summary.Trend),
		},
		MarginPotentialScore: p.MarginPotentialScore,
		EmptyDomain:          p.EmptyDomain,
		Strategy:             string(p.Strategy),
		Confidence:           p.Confidence,
		Advice:               p.Advice,
	}
}
