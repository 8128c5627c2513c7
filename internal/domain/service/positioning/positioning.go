package positioning

import (
	"context"
	"log/slog"

	"github.com/samber/lo"

	"margin_engine/internal/domain"
	"margin_engine/internal/domain/entity"
	"margin_engine/internal/domain/value"
	"margin_engine/pkg/errcodes"
	"margin_engine/pkg/logx"
)

const (
	AllCategories    = "All Categories"
	AllSubCategories = "All Sub-Categories"

	// neutralMarginScore используется, когда под фильтр не попал ни один товар.
	neutralMarginScore = 2.0

	premiumAbove  = 2.5
	balancedAbove = 1.5
)

const (
	premiumAdvice = "The selected product category shows strong margin potential with limited price sensitivity. " +
		"Consider a premium pricing strategy 10-15% above market average to maximize profitability " +
		"while maintaining competitive positioning."
	balancedAdvice = "This product category shows moderate price elasticity. " +
		"We recommend pricing within 5% of market average with selective premium options " +
		"to optimize volume while maintaining healthy margins."
	competitiveAdvice = "This category is highly price-sensitive with significant competition. " +
		"Consider a competitive pricing strategy 5-10% below market average to drive volume, " +
		"with cost optimization to maintain profitability."
)

type Service struct {
	catalog *Catalog
}

func NewService(catalog *Catalog) *Service {
	return &Service{catalog: catalog}
}

func (s *Service) Products(ctx context.Context, f entity.ProductFilter) ([]entity.Product, error) {
	products, ok := s.catalog.Products()
	if !ok {
		return nil, domain.NewError(errcodes.CatalogUnavailable, "catalog is not loaded yet")
	}

	filtered := Filter(products, f)

	logger(ctx).Debug("products filtered", slog.Int(logx.FieldProducts, len(filtered)))

	return filtered, nil
}

func (s *Service) Position(ctx context.Context, f entity.ProductFilter) (entity.Positioning, error) {
	products, err := s.Products(ctx, f)
	if err != nil {
		return entity.Positioning{}, err
	}

	return Position(products), nil
}

// Filter пустые значения и "All ..." означают отсутствие фильтра.
func Filter(products []entity.Product, f entity.ProductFilter) []entity.Product {
	return lo.Filter(products, func(p entity.Product, _ int) bool {
		if f.Category != "" && f.Category != AllCategories && p.Category != f.Category {
			return false
		}

		if f.SubCategory != "" && f.SubCategory != AllSubCategories && p.SubCategory != f.SubCategory {
			return false
		}

		return f.PriceRange.Contains(p.AvgPrice)
	})
}

// Summarize для пустого набора возвращает нулевую сводку.
func Summarize(products []entity.Product) entity.MarketSummary {
	if len(products) == 0 {
		return entity.MarketSummary{}
	}

	return entity.MarketSummary{
		AvgPrice: value.Round2(lo.SumBy(products, func(p entity.Product) float64 {
			return p.AvgPrice
		}) / float64(len(products))),
		MinPrice: lo.Min(lo.Map(products, func(p entity.Product, _ int) float64 {
			return p.MinPrice
		})),
		MaxPrice: lo.Max(lo.Map(products, func(p entity.Product, _ int) float64 {
			return p.MaxPrice
		})),
		MarketVolume: lo.SumBy(products, func(p entity.Product) int {
			return p.MarketVolume
		}),
		Trend: Trend(products),
	}
}

// Trend преобладающее направление цен. При равенстве рост важнее
// стабильности, стабильность важнее падения.
func Trend(products []entity.Product) entity.MarketTrend {
	counts := lo.CountValuesBy(products, func(p entity.Product) value.PriceTrend {
		return p.PriceTrend
	})

	up, flat, down := counts[value.TrendUp], counts[value.TrendFlat], counts[value.TrendDown]
	top := max(up, flat, down)

	switch top {
	case up:
		return entity.MarketRising
	case flat:
		return entity.MarketStable
	default:
		return entity.MarketDeclining
	}
}

// MarginScore средний вес потенциала маржи. Второе значение true, если
// набор пуст и использована нейтральная оценка.
func MarginScore(products []entity.Product) (float64, bool) {
	if len(products) == 0 {
		return neutralMarginScore, true
	}

	total := lo.SumBy(products, func(p entity.Product) float64 {
		return p.MarginPotential.Score()
	})

	return total / float64(len(products)), false
}

func Recommend(score float64) (entity.PricingStrategy, int, string) {
	switch {
	case score > premiumAbove:
		return entity.StrategyPremium, 90, premiumAdvice //nolint:mnd
	case score > balancedAbove:
		return entity.StrategyBalanced, 75, balancedAdvice //nolint:mnd
	default:
		return entity.StrategyCompetitive, 60, competitiveAdvice //nolint:mnd
	}
}

func Position(products []entity.Product) entity.Positioning {
	score, empty := MarginScore(products)
	strategy, confidence, advice := Recommend(score)

	return entity.Positioning{
		Products:             products,
		Summary:              Summarize(products),
		MarginPotentialScore: value.Round2(score),
		EmptyDomain:          empty,
		Strategy:             strategy,
		Confidence:           confidence,
		Advice:               advice,
	}
}
