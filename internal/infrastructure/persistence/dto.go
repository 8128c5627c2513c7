package persistence

import (
	"fmt"
	"time"

	"margin_engine/internal/domain/entity"
	"margin_engine/internal/domain/value"
)

// productSchema внутренняя структура для маппинга строки comparable_products.
type productSchema struct {
	Name            string    `db:"name"`
	Category        string    `db:"category"`
	SubCategory     string    `db:"sub_category"`
	MinPrice        float64   `db:"min_price"`
	AvgPrice        float64   `db:"avg_price"`
	MaxPrice        float64   `db:"max_price"`
	MarketVolume    int       `db:"market_volume"`
	PriceTrend      string    `db:"price_trend"`
	MarginPotential string    `db:"margin_potential"`
	UpdatedAt       time.Time `db:"updated_at"`
}

func fromProduct(p entity.Product) productSchema {
	return productSchema{
		Name:            p.Name,
		Category:        p.Category,
		SubCategory:     p.SubCategory,
		MinPrice:        p.MinPrice,
		AvgPrice:        p.AvgPrice,
		MaxPrice:        p.MaxPrice,
		MarketVolume:    p.MarketVolume,
		PriceTrend:      string(p.PriceTrend),
		MarginPotential: string(p.MarginPotential),
		UpdatedAt:       time.Now(),
	}
}

func (s productSchema) toDomain() (entity.Product, error) {
	trend, err := value.ParsePriceTrend(s.PriceTrend)
	if err != nil {
		return entity.Product{}, fmt.Errorf("product %q: %w", s.Name, err)
	}

	margin, err := value.ParseMarginPotential(s.MarginPotential)
	if err != nil {
		return entity.Product{}, fmt.Errorf("product %q: %w", s.Name, err)
	}

	return entity.Product{
		Name:            s.Name,
		Category:        s.Category,
		SubCategory:     s.SubCategory,
		MinPrice:        s.MinPrice,
		AvgPrice:        s.AvgPrice,
		MaxPrice:        s.MaxPrice,
		MarketVolume:    s.MarketVolume,
		PriceTrend:      trend,
		MarginPotential: margin,
	}, nil
}
