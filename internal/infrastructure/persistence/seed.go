package persistence

import (
	"margin_engine/internal/domain/entity"
	"margin_engine/internal/domain/value"
)

// ReferenceProducts эталонный набор сопоставимых товаров. Тот же набор
// засевается миграцией в postgres.
func ReferenceProducts() []entity.Product {
	return []entity.Product{
		product("Slim Jeans", "Denim Bottoms", "Jeans", 15.99, 20.99, 25.99, 35000, value.TrendUp, value.MarginHigh),
		product("Regular Jeans", "Denim Bottoms", "Jeans", 14.50, 19.75, 24.99, 42000, value.TrendFlat, value.MarginMedium),
		product("Classic Jeans", "Denim Bottoms", "Jeans", 16.99, 22.99, 28.99, 28000, value.TrendUp, value.MarginHigh),
		product("Denim Shorts", "Denim Bottoms", "Shorts", 10.99, 14.99, 18.99, 18000, value.TrendDown, value.MarginMedium),
		product("Cargo Shorts", "Non-Denim Bottoms", "Shorts", 12.99, 16.99, 19.99, 15000, value.TrendFlat, value.MarginLow),
		product("Denim Jacket", "Denim Tops", "Jackets", 30.99, 37.99, 44.99, 12000, value.TrendUp, value.MarginHigh),
		product("Denim Shirt", "Denim Tops", "Shirts", 22.99, 27.99, 32.99, 14000, value.TrendFlat, value.MarginMedium),
		product("Chino Pants", "Non-Denim Bottoms", "Pants", 18.99, 24.99, 29.99, 22000, value.TrendDown, value.MarginLow),
		product("T-Shirts", "Knit Products", "T-Shirts", 7.99, 11.99, 14.99, 50000, value.TrendFlat, value.MarginMedium),
		product("Polo Shirts", "Knit Products", "Shirts", 12.99, 17.99, 22.99, 30000, value.TrendUp, value.MarginHigh),
	}
}

func product(
	name, category, subCategory string,
	minPrice, avgPrice, maxPrice float64,
	volume int,
	trend value.PriceTrend,
	margin value.MarginPotential,
) entity.Product {
	return entity.Product{
		Name:            name,
		Category:        category,
		SubCategory:     subCategory,
		MinPrice:        minPrice,
		AvgPrice:        avgPrice,
		MaxPrice:        maxPrice,
		MarketVolume:    volume,
		PriceTrend:      trend,
		MarginPotential: margin,
	}
}
