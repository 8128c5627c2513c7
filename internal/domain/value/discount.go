package value

type volumeDiscountTier struct {
	above int
	rate  float64
}

// Проверяются сверху вниз, срабатывает первый подходящий.
var volumeDiscountTiers = []volumeDiscountTier{ //nolint:gochecknoglobals
	{above: 5000, rate: 0.15}, //nolint:mnd
	{above: 2000, rate: 0.10}, //nolint:mnd
	{above: 1000, rate: 0.05}, //nolint:mnd
}

// VolumeDiscount скидка на себестоимость за объём заказа. Границы строгие:
// 1000 штук скидки не дают, 1001 дают 5%.
func VolumeDiscount(orderQuantity int) float64 {
	for _, tier := range volumeDiscountTiers {
		if orderQuantity > tier.above {
			return tier.rate
		}
	}

	return 0
}
