package pricing

import (
	"margin_engine/internal/domain/entity"
	"margin_engine/internal/domain/value"
)

const (
	componentBase      = "Base Production"
	componentOverhead  = "Overhead & Operations"
	componentShipping  = "Shipping & Logistics"
	componentMarketing = "Marketing & Promotion"
)

// RollUp сворачивает структуру затрат в себестоимость единицы.
// Маркетинг считается от суммы base+overhead+shipping, скидка за объём
// применяется один раз к итогу.
func RollUp(c entity.CostInputs) entity.CostRollup {
	overhead := c.BaseCost * c.OverheadPct / 100
	marketing := (c.BaseCost + overhead + c.ShippingCost) * c.MarketingPct / 100
	preDiscount := c.BaseCost + overhead + c.ShippingCost + marketing
	discount := value.VolumeDiscount(c.OrderQuantity)

	return entity.CostRollup{
		Overhead:       overhead,
		Marketing:      marketing,
		PreDiscount:    preDiscount,
		VolumeDiscount: discount,
		TotalUnitCost:  preDiscount * (1 - discount),
	}
}

// Breakdown раскладывает себестоимость по компонентам. Доли считаются от
// суммы до скидки, поэтому в сумме дают 100%.
func Breakdown(c entity.CostInputs, r entity.CostRollup) []entity.CostComponent {
	amounts := []struct {
		name   string
		amount float64
	}{
		{componentBase, c.BaseCost},
		{componentOverhead, r.Overhead},
		{componentShipping, c.ShippingCost},
		{componentMarketing, r.Marketing},
	}

	components := make([]entity.CostComponent, 0, len(amounts))
	for _, a := range amounts {
		var pct float64
		if r.PreDiscount > 0 {
			pct = a.amount / r.PreDiscount * 100
		}

		components = append(components, entity.CostComponent{
			Component:  a.name,
			Amount:     value.Round2(a.amount),
			PctOfTotal: value.Round1(pct),
		})
	}

	return components
}
