package pricing

import (
	"fmt"
	"math"
	"strings"

	"margin_engine/internal/domain"
	"margin_engine/internal/domain/entity"
	"margin_engine/pkg/errcodes"
)

// Validate проверяет область определения входных данных. Все нарушения
// собираются в одну ошибку InvalidInput.
func Validate(req entity.QuoteRequest) error {
	var violations []string

	c := req.Costs

	check := func(ok bool, format string, args ...any) {
		if !ok {
			violations = append(violations, fmt.Sprintf(format, args...))
		}
	}

	check(finite(c.BaseCost) && c.BaseCost > 0, "base_cost must be > 0, got %v", c.BaseCost)
	check(finite(c.OverheadPct) && c.OverheadPct >= 0 && c.OverheadPct <= 100,
		"overhead_pct must be within [0,100], got %v", c.OverheadPct)
	check(finite(c.ShippingCost) && c.ShippingCost >= 0, "shipping_cost must be >= 0, got %v", c.ShippingCost)
	check(finite(c.MarketingPct) && c.MarketingPct >= 0 && c.MarketingPct <= 100,
		"marketing_pct must be within [0,100], got %v", c.MarketingPct)
	check(c.OrderQuantity > 0, "order_quantity must be > 0, got %d", c.OrderQuantity)

	_, ok := req.Segment.Policy()
	check(ok, "unknown segment %q", req.Segment)

	_, ok = req.Season.Factor()
	check(ok, "unknown season %q", req.Season)

	if len(violations) == 0 {
		return nil
	}

	return domain.NewError(errcodes.InvalidInput, "invalid input: "+strings.Join(violations, "; "))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
