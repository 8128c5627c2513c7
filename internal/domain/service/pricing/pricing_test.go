package pricing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"margin_engine/internal/domain"
	"margin_engine/internal/domain/entity"
	"margin_engine/internal/domain/service/pricing"
	"margin_engine/internal/domain/value"
	"margin_engine/pkg/tests"
)

func referenceRequest() entity.QuoteRequest {
	return entity.QuoteRequest{
		Costs: entity.CostInputs{
			BaseCost:      15,
			OverheadPct:   20,
			ShippingCost:  2.5,
			MarketingPct:  10,
			OrderQuantity: 1000,
		},
		Segment: value.SegmentMidRange,
		Season:  value.SeasonYearRound,
	}
}

func randomRequest(r tests.Randomizer) entity.QuoteRequest {
	return entity.QuoteRequest{
		Costs: entity.CostInputs{
			BaseCost:      r.FloatBetween(0.5, 200),
			OverheadPct:   float64(r.IntBetween(5, 40)),
			ShippingCost:  r.FloatBetween(1, 10),
			MarketingPct:  float64(r.IntBetween(0, 25)),
			OrderQuantity: r.IntBetween(100, 10000),
		},
		Segment: tests.Choice(r, value.Segments()),
		Season:  tests.Choice(r, value.Seasons()),
	}
}

func TestOptimizeReferenceScenarios(t *testing.T) {
	type want struct {
		cost      float64
		anchors   entity.Anchors
		margins   entity.AnchorMargins
		price     float64
		volume    float64
		profit    float64
		marginPct float64
		deviation float64
		tier      value.ConfidenceTier
		score     int
	}

	testCases := []struct {
		name   string
		modify func(r *entity.QuoteRequest)
		want   want
	}{
		{
			name:   "mid-range year-round 1000 units",
			modify: func(*entity.QuoteRequest) {},
			want: want{
				cost:      22.55,
				anchors:   entity.Anchors{MinViable: 29.67, Target: 37.58, Premium: 43.37},
				margins:   entity.AnchorMargins{MinViable: 24, Target: 40, Premium: 48},
				price:     42.1796,
				volume:    816.4064,
				profit:    16025.7569,
				marginPct: 46.5382,
				deviation: 12.24,
				tier:      value.ConfidenceFair,
				score:     75,
			},
		},
		{
			name:   "mid-range fall/winter",
			modify: func(r *entity.QuoteRequest) { r.Season = value.SeasonFallWinter },
			want: want{
				cost:      22.55,
				anchors:   entity.Anchors{MinViable: 32.64, Target: 41.34, Premium: 47.70},
				margins:   entity.AnchorMargins{MinViable: 31, Target: 45, Premium: 53},
				price:     45.1772,
				volume:    860.7708,
				profit:    19476.7959,
				marginPct: 50.0854,
				deviation: 9.28,
				tier:      value.ConfidenceGood,
				score:     85,
			},
		},
		{
			name:   "luxury",
			modify: func(r *entity.QuoteRequest) { r.Segment = value.SegmentLuxury },
			want: want{
				cost:      22.55,
				anchors:   entity.Anchors{MinViable: 43.37, Target: 112.75, Premium: 563.75},
				margins:   entity.AnchorMargins{MinViable: 48, Target: 80, Premium: 96},
				price:     161.3682,
				volume:    698.1578,
				profit:    96916.9767,
				marginPct: 86.0257,
				deviation: 43.12,
				tier:      value.ConfidenceWeak,
				score:     65,
			},
		},
		{
			name:   "budget",
			modify: func(r *entity.QuoteRequest) { r.Segment = value.SegmentBudget },
			want: want{
				cost:      22.55,
				anchors:   entity.Anchors{MinViable: 26.53, Target: 30.07, Premium: 32.21},
				margins:   entity.AnchorMargins{MinViable: 15, Target: 25, Premium: 30},
				price:     33.6067,
				volume:    764.7699,
				profit:    8455.8195,
				marginPct: 32.9003,
				deviation: 11.76,
				tier:      value.ConfidenceFair,
				score:     75,
			},
		},
		{
			name: "mid-range 6000 units gets 15% discount",
			modify: func(r *entity.QuoteRequest) {
				r.Costs.OrderQuantity = 6000
			},
			want: want{
				cost:      19.17,
				anchors:   entity.Anchors{MinViable: 25.22, Target: 31.95, Premium: 36.86},
				margins:   entity.AnchorMargins{MinViable: 24, Target: 40, Premium: 48},
				price:     35.8492,
				volume:    4901.6457,
				profit:    81767.5761,
				marginPct: 46.5329,
				deviation: 12.2,
				tier:      value.ConfidenceFair,
				score:     75,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			req := referenceRequest()
			tc.modify(&req)

			quote, err := pricing.NewEngine().Optimize(context.Background(), req)
			rq.NoError(err)

			rq.InDelta(tc.want.cost, quote.TotalUnitCost, 0.006)
			rq.Equal(tc.want.anchors, quote.Anchors)
			rq.Equal(tc.want.margins, quote.AnchorMargins)
			rq.Len(quote.Curve, pricing.DefaultResolution)

			opt := quote.Optimization
			rq.InDelta(tc.want.price, opt.OptimalPrice, 1e-3)
			rq.InDelta(tc.want.volume, opt.OptimalVolume, 1e-3)
			rq.InDelta(tc.want.profit, opt.OptimalProfit, 1e-2)
			rq.InDelta(tc.want.marginPct, opt.OptimalMarginPct, 1e-3)
			rq.InDelta(tc.want.deviation, opt.DeviationFromTargetPct, 1e-2)
			rq.Equal(tc.want.tier, opt.ConfidenceTier)
			rq.Equal(tc.want.score, opt.Score)
			rq.Equal(req.Segment.Tip(), opt.SegmentTip)
		})
	}
}

func TestOptimizeEchoesCategoryAndBreakdown(t *testing.T) {
	rq := require.New(t)

	req := referenceRequest()
	req.ProductCategory = "Denim Bottoms"

	quote, err := pricing.NewEngine().Optimize(context.Background(), req)
	rq.NoError(err)

	rq.Equal("Denim Bottoms", quote.ProductCategory)
	rq.InDelta(0.0, quote.VolumeDiscount, 0)
	rq.Equal([]entity.CostComponent{
		{Component: "Base Production", Amount: 15, PctOfTotal: 66.5},
		{Component: "Overhead & Operations", Amount: 3, PctOfTotal: 13.3},
		{Component: "Shipping & Logistics", Amount: 2.5, PctOfTotal: 11.1},
		{Component: "Marketing & Promotion", Amount: 2.05, PctOfTotal: 9.1},
	}, quote.CostBreakdown)
	rq.Equal(value.SeverityAlert, quote.Optimization.TargetComparison.Severity)
	rq.Equal(
		"Optimal price is 12.2% higher than your target price of $37.58",
		quote.Optimization.TargetComparison.Text,
	)
}

func TestDiscountBoundaries(t *testing.T) {
	rq := require.New(t)

	costAt := func(q int) float64 {
		req := referenceRequest()
		req.Costs.OrderQuantity = q

		return pricing.RollUp(req.Costs).TotalUnitCost
	}

	rq.InDelta(22.55, costAt(1000), 1e-9)
	rq.InDelta(21.4225, costAt(1001), 1e-9)
	rq.Less(costAt(6000), costAt(1000))

	prev := costAt(100)
	for _, q := range []int{999, 1000, 1001, 1999, 2000, 2001, 4999, 5000, 5001, 10000} {
		cur := costAt(q)
		rq.LessOrEqual(cur, prev, "quantity %d", q)
		prev = cur
	}
}

func TestAnchorProperties(t *testing.T) {
	rq := require.New(t)
	r := tests.NewRandomizer()

	for range 500 {
		req := randomRequest(r)

		quote, err := pricing.NewEngine().Optimize(context.Background(), req)
		rq.NoError(err, "seed %d", r.Seed)

		a := quote.Anchors
		rq.LessOrEqual(a.MinViable, a.Target, "seed %d", r.Seed)
		rq.LessOrEqual(a.Target, a.Premium, "seed %d", r.Seed)

		var sum float64
		for _, c := range quote.CostBreakdown {
			sum += c.PctOfTotal
		}
		rq.InDelta(100, sum, 0.2, "seed %d", r.Seed)

		for i := 1; i < len(quote.Curve); i++ {
			rq.Greater(quote.Curve[i].Price, quote.Curve[i-1].Price, "seed %d", r.Seed)
		}
	}
}

func TestHigherMarginRaisesAnchors(t *testing.T) {
	rq := require.New(t)

	const cost = 22.55

	prev, err := pricing.DeriveAnchors(cost, value.SegmentPolicy{TargetMargin: 0.05, Elasticity: 1}, 1)
	rq.NoError(err)

	for _, m := range []float64{0.1, 0.25, 0.4, 0.6, 0.8, 0.83} {
		cur, err := pricing.DeriveAnchors(cost, value.SegmentPolicy{TargetMargin: m, Elasticity: 1}, 1)
		rq.NoError(err)

		rq.Greater(cur.MinViable, prev.MinViable, "margin %v", m)
		rq.Greater(cur.Target, prev.Target, "margin %v", m)
		rq.Greater(cur.Premium, prev.Premium, "margin %v", m)
		prev = cur
	}
}

func TestLuxuryAboveBudget(t *testing.T) {
	rq := require.New(t)
	engine := pricing.NewEngine()

	req := referenceRequest()
	req.Segment = value.SegmentBudget
	budget, err := engine.Optimize(context.Background(), req)
	rq.NoError(err)

	req.Segment = value.SegmentLuxury
	luxury, err := engine.Optimize(context.Background(), req)
	rq.NoError(err)

	rq.Greater(luxury.Anchors.MinViable, budget.Anchors.MinViable)
	rq.Greater(luxury.Anchors.Target, budget.Anchors.Target)
	rq.Greater(luxury.Anchors.Premium, budget.Anchors.Premium)
}

func TestProjectVolume(t *testing.T) {
	rq := require.New(t)
	r := tests.NewRandomizer()

	for range 200 {
		target := r.FloatBetween(1, 500)
		base := float64(r.IntBetween(100, 10000))
		elasticity := r.FloatBetween(0.1, 3)

		rq.Equal(base, pricing.ProjectVolume(target, target, base, elasticity), "seed %d", r.Seed)

		prev := pricing.ProjectVolume(target*0.1, target, base, elasticity)
		for _, k := range []float64{0.5, 0.9, 1, 1.1, 1.5, 2, 5} {
			cur := pricing.ProjectVolume(target*k, target, base, elasticity)
			rq.LessOrEqual(cur, prev, "seed %d", r.Seed)
			rq.GreaterOrEqual(cur, 0.0)
			prev = cur
		}
	}

	rq.InDelta(0.0, pricing.ProjectVolume(100, 10, 1000, 2), 0)
}

func TestOptimumBeatsEverySample(t *testing.T) {
	rq := require.New(t)
	r := tests.NewRandomizer()

	for range 300 {
		req := randomRequest(r)

		quote, err := pricing.NewEngine().WithResolution(r.IntBetween(2, 200)).Optimize(context.Background(), req)
		rq.NoError(err, "seed %d", r.Seed)

		best := quote.Optimization
		for _, pt := range quote.Curve {
			rq.GreaterOrEqual(best.OptimalProfit, pt.Profit, "seed %d", r.Seed)
		}
	}
}

func TestArgmaxTieBreakLowestPrice(t *testing.T) {
	rq := require.New(t)

	curve := []entity.ProjectionPoint{
		{Price: 10, Profit: 5},
		{Price: 11, Profit: 7},
		{Price: 12, Profit: 7},
		{Price: 13, Profit: 6},
	}

	rq.Equal(1, pricing.Argmax(curve))
	rq.Equal(-1, pricing.Argmax(nil))
}

func TestLinspace(t *testing.T) {
	rq := require.New(t)

	points := pricing.Linspace(10, 20, 5)
	rq.Equal([]float64{10, 12.5, 15, 17.5, 20}, points)

	points = pricing.Linspace(1.1, 7.3, 20)
	rq.Len(points, 20)
	rq.InDelta(1.1, points[0], 0)
	rq.InDelta(7.3, points[19], 0)
}

func TestResolutionConfigurable(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		resolution int
		want       int
	}{
		{resolution: 0, want: 2},
		{resolution: 2, want: 2},
		{resolution: 101, want: 101},
		{resolution: 1_000_000, want: pricing.MaxResolution},
	}

	for _, tc := range testCases {
		quote, err := pricing.NewEngine().WithResolution(tc.resolution).Optimize(context.Background(), referenceRequest())
		rq.NoError(err)
		rq.Len(quote.Curve, tc.want)

		lo, hi := pricing.PriceDomain(quote.Anchors)
		rq.InDelta(lo, quote.Curve[0].Price, 1e-9)
		rq.InDelta(hi, quote.Curve[len(quote.Curve)-1].Price, 1e-9)
	}
}

func TestParallelSamplingMatchesSequential(t *testing.T) {
	rq := require.New(t)
	r := tests.NewRandomizer()

	sequential := pricing.NewEngine().WithResolution(500)
	parallel := pricing.NewEngine().WithResolution(500).WithWorkers(8)

	for range 20 {
		req := randomRequest(r)

		want, err := sequential.Optimize(context.Background(), req)
		rq.NoError(err)

		got, err := parallel.Optimize(context.Background(), req)
		rq.NoError(err)

		rq.Equal(want, got, "seed %d", r.Seed)
	}
}

func TestParallelSamplingCanceled(t *testing.T) {
	rq := require.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pricing.NewEngine().WithWorkers(4).Optimize(ctx, referenceRequest())
	rq.ErrorIs(err, context.Canceled)
}

func TestScore(t *testing.T) {
	testCases := []struct {
		name    string
		optimal float64
		score   int
		tier    value.ConfidenceTier
	}{
		{name: "exact", optimal: 100, score: 95, tier: value.ConfidenceExcellent},
		{name: "4.9% below", optimal: 95.1, score: 95, tier: value.ConfidenceExcellent},
		{name: "5% above", optimal: 105, score: 85, tier: value.ConfidenceGood},
		{name: "9% above", optimal: 109, score: 85, tier: value.ConfidenceGood},
		{name: "12% below", optimal: 88, score: 75, tier: value.ConfidenceFair},
		{name: "15% above", optimal: 115, score: 65, tier: value.ConfidenceWeak},
		{name: "far", optimal: 300, score: 65, tier: value.ConfidenceWeak},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			_, score, tier := pricing.Score(tc.optimal, 100)
			rq.Equal(tc.score, score)
			rq.Equal(tc.tier, tier)
		})
	}
}

func TestCompareToTarget(t *testing.T) {
	testCases := []struct {
		name     string
		optimal  float64
		text     string
		severity value.Severity
	}{
		{
			name:     "close",
			optimal:  103,
			text:     "Optimal price is close to your target price of $100.00",
			severity: value.SeverityOK,
		},
		{
			name:     "higher within warn band",
			optimal:  108,
			text:     "Optimal price is 8.0% higher than your target price of $100.00",
			severity: value.SeverityWarn,
		},
		{
			name:     "lower beyond warn band",
			optimal:  80,
			text:     "Optimal price is 20.0% lower than your target price of $100.00",
			severity: value.SeverityAlert,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			got := pricing.CompareToTarget(tc.optimal, 100)
			rq.Equal(tc.text, got.Text)
			rq.Equal(tc.severity, got.Severity)
		})
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		modify  func(r *entity.QuoteRequest)
		message string
	}{
		{
			name:    "zero base cost",
			modify:  func(r *entity.QuoteRequest) { r.Costs.BaseCost = 0 },
			message: "base_cost must be > 0",
		},
		{
			name:    "zero quantity",
			modify:  func(r *entity.QuoteRequest) { r.Costs.OrderQuantity = 0 },
			message: "order_quantity must be > 0",
		},
		{
			name:    "overhead above 100",
			modify:  func(r *entity.QuoteRequest) { r.Costs.OverheadPct = 120 },
			message: "overhead_pct must be within [0,100]",
		},
		{
			name:    "negative shipping",
			modify:  func(r *entity.QuoteRequest) { r.Costs.ShippingCost = -1 },
			message: "shipping_cost must be >= 0",
		},
		{
			name:    "unknown segment",
			modify:  func(r *entity.QuoteRequest) { r.Segment = "Ultra" },
			message: `unknown segment "Ultra"`,
		},
		{
			name:    "unknown season",
			modify:  func(r *entity.QuoteRequest) { r.Season = "Monsoon" },
			message: `unknown season "Monsoon"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			req := referenceRequest()
			tc.modify(&req)

			quote, err := pricing.NewEngine().Optimize(context.Background(), req)
			rq.ErrorIs(err, domain.ErrInvalidInput)
			rq.ErrorContains(err, tc.message)
			rq.Empty(quote.Curve)
		})
	}
}

func TestValidateCollectsAllViolations(t *testing.T) {
	rq := require.New(t)

	req := referenceRequest()
	req.Costs.BaseCost = -5
	req.Costs.OrderQuantity = -1

	err := pricing.Validate(req)
	rq.ErrorIs(err, domain.ErrInvalidInput)
	rq.ErrorContains(err, "base_cost")
	rq.ErrorContains(err, "order_quantity")

	var appErr *domain.AppError
	rq.True(errors.As(err, &appErr))
}

func TestOptimizeRejectsUncomputableCosts(t *testing.T) {
	testCases := []struct {
		name     string
		segment  value.Segment
		base     float64
		shipping float64
		contains string
	}{
		{name: "anchors overflow", segment: value.SegmentMidRange, base: 1e308, shipping: 2.5, contains: "computable range"},
		{name: "profit overflows", segment: value.SegmentMidRange, base: 1e306, shipping: 2.5, contains: "profit at price"},
		{name: "anchors round to zero", segment: value.SegmentBudget, base: 0.001, shipping: 0, contains: "zero anchor"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			req := referenceRequest()
			req.Segment = tc.segment
			req.Costs.BaseCost = tc.base
			req.Costs.ShippingCost = tc.shipping

			var err error
			rq.NotPanics(func() {
				_, err = pricing.NewEngine().Optimize(context.Background(), req)
			})
			rq.ErrorIs(err, domain.ErrInvalidInput)
			rq.ErrorContains(err, tc.contains)
		})
	}
}

func TestDeriveAnchorsSmallestPositiveCost(t *testing.T) {
	rq := require.New(t)

	policy, _ := value.SegmentBudget.Policy()

	anchors, err := pricing.DeriveAnchors(0.01, policy, 1)
	rq.NoError(err)
	rq.Positive(anchors.MinViable)
	rq.LessOrEqual(anchors.MinViable, anchors.Target)
}

func TestDegenerateConfiguration(t *testing.T) {
	rq := require.New(t)

	for _, m := range []float64{0, 0.84, 1, 1.5, -0.1} {
		_, err := pricing.DeriveAnchors(22.55, value.SegmentPolicy{TargetMargin: m, Elasticity: 1}, 1)
		rq.ErrorIs(err, domain.ErrDegenerateConfiguration, "margin %v", m)
	}

	engine := pricing.NewEngine().WithSegmentPolicy(value.SegmentLuxury, value.SegmentPolicy{TargetMargin: 0.9, Elasticity: 0.7})
	rq.ErrorIs(engine.Check(), domain.ErrDegenerateConfiguration)

	req := referenceRequest()
	req.Segment = value.SegmentLuxury
	_, err := engine.Optimize(context.Background(), req)
	rq.ErrorIs(err, domain.ErrDegenerateConfiguration)

	rq.NoError(pricing.NewEngine().Check())
}

func TestSegmentPolicyOverride(t *testing.T) {
	rq := require.New(t)

	override := value.SegmentPolicy{TargetMargin: 0.5, Elasticity: 1.2}
	engine := pricing.NewEngine().WithSegmentPolicy(value.SegmentMidRange, override)
	rq.NoError(engine.Check())

	policies := engine.Policies()
	rq.Len(policies, 4)
	rq.Equal(override, policies[value.SegmentMidRange])

	budget, _ := value.SegmentBudget.Policy()
	rq.Equal(budget, policies[value.SegmentBudget])

	quote, err := engine.Optimize(context.Background(), referenceRequest())
	rq.NoError(err)
	rq.InDelta(45.1, quote.Anchors.Target, 1e-9)
}
