package pricing

import (
	"context"
	"fmt"
	"log/slog"
	"maps"

	"margin_engine/internal/domain"
	"margin_engine/internal/domain/entity"
	"margin_engine/internal/domain/value"
	"margin_engine/pkg/errcodes"
	"margin_engine/pkg/logx"
)

const (
	DefaultResolution = 20
	MaxResolution     = 1000
	minResolution     = 2
)

// Engine расчёт оптимальной цены. Состояния между вызовами не хранит,
// безопасен для конкурентного использования.
type Engine struct {
	resolution int
	workers    int
	overrides  map[value.Segment]value.SegmentPolicy
}

func NewEngine() *Engine {
	return &Engine{
		resolution: DefaultResolution,
		workers:    1,
		overrides:  map[value.Segment]value.SegmentPolicy{},
	}
}

// WithResolution число точек сетки, в пределах [2, MaxResolution].
func (e *Engine) WithResolution(n int) *Engine {
	e.resolution = min(max(n, minResolution), MaxResolution)
	return e
}

// WithWorkers ограничение параллелизма при расчёте кривой.
func (e *Engine) WithWorkers(n int) *Engine {
	e.workers = max(n, 1)
	return e
}

// WithSegmentPolicy переопределяет встроенную политику сегмента.
// Корректность проверяется в Check.
func (e *Engine) WithSegmentPolicy(s value.Segment, p value.SegmentPolicy) *Engine {
	e.overrides[s] = p
	return e
}

// Check проверяет сконфигурированные политики, вызывается при старте.
func (e *Engine) Check() error {
	for _, s := range value.Segments() {
		p, err := e.Policy(s)
		if err != nil {
			return err
		}

		if err := CheckPolicy(p); err != nil {
			return fmt.Errorf("segment %s: %w", s, err)
		}
	}

	return nil
}

func (e *Engine) Resolution() int {
	return e.resolution
}

// Policy действующая политика сегмента с учётом переопределений.
func (e *Engine) Policy(s value.Segment) (value.SegmentPolicy, error) {
	if p, ok := e.overrides[s]; ok {
		return p, nil
	}

	p, ok := s.Policy()
	if !ok {
		return value.SegmentPolicy{}, domain.NewError(errcodes.InvalidInput, fmt.Sprintf("unknown segment %q", s))
	}

	return p, nil
}

// Policies действующие политики всех сегментов.
func (e *Engine) Policies() map[value.Segment]value.SegmentPolicy {
	policies := make(map[value.Segment]value.SegmentPolicy, len(value.Segments()))
	for _, s := range value.Segments() {
		p, _ := s.Policy()
		policies[s] = p
	}

	maps.Copy(policies, e.overrides)

	return policies
}

// Optimize строит кривую прибыли и находит цену максимальной прибыли.
// При любой ошибке частичный результат не возвращается.
func (e *Engine) Optimize(ctx context.Context, req entity.QuoteRequest) (entity.Quote, error) {
	if err := Validate(req); err != nil {
		return entity.Quote{}, err
	}

	policy, err := e.Policy(req.Segment)
	if err != nil {
		return entity.Quote{}, err
	}

	factor, _ := req.Season.Factor()

	rollup := RollUp(req.Costs)
	cost := rollup.TotalUnitCost

	anchors, err := DeriveAnchors(cost, policy, factor)
	if err != nil {
		return entity.Quote{}, fmt.Errorf("segment %s: %w", req.Segment, err)
	}

	lo, hi := PriceDomain(anchors)

	curve, err := sampleCurve(ctx, Linspace(lo, hi, e.resolution), curveParams{
		cost:       cost,
		target:     anchors.Target,
		baseVolume: float64(req.Costs.OrderQuantity),
		elasticity: policy.Elasticity,
	}, e.workers)
	if err != nil {
		return entity.Quote{}, err
	}

	if err := checkCurve(curve); err != nil {
		return entity.Quote{}, err
	}

	best := curve[Argmax(curve)]
	deviation, score, tier := Score(best.Price, anchors.Target)

	quote := entity.Quote{
		ProductCategory: req.ProductCategory,
		TotalUnitCost:   value.Round2(cost),
		VolumeDiscount:  rollup.VolumeDiscount,
		Anchors:         anchors,
		AnchorMargins:   AnchorMargins(cost, anchors),
		Curve:           curve,
		Optimization: entity.OptimizationResult{
			OptimalPrice:           best.Price,
			OptimalVolume:          best.Volume,
			OptimalProfit:          best.Profit,
			OptimalMarginPct:       best.MarginPct,
			DeviationFromTargetPct: deviation * 100, //nolint:mnd
			Score:                  score,
			ConfidenceTier:         tier,
			TargetComparison:       CompareToTarget(best.Price, anchors.Target),
			SegmentTip:             req.Segment.Tip(),
		},
		CostBreakdown: Breakdown(req.Costs, rollup),
	}

	logger(ctx).Debug(
		"price optimized",
		slog.String(logx.FieldSegment, req.Segment.String()),
		slog.String(logx.FieldSeason, req.Season.String()),
		slog.Int(logx.FieldGridPoints, e.resolution),
		slog.Float64(logx.FieldOptimalPrice, best.Price),
		slog.String(logx.FieldConfidenceTier, tier.String()),
	)

	return quote, nil
}
