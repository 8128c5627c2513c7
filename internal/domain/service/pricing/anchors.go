package pricing

import (
	"fmt"

	"margin_engine/internal/domain"
	"margin_engine/internal/domain/entity"
	"margin_engine/internal/domain/value"
	"margin_engine/pkg/errcodes"
)

const (
	minViableMarginShare = 0.6
	premiumMarginShare   = 1.2
)

// CheckPolicy отбрасывает политику, при которой хотя бы один знаменатель
// формулы якорей неположителен.
func CheckPolicy(p value.SegmentPolicy) error {
	m := p.TargetMargin
	if m <= 0 || m >= 1 || 1-m*premiumMarginShare <= 0 {
		return domain.NewError(
			errcodes.DegenerateConfiguration,
			fmt.Sprintf("target margin %.4f yields a non-positive anchor denominator", m),
		)
	}

	if p.Elasticity < 0 {
		return domain.NewError(
			errcodes.DegenerateConfiguration,
			fmt.Sprintf("elasticity %.4f must not be negative", p.Elasticity),
		)
	}

	return nil
}

// DeriveAnchors считает три якорные цены от себестоимости и целевой маржи,
// масштабирует их сезонным коэффициентом и округляет до центов.
func DeriveAnchors(cost float64, p value.SegmentPolicy, seasonalFactor float64) (entity.Anchors, error) {
	if err := CheckPolicy(p); err != nil {
		return entity.Anchors{}, err
	}

	m := p.TargetMargin

	minViable := cost / (1 - m*minViableMarginShare) * seasonalFactor
	target := cost / (1 - m) * seasonalFactor
	premium := cost / (1 - m*premiumMarginShare) * seasonalFactor

	if !finite(cost) || !finite(premium) {
		return entity.Anchors{}, domain.NewError(
			errcodes.InvalidInput,
			fmt.Sprintf("unit cost %g is out of the computable range", cost),
		)
	}

	anchors := entity.Anchors{
		MinViable: value.Round2(minViable),
		Target:    value.Round2(target),
		Premium:   value.Round2(premium),
	}

	// Цены округляются до центов: слишком малая себестоимость даёт нулевой якорь.
	if anchors.MinViable <= 0 {
		return entity.Anchors{}, domain.NewError(
			errcodes.InvalidInput,
			fmt.Sprintf("unit cost %g rounds to a zero anchor price", cost),
		)
	}

	return anchors, nil
}

// checkCurve отбрасывает кривую, в которой произведение цены на объём
// вышло за пределы float64.
func checkCurve(curve []entity.ProjectionPoint) error {
	for _, pt := range curve {
		if !finite(pt.Revenue) || !finite(pt.Profit) || !finite(pt.MarginPct) {
			return domain.NewError(
				errcodes.InvalidInput,
				fmt.Sprintf("profit at price %g is out of the computable range", pt.Price),
			)
		}
	}

	return nil
}

func AnchorMargins(cost float64, a entity.Anchors) entity.AnchorMargins {
	return entity.AnchorMargins{
		MinViable: marginAt(cost, a.MinViable),
		Target:    marginAt(cost, a.Target),
		Premium:   marginAt(cost, a.Premium),
	}
}

func marginAt(cost, price float64) int {
	if price <= 0 {
		return 0
	}

	return value.RoundInt((1 - cost/price) * 100)
}
