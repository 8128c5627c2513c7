package pricing

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"margin_engine/internal/domain/entity"
)

const (
	domainLowShare  = 0.9
	domainHighShare = 1.1
)

type curveParams struct {
	cost       float64
	target     float64
	baseVolume float64
	elasticity float64
}

// PriceDomain границы поиска: от min_viable*0.9 до premium*1.1.
func PriceDomain(a entity.Anchors) (lo, hi float64) {
	return a.MinViable * domainLowShare, a.Premium * domainHighShare
}

// Linspace n равноотстоящих точек, обе границы включены.
func Linspace(lo, hi float64, n int) []float64 {
	points := make([]float64, n)
	if n == 1 {
		points[0] = lo
		return points
	}

	step := (hi - lo) / float64(n-1)
	for i := range points {
		points[i] = lo + float64(i)*step
	}
	points[n-1] = hi

	return points
}

func project(price float64, p curveParams) entity.ProjectionPoint {
	volume := ProjectVolume(price, p.target, p.baseVolume, p.elasticity)

	return entity.ProjectionPoint{
		Price:     price,
		Volume:    volume,
		Revenue:   price * volume,
		Profit:    (price - p.cost) * volume,
		MarginPct: (price - p.cost) / price * 100,
	}
}

// sampleCurve считает точки кривой. При workers > 1 точки считаются
// параллельно, каждая горутина пишет только в свой индекс.
func sampleCurve(ctx context.Context, prices []float64, p curveParams, workers int) ([]entity.ProjectionPoint, error) {
	curve := make([]entity.ProjectionPoint, len(prices))

	if workers <= 1 {
		for i, price := range prices {
			curve[i] = project(price, p)
		}

		return curve, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, price := range prices {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err //nolint:wrapcheck
			}

			curve[i] = project(price, p)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("sampleCurve: %w", err)
	}

	return curve, nil
}

// Argmax индекс точки с максимальной прибылью. Кривая упорядочена по цене,
// поэтому при равенстве побеждает наименьшая цена. Для пустой кривой -1.
func Argmax(curve []entity.ProjectionPoint) int {
	best := -1
	for i, pt := range curve {
		if best < 0 || pt.Profit > curve[best].Profit {
			best = i
		}
	}

	return best
}
