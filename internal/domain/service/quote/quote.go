package quote

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"margin_engine/internal/domain"
	"margin_engine/internal/domain/entity"
	"margin_engine/pkg/logx"
)

// Cache мемоизация результатов оптимизации по каноническому ключу запроса.
type Cache interface {
	Get(ctx context.Context, key string) (entity.Quote, bool, error)
	Set(ctx context.Context, key string, q entity.Quote) error
	Name() string
}

type Optimizer interface {
	Optimize(ctx context.Context, req entity.QuoteRequest) (entity.Quote, error)
	Resolution() int
}

type Observer interface {
	ObserveOptimization(segment, tier string, elapsed time.Duration)
	ObserveValidationFailure()
	ObserveCacheHit()
}

type Service struct {
	optimizer Optimizer
	cache     Cache
	observer  Observer
}

func NewService(optimizer Optimizer) *Service {
	return &Service{
		optimizer: optimizer,
		observer:  nopObserver{},
	}
}

func (s *Service) WithCache(c Cache) *Service {
	s.cache = c
	return s
}

func (s *Service) WithObserver(o Observer) *Service {
	s.observer = o
	return s
}

// Optimize отдаёт закэшированный результат или считает новый. Ошибки кэша
// не прерывают расчёт.
func (s *Service) Optimize(ctx context.Context, req entity.QuoteRequest) (entity.Quote, error) {
	key := CacheKey(req, s.optimizer.Resolution())

	if s.cache != nil {
		q, ok, err := s.cache.Get(ctx, key)
		switch {
		case err != nil:
			logger(ctx).Warn(
				"quote cache get failed",
				slog.String(logx.FieldCacheBackend, s.cache.Name()),
				logx.Error(err),
			)
		case ok:
			s.observer.ObserveCacheHit()
			return q.Clone(), nil
		}
	}

	started := time.Now()

	q, err := s.optimizer.Optimize(ctx, req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			s.observer.ObserveValidationFailure()
		}

		return entity.Quote{}, err
	}

	s.observer.ObserveOptimization(
		req.Segment.String(),
		q.Optimization.ConfidenceTier.String(),
		time.Since(started),
	)

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, q.Clone()); err != nil {
			logger(ctx).Warn(
				"quote cache set failed",
				slog.String(logx.FieldCacheBackend, s.cache.Name()),
				slog.String(logx.FieldCacheKey, key),
				logx.Error(err),
			)
		}
	}

	return q, nil
}

// ObserveValidationFailure для ошибок, отсеянных до вызова движка.
func (s *Service) ObserveValidationFailure() {
	s.observer.ObserveValidationFailure()
}

// CacheKey канонический ключ запроса. Разрешение сетки входит в ключ,
// т.к. от него зависит результат.
func CacheKey(req entity.QuoteRequest, resolution int) string {
	c := req.Costs

	return strings.Join([]string{
		"quote:v1",
		strconv.Itoa(resolution),
		formatFloat(c.BaseCost),
		formatFloat(c.OverheadPct),
		formatFloat(c.ShippingCost),
		formatFloat(c.MarketingPct),
		strconv.Itoa(c.OrderQuantity),
		req.Segment.String(),
		req.Season.String(),
		req.ProductCategory,
	}, "|")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

type nopObserver struct{}

func (nopObserver) ObserveOptimization(string, string, time.Duration) {}
func (nopObserver) ObserveValidationFailure() {}
func (nopObserver) ObserveCacheHit() {}
