package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"margin_engine/internal/domain/entity"
	"margin_engine/pkg/logx"
)

type ProductRepository interface {
	List(ctx context.Context) ([]entity.Product, error)
}

type CatalogSnapshot interface {
	Replace(products []entity.Product)
}

// CatalogRefresher периодически перечитывает каталог сопоставимых товаров
// и подменяет снимок, с которым работает позиционирование.
type CatalogRefresher struct {
	repo     ProductRepository
	snapshot CatalogSnapshot
	interval time.Duration
}

func NewCatalogRefresher(repo ProductRepository, snapshot CatalogSnapshot) *CatalogRefresher {
	return &CatalogRefresher{
		repo:     repo,
		snapshot: snapshot,
		interval: 5 * time.Minute, //nolint:mnd
	}
}

func (w *CatalogRefresher) WithInterval(interval time.Duration) *CatalogRefresher {
	if interval > 0 {
		w.interval = interval
	}
	return w
}

// Refresh однократная загрузка каталога. При ошибке прежний снимок
// остаётся в силе.
func (w *CatalogRefresher) Refresh(ctx context.Context) error {
	products, err := w.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("repo.List: %w", err)
	}

	w.snapshot.Replace(products)

	logger(ctx).Debug("catalog refreshed", slog.Int(logx.FieldProducts, len(products)))

	return nil
}

// Run загружает каталог сразу и затем по таймеру до отмены контекста.
func (w *CatalogRefresher) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		if err := w.Refresh(ctx); err != nil && ctx.Err() == nil {
			logger(ctx).Error("catalog refresh failed", logx.Error(err))
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
