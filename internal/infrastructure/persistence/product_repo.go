package persistence

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"margin_engine/internal/domain"
	"margin_engine/internal/domain/entity"
	"margin_engine/pkg/errcodes"
)

type ProductRepository struct {
	db *sqlx.DB
}

// NewProductRepository создаёт репозиторий каталога поверх postgres.
func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// withTx выполняет функцию в транзакции.
func (r *ProductRepository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.WrapError(err, errcodes.CatalogUnavailable, "failed to begin transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return domain.WrapError(
				fmt.Errorf("%w; rollback: %v", err, rbErr),
				errcodes.CatalogUnavailable,
				"transaction failed",
			)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return domain.WrapError(err, errcodes.CatalogUnavailable, "failed to commit")
	}

	return nil
}

// List возвращает весь каталог, упорядоченный по имени.
func (r *ProductRepository) List(ctx context.Context) ([]entity.Product, error) {
	query := `
		SELECT name, category, sub_category, min_price, avg_price, max_price,
		       market_volume, price_trend, margin_potential, updated_at
		FROM comparable_products
		ORDER BY name`

	var schemas []productSchema
	if err := r.db.SelectContext(ctx, &schemas, query); err != nil {
		return nil, domain.WrapError(err, errcodes.CatalogUnavailable, "failed to list products")
	}

	products := make([]entity.Product, 0, len(schemas))
	for _, s := range schemas {
		p, err := s.toDomain()
		if err != nil {
			return nil, domain.WrapError(err, errcodes.CatalogUnavailable, "failed to convert product")
		}
		products = append(products, p)
	}

	return products, nil
}

// Upsert сохраняет товары атомарно, существующие обновляются по имени.
func (r *ProductRepository) Upsert(ctx context.Context, products []entity.Product) error {
	if len(products) == 0 {
		return nil
	}

	query := `
		INSERT INTO comparable_products (
			name, category, sub_category, min_price, avg_price, max_price,
			market_volume, price_trend, margin_potential, updated_at
		) VALUES (
			:name, :category, :sub_category, :min_price, :avg_price, :max_price,
			:market_volume, :price_trend, :margin_potential, :updated_at
		)
		ON CONFLICT (name) DO UPDATE SET
			category         = EXCLUDED.category,
			sub_category     = EXCLUDED.sub_category,
			min_price        = EXCLUDED.min_price,
			avg_price        = EXCLUDED.avg_price,
			max_price        = EXCLUDED.max_price,
			market_volume    = EXCLUDED.market_volume,
			price_trend      = EXCLUDED.price_trend,
			margin_potential = EXCLUDED.margin_potential,
			updated_at       = EXCLUDED.updated_at`

	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		for i, p := range products {
			if _, err := tx.NamedExecContext(ctx, query, fromProduct(p)); err != nil {
				return domain.WrapError(err, errcodes.CatalogUnavailable,
					fmt.Sprintf("failed at index %d", i))
			}
		}
		return nil
	})
}
