package persistence

import (
	"context"
	"sync"

	"margin_engine/internal/domain/entity"
)

// MemoryProductRepository хранилище каталога в памяти процесса.
type MemoryProductRepository struct {
	mu       sync.RWMutex
	products []entity.Product
}

func NewMemoryProductRepository(products []entity.Product) *MemoryProductRepository {
	return &MemoryProductRepository{products: append([]entity.Product(nil), products...)}
}

func (r *MemoryProductRepository) List(_ context.Context) ([]entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]entity.Product(nil), r.products...), nil
}

// Upsert заменяет товары с совпадающим именем и добавляет новые.
func (r *MemoryProductRepository) Upsert(_ context.Context, products []entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	index := make(map[string]int, len(r.products))
	for i, p := range r.products {
		index[p.Name] = i
	}

	for _, p := range products {
		if i, ok := index[p.Name]; ok {
			r.products[i] = p
			continue
		}

		index[p.Name] = len(r.products)
		r.products = append(r.products, p)
	}

	return nil
}
