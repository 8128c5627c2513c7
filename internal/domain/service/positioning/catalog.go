package positioning

import (
	"sync/atomic"

	"margin_engine/internal/domain/entity"
)

// Catalog снимок сопоставимых товаров. Обновляется воркером целиком,
// читатели получают копию.
type Catalog struct {
	products atomic.Pointer[[]entity.Product]
}

func NewCatalog() *Catalog {
	return &Catalog{}
}

func (c *Catalog) Replace(products []entity.Product) {
	snapshot := append([]entity.Product(nil), products...)
	c.products.Store(&snapshot)
}

// Products возвращает false, пока снимок ни разу не загружался.
func (c *Catalog) Products() ([]entity.Product, bool) {
	p := c.products.Load()
	if p == nil {
		return nil, false
	}

	return append([]entity.Product(nil), (*p)...), true
}

func (c *Catalog) Loaded() bool {
	return c.products.Load() != nil
}
