package cache

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"margin_engine/internal/domain/entity"
)

// Memory кэш котировок в памяти процесса.
type Memory struct {
	store *cache.Cache
}

func NewMemory(ttl, cleanupInterval time.Duration) *Memory {
	return &Memory{store: cache.New(ttl, cleanupInterval)}
}

func (m *Memory) Name() string {
	return "memory"
}

func (m *Memory) Get(_ context.Context, key string) (entity.Quote, bool, error) {
	v, ok := m.store.Get(key)
	if !ok {
		return entity.Quote{}, false, nil
	}

	q, ok := v.(entity.Quote)
	if !ok {
		m.store.Delete(key)
		return entity.Quote{}, false, nil
	}

	return q.Clone(), true, nil
}

func (m *Memory) Set(_ context.Context, key string, q entity.Quote) error {
	m.store.SetDefault(key, q.Clone())
	return nil
}

func (m *Memory) Len() int {
	return m.store.ItemCount()
}
