// Package viewcache holds derived read views behind a ristretto cache.
// Writes go through the assignment engine, which invalidates entries only
// after the backing store confirmed the mutation.
package viewcache

import (
	"fmt"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/google/uuid"

	"github.com/AngelinaFiera614/wrenchmark-sub008/internal/core/domain"
	ports "github.com/AngelinaFiera614/wrenchmark-sub008/internal/core/ports/output"
)

const summaryCost = 1

type cache struct {
	store *ristretto.Cache[string, *domain.ComponentSummary]
}

func New(maxEntries int64) (ports.ViewCache, error) {
	store, err := ristretto.NewCache(&ristretto.Config[string, *domain.ComponentSummary]{
		NumCounters: maxEntries * 10,
		MaxCost:     maxEntries,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("init view cache: %w", err)
	}
	return &cache{store: store}, nil
}

func (c *cache) Summary(modelID uuid.UUID) (*domain.ComponentSummary, bool) {
	return c.store.Get(summaryKey(modelID))
}

func (c *cache) StoreSummary(summary *domain.ComponentSummary) {
	c.store.Set(summaryKey(summary.ModelID), summary, summaryCost)
	c.store.Wait()
}

func (c *cache) Invalidate(ids ...uuid.UUID) {
	for _, id := range ids {
		c.store.Del(summaryKey(id))
	}
}

func summaryKey(id uuid.UUID) string {
	return "summary:" + id.String()
}
