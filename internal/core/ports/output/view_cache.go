package output

import (
	"github.com/google/uuid"

	"github.com/AngelinaFiera614/wrenchmark-sub008/internal/core/domain"
)

// ViewCache holds derived read views keyed by entity id. Entries are
// invalidated synchronously after a successful mutation and never after a
// failed one.
type ViewCache interface {
	Summary(modelID uuid.UUID) (*domain.ComponentSummary, bool)
	StoreSummary(summary *domain.ComponentSummary)

	// Invalidate drops the views keyed by any of the given ids (model,
	// model-year or configuration).
	Invalidate(ids ...uuid.UUID)
}
