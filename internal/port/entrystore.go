package port

import (
	"context"

	"github.com/anicla/anicla/internal/domain"
)

// EntryStore persists classification history. Entries are append-only.
type EntryStore interface {
	Add(ctx context.Context, entry *domain.MediaEntry) error
	List(ctx context.Context) ([]*domain.MediaEntry, error)
}
