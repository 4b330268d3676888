package port

import (
	"context"

	"github.com/anicla/anicla/internal/domain"
)

// MediaStore is the content-addressed artifact store. Save must be
// idempotent: identical bytes yield the same hash and a single artifact.
type MediaStore interface {
	Save(ctx context.Context, data []byte, originalName string) (string, error)
	DeriveThumbnail(ctx context.Context, hash string, kind domain.MediaKind) error
	ReadMetadata(ctx context.Context, hash string, kind domain.MediaKind) (domain.MediaInfo, error)
	// HashPath is the slash-separated library path of the stored original.
	HashPath(hash string) (string, error)
}
