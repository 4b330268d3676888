package port

import (
	"context"

	"github.com/anicla/anicla/internal/domain"
)

type Classifier interface {
	Classify(ctx context.Context, hash string, kind domain.MediaKind) (string, error)
}
