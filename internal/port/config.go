package port

import (
	"context"

	"github.com/anicla/anicla/internal/domain"
)

// ConfigStore loads and persists user settings.
type ConfigStore interface {
	Load(ctx context.Context) (domain.SettingsSnapshot, error)
	Set(ctx context.Context, key string, value any) error
}
