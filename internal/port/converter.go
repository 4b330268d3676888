package port

import (
	"context"

	"github.com/anicla/anicla/internal/domain"
)

// MediaConverter wraps the external frame-extraction and probing tools.
type MediaConverter interface {
	Thumbnail(ctx context.Context, inputPath, outputPath string, isVideo bool) error
	Probe(ctx context.Context, inputPath string) (*domain.ProbeResult, error)
}
