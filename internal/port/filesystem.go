package port

import "context"

type FileSystem interface {
	Size(ctx context.Context, path string) (uint64, error)
	ReadFile(ctx context.Context, path string) ([]byte, error)
}
