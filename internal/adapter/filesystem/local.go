package filesystem

import (
	"context"
	"fmt"
	"os"

	"github.com/anicla/anicla/internal/port"
)

// Local reads dropped files from the host filesystem.
type Local struct {
	maxBytes uint64
}

// NewLocal returns a reader that refuses files larger than maxBytes.
// Zero disables the limit.
func NewLocal(maxBytes uint64) *Local {
	return &Local{maxBytes: maxBytes}
}

func (l *Local) Size(_ context.Context, path string) (uint64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	if !info.Mode().IsRegular() {
		return 0, fmt.Errorf("%s is not a regular file", path)
	}
	return uint64(info.Size()), nil
}

func (l *Local) ReadFile(ctx context.Context, path string) ([]byte, error) {
	size, err := l.Size(ctx, path)
	if err != nil {
		return nil, err
	}
	if l.maxBytes > 0 && size > l.maxBytes {
		return nil, fmt.Errorf("%s is %d bytes, limit is %d", path, size, l.maxBytes)
	}
	return os.ReadFile(path)
}

var _ port.FileSystem = (*Local)(nil)
