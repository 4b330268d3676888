package library

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/anicla/anicla/internal/domain"
	"github.com/anicla/anicla/internal/infrastructure/logger"
	"github.com/anicla/anicla/internal/port"
	"golang.org/x/crypto/blake2b"
)

// Store keeps originals and their thumbnails under
// <dataDir>/library/<hash>/, where hash is the hex BLAKE2b-256 of the
// original bytes.
type Store struct {
	dataDir   string
	converter port.MediaConverter
}

func NewStore(dataDir string, converter port.MediaConverter) *Store {
	return &Store{dataDir: dataDir, converter: converter}
}

func Hash(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func (s *Store) Root() string {
	return filepath.Join(s.dataDir, domain.LibraryDir)
}

func (s *Store) dir(hash string) (string, error) {
	if !validHash(hash) {
		return "", fmt.Errorf("invalid hash %q", hash)
	}
	return filepath.Join(s.Root(), hash), nil
}

func validHash(hash string) bool {
	if len(hash) != blake2b.Size256*2 {
		return false
	}
	_, err := hex.DecodeString(hash)
	return err == nil
}

// Save stores data and returns its hash. Saving bytes that are already
// present is a no-op, whatever name they arrive under.
func (s *Store) Save(_ context.Context, data []byte, originalName string) (string, error) {
	hash := Hash(data)
	dir := filepath.Join(s.Root(), hash)
	target := filepath.Join(dir, domain.OriginalFileName(originalName))

	if existing, err := s.OriginalPath(hash); err == nil {
		logger.Debug.Printf("library: %s already stored as %s", hash, filepath.Base(existing))
		return hash, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", domain.NewStorageError("save media file", fmt.Errorf("create library dir: %w", err))
	}

	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return "", domain.NewStorageError("save media file", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return "", domain.NewStorageError("save media file", err)
	}
	if err := tmp.Close(); err != nil {
		return "", domain.NewStorageError("save media file", err)
	}
	if err := os.Rename(tmpPath, target); err != nil {
		return "", domain.NewStorageError("save media file", err)
	}

	logger.Info.Printf("library: stored %s as %s (%d bytes)", logger.SanitizeForLog(originalName), hash, len(data))
	return hash, nil
}

// OriginalPath locates the stored original for hash.
func (s *Store) OriginalPath(hash string) (string, error) {
	dir, err := s.dir(hash)
	if err != nil {
		return "", err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("original for %s: %w", hash, domain.ErrNotFound)
		}
		return "", err
	}
	for _, e := range entries {
		if !e.IsDir() && domain.IsOriginalFileName(e.Name()) {
			return filepath.Join(dir, e.Name()), nil
		}
	}
	return "", fmt.Errorf("original for %s: %w", hash, domain.ErrNotFound)
}

// HashPath names the stored original relative to the data directory.
func (s *Store) HashPath(hash string) (string, error) {
	original, err := s.OriginalPath(hash)
	if err != nil {
		return "", err
	}
	return domain.HashPath(hash, filepath.Base(original)), nil
}

// ThumbnailPath is where the thumbnail for hash lives once derived.
func (s *Store) ThumbnailPath(hash string) (string, error) {
	dir, err := s.dir(hash)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, domain.ThumbFileName()), nil
}

func (s *Store) DeriveThumbnail(ctx context.Context, hash string, kind domain.MediaKind) error {
	original, err := s.OriginalPath(hash)
	if err != nil {
		return domain.NewDerivationError("generate thumbnail", err)
	}
	thumb, err := s.ThumbnailPath(hash)
	if err != nil {
		return domain.NewDerivationError("generate thumbnail", err)
	}

	tmp := thumb + ".tmp.jpg"
	defer os.Remove(tmp)

	if err := s.converter.Thumbnail(ctx, original, tmp, kind.IsVideo()); err != nil {
		return domain.NewDerivationError("generate thumbnail", err)
	}
	if _, err := os.Stat(tmp); err != nil {
		return domain.NewDerivationError("generate thumbnail", fmt.Errorf("no thumbnail produced for %s", hash))
	}
	if err := os.Rename(tmp, thumb); err != nil {
		return domain.NewDerivationError("generate thumbnail", err)
	}
	return nil
}

func (s *Store) ReadMetadata(ctx context.Context, hash string, kind domain.MediaKind) (domain.MediaInfo, error) {
	original, err := s.OriginalPath(hash)
	if err != nil {
		return domain.MediaInfo{}, domain.NewDerivationError("read media info", err)
	}

	probe, err := s.converter.Probe(ctx, original)
	if err != nil {
		return domain.MediaInfo{}, domain.NewDerivationError("read media info", err)
	}
	return probe.MediaInfo(kind)
}

var _ port.MediaStore = (*Store)(nil)
