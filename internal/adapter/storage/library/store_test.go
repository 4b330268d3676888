package library

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/anicla/anicla/internal/domain"
	"github.com/anicla/anicla/internal/port/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func writeThumb(_ context.Context, _ string, output string, _ bool) error {
	return os.WriteFile(output, []byte("jpeg"), 0644)
}

func TestHash(t *testing.T) {
	a := Hash([]byte("hello"))
	assert.Len(t, a, 64)
	assert.Equal(t, a, Hash([]byte("hello")))
	assert.NotEqual(t, a, Hash([]byte("hello!")))
	assert.True(t, validHash(a))
	assert.False(t, validHash("abc123"))
	assert.False(t, validHash("../../etc/passwd"))
}

func TestStore_SaveIsIdempotent(t *testing.T) {
	dataDir := t.TempDir()
	store := NewStore(dataDir, mocks.NewMediaConverterMock(t))
	ctx := context.Background()
	data := []byte("\x89PNG some image")

	first, err := store.Save(ctx, data, "cat.png")
	require.NoError(t, err)
	second, err := store.Save(ctx, data, "cat.png")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	dir := filepath.Join(dataDir, "library", first)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temp files should be left behind")
	assert.Equal(t, "original.png", entries[0].Name())

	stored, err := os.ReadFile(filepath.Join(dir, "original.png"))
	require.NoError(t, err)
	assert.Equal(t, data, stored)
}

func TestStore_SaveSameBytesUnderAnotherName(t *testing.T) {
	dataDir := t.TempDir()
	store := NewStore(dataDir, mocks.NewMediaConverterMock(t))
	ctx := context.Background()
	data := []byte("\x89PNG some image")

	first, err := store.Save(ctx, data, "cat.png")
	require.NoError(t, err)
	second, err := store.Save(ctx, data, "cat.jpg")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	entries, err := os.ReadDir(filepath.Join(dataDir, "library", first))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "original.png", entries[0].Name())

	hashPath, err := store.HashPath(second)
	require.NoError(t, err)
	assert.Equal(t, "library/"+first+"/original.png", hashPath)
}

func TestStore_HashPathUnknown(t *testing.T) {
	store := NewStore(t.TempDir(), mocks.NewMediaConverterMock(t))

	_, err := store.HashPath(Hash([]byte("never saved")))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_SaveDistinctContent(t *testing.T) {
	store := NewStore(t.TempDir(), mocks.NewMediaConverterMock(t))
	ctx := context.Background()

	a, err := store.Save(ctx, []byte("one"), "a.jpg")
	require.NoError(t, err)
	b, err := store.Save(ctx, []byte("two"), "b.JPG")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	path, err := store.OriginalPath(b)
	require.NoError(t, err)
	assert.Equal(t, "original.jpg", filepath.Base(path))
}

func TestStore_SaveFailsOnReadOnlyRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "file-not-dir")
	require.NoError(t, os.WriteFile(root, []byte("x"), 0644))

	store := NewStore(root, mocks.NewMediaConverterMock(t))
	_, err := store.Save(context.Background(), []byte("data"), "cat.png")

	assert.ErrorIs(t, err, domain.ErrStorage)
}

func TestStore_DeriveThumbnail(t *testing.T) {
	conv := mocks.NewMediaConverterMock(t)
	store := NewStore(t.TempDir(), conv)
	ctx := context.Background()

	hash, err := store.Save(ctx, []byte("video bytes"), "clip.mp4")
	require.NoError(t, err)
	original, err := store.OriginalPath(hash)
	require.NoError(t, err)

	conv.EXPECT().Thumbnail(mock.Anything, original, mock.AnythingOfType("string"), true).
		RunAndReturn(writeThumb).Once()

	require.NoError(t, store.DeriveThumbnail(ctx, hash, domain.MediaKindVideo))

	thumb, err := store.ThumbnailPath(hash)
	require.NoError(t, err)
	data, err := os.ReadFile(thumb)
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg"), data)
	assert.Equal(t, "thumb.jpg", filepath.Base(thumb))
}

func TestStore_DeriveThumbnailFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown hash", func(t *testing.T) {
		store := NewStore(t.TempDir(), mocks.NewMediaConverterMock(t))
		err := store.DeriveThumbnail(ctx, Hash([]byte("never saved")), domain.MediaKindImage)
		assert.ErrorIs(t, err, domain.ErrDerivation)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("converter fails", func(t *testing.T) {
		conv := mocks.NewMediaConverterMock(t)
		store := NewStore(t.TempDir(), conv)
		hash, err := store.Save(ctx, []byte("img"), "cat.png")
		require.NoError(t, err)

		conv.EXPECT().Thumbnail(mock.Anything, mock.Anything, mock.Anything, false).
			Return(errors.New("ffmpeg: exit status 1")).Once()

		err = store.DeriveThumbnail(ctx, hash, domain.MediaKindImage)
		assert.ErrorIs(t, err, domain.ErrDerivation)
	})

	t.Run("converter produces nothing", func(t *testing.T) {
		conv := mocks.NewMediaConverterMock(t)
		store := NewStore(t.TempDir(), conv)
		hash, err := store.Save(ctx, []byte("img"), "cat.png")
		require.NoError(t, err)

		conv.EXPECT().Thumbnail(mock.Anything, mock.Anything, mock.Anything, false).Return(nil).Once()

		err = store.DeriveThumbnail(ctx, hash, domain.MediaKindImage)
		assert.ErrorIs(t, err, domain.ErrDerivation)
		assert.Contains(t, err.Error(), "no thumbnail produced")
	})
}

func TestStore_ReadMetadata(t *testing.T) {
	conv := mocks.NewMediaConverterMock(t)
	store := NewStore(t.TempDir(), conv)
	ctx := context.Background()

	hash, err := store.Save(ctx, []byte("img"), "cat.png")
	require.NoError(t, err)

	conv.EXPECT().Probe(mock.Anything, mock.AnythingOfType("string")).Return(&domain.ProbeResult{
		Format:  domain.ProbeFormat{FormatName: "png_pipe"},
		Streams: []domain.ProbeStream{{CodecType: "video", Width: 800, Height: 600}},
	}, nil).Once()

	info, err := store.ReadMetadata(ctx, hash, domain.MediaKindImage)
	require.NoError(t, err)
	assert.Equal(t, "800x600", info.Resolution)
	assert.Nil(t, info.Duration)
}

func TestStore_ReadMetadataVideo(t *testing.T) {
	conv := mocks.NewMediaConverterMock(t)
	store := NewStore(t.TempDir(), conv)
	ctx := context.Background()

	hash, err := store.Save(ctx, []byte("vid"), "clip.webm")
	require.NoError(t, err)

	conv.EXPECT().Probe(mock.Anything, mock.Anything).Return(&domain.ProbeResult{
		Format:  domain.ProbeFormat{Duration: "3.25"},
		Streams: []domain.ProbeStream{{CodecType: "video", Width: 640, Height: 360}},
	}, nil).Once()

	info, err := store.ReadMetadata(ctx, hash, domain.MediaKindVideo)
	require.NoError(t, err)
	assert.Equal(t, "640x360", info.Resolution)
	require.NotNil(t, info.Duration)
	assert.InDelta(t, 3.25, *info.Duration, 0.001)
}

func TestStore_ReadMetadataFailures(t *testing.T) {
	ctx := context.Background()

	store := NewStore(t.TempDir(), mocks.NewMediaConverterMock(t))
	_, err := store.ReadMetadata(ctx, Hash([]byte("missing")), domain.MediaKindImage)
	assert.ErrorIs(t, err, domain.ErrDerivation)

	_, err = store.ReadMetadata(ctx, "not-a-hash", domain.MediaKindImage)
	assert.ErrorIs(t, err, domain.ErrDerivation)

	conv := mocks.NewMediaConverterMock(t)
	store = NewStore(t.TempDir(), conv)
	hash, err := store.Save(ctx, []byte("img"), "cat.png")
	require.NoError(t, err)
	conv.EXPECT().Probe(mock.Anything, mock.Anything).Return(nil, errors.New("ffprobe failed")).Once()

	_, err = store.ReadMetadata(ctx, hash, domain.MediaKindImage)
	assert.ErrorIs(t, err, domain.ErrDerivation)
}
