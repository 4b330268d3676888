package domain

import (
	"path/filepath"
	"strings"
)

type MediaKind string

const (
	MediaKindImage MediaKind = "Image"
	MediaKindVideo MediaKind = "Video"
)

func (k MediaKind) IsVideo() bool {
	return k == MediaKindVideo
}

var videoExts = map[string]bool{
	".mp4": true, ".webm": true, ".ogg": true,
	".mov": true, ".avi": true, ".mkv": true,
}

var imageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true,
	".gif": true, ".bmp": true, ".webp": true,
}

// KindFromExtension maps a filename or path to a media kind using the
// fixed drop allowlist. The second return value is false for anything
// outside the allowlist.
func KindFromExtension(name string) (MediaKind, bool) {
	ext := strings.ToLower(filepath.Ext(name))
	if videoExts[ext] {
		return MediaKindVideo, true
	}
	if imageExts[ext] {
		return MediaKindImage, true
	}
	return "", false
}

// KindFromMIME classifies a declared MIME type. Parameters such as
// "; charset=" are ignored.
func KindFromMIME(mime string) (MediaKind, bool) {
	mime = strings.ToLower(strings.TrimSpace(mime))
	if idx := strings.Index(mime, ";"); idx != -1 {
		mime = strings.TrimSpace(mime[:idx])
	}
	switch {
	case strings.HasPrefix(mime, "image/"):
		return MediaKindImage, true
	case strings.HasPrefix(mime, "video/"):
		return MediaKindVideo, true
	}
	return "", false
}

// DetectKind prefers the declared MIME type and falls back to the extension.
func DetectKind(name, mime string) (MediaKind, bool) {
	if kind, ok := KindFromMIME(mime); ok {
		return kind, true
	}
	return KindFromExtension(name)
}

var extMIME = map[string]string{
	".mp4": "video/mp4", ".webm": "video/webm", ".ogg": "video/ogg",
	".mov": "video/quicktime", ".avi": "video/x-msvideo", ".mkv": "video/x-matroska",
	".jpg": "image/jpeg", ".jpeg": "image/jpeg", ".png": "image/png",
	".gif": "image/gif", ".bmp": "image/bmp", ".webp": "image/webp",
}

// MIMEFromExtension returns the MIME type for an allowlisted extension,
// or application/octet-stream.
func MIMEFromExtension(name string) string {
	if mime, ok := extMIME[strings.ToLower(filepath.Ext(name))]; ok {
		return mime
	}
	return "application/octet-stream"
}

type SourceType string

const (
	SourceInMemory   SourceType = "memory"
	SourceFilesystem SourceType = "filesystem"
)

// SourceLocator says where the bytes of a handle live. Exactly one of
// Bytes or Path is meaningful, selected by Type.
type SourceLocator struct {
	Type  SourceType
	Bytes []byte
	Path  string
}

func InMemorySource(data []byte) SourceLocator {
	return SourceLocator{Type: SourceInMemory, Bytes: data}
}

func FilesystemSource(path string) SourceLocator {
	return SourceLocator{Type: SourceFilesystem, Path: path}
}

// MediaHandle identifies the media currently selected in the pipeline.
// It is a value: a new selection builds a new handle.
type MediaHandle struct {
	DisplayName string
	Kind        MediaKind
	MIME        string
	Source      SourceLocator
	SizeBytes   uint64
}

// OriginalPath returns the filesystem path of a dropped file, or nil for
// in-memory sources.
func (h MediaHandle) OriginalPath() *string {
	if h.Source.Type != SourceFilesystem {
		return nil
	}
	p := h.Source.Path
	return &p
}

// PickedFile is what a browser-style file picker hands over.
type PickedFile struct {
	Name string
	MIME string
	Data []byte
}
