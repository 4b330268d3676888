package domain

import (
	"path"
	"path/filepath"
	"strings"
)

// LibraryDir is the root of hash-addressed artifacts, relative to the
// data directory.
const LibraryDir = "library"

const (
	originalBase = "original"
	thumbFile    = "thumb.jpg"
)

// OriginalFileName is the stored name of the original artifact. The
// extension of the user's filename is kept so decoders can sniff it.
func OriginalFileName(displayName string) string {
	ext := strings.ToLower(filepath.Ext(displayName))
	return originalBase + ext
}

// HashPath is the slash-separated library path of the original artifact.
func HashPath(hash, displayName string) string {
	return path.Join(LibraryDir, hash, OriginalFileName(displayName))
}

// ThumbPath is the slash-separated library path of the thumbnail.
func ThumbPath(hash string) string {
	return path.Join(LibraryDir, hash, thumbFile)
}

// ThumbFileName is the thumbnail's name inside a hash directory.
func ThumbFileName() string {
	return thumbFile
}

// IsOriginalFileName reports whether name is an original artifact name.
func IsOriginalFileName(name string) bool {
	return strings.TrimSuffix(name, filepath.Ext(name)) == originalBase
}
