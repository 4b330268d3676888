package domain

import (
	"time"
)

// MediaInfo is what metadata extraction reports for a stored artifact.
// Duration is nil for images.
type MediaInfo struct {
	Resolution string   `json:"resolution"`
	Duration   *float64 `json:"duration"`
}

type ClassificationResult struct {
	Label           string    `json:"label"`
	MediaKind       MediaKind `json:"media_kind"`
	Resolution      string    `json:"resolution"`
	DurationSeconds *float64  `json:"duration_seconds"`
	Err             string    `json:"error,omitempty"`
}

func NewClassificationResult(label string, kind MediaKind, info MediaInfo) ClassificationResult {
	r := ClassificationResult{
		Label:      label,
		MediaKind:  kind,
		Resolution: info.Resolution,
	}
	if kind == MediaKindVideo {
		r.DurationSeconds = info.Duration
	}
	return r
}

func NewErrorResult(kind MediaKind, err error) ClassificationResult {
	return ClassificationResult{
		MediaKind: kind,
		Err:       err.Error(),
	}
}

func (r ClassificationResult) Failed() bool {
	return r.Err != ""
}

// Display is the user-facing rendering of the result.
func (r ClassificationResult) Display() string {
	if r.Failed() {
		return "Error: " + r.Err
	}
	return r.Label
}

// MediaEntry is the persisted record of a successful classification.
type MediaEntry struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	HashedName   string    `json:"hashed_name"`
	CreatedAt    time.Time `json:"created_at"`
	Result       string    `json:"result"`
	MediaType    MediaKind `json:"media_type"`
	Resolution   string    `json:"resolution"`
	Duration     *float64  `json:"duration"`
	SizeBytes    uint64    `json:"size_bytes"`
	OriginalPath *string   `json:"original_path,omitempty"`
	HashPath     string    `json:"hash_path"`
	ThumbSource  string    `json:"thumb_source"`
}

func NewMediaEntry(handle MediaHandle, hash, hashPath string, result ClassificationResult) *MediaEntry {
	return &MediaEntry{
		Name:         handle.DisplayName,
		HashedName:   hash,
		CreatedAt:    time.Now().UTC(),
		Result:       result.Label,
		MediaType:    handle.Kind,
		Resolution:   result.Resolution,
		Duration:     result.DurationSeconds,
		SizeBytes:    handle.SizeBytes,
		OriginalPath: handle.OriginalPath(),
		HashPath:     hashPath,
		ThumbSource:  ThumbPath(hash),
	}
}
