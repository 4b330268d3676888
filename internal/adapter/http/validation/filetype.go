// Package validation checks client-supplied uploads before they reach the
// pipeline.
package validation

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/anicla/anicla/internal/domain"
)

var ErrDisallowedFileType = errors.New("file type not allowed")

// Sniffed types that may enter the pipeline, keyed by detected MIME.
var allowedMIMETypes = map[string]bool{
	"image/jpeg":       true,
	"image/png":        true,
	"image/gif":        true,
	"image/webp":       true,
	"image/bmp":        true,
	"video/mp4":        true,
	"video/webm":       true,
	"video/x-matroska": true,
	"video/quicktime":  true,
	"video/avi":        true,
	"video/ogg":        true,
}

const sniffLen = 512

// DetectMIME sniffs the content type of data from its leading bytes.
func DetectMIME(data []byte) string {
	if len(data) == 0 {
		return "application/octet-stream"
	}
	buf := data
	if len(buf) > sniffLen {
		buf = buf[:sniffLen]
	}
	if mime := detectContainer(buf); mime != "" {
		return mime
	}
	mime := http.DetectContentType(buf)
	if mime == "application/ogg" {
		return "video/ogg"
	}
	return mime
}

// ValidateMagicBytes accepts data only when its sniffed type is an allowed
// image or video type.
func ValidateMagicBytes(data []byte) (string, domain.MediaKind, error) {
	mime := DetectMIME(data)
	if !allowedMIMETypes[mime] {
		return mime, "", fmt.Errorf("%w: %s", ErrDisallowedFileType, mime)
	}
	kind, _ := domain.KindFromMIME(mime)
	return mime, kind, nil
}

// detectContainer covers containers http.DetectContentType misses or
// reports too coarsely.
func detectContainer(buf []byte) string {
	if len(buf) < 4 {
		return ""
	}

	// EBML header; the doctype tells Matroska from WebM.
	if bytes.HasPrefix(buf, []byte{0x1A, 0x45, 0xDF, 0xA3}) {
		if bytes.Contains(buf[:min(len(buf), 64)], []byte("matroska")) {
			return "video/x-matroska"
		}
		return "video/webm"
	}

	if len(buf) >= 12 {
		if bytes.Equal(buf[0:4], []byte("RIFF")) && bytes.Equal(buf[8:12], []byte("WEBP")) {
			return "image/webp"
		}

		// ISO base media: [size]["ftyp"][brand]
		if bytes.Equal(buf[4:8], []byte("ftyp")) {
			if string(buf[8:12]) == "qt  " {
				return "video/quicktime"
			}
			return "video/mp4"
		}
	}

	return ""
}
