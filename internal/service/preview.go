package service

import (
	"encoding/base64"
	"sync"

	"github.com/anicla/anicla/internal/domain"
	"github.com/google/uuid"
)

// Preview is a displayable rendition of the selected media. In-memory
// selections carry their bytes; dropped files point at their path.
type Preview struct {
	ID   string
	Name string
	MIME string
	Data []byte
	Path string
}

func (p *Preview) URL() string {
	return "/preview/" + p.ID
}

// DataURL inlines in-memory previews. It is empty for path-backed ones.
func (p *Preview) DataURL() string {
	if p.Data == nil {
		return ""
	}
	return "data:" + p.MIME + ";base64," + base64.StdEncoding.EncodeToString(p.Data)
}

// PreviewRegistry owns temporary preview resources, like object URLs in a
// browser: they live until revoked.
type PreviewRegistry struct {
	mu       sync.RWMutex
	previews map[string]*Preview
}

func NewPreviewRegistry() *PreviewRegistry {
	return &PreviewRegistry{previews: make(map[string]*Preview)}
}

func (r *PreviewRegistry) Create(handle domain.MediaHandle) *Preview {
	p := &Preview{
		ID:   uuid.NewString(),
		Name: handle.DisplayName,
		MIME: handle.MIME,
	}
	switch handle.Source.Type {
	case domain.SourceInMemory:
		p.Data = handle.Source.Bytes
	case domain.SourceFilesystem:
		p.Path = handle.Source.Path
	}

	r.mu.Lock()
	r.previews[p.ID] = p
	r.mu.Unlock()
	return p
}

func (r *PreviewRegistry) Get(id string) (*Preview, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.previews[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (r *PreviewRegistry) Revoke(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.previews, id)
}

// Live reports how many previews are still allocated.
func (r *PreviewRegistry) Live() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.previews)
}
