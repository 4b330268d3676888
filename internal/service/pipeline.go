package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/anicla/anicla/internal/domain"
	"github.com/anicla/anicla/internal/infrastructure/logger"
	"github.com/anicla/anicla/internal/port"
)

type PipelineState string

const (
	StateEmpty       PipelineState = "empty"
	StateSelected    PipelineState = "selected"
	StateClassifying PipelineState = "classifying"
	StateCompleted   PipelineState = "completed"
)

// ErrRunDiscarded is returned by StartClassification when the handle it
// worked on was replaced or discarded before it finished. The result was
// not applied.
var ErrRunDiscarded = errors.New("classification result discarded")

type AutoSaveSetting interface {
	AutoSave() bool
}

type PipelineSnapshot struct {
	State   PipelineState
	Handle  *domain.MediaHandle
	Preview *Preview
	Result  *domain.ClassificationResult
}

// Pipeline owns the lifecycle of a single upload. The state check in
// StartClassification is the only re-entrancy guard; the mutex protects
// fields and is never held across a collaborator call.
type Pipeline struct {
	mu         sync.Mutex
	state      PipelineState
	handle     *domain.MediaHandle
	preview    *Preview
	result     *domain.ClassificationResult
	generation uint64

	store      port.MediaStore
	fs         port.FileSystem
	classifier port.Classifier
	entries    port.EntryStore
	settings   AutoSaveSetting
	previews   *PreviewRegistry
	ui         uiLogger
}

func NewPipeline(
	store port.MediaStore,
	fs port.FileSystem,
	classifier port.Classifier,
	entries port.EntryStore,
	settings AutoSaveSetting,
	previews *PreviewRegistry,
	bus EventPublisher,
) *Pipeline {
	if previews == nil {
		previews = NewPreviewRegistry()
	}
	return &Pipeline{
		state:      StateEmpty,
		store:      store,
		fs:         fs,
		classifier: classifier,
		entries:    entries,
		settings:   settings,
		previews:   previews,
		ui:         newUILogger(bus, "pipeline"),
	}
}

func (p *Pipeline) Previews() *PreviewRegistry {
	return p.previews
}

func (p *Pipeline) Snapshot() PipelineSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	snap := PipelineSnapshot{State: p.state, Preview: p.preview}
	if p.handle != nil {
		h := *p.handle
		snap.Handle = &h
	}
	if p.result != nil {
		r := *p.result
		snap.Result = &r
	}
	return snap
}

// SelectFromPicker selects a file handed over by a file picker or a
// browser drop. The bytes are kept in memory.
func (p *Pipeline) SelectFromPicker(file domain.PickedFile) error {
	kind, ok := domain.DetectKind(file.Name, file.MIME)
	if !ok {
		return p.reject(file.Name, fmt.Errorf("%w: %s", domain.ErrUnsupportedMedia, file.Name))
	}

	mime := file.MIME
	if _, ok := domain.KindFromMIME(mime); !ok {
		mime = domain.MIMEFromExtension(file.Name)
	}

	return p.selectHandle(domain.MediaHandle{
		DisplayName: file.Name,
		Kind:        kind,
		MIME:        mime,
		Source:      domain.InMemorySource(file.Data),
		SizeBytes:   uint64(len(file.Data)),
	})
}

// SelectFromDrop selects a file dropped from the native shell by path.
func (p *Pipeline) SelectFromDrop(ctx context.Context, path string) error {
	name := filepath.Base(path)
	kind, ok := domain.KindFromExtension(path)
	if !ok {
		return p.reject(name, fmt.Errorf("%w: %s", domain.ErrUnsupportedMedia, name))
	}

	size, err := p.fs.Size(ctx, path)
	if err != nil {
		return p.reject(name, fmt.Errorf("unreadable drop path: %w", err))
	}

	return p.selectHandle(domain.MediaHandle{
		DisplayName: name,
		Kind:        kind,
		MIME:        domain.MIMEFromExtension(name),
		Source:      domain.FilesystemSource(path),
		SizeBytes:   size,
	})
}

func (p *Pipeline) reject(name string, cause error) error {
	err := domain.NewValidationError("select file", cause)
	logger.Warn.Printf("rejected selection %s: %v", logger.SanitizeForLog(name), cause)
	p.ui.Error(err.Error())
	return err
}

func (p *Pipeline) selectHandle(handle domain.MediaHandle) error {
	p.mu.Lock()
	if p.state == StateClassifying {
		p.mu.Unlock()
		p.ui.Warn("Classification in progress, start a new upload first")
		return domain.ErrClassificationInProgress
	}
	p.releasePreviewLocked()
	p.generation++
	p.handle = &handle
	p.preview = p.previews.Create(handle)
	p.result = nil
	p.state = StateSelected
	p.mu.Unlock()

	logger.Info.Printf("media selected: name=%s, kind=%s, source=%s, size=%d",
		logger.SanitizeForLog(handle.DisplayName), handle.Kind, handle.Source.Type, handle.SizeBytes)
	p.ui.Info(fmt.Sprintf("Selected %s (%s, %s)", handle.DisplayName, handle.Kind, domain.FormatSize(handle.SizeBytes)))
	return nil
}

// NewUpload discards the current selection from any state. An in-flight
// run is not cancelled; its result is dropped when it returns.
func (p *Pipeline) NewUpload() {
	p.mu.Lock()
	p.releasePreviewLocked()
	p.generation++
	p.handle = nil
	p.result = nil
	p.state = StateEmpty
	p.mu.Unlock()

	p.ui.Info("Ready for a new upload")
}

func (p *Pipeline) releasePreviewLocked() {
	if p.preview != nil {
		p.previews.Revoke(p.preview.ID)
		p.preview = nil
	}
}

// StartClassification runs the full save/derive/classify/persist sequence
// for the selected handle and blocks until it is done. It is rejected in
// the empty state and while another run is in flight. Collaborator
// failures never surface as errors: they end in an error result.
func (p *Pipeline) StartClassification(ctx context.Context) (domain.ClassificationResult, error) {
	p.mu.Lock()
	switch p.state {
	case StateEmpty:
		p.mu.Unlock()
		return domain.ClassificationResult{}, domain.ErrNoSelection
	case StateClassifying:
		p.mu.Unlock()
		logger.Debug.Printf("ignoring classification request while busy")
		return domain.ClassificationResult{}, domain.ErrClassificationInProgress
	}
	handle := *p.handle
	gen := p.generation
	p.state = StateClassifying
	p.result = nil
	p.mu.Unlock()

	p.ui.Info(fmt.Sprintf("Classifying %s", handle.DisplayName))

	result, err := p.run(ctx, handle, gen)
	if err != nil && !errors.Is(err, ErrRunDiscarded) {
		result = domain.NewErrorResult(handle.Kind, err)
	}

	p.mu.Lock()
	if errors.Is(err, ErrRunDiscarded) || p.generation != gen {
		p.mu.Unlock()
		logger.Debug.Printf("dropping result for discarded media %s", logger.SanitizeForLog(handle.DisplayName))
		return result, ErrRunDiscarded
	}
	p.result = &result
	p.state = StateCompleted
	p.mu.Unlock()

	if err != nil {
		logger.Error.Printf("classification failed for %s: %v", logger.SanitizeForLog(handle.DisplayName), err)
		p.ui.Error(err.Error())
		return result, nil
	}
	p.ui.Info(fmt.Sprintf("Result: %s", result.Label))
	return result, nil
}

func (p *Pipeline) current(gen uint64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.generation == gen
}

// progress reports a step of run unless the run has been discarded.
func (p *Pipeline) progress(gen uint64, msg string) {
	if p.current(gen) {
		p.ui.Info(msg)
	}
}

func (p *Pipeline) run(ctx context.Context, handle domain.MediaHandle, gen uint64) (domain.ClassificationResult, error) {
	data, err := p.readBytes(ctx, handle)
	if err != nil {
		return domain.ClassificationResult{}, domain.AsKind(domain.ErrorKindStorage, "read file", err)
	}

	p.progress(gen, "Saving media file")
	hash, err := p.store.Save(ctx, data, handle.DisplayName)
	if err != nil {
		return domain.ClassificationResult{}, domain.AsKind(domain.ErrorKindStorage, "save media file", err)
	}

	p.progress(gen, "Generating thumbnail")
	if err := p.store.DeriveThumbnail(ctx, hash, handle.Kind); err != nil {
		return domain.ClassificationResult{}, domain.AsKind(domain.ErrorKindDerivation, "generate thumbnail", err)
	}

	info, err := p.store.ReadMetadata(ctx, hash, handle.Kind)
	if err != nil {
		return domain.ClassificationResult{}, domain.AsKind(domain.ErrorKindDerivation, "read media info", err)
	}

	p.progress(gen, "Running classifier")
	label, err := p.classifier.Classify(ctx, hash, handle.Kind)
	if err != nil {
		return domain.ClassificationResult{}, domain.AsKind(domain.ErrorKindClassifier, "classify", err)
	}
	if label == "" {
		return domain.ClassificationResult{}, domain.NewClassifierError("classify", errors.New("classifier returned no label"))
	}

	result := domain.NewClassificationResult(label, handle.Kind, info)

	if p.settings == nil || !p.settings.AutoSave() {
		return result, nil
	}
	if !p.current(gen) {
		return result, ErrRunDiscarded
	}
	hashPath, err := p.store.HashPath(hash)
	if err != nil {
		return domain.ClassificationResult{}, domain.AsKind(domain.ErrorKindStorage, "add media entry", err)
	}
	entry := domain.NewMediaEntry(handle, hash, hashPath, result)
	if err := p.entries.Add(ctx, entry); err != nil {
		return domain.ClassificationResult{}, domain.AsKind(domain.ErrorKindStorage, "add media entry", err)
	}
	logger.Info.Printf("media entry saved: id=%s, hash=%s, result=%s", entry.ID, hash, logger.SanitizeForLog(result.Label))
	p.progress(gen, "Saved to history")

	return result, nil
}

func (p *Pipeline) readBytes(ctx context.Context, handle domain.MediaHandle) ([]byte, error) {
	switch handle.Source.Type {
	case domain.SourceInMemory:
		return handle.Source.Bytes, nil
	case domain.SourceFilesystem:
		return p.fs.ReadFile(ctx, handle.Source.Path)
	}
	return nil, fmt.Errorf("unknown source type %q", handle.Source.Type)
}
