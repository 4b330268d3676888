package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/anicla/anicla/internal/adapter/http/templates"
	"github.com/anicla/anicla/internal/adapter/http/validation"
	"github.com/anicla/anicla/internal/domain"
	"github.com/anicla/anicla/internal/infrastructure/logger"
	"github.com/anicla/anicla/internal/service"
)

type PipelineService interface {
	Snapshot() service.PipelineSnapshot
	SelectFromPicker(file domain.PickedFile) error
	SelectFromDrop(ctx context.Context, path string) error
	StartClassification(ctx context.Context) (domain.ClassificationResult, error)
	NewUpload()
	Previews() *service.PreviewRegistry
}

type SettingsService interface {
	Set(ctx context.Context, key string, value any) error
}

type SettingsReader interface {
	Snapshot() domain.SettingsSnapshot
}

type ConsoleReader interface {
	Visible() bool
	VisibleEntries() []domain.LogEvent
	Len() int
	Clear()
}

type HistoryReader interface {
	List(ctx context.Context) ([]*domain.MediaEntry, error)
}

type ThumbnailLocator interface {
	ThumbnailPath(hash string) (string, error)
}

type Deps struct {
	Pipeline   PipelineService
	Settings   SettingsReader
	SettingsUI SettingsService
	Console    ConsoleReader
	History    HistoryReader
	Thumbnails ThumbnailLocator
}

type Handlers struct {
	deps      Deps
	maxSizeMB int
	// runCtx outlives requests; classification keeps going when the
	// client disconnects.
	runCtx context.Context
}

func NewHandlers(runCtx context.Context, deps Deps, maxSizeMB int) *Handlers {
	return &Handlers{
		deps:      deps,
		maxSizeMB: maxSizeMB,
		runCtx:    runCtx,
	}
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

func (h *Handlers) stageView(message string) templates.StageView {
	snap := h.deps.Pipeline.Snapshot()
	v := templates.StageView{
		State:     string(snap.State),
		Result:    snap.Result,
		MaxSizeMB: h.maxSizeMB,
		Message:   message,
	}
	if snap.Handle != nil {
		v.Name = snap.Handle.DisplayName
		v.Kind = snap.Handle.Kind
		v.Size = domain.FormatSize(snap.Handle.SizeBytes)
	}
	if snap.Preview != nil {
		v.PreviewURL = snap.Preview.URL()
	}
	return v
}

// respondStage answers a pipeline action: the #stage fragment for htmx,
// a redirect home otherwise.
func (h *Handlers) respondStage(w http.ResponseWriter, r *http.Request, status int, message string) {
	if !isHTMX(r) {
		if status >= http.StatusBadRequest {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(status)
			_ = templates.ErrorPage(http.StatusText(status), message).Render(r.Context(), w)
			return
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = templates.Stage(h.stageView(message)).Render(r.Context(), w)
}

func (h *Handlers) Home() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = templates.Home(h.stageView(""), h.deps.Settings.Snapshot()).Render(r.Context(), w)
	}
}

func (h *Handlers) Stage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = templates.Stage(h.stageView("")).Render(r.Context(), w)
	}
}

type stateResponse struct {
	State      service.PipelineState        `json:"state"`
	Name       string                       `json:"name,omitempty"`
	Kind       domain.MediaKind             `json:"kind,omitempty"`
	SizeBytes  uint64                       `json:"size_bytes,omitempty"`
	PreviewURL string                       `json:"preview_url,omitempty"`
	Result     *domain.ClassificationResult `json:"result,omitempty"`
}

func (h *Handlers) State() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := h.deps.Pipeline.Snapshot()
		resp := stateResponse{State: snap.State, Result: snap.Result}
		if snap.Handle != nil {
			resp.Name = snap.Handle.DisplayName
			resp.Kind = snap.Handle.Kind
			resp.SizeBytes = snap.Handle.SizeBytes
		}
		if snap.Preview != nil {
			resp.PreviewURL = snap.Preview.URL()
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func (h *Handlers) Select() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := int64(h.maxSizeMB) * 1024 * 1024
		r.Body = http.MaxBytesReader(w, r.Body, limit+1024*1024)

		if err := r.ParseMultipartForm(32 << 20); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				h.respondStage(w, r, http.StatusRequestEntityTooLarge, "File too large")
				return
			}
			h.respondStage(w, r, http.StatusBadRequest, "Invalid file upload")
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			h.respondStage(w, r, http.StatusBadRequest, "Invalid file upload")
			return
		}
		defer file.Close() //nolint:errcheck

		data, err := io.ReadAll(io.LimitReader(file, limit+1))
		if err != nil {
			h.respondStage(w, r, http.StatusBadRequest, "Failed to read upload")
			return
		}
		if int64(len(data)) > limit {
			h.respondStage(w, r, http.StatusRequestEntityTooLarge, "File too large")
			return
		}

		name := validation.SanitizeFilename(header.Filename)
		mime, _, err := validation.ValidateMagicBytes(data)
		if err != nil {
			logger.Warn.Printf("rejected upload %s: %v", logger.SanitizeForLog(name), err)
			h.respondStage(w, r, http.StatusUnsupportedMediaType, "Only images and videos can be classified")
			return
		}

		err = h.deps.Pipeline.SelectFromPicker(domain.PickedFile{Name: name, MIME: mime, Data: data})
		h.respondSelect(w, r, err)
	}
}

func (h *Handlers) Drop() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := r.FormValue("path")
		if path == "" {
			h.respondStage(w, r, http.StatusBadRequest, "Missing path")
			return
		}
		err := h.deps.Pipeline.SelectFromDrop(r.Context(), path)
		h.respondSelect(w, r, err)
	}
}

func (h *Handlers) respondSelect(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case err == nil:
		h.respondStage(w, r, http.StatusOK, "")
	case errors.Is(err, domain.ErrClassificationInProgress):
		h.respondStage(w, r, http.StatusConflict, "Classification in progress")
	case errors.Is(err, domain.ErrValidation):
		h.respondStage(w, r, http.StatusUnprocessableEntity, err.Error())
	default:
		logger.Error.Printf("select error: %v", err)
		h.respondStage(w, r, http.StatusInternalServerError, "Selection failed")
	}
}

// Classify starts a run in the background and answers right away; the
// stage fragment polls until the run completes.
func (h *Handlers) Classify() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch h.deps.Pipeline.Snapshot().State {
		case service.StateEmpty:
			h.respondStage(w, r, http.StatusBadRequest, "Select a file first")
			return
		case service.StateClassifying:
			h.respondStage(w, r, http.StatusConflict, "Classification in progress")
			return
		}

		go func() {
			_, err := h.deps.Pipeline.StartClassification(h.runCtx)
			if err != nil && !errors.Is(err, service.ErrRunDiscarded) {
				logger.Debug.Printf("classification not started: %v", err)
			}
		}()
		// Let the run flip the state so the fragment shows the spinner.
		waitForState(h.deps.Pipeline, service.StateSelected, service.StateCompleted, 50*time.Millisecond)

		h.respondStage(w, r, http.StatusAccepted, "")
	}
}

// waitForState polls briefly while the pipeline is still in one of the
// given states.
func waitForState(p PipelineService, from1, from2 service.PipelineState, limit time.Duration) {
	deadline := time.Now().Add(limit)
	for time.Now().Before(deadline) {
		if s := p.Snapshot().State; s != from1 && s != from2 {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
}

func (h *Handlers) NewUpload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.deps.Pipeline.NewUpload()
		h.respondStage(w, r, http.StatusOK, "")
	}
}

func (h *Handlers) Preview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		preview, err := h.deps.Pipeline.Previews().Get(r.PathValue("id"))
		if err != nil {
			http.Error(w, "Preview not found", http.StatusNotFound)
			return
		}

		w.Header().Set("Cache-Control", "no-store")
		w.Header().Set("Content-Type", preview.MIME)
		w.Header().Set("Content-Disposition", validation.ContentDisposition(preview.Name, true))
		if preview.Data != nil {
			_, _ = w.Write(preview.Data)
			return
		}
		http.ServeFile(w, r, preview.Path)
	}
}

func (h *Handlers) Settings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := r.FormValue("key")
		value := r.FormValue("value")

		if err := h.deps.SettingsUI.Set(r.Context(), key, value); err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, domain.ErrValidation) {
				status = http.StatusBadRequest
			} else {
				logger.Error.Printf("settings update failed: %v", err)
			}
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(status)
			_ = templates.ErrorInline(err.Error()).Render(r.Context(), w)
			return
		}

		if !isHTMX(r) {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = templates.Settings(h.deps.Settings.Snapshot()).Render(r.Context(), w)
	}
}

func (h *Handlers) ConsolePage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = templates.ConsolePage(h.deps.Console.Visible(), h.deps.Console.VisibleEntries()).Render(r.Context(), w)
	}
}

type consoleResponse struct {
	Visible bool              `json:"visible"`
	Count   int               `json:"count"`
	Entries []domain.LogEvent `json:"entries"`
}

func (h *Handlers) ConsoleEntries() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries := h.deps.Console.VisibleEntries()
		if entries == nil {
			entries = []domain.LogEvent{}
		}
		writeJSON(w, http.StatusOK, consoleResponse{
			Visible: h.deps.Console.Visible(),
			Count:   h.deps.Console.Len(),
			Entries: entries,
		})
	}
}

func (h *Handlers) ClearConsole() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.deps.Console.Clear()
		if !isHTMX(r) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = templates.ConsoleEntries(nil).Render(r.Context(), w)
	}
}

func (h *Handlers) History() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := h.deps.History.List(r.Context())
		if err != nil {
			logger.Error.Printf("history list error: %v", err)
			entries = []*domain.MediaEntry{}
		}

		if r.URL.Query().Get("format") == "json" {
			writeJSON(w, http.StatusOK, entries)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = templates.History(entries).Render(r.Context(), w)
	}
}

func (h *Handlers) Thumbnail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path, err := h.deps.Thumbnails.ThumbnailPath(r.PathValue("hash"))
		if err != nil {
			http.Error(w, "Thumbnail not found", http.StatusNotFound)
			return
		}
		if _, err := os.Stat(path); err != nil {
			http.Error(w, "Thumbnail not available", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "image/jpeg")
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		http.ServeFile(w, r, path)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error.Printf("encode response: %v", err)
	}
}
