package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/anicla/anicla/internal/adapter/http/middleware"
	"github.com/anicla/anicla/internal/domain"
	"github.com/anicla/anicla/internal/port/mocks"
	"github.com/anicla/anicla/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR fake image data")

type thumbDir string

func (d thumbDir) ThumbnailPath(hash string) (string, error) {
	if strings.Contains(hash, "/") || strings.Contains(hash, "..") {
		return "", errors.New("invalid hash")
	}
	return filepath.Join(string(d), hash+".jpg"), nil
}

type serverFixture struct {
	store      *mocks.MediaStoreMock
	fs         *mocks.FileSystemMock
	classifier *mocks.ClassifierMock
	entries    *mocks.EntryStoreMock
	config     *mocks.ConfigStoreMock
	bus        *service.EventBus
	settings   *service.SettingsStore
	console    *service.LogConsole
	pipeline   *service.Pipeline
	thumbs     string
	server     *Server
}

func newServerFixture(t *testing.T) *serverFixture {
	t.Helper()

	f := &serverFixture{
		store:      mocks.NewMediaStoreMock(t),
		fs:         mocks.NewFileSystemMock(t),
		classifier: mocks.NewClassifierMock(t),
		entries:    mocks.NewEntryStoreMock(t),
		config:     mocks.NewConfigStoreMock(t),
		bus:        service.NewEventBus(),
		thumbs:     t.TempDir(),
	}
	settings := domain.DefaultSettings()
	settings.AutoSave = false
	settings.DevConsoleEnabled = true
	f.settings = service.NewSettingsStore(settings, f.bus)
	t.Cleanup(f.settings.Close)
	f.console = service.NewLogConsole(f.bus, f.settings, 100)
	t.Cleanup(f.console.Close)
	f.pipeline = service.NewPipeline(f.store, f.fs, f.classifier, f.entries, f.settings, nil, f.bus)

	f.server = NewServer(context.Background(), Deps{
		Pipeline:   f.pipeline,
		Settings:   f.settings,
		SettingsUI: service.NewSettingsService(f.config, f.bus),
		Console:    f.console,
		History:    f.entries,
		Thumbnails: thumbDir(f.thumbs),
	}, f.bus, f.settings, 1)
	return f
}

// do sends req with a valid CSRF token on unsafe methods.
func (f *serverFixture) do(req *http.Request) *httptest.ResponseRecorder {
	if req.Method != http.MethodGet && req.Header.Get(middleware.CSRFHeaderName) == "" {
		token := f.server.csrf.GenerateToken()
		req.AddCookie(&http.Cookie{Name: middleware.CSRFCookieName, Value: token})
		req.Header.Set(middleware.CSRFHeaderName, token)
	}
	return f.send(req)
}

func (f *serverFixture) send(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.server.ServeHTTP(rec, req)
	return rec
}

func htmx(req *http.Request) *http.Request {
	req.Header.Set("HX-Request", "true")
	return req
}

func uploadRequest(t *testing.T, name string, data []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/select", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func formRequest(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestHome_RendersEmptyStage(t *testing.T) {
	f := newServerFixture(t)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `hx-post="/select"`)
	assert.Contains(t, body, `hx-post="/drop"`)
	assert.Contains(t, body, "Images and videos up to 1 MB.")
	assert.Contains(t, body, "Save results to history")
	assert.NotEmpty(t, rec.Header().Get("Content-Security-Policy"))
}

func TestHome_HandsCSRFTokenToHTMX(t *testing.T) {
	f := newServerFixture(t)

	rec := f.send(httptest.NewRequest(http.MethodGet, "/", nil))

	var token string
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.CSRFCookieName {
			token = c.Value
		}
	}
	require.NotEmpty(t, token)
	assert.Contains(t, rec.Body.String(), `hx-headers='{"X-CSRF-Token":"`+token+`"}'`)

	req := htmx(formRequest("/settings", url.Values{"key": {domain.SettingAutoSave}, "value": {"true"}}))
	req.AddCookie(&http.Cookie{Name: middleware.CSRFCookieName, Value: token})
	req.Header.Set(middleware.CSRFHeaderName, token)
	f.config.EXPECT().Set(mock.Anything, domain.SettingAutoSave, true).Return(nil).Once()

	rec = f.send(req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, f.settings.AutoSave())
}

func TestCrossSitePostsAreRejected(t *testing.T) {
	tests := []struct {
		name string
		req  *http.Request
	}{
		{"drop", formRequest("/drop", url.Values{"path": {"/home/u/.ssh/id_rsa.png"}})},
		{"settings", formRequest("/settings", url.Values{"key": {domain.SettingAutoSave}, "value": {"true"}})},
		{"classify", httptest.NewRequest(http.MethodPost, "/classify", nil)},
		{"console clear", httptest.NewRequest(http.MethodPost, "/console/clear", nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newServerFixture(t)
			f.bus.PublishLog(domain.LogLevelInfo, "test", "kept")

			rec := f.send(tt.req)

			assert.Equal(t, http.StatusForbidden, rec.Code)
			assert.Equal(t, service.StateEmpty, f.pipeline.Snapshot().State)
			assert.False(t, f.settings.Snapshot().AutoSave)
			assert.Equal(t, 1, f.console.Len())
		})
	}
}

func TestSelect_UploadsImage(t *testing.T) {
	f := newServerFixture(t)

	rec := f.do(htmx(uploadRequest(t, "cat.png", pngBytes)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "cat.png")
	assert.Contains(t, rec.Body.String(), "Start Classification")

	snap := f.pipeline.Snapshot()
	assert.Equal(t, service.StateSelected, snap.State)
	require.NotNil(t, snap.Handle)
	assert.Equal(t, "image/png", snap.Handle.MIME)
	assert.Equal(t, uint64(len(pngBytes)), snap.Handle.SizeBytes)
}

func TestSelect_RedirectsWithoutHTMX(t *testing.T) {
	f := newServerFixture(t)

	rec := f.do(uploadRequest(t, "cat.png", pngBytes))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestSelect_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		file   string
		data   []byte
		status int
	}{
		{"text file", "notes.txt", []byte("just some notes"), http.StatusUnsupportedMediaType},
		{"too large", "big.png", append(append([]byte{}, pngBytes...), make([]byte, 1<<20)...), http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newServerFixture(t)

			rec := f.do(htmx(uploadRequest(t, tt.file, tt.data)))

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), `class="error"`)
			assert.Equal(t, service.StateEmpty, f.pipeline.Snapshot().State)
		})
	}
}

func TestSelect_MissingFile(t *testing.T) {
	f := newServerFixture(t)

	rec := f.do(htmx(formRequest("/select", url.Values{"x": {"y"}})))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDrop_SelectsPath(t *testing.T) {
	f := newServerFixture(t)
	f.fs.EXPECT().Size(mock.Anything, "/videos/clip.mkv").Return(uint64(4096), nil).Once()

	rec := f.do(htmx(formRequest("/drop", url.Values{"path": {"/videos/clip.mkv"}})))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "clip.mkv")
	assert.Contains(t, rec.Body.String(), "<video")

	snap := f.pipeline.Snapshot()
	require.NotNil(t, snap.Handle)
	assert.Equal(t, domain.SourceFilesystem, snap.Handle.Source.Type)
}

func TestDrop_Rejections(t *testing.T) {
	f := newServerFixture(t)

	rec := f.do(htmx(formRequest("/drop", url.Values{})))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(htmx(formRequest("/drop", url.Values{"path": {"/tmp/archive.zip"}})))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "unsupported media type")
}

func TestClassify_WithoutSelection(t *testing.T) {
	f := newServerFixture(t)

	rec := f.do(htmx(httptest.NewRequest(http.MethodPost, "/classify", nil)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Select a file first")
}

func TestClassify_RunsInBackground(t *testing.T) {
	f := newServerFixture(t)
	release := make(chan struct{})

	f.store.EXPECT().Save(mock.Anything, mock.Anything, "cat.png").Return("abc123", nil).Once()
	f.store.EXPECT().DeriveThumbnail(mock.Anything, "abc123", domain.MediaKindImage).Return(nil).Once()
	f.store.EXPECT().ReadMetadata(mock.Anything, "abc123", domain.MediaKindImage).
		Return(domain.MediaInfo{Resolution: "800x600"}, nil).Once()
	f.classifier.EXPECT().Classify(mock.Anything, "abc123", domain.MediaKindImage).
		RunAndReturn(func(context.Context, string, domain.MediaKind) (string, error) {
			<-release
			return "Anime Character", nil
		}).Once()

	require.Equal(t, http.StatusOK, f.do(htmx(uploadRequest(t, "cat.png", pngBytes))).Code)

	rec := f.do(htmx(httptest.NewRequest(http.MethodPost, "/classify", nil)))
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Contains(t, rec.Body.String(), "Classifying...")
	assert.Contains(t, rec.Body.String(), `hx-get="/stage"`)

	again := f.do(htmx(httptest.NewRequest(http.MethodPost, "/classify", nil)))
	assert.Equal(t, http.StatusConflict, again.Code)

	close(release)
	require.Eventually(t, func() bool {
		return f.pipeline.Snapshot().State == service.StateCompleted
	}, 2*time.Second, 10*time.Millisecond)

	stage := f.do(httptest.NewRequest(http.MethodGet, "/stage", nil))
	assert.Contains(t, stage.Body.String(), "Anime Character")
	assert.Contains(t, stage.Body.String(), "Classify again")
}

func TestState_ReturnsJSON(t *testing.T) {
	f := newServerFixture(t)
	require.NoError(t, f.pipeline.SelectFromPicker(domain.PickedFile{Name: "cat.png", MIME: "image/png", Data: pngBytes}))

	rec := f.do(httptest.NewRequest(http.MethodGet, "/state", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp stateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, service.StateSelected, resp.State)
	assert.Equal(t, "cat.png", resp.Name)
	assert.Equal(t, domain.MediaKindImage, resp.Kind)
	assert.True(t, strings.HasPrefix(resp.PreviewURL, "/preview/"))
	assert.Nil(t, resp.Result)
}

func TestNewUpload_ResetsAndRevokesPreview(t *testing.T) {
	f := newServerFixture(t)
	require.NoError(t, f.pipeline.SelectFromPicker(domain.PickedFile{Name: "cat.png", MIME: "image/png", Data: pngBytes}))
	previewURL := f.pipeline.Snapshot().Preview.URL()

	rec := f.do(htmx(httptest.NewRequest(http.MethodGet, previewURL, nil)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, `inline; filename="cat.png"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, pngBytes, rec.Body.Bytes())

	rec = f.do(htmx(httptest.NewRequest(http.MethodPost, "/new", nil)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, service.StateEmpty, f.pipeline.Snapshot().State)

	rec = f.do(httptest.NewRequest(http.MethodGet, previewURL, nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPreview_ServesDroppedFile(t *testing.T) {
	f := newServerFixture(t)
	path := filepath.Join(t.TempDir(), "cat.png")
	require.NoError(t, os.WriteFile(path, pngBytes, 0644))
	f.fs.EXPECT().Size(mock.Anything, path).Return(uint64(len(pngBytes)), nil).Once()
	require.NoError(t, f.pipeline.SelectFromDrop(context.Background(), path))

	rec := f.do(httptest.NewRequest(http.MethodGet, f.pipeline.Snapshot().Preview.URL(), nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, pngBytes, rec.Body.Bytes())
}

func TestSettings_TogglesAndPublishes(t *testing.T) {
	f := newServerFixture(t)
	f.config.EXPECT().Set(mock.Anything, domain.SettingAutoSave, true).Return(nil).Once()

	rec := f.do(htmx(formRequest("/settings", url.Values{"key": {domain.SettingAutoSave}, "value": {"true"}})))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, f.settings.AutoSave())
	assert.Contains(t, rec.Body.String(), "Turn off")
}

func TestSettings_Rejections(t *testing.T) {
	f := newServerFixture(t)

	rec := f.do(htmx(formRequest("/settings", url.Values{"key": {"theme"}, "value": {"true"}})))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(htmx(formRequest("/settings", url.Values{"key": {domain.SettingAutoSave}, "value": {"maybe"}})))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	f.config.EXPECT().Set(mock.Anything, domain.SettingAutoSave, true).Return(errors.New("read-only")).Once()
	rec = f.do(htmx(formRequest("/settings", url.Values{"key": {domain.SettingAutoSave}, "value": {"true"}})))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, f.settings.AutoSave())
}

func TestConsole_ShowsAndClearsEntries(t *testing.T) {
	f := newServerFixture(t)
	f.bus.PublishLog(domain.LogLevelWarn, "startup", "classifier command not configured")

	rec := f.do(httptest.NewRequest(http.MethodGet, "/console", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "classifier command not configured")
	assert.Contains(t, rec.Body.String(), `sse-connect="/events/console"`)

	rec = f.do(httptest.NewRequest(http.MethodGet, "/console/entries", nil))
	var resp consoleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Visible)
	assert.Equal(t, 1, resp.Count)

	rec = f.do(htmx(httptest.NewRequest(http.MethodPost, "/console/clear", nil)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No events yet.")
	assert.Equal(t, 0, f.console.Len())
}

func TestConsole_HiddenWhenDisabled(t *testing.T) {
	f := newServerFixture(t)
	f.bus.PublishLog(domain.LogLevelInfo, "pipeline", "Selected cat.png")
	f.bus.PublishSetting(domain.SettingDevConsoleEnabled, false)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/console", nil))

	assert.Contains(t, rec.Body.String(), "developer console is disabled")
	assert.NotContains(t, rec.Body.String(), "Selected cat.png")
	assert.Equal(t, 1, f.console.Len())
}

func TestHistory_ListsEntries(t *testing.T) {
	f := newServerFixture(t)
	f.entries.EXPECT().List(mock.Anything).Return([]*domain.MediaEntry{
		{ID: "01J", Name: "cat.png", HashedName: "abc123", Result: "Anime Character", MediaType: domain.MediaKindImage, Resolution: "800x600"},
	}, nil).Twice()

	rec := f.do(httptest.NewRequest(http.MethodGet, "/history", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Anime Character")
	assert.Contains(t, rec.Body.String(), "/library/abc123/thumb")

	rec = f.do(httptest.NewRequest(http.MethodGet, "/history?format=json", nil))
	var entries []domain.MediaEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "cat.png", entries[0].Name)
}

func TestHistory_StoreFailureRendersEmpty(t *testing.T) {
	f := newServerFixture(t)
	f.entries.EXPECT().List(mock.Anything).Return(nil, domain.NewStorageError("list media entries", errors.New("locked"))).Once()

	rec := f.do(httptest.NewRequest(http.MethodGet, "/history", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestThumbnail(t *testing.T) {
	f := newServerFixture(t)
	require.NoError(t, os.WriteFile(filepath.Join(f.thumbs, "abc123.jpg"), []byte("jpeg"), 0644))

	rec := f.do(httptest.NewRequest(http.MethodGet, "/library/abc123/thumb", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/jpeg", rec.Header().Get("Content-Type"))
	assert.Equal(t, "jpeg", rec.Body.String())

	rec = f.do(httptest.NewRequest(http.MethodGet, "/library/def456/thumb", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
