package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/anicla/anicla/config"
	"github.com/anicla/anicla/internal/adapter/classifier/command"
	"github.com/anicla/anicla/internal/adapter/converter/ffmpeg"
	"github.com/anicla/anicla/internal/adapter/filesystem"
	"github.com/anicla/anicla/internal/adapter/storage/jsonfile"
	"github.com/anicla/anicla/internal/adapter/storage/library"
	sqlitestore "github.com/anicla/anicla/internal/adapter/storage/sqlite"
	"github.com/anicla/anicla/internal/domain"
	"github.com/anicla/anicla/internal/infrastructure/logger"
	"github.com/anicla/anicla/internal/port"
	"github.com/anicla/anicla/internal/service"
)

// app holds every long-lived component of one process.
type app struct {
	cfg *config.Config

	bus         *service.EventBus
	configStore *jsonfile.SettingsFile
	settings    *service.SettingsStore
	settingsSvc *service.SettingsService
	console     *service.LogConsole

	converter  *ffmpeg.Converter
	library    *library.Store
	classifier *command.Classifier
	entries    port.EntryStore
	pipeline   *service.Pipeline

	historyPath    string
	historyExisted bool
	closers        []func() error
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	a := &app{
		cfg:         cfg,
		bus:         service.NewEventBus(),
		configStore: jsonfile.NewSettingsFile(cfg.DataDir),
	}
	a.settings = service.LoadSettingsStore(ctx, a.configStore, a.bus)
	a.settingsSvc = service.NewSettingsService(a.configStore, a.bus)
	// The console subscribes before anything publishes so startup
	// warnings are collected.
	a.console = service.NewLogConsole(a.bus, a.settings, cfg.ConsoleCapacity)

	if err := a.openHistory(); err != nil {
		a.Close()
		return nil, err
	}

	a.converter = ffmpeg.NewConverter(cfg.FFmpegBin, cfg.FFprobeBin)
	a.library = library.NewStore(cfg.DataDir, a.converter)
	a.classifier = command.NewClassifier(cfg.ClassifierCmd, a.library, cfg.ClassifierTimeout)

	maxBytes := uint64(cfg.MaxUploadSizeMB) * 1024 * 1024
	a.pipeline = service.NewPipeline(
		a.library,
		filesystem.NewLocal(maxBytes),
		a.classifier,
		a.entries,
		a.settings,
		service.NewPreviewRegistry(),
		a.bus,
	)
	return a, nil
}

func (a *app) openHistory() error {
	switch a.cfg.Store {
	case config.StoreJSON:
		a.historyPath = filepath.Join(a.cfg.DataDir, jsonfile.EntriesFileName)
		a.historyExisted = fileExists(a.historyPath)
		store, err := jsonfile.NewStore(a.cfg.DataDir)
		if err != nil {
			return fmt.Errorf("open history: %w", err)
		}
		a.entries = store
	default:
		a.historyPath = filepath.Join(a.cfg.DataDir, sqlitestore.DBFileName)
		a.historyExisted = fileExists(a.historyPath)
		store, err := sqlitestore.NewStore(a.cfg.DataDir)
		if err != nil {
			return fmt.Errorf("open history: %w", err)
		}
		a.entries = store
		a.closers = append(a.closers, store.Close)
	}
	return nil
}

// healthCheck publishes a ui-log warning for every missing collaborator.
// Nothing here is fatal; the pipeline reports failures when it runs.
func (a *app) healthCheck() []string {
	var warnings []string
	warn := func(msg string) {
		warnings = append(warnings, msg)
		logger.Warn.Print(msg)
		a.bus.PublishLog(domain.LogLevelWarn, "startup", msg)
	}

	if err := a.classifier.Available(); err != nil {
		warn(fmt.Sprintf("Classifier unavailable: %v", err))
	}
	if err := a.converter.Available(); err != nil {
		warn(fmt.Sprintf("Thumbnails and metadata unavailable: %v", err))
	}
	if !a.historyExisted {
		warn(fmt.Sprintf("History database not found, created %s", a.historyPath))
	}

	if len(warnings) == 0 {
		a.bus.PublishLog(domain.LogLevelInfo, "startup", "All collaborators available")
	}
	return warnings
}

func (a *app) Close() {
	if a.console != nil {
		a.console.Close()
	}
	if a.settings != nil {
		a.settings.Close()
	}
	for _, c := range a.closers {
		if err := c(); err != nil {
			logger.Error.Printf("close: %v", err)
		}
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
