package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/anicla/anicla/internal/domain"
	"github.com/anicla/anicla/internal/infrastructure/logger"
	"github.com/anicla/anicla/internal/port"
)

// SettingsStore is the process-wide settings view. It is loaded once and
// afterwards only changed by setting-changed events.
type SettingsStore struct {
	mu       sync.RWMutex
	snapshot domain.SettingsSnapshot
	sub      *Subscription
}

func NewSettingsStore(initial domain.SettingsSnapshot, bus *EventBus) *SettingsStore {
	s := &SettingsStore{snapshot: initial}
	if bus != nil {
		s.sub = bus.Subscribe(TopicSettingChanged, s.handle)
	}
	return s
}

// LoadSettingsStore reads the persisted settings and falls back to the
// defaults when the config collaborator fails.
func LoadSettingsStore(ctx context.Context, config port.ConfigStore, bus *EventBus) *SettingsStore {
	snapshot, err := config.Load(ctx)
	if err != nil {
		logger.Warn.Printf("failed to load settings, using defaults: %v", err)
		snapshot = domain.DefaultSettings()
	}
	return NewSettingsStore(snapshot, bus)
}

func (s *SettingsStore) handle(event Event) {
	s.mu.Lock()
	applied := s.snapshot.Apply(event.Setting.Key, event.Setting.Value)
	s.mu.Unlock()

	if !applied {
		logger.Debug.Printf("ignoring setting change %q", logger.SanitizeForLog(event.Setting.Key))
	}
}

func (s *SettingsStore) Snapshot() domain.SettingsSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

func (s *SettingsStore) AutoSave() bool {
	return s.Snapshot().AutoSave
}

func (s *SettingsStore) DevConsoleEnabled() bool {
	return s.Snapshot().DevConsoleEnabled
}

func (s *SettingsStore) UIEventsEnabled() bool {
	return s.Snapshot().UIEventsEnabled
}

func (s *SettingsStore) Close() {
	s.sub.Unsubscribe()
}

// SettingsService is the writer side used by the settings UI: persist
// first, then announce the change.
type SettingsService struct {
	config port.ConfigStore
	bus    *EventBus
}

func NewSettingsService(config port.ConfigStore, bus *EventBus) *SettingsService {
	return &SettingsService{config: config, bus: bus}
}

func (s *SettingsService) Set(ctx context.Context, key string, value any) error {
	if !domain.IsKnownSetting(key) {
		return domain.NewValidationError("set setting", fmt.Errorf("unknown setting %q", key))
	}
	b, ok := domain.SettingBool(value)
	if !ok {
		return domain.NewValidationError("set setting", fmt.Errorf("setting %q expects a boolean", key))
	}
	if err := s.config.Set(ctx, key, b); err != nil {
		return fmt.Errorf("persist setting %s: %w", key, err)
	}
	logger.Info.Printf("setting changed: %s=%t", key, b)
	s.bus.PublishSetting(key, b)
	return nil
}
