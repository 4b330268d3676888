package service

import (
	"context"
	"errors"
	"testing"

	"github.com/anicla/anicla/internal/domain"
	"github.com/anicla/anicla/internal/port/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsStore_UsesPersistedValues(t *testing.T) {
	config := mocks.NewConfigStoreMock(t)
	config.EXPECT().Load(mock.Anything).
		Return(domain.SettingsSnapshot{AutoSave: false, DevConsoleEnabled: true, UIEventsEnabled: true}, nil).Once()

	store := LoadSettingsStore(context.Background(), config, NewEventBus())
	defer store.Close()

	assert.False(t, store.AutoSave())
	assert.True(t, store.DevConsoleEnabled())
	assert.True(t, store.UIEventsEnabled())
}

func TestLoadSettingsStore_FallsBackToDefaults(t *testing.T) {
	config := mocks.NewConfigStoreMock(t)
	config.EXPECT().Load(mock.Anything).Return(domain.SettingsSnapshot{}, errors.New("corrupt file")).Once()

	store := LoadSettingsStore(context.Background(), config, NewEventBus())
	defer store.Close()

	assert.Equal(t, domain.DefaultSettings(), store.Snapshot())
}

func TestSettingsStore_FollowsSettingChanged(t *testing.T) {
	bus := NewEventBus()
	store := NewSettingsStore(domain.DefaultSettings(), bus)
	defer store.Close()

	bus.PublishSetting(domain.SettingAutoSave, false)
	bus.PublishSetting(domain.SettingDevConsoleEnabled, "true")

	assert.False(t, store.AutoSave())
	assert.True(t, store.DevConsoleEnabled())
}

func TestSettingsStore_IgnoresMalformedChanges(t *testing.T) {
	bus := NewEventBus()
	store := NewSettingsStore(domain.DefaultSettings(), bus)
	defer store.Close()

	bus.PublishSetting("volume", true)
	bus.PublishSetting(domain.SettingAutoSave, 42)

	assert.Equal(t, domain.DefaultSettings(), store.Snapshot())
}

func TestSettingsStore_CloseStopsUpdates(t *testing.T) {
	bus := NewEventBus()
	store := NewSettingsStore(domain.DefaultSettings(), bus)
	store.Close()

	bus.PublishSetting(domain.SettingAutoSave, false)

	assert.True(t, store.AutoSave())
	assert.Equal(t, 0, bus.SubscriberCount(TopicSettingChanged))
}

func TestSettingsService_SetPersistsThenPublishes(t *testing.T) {
	config := mocks.NewConfigStoreMock(t)
	bus := NewEventBus()
	store := NewSettingsStore(domain.DefaultSettings(), bus)
	defer store.Close()

	var persisted bool
	config.EXPECT().Set(mock.Anything, domain.SettingAutoSave, false).
		Run(func(context.Context, string, interface{}) { persisted = true }).
		Return(nil).Once()

	var published []domain.SettingChange
	bus.Subscribe(TopicSettingChanged, func(e Event) {
		assert.True(t, persisted, "change must be persisted before it is published")
		published = append(published, e.Setting)
	})

	svc := NewSettingsService(config, bus)
	require.NoError(t, svc.Set(context.Background(), domain.SettingAutoSave, "false"))

	assert.False(t, store.AutoSave())
	require.Len(t, published, 1)
	assert.Equal(t, false, published[0].Value)
}

func TestSettingsService_SetRejectsInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value any
	}{
		{name: "unknown key", key: "theme", value: true},
		{name: "non boolean", key: domain.SettingAutoSave, value: "sometimes"},
		{name: "number", key: domain.SettingUIEventsEnabled, value: 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := mocks.NewConfigStoreMock(t)
			bus := NewEventBus()
			published := 0
			bus.Subscribe(TopicSettingChanged, func(Event) { published++ })

			err := NewSettingsService(config, bus).Set(context.Background(), tt.key, tt.value)

			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Equal(t, 0, published)
		})
	}
}

func TestSettingsService_PersistFailureDoesNotPublish(t *testing.T) {
	config := mocks.NewConfigStoreMock(t)
	bus := NewEventBus()
	published := 0
	bus.Subscribe(TopicSettingChanged, func(Event) { published++ })

	config.EXPECT().Set(mock.Anything, domain.SettingDevConsoleEnabled, true).
		Return(errors.New("read-only filesystem")).Once()

	err := NewSettingsService(config, bus).Set(context.Background(), domain.SettingDevConsoleEnabled, true)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "read-only filesystem")
	assert.Equal(t, 0, published)
}
