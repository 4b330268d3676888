package service

import (
	"fmt"
	"testing"

	"github.com/anicla/anicla/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConsole(t *testing.T, settings domain.SettingsSnapshot, capacity int) (*EventBus, *SettingsStore, *LogConsole) {
	t.Helper()

	bus := NewEventBus()
	store := NewSettingsStore(settings, bus)
	console := NewLogConsole(bus, store, capacity)
	t.Cleanup(func() {
		console.Close()
		store.Close()
	})
	return bus, store, console
}

func TestLogConsole_CollectsInOrder(t *testing.T) {
	settings := domain.DefaultSettings()
	settings.DevConsoleEnabled = true
	bus, _, console := newTestConsole(t, settings, 10)

	bus.PublishLog(domain.LogLevelInfo, "pipeline", "one")
	bus.PublishLog(domain.LogLevelError, "pipeline", "two")

	entries := console.VisibleEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "one", entries[0].Message)
	assert.Equal(t, "two", entries[1].Message)
	assert.Equal(t, "✖", entries[1].Icon())
}

func TestLogConsole_HiddenStillCollects(t *testing.T) {
	bus, _, console := newTestConsole(t, domain.DefaultSettings(), 10)

	bus.PublishLog(domain.LogLevelInfo, "pipeline", "quiet")

	assert.False(t, console.Visible())
	assert.Nil(t, console.VisibleEntries())
	assert.Equal(t, 1, console.Len())

	bus.PublishSetting(domain.SettingDevConsoleEnabled, true)

	assert.True(t, console.Visible())
	require.Len(t, console.VisibleEntries(), 1)
}

func TestLogConsole_UIEventsDisabledPausesCollection(t *testing.T) {
	bus, _, console := newTestConsole(t, domain.DefaultSettings(), 10)

	bus.PublishSetting(domain.SettingUIEventsEnabled, false)
	bus.PublishLog(domain.LogLevelInfo, "pipeline", "dropped")
	assert.Equal(t, 0, console.Len())

	bus.PublishSetting(domain.SettingUIEventsEnabled, true)
	bus.PublishLog(domain.LogLevelInfo, "pipeline", "kept")
	require.Equal(t, 1, console.Len())
	assert.Equal(t, "kept", console.Entries()[0].Message)
}

func TestLogConsole_EvictsOldestAtCapacity(t *testing.T) {
	bus, _, console := newTestConsole(t, domain.DefaultSettings(), 3)

	before := console.Entries()
	for i := 0; i < 5; i++ {
		bus.PublishLog(domain.LogLevelInfo, "test", fmt.Sprintf("msg-%d", i))
	}

	entries := console.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "msg-2", entries[0].Message)
	assert.Equal(t, "msg-4", entries[2].Message)
	assert.Empty(t, before)
}

func TestLogConsole_Clear(t *testing.T) {
	bus, _, console := newTestConsole(t, domain.DefaultSettings(), 0)

	bus.PublishLog(domain.LogLevelWarn, "test", "x")
	console.Clear()
	assert.Equal(t, 0, console.Len())

	bus.PublishLog(domain.LogLevelWarn, "test", "y")
	assert.Equal(t, 1, console.Len())
}

func TestLogConsole_CloseUnsubscribes(t *testing.T) {
	bus := NewEventBus()
	console := NewLogConsole(bus, nil, 5)
	require.Equal(t, 1, bus.SubscriberCount(TopicUILog))

	console.Close()
	bus.PublishLog(domain.LogLevelInfo, "test", "late")

	assert.Equal(t, 0, console.Len())
	assert.Equal(t, 0, bus.SubscriberCount(TopicUILog))
	assert.True(t, console.Visible())
}
