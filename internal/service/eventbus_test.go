package service

import (
	"context"
	"testing"
	"time"

	"github.com/anicla/anicla/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventBus_DeliversInRegistrationOrder(t *testing.T) {
	bus := NewEventBus()

	var order []string
	bus.Subscribe(TopicUILog, func(Event) { order = append(order, "first") })
	bus.Subscribe(TopicUILog, func(Event) { order = append(order, "second") })
	bus.Subscribe(TopicSettingChanged, func(Event) { order = append(order, "other topic") })

	bus.PublishLog(domain.LogLevelInfo, "test", "hello")

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestEventBus_PublishWithoutSubscribers(t *testing.T) {
	bus := NewEventBus()

	assert.NotPanics(t, func() {
		bus.PublishSetting(domain.SettingAutoSave, true)
	})
	assert.Equal(t, 0, bus.SubscriberCount(TopicSettingChanged))
}

func TestEventBus_AssignsTimestamp(t *testing.T) {
	bus := NewEventBus()
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	bus.now = func() time.Time { return fixed }

	var got domain.LogEvent
	bus.Subscribe(TopicUILog, func(e Event) { got = e.Log })

	bus.PublishLog(domain.LogLevelWarn, "pipeline", "careful")

	assert.Equal(t, fixed, got.Timestamp)
	assert.Equal(t, domain.LogLevelWarn, got.Level)
	assert.Equal(t, "pipeline", got.Source)
	assert.Equal(t, "careful", got.Message)
}

func TestEventBus_UnsubscribeIsIdempotent(t *testing.T) {
	bus := NewEventBus()

	calls := 0
	sub := bus.Subscribe(TopicUILog, func(Event) { calls++ })
	keep := bus.Subscribe(TopicUILog, func(Event) {})
	assert.Equal(t, 2, bus.SubscriberCount(TopicUILog))

	sub.Unsubscribe()
	sub.Unsubscribe()
	assert.Equal(t, 1, bus.SubscriberCount(TopicUILog))

	bus.PublishLog(domain.LogLevelInfo, "test", "after")
	assert.Equal(t, 0, calls)

	keep.Unsubscribe()
	assert.Equal(t, 0, bus.SubscriberCount(TopicUILog))
}

func TestEventBus_HandlerMayUnsubscribeDuringDelivery(t *testing.T) {
	bus := NewEventBus()

	var sub *Subscription
	secondCalls := 0
	sub = bus.Subscribe(TopicUILog, func(Event) { sub.Unsubscribe() })
	bus.Subscribe(TopicUILog, func(Event) { secondCalls++ })

	bus.PublishLog(domain.LogLevelInfo, "test", "one")
	bus.PublishLog(domain.LogLevelInfo, "test", "two")

	assert.Equal(t, 2, secondCalls)
	assert.Equal(t, 1, bus.SubscriberCount(TopicUILog))
}

func TestEventBus_HandlerMayPublish(t *testing.T) {
	bus := NewEventBus()

	var logged []string
	bus.Subscribe(TopicSettingChanged, func(e Event) {
		bus.PublishLog(domain.LogLevelInfo, "settings", e.Setting.Key+" changed")
	})
	bus.Subscribe(TopicUILog, func(e Event) { logged = append(logged, e.Log.Message) })

	bus.PublishSetting(domain.SettingDevConsoleEnabled, true)

	assert.Equal(t, []string{"devConsoleEnabled changed"}, logged)
}

func TestEventBus_SubscribeScopedReleasesOnCancel(t *testing.T) {
	bus := NewEventBus()
	ctx, cancel := context.WithCancel(context.Background())

	bus.SubscribeScoped(ctx, TopicUILog, func(Event) {})
	require.Equal(t, 1, bus.SubscriberCount(TopicUILog))

	cancel()
	assert.Eventually(t, func() bool {
		return bus.SubscriberCount(TopicUILog) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestUILogger_TagsSource(t *testing.T) {
	bus := NewEventBus()

	var got []domain.LogEvent
	bus.Subscribe(TopicUILog, func(e Event) { got = append(got, e.Log) })

	l := newUILogger(bus, "library")
	l.Info("a")
	l.Warn("b")
	l.Error("c")

	require.Len(t, got, 3)
	for _, e := range got {
		assert.Equal(t, "library", e.Source)
	}
	assert.Equal(t, domain.LogLevelInfo, got[0].Level)
	assert.Equal(t, domain.LogLevelWarn, got[1].Level)
	assert.Equal(t, domain.LogLevelError, got[2].Level)
}
