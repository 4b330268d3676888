package service

import (
	"context"
	"sync"
	"time"

	"github.com/anicla/anicla/internal/domain"
	"github.com/google/uuid"
)

type Topic string

const (
	TopicUILog          Topic = "ui-log"
	TopicSettingChanged Topic = "setting-changed"
)

type Event struct {
	Topic   Topic
	Log     domain.LogEvent
	Setting domain.SettingChange
}

type Handler func(Event)

// EventPublisher is what pipeline code needs from the bus.
type EventPublisher interface {
	Publish(event Event)
}

type subscriber struct {
	id      string
	handler Handler
}

// EventBus is an in-process pub/sub dispatcher partitioned by topic.
// Delivery is synchronous, in registration order, to the subscribers
// present when Publish was called.
type EventBus struct {
	subscribers map[Topic][]subscriber
	mu          sync.RWMutex
	now         func() time.Time
}

func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make(map[Topic][]subscriber),
		now:         time.Now,
	}
}

// Subscription is released with Unsubscribe, which is safe to call more
// than once.
type Subscription struct {
	ID    string
	Topic Topic
	once  sync.Once
	bus   *EventBus
}

func (s *Subscription) Unsubscribe() {
	if s == nil || s.bus == nil {
		return
	}
	s.once.Do(func() {
		s.bus.remove(s.Topic, s.ID)
	})
}

func (eb *EventBus) Subscribe(topic Topic, handler Handler) *Subscription {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	id := uuid.NewString()
	eb.subscribers[topic] = append(eb.subscribers[topic], subscriber{id: id, handler: handler})
	return &Subscription{ID: id, Topic: topic, bus: eb}
}

// SubscribeScoped subscribes until ctx is done.
func (eb *EventBus) SubscribeScoped(ctx context.Context, topic Topic, handler Handler) *Subscription {
	sub := eb.Subscribe(topic, handler)
	go func() {
		<-ctx.Done()
		sub.Unsubscribe()
	}()
	return sub
}

func (eb *EventBus) remove(topic Topic, id string) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	subs := eb.subscribers[topic]
	for i, sub := range subs {
		if sub.id == id {
			next := make([]subscriber, 0, len(subs)-1)
			next = append(next, subs[:i]...)
			eb.subscribers[topic] = append(next, subs[i+1:]...)
			break
		}
	}

	if len(eb.subscribers[topic]) == 0 {
		delete(eb.subscribers, topic)
	}
}

// SubscriberCount reports the live subscriptions for a topic.
func (eb *EventBus) SubscriberCount(topic Topic) int {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	return len(eb.subscribers[topic])
}

func (eb *EventBus) Publish(event Event) {
	if event.Topic == TopicUILog && event.Log.Timestamp.IsZero() {
		event.Log.Timestamp = eb.now()
	}

	eb.mu.RLock()
	subs := eb.subscribers[event.Topic]
	eb.mu.RUnlock()

	// The slice is never mutated in place, so handlers run without the lock
	// and may publish or unsubscribe themselves.
	for _, sub := range subs {
		sub.handler(event)
	}
}

func (eb *EventBus) PublishLog(level domain.LogLevel, source, message string) {
	eb.Publish(Event{
		Topic: TopicUILog,
		Log:   domain.LogEvent{Level: level, Source: source, Message: message},
	})
}

func (eb *EventBus) PublishSetting(key string, value any) {
	eb.Publish(Event{
		Topic:   TopicSettingChanged,
		Setting: domain.SettingChange{Key: key, Value: value},
	})
}

// uiLogger publishes ui-log events for one source.
type uiLogger struct {
	bus    EventPublisher
	source string
}

func newUILogger(bus EventPublisher, source string) uiLogger {
	return uiLogger{bus: bus, source: source}
}

func (l uiLogger) log(level domain.LogLevel, message string) {
	if l.bus == nil {
		return
	}
	l.bus.Publish(Event{
		Topic: TopicUILog,
		Log:   domain.LogEvent{Level: level, Source: l.source, Message: message},
	})
}

func (l uiLogger) Info(message string)  { l.log(domain.LogLevelInfo, message) }
func (l uiLogger) Warn(message string)  { l.log(domain.LogLevelWarn, message) }
func (l uiLogger) Error(message string) { l.log(domain.LogLevelError, message) }
