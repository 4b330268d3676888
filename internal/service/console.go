package service

import (
	"sync"

	"github.com/anicla/anicla/internal/domain"
)

const DefaultConsoleCapacity = 500

// ConsoleGate is the subset of settings the console reads.
type ConsoleGate interface {
	DevConsoleEnabled() bool
	UIEventsEnabled() bool
}

// LogConsole keeps the ui-log events in append order. The dev console
// setting only hides entries; they keep being collected.
type LogConsole struct {
	mu       sync.RWMutex
	entries  []domain.LogEvent
	capacity int
	gate     ConsoleGate
	sub      *Subscription
}

func NewLogConsole(bus *EventBus, gate ConsoleGate, capacity int) *LogConsole {
	if capacity <= 0 {
		capacity = DefaultConsoleCapacity
	}
	c := &LogConsole{
		capacity: capacity,
		gate:     gate,
	}
	c.sub = bus.Subscribe(TopicUILog, c.append)
	return c
}

func (c *LogConsole) append(event Event) {
	if c.gate != nil && !c.gate.UIEventsEnabled() {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= c.capacity {
		// Copy so slices handed out by Entries stay valid.
		trimmed := make([]domain.LogEvent, len(c.entries)-1, c.capacity)
		copy(trimmed, c.entries[1:])
		c.entries = trimmed
	}
	c.entries = append(c.entries, event.Log)
}

// Entries returns a copy of everything collected, visible or not.
func (c *LogConsole) Entries() []domain.LogEvent {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.LogEvent, len(c.entries))
	copy(out, c.entries)
	return out
}

func (c *LogConsole) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Visible reports whether entries may be rendered.
func (c *LogConsole) Visible() bool {
	return c.gate == nil || c.gate.DevConsoleEnabled()
}

// VisibleEntries returns nil while the console is hidden.
func (c *LogConsole) VisibleEntries() []domain.LogEvent {
	if !c.Visible() {
		return nil
	}
	return c.Entries()
}

func (c *LogConsole) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = nil
}

func (c *LogConsole) Close() {
	c.sub.Unsubscribe()
}
