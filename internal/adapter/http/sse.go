package http

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/anicla/anicla/internal/adapter/http/templates"
	"github.com/anicla/anicla/internal/domain"
	"github.com/anicla/anicla/internal/infrastructure/logger"
	"github.com/anicla/anicla/internal/service"
)

// LogSubscriber is the part of the event bus the console stream uses.
type LogSubscriber interface {
	SubscribeScoped(ctx context.Context, topic service.Topic, handler service.Handler) *service.Subscription
}

// Events queued per client before new ones are dropped.
const sseBuffer = 64

type SSEHandler struct {
	bus       LogSubscriber
	gate      service.ConsoleGate
	keepAlive time.Duration
}

func NewSSEHandler(bus LogSubscriber, gate service.ConsoleGate) *SSEHandler {
	return &SSEHandler{
		bus:       bus,
		gate:      gate,
		keepAlive: 15 * time.Second,
	}
}

func renderLogHTML(e domain.LogEvent) (string, error) {
	var buf bytes.Buffer
	if err := templates.ConsoleEntry(e).Render(context.Background(), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// sseWrite writes an SSE event, handling multi-line data correctly.
func sseWrite(w http.ResponseWriter, eventName string, data string) {
	_, _ = fmt.Fprintf(w, "event: %s\n", eventName)
	for _, line := range strings.Split(data, "\n") {
		_, _ = fmt.Fprintf(w, "data: %s\n", line)
	}
	_, _ = fmt.Fprint(w, "\n")
	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

// sendKeepAlive writes an SSE comment to keep the connection active.
func sendKeepAlive(w http.ResponseWriter) {
	_, _ = fmt.Fprint(w, ": keep-alive\n\n")
	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

// Console streams ui-log events as "log" SSE events rendered as console
// lines. Slow clients lose events rather than blocking the publisher.
func (h *SSEHandler) Console() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("X-Accel-Buffering", "no")

		ctx := r.Context()
		ch := make(chan domain.LogEvent, sseBuffer)
		h.bus.SubscribeScoped(ctx, service.TopicUILog, func(e service.Event) {
			if h.gate != nil && (!h.gate.DevConsoleEnabled() || !h.gate.UIEventsEnabled()) {
				return
			}
			select {
			case ch <- e.Log:
			default:
				logger.Debug.Printf("console stream: dropped event from %s", e.Log.Source)
			}
		})

		sendKeepAlive(w)

		keepAlive := time.NewTicker(h.keepAlive)
		defer keepAlive.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-keepAlive.C:
				sendKeepAlive(w)
			case e := <-ch:
				html, err := renderLogHTML(e)
				if err != nil {
					logger.Error.Printf("render console entry: %v", err)
					continue
				}
				sseWrite(w, "log", html)
			}
		}
	}
}
