package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/anicla/anicla/internal/domain"
)

func ConsolePage(visible bool, entries []domain.LogEvent) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &printer{w: w}
		p.raw(`<div class="card"><h2>Console</h2>`)
		if !visible {
			p.raw(`<p>The developer console is disabled. Turn it on in the settings on the home page.</p></div>`)
			return p.err
		}
		p.raw(`<button hx-post="/console/clear" hx-target="#console">Clear</button>`)
		p.raw(`<div id="console" class="console" hx-ext="sse" sse-connect="/events/console" sse-swap="log" hx-swap="beforeend">`)
		p.component(ctx, ConsoleEntries(entries))
		p.raw(`</div></div>`)
		return p.err
	})
	return Layout("Console", body)
}

func ConsoleEntries(entries []domain.LogEvent) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &printer{w: w}
		if len(entries) == 0 {
			p.raw(`<div class="empty">No events yet.</div>`)
		}
		for _, e := range entries {
			p.component(ctx, ConsoleEntry(e))
		}
		return p.err
	})
}

func ConsoleEntry(e domain.LogEvent) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		p := &printer{w: w}
		p.f(`<div class="%s">[%s] %s %s: %s</div>`,
			esc(string(e.Level)),
			e.Timestamp.Local().Format("15:04:05"),
			e.Icon(),
			esc(e.Source),
			esc(e.Message),
		)
		return p.err
	})
}
