// Package templates holds the HTML components of the web UI.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/anicla/anicla/internal/adapter/http/middleware"
)

// Error responses carry a fragment too, so let htmx swap them.
const htmxConfig = `<meta name="htmx-config" content='{"responseHandling":[{"code":"204","swap":false},{"code":"[23]..","swap":true},{"code":"[45]..","swap":true,"error":true}]}'>`

const htmxScript = `<script src="https://cdn.jsdelivr.net/npm/htmx.org@2.0.4/dist/htmx.min.js"></script>` +
	`<script src="https://cdn.jsdelivr.net/npm/htmx-ext-sse@2.2.2/sse.js"></script>`

const style = `<style>
body{font-family:system-ui,sans-serif;margin:0;background:#111;color:#eee}
nav{display:flex;gap:1rem;padding:.75rem 1.5rem;background:#1b1b1b}
nav a{color:#9cf;text-decoration:none}
main{max-width:52rem;margin:1.5rem auto;padding:0 1rem}
.card{background:#1b1b1b;border-radius:8px;padding:1rem;margin-bottom:1rem}
.preview{max-width:100%;max-height:24rem;display:block;margin:0 auto}
.error{color:#f77}
.console{font-family:monospace;font-size:.85rem;max-height:20rem;overflow:auto}
.console .warn{color:#fc6}.console .error{color:#f77}
table{width:100%;border-collapse:collapse}td,th{padding:.35rem;border-bottom:1px solid #333;text-align:left}
button{padding:.5rem 1rem;border-radius:6px;border:0;background:#36c;color:#fff;cursor:pointer}
button[disabled]{opacity:.5}
</style>`

// printer accumulates the first write error so components read linearly.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) raw(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

func (p *printer) f(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) text(s string) {
	p.raw(templ.EscapeString(s))
}

func (p *printer) component(ctx context.Context, c templ.Component) {
	if p.err != nil || c == nil {
		return
	}
	p.err = c.Render(ctx, p.w)
}

func esc(s string) string {
	return templ.EscapeString(s)
}

func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &printer{w: w}
		p.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		p.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		p.f(`<title>%s · Anicla</title>`, esc(title))
		p.raw(style)
		p.raw(htmxConfig)
		p.raw(htmxScript)
		p.raw(`</head>`)
		if token := middleware.CSRFToken(ctx); token != "" {
			p.f(`<body hx-headers='{"%s":"%s"}'>`, middleware.CSRFHeaderName, esc(token))
		} else {
			p.raw(`<body>`)
		}
		p.raw(`<nav><strong>Anicla</strong><a href="/">Home</a><a href="/history">History</a><a href="/console">Console</a></nav><main>`)
		p.component(ctx, body)
		p.raw(`</main></body></html>`)
		return p.err
	})
}

func ErrorInline(message string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		p := &printer{w: w}
		p.f(`<p class="error" role="alert">%s</p>`, esc(message))
		return p.err
	})
}

func ErrorPage(code, message string) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		p := &printer{w: w}
		p.f(`<div class="card"><h1>%s</h1><p>%s</p><a href="/">Back</a></div>`, esc(code), esc(message))
		return p.err
	})
	return Layout(code, body)
}
