package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/anicla/anicla/internal/domain"
)

// StageView is the render model of the upload/classify panel.
type StageView struct {
	State      string
	Name       string
	Kind       domain.MediaKind
	Size       string
	PreviewURL string
	Result     *domain.ClassificationResult
	MaxSizeMB  int
	Message    string
}

func Home(stage StageView, settings domain.SettingsSnapshot) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &printer{w: w}
		p.raw(`<div id="stage" class="card">`)
		p.component(ctx, Stage(stage))
		p.raw(`</div><div id="settings" class="card">`)
		p.component(ctx, Settings(settings))
		p.raw(`</div>`)
		return p.err
	})
	return Layout("Home", body)
}

// Stage renders the inner HTML of #stage for the current pipeline state.
func Stage(v StageView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		p := &printer{w: w}

		if v.Message != "" {
			p.f(`<p class="error" role="alert">%s</p>`, esc(v.Message))
		}

		if v.State == "empty" {
			p.raw(`<h2>Upload</h2>`)
			p.raw(`<form hx-post="/select" hx-encoding="multipart/form-data" hx-target="#stage">`)
			p.raw(`<input type="file" name="file" accept="image/*,video/*" required> `)
			p.raw(`<button type="submit">Select</button></form>`)
			p.f(`<p><small>Images and videos up to %d MB.</small></p>`, v.MaxSizeMB)
			p.raw(`<form hx-post="/drop" hx-target="#stage">`)
			p.raw(`<input type="text" name="path" placeholder="/path/to/file.mp4" size="40" required> `)
			p.raw(`<button type="submit">Open path</button></form>`)
			return p.err
		}

		p.f(`<h2>%s</h2><p><small>%s · %s</small></p>`, esc(v.Name), esc(string(v.Kind)), esc(v.Size))
		if v.PreviewURL != "" {
			if v.Kind.IsVideo() {
				p.f(`<video class="preview" src="%s" controls muted></video>`, esc(v.PreviewURL))
			} else {
				p.f(`<img class="preview" src="%s" alt="%s">`, esc(v.PreviewURL), esc(v.Name))
			}
		}

		if v.Result != nil {
			p.raw(`<h4>Classification Result:</h4>`)
			if v.Result.Failed() {
				p.f(`<p class="error">%s</p>`, esc(v.Result.Display()))
			} else {
				p.f(`<p><strong>%s</strong></p>`, esc(v.Result.Display()))
				p.f(`<p><small>Resolution %s`, esc(v.Result.Resolution))
				if v.Result.DurationSeconds != nil {
					p.f(` · Duration %s`, esc(domain.FormatDuration(*v.Result.DurationSeconds)))
				}
				p.raw(`</small></p>`)
			}
		}

		switch v.State {
		case "classifying":
			p.raw(`<button disabled>Classifying...</button>`)
			p.raw(`<div hx-get="/stage" hx-trigger="every 1s" hx-target="#stage"></div>`)
		case "completed":
			p.raw(`<button hx-post="/classify" hx-target="#stage">Classify again</button> `)
			p.raw(`<button hx-post="/new" hx-target="#stage">New upload</button>`)
		default:
			p.raw(`<button hx-post="/classify" hx-target="#stage">Start Classification</button> `)
			p.raw(`<button hx-post="/new" hx-target="#stage">New upload</button>`)
		}
		return p.err
	})
}

type settingToggle struct {
	key   string
	label string
	on    bool
}

// Settings renders the inner HTML of #settings.
func Settings(s domain.SettingsSnapshot) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		p := &printer{w: w}
		p.raw(`<h3>Settings</h3>`)
		toggles := []settingToggle{
			{domain.SettingAutoSave, "Save results to history", s.AutoSave},
			{domain.SettingDevConsoleEnabled, "Developer console", s.DevConsoleEnabled},
			{domain.SettingUIEventsEnabled, "Collect UI events", s.UIEventsEnabled},
		}
		for _, t := range toggles {
			state, next, action := "off", "true", "Turn on"
			if t.on {
				state, next, action = "on", "false", "Turn off"
			}
			p.f(`<p>%s: <strong>%s</strong> `, esc(t.label), state)
			p.f(`<button hx-post="/settings" hx-target="#settings" hx-vals='{"key":"%s","value":"%s"}'>%s</button></p>`,
				esc(t.key), next, action)
		}
		return p.err
	})
}
