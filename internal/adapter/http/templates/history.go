package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/anicla/anicla/internal/domain"
)

func History(entries []*domain.MediaEntry) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		p := &printer{w: w}
		p.raw(`<div class="card"><h2>History</h2>`)
		if len(entries) == 0 {
			p.raw(`<p>Nothing classified yet.</p></div>`)
			return p.err
		}
		p.raw(`<table><thead><tr><th></th><th>Name</th><th>Result</th><th>Type</th><th>Resolution</th><th>Duration</th><th>Size</th><th>Date</th></tr></thead><tbody>`)
		for _, e := range entries {
			duration := "-"
			if e.Duration != nil {
				duration = domain.FormatDuration(*e.Duration)
			}
			p.raw(`<tr>`)
			p.f(`<td><img src="/library/%s/thumb" alt="" width="64" loading="lazy"></td>`, esc(e.HashedName))
			p.f(`<td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td>`,
				esc(e.Name),
				esc(e.Result),
				esc(string(e.MediaType)),
				esc(e.Resolution),
				duration,
				domain.FormatSize(e.SizeBytes),
				e.CreatedAt.Local().Format("2006-01-02 15:04"),
			)
			p.raw(`</tr>`)
		}
		p.raw(`</tbody></table></div>`)
		return p.err
	})
	return Layout("History", body)
}
