package templates

import (
	"github.com/a-h/templ"

	"github.com/JonMunkholm/csvdash/internal/core"
)

// HistoryList renders stored analyses, newest first.
func HistoryList(items []core.AnalysisSummary) templ.Component {
	return component(func(h *htmlWriter) {
		if len(items) == 0 {
			h.raw(`<p class="muted">No analyses yet.</p>`)
			return
		}
		h.raw(`<table><thead><tr><th>File</th><th>Rows</th><th>Summary</th><th>Analyzed</th></tr></thead><tbody>`)
		for _, it := range items {
			h.raw(`<tr><td><a href="`)
			h.text(analysisURL(it.ID))
			h.raw(`">`)
			h.text(it.FileName)
			h.raw(`</a></td><td>`)
			h.text(FormatNumber(float64(it.RowCount)))
			h.raw(`</td><td>`)
			h.text(it.Summary)
			h.raw(`</td><td class="muted">`)
			h.text(formatTime(it.CreatedAt))
			h.raw(`</td></tr>`)
		}
		h.raw(`</tbody></table>`)
		h.raw(`<p><button hx-delete="/api/history" hx-target="#history" hx-confirm="Clear all analyses?">Clear history</button></p>`)
	})
}
