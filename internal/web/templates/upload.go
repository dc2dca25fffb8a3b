package templates

import (
	"github.com/a-h/templ"

	"github.com/JonMunkholm/csvdash/internal/core"
)

// UploadPage is the landing page: the upload form and recent analyses.
func UploadPage(recent []core.AnalysisSummary, maxFileSize int64) templ.Component {
	return Layout("Upload", component(func(h *htmlWriter) {
		h.render(UploadForm(maxFileSize))
		h.raw(`<div id="result"></div>`)
		h.raw(`<section class="card"><h2>Recent analyses</h2>`)
		h.raw(`<div id="history" hx-get="/api/history" hx-trigger="analysis-added from:body">`)
		h.render(HistoryList(recent))
		h.raw(`</div></section>`)
	}))
}

// UploadForm posts a .csv file to the analyze endpoint. With htmx loaded the
// dashboard replaces #result; without it the browser follows the redirect.
func UploadForm(maxFileSize int64) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<section class="card"><h2>Analyze a CSV file</h2>`)
		h.raw(`<form method="post" action="/api/analyze" enctype="multipart/form-data" `)
		h.raw(`hx-post="/api/analyze" hx-target="#result" hx-swap="innerHTML" hx-encoding="multipart/form-data">`)
		h.raw(`<p><input type="file" name="file" accept=".csv,text/csv" required></p>`)
		h.raw(`<p><label>Value column for the time series (optional) `)
		h.raw(`<input type="text" name="valueColumn" placeholder="e.g. Revenue"></label></p>`)
		h.raw(`<p><button type="submit">Analyze</button> <span class="muted">Max `)
		h.text(FormatBytes(maxFileSize))
		h.raw(`</span></p></form></section>`)
	})
}
