package templates

import "github.com/a-h/templ"

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

const styles = `
body{font-family:system-ui,sans-serif;margin:0;background:#f5f6f8;color:#1f2933}
header{background:#1f2933;color:#fff;padding:1rem 2rem}
header a{color:#fff;text-decoration:none;font-weight:600}
main{max-width:960px;margin:2rem auto;padding:0 1rem}
.card{background:#fff;border-radius:8px;padding:1.25rem;box-shadow:0 1px 2px rgba(0,0,0,.08);margin-bottom:1.5rem}
.metrics{display:grid;grid-template-columns:repeat(auto-fit,minmax(180px,1fr));gap:1rem}
.metric .name{font-size:.85rem;color:#52606d}
.metric .value{font-size:1.6rem;font-weight:600;margin:.25rem 0}
.trend.up{color:#0f7b3e}.trend.down{color:#b42318}.trend.flat{color:#7b8794}
table{width:100%;border-collapse:collapse;font-size:.9rem}
th,td{text-align:left;padding:.4rem .5rem;border-bottom:1px solid #e4e7eb}
.alert{border-left:4px solid #b42318;background:#fdecea;padding:.75rem 1rem;border-radius:4px}
.muted{color:#7b8794;font-size:.85rem}
`

// Layout wraps body in the page shell.
func Layout(title string, body templ.Component) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<title>`)
		h.text(title)
		h.raw(` · CSV Dashboard</title><style>`)
		h.raw(styles)
		h.raw(`</style><script src="` + htmxSrc + `"></script></head><body>`)
		h.raw(`<header><a href="/">CSV Dashboard</a></header><main>`)
		h.render(body)
		h.raw(`</main></body></html>`)
	})
}
