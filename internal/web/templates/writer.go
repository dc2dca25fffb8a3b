package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// htmlWriter keeps the first write error so component bodies can write
// without checking every call.
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newWriter(ctx context.Context, w io.Writer) *htmlWriter {
	return &htmlWriter{ctx: ctx, w: w}
}

// markup is HTML written without escaping. Untyped string constants convert
// to it implicitly; a plain string variable does not compile, so user data
// has to go through text or rawf.
type markup string

func (h *htmlWriter) write(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

// raw writes trusted markup.
func (h *htmlWriter) raw(s markup) {
	h.write(string(s))
}

// text writes escaped text.
func (h *htmlWriter) text(s string) {
	h.write(templ.EscapeString(s))
}

// rawf fills a trusted markup format with escaped args.
func (h *htmlWriter) rawf(format markup, args ...any) {
	escaped := make([]any, len(args))
	for i, a := range args {
		escaped[i] = templ.EscapeString(fmt.Sprint(a))
	}
	h.write(fmt.Sprintf(string(format), escaped...))
}

func (h *htmlWriter) render(c templ.Component) {
	if h.err != nil {
		return
	}
	h.err = c.Render(h.ctx, h.w)
}

func component(body func(h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		body(h)
		return h.err
	})
}
