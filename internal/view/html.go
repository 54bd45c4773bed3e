package view

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// htmlWriter writes markup the way templ's generated code does: literal tags,
// escaped dynamic values, and the first write error kept so components can
// emit markup without checking every call.
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newHTMLWriter(ctx context.Context, w io.Writer) *htmlWriter {
	return &htmlWriter{ctx: ctx, w: w}
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

// open writes a start tag with a class attribute built from the non-empty
// class names, followed by any extra pre-escaped attributes.
func (h *htmlWriter) open(tag string, classes []string, attrs ...string) {
	h.raw("<" + tag)
	if cls := joinClasses(classes...); cls != "" {
		h.raw(` class="` + templ.EscapeString(cls) + `"`)
	}
	for _, a := range attrs {
		h.raw(" " + a)
	}
	h.raw(">")
}

func (h *htmlWriter) close(tag string) {
	h.raw("</" + tag + ">")
}

func (h *htmlWriter) element(tag, class, content string) {
	h.open(tag, []string{class})
	h.text(content)
	h.close(tag)
}

func (h *htmlWriter) component(c templ.Component) {
	if h.err != nil {
		return
	}
	h.err = c.Render(h.ctx, h.w)
}

func attr(name, value string) string {
	return name + `="` + templ.EscapeString(value) + `"`
}

func urlAttr(name, value string) string {
	return attr(name, string(templ.URL(value)))
}

func joinClasses(classes ...string) string {
	kept := classes[:0:0]
	for _, c := range classes {
		if c != "" {
			kept = append(kept, c)
		}
	}
	return strings.Join(kept, " ")
}
