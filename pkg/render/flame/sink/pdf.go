package sink

import (
	"bytes"

	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/matzehuels/flamegraph/pkg/errors"
	"github.com/matzehuels/flamegraph/pkg/render/flame/layout"
)

// PDFOption configures PDF rendering.
type PDFOption func(*pdfRenderer)

type pdfRenderer struct {
	subject string
	creator string
}

// WithSubject sets the PDF subject metadata.
func WithSubject(s string) PDFOption { return func(r *pdfRenderer) { r.subject = s } }

// WithCreator sets the PDF creator metadata.
func WithCreator(s string) PDFOption { return func(r *pdfRenderer) { r.creator = s } }

// RenderPDF renders the layout as a single-page vector PDF. The layout title
// becomes the document title.
func RenderPDF(l *layout.Layout, opts ...PDFOption) ([]byte, error) {
	r := pdfRenderer{creator: "flamegraph"}
	for _, opt := range opts {
		opt(&r)
	}
	if l == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "nothing to render")
	}

	c, err := drawLayout(l)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := pdf.New(&buf, l.Width*unitMM, l.Height*unitMM, nil)
	writer.SetInfo(l.Title, r.subject, "flame graph", "", r.creator)
	c.RenderTo(writer)
	if err := writer.Close(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "write pdf")
	}
	return buf.Bytes(), nil
}
