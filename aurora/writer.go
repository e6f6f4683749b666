// Package aurora implements wiki.PageWriter with ANSI highlighting from
// github.com/logrusorgru/aurora.
package aurora

import (
	"fmt"
	"io"

	"github.com/gilgamesh1111/wiki"
	"github.com/logrusorgru/aurora"
)

var _ wiki.PageWriter = (*PageWriter)(nil)

// PageWriter prints the page title on its own line, highlighted in green
// when colors are enabled, followed by the wrapped extract.
type PageWriter struct {
	au      aurora.Aurora
	wrapper wiki.TextWrapper
}

// NewPageWriter creates a new PageWriter. When color is false the output
// contains no escape sequences.
func NewPageWriter(wrapper wiki.TextWrapper, color bool) *PageWriter {
	return &PageWriter{
		au:      aurora.NewAurora(color),
		wrapper: wrapper,
	}
}

// WritePage writes page to w.
func (pw *PageWriter) WritePage(w io.Writer, page *wiki.Page) error {
	if _, err := fmt.Fprintln(w, pw.au.Green(page.Title).String()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, pw.wrapper.Wrap(page.Extract))
	return err
}
