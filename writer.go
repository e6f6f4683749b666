package wiki

import "io"

// TextWrapper reflows text into lines of bounded width.
type TextWrapper interface {
	Wrap(text string) string
}

// PageWriter renders a page for display.
type PageWriter interface {
	WritePage(w io.Writer, page *Page) error
}
