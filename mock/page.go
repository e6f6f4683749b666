package mock

import (
	"context"
	"io"

	"github.com/gilgamesh1111/wiki"
)

// Compile-time interface verification.
var (
	_ wiki.PageFetcher = (*PageFetcher)(nil)
	_ wiki.PageDecoder = (*PageDecoder)(nil)
	_ wiki.TextWrapper = (*TextWrapper)(nil)
	_ wiki.PageWriter  = (*PageWriter)(nil)
)

// PageFetcher is a mock implementation of wiki.PageFetcher.
type PageFetcher struct {
	FetchRandomFn func(ctx context.Context, language string) (*wiki.Page, error)
}

func (f *PageFetcher) FetchRandom(ctx context.Context, language string) (*wiki.Page, error) {
	return f.FetchRandomFn(ctx, language)
}

// PageDecoder is a mock implementation of wiki.PageDecoder.
type PageDecoder struct {
	DecodePageFn func(body []byte) (*wiki.Page, error)
}

func (d *PageDecoder) DecodePage(body []byte) (*wiki.Page, error) {
	return d.DecodePageFn(body)
}

// TextWrapper is a mock implementation of wiki.TextWrapper.
type TextWrapper struct {
	WrapFn func(text string) string
}

func (w *TextWrapper) Wrap(text string) string {
	return w.WrapFn(text)
}

// PageWriter is a mock implementation of wiki.PageWriter.
type PageWriter struct {
	WritePageFn func(w io.Writer, page *wiki.Page) error
}

func (pw *PageWriter) WritePage(w io.Writer, page *wiki.Page) error {
	return pw.WritePageFn(w, page)
}
