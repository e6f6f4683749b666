package mock_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/gilgamesh1111/wiki"
	"github.com/gilgamesh1111/wiki/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageFetcher_FetchRandom(t *testing.T) {
	t.Parallel()

	t.Run("delegates to FetchRandomFn", func(t *testing.T) {
		t.Parallel()

		var calledWith string
		f := &mock.PageFetcher{
			FetchRandomFn: func(_ context.Context, language string) (*wiki.Page, error) {
				calledWith = language
				return &wiki.Page{Title: "Cat"}, nil
			},
		}

		page, err := f.FetchRandom(context.Background(), "fr")

		require.NoError(t, err)
		assert.Equal(t, "fr", calledWith)
		assert.Equal(t, "Cat", page.Title)
	})
}

func TestPageWriter_WritePage(t *testing.T) {
	t.Parallel()

	t.Run("delegates to WritePageFn", func(t *testing.T) {
		t.Parallel()

		pw := &mock.PageWriter{
			WritePageFn: func(w io.Writer, page *wiki.Page) error {
				_, err := io.WriteString(w, page.Title)
				return err
			},
		}
		var buf bytes.Buffer

		err := pw.WritePage(&buf, &wiki.Page{Title: "Dog"})

		require.NoError(t, err)
		assert.Equal(t, "Dog", buf.String())
	})
}
