package rate_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gilgamesh1111/wiki"
	"github.com/gilgamesh1111/wiki/mock"
	"github.com/gilgamesh1111/wiki/rate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countingFetcher(calls *int) *mock.PageFetcher {
	return &mock.PageFetcher{
		FetchRandomFn: func(ctx context.Context, language string) (*wiki.Page, error) {
			*calls++
			return &wiki.Page{Title: "Page " + language}, nil
		},
	}
}

func TestPageFetcher_FetchRandom(t *testing.T) {
	t.Parallel()

	t.Run("implements wiki.PageFetcher interface", func(t *testing.T) {
		t.Parallel()
		var _ wiki.PageFetcher = rate.NewPageFetcher(&mock.PageFetcher{}, 1)
	})

	t.Run("first request is immediate", func(t *testing.T) {
		t.Parallel()

		var calls int
		fetcher := rate.NewPageFetcher(countingFetcher(&calls), 10) // 10 req/sec

		start := time.Now()
		page, err := fetcher.FetchRandom(context.Background(), "en")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.Equal(t, "Page en", page.Title)
		assert.Equal(t, 1, calls)
		assert.Less(t, elapsed, 50*time.Millisecond, "first request should be immediate")
	})

	t.Run("spaces consecutive requests", func(t *testing.T) {
		t.Parallel()

		var calls int
		fetcher := rate.NewPageFetcher(countingFetcher(&calls), 10) // 100ms between requests

		_, err := fetcher.FetchRandom(context.Background(), "en")
		require.NoError(t, err)

		start := time.Now()
		_, err = fetcher.FetchRandom(context.Background(), "en")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.Equal(t, 2, calls)
		assert.GreaterOrEqual(t, elapsed, 80*time.Millisecond, "should wait for rate limit")
	})

	t.Run("non-positive rate disables pacing", func(t *testing.T) {
		t.Parallel()

		var calls int
		fetcher := rate.NewPageFetcher(countingFetcher(&calls), 0)

		start := time.Now()
		for i := 0; i < 5; i++ {
			_, err := fetcher.FetchRandom(context.Background(), "en")
			require.NoError(t, err)
		}

		assert.Equal(t, 5, calls)
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("returns fetch error when context is canceled while waiting", func(t *testing.T) {
		t.Parallel()

		var calls int
		fetcher := rate.NewPageFetcher(countingFetcher(&calls), 1) // 1000ms between requests

		_, err := fetcher.FetchRandom(context.Background(), "en")
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err = fetcher.FetchRandom(ctx, "en")

		require.Error(t, err)
		assert.Equal(t, wiki.EFETCH, wiki.ErrorCode(err))
		assert.Equal(t, 1, calls, "inner fetcher should not be called")
	})

	t.Run("passes through inner errors", func(t *testing.T) {
		t.Parallel()

		inner := &mock.PageFetcher{
			FetchRandomFn: func(ctx context.Context, language string) (*wiki.Page, error) {
				return nil, wiki.Errorf(wiki.EINVALID, "missing title")
			},
		}
		fetcher := rate.NewPageFetcher(inner, 10)

		_, err := fetcher.FetchRandom(context.Background(), "en")

		require.Error(t, err)
		assert.Equal(t, wiki.EINVALID, wiki.ErrorCode(err))
		assert.False(t, errors.Is(err, context.Canceled))
	})
}
