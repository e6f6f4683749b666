// Package rate provides a wiki.PageFetcher decorator that paces requests
// with a token bucket from golang.org/x/time/rate.
package rate

import (
	"context"

	"github.com/gilgamesh1111/wiki"
	"golang.org/x/time/rate"
)

// DefaultRequestsPerSecond keeps repeated fetches polite to the upstream API.
const DefaultRequestsPerSecond = 1.0

var _ wiki.PageFetcher = (*PageFetcher)(nil)

// PageFetcher delays each call until the limiter allows it, then
// delegates to the wrapped fetcher. Bursting is not allowed, so the first
// call is immediate and later calls are spaced 1/rps apart.
type PageFetcher struct {
	next    wiki.PageFetcher
	limiter *rate.Limiter
}

// NewPageFetcher creates a new PageFetcher allowing rps requests per second.
// A non-positive rps disables pacing.
func NewPageFetcher(next wiki.PageFetcher, rps float64) *PageFetcher {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	return &PageFetcher{
		next:    next,
		limiter: rate.NewLimiter(limit, 1),
	}
}

// FetchRandom waits for the limiter and delegates to the wrapped fetcher.
func (f *PageFetcher) FetchRandom(ctx context.Context, language string) (*wiki.Page, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, wiki.Errorf(wiki.EFETCH, "rate limit wait: %v", err)
	}
	return f.next.FetchRandom(ctx, language)
}
