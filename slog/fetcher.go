// Package slog provides logging decorators for wiki services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/gilgamesh1111/wiki"
)

// Ensure LoggingPageFetcher implements wiki.PageFetcher.
var _ wiki.PageFetcher = (*LoggingPageFetcher)(nil)

// LoggingPageFetcher wraps a PageFetcher with logging.
type LoggingPageFetcher struct {
	next   wiki.PageFetcher
	logger *slog.Logger
}

// NewLoggingPageFetcher creates a new LoggingPageFetcher.
func NewLoggingPageFetcher(next wiki.PageFetcher, logger *slog.Logger) *LoggingPageFetcher {
	return &LoggingPageFetcher{next: next, logger: logger}
}

// FetchRandom delegates to the wrapped fetcher and logs the operation.
func (f *LoggingPageFetcher) FetchRandom(ctx context.Context, language string) (page *wiki.Page, err error) {
	defer func(begin time.Time) {
		var title string
		if page != nil {
			title = page.Title
		}
		f.logger.Info("fetch random page",
			"language", language,
			"title", title,
			"duration", time.Since(begin),
			"code", wiki.ErrorCode(err),
			"err", err,
		)
	}(time.Now())
	return f.next.FetchRandom(ctx, language)
}
