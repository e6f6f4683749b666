// Package http provides an HTTP-based implementation of wiki.PageFetcher
// backed by the Wikipedia REST API.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gilgamesh1111/wiki"
)

// DefaultEndpoint is the random summary endpoint of the Wikipedia REST API.
// The {language} placeholder is replaced by the requested language edition.
const DefaultEndpoint = "https://{language}.wikipedia.org/api/rest_v1/page/random/summary"

// LanguagePlaceholder marks where the language edition goes in an endpoint.
const LanguagePlaceholder = "{language}"

// ProjectURL is advertised in the User-Agent header.
const ProjectURL = "https://github.com/gilgamesh1111/wiki"

// DefaultUserAgent identifies the client to the upstream API, which rejects
// requests without a recognizable client identifier.
var DefaultUserAgent = UserAgent("dev")

// UserAgent returns the User-Agent header value for the given version.
func UserAgent(version string) string {
	return fmt.Sprintf("wiki/%s (+%s)", version, ProjectURL)
}

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// maxBodySize caps how much of a response body is read.
const maxBodySize = 1 << 20

// Ensure PageFetcher implements wiki.PageFetcher at compile time.
var _ wiki.PageFetcher = (*PageFetcher)(nil)

// Config holds the settings of a PageFetcher. Zero fields take defaults.
type Config struct {
	// Endpoint is the URL template containing LanguagePlaceholder.
	Endpoint string

	// UserAgent is sent with every request.
	UserAgent string

	// Timeout bounds a whole request including reading the body.
	Timeout time.Duration

	// Transport is used instead of http.DefaultTransport when set.
	Transport http.RoundTripper
}

// DefaultConfig returns a Config populated with the package defaults.
func DefaultConfig() Config {
	return Config{
		Endpoint:  DefaultEndpoint,
		UserAgent: DefaultUserAgent,
		Timeout:   DefaultFetchTimeout,
	}
}

// PageFetcher retrieves random page summaries with a single GET request
// per call. Decoding of the body is delegated to a wiki.PageDecoder.
type PageFetcher struct {
	client    *http.Client
	endpoint  string
	userAgent string
	decoder   wiki.PageDecoder
}

// NewPageFetcher creates a new PageFetcher.
func NewPageFetcher(config Config, decoder wiki.PageDecoder) *PageFetcher {
	defaults := DefaultConfig()
	if config.Endpoint == "" {
		config.Endpoint = defaults.Endpoint
	}
	if config.UserAgent == "" {
		config.UserAgent = defaults.UserAgent
	}
	if config.Timeout <= 0 {
		config.Timeout = defaults.Timeout
	}

	return &PageFetcher{
		client: &http.Client{
			Timeout:   config.Timeout,
			Transport: config.Transport,
		},
		endpoint:  config.Endpoint,
		userAgent: config.UserAgent,
		decoder:   decoder,
	}
}

// URL returns the request URL for the given language edition.
func (f *PageFetcher) URL(language string) string {
	if language == "" {
		language = wiki.DefaultLanguage
	}
	return strings.ReplaceAll(f.endpoint, LanguagePlaceholder, language)
}

// FetchRandom retrieves a random page from the given language edition.
func (f *PageFetcher) FetchRandom(ctx context.Context, language string) (*wiki.Page, error) {
	url := f.URL(language)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, wiki.Errorf(wiki.EFETCH, "%v", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, wiki.Errorf(wiki.EFETCH, "%v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, wiki.Errorf(wiki.EFETCH, "HTTP %d %s for %s",
			resp.StatusCode, http.StatusText(resp.StatusCode), url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return nil, wiki.Errorf(wiki.EFETCH, "read response body: %v", err)
	}
	if len(body) > maxBodySize {
		return nil, wiki.Errorf(wiki.EINVALID, "response body exceeds %d bytes", maxBodySize)
	}

	page, err := f.decoder.DecodePage(body)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", url, err)
	}
	return page, nil
}
