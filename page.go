package wiki

import "context"

// DefaultLanguage is the Wikipedia language edition used when none is given.
const DefaultLanguage = "en"

// Page is the summary of a single Wikipedia page.
type Page struct {
	Title   string
	Extract string // Plain text, may be empty.
}

// PageFetcher retrieves a random page summary.
type PageFetcher interface {
	// FetchRandom returns a random page from the given language edition
	// (e.g. "en", "fr"). An empty language means DefaultLanguage.
	//
	// Returns EFETCH if the request fails or the response status is not
	// successful, and EINVALID if the response body is not a valid page.
	FetchRandom(ctx context.Context, language string) (*Page, error)
}

// PageDecoder turns a raw response body into a Page.
type PageDecoder interface {
	// DecodePage returns EINVALID if the body is not JSON or lacks a
	// non-empty "title" string or an "extract" string.
	DecodePage(body []byte) (*Page, error)
}
