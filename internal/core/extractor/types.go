package extractor

import "net/url"

// ContentType is the kind of content a provider URL points at
type ContentType string

const (
	ContentReel  ContentType = "reel"
	ContentPost  ContentType = "post"
	ContentStory ContentType = "story"
	// ContentOther is a provider URL that matches no specific kind
	ContentOther ContentType = "other"
	// ContentNone means the URL does not belong to the provider at all
	ContentNone ContentType = ""
)

// Provider recognizes URLs of one content site
type Provider interface {
	// Name returns the provider name (e.g., "instagram")
	Name() string

	// Match returns true if this provider can handle the URL.
	// The URL is pre-parsed so providers can reliably check the host/path.
	Match(u *url.URL) bool

	// ContentType classifies the raw URL for download dispatch
	ContentType(rawURL string) ContentType
}

// Classification is the result of running a URL through the registry
type Classification struct {
	URL         string      `json:"url"`
	Provider    string      `json:"provider"`
	ContentType ContentType `json:"content_type"`
}
