package extractor

import (
	"net/url"
	"regexp"
)

const instagramName = "instagram"

// Domain matching is case-sensitive: "Instagram.com" is not recognized.
var (
	instagramURLPattern   = regexp.MustCompile(`(http|https)://(www\.)?instagram\.com/.*`)
	instagramReelPattern  = regexp.MustCompile(`(http|https)://(www\.)?instagram\.com/(reel|reels)/[A-Za-z0-9_-]+`)
	instagramPostPattern  = regexp.MustCompile(`(http|https)://(www\.)?instagram\.com/p/[A-Za-z0-9_-]+`)
	instagramStoryPattern = regexp.MustCompile(`(http|https)://(www\.)?instagram\.com/stories/[A-Za-z0-9._]+/[0-9]+`)
)

// instagramRules are checked in order; the first match wins
var instagramRules = []struct {
	kind    ContentType
	pattern *regexp.Regexp
}{
	{ContentReel, instagramReelPattern},
	{ContentPost, instagramPostPattern},
	{ContentStory, instagramStoryPattern},
	{ContentOther, instagramURLPattern},
}

// IsInstagramURL reports whether url contains any Instagram URL
func IsInstagramURL(url string) bool {
	return instagramURLPattern.MatchString(url)
}

// IsInstagramReelURL reports whether url contains an Instagram reel URL
func IsInstagramReelURL(url string) bool {
	return instagramReelPattern.MatchString(url)
}

// IsInstagramPostURL reports whether url contains an Instagram post URL
func IsInstagramPostURL(url string) bool {
	return instagramPostPattern.MatchString(url)
}

// IsInstagramStoryURL reports whether url contains an Instagram story URL
func IsInstagramStoryURL(url string) bool {
	return instagramStoryPattern.MatchString(url)
}

// InstagramContentType returns reel, post or story for those URLs,
// other for any remaining Instagram URL, and ContentNone otherwise.
func InstagramContentType(url string) ContentType {
	for _, rule := range instagramRules {
		if rule.pattern.MatchString(url) {
			return rule.kind
		}
	}
	return ContentNone
}

// InstagramProvider classifies Instagram links
type InstagramProvider struct{}

func (p *InstagramProvider) Name() string {
	return instagramName
}

// Match re-checks the URL text so that the registry agrees with
// InstagramContentType about what counts as Instagram.
func (p *InstagramProvider) Match(u *url.URL) bool {
	return IsInstagramURL(u.String())
}

func (p *InstagramProvider) ContentType(rawURL string) ContentType {
	return InstagramContentType(rawURL)
}

func init() {
	Register(&InstagramProvider{},
		"instagram.com",
	)
}
