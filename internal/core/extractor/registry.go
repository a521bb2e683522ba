package extractor

import (
	"net/url"
	"sort"
	"strings"
)

// providersByHost maps hostnames to their providers
var providersByHost = map[string]Provider{}

// Register adds a provider for the given hostnames
func Register(p Provider, hosts ...string) {
	for _, host := range hosts {
		providersByHost[host] = p
	}
}

// Match finds the provider for a URL using hostname lookup.
// Returns nil for unknown hosts and unparseable URLs.
func Match(rawURL string) Provider {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil
	}

	host := strings.ToLower(u.Hostname())
	if host == "" {
		return nil
	}

	// Try exact match
	if p, ok := providersByHost[host]; ok {
		// Also check path/text via the provider's own Match()
		if p.Match(u) {
			return p
		}
	}

	// Try without www. prefix
	if strings.HasPrefix(host, "www.") {
		if p, ok := providersByHost[host[4:]]; ok {
			if p.Match(u) {
				return p
			}
		}
	}

	return nil
}

// Classify runs rawURL through the registry. Input the registry cannot
// place (unparseable, or an Instagram link embedded in other text) is
// still searched for Instagram patterns. Anything else comes back with
// an empty Provider and ContentNone.
func Classify(rawURL string) Classification {
	c := Classification{URL: rawURL}
	if p := Match(rawURL); p != nil {
		c.Provider = p.Name()
		c.ContentType = p.ContentType(rawURL)
		return c
	}
	if kind := InstagramContentType(rawURL); kind != ContentNone {
		c.Provider = instagramName
		c.ContentType = kind
	}
	return c
}

// List returns all unique registered providers sorted by name
func List() []Provider {
	seen := make(map[string]bool)
	var result []Provider
	for _, p := range providersByHost {
		if !seen[p.Name()] {
			seen[p.Name()] = true
			result = append(result, p)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name() < result[j].Name()
	})
	return result
}
