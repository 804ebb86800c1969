package feed

import (
	"net/url"
	"strings"
)

// FallbackSlug is used when no usable path segment can be derived.
const FallbackSlug = "article"

// ExtractSlug derives a stable identifier from an article link: the last
// non-empty path segment of the parsed URL. If the link does not parse as
// a URL, the raw string is split on "/" instead. The result is a pure
// function of the link, so repeated feed parses produce the same slug and
// upserts keyed on it stay idempotent.
func ExtractSlug(link string) string {
	link = strings.TrimSpace(link)
	if link == "" {
		return FallbackSlug
	}

	if u, err := url.Parse(link); err == nil {
		if s := lastNonEmptySegment(u.Path); s != "" {
			return s
		}
		return FallbackSlug
	}

	if s := lastNonEmptySegment(link); s != "" {
		return s
	}

	return FallbackSlug
}

func lastNonEmptySegment(path string) string {
	segments := strings.Split(path, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if s := strings.TrimSpace(segments[i]); s != "" {
			return s
		}
	}
	return ""
}
