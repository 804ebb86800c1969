package feed

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
)

var bareImageURLRe = regexp.MustCompile(`(?i)https?://[^\s"'<>]+\.(?:jpe?g|png|webp|gif|svg)(?:\?[^\s"'<>]*)?`)

// ResolveItemImage runs the cheap (non-network) stages of the image
// cascade against a raw feed item, first match wins:
//
//  1. RSS enclosure with an image MIME type
//  2. Media RSS media:content URL
//  3. Media RSS media:thumbnail URL
//  4. The item's own image element, if absolute
//  5. First <img src> inside content or description HTML
//  6. Bare image URL found anywhere in content or description
//
// Returns "" when every stage misses; the caller may then fall back to
// fetching the article page itself (see PageImageResolver).
func ResolveItemImage(item *gofeed.Item, link string) string {
	for _, enclosure := range item.Enclosures {
		if enclosure == nil {
			continue
		}
		if strings.HasPrefix(enclosure.Type, "image/") && enclosure.URL != "" {
			return enclosure.URL
		}
	}

	if u := mediaExtensionURL(item, "content"); u != "" {
		return u
	}
	if u := mediaExtensionURL(item, "thumbnail"); u != "" {
		return u
	}

	if item.Image != nil && isAbsoluteURL(item.Image.URL) {
		return item.Image.URL
	}

	for _, html := range []string{item.Content, item.Description} {
		if src := firstImgSrc(html, link); src != "" {
			return src
		}
	}

	for _, html := range []string{item.Content, item.Description} {
		if match := bareImageURLRe.FindString(html); match != "" {
			return match
		}
	}

	return ""
}

func mediaExtensionURL(item *gofeed.Item, element string) string {
	media, ok := item.Extensions["media"]
	if !ok {
		return ""
	}
	for _, ext := range media[element] {
		if u := ext.Attrs["url"]; u != "" {
			return u
		}
	}
	return ""
}

// firstImgSrc scans an HTML fragment for the first <img> tag and resolves
// its src against the article's own origin: "//host/path" gains https,
// "/path" is resolved against the link's host.
func firstImgSrc(html, link string) string {
	if !strings.Contains(html, "<img") {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	src, ok := doc.Find("img").First().Attr("src")
	if !ok {
		return ""
	}

	return resolveImageURL(src, link)
}

func resolveImageURL(src, link string) string {
	src = strings.TrimSpace(src)
	if src == "" {
		return ""
	}

	if strings.HasPrefix(src, "//") {
		return "https:" + src
	}

	if isAbsoluteURL(src) {
		return src
	}

	base, err := url.Parse(link)
	if err != nil || base.Host == "" {
		return ""
	}
	ref, err := url.Parse(src)
	if err != nil {
		return ""
	}

	resolved := base.ResolveReference(ref)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return ""
	}
	return resolved.String()
}

func isAbsoluteURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
