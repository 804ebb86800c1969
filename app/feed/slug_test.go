package feed

import (
	"testing"
)

func TestExtractSlug(t *testing.T) {
	tests := []struct {
		link     string
		expected string
	}{
		{"https://karasugundem.com/haber/yeni-emlak-projesi-123", "yeni-emlak-projesi-123"},
		{"https://karasugundem.com/haber/yeni-emlak-projesi-123/", "yeni-emlak-projesi-123"},
		{"https://example.com/a/b/c", "c"},
		{"https://example.com/slug?utm_source=rss", "slug"},
		{"", FallbackSlug},
		{"https://example.com", FallbackSlug},
		{"https://example.com/", FallbackSlug},
	}

	for _, tt := range tests {
		result := ExtractSlug(tt.link)
		if result != tt.expected {
			t.Errorf("ExtractSlug(%q) = %q, expected %q", tt.link, result, tt.expected)
		}
	}
}

func TestExtractSlugDeterministic(t *testing.T) {
	link := "https://karasugundem.com/haber/deprem-toplanma-alani-92"

	first := ExtractSlug(link)
	for i := 0; i < 10; i++ {
		if got := ExtractSlug(link); got != first {
			t.Fatalf("Expected stable slug, got %q then %q", first, got)
		}
	}

	if first != "deprem-toplanma-alani-92" {
		t.Errorf("Expected slug 'deprem-toplanma-alani-92', got: %s", first)
	}
}

func TestExtractSlugUnparsableLink(t *testing.T) {
	// Control characters make url.Parse fail; the raw split fallback
	// still finds the last non-empty token.
	result := ExtractSlug("ht\x7ftp://bro ken/last-segment")
	if result != "last-segment" {
		t.Errorf("Expected 'last-segment' from raw split fallback, got: %s", result)
	}
}
