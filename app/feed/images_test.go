package feed

import (
	"testing"

	"github.com/mmcdole/gofeed"
	ext "github.com/mmcdole/gofeed/extensions"
)

const itemLink = "https://karasugundem.com/haber/test-haber-1"

func mediaExtension(element, url string) ext.Extensions {
	return ext.Extensions{
		"media": {
			element: []ext.Extension{
				{Name: element, Attrs: map[string]string{"url": url}},
			},
		},
	}
}

func TestResolveItemImageEnclosure(t *testing.T) {
	item := &gofeed.Item{
		Enclosures: []*gofeed.Enclosure{
			{URL: "https://cdn.example.com/audio.mp3", Type: "audio/mpeg"},
			{URL: "https://cdn.example.com/photo.jpg", Type: "image/jpeg"},
		},
	}

	result := ResolveItemImage(item, itemLink)
	if result != "https://cdn.example.com/photo.jpg" {
		t.Errorf("Expected image enclosure URL, got: %s", result)
	}
}

func TestResolveItemImageMediaContentBeatsInlineImg(t *testing.T) {
	item := &gofeed.Item{
		Content:    `<p><img src="https://cdn.example.com/inline.jpg"/></p>`,
		Extensions: mediaExtension("content", "https://cdn.example.com/media.jpg"),
	}

	result := ResolveItemImage(item, itemLink)
	if result != "https://cdn.example.com/media.jpg" {
		t.Errorf("Expected media:content to win over inline img, got: %s", result)
	}
}

func TestResolveItemImageMediaThumbnail(t *testing.T) {
	item := &gofeed.Item{
		Extensions: mediaExtension("thumbnail", "https://cdn.example.com/thumb.jpg"),
	}

	result := ResolveItemImage(item, itemLink)
	if result != "https://cdn.example.com/thumb.jpg" {
		t.Errorf("Expected media:thumbnail URL, got: %s", result)
	}
}

func TestResolveItemImageInlineImg(t *testing.T) {
	item := &gofeed.Item{
		Description: `Haber metni <img src="https://cdn.example.com/desc.png" alt=""> devam`,
	}

	result := ResolveItemImage(item, itemLink)
	if result != "https://cdn.example.com/desc.png" {
		t.Errorf("Expected inline img src, got: %s", result)
	}
}

func TestResolveItemImageRelativeResolution(t *testing.T) {
	tests := []struct {
		src      string
		expected string
	}{
		{"//cdn.example.com/pic.jpg", "https://cdn.example.com/pic.jpg"},
		{"/uploads/pic.jpg", "https://karasugundem.com/uploads/pic.jpg"},
	}

	for _, tt := range tests {
		item := &gofeed.Item{
			Content: `<img src="` + tt.src + `">`,
		}

		result := ResolveItemImage(item, itemLink)
		if result != tt.expected {
			t.Errorf("Expected %q resolved to %q, got: %s", tt.src, tt.expected, result)
		}
	}
}

func TestResolveItemImageBareURLScan(t *testing.T) {
	item := &gofeed.Item{
		Description: "Fotograf: https://cdn.example.com/galeri/foto-12.webp boyutunda",
	}

	result := ResolveItemImage(item, itemLink)
	if result != "https://cdn.example.com/galeri/foto-12.webp" {
		t.Errorf("Expected bare image URL found, got: %s", result)
	}
}

func TestResolveItemImageNoMatch(t *testing.T) {
	item := &gofeed.Item{
		Title:       "Haber",
		Description: "Hiç görsel yok.",
	}

	if result := ResolveItemImage(item, itemLink); result != "" {
		t.Errorf("Expected empty result when every stage misses, got: %s", result)
	}
}
