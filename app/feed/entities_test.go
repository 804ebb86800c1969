package feed

import (
	"strings"
	"testing"
)

func TestDecodeEntitiesPlainText(t *testing.T) {
	input := "Karasu sahilinde yeni konut projesi"
	result := DecodeEntities(input)

	if result != input {
		t.Errorf("Expected plain text unchanged, got: %s", result)
	}
}

func TestDecodeEntitiesTrimsResult(t *testing.T) {
	result := DecodeEntities("  hello world  ")
	if result != "hello world" {
		t.Errorf("Expected trimmed result, got: %q", result)
	}
}

func TestDecodeEntitiesNamed(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Tom &amp; Jerry", "Tom & Jerry"},
		{"&lt;div&gt;", "<div>"},
		{"&quot;quoted&quot;", `"quoted"`},
		{"boşluk&nbsp;var", "boşluk var"},
		{"smart &rsquo;quotes&lsquo;", "smart ’quotes‘"},
		{"dash &ndash; and &mdash; here", "dash – and — here"},
		{"marka&trade; ve &copy;", "marka™ ve ©"},
	}

	for _, tt := range tests {
		result := DecodeEntities(tt.input)
		if result != tt.expected {
			t.Errorf("DecodeEntities(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}

func TestDecodeEntitiesNumeric(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"&#65;", "A"},
		{"&#8217;", "’"},
		{"&#x41;", "A"},
		{"&#x20AC;", "€"},
		{"T&#252;rk&#231;e", "Türkçe"},
	}

	for _, tt := range tests {
		result := DecodeEntities(tt.input)
		if result != tt.expected {
			t.Errorf("DecodeEntities(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}

func TestDecodeEntitiesDoubleEncoded(t *testing.T) {
	// &amp;#8217; must decode to &#8217; on the first pass, then to the
	// right single quote on the second.
	result := DecodeEntities("it&amp;#8217;s")
	if result != "it’s" {
		t.Errorf("Expected double-encoded entity resolved, got: %q", result)
	}
}

func TestDecodeEntitiesNestedTermination(t *testing.T) {
	// Five levels of &amp; wrapping must terminate within the iteration
	// cap without looping.
	input := "&amp;amp;amp;amp;#8217;"
	result := DecodeEntities(input)

	if strings.Contains(result, "&amp;") {
		t.Errorf("Expected nested encoding fully resolved, got: %q", result)
	}
}

func TestDecodeEntitiesMalformedNumericPreserved(t *testing.T) {
	tests := []string{
		"&#99999999999999;",
		"&#xFFFFFFFFFF;",
		"&#xD800;", // surrogate half
	}

	for _, input := range tests {
		result := DecodeEntities(input)
		if result != input {
			t.Errorf("Expected malformed entity %q preserved, got: %q", input, result)
		}
	}
}

func TestDecodeEntitiesEmpty(t *testing.T) {
	if result := DecodeEntities(""); result != "" {
		t.Errorf("Expected empty string, got: %q", result)
	}
}

func TestStripTags(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"<p>Hello <b>world</b></p>", "Hello world"},
		{"no tags here", "no tags here"},
		{"<div class=\"x\">a</div><div>b</div>", "a b"},
		{"line<br/>break", "line break"},
		{"", ""},
	}

	for _, tt := range tests {
		result := StripTags(tt.input)
		if result != tt.expected {
			t.Errorf("StripTags(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}

func TestCleanText(t *testing.T) {
	input := "<p>Karasu&#8217;da <b>sat&#305;l&#305;k</b> daire &amp; arsa</p>"
	expected := "Karasu’da satılık daire & arsa"

	result := CleanText(input)
	if result != expected {
		t.Errorf("CleanText(%q) = %q, expected %q", input, result, expected)
	}
}
