package feed

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Feeds in the wild arrive with double- and triple-encoded entities
// (e.g. "&amp;#8217;"), so a single substitution pass is not enough.
// Decoding is re-run until the string stops changing, capped at
// maxDecodeIterations to guard against cyclic encodings.
const maxDecodeIterations = 5

var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
	"&#039;", "'",
	"&#39;", "'",
	"&lsquo;", "‘",
	"&rsquo;", "’",
	"&ldquo;", "“",
	"&rdquo;", "”",
	"&ndash;", "–",
	"&mdash;", "—",
	"&hellip;", "…",
	"&copy;", "©",
	"&reg;", "®",
	"&trade;", "™",
	"&deg;", "°",
	"&middot;", "·",
	"&bull;", "•",
	"&amp;", "&",
)

var (
	decEntityRe = regexp.MustCompile(`&#(\d+);`)
	hexEntityRe = regexp.MustCompile(`&#[xX]([0-9a-fA-F]+);`)
	tagRe       = regexp.MustCompile(`<[^>]*>`)
	whitespace  = regexp.MustCompile(`\s+`)
)

// DecodeEntities converts HTML/XML-escaped text into plain Unicode text,
// handling named, decimal and hexadecimal entities as well as nested
// encodings. Malformed numeric entities are left untouched. The result
// is trimmed.
func DecodeEntities(s string) string {
	if s == "" {
		return ""
	}

	for i := 0; i < maxDecodeIterations; i++ {
		decoded := decodePass(s)
		if decoded == s {
			break
		}
		s = decoded
	}

	return strings.TrimSpace(s)
}

func decodePass(s string) string {
	// Named entities first. The replacer is single-pass and never
	// rescans text it just produced, so "&amp;lt;" becomes "&lt;" here
	// and only decodes to "<" on the next iteration of the outer loop.
	s = entityReplacer.Replace(s)

	s = decEntityRe.ReplaceAllStringFunc(s, func(match string) string {
		digits := match[2 : len(match)-1]
		return decodeCodePoint(digits, 10, match)
	})

	s = hexEntityRe.ReplaceAllStringFunc(s, func(match string) string {
		digits := match[3 : len(match)-1]
		return decodeCodePoint(digits, 16, match)
	})

	return s
}

// decodeCodePoint parses a numeric entity body. Anything that does not
// map to a valid rune is preserved verbatim rather than corrupting the
// surrounding text.
func decodeCodePoint(digits string, base int, original string) string {
	n, err := strconv.ParseInt(digits, base, 32)
	if err != nil {
		return original
	}
	r := rune(n)
	if r < 0 || r > utf8.MaxRune || (r >= 0xD800 && r <= 0xDFFF) {
		return original
	}
	return string(r)
}

// StripTags removes markup from an HTML fragment and collapses the
// remaining whitespace.
func StripTags(s string) string {
	if s == "" {
		return ""
	}
	s = tagRe.ReplaceAllString(s, " ")
	s = whitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// CleanText is the standard treatment for feed-sourced text: markup
// removed, entities decoded.
func CleanText(s string) string {
	return DecodeEntities(StripTags(s))
}
