package feed

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	seoTitleMaxLen       = 60
	seoDescriptionMaxLen = 160
	seoTitleSuffix       = " | Karasu Emlak Haberleri"
)

// GenerateAnalysis produces the template-based "real estate angle"
// paragraph attached to relevant articles. It is deliberately formulaic:
// the site uses it as a lead-in above the syndicated body, not as
// editorial content. Safe for concurrent use: a cases.Caser carries
// internal transform state, so one is built per call rather than shared.
func GenerateAnalysis(title string, neighborhoods []string) string {
	if title == "" {
		return ""
	}

	if len(neighborhoods) == 0 {
		return fmt.Sprintf(
			"%q haberi Karasu emlak piyasasını yakından ilgilendiriyor. "+
				"Bölgedeki satılık ve kiralık konut talebini etkileyebilecek bu gelişmeyi "+
				"yatırım kararı vermeden önce değerlendirmenizi öneririz.",
			title)
	}

	titleCaser := cases.Title(language.Turkish)
	names := make([]string, 0, len(neighborhoods))
	for _, n := range neighborhoods {
		names = append(names, titleCaser.String(n))
	}

	return fmt.Sprintf(
		"%q haberi %s bölgelerindeki emlak piyasasını yakından ilgilendiriyor. "+
			"Bu bölgelerde satılık daire, arsa ve yazlık ilanlarına olan talebin "+
			"gelişmelerden etkilenmesi bekleniyor.",
		title, strings.Join(names, ", "))
}

func seoTitle(title string) string {
	if title == "" {
		return ""
	}
	return truncateOnWord(title, seoTitleMaxLen) + seoTitleSuffix
}

func seoDescription(description string) string {
	return truncateOnWord(description, seoDescriptionMaxLen)
}

// truncateOnWord cuts at the last space before the limit so titles do not
// end mid-word. Counts runes, not bytes; Turkish text is multibyte.
func truncateOnWord(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}

	cut := string(runes[:limit])
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:") + "…"
}
