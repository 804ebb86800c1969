package feed

import (
	"strings"
	"testing"
)

const extractorTestPage = `<!DOCTYPE html>
<html lang="tr">
<head><title>Karasu'da yeni konut projesi tan&#305;t&#305;ld&#305;</title></head>
<body>
  <nav><a href="/">Anasayfa</a> <a href="/haberler">Haberler</a></nav>
  <article>
    <h1>Karasu'da yeni konut projesi tan&#305;t&#305;ld&#305;</h1>
    <p>Karasu merkez mahallesinde hayata ge&#231;irilecek yeni konut projesi
    d&#252;zenlenen toplant&#305;yla tan&#305;t&#305;ld&#305;. Proje kapsam&#305;nda
    iki&#351;er ve &#252;&#231;er odal&#305; dairelerden olu&#351;an alt&#305; blok
    in&#351;a edilecek.</p>
    <p>Yetkililer, projenin b&#246;lgedeki konut a&#231;&#305;&#287;&#305;n&#305;
    kapatmay&#305; hedefledi&#287;ini ve sat&#305;&#351;lar&#305;n &#246;n&#252;m&#252;zdeki
    ay ba&#351;layaca&#287;&#305;n&#305; a&#231;&#305;klad&#305;. &#304;lk etapta
    y&#252;z yirmi dairenin al&#305;c&#305;yla bulu&#351;mas&#305; bekleniyor.</p>
  </article>
  <footer>T&#252;m haklar&#305; sakl&#305;d&#305;r.</footer>
</body>
</html>`

func TestContentExtractorRun(t *testing.T) {
	extractor := NewContentExtractor()

	text, err := extractor.Run([]byte(extractorTestPage))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if !strings.Contains(text, "yeni konut projesi") {
		t.Errorf("Expected article body in extracted text, got: %s", text)
	}
	if strings.Contains(text, "<p>") || strings.Contains(text, "<article>") {
		t.Errorf("Expected plain text without tags, got: %s", text)
	}
	if strings.Contains(text, "&#") {
		t.Errorf("Expected entities decoded, got: %s", text)
	}
}

func TestContentExtractorEmptyInput(t *testing.T) {
	extractor := NewContentExtractor()

	if _, err := extractor.Run(nil); err == nil {
		t.Error("Expected error for empty input")
	}
}

func TestContentExtractorNoContent(t *testing.T) {
	extractor := NewContentExtractor()

	if _, err := extractor.Run([]byte("<html><head></head><body></body></html>")); err == nil {
		t.Error("Expected error for page with no extractable content")
	}
}
