package feed

import (
	"strings"
	"testing"
	"time"
)

func TestParseRSS2(t *testing.T) {
	rssData := `<?xml version="1.0"?>
<rss version="2.0">
  <channel>
    <title>Karasu G&#252;ndem</title>
    <link>https://karasugundem.com</link>
    <description>Karasu haberleri</description>
    <language>tr</language>
    <item>
      <title>Karasu&#8217;da Yeni Emlak Projesi</title>
      <link>https://karasugundem.com/haber/yeni-emlak-projesi-123</link>
      <description>Karasu merkez mahallesinde proje ba&#351;lad&#305;.</description>
      <guid>haber-123</guid>
      <pubDate>Mon, 03 Jul 2023 10:00:00 GMT</pubDate>
      <category>Emlak</category>
      <category>G&#252;ndem</category>
    </item>
    <item>
      <title>Sahil D&#252;zenlemesi</title>
      <link>https://karasugundem.com/haber/sahil-duzenlemesi-7</link>
      <description>Sahilde &#231;al&#305;&#351;malar s&#252;r&#252;yor.</description>
    </item>
  </channel>
</rss>`

	parser := NewParser()
	metadata, articles, err := parser.Run([]byte(rssData))

	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if metadata.Title != "Karasu Gündem" {
		t.Errorf("Expected decoded channel title, got: %s", metadata.Title)
	}
	if metadata.Link != "https://karasugundem.com" {
		t.Errorf("Expected link 'https://karasugundem.com', got: %s", metadata.Link)
	}
	if metadata.Language != "tr" {
		t.Errorf("Expected language 'tr', got: %s", metadata.Language)
	}

	if len(articles) != 2 {
		t.Fatalf("Expected 2 articles, got: %d", len(articles))
	}

	first := articles[0]
	if first.Title != "Karasu’da Yeni Emlak Projesi" {
		t.Errorf("Expected decoded title, got: %s", first.Title)
	}
	if first.Slug != "yeni-emlak-projesi-123" {
		t.Errorf("Expected slug 'yeni-emlak-projesi-123', got: %s", first.Slug)
	}
	if first.GUID != "haber-123" {
		t.Errorf("Expected GUID 'haber-123', got: %s", first.GUID)
	}
	if len(first.Categories) != 2 {
		t.Errorf("Expected 2 categories, got: %d", len(first.Categories))
	}
	if first.Author != DefaultAuthor {
		t.Errorf("Expected default author, got: %s", first.Author)
	}
	if first.PublishedAt.IsZero() {
		t.Error("Expected publish date to be set")
	}

	// Item without guid or pubDate falls back to link and current time
	second := articles[1]
	if second.GUID != second.Link {
		t.Errorf("Expected GUID to fall back to link, got: %s", second.GUID)
	}
	if time.Since(second.PublishedAt) > time.Minute {
		t.Errorf("Expected publish date to default to now, got: %v", second.PublishedAt)
	}
}

func TestParseAtom(t *testing.T) {
	atomData := `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Karasu Haber</title>
  <link href="https://karasugundem.com"/>
  <updated>2023-07-03T12:00:00Z</updated>
  <id>urn:uuid:1234567890</id>
  <entry>
    <title>Liman Mahallesinde Sat&#305;l&#305;k Arsa</title>
    <link href="https://karasugundem.com/haber/liman-satilik-arsa-55"/>
    <id>urn:uuid:entry-1</id>
    <updated>2023-07-03T10:00:00Z</updated>
    <author><name>Haber Merkezi</name></author>
    <content type="html">&lt;p&gt;Liman mahallesinde arsa sat&#305;&#351;a &#231;&#305;kar&#305;ld&#305;.&lt;/p&gt;</content>
  </entry>
</feed>`

	parser := NewParser()
	metadata, articles, err := parser.Run([]byte(atomData))

	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if metadata.Title != "Karasu Haber" {
		t.Errorf("Expected title 'Karasu Haber', got: %s", metadata.Title)
	}

	if len(articles) != 1 {
		t.Fatalf("Expected 1 article, got: %d", len(articles))
	}

	article := articles[0]
	if article.Slug != "liman-satilik-arsa-55" {
		t.Errorf("Expected slug 'liman-satilik-arsa-55', got: %s", article.Slug)
	}
	if article.Author != "Haber Merkezi" {
		t.Errorf("Expected author 'Haber Merkezi', got: %s", article.Author)
	}
	if strings.Contains(article.Content, "<p>") {
		t.Errorf("Expected tags stripped from content, got: %s", article.Content)
	}
	if !strings.Contains(article.Content, "Liman mahallesinde") {
		t.Errorf("Expected content text preserved, got: %s", article.Content)
	}
}

func TestParseSingleItemFeed(t *testing.T) {
	rssData := `<?xml version="1.0"?>
<rss version="2.0">
  <channel>
    <title>Tek Haber</title>
    <link>https://example.com</link>
    <description>d</description>
    <item>
      <title>Tek</title>
      <link>https://example.com/tek-haber</link>
      <description>tek haber</description>
    </item>
  </channel>
</rss>`

	parser := NewParser()
	_, articles, err := parser.Run([]byte(rssData))

	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(articles) != 1 {
		t.Fatalf("Expected single item coerced into one article, got: %d", len(articles))
	}
}

func TestParseInvalidFeed(t *testing.T) {
	parser := NewParser()
	_, _, err := parser.Run([]byte("not xml at all"))

	if err == nil {
		t.Error("Expected error for invalid XML")
	}
}

func TestParseContentFallsBackToDescription(t *testing.T) {
	rssData := `<?xml version="1.0"?>
<rss version="2.0">
  <channel>
    <title>t</title>
    <link>https://example.com</link>
    <description>d</description>
    <item>
      <title>Haber</title>
      <link>https://example.com/haber-1</link>
      <description>Sadece &#246;zet var.</description>
    </item>
  </channel>
</rss>`

	parser := NewParser()
	_, articles, err := parser.Run([]byte(rssData))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if articles[0].Content != "Sadece özet var." {
		t.Errorf("Expected content to fall back to description, got: %s", articles[0].Content)
	}
}
