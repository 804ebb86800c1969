package feed

import (
	"bytes"
	"cmp"
	"fmt"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

// DefaultAuthor is attributed when a feed item carries no author of its own.
const DefaultAuthor = "Karasu Gündem"

// Parser normalizes RSS 2.0, Atom and Media RSS documents into Articles.
// gofeed absorbs the dialect differences (item vs entry, CDATA wrapping,
// single-vs-array shapes); the parser's own job is field fallbacks,
// text cleanup and the non-network part of the image cascade.
type Parser struct {
	gofeedParser *gofeed.Parser
}

func NewParser() *Parser {
	return &Parser{
		gofeedParser: gofeed.NewParser(),
	}
}

func (p *Parser) Run(data []byte) (*Metadata, []Article, error) {
	parsed, err := p.gofeedParser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	metadata := &Metadata{
		Title:       CleanText(parsed.Title),
		Link:        parsed.Link,
		Description: CleanText(parsed.Description),
		Language:    parsed.Language,
	}

	if parsed.UpdatedParsed != nil {
		metadata.LastBuildDate = parsed.UpdatedParsed
	} else if parsed.PublishedParsed != nil {
		metadata.LastBuildDate = parsed.PublishedParsed
	}

	articles := make([]Article, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if item == nil {
			continue
		}
		articles = append(articles, p.normalizeItem(item))
	}

	return metadata, articles, nil
}

// normalizeItem never fails: every field has a fallback chain ending in a
// safe default, so a single malformed item cannot poison the batch.
func (p *Parser) normalizeItem(item *gofeed.Item) Article {
	link := strings.TrimSpace(cmp.Or(item.Link, item.GUID))

	article := Article{
		Title:       CleanText(item.Title),
		Link:        link,
		Description: CleanText(item.Description),
		Content:     CleanText(cmp.Or(item.Content, item.Description)),
		GUID:        cmp.Or(strings.TrimSpace(item.GUID), link),
		Author:      p.extractAuthor(item),
		Slug:        ExtractSlug(link),
	}

	if item.PublishedParsed != nil {
		article.PublishedAt = *item.PublishedParsed
	} else if item.UpdatedParsed != nil {
		article.PublishedAt = *item.UpdatedParsed
	} else {
		article.PublishedAt = time.Now().UTC()
	}

	for _, category := range item.Categories {
		if c := CleanText(category); c != "" {
			article.Categories = append(article.Categories, c)
		}
	}

	article.ImageURL = ResolveItemImage(item, link)

	return article
}

func (p *Parser) extractAuthor(item *gofeed.Item) string {
	if len(item.Authors) > 0 && item.Authors[0] != nil {
		if name := strings.TrimSpace(item.Authors[0].Name); name != "" {
			return CleanText(name)
		}
		if email := strings.TrimSpace(item.Authors[0].Email); email != "" {
			return email
		}
	}

	if item.Author != nil {
		if name := strings.TrimSpace(item.Author.Name); name != "" {
			return CleanText(name)
		}
		if email := strings.TrimSpace(item.Author.Email); email != "" {
			return email
		}
	}

	return DefaultAuthor
}
