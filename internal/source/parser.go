package source

import (
	"bytes"
	"errors"
	"html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Al69m/top10-streaming-fr/internal/catalog"
)

// ErrNoTitles is returned by a Parser when the markup contains no ranked title.
var ErrNoTitles = errors.New("no titles found in page")

// Parser extracts ranked titles from a ranking page. Implementations must be
// pure: the same input always yields the same output.
type Parser interface {
	Name() string
	Parse(page []byte) ([]catalog.RankedTitle, error)
}

// titlePattern matches `class="title">Title</a>`, optionally preceded in the
// same tag by `href="/title/<slug>/"`.
var titlePattern = regexp.MustCompile(`(?:href="/title/([^/"]+)/?"[^>]*)?class="title">([^<]+)</a>`)

// RegexParser extracts titles with a fixed textual pattern.
type RegexParser struct{}

func (RegexParser) Name() string { return "regex" }

// Parse returns the first Limit titles matched in page.
func (RegexParser) Parse(page []byte) ([]catalog.RankedTitle, error) {
	matches := titlePattern.FindAllSubmatch(page, -1)

	titles := make([]catalog.RankedTitle, 0, Limit)
	for _, m := range matches {
		if len(titles) >= Limit {
			break
		}
		title := cleanTitle(string(m[2]))
		if title == "" {
			continue
		}
		titles = append(titles, catalog.RankedTitle{
			Rank:  len(titles) + 1,
			Title: title,
			Slug:  string(m[1]),
		})
	}

	if len(titles) == 0 {
		return nil, ErrNoTitles
	}
	return titles, nil
}

// DocumentParser walks the parsed HTML document and reads every `a.title` link.
type DocumentParser struct{}

func (DocumentParser) Name() string { return "document" }

// Parse returns the first Limit titles found in page.
func (DocumentParser) Parse(page []byte) ([]catalog.RankedTitle, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return nil, err
	}

	titles := make([]catalog.RankedTitle, 0, Limit)
	doc.Find("a.title").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		title := cleanTitle(s.Text())
		if title == "" {
			return true
		}
		href, _ := s.Attr("href")
		titles = append(titles, catalog.RankedTitle{
			Rank:  len(titles) + 1,
			Title: title,
			Slug:  slugFromHref(href),
		})
		return len(titles) < Limit
	})

	if len(titles) == 0 {
		return nil, ErrNoTitles
	}
	return titles, nil
}

// ParserByName returns the parser registered under name, defaulting to the regex parser.
func ParserByName(name string) Parser {
	if name == (DocumentParser{}).Name() {
		return DocumentParser{}
	}
	return RegexParser{}
}

func cleanTitle(s string) string {
	return strings.Join(strings.Fields(html.UnescapeString(s)), " ")
}

func slugFromHref(href string) string {
	href = strings.TrimSpace(href)
	const prefix = "/title/"
	idx := strings.Index(href, prefix)
	if idx < 0 {
		return ""
	}
	slug := href[idx+len(prefix):]
	if end := strings.IndexAny(slug, "/?#"); end >= 0 {
		slug = slug[:end]
	}
	return slug
}
