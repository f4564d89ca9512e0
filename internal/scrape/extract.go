package scrape

import (
	"crypto/sha256"
	"encoding/hex"
	"log"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"jobwatch/internal/domain"
)

// MinLineLength filters nav labels and other short noise, in characters.
const MinLineLength = 10

// Extractor turns a career page into candidate jobs, one per matching line.
type Extractor struct {
	patterns []*regexp.Regexp
}

// NewExtractor compiles keywords; an empty list uses DefaultKeywords.
func NewExtractor(keywords []string) (*Extractor, error) {
	if len(keywords) == 0 {
		keywords = DefaultKeywords
	}
	patterns, err := CompileKeywords(keywords)
	if err != nil {
		return nil, err
	}
	return &Extractor{patterns: patterns}, nil
}

// Extract returns a candidate for every visible text line that matches a keyword.
func (e *Extractor) Extract(company, url, page string) []domain.Job {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		log.Printf("[!] Error parsing %s: %v", url, err)
		return nil
	}

	var out []domain.Job
	for _, line := range VisibleLines(doc) {
		line = strings.TrimSpace(line)
		if utf8.RuneCountInString(line) < MinLineLength {
			continue
		}
		if !e.matches(line) {
			continue
		}
		out = append(out, domain.Job{
			Company: company,
			URL:     url,
			Snippet: line,
			ID:      Fingerprint(company, line),
		})
	}
	return out
}

func (e *Extractor) matches(line string) bool {
	for _, re := range e.patterns {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

// Fingerprint is the hex sha256 of company + "|" + snippet.
func Fingerprint(company, snippet string) string {
	h := sha256.Sum256([]byte(company + "|" + snippet))
	return hex.EncodeToString(h[:])
}

var skipTags = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
}

var blockTags = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"body": true, "caption": true, "dd": true, "details": true, "dialog": true,
	"div": true, "dl": true, "dt": true, "fieldset": true, "figcaption": true,
	"figure": true, "footer": true, "form": true, "h1": true, "h2": true,
	"h3": true, "h4": true, "h5": true, "h6": true, "header": true,
	"hgroup": true, "hr": true, "html": true, "li": true, "main": true,
	"nav": true, "ol": true, "option": true, "p": true, "pre": true,
	"section": true, "summary": true, "table": true, "tbody": true,
	"td": true, "tfoot": true, "th": true, "thead": true, "title": true,
	"tr": true, "ul": true,
}

// VisibleLines flattens the document to text, breaking lines at block
// element boundaries and <br>. Script-like subtrees are dropped.
func VisibleLines(doc *goquery.Document) []string {
	var b strings.Builder

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
			return
		case html.CommentNode, html.DoctypeNode:
			return
		case html.ElementNode:
			if skipTags[n.Data] {
				return
			}
			if n.Data == "br" {
				b.WriteByte('\n')
				return
			}
		}

		block := n.Type == html.ElementNode && blockTags[n.Data]
		if block {
			b.WriteByte('\n')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if block {
			b.WriteByte('\n')
		}
	}
	for _, n := range doc.Nodes {
		walk(n)
	}

	return splitLines(b.String())
}

func splitLines(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		switch r {
		case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
			return true
		}
		return false
	})
}
