// Package format renders Medium entities and article bodies to text for
// assistant consumption. Everything here is a pure function: no I/O, no
// network access, deterministic output for a given input.
package format

import (
	"fmt"
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
)

// Format selects the body rendering applied to upstream HTML.
type Format string

const (
	// FormatText strips markup down to plain prose.
	FormatText Format = "text"

	// FormatHTML passes the upstream HTML through unchanged.
	FormatHTML Format = "html"

	// FormatMarkdown converts the upstream HTML to Markdown.
	FormatMarkdown Format = "markdown"
)

// DefaultFormat is used when a tool call does not name a format.
const DefaultFormat = FormatMarkdown

// Formats lists the recognized format values, for error messages.
var Formats = []Format{FormatText, FormatHTML, FormatMarkdown}

// ParseFormat resolves a case-insensitive format name. An empty string
// resolves to DefaultFormat; anything unrecognized is an error naming the
// allowed set.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return DefaultFormat, nil
	case FormatText:
		return FormatText, nil
	case FormatHTML:
		return FormatHTML, nil
	case FormatMarkdown:
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unknown format %q (must be one of: text, html, markdown)", s)
	}
}

// tagPattern detects markup. Already-rendered text and Markdown contain no
// tags, which is what makes RenderBody idempotent for those formats.
var tagPattern = regexp.MustCompile(`<\s*[a-zA-Z!/]`)

// RenderBody renders raw upstream HTML into the requested format.
//
// Re-applying RenderBody to its own output is a no-op for FormatText and
// FormatMarkdown: rendered output carries no markup, and markup-free input
// passes through unchanged (modulo surrounding whitespace, which is trimmed
// on every pass).
func RenderBody(raw string, f Format) (string, error) {
	switch f {
	case FormatHTML:
		return raw, nil
	case FormatText:
		return htmlToText(raw)
	case FormatMarkdown:
		if !tagPattern.MatchString(raw) {
			return strings.TrimSpace(raw), nil
		}
		md, err := htmltomarkdown.ConvertString(raw)
		if err != nil {
			return "", fmt.Errorf("converting to markdown: %w", err)
		}
		return strings.TrimSpace(md), nil
	default:
		return "", fmt.Errorf("unknown format %q", f)
	}
}

// blockSelector lists the elements extracted as paragraphs by htmlToText.
// Anything outside these degrades to the whole-document text fallback.
const blockSelector = "h1, h2, h3, h4, h5, h6, p, li, blockquote, pre, figcaption"

// htmlToText strips markup to plain prose. Block-level elements become
// paragraphs separated by blank lines; scripts and styles are dropped.
func htmlToText(raw string) (string, error) {
	if !tagPattern.MatchString(raw) {
		return strings.TrimSpace(raw), nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("parsing html: %w", err)
	}
	doc.Find("script, style").Remove()

	var blocks []string
	doc.Find(blockSelector).Each(func(_ int, sel *goquery.Selection) {
		// Nested blocks (a p inside a blockquote, li under ul) would be
		// emitted twice; keep only the innermost occurrences.
		if sel.ChildrenFiltered(blockSelector).Length() > 0 {
			return
		}
		if text := collapseSpaces(sel.Text()); text != "" {
			blocks = append(blocks, text)
		}
	})

	if len(blocks) == 0 {
		return strings.TrimSpace(doc.Text()), nil
	}
	return strings.Join(blocks, "\n\n"), nil
}

var spacePattern = regexp.MustCompile(`[ \t\r\n]+`)

func collapseSpaces(s string) string {
	return strings.TrimSpace(spacePattern.ReplaceAllString(s, " "))
}
