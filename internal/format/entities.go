package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/koopa0/medium-mcp/internal/medium"
)

// Placeholder marks a missing or unknown field value. Fields are always
// rendered; a missing value is shown explicitly, never silently omitted.
const Placeholder = "N/A"

// publishedLayout is the timestamp rendering used in all entity blocks.
const publishedLayout = "2006-01-02 15:04"

// UserProfile renders a user profile as a fixed-order text block.
// Every field appears exactly once; optional fields fall back to Placeholder.
func UserProfile(u *medium.User) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Username:  %s\n", orPlaceholder(u.Username))
	fmt.Fprintf(&b, "Name:      %s\n", orPlaceholder(u.Fullname))
	fmt.Fprintf(&b, "Bio:       %s\n", orPlaceholder(u.Bio))
	fmt.Fprintf(&b, "Followers: %d\n", u.Followers)
	fmt.Fprintf(&b, "Following: %d\n", u.Following)
	fmt.Fprintf(&b, "Articles:  %s", intOrPlaceholder(u.ArticleCount))
	return b.String()
}

// ArticleSummary renders one article's metadata as a text block.
func ArticleSummary(a *medium.Article) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Title: %s\n", orPlaceholder(a.Title))
	if a.Subtitle != "" {
		fmt.Fprintf(&b, "Subtitle: %s\n", a.Subtitle)
	}
	fmt.Fprintf(&b, "Author: %s\n", orPlaceholder(a.Author))
	fmt.Fprintf(&b, "Published: %s\n", publishedOrPlaceholder(a))
	fmt.Fprintf(&b, "Claps: %s\n", intOrPlaceholder(a.Claps))
	fmt.Fprintf(&b, "Tags: %s\n", tagsOrPlaceholder(a.Tags))
	fmt.Fprintf(&b, "URL: %s", orPlaceholder(a.URL))
	return b.String()
}

// ArticleList renders summaries as a numbered list, preserving the order
// the adapter supplied.
func ArticleList(articles []medium.Article) string {
	if len(articles) == 0 {
		return "No articles found."
	}

	entries := make([]string, len(articles))
	for i := range articles {
		entries[i] = fmt.Sprintf("%d. %s", i+1, indentContinuation(ArticleSummary(&articles[i])))
	}
	return strings.Join(entries, "\n\n")
}

// Article renders the full article payload: metadata header plus the body
// already rendered in the requested format.
func Article(a *medium.Article, body string, f Format) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Title: %s\n", orPlaceholder(a.Title))
	if a.Subtitle != "" {
		fmt.Fprintf(&b, "Subtitle: %s\n", a.Subtitle)
	}
	fmt.Fprintf(&b, "Author: %s\n", orPlaceholder(a.Author))
	fmt.Fprintf(&b, "Published: %s\n", publishedOrPlaceholder(a))
	fmt.Fprintf(&b, "Claps: %s\n", intOrPlaceholder(a.Claps))
	fmt.Fprintf(&b, "Reads: %s\n", intOrPlaceholder(a.Reads))
	fmt.Fprintf(&b, "Tags: %s\n", tagsOrPlaceholder(a.Tags))
	fmt.Fprintf(&b, "Format: %s\n", f)
	b.WriteString("\n")
	b.WriteString(body)
	return b.String()
}

// indentContinuation indents every line after the first so multi-line
// blocks read as one numbered entry.
func indentContinuation(block string) string {
	return strings.ReplaceAll(block, "\n", "\n   ")
}

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return Placeholder
	}
	return s
}

func intOrPlaceholder(n *int) string {
	if n == nil {
		return Placeholder
	}
	return strconv.Itoa(*n)
}

func publishedOrPlaceholder(a *medium.Article) string {
	if a.PublishedAt == nil {
		return Placeholder
	}
	return a.PublishedAt.Format(publishedLayout)
}

func tagsOrPlaceholder(tags []string) string {
	if len(tags) == 0 {
		return Placeholder
	}
	return strings.Join(tags, ", ")
}
