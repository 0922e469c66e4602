package format

import (
	"strings"
	"testing"
	"time"

	"github.com/koopa0/medium-mcp/internal/medium"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func timePtr(t time.Time) *time.Time { return &t }

func TestUserProfile_AllFields(t *testing.T) {
	t.Parallel()

	u := &medium.User{
		ID:           "u1",
		Username:     "koopa",
		Fullname:     "Koopa Troopa",
		Bio:          "shell engineer",
		Followers:    42,
		Following:    7,
		ArticleCount: intPtr(12),
	}

	out := UserProfile(u)

	// Fixed field order.
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], "Username:"))
	assert.True(t, strings.HasPrefix(lines[1], "Name:"))
	assert.True(t, strings.HasPrefix(lines[2], "Bio:"))
	assert.True(t, strings.HasPrefix(lines[3], "Followers:"))
	assert.True(t, strings.HasPrefix(lines[4], "Following:"))
	assert.True(t, strings.HasPrefix(lines[5], "Articles:"))

	// Every field value appears exactly once.
	for _, want := range []string{"koopa", "Koopa Troopa", "shell engineer", "42", "7", "12"} {
		assert.Equal(t, 1, strings.Count(out, want), "value %q should appear exactly once in:\n%s", want, out)
	}
}

func TestUserProfile_MissingFields(t *testing.T) {
	t.Parallel()

	u := &medium.User{Username: "koopa", Fullname: "Koopa Troopa", Followers: 1, Following: 2}
	out := UserProfile(u)

	// Missing bio and article count render the placeholder, never an
	// omitted or empty line.
	assert.Contains(t, out, "Bio:       "+Placeholder)
	assert.Contains(t, out, "Articles:  "+Placeholder)
	require.Len(t, strings.Split(out, "\n"), 6)
}

func TestArticleSummary(t *testing.T) {
	t.Parallel()

	published := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	a := &medium.Article{
		ID:          "a1",
		Title:       "Understanding Goroutines",
		Subtitle:    "A practical guide",
		Author:      "koopa",
		URL:         "https://medium.com/p/a1",
		PublishedAt: timePtr(published),
		Claps:       intPtr(100),
		Tags:        []string{"go", "concurrency"},
	}

	out := ArticleSummary(a)

	assert.Contains(t, out, "Title: Understanding Goroutines")
	assert.Contains(t, out, "Subtitle: A practical guide")
	assert.Contains(t, out, "Author: koopa")
	assert.Contains(t, out, "Published: 2024-03-01 10:30")
	assert.Contains(t, out, "Claps: 100")
	assert.Contains(t, out, "Tags: go, concurrency")
	assert.Contains(t, out, "URL: https://medium.com/p/a1")
}

func TestArticleSummary_MissingFields(t *testing.T) {
	t.Parallel()

	a := &medium.Article{Title: "Untitled Draft"}
	out := ArticleSummary(a)

	assert.Contains(t, out, "Published: "+Placeholder)
	assert.Contains(t, out, "Claps: "+Placeholder)
	assert.Contains(t, out, "Tags: "+Placeholder)
	assert.Contains(t, out, "URL: "+Placeholder)
}

func TestArticleList(t *testing.T) {
	t.Parallel()

	articles := []medium.Article{
		{Title: "First"},
		{Title: "Second"},
		{Title: "Third"},
	}

	out := ArticleList(articles)

	// Numbered entries in adapter order.
	first := strings.Index(out, "1. Title: First")
	second := strings.Index(out, "2. Title: Second")
	third := strings.Index(out, "3. Title: Third")
	assert.GreaterOrEqual(t, first, 0)
	assert.Greater(t, second, first)
	assert.Greater(t, third, second)
}

func TestArticleList_Empty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "No articles found.", ArticleList(nil))
	assert.Equal(t, "No articles found.", ArticleList([]medium.Article{}))
}

func TestArticle_FullPayload(t *testing.T) {
	t.Parallel()

	a := &medium.Article{
		Title:  "Understanding Goroutines",
		Author: "koopa",
		Claps:  intPtr(100),
		Tags:   []string{"go"},
	}

	out := Article(a, "# Understanding Goroutines\n\nBody text.", FormatMarkdown)

	assert.Contains(t, out, "Title: Understanding Goroutines")
	assert.Contains(t, out, "Reads: "+Placeholder)
	assert.Contains(t, out, "Format: markdown")
	// Header and body separated by a blank line; body comes last.
	assert.True(t, strings.HasSuffix(out, "\n\n# Understanding Goroutines\n\nBody text."))
}
