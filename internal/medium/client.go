// Package medium wraps the Medium API on RapidAPI behind a small client
// interface with a stable error taxonomy.
//
// The adapter owns all knowledge of the upstream response shapes; nothing
// past this boundary sees raw HTTP status codes or payloads. Failures are
// classified exactly once into *Error and returned immediately. The
// package never retries or backs off: the operator manages the RapidAPI
// quota by hand.
package medium

import (
	"context"
	"strings"
	"time"
)

// User is a Medium user profile.
type User struct {
	ID        string
	Username  string
	Fullname  string
	Bio       string
	Followers int
	Following int

	// ArticleCount is nil when the upstream profile payload does not carry
	// a total; formatting renders it as a placeholder instead of omitting it.
	ArticleCount *int
}

// Article is a Medium article. Listing operations populate the metadata
// fields only; BodyHTML is set by ArticleContent.
type Article struct {
	ID          string
	Title       string
	Subtitle    string
	Author      string
	URL         string
	PublishedAt *time.Time
	Claps       *int
	Reads       *int
	WordCount   int
	ReadingTime float64
	Tags        []string

	// BodyHTML is the article body as upstream HTML, unrendered.
	// The format package converts it to the caller's requested format.
	BodyHTML string
}

// Client is the capability set of the upstream adapter. Tool handlers
// depend on this interface; tests substitute a StubClient.
type Client interface {
	// ArticleContent fetches an article's metadata and raw HTML body.
	ArticleContent(ctx context.Context, articleID string) (*Article, error)

	// User fetches a user profile by username.
	User(ctx context.Context, username string) (*User, error)

	// UserArticles lists up to count of a user's articles, newest first as
	// returned by upstream.
	//
	// Cost warning: upstream only exposes the user's complete article index,
	// so this enumerates every article id the author has published before
	// truncating to count. Upstream cost scales with the author's output,
	// not with count.
	UserArticles(ctx context.Context, username string, count int) ([]Article, error)

	// TopFeeds fetches the trending feed for a tag in the given mode.
	TopFeeds(ctx context.Context, tag, mode string, count int) ([]Article, error)

	// SearchArticles searches articles by query.
	SearchArticles(ctx context.Context, query string, count int) ([]Article, error)
}

// FeedModes lists the feed sort modes accepted by upstream.
var FeedModes = []string{"hot", "new", "top_year", "top_month", "top_week", "top_all_time"}

// DefaultFeedMode is used when a feed request does not name a mode.
const DefaultFeedMode = "hot"

// NormalizeFeedMode lowercases mode and resolves the "top" shorthand to
// "top_all_time". Returns false for modes upstream does not accept.
func NormalizeFeedMode(mode string) (string, bool) {
	m := strings.ToLower(strings.TrimSpace(mode))
	if m == "top" {
		m = "top_all_time"
	}
	for _, known := range FeedModes {
		if m == known {
			return m, true
		}
	}
	return "", false
}

// NormalizeTag converts a user-supplied tag to the upstream format:
// lowercase with hyphens instead of spaces.
func NormalizeTag(tag string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(tag)), " ", "-")
}
