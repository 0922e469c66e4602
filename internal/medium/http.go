package medium

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/koopa0/medium-mcp/internal/log"
)

// ClientConfig configures the HTTP client adapter.
type ClientConfig struct {
	// APIKey is the RapidAPI key sent with every request.
	APIKey string

	// BaseURL is the upstream endpoint, e.g. https://medium2.p.rapidapi.com.
	BaseURL string

	// Timeout bounds every upstream call. Defaults to 30s when zero.
	Timeout time.Duration

	// Logger receives request-level diagnostics.
	Logger log.Logger
}

// HTTPClient implements Client against the Medium API on RapidAPI.
//
// A single resty client is built at construction and shared read-only by
// all calls, so concurrent tool invocations reuse its connection pool
// without locking.
type HTTPClient struct {
	rc     *resty.Client
	logger log.Logger
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient creates the upstream adapter.
func NewHTTPClient(cfg ClientConfig) (*HTTPClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("api key is required")
	}
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://medium2.p.rapidapi.com"
	}
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q", baseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("x-rapidapi-key", cfg.APIKey).
		SetHeader("x-rapidapi-host", parsed.Host).
		// Failures are classified once and returned; the operator manages
		// quota manually, so automatic retries must stay disabled.
		SetRetryCount(0)

	return &HTTPClient{rc: rc, logger: cfg.Logger}, nil
}

// Upstream payload shapes. These never leak past this file.

type userIDPayload struct {
	ID string `json:"id"`
}

type userPayload struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Fullname       string `json:"fullname"`
	Bio            string `json:"bio"`
	FollowersCount int    `json:"followers_count"`
	FollowingCount int    `json:"following_count"`
	ArticleCount   *int   `json:"article_count"`
}

type userArticlesPayload struct {
	AssociatedArticles []string `json:"associated_articles"`
}

type articlePayload struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle"`
	Author      string   `json:"author"`
	URL         string   `json:"url"`
	PublishedAt string   `json:"published_at"`
	Claps       *int     `json:"claps"`
	Reads       *int     `json:"reads"`
	WordCount   int      `json:"word_count"`
	ReadingTime float64  `json:"reading_time"`
	Tags        []string `json:"tags"`
}

type articleHTMLPayload struct {
	HTML string `json:"html"`
}

type topFeedsPayload struct {
	TopFeeds []string `json:"topfeeds"`
}

type searchPayload struct {
	Articles []string `json:"articles"`
}

// ArticleContent fetches article metadata plus the raw HTML body.
func (c *HTTPClient) ArticleContent(ctx context.Context, articleID string) (*Article, error) {
	article, err := c.article(ctx, articleID)
	if err != nil {
		return nil, err
	}

	var body articleHTMLPayload
	op := fmt.Sprintf("article %s content", articleID)
	if err := c.get(ctx, "/article/"+url.PathEscape(articleID)+"/html", op, nil, &body); err != nil {
		return nil, err
	}
	article.BodyHTML = body.HTML

	c.logger.Debug("fetched article content", "article_id", articleID, "body_bytes", len(article.BodyHTML))
	return article, nil
}

// User fetches a user profile by username.
func (c *HTTPClient) User(ctx context.Context, username string) (*User, error) {
	id, err := c.userID(ctx, username)
	if err != nil {
		return nil, err
	}

	var payload userPayload
	op := fmt.Sprintf("user %s", username)
	if err := c.get(ctx, "/user/"+url.PathEscape(id), op, nil, &payload); err != nil {
		return nil, err
	}

	user := &User{
		ID:           payload.ID,
		Username:     payload.Username,
		Fullname:     payload.Fullname,
		Bio:          payload.Bio,
		Followers:    payload.FollowersCount,
		Following:    payload.FollowingCount,
		ArticleCount: payload.ArticleCount,
	}
	if user.Username == "" {
		user.Username = username
	}

	c.logger.Debug("fetched user", "username", username, "user_id", user.ID)
	return user, nil
}

// UserArticles lists up to count of a user's articles.
//
// Upstream returns the user's complete article index in one response; the
// enumeration cost therefore tracks the author's total output, not count.
func (c *HTTPClient) UserArticles(ctx context.Context, username string, count int) ([]Article, error) {
	id, err := c.userID(ctx, username)
	if err != nil {
		return nil, err
	}

	var index userArticlesPayload
	op := fmt.Sprintf("articles for user %s", username)
	if err := c.get(ctx, "/user/"+url.PathEscape(id)+"/articles", op, nil, &index); err != nil {
		return nil, err
	}

	c.logger.Debug("fetched user article index",
		"username", username, "index_size", len(index.AssociatedArticles), "count", count)

	return c.articles(ctx, truncate(index.AssociatedArticles, count))
}

// TopFeeds fetches the trending feed for a tag in the given mode.
func (c *HTTPClient) TopFeeds(ctx context.Context, tag, mode string, count int) ([]Article, error) {
	var feed topFeedsPayload
	op := fmt.Sprintf("top feeds for tag %s", tag)
	path := "/topfeeds/" + url.PathEscape(NormalizeTag(tag)) + "/" + url.PathEscape(mode)
	if err := c.get(ctx, path, op, nil, &feed); err != nil {
		return nil, err
	}

	return c.articles(ctx, truncate(feed.TopFeeds, count))
}

// SearchArticles searches articles by query. Upstream search returns ids
// only, so each result costs one additional metadata request.
func (c *HTTPClient) SearchArticles(ctx context.Context, query string, count int) ([]Article, error) {
	var results searchPayload
	op := fmt.Sprintf("search %q", query)
	if err := c.get(ctx, "/search/articles", op, map[string]string{"query": query}, &results); err != nil {
		return nil, err
	}

	return c.articles(ctx, truncate(results.Articles, count))
}

// userID resolves a username to the upstream user id.
func (c *HTTPClient) userID(ctx context.Context, username string) (string, error) {
	var payload userIDPayload
	op := fmt.Sprintf("user %s", username)
	if err := c.get(ctx, "/user/id_for/"+url.PathEscape(username), op, nil, &payload); err != nil {
		return "", err
	}
	if payload.ID == "" {
		return "", Errorf(KindNotFound, "user %s not found", username)
	}
	return payload.ID, nil
}

// article fetches a single article's metadata.
func (c *HTTPClient) article(ctx context.Context, articleID string) (*Article, error) {
	var payload articlePayload
	op := fmt.Sprintf("article %s", articleID)
	if err := c.get(ctx, "/article/"+url.PathEscape(articleID), op, nil, &payload); err != nil {
		return nil, err
	}

	article := &Article{
		ID:          payload.ID,
		Title:       payload.Title,
		Subtitle:    payload.Subtitle,
		Author:      payload.Author,
		URL:         payload.URL,
		PublishedAt: parseTimestamp(payload.PublishedAt),
		Claps:       payload.Claps,
		Reads:       payload.Reads,
		WordCount:   payload.WordCount,
		ReadingTime: payload.ReadingTime,
		Tags:        payload.Tags,
	}
	if article.ID == "" {
		article.ID = articleID
	}
	return article, nil
}

// articles fetches metadata for each id, preserving upstream order.
// Calls are sequential: parallel fan-out would hammer the metered quota.
func (c *HTTPClient) articles(ctx context.Context, ids []string) ([]Article, error) {
	out := make([]Article, 0, len(ids))
	for _, id := range ids {
		article, err := c.article(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, *article)
	}
	return out, nil
}

// get performs a GET and classifies any failure. out receives the decoded
// JSON payload on success.
func (c *HTTPClient) get(ctx context.Context, path, op string, query map[string]string, out any) *Error {
	req := c.rc.R().SetContext(ctx).SetResult(out)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	resp, err := req.Get(path)
	if err != nil {
		// Transport failures and timeouts land here; both are NetworkError.
		c.logger.Error("upstream request failed", "path", path, "error", err)
		return Errorf(KindNetworkError, "%s: %v", op, err)
	}
	if resp.IsError() {
		return c.classifyStatus(resp, op)
	}
	return nil
}

// classifyStatus maps a non-2xx upstream response to the error taxonomy.
func (c *HTTPClient) classifyStatus(resp *resty.Response, op string) *Error {
	status := resp.StatusCode()
	c.logger.Warn("upstream error response", "status", status, "op", op)

	switch status {
	case 404:
		return Errorf(KindNotFound, "%s: not found", op)
	case 429:
		msg := fmt.Sprintf("rate limit exceeded for %s", op)
		if hint := rateLimitHint(resp); hint != "" {
			msg += " (" + hint + ")"
		}
		return Errorf(KindRateLimited, "%s", msg)
	default:
		return Errorf(KindUpstreamUnknown, "%s: upstream returned status %d: %s",
			op, status, snippet(resp.String()))
	}
}

// rateLimitHint extracts any reset/remaining info the upstream supplied.
func rateLimitHint(resp *resty.Response) string {
	var parts []string
	if v := resp.Header().Get("Retry-After"); v != "" {
		parts = append(parts, "retry after "+v+"s")
	}
	if v := resp.Header().Get("X-RateLimit-Requests-Reset"); v != "" {
		parts = append(parts, "quota resets in "+v+"s")
	}
	if v := resp.Header().Get("X-RateLimit-Requests-Remaining"); v != "" {
		parts = append(parts, v+" requests remaining")
	}
	return strings.Join(parts, ", ")
}

// snippet bounds raw upstream bodies carried in UpstreamUnknown messages.
func snippet(s string) string {
	const maxLen = 256
	s = strings.TrimSpace(s)
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	return s
}

// truncate caps ids at count, preserving order.
func truncate(ids []string, count int) []string {
	if count > 0 && len(ids) > count {
		return ids[:count]
	}
	return ids
}

// parseTimestamp parses upstream timestamps ("2006-01-02 15:04:05" or
// RFC 3339). Returns nil when absent or unparseable.
func parseTimestamp(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
