package medium

import "context"

// StubClient is an in-memory Client for tests. Each method returns Err when
// set, otherwise the canned data truncated to count where applicable, and
// increments its call counter so tests can assert that invalid input never
// reaches the upstream.
type StubClient struct {
	Article  *Article
	UserInfo *User
	Articles []Article
	Err      *Error

	ArticleContentCalls int
	UserCalls           int
	UserArticlesCalls   int
	TopFeedsCalls       int
	SearchCalls         int

	// LastTag and LastMode record the most recent TopFeeds arguments.
	LastTag  string
	LastMode string
}

var _ Client = (*StubClient)(nil)

// TotalCalls reports the number of upstream calls across all operations.
func (s *StubClient) TotalCalls() int {
	return s.ArticleContentCalls + s.UserCalls + s.UserArticlesCalls + s.TopFeedsCalls + s.SearchCalls
}

func (s *StubClient) ArticleContent(_ context.Context, _ string) (*Article, error) {
	s.ArticleContentCalls++
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Article, nil
}

func (s *StubClient) User(_ context.Context, _ string) (*User, error) {
	s.UserCalls++
	if s.Err != nil {
		return nil, s.Err
	}
	return s.UserInfo, nil
}

func (s *StubClient) UserArticles(_ context.Context, _ string, count int) ([]Article, error) {
	s.UserArticlesCalls++
	if s.Err != nil {
		return nil, s.Err
	}
	return s.take(count), nil
}

func (s *StubClient) TopFeeds(_ context.Context, tag, mode string, count int) ([]Article, error) {
	s.TopFeedsCalls++
	s.LastTag = tag
	s.LastMode = mode
	if s.Err != nil {
		return nil, s.Err
	}
	return s.take(count), nil
}

func (s *StubClient) SearchArticles(_ context.Context, _ string, count int) ([]Article, error) {
	s.SearchCalls++
	if s.Err != nil {
		return nil, s.Err
	}
	return s.take(count), nil
}

func (s *StubClient) take(count int) []Article {
	if count > 0 && len(s.Articles) > count {
		return s.Articles[:count]
	}
	return s.Articles
}
