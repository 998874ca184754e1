// Package data holds the canonical request payloads used by the test suite,
// plus helpers that clone a template with selected fields randomized so tests
// never collide on unique fields like titles and emails.
package data

// ArticleDetails is the payload for creating or updating an article.
type ArticleDetails struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Body        string   `json:"body"`
	TagList     []string `json:"tagList"`
}

// ArticleRequest wraps ArticleDetails the way the API expects it.
type ArticleRequest struct {
	Article ArticleDetails `json:"article"`
}

// UserDetails is the payload for registering a user.
type UserDetails struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserRequest wraps UserDetails the way the API expects it.
type UserRequest struct {
	User UserDetails `json:"user"`
}

// ArticleTemplate returns the canonical article-creation body. Callers may
// mutate the returned value freely; each call returns a fresh copy.
func ArticleTemplate() ArticleRequest {
	return ArticleRequest{
		Article: ArticleDetails{
			Title:       "Harness test article",
			Description: "An article created by the contract test harness",
			Body:        "This article exists only to verify the articles endpoints. It is deleted by the test that created it.",
			TagList:     []string{"qa", "harness"},
		},
	}
}

// UserTemplate returns the canonical user-registration body. Each call
// returns a fresh copy.
func UserTemplate() UserRequest {
	return UserRequest{
		User: UserDetails{
			Username: "harnessuser",
			Email:    "harness-user@example.com",
			Password: "Harness-Passw0rd!",
		},
	}
}
