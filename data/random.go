package data

import (
	"strings"

	"github.com/google/uuid"
)

// RandomizedArticle clones the article template and overwrites the title with
// a unique value, so repeated runs do not collide on the server-generated
// slug.
func RandomizedArticle() ArticleRequest {
	req := ArticleTemplate()
	req.Article.Title = "Harness article " + uuid.NewString()
	return req
}

// RandomizedUser clones the user template and overwrites the username and
// email with unique values.
func RandomizedUser() UserRequest {
	req := UserTemplate()
	suffix := RandomAlphanumeric(12)
	req.User.Username = "qa" + suffix
	req.User.Email = "harness-" + suffix + "@example.com"
	return req
}

// RandomizedUserWithUsernameLength is RandomizedUser with a username of an
// exact length, for exercising the API's username length validation.
func RandomizedUserWithUsernameLength(length int) UserRequest {
	req := RandomizedUser()
	req.User.Username = RandomAlphanumeric(length)
	return req
}

// RandomAlphanumeric returns a random lowercase alphanumeric string of the
// given length.
func RandomAlphanumeric(length int) string {
	var sb strings.Builder
	for sb.Len() < length {
		sb.WriteString(strings.ReplaceAll(uuid.NewString(), "-", ""))
	}
	return sb.String()[:length]
}
