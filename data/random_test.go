package data

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomizedArticleDoesNotMutateTemplate(t *testing.T) {
	before := ArticleTemplate()
	_ = RandomizedArticle()

	if diff := cmp.Diff(before, ArticleTemplate()); diff != "" {
		t.Fatalf("template changed (-want +got):\n%s", diff)
	}
}

func TestRandomizedArticleKeepsTemplateFieldsExceptTitle(t *testing.T) {
	template := ArticleTemplate()
	randomized := RandomizedArticle()

	assert.NotEqual(t, template.Article.Title, randomized.Article.Title)
	assert.Equal(t, template.Article.Description, randomized.Article.Description)
	assert.Equal(t, template.Article.Body, randomized.Article.Body)
	assert.Equal(t, template.Article.TagList, randomized.Article.TagList)
}

func TestRandomizedArticlesAreUnique(t *testing.T) {
	assert.NotEqual(t, RandomizedArticle().Article.Title, RandomizedArticle().Article.Title)
}

func TestRandomizedUserHasUniqueIdentity(t *testing.T) {
	a := RandomizedUser()
	b := RandomizedUser()

	assert.NotEqual(t, a.User.Username, b.User.Username)
	assert.NotEqual(t, a.User.Email, b.User.Email)
	assert.Equal(t, UserTemplate().User.Password, a.User.Password)
}

func TestRandomizedUserWithUsernameLength(t *testing.T) {
	for _, length := range []int{2, 3, 20, 21} {
		request := RandomizedUserWithUsernameLength(length)
		require.Len(t, request.User.Username, length)
	}
}

func TestRandomAlphanumericLengthAndCharset(t *testing.T) {
	s := RandomAlphanumeric(40)
	require.Len(t, s, 40)
	for _, ch := range s {
		ok := (ch >= 'a' && ch <= 'z') || (ch >= '0' && ch <= '9')
		assert.True(t, ok, "unexpected character %q", ch)
	}
}
