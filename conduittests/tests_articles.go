package conduittests

import (
	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/conduitqa/conduit-contract-tests/data"
)

func DoArticleTests(t *T) {
	t.Run("list respects the limit parameter", func(t *T) {
		t.API().
			SetPath("/articles").
			SetQueryParam("limit", ldvalue.Int(10)).
			SetQueryParam("offset", ldvalue.Int(0))
		payload := t.Get(200)

		t.RequireLessOrEqual(payload.GetByKey("articles").Count(), 10)
		t.RequireEqual(10, payload.GetByKey("articlesCount").IntValue())
	})

	t.Run("list matches the stored schema", func(t *T) {
		t.API().
			SetPath("/articles").
			SetQueryParam("limit", ldvalue.Int(10))
		payload := t.Get(200)

		t.RequireMatchesSchema("articles", "list", payload)
	})

	t.Run("create, list, and delete round trip", func(t *T) {
		request := data.RandomizedArticle()

		t.API().SetPath("/articles").SetBody(request)
		created := t.Post(201)

		article := created.GetByKey("article")
		t.RequireEqual(request.Article.Title, article.GetByKey("title").StringValue())
		slug := article.GetByKey("slug").StringValue()
		require.NotEmpty(t, slug, "%s", t.Log().Dump())

		// A newly created article is listed first.
		t.API().SetPath("/articles")
		listed := t.Get(200)
		firstTitle := listed.GetByKey("articles").GetByIndex(0).GetByKey("title").StringValue()
		t.RequireEqual(request.Article.Title, firstTitle)

		t.API().SetPath("/articles/" + slug)
		t.Delete(204)

		t.API().SetPath("/articles")
		afterDelete := t.Get(200)
		remainingFirst := afterDelete.GetByKey("articles").GetByIndex(0).GetByKey("title").StringValue()
		require.NotEqual(t, request.Article.Title, remainingFirst, "%s", t.Log().Dump())
	})

	t.Run("update changes the title", func(t *T) {
		request := data.RandomizedArticle()

		t.API().SetPath("/articles").SetBody(request)
		created := t.Post(201)
		slug := created.GetByKey("article").GetByKey("slug").StringValue()

		request.Article.Title = request.Article.Title + " (updated)"
		t.API().SetPath("/articles/" + slug).SetBody(request)
		updated := t.Put(200)
		t.RequireEqual(request.Article.Title, updated.GetByKey("article").GetByKey("title").StringValue())

		// the slug follows the title on this API, so delete by the new one
		newSlug := updated.GetByKey("article").GetByKey("slug").StringValue()
		t.API().SetPath("/articles/" + newSlug)
		t.Delete(204)
	})

	t.Run("created article matches the stored schema", func(t *T) {
		request := data.RandomizedArticle()

		t.API().SetPath("/articles").SetBody(request)
		created := t.Post(201)

		t.RequireMatchesSchema("articles", "create", created)

		slug := created.GetByKey("article").GetByKey("slug").StringValue()
		t.API().SetPath("/articles/" + slug)
		t.Delete(204)
	})
}
