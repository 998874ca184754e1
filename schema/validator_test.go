package schema

import (
	"io/ioutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

func samplePayload() ldvalue.Value {
	return ldvalue.CopyArbitraryValue(map[string]interface{}{
		"article": map[string]interface{}{
			"slug":      "harness-article-1",
			"title":     "Harness article",
			"createdAt": "2024-01-02T10:20:30.000Z",
			"favorited": false,
			"tagList":   []interface{}{"qa", "harness"},
			"author": map[string]interface{}{
				"username":  "harnessuser",
				"following": false,
			},
		},
		"articlesCount": 1,
	})
}

func TestGenerateThenValidateSamePayloadSucceeds(t *testing.T) {
	v := NewValidator(t.TempDir())

	require.NoError(t, v.Validate("articles", "create", samplePayload(), true))

	// the generated file is used for subsequent validations too
	require.NoError(t, v.Validate("articles", "create", samplePayload(), false))
}

func TestGenerateThenValidateMixedShapeArraySucceeds(t *testing.T) {
	v := NewValidator(t.TempDir())

	// author.bio is a string in one element and null in another, and only the
	// first element carries favoritesCount
	payload := ldvalue.CopyArbitraryValue(map[string]interface{}{
		"articles": []interface{}{
			map[string]interface{}{
				"slug":           "first-article",
				"favoritesCount": 3,
				"author": map[string]interface{}{
					"username": "harnessuser",
					"bio":      "hello",
				},
			},
			map[string]interface{}{
				"slug": "second-article",
				"author": map[string]interface{}{
					"username": "otheruser",
					"bio":      nil,
				},
			},
		},
		"articlesCount": 2,
	})

	require.NoError(t, v.Validate("articles", "list", payload, true))
	require.NoError(t, v.Validate("articles", "list", payload, false))

	data, err := ioutil.ReadFile(v.Path("articles", "list"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"null",`)

	// keys present in every element are still required
	missingSlug := ldvalue.CopyArbitraryValue(map[string]interface{}{
		"articles": []interface{}{
			map[string]interface{}{
				"author": map[string]interface{}{"username": "u", "bio": nil},
			},
		},
		"articlesCount": 1,
	})
	var mismatch *MismatchError
	require.ErrorAs(t, v.Validate("articles", "list", missingSlug, false), &mismatch)
	assert.Contains(t, mismatch.Violations[0], "slug")
}

func TestInferredFormatSurvivesOnlyWhenEveryElementMatches(t *testing.T) {
	v := NewValidator(t.TempDir())

	payload := ldvalue.CopyArbitraryValue(map[string]interface{}{
		"events": []interface{}{
			map[string]interface{}{"at": "2024-01-02T10:20:30Z"},
			map[string]interface{}{"at": "not a timestamp"},
		},
	})
	require.NoError(t, v.Validate("events", "list", payload, true))
	require.NoError(t, v.Validate("events", "list", payload, false))

	data, err := ioutil.ReadFile(v.Path("events", "list"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"format"`)
}

func TestGenerateOverwritesExistingSchema(t *testing.T) {
	v := NewValidator(t.TempDir())

	first := ldvalue.CopyArbitraryValue(map[string]interface{}{"tags": []interface{}{"qa"}})
	require.NoError(t, v.Validate("tags", "list", first, true))

	second := ldvalue.CopyArbitraryValue(map[string]interface{}{"count": 2})
	require.NoError(t, v.Validate("tags", "list", second, true))

	// the first payload no longer matches after regeneration
	var mismatch *MismatchError
	require.ErrorAs(t, v.Validate("tags", "list", first, false), &mismatch)
}

func TestMissingSchemaFileIsLoadErrorNamingPath(t *testing.T) {
	v := NewValidator(t.TempDir())

	err := v.Validate("articles", "list", samplePayload(), false)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, v.Path("articles", "list"), loadErr.Path)
	assert.Contains(t, err.Error(), loadErr.Path)
}

func TestMismatchCarriesViolationsAndPayload(t *testing.T) {
	v := NewValidator(t.TempDir())
	require.NoError(t, v.Validate("articles", "create", samplePayload(), true))

	bad := ldvalue.CopyArbitraryValue(map[string]interface{}{
		"article": map[string]interface{}{
			"slug": 42,
		},
	})
	err := v.Validate("articles", "create", bad, false)

	var mismatch *MismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.NotEmpty(t, mismatch.Violations)
	assert.Contains(t, err.Error(), "actual payload was:")
	assert.Contains(t, err.Error(), `"slug": 42`)
}

func TestInferredSchemaDeclaresStringFormats(t *testing.T) {
	v := NewValidator(t.TempDir())
	payload := ldvalue.CopyArbitraryValue(map[string]interface{}{
		"id":        "123e4567-e89b-12d3-a456-426614174000",
		"email":     "user@example.com",
		"createdAt": "2024-01-02T10:20:30Z",
	})
	require.NoError(t, v.Validate("users", "current", payload, true))

	data, err := ioutil.ReadFile(v.Path("users", "current"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"format": "uuid"`)
	assert.Contains(t, string(data), `"format": "email"`)
	assert.Contains(t, string(data), `"format": "date-time"`)

	bad := ldvalue.CopyArbitraryValue(map[string]interface{}{
		"id":        "not-a-uuid",
		"email":     "user@example.com",
		"createdAt": "2024-01-02T10:20:30Z",
	})
	var mismatch *MismatchError
	require.ErrorAs(t, v.Validate("users", "current", bad, false), &mismatch)
}

func TestInferredSchemaRequiresEveryObservedKey(t *testing.T) {
	v := NewValidator(t.TempDir())
	payload := ldvalue.CopyArbitraryValue(map[string]interface{}{
		"tags": []interface{}{"qa"},
	})
	require.NoError(t, v.Validate("tags", "list", payload, true))

	empty := ldvalue.CopyArbitraryValue(map[string]interface{}{})
	var mismatch *MismatchError
	require.ErrorAs(t, v.Validate("tags", "list", empty, false), &mismatch)
	assert.Contains(t, mismatch.Violations[0], "tags")
}
