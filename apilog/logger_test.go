package apilog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntriesKeepAppendOrder(t *testing.T) {
	l := New()
	l.RecordRequest("GET", "http://api/articles", nil, nil)
	l.RecordResponse(200, map[string]int{"articlesCount": 3})
	l.RecordRequest("DELETE", "http://api/articles/x", map[string]string{"Authorization": "Token t"}, nil)
	l.RecordResponse(204, nil)

	entries := l.Entries()
	require.Len(t, entries, 4)
	assert.Equal(t, RequestEntry, entries[0].Kind)
	assert.Equal(t, ResponseEntry, entries[1].Kind)
	assert.Equal(t, RequestEntry, entries[2].Kind)
	assert.Equal(t, ResponseEntry, entries[3].Kind)
	assert.Equal(t, "DELETE", entries[2].Method)
}

func TestDumpRendersEntriesMostRecentLast(t *testing.T) {
	l := New()
	l.RecordRequest("GET", "http://api/tags", nil, nil)
	l.RecordResponse(200, map[string][]string{"tags": {"qa"}})

	dump := l.Dump()
	requestPos := strings.Index(dump, "--- Request: GET http://api/tags")
	responsePos := strings.Index(dump, "--- Response: 200")
	require.GreaterOrEqual(t, requestPos, 0)
	require.GreaterOrEqual(t, responsePos, 0)
	assert.Less(t, requestPos, responsePos)
	assert.Contains(t, dump, `"tags"`)
}

func TestDumpOmitsAbsentBodies(t *testing.T) {
	l := New()
	l.RecordRequest("DELETE", "http://api/articles/x", nil, nil)
	l.RecordResponse(204, nil)

	assert.NotContains(t, l.Dump(), "body:")
}

func TestRecordedHeadersAreCopied(t *testing.T) {
	l := New()
	headers := map[string]string{"Authorization": "Token t"}
	l.RecordRequest("GET", "http://api/articles", headers, nil)
	headers["Authorization"] = "changed"

	assert.Equal(t, "Token t", l.Entries()[0].Headers["Authorization"])
}
