// Package apilog records the API activity of one test so that assertion
// failures can show exactly which requests and responses led up to them.
package apilog

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

// EntryKind distinguishes the two kinds of log entries.
type EntryKind string

const (
	// RequestEntry is an outgoing HTTP request.
	RequestEntry EntryKind = "Request"
	// ResponseEntry is the response to the preceding request.
	ResponseEntry EntryKind = "Response"
)

// Entry is one recorded request or response. Request entries use Method, URL,
// Headers, and optionally Body; response entries use Status and optionally
// Body.
type Entry struct {
	Kind    EntryKind
	Method  string
	URL     string
	Headers map[string]string
	Status  int
	Body    interface{}
	HasBody bool
}

// Logger is an append-only record of one test's API activity. Entries are
// never mutated or removed; Dump renders them in append order. Each test gets
// its own instance.
type Logger struct {
	entries []Entry
	lock    sync.Mutex
}

// New creates an empty Logger.
func New() *Logger {
	return &Logger{}
}

// RecordRequest appends a request entry. Pass a nil body for requests that do
// not carry one.
func (l *Logger) RecordRequest(method, url string, headers map[string]string, body interface{}) {
	l.append(Entry{
		Kind:    RequestEntry,
		Method:  method,
		URL:     url,
		Headers: copyHeaders(headers),
		Body:    body,
		HasBody: body != nil,
	})
}

// RecordResponse appends a response entry. Pass a nil body for responses whose
// payload should not be recorded.
func (l *Logger) RecordResponse(status int, body interface{}) {
	l.append(Entry{
		Kind:    ResponseEntry,
		Status:  status,
		Body:    body,
		HasBody: body != nil,
	})
}

// Entries returns a copy of all entries recorded so far, oldest first.
func (l *Logger) Entries() []Entry {
	l.lock.Lock()
	ret := append([]Entry(nil), l.entries...)
	l.lock.Unlock()
	return ret
}

// Dump renders the full activity record as human-readable text, one block per
// entry in append order, with structured content pretty-printed.
func (l *Logger) Dump() string {
	var sb strings.Builder
	sb.WriteString("Recent API activity:\n")
	for _, e := range l.Entries() {
		switch e.Kind {
		case RequestEntry:
			fmt.Fprintf(&sb, "--- Request: %s %s\n", e.Method, e.URL)
			if len(e.Headers) > 0 {
				fmt.Fprintf(&sb, "    headers: %s\n", prettyJSON(e.Headers))
			}
			if e.HasBody {
				fmt.Fprintf(&sb, "    body: %s\n", prettyJSON(e.Body))
			}
		case ResponseEntry:
			fmt.Fprintf(&sb, "--- Response: %d\n", e.Status)
			if e.HasBody {
				fmt.Fprintf(&sb, "    body: %s\n", prettyJSON(e.Body))
			}
		}
	}
	return sb.String()
}

func (l *Logger) append(e Entry) {
	l.lock.Lock()
	l.entries = append(l.entries, e)
	l.lock.Unlock()
}

func copyHeaders(headers map[string]string) map[string]string {
	if headers == nil {
		return nil
	}
	ret := make(map[string]string, len(headers))
	for k, v := range headers {
		ret[k] = v
	}
	return ret
}

func prettyJSON(value interface{}) string {
	data, err := json.MarshalIndent(value, "    ", "  ")
	if err != nil {
		return fmt.Sprintf("%+v", value)
	}
	return string(data)
}
