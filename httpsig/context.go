package httpsig

import (
	"net/url"
	"strings"
)

// MessageSnapshot is an immutable-in-use snapshot of an HTTP request or
// response: the subset of the message the signature engine can see
// (spec.md §3 "signature context"). Header and trailer values are
// canonicalized on insertion (spec.md §4.1: obs-fold artifacts are
// stripped, not preserved), so a field's stored value already matches what
// a component resolves.
type MessageSnapshot struct {
	Method         string
	TargetURI      *url.URL
	Status         *int
	Headers        map[string][]string
	Trailers       map[string][]string
	RelatedRequest *MessageSnapshot
}

// NewMessageSnapshot returns an empty, ready-to-populate snapshot.
func NewMessageSnapshot() *MessageSnapshot {
	return &MessageSnapshot{Headers: map[string][]string{}, Trailers: map[string][]string{}}
}

// SetMethod stores the method, normalized to upper case.
func (m *MessageSnapshot) SetMethod(method string) *MessageSnapshot {
	m.Method = strings.ToUpper(method)
	return m
}

// SetTargetURI stores the absolute target URI.
func (m *MessageSnapshot) SetTargetURI(u *url.URL) *MessageSnapshot {
	m.TargetURI = u
	return m
}

// SetStatus stores the response status code.
func (m *MessageSnapshot) SetStatus(status int) *MessageSnapshot {
	m.Status = &status
	return m
}

// AddHeader appends a canonicalized value under the lowercased name,
// preserving repetition order for multi-valued headers.
func (m *MessageSnapshot) AddHeader(name, value string) *MessageSnapshot {
	key := strings.ToLower(name)
	m.Headers[key] = append(m.Headers[key], canonicalizeFieldValue(value))
	return m
}

// AddTrailer appends a canonicalized value under the lowercased name.
func (m *MessageSnapshot) AddTrailer(name, value string) *MessageSnapshot {
	key := strings.ToLower(name)
	m.Trailers[key] = append(m.Trailers[key], canonicalizeFieldValue(value))
	return m
}

// SetRelatedRequest attaches the request snapshot a response was produced
// from, used to resolve `req`-flagged components.
func (m *MessageSnapshot) SetRelatedRequest(req *MessageSnapshot) *MessageSnapshot {
	m.RelatedRequest = req
	return m
}

// canonicalizeFieldValue implements the per-value field sanitization
// spec.md §4.1 requires before a field value is used in a signature base:
// split on line breaks, strip each line, drop empty lines, rejoin with a
// single space.
func canonicalizeFieldValue(v string) string {
	v = strings.ReplaceAll(v, "\r\n", "\n")
	lines := strings.Split(v, "\n")
	kept := lines[:0]
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if l != "" {
			kept = append(kept, l)
		}
	}
	return strings.Join(kept, " ")
}
