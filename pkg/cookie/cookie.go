package cookie

import (
	"net/http"
	"strconv"
	"strings"
)

// Name is the default bookmark cookie name.
const Name = "edge_saved"

// DefaultMaxAge is the default cookie lifetime in seconds (30 days).
const DefaultMaxAge = 60 * 60 * 24 * 30

// CacheControlNoStore marks a response as per-user and not cacheable.
const CacheControlNoStore = "private, no-store"

// attributes are appended to every Set-Cookie directive in this order.
const attributes = "; Path=/; HttpOnly; Secure; SameSite=Lax; Max-Age="

// Manager reads and writes a single bookmark cookie.
// It holds no secrets; signing is the caller's concern.
type Manager struct {
	name   string
	maxAge int
}

// Option configures the Manager.
type Option func(*Manager)

// New creates a cookie Manager with the given options.
func New(opts ...Option) *Manager {
	m := &Manager{
		name:   Name,
		maxAge: DefaultMaxAge,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// WithName sets the cookie name. Empty names are ignored.
func WithName(name string) Option {
	return func(m *Manager) {
		if name != "" {
			m.name = name
		}
	}
}

// WithMaxAge sets the cookie lifetime in seconds. Non-positive values are ignored.
func WithMaxAge(seconds int) Option {
	return func(m *Manager) {
		if seconds > 0 {
			m.maxAge = seconds
		}
	}
}

var defaultManager = New()

// Extract returns the raw bookmark token from a Cookie header value.
// See [Manager.Extract].
func Extract(header string) (string, bool) {
	return defaultManager.Extract(header)
}

// FormatSet builds the Set-Cookie value storing token for DefaultMaxAge seconds.
func FormatSet(token string) string {
	return defaultManager.FormatSet(token)
}

// FormatSetMaxAge builds the Set-Cookie value storing token for maxAge seconds.
func FormatSetMaxAge(token string, maxAge int) string {
	return format(Name, token, maxAge)
}

// FormatClear builds the Set-Cookie value that deletes the bookmark cookie.
func FormatClear() string {
	return defaultManager.FormatClear()
}

// NoStore sets the private, no-store cache directive on h.
func NoStore(h http.Header) {
	h.Set("Cache-Control", CacheControlNoStore)
}

// Name returns the cookie name.
func (m *Manager) Name() string {
	return m.name
}

// MaxAge returns the cookie lifetime in seconds.
func (m *Manager) MaxAge() int {
	return m.maxAge
}

// Extract returns the raw value of the managed cookie from a Cookie header.
// Pairs are split on ";" and trimmed; pairs without "=" are skipped.
// When the name appears more than once the last value wins.
// Values are returned as-is, without unquoting or unescaping.
func (m *Manager) Extract(header string) (string, bool) {
	var (
		value string
		found bool
	)
	for part := range strings.SplitSeq(header, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		k, v, ok := strings.Cut(part, "=")
		if !ok || k != m.name {
			continue
		}
		value, found = v, true
	}
	return value, found
}

// FormatSet builds the Set-Cookie value storing token.
func (m *Manager) FormatSet(token string) string {
	return format(m.name, token, m.maxAge)
}

// FormatClear builds the Set-Cookie value that deletes the cookie.
func (m *Manager) FormatClear() string {
	return format(m.name, "", 0)
}

// Get returns the raw cookie value from the request.
// Multiple Cookie headers are treated as one list.
func (m *Manager) Get(r *http.Request) (string, bool) {
	return m.Extract(strings.Join(r.Header.Values("Cookie"), "; "))
}

// Set appends a Set-Cookie header storing token.
// Existing Set-Cookie headers are kept.
func (m *Manager) Set(w http.ResponseWriter, token string) {
	w.Header().Add("Set-Cookie", m.FormatSet(token))
}

// Clear appends a Set-Cookie header deleting the cookie.
func (m *Manager) Clear(w http.ResponseWriter) {
	w.Header().Add("Set-Cookie", m.FormatClear())
}

func format(name, value string, maxAge int) string {
	return name + "=" + value + attributes + strconv.Itoa(maxAge)
}
