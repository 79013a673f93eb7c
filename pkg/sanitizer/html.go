package sanitizer

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy  *bluemonday.Policy
	contentPolicy *bluemonday.Policy
	initOnce      sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		// StrictPolicy strips ALL HTML
		strictPolicy = bluemonday.StrictPolicy()

		// contentPolicy allows the subset goldmark emits for short articles
		contentPolicy = bluemonday.NewPolicy()
		contentPolicy.AllowStandardURLs()
		contentPolicy.AllowElements(
			"p", "br", "hr",
			"h2", "h3", "h4",
			"strong", "b", "em", "i",
			"ul", "ol", "li",
			"code", "pre", "blockquote",
		)
		contentPolicy.AllowAttrs("href").OnElements("a")
		contentPolicy.RequireNoFollowOnLinks(true)
	})
}

// SanitizeHTML keeps basic formatting (paragraphs, headings, emphasis, lists,
// code, links) and drops everything else, including scripts, event handlers
// and javascript: URLs.
func SanitizeHTML(s string) string {
	initPolicies()
	return contentPolicy.Sanitize(s)
}

// StripHTML removes all markup. The result is still HTML-escaped.
func StripHTML(s string) string {
	initPolicies()
	return strictPolicy.Sanitize(s)
}

// PlainText removes all markup, unescapes entities and collapses whitespace.
// The result is meant for attribute values, JSON and summaries; escape it
// again before writing it into HTML.
func PlainText(s string) string {
	return strings.Join(strings.Fields(html.UnescapeString(StripHTML(s))), " ")
}

// SanitizeHTMLCustom applies a custom bluemonday policy.
// Returns input unchanged if policy is nil.
func SanitizeHTMLCustom(s string, policy *bluemonday.Policy) string {
	if policy == nil {
		return s
	}
	return policy.Sanitize(s)
}
