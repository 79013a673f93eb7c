// Package views renders the HTML pages as templ components.
// Every dynamic value is escaped except article bodies, which the catalogue
// has already sanitized.
package views
