// Package handlers implements the web routes: the article list, the saved
// list, the bookmark toggle and the error pages.
//
// Reads never fail on a bad cookie. An unverifiable cookie is treated as an
// empty set, reported as cookieInvalid and cleared in the response.
package handlers
