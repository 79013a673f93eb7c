package views

import "github.com/dmitrymomot/edgesaved/pkg/catalog"

// Title is the site name shown in the header and the document title.
const Title = "Edge Saved"

// IndexItem is an article on the index page with its saved state.
type IndexItem struct {
	Article catalog.Article
	Saved   bool
}

// IndexData is the view model of the article list.
type IndexData struct {
	Items         []IndexItem
	Count         int
	CookieInvalid bool
}

// SavedData is the view model of the saved articles page.
type SavedData struct {
	Articles      []catalog.Article
	CookieInvalid bool
}

func pageTitle(title string) string {
	if title == "" || title == Title {
		return Title
	}
	return title + " | " + Title
}

func toggleLabel(saved bool) string {
	if saved {
		return "Unbookmark"
	}
	return "Bookmark"
}
