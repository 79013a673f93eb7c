package handlers

import (
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/edgesaved/internal"
	"github.com/dmitrymomot/edgesaved/internal/views"
	"github.com/dmitrymomot/edgesaved/pkg/bookmark"
	"github.com/dmitrymomot/edgesaved/pkg/catalog"
)

// Messages returned to clients.
const (
	MsgMissingSecret = "Missing APP_SECRET in environment."
	MsgInvalidID     = "Invalid articleId."
)

// BookmarkHandler serves the article list, the saved list and the toggle action.
// Bookmark state lives only in the signed cookie.
type BookmarkHandler struct {
	catalog *catalog.Catalog
	codec   *bookmark.Codec
	secret  string
}

// NewBookmarkHandler creates a bookmark handler.
// An empty secret is accepted; every route then answers 500.
func NewBookmarkHandler(cat *catalog.Catalog, codec *bookmark.Codec, secret string) *BookmarkHandler {
	if codec == nil {
		codec = bookmark.New()
	}
	return &BookmarkHandler{catalog: cat, codec: codec, secret: secret}
}

// Routes declares the bookmark routes.
func (h *BookmarkHandler) Routes(r internal.Router) {
	r.GET("/", h.index)
	r.GET("/saved", h.saved)
	r.POST("/toggle", h.toggle)
}

// indexResponse is the JSON shape of the article list.
type indexResponse struct {
	BookmarkedIDs   []string `json:"bookmarkedIds"`
	BookmarkedCount int      `json:"bookmarkedCount"`
	CookieInvalid   bool     `json:"cookieInvalid"`
}

// savedResponse is the JSON shape of the saved list.
type savedResponse struct {
	Saved         []catalog.Article `json:"saved"`
	CookieInvalid bool              `json:"cookieInvalid"`
}

func (h *BookmarkHandler) index(c internal.Context) error {
	ids, invalid, err := h.read(c)
	if err != nil {
		return err
	}

	if c.WantsJSON() {
		return c.JSON(http.StatusOK, indexResponse{
			BookmarkedIDs:   ids.IDs(),
			BookmarkedCount: ids.Len(),
			CookieInvalid:   invalid,
		})
	}

	articles := h.catalog.All()
	items := make([]views.IndexItem, 0, len(articles))
	for _, a := range articles {
		items = append(items, views.IndexItem{Article: a, Saved: ids.Has(a.ID)})
	}

	return c.Render(http.StatusOK, views.Layout(views.Title, views.Index(views.IndexData{
		Items:         items,
		Count:         ids.Len(),
		CookieInvalid: invalid,
	})))
}

func (h *BookmarkHandler) saved(c internal.Context) error {
	ids, invalid, err := h.read(c)
	if err != nil {
		return err
	}

	saved := h.catalog.Filter(ids.Has)

	if c.WantsJSON() {
		return c.JSON(http.StatusOK, savedResponse{Saved: saved, CookieInvalid: invalid})
	}

	return c.Render(http.StatusOK, views.Layout("Saved Articles", views.Saved(views.SavedData{
		Articles:      saved,
		CookieInvalid: invalid,
	})))
}

func (h *BookmarkHandler) toggle(c internal.Context) error {
	if h.secret == "" {
		return c.Error(http.StatusInternalServerError, MsgMissingSecret)
	}

	articleID := c.Form("articleId")
	returnTo := SafeReturnTo(c.Form("returnTo"))
	if articleID == "" || !utf8.ValidString(articleID) {
		return c.Error(http.StatusBadRequest, MsgInvalidID)
	}

	ids, _, err := h.decode(c)
	if err != nil {
		return err
	}

	saved := ids.Toggle(articleID)
	c.NoStore()

	token, err := h.codec.Encode(ids.IDs(), h.secret)
	if err != nil {
		c.LogError("encode bookmark cookie", "error", err)
		c.DeleteCookie()
	} else {
		c.SetCookie(token)
	}

	c.LogDebug("bookmark toggled", "article_id", articleID, "saved", saved, "count", ids.Len())
	return c.Redirect(http.StatusFound, returnTo)
}

// read runs the read-path contract: decode the cookie, mark the response
// uncacheable and clear an invalid cookie.
func (h *BookmarkHandler) read(c internal.Context) (bookmark.Set, bool, error) {
	if h.secret == "" {
		return nil, false, c.Error(http.StatusInternalServerError, MsgMissingSecret)
	}

	ids, invalid, err := h.decode(c)
	if err != nil {
		return nil, false, err
	}

	c.NoStore()
	if invalid {
		c.DeleteCookie()
	}
	return ids, invalid, nil
}

// decode verifies the request cookie. An invalid cookie yields an empty set.
func (h *BookmarkHandler) decode(c internal.Context) (bookmark.Set, bool, error) {
	token, _ := c.Cookie()
	if token == "" {
		return bookmark.NewSet(), false, nil
	}

	p, err := h.codec.Verify(token, h.secret)
	switch {
	case errors.Is(err, bookmark.ErrNoSecret):
		return nil, false, c.Error(http.StatusInternalServerError, MsgMissingSecret, internal.WithError(err))
	case err != nil:
		c.LogWarn("invalid bookmark cookie", "reason", err)
		return bookmark.NewSet(), true, nil
	}
	return bookmark.NewSet(p.IDs...), false, nil
}

// SafeReturnTo returns path when it is a same-origin absolute path, and "/" otherwise.
// Browsers read "/\host" like "//host", so both prefixes are rejected.
func SafeReturnTo(path string) string {
	if strings.HasPrefix(path, "/") && !strings.HasPrefix(path, "//") && !strings.HasPrefix(path, "/\\") {
		return path
	}
	return "/"
}
