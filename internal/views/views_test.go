package views_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/edgesaved/internal/views"
	"github.com/dmitrymomot/edgesaved/pkg/catalog"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, c.Render(context.Background(), &sb))
	return sb.String()
}

func TestLayout(t *testing.T) {
	t.Parallel()

	out := render(t, views.Layout("Saved", templ.Raw("<p>body</p>")))
	require.Contains(t, out, "<title>Saved | Edge Saved</title>")
	require.Contains(t, out, "<h1>Edge Saved</h1>")
	require.Contains(t, out, `<a href="/">Home</a>`)
	require.Contains(t, out, `<a href="/saved">Saved</a>`)
	require.Contains(t, out, "<main><p>body</p></main>")
	require.Contains(t, out, `href="/static/app.css"`)

	require.Contains(t, render(t, views.Layout("", templ.NopComponent)), "<title>Edge Saved</title>")
}

func TestLayoutPropagatesBodyError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	body := templ.ComponentFunc(func(context.Context, io.Writer) error { return boom })
	err := views.Layout("x", body).Render(context.Background(), io.Discard)
	require.ErrorIs(t, err, boom)
}

func TestIndex(t *testing.T) {
	t.Parallel()

	data := views.IndexData{
		Items: []views.IndexItem{
			{Article: catalog.Article{ID: "a1", Title: "First", HTML: "<p>one</p>"}, Saved: true},
			{Article: catalog.Article{ID: "a2", Title: "<Second>", Description: "two & more"}},
		},
		Count: 1,
	}

	out := render(t, views.Index(data))
	require.Contains(t, out, "<strong>Bookmarked:</strong> 1 articles")
	require.NotContains(t, out, "invalid cookie")
	require.Contains(t, out, `<a href="/saved">View saved</a>`)
	require.Contains(t, out, "<h3>First</h3><p>one</p>")
	require.Contains(t, out, "<h3>&lt;Second&gt;</h3><p>two &amp; more</p>")
	require.Contains(t, out, `<li class="article" id="article-a1">`)
	require.Contains(t, out, `name="articleId" value="a1"`)
	require.Contains(t, out, `name="returnTo" value="/"`)
	require.Equal(t, 1, strings.Count(out, ">Unbookmark</button>"))
	require.Equal(t, 1, strings.Count(out, ">Bookmark</button>"))

	data.CookieInvalid = true
	require.Contains(t, render(t, views.Index(data)), "(invalid cookie → treated as empty)")
}

func TestSaved(t *testing.T) {
	t.Parallel()

	t.Run("lists articles", func(t *testing.T) {
		t.Parallel()

		out := render(t, views.Saved(views.SavedData{
			Articles: []catalog.Article{{ID: "a3", Title: "Third", Description: "three"}},
		}))
		require.Contains(t, out, "<h2>Saved Articles</h2>")
		require.Contains(t, out, "<h3>Third</h3>")
		require.Contains(t, out, `name="returnTo" value="/saved"`)
		require.Contains(t, out, ">Unbookmark</button>")
		require.Contains(t, out, "← Back to article list")
	})

	t.Run("empty state", func(t *testing.T) {
		t.Parallel()

		out := render(t, views.Saved(views.SavedData{}))
		require.Contains(t, out, "No bookmarked articles yet.")
		require.NotContains(t, out, "(invalid cookie)")
		require.NotContains(t, out, "Saved Articles")

		out = render(t, views.Saved(views.SavedData{CookieInvalid: true}))
		require.Contains(t, out, "(invalid cookie)")
	})
}

func TestErrorPage(t *testing.T) {
	t.Parallel()

	out := render(t, views.ErrorPage(400, "Invalid <articleId>."))
	require.Contains(t, out, "<h2>Error 400</h2>")
	require.Contains(t, out, "Invalid &lt;articleId&gt;.")
	require.Contains(t, out, `<a href="/">Back to Home</a>`)
}

func TestAttributesAreEscaped(t *testing.T) {
	t.Parallel()

	out := render(t, views.Index(views.IndexData{
		Items: []views.IndexItem{{Article: catalog.Article{ID: `a"><script>`, Title: "t"}}},
	}))
	require.NotContains(t, out, "<script>")
	require.Contains(t, out, `id="article-a&#34;&gt;&lt;script&gt;"`)
	require.Contains(t, out, `value="a&#34;&gt;&lt;script&gt;"`)
}
