package catalog

import (
	"bytes"
	"cmp"
	"context"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/dmitrymomot/edgesaved/pkg/sanitizer"
)

// Article is a single catalogue entry.
type Article struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	// HTML is the sanitized rendering of the markdown body.
	HTML  string `json:"-"`
	Order int    `json:"-"`
}

// Catalog is an immutable, ordered set of articles.
// It is safe for concurrent use.
type Catalog struct {
	articles []Article
	index    map[string]int
}

// New builds a catalogue from articles, sorted by Order then ID.
// Returns an error for a missing id or title, a duplicate id, or no articles.
func New(articles ...Article) (*Catalog, error) {
	if len(articles) == 0 {
		return nil, ErrEmpty
	}

	sorted := slices.Clone(articles)
	slices.SortStableFunc(sorted, func(a, b Article) int {
		return cmp.Or(cmp.Compare(a.Order, b.Order), cmp.Compare(a.ID, b.ID))
	})

	index := make(map[string]int, len(sorted))
	for i, a := range sorted {
		if a.ID == "" {
			return nil, ErrMissingID
		}
		if a.Title == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingTitle, a.ID)
		}
		if _, ok := index[a.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, a.ID)
		}
		index[a.ID] = i
	}

	return &Catalog{articles: sorted, index: index}, nil
}

// Load reads every *.md file in dir of fsys.
// Each file carries YAML frontmatter (id, title, order) and a markdown body
// whose plain text becomes the description.
func Load(fsys fs.FS, dir string) (*Catalog, error) {
	if dir == "" {
		dir = "."
	}

	files, err := fs.Glob(fsys, path.Join(dir, "*.md"))
	if err != nil {
		return nil, fmt.Errorf("catalog: list %s: %w", dir, err)
	}

	md := goldmark.New()
	articles := make([]Article, 0, len(files))
	for _, name := range files {
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("catalog: read %s: %w", name, err)
		}

		a, err := parseArticle(md, content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		articles = append(articles, a)
	}

	return New(articles...)
}

func parseArticle(md goldmark.Markdown, content []byte) (Article, error) {
	meta, body, err := parseFile(content)
	if err != nil {
		return Article{}, err
	}

	var buf bytes.Buffer
	if err := md.Convert(body, &buf); err != nil {
		return Article{}, fmt.Errorf("catalog: render markdown: %w", err)
	}

	html := strings.TrimSpace(sanitizer.SanitizeHTML(buf.String()))

	return Article{
		ID:          strings.TrimSpace(meta.ID),
		Title:       strings.TrimSpace(meta.Title),
		Description: sanitizer.PlainText(html),
		HTML:        html,
		Order:       meta.Order,
	}, nil
}

// All returns the articles in catalogue order.
// The returned slice is a copy.
func (c *Catalog) All() []Article {
	return slices.Clone(c.articles)
}

// Get returns the article with the given id.
func (c *Catalog) Get(id string) (Article, bool) {
	i, ok := c.index[id]
	if !ok {
		return Article{}, false
	}
	return c.articles[i], true
}

// Has reports whether id names an article.
func (c *Catalog) Has(id string) bool {
	_, ok := c.index[id]
	return ok
}

// Filter returns the articles whose id satisfies keep, in catalogue order.
func (c *Catalog) Filter(keep func(id string) bool) []Article {
	out := make([]Article, 0, len(c.articles))
	for _, a := range c.articles {
		if keep(a.ID) {
			out = append(out, a)
		}
	}
	return out
}

// Len returns the number of articles.
func (c *Catalog) Len() int {
	return len(c.articles)
}

// Healthcheck returns a readiness check reporting an empty catalogue.
func (c *Catalog) Healthcheck() func(context.Context) error {
	return func(context.Context) error {
		if c == nil || len(c.articles) == 0 {
			return ErrEmpty
		}
		return nil
	}
}
