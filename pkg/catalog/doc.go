// Package catalog loads the read-only article list from markdown files.
//
// Every article is a *.md file with YAML frontmatter:
//
//	---
//	id: a1
//	title: Edge SSR Basics
//	order: 1
//	---
//	How SSR works at the edge and why it matters.
//
// The body is rendered with goldmark and sanitized; its plain text becomes the
// article description. Articles are ordered by the order field, then by id.
//
//	c, err := catalog.Load(os.DirFS("content"), "articles")
//	saved := c.Filter(bookmarks.Has)
package catalog
