package edgesaved

import "embed"

// Content holds the default article catalogue under content/articles.
//
//go:embed content/articles/*.md
var Content embed.FS

// Assets holds the stylesheet served under /static/.
//
//go:embed static
var Assets embed.FS

// Default locations inside the embedded filesystems.
const (
	ArticlesDir = "content/articles"
	AssetsDir   = "static"
)
