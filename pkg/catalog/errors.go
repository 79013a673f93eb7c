package catalog

import "errors"

var (
	// ErrInvalidFrontmatter indicates an article file with unreadable YAML frontmatter.
	ErrInvalidFrontmatter = errors.New("catalog: invalid frontmatter")

	// ErrMissingID indicates an article without an id.
	ErrMissingID = errors.New("catalog: article id required")

	// ErrMissingTitle indicates an article without a title.
	ErrMissingTitle = errors.New("catalog: article title required")

	// ErrDuplicateID indicates two articles sharing an id.
	ErrDuplicateID = errors.New("catalog: duplicate article id")

	// ErrEmpty indicates a catalogue without articles.
	ErrEmpty = errors.New("catalog: no articles")
)
