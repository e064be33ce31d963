package blog

import (
	"context"
)

// Repository persists blog aggregates.
type Repository interface {
	// Create inserts the root entity, one translation per language and
	// the optional image lists in a single transaction, returning the
	// new blog id.
	Create(ctx context.Context, blogType BlogType, translations map[Language]Translation, images map[Language][]string) (int64, error)

	// Update applies a partial mutation. Translations present in the
	// update are upserted; a non-nil image map replaces every stored
	// image list. Returns ErrBlogNotFound for an unknown id.
	Update(ctx context.Context, id int64, update Update) error

	// Delete removes the aggregate and everything hanging off it.
	Delete(ctx context.Context, id int64) error

	// GetAllForAdmin returns every blog with all translations
	// aggregated, newest first.
	GetAllForAdmin(ctx context.Context) ([]AdminBlog, error)

	// ListByLanguage returns the public projection for one language,
	// newest first. Blogs without that translation still appear with
	// null text fields.
	ListByLanguage(ctx context.Context, lang Language) ([]PublicBlog, error)

	// GetByID returns one blog's public projection for a language.
	GetByID(ctx context.Context, lang Language, id int64) (*PublicBlog, error)
}
