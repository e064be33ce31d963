package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"texarea-backend/internal/domains/blog"
	"texarea-backend/pkg/cache"
	"texarea-backend/pkg/database"
)

// postgresRepository implements blog.Repository on pgxpool with a
// Redis cache in front of the public reads.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) blog.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

// Cache key constants
const (
	publicBlogKeyPrefix = "blog:public:"
	publicListKeyPrefix = "blogs:public:"
	cacheTTL            = 15 * time.Minute
)

// Create inserts the blog row, every translation and the optional
// image lists in one transaction.
func (r *postgresRepository) Create(ctx context.Context, blogType blog.BlogType, translations map[blog.Language]blog.Translation, images map[blog.Language][]string) (int64, error) {
	id, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (int64, error) {
		var blogID int64
		err := tx.QueryRow(ctx, `INSERT INTO blogs (type) VALUES ($1) RETURNING id`, blogType).Scan(&blogID)
		if err != nil {
			return 0, fmt.Errorf("failed to create blog: %w", err)
		}

		// Fixed language order keeps inserts deterministic.
		for _, lang := range blog.Languages {
			tr, ok := translations[lang]
			if !ok {
				continue
			}
			if err := insertTranslation(ctx, tx, blogID, lang, tr); err != nil {
				return 0, err
			}
		}

		if err := insertImages(ctx, tx, blogID, images); err != nil {
			return 0, err
		}

		return blogID, nil
	})
	if err != nil {
		return 0, translatePgError(err)
	}

	r.invalidateListCache(ctx)
	return id, nil
}

// Update applies a partial mutation in one transaction. Present
// translations are upserted; a non-nil image map wipes and rewrites
// every stored image row for the blog.
func (r *postgresRepository) Update(ctx context.Context, id int64, update blog.Update) error {
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM blogs WHERE id = $1)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check blog existence: %w", err)
		}
		if !exists {
			return blog.ErrBlogNotFound
		}

		if update.Type != nil {
			if _, err := tx.Exec(ctx, `UPDATE blogs SET type = $1 WHERE id = $2`, *update.Type, id); err != nil {
				return fmt.Errorf("failed to update blog type: %w", err)
			}
		}

		for _, lang := range blog.Languages {
			tr, ok := update.Translations[lang]
			if !ok {
				continue
			}
			if err := upsertTranslation(ctx, tx, id, lang, tr); err != nil {
				return err
			}
		}

		if update.Images != nil {
			if _, err := tx.Exec(ctx, `DELETE FROM blog_images WHERE blog_id = $1`, id); err != nil {
				return fmt.Errorf("failed to clear blog images: %w", err)
			}
			if err := insertImages(ctx, tx, id, update.Images); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return translatePgError(err)
	}

	r.invalidateBlogCache(ctx, id)
	r.invalidateListCache(ctx)
	return nil
}

// Delete removes the blog; translations and images go with it via
// ON DELETE CASCADE.
func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete blog: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return blog.ErrBlogNotFound
	}

	r.invalidateBlogCache(ctx, id)
	r.invalidateListCache(ctx)
	return nil
}

// GetAllForAdmin aggregates every translation per blog into a JSON
// object keyed by language, newest blogs first.
func (r *postgresRepository) GetAllForAdmin(ctx context.Context) ([]blog.AdminBlog, error) {
	query := `
        SELECT
            b.id,
            b.type,
            b.created_at,
            b.updated_at,
            COALESCE(
                json_object_agg(
                    bt.language,
                    json_build_object(
                        'title', bt.title,
                        'date', bt.date,
                        'source', bt.source,
                        'content', bt.content
                    )
                ) FILTER (WHERE bt.language IS NOT NULL),
                '{}'::json
            ) AS translations
        FROM blogs b
        LEFT JOIN blog_translations bt ON bt.blog_id = b.id
        GROUP BY b.id
        ORDER BY b.id DESC
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query admin blogs: %w", err)
	}
	defer rows.Close()

	blogs := []blog.AdminBlog{}
	for rows.Next() {
		var (
			item    blog.AdminBlog
			rawJSON []byte
		)
		if err := rows.Scan(&item.ID, &item.Type, &item.CreatedAt, &item.UpdatedAt, &rawJSON); err != nil {
			return nil, fmt.Errorf("failed to scan admin blog: %w", err)
		}
		if err := json.Unmarshal(rawJSON, &item.Translations); err != nil {
			return nil, fmt.Errorf("failed to decode translations for blog %d: %w", item.ID, err)
		}
		blogs = append(blogs, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating admin blogs: %w", err)
	}

	return blogs, nil
}

// ListByLanguage returns the public projection for one language.
// The LEFT JOIN keeps blogs without that translation in the list
// with null text fields.
func (r *postgresRepository) ListByLanguage(ctx context.Context, lang blog.Language) ([]blog.PublicBlog, error) {
	cacheKey := publicListKeyPrefix + string(lang)

	var cachedList []blog.PublicBlog
	if cached, err := r.cache.Get(ctx, cacheKey, &cachedList); err == nil && cached {
		return cachedList, nil
	}

	query := `
        SELECT b.id, b.type, bt.title, bt.date, bt.source, bt.content, b.created_at, b.updated_at
        FROM blogs b
        LEFT JOIN blog_translations bt ON bt.blog_id = b.id AND bt.language = $1
        ORDER BY b.id DESC
    `

	rows, err := r.pool.Query(ctx, query, lang)
	if err != nil {
		return nil, fmt.Errorf("failed to query public blogs: %w", err)
	}
	defer rows.Close()

	blogs := []blog.PublicBlog{}
	for rows.Next() {
		item, err := scanPublicBlog(rows)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating public blogs: %w", err)
	}

	imagesByBlog, err := r.loadImagesForLanguage(ctx, lang)
	if err != nil {
		return nil, err
	}
	for i := range blogs {
		if urls, ok := imagesByBlog[blogs[i].ID]; ok {
			blogs[i].Images = urls
		}
	}

	r.cache.Set(ctx, cacheKey, blogs, cacheTTL)

	return blogs, nil
}

// GetByID returns one blog's public projection for a language, cached.
func (r *postgresRepository) GetByID(ctx context.Context, lang blog.Language, id int64) (*blog.PublicBlog, error) {
	cacheKey := fmt.Sprintf("%s%s:%d", publicBlogKeyPrefix, lang, id)

	var cachedBlog blog.PublicBlog
	if cached, err := r.cache.Get(ctx, cacheKey, &cachedBlog); err == nil && cached {
		return &cachedBlog, nil
	}

	query := `
        SELECT b.id, b.type, bt.title, bt.date, bt.source, bt.content, b.created_at, b.updated_at
        FROM blogs b
        LEFT JOIN blog_translations bt ON bt.blog_id = b.id AND bt.language = $1
        WHERE b.id = $2
    `

	row := r.pool.QueryRow(ctx, query, lang, id)
	item, err := scanPublicBlog(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, blog.ErrBlogNotFound
		}
		return nil, err
	}

	urls, err := r.loadImages(ctx, id, lang)
	if err != nil {
		return nil, err
	}
	item.Images = urls

	r.cache.Set(ctx, cacheKey, item, cacheTTL)

	return item, nil
}

// rowScanner covers both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPublicBlog(row rowScanner) (*blog.PublicBlog, error) {
	var (
		item       blog.PublicBlog
		contentRaw []byte
	)
	if err := row.Scan(&item.ID, &item.Type, &item.Title, &item.Date, &item.Source, &contentRaw, &item.CreatedAt, &item.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, fmt.Errorf("failed to scan public blog: %w", err)
	}
	if contentRaw != nil {
		if err := json.Unmarshal(contentRaw, &item.Content); err != nil {
			return nil, fmt.Errorf("failed to decode content for blog %d: %w", item.ID, err)
		}
	}
	item.Images = []string{}
	return &item, nil
}

func (r *postgresRepository) loadImages(ctx context.Context, blogID int64, lang blog.Language) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT image_url FROM blog_images WHERE blog_id = $1 AND language = $2 ORDER BY image_order`,
		blogID, lang)
	if err != nil {
		return nil, fmt.Errorf("failed to query blog images: %w", err)
	}
	defer rows.Close()

	urls := []string{}
	for rows.Next() {
		var url string
		if err := rows.Scan(&url); err != nil {
			return nil, fmt.Errorf("failed to scan blog image: %w", err)
		}
		urls = append(urls, url)
	}
	return urls, rows.Err()
}

func (r *postgresRepository) loadImagesForLanguage(ctx context.Context, lang blog.Language) (map[int64][]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT blog_id, image_url FROM blog_images WHERE language = $1 ORDER BY blog_id, image_order`,
		lang)
	if err != nil {
		return nil, fmt.Errorf("failed to query blog images: %w", err)
	}
	defer rows.Close()

	byBlog := map[int64][]string{}
	for rows.Next() {
		var (
			blogID int64
			url    string
		)
		if err := rows.Scan(&blogID, &url); err != nil {
			return nil, fmt.Errorf("failed to scan blog image: %w", err)
		}
		byBlog[blogID] = append(byBlog[blogID], url)
	}
	return byBlog, rows.Err()
}

func insertTranslation(ctx context.Context, tx pgx.Tx, blogID int64, lang blog.Language, tr blog.Translation) error {
	content, err := marshalContent(tr.Content)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `
        INSERT INTO blog_translations (blog_id, language, title, date, source, content)
        VALUES ($1, $2, $3, $4, $5, $6)
    `, blogID, lang, tr.Title, tr.Date, tr.Source, content)
	if err != nil {
		return fmt.Errorf("failed to insert %s translation: %w", lang, err)
	}
	return nil
}

func upsertTranslation(ctx context.Context, tx pgx.Tx, blogID int64, lang blog.Language, tr blog.Translation) error {
	content, err := marshalContent(tr.Content)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `
        INSERT INTO blog_translations (blog_id, language, title, date, source, content)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (blog_id, language)
        DO UPDATE SET
            title = EXCLUDED.title,
            date = EXCLUDED.date,
            source = EXCLUDED.source,
            content = EXCLUDED.content,
            updated_at = CURRENT_TIMESTAMP
    `, blogID, lang, tr.Title, tr.Date, tr.Source, content)
	if err != nil {
		return fmt.Errorf("failed to upsert %s translation: %w", lang, err)
	}
	return nil
}

func insertImages(ctx context.Context, tx pgx.Tx, blogID int64, images map[blog.Language][]string) error {
	for _, lang := range blog.Languages {
		urls, ok := images[lang]
		if !ok {
			continue
		}
		// image_order is the position in the submitted list.
		for i, url := range urls {
			_, err := tx.Exec(ctx, `
                INSERT INTO blog_images (blog_id, language, image_url, image_order, is_array)
                VALUES ($1, $2, $3, $4, false)
            `, blogID, lang, url, i)
			if err != nil {
				return fmt.Errorf("failed to insert %s image %d: %w", lang, i, err)
			}
		}
	}
	return nil
}

func marshalContent(blocks blog.ContentBlocks) ([]byte, error) {
	if blocks == nil {
		blocks = blog.ContentBlocks{}
	}
	data, err := json.Marshal(blocks)
	if err != nil {
		return nil, fmt.Errorf("failed to encode content: %w", err)
	}
	return data, nil
}

// translatePgError maps constraint violations onto domain errors.
func translatePgError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "blog_translations_blog_id_language_key":
			return blog.ErrTranslationExists
		case "blog_images_blog_id_language_image_order_key":
			return blog.ErrImageOrderConflict
		}
	}
	return err
}

// Cache helper methods

func (r *postgresRepository) invalidateBlogCache(ctx context.Context, id int64) {
	for _, lang := range blog.Languages {
		r.cache.Delete(ctx, fmt.Sprintf("%s%s:%d", publicBlogKeyPrefix, lang, id))
	}
}

func (r *postgresRepository) invalidateListCache(ctx context.Context) {
	r.cache.DeletePattern(ctx, publicListKeyPrefix+"*")
}
