package database

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// migrations are idempotent and run in order at startup.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS blogs (
		id SERIAL PRIMARY KEY,
		type VARCHAR(50) NOT NULL CHECK (type IN ('interview', 'article', 'fact')),
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,

	`CREATE TABLE IF NOT EXISTS blog_translations (
		id SERIAL PRIMARY KEY,
		blog_id INTEGER NOT NULL REFERENCES blogs(id) ON DELETE CASCADE,
		language VARCHAR(10) NOT NULL CHECK (language IN ('ru', 'en', 'es', 'fr')),
		title TEXT NOT NULL,
		date VARCHAR(50) NOT NULL,
		source TEXT,
		content JSONB NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(blog_id, language)
	)`,

	`CREATE TABLE IF NOT EXISTS blog_images (
		id SERIAL PRIMARY KEY,
		blog_id INTEGER NOT NULL REFERENCES blogs(id) ON DELETE CASCADE,
		language VARCHAR(10) NOT NULL CHECK (language IN ('ru', 'en', 'es', 'fr')),
		image_url TEXT NOT NULL,
		image_order INTEGER NOT NULL,
		is_array BOOLEAN DEFAULT FALSE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(blog_id, language, image_order)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_blog_translations_blog_id ON blog_translations(blog_id)`,
	`CREATE INDEX IF NOT EXISTS idx_blog_translations_language ON blog_translations(language)`,
	`CREATE INDEX IF NOT EXISTS idx_blog_images_blog_id ON blog_images(blog_id)`,
	`CREATE INDEX IF NOT EXISTS idx_blogs_type ON blogs(type)`,

	`CREATE OR REPLACE FUNCTION update_updated_at_column()
	RETURNS TRIGGER AS $$
	BEGIN
		NEW.updated_at = CURRENT_TIMESTAMP;
		RETURN NEW;
	END;
	$$ language 'plpgsql'`,

	`DROP TRIGGER IF EXISTS update_blogs_updated_at ON blogs;
	CREATE TRIGGER update_blogs_updated_at
	BEFORE UPDATE ON blogs
	FOR EACH ROW EXECUTE FUNCTION update_updated_at_column()`,

	`DROP TRIGGER IF EXISTS update_blog_translations_updated_at ON blog_translations;
	CREATE TRIGGER update_blog_translations_updated_at
	BEFORE UPDATE ON blog_translations
	FOR EACH ROW EXECUTE FUNCTION update_updated_at_column()`,
}

// Migrate applies the schema. Safe to run on every startup.
func (db *PostgresDB) Migrate(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	for i, stmt := range migrations {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	log.Info().Int("statements", len(migrations)).Msg("Database schema up to date")
	return nil
}
