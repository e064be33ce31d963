package blog

import (
	"time"
)

// Language is one of the fixed set of supported content languages.
type Language string

const (
	LanguageRU Language = "ru"
	LanguageEN Language = "en"
	LanguageES Language = "es"
	LanguageFR Language = "fr"
)

// Languages is the fixed language set, in the order translations are written.
var Languages = []Language{LanguageRU, LanguageEN, LanguageES, LanguageFR}

func IsValidLanguage(lang string) bool {
	for _, l := range Languages {
		if string(l) == lang {
			return true
		}
	}
	return false
}

// BlogType categorizes a post.
type BlogType string

const (
	TypeInterview BlogType = "interview"
	TypeArticle   BlogType = "article"
	TypeFact      BlogType = "fact"
)

func IsValidType(t string) bool {
	switch BlogType(t) {
	case TypeInterview, TypeArticle, TypeFact:
		return true
	}
	return false
}

// Translation is the language-specific payload of a blog post.
// Date is a display-formatted string; the store treats it as opaque text.
type Translation struct {
	Title   string        `json:"title"`
	Date    string        `json:"date"`
	Source  *string       `json:"source"`
	Content ContentBlocks `json:"content"`
}

// AdminBlog is the admin projection: the root entity with every
// language's translation aggregated into one map. Languages without a
// translation row are absent from the map.
type AdminBlog struct {
	ID           int64                    `json:"id"`
	Type         BlogType                 `json:"type"`
	CreatedAt    time.Time                `json:"created_at"`
	UpdatedAt    time.Time                `json:"updated_at"`
	Translations map[Language]Translation `json:"translations"`
}

// PublicBlog is the single-language projection served to readers.
// A missing translation leaves the text fields null; that is not an error.
type PublicBlog struct {
	ID        int64         `json:"id"`
	Type      BlogType      `json:"type"`
	Title     *string       `json:"title"`
	Date      *string       `json:"date"`
	Source    *string       `json:"source"`
	Content   ContentBlocks `json:"content"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
	Images    []string      `json:"images"`
}

// Update describes a partial mutation of a blog aggregate.
// Nil fields are untouched. A non-nil Images map replaces the stored
// image lists for ALL languages (full-replace write pattern).
type Update struct {
	Type         *BlogType
	Translations map[Language]Translation
	Images       map[Language][]string
}
