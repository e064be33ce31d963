package blog

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// TranslationPayload is the wire form of one language's content.
type TranslationPayload struct {
	Title   string        `json:"title"`
	Date    string        `json:"date"`
	Source  *string       `json:"source,omitempty"`
	Content ContentBlocks `json:"content"`
}

// CreateBlogRequest creates a blog with a translation for every
// supported language in a single call.
type CreateBlogRequest struct {
	Type   string                        `json:"type"`
	Blogs  map[string]TranslationPayload `json:"blogs"`
	Images map[string][]string           `json:"images,omitempty"`
}

func (r CreateBlogRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Type,
			validation.Required.Error("type is required"),
			validation.In("interview", "article", "fact").Error("type must be interview, article or fact"),
		),
		validation.Field(&r.Blogs,
			validation.Required.Error("blogs payload is required"),
			validation.By(requireAllLanguages),
		),
		validation.Field(&r.Images, validation.By(validImageLanguages)),
	)
}

// UpdateBlogRequest partially updates a blog. Only the languages
// present in Blogs are written; a non-nil Images map replaces the
// stored image lists for all languages.
type UpdateBlogRequest struct {
	Type   *string                       `json:"type,omitempty"`
	Blogs  map[string]TranslationPayload `json:"blogs,omitempty"`
	Images map[string][]string           `json:"images,omitempty"`
}

func (r UpdateBlogRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Type,
			validation.In("interview", "article", "fact").Error("type must be interview, article or fact"),
		),
		validation.Field(&r.Blogs, validation.By(validPresentLanguages)),
		validation.Field(&r.Images, validation.By(validImageLanguages)),
	)
}

func requireAllLanguages(value interface{}) error {
	payloads, _ := value.(map[string]TranslationPayload)
	if payloads == nil {
		return nil
	}
	for _, lang := range Languages {
		p, ok := payloads[string(lang)]
		if !ok {
			return fmt.Errorf("missing translation for language %s", lang)
		}
		if err := checkTranslation(lang, p); err != nil {
			return err
		}
	}
	for key := range payloads {
		if !IsValidLanguage(key) {
			return fmt.Errorf("unsupported language %q", key)
		}
	}
	return nil
}

func validPresentLanguages(value interface{}) error {
	payloads, _ := value.(map[string]TranslationPayload)
	for key, p := range payloads {
		if !IsValidLanguage(key) {
			return fmt.Errorf("unsupported language %q", key)
		}
		if err := checkTranslation(Language(key), p); err != nil {
			return err
		}
	}
	return nil
}

func validImageLanguages(value interface{}) error {
	images, _ := value.(map[string][]string)
	for key := range images {
		if !IsValidLanguage(key) {
			return fmt.Errorf("unsupported image language %q", key)
		}
	}
	return nil
}

func checkTranslation(lang Language, p TranslationPayload) error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("title is required for language %s", lang)
	}
	if strings.TrimSpace(p.Date) == "" {
		return fmt.Errorf("date is required for language %s", lang)
	}
	return nil
}

// CreateBlogResponse returns the id of the new aggregate.
type CreateBlogResponse struct {
	BlogID int64 `json:"blogId"`
}

// PublicListResponse wraps a language's post list together with the
// localized page chrome the front-end renders around it.
type PublicListResponse struct {
	Chrome PageChrome   `json:"page"`
	Blogs  []PublicBlog `json:"blogs"`
}
