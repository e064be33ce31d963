package blog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateRequest() CreateBlogRequest {
	blogs := make(map[string]TranslationPayload, len(Languages))
	for _, lang := range Languages {
		blogs[string(lang)] = TranslationPayload{
			Title:   "Title " + string(lang),
			Date:    "12 January 2026",
			Content: ContentBlocks{TextBlock("body")},
		}
	}
	return CreateBlogRequest{
		Type:  "article",
		Blogs: blogs,
	}
}

func TestCreateBlogRequestValid(t *testing.T) {
	req := validCreateRequest()
	assert.NoError(t, req.Validate())
}

func TestCreateBlogRequestRequiresType(t *testing.T) {
	req := validCreateRequest()
	req.Type = ""
	assert.Error(t, req.Validate())

	req.Type = "podcast"
	assert.Error(t, req.Validate())
}

func TestCreateBlogRequestRequiresEveryLanguage(t *testing.T) {
	for _, lang := range Languages {
		req := validCreateRequest()
		delete(req.Blogs, string(lang))

		err := req.Validate()
		require.Error(t, err, "missing %s should fail", lang)
		assert.Contains(t, err.Error(), string(lang))
	}
}

func TestCreateBlogRequestRejectsEmptyTitleAndDate(t *testing.T) {
	req := validCreateRequest()
	entry := req.Blogs["en"]
	entry.Title = "   "
	req.Blogs["en"] = entry
	assert.Error(t, req.Validate())

	req = validCreateRequest()
	entry = req.Blogs["fr"]
	entry.Date = ""
	req.Blogs["fr"] = entry
	assert.Error(t, req.Validate())
}

func TestCreateBlogRequestRejectsUnknownLanguage(t *testing.T) {
	req := validCreateRequest()
	req.Blogs["de"] = TranslationPayload{Title: "t", Date: "d"}
	assert.Error(t, req.Validate())

	req = validCreateRequest()
	req.Images = map[string][]string{"de": {"x.png"}}
	assert.Error(t, req.Validate())
}

func TestCreateBlogRequestAllowsImages(t *testing.T) {
	req := validCreateRequest()
	req.Images = map[string][]string{
		"ru": {"a.png", "b.png"},
		"en": {},
	}
	assert.NoError(t, req.Validate())
}

func TestUpdateBlogRequestPartial(t *testing.T) {
	// Empty update is valid; nothing changes.
	assert.NoError(t, UpdateBlogRequest{}.Validate())

	// A single language is enough.
	req := UpdateBlogRequest{
		Blogs: map[string]TranslationPayload{
			"en": {Title: "New title", Date: "1 March 2026"},
		},
	}
	assert.NoError(t, req.Validate())
}

func TestUpdateBlogRequestRejectsBadPayload(t *testing.T) {
	bad := "podcast"
	assert.Error(t, UpdateBlogRequest{Type: &bad}.Validate())

	req := UpdateBlogRequest{
		Blogs: map[string]TranslationPayload{
			"en": {Title: "", Date: "1 March 2026"},
		},
	}
	assert.Error(t, req.Validate())

	req = UpdateBlogRequest{
		Blogs: map[string]TranslationPayload{
			"de": {Title: "t", Date: "d"},
		},
	}
	assert.Error(t, req.Validate())
}

func TestChromeForFallsBackToEnglish(t *testing.T) {
	assert.Equal(t, "Последние новости", ChromeFor(LanguageRU).LatestNews)
	assert.Equal(t, ChromeFor(LanguageEN), ChromeFor(Language("de")))
}
