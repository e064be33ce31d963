package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"texarea-backend/internal/domains/blog"
)

// mockRepository records calls and returns canned results.
type mockRepository struct {
	createType         blog.BlogType
	createTranslations map[blog.Language]blog.Translation
	createImages       map[blog.Language][]string
	createCalled       bool

	updateID     int64
	updateArg    blog.Update
	updateCalled bool

	deleteID int64

	listLang  blog.Language
	listBlogs []blog.PublicBlog

	getLang blog.Language
	getID   int64
	getBlog *blog.PublicBlog

	err error
}

func (m *mockRepository) Create(_ context.Context, blogType blog.BlogType, translations map[blog.Language]blog.Translation, images map[blog.Language][]string) (int64, error) {
	m.createCalled = true
	m.createType = blogType
	m.createTranslations = translations
	m.createImages = images
	return 42, m.err
}

func (m *mockRepository) Update(_ context.Context, id int64, update blog.Update) error {
	m.updateCalled = true
	m.updateID = id
	m.updateArg = update
	return m.err
}

func (m *mockRepository) Delete(_ context.Context, id int64) error {
	m.deleteID = id
	return m.err
}

func (m *mockRepository) GetAllForAdmin(_ context.Context) ([]blog.AdminBlog, error) {
	return []blog.AdminBlog{}, m.err
}

func (m *mockRepository) ListByLanguage(_ context.Context, lang blog.Language) ([]blog.PublicBlog, error) {
	m.listLang = lang
	return m.listBlogs, m.err
}

func (m *mockRepository) GetByID(_ context.Context, lang blog.Language, id int64) (*blog.PublicBlog, error) {
	m.getLang = lang
	m.getID = id
	return m.getBlog, m.err
}

func validCreateRequest() *blog.CreateBlogRequest {
	blogs := make(map[string]blog.TranslationPayload, len(blog.Languages))
	for _, lang := range blog.Languages {
		blogs[string(lang)] = blog.TranslationPayload{
			Title:   "Title " + string(lang),
			Date:    "12 January 2026",
			Content: blog.ContentBlocks{blog.TextBlock("body")},
		}
	}
	return &blog.CreateBlogRequest{
		Type:  "interview",
		Blogs: blogs,
		Images: map[string][]string{
			"ru": {"a.png", "b.png"},
		},
	}
}

func TestCreatePassesAggregateToRepository(t *testing.T) {
	repo := &mockRepository{}
	svc := NewBlogService(repo)

	resp, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.BlogID)

	assert.Equal(t, blog.TypeInterview, repo.createType)
	assert.Len(t, repo.createTranslations, 4)
	assert.Equal(t, "Title en", repo.createTranslations[blog.LanguageEN].Title)
	assert.Equal(t, []string{"a.png", "b.png"}, repo.createImages[blog.LanguageRU])
}

func TestCreateRejectsIncompleteRequest(t *testing.T) {
	repo := &mockRepository{}
	svc := NewBlogService(repo)

	req := validCreateRequest()
	delete(req.Blogs, "es")

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.False(t, repo.createCalled, "repository must not be reached on invalid input")
}

func TestUpdateMapsPartialFields(t *testing.T) {
	repo := &mockRepository{}
	svc := NewBlogService(repo)

	newType := "fact"
	req := &blog.UpdateBlogRequest{
		Type: &newType,
		Blogs: map[string]blog.TranslationPayload{
			"en": {Title: "Updated", Date: "1 March 2026"},
		},
	}

	require.NoError(t, svc.Update(context.Background(), 7, req))
	require.True(t, repo.updateCalled)
	assert.Equal(t, int64(7), repo.updateID)
	require.NotNil(t, repo.updateArg.Type)
	assert.Equal(t, blog.TypeFact, *repo.updateArg.Type)
	assert.Len(t, repo.updateArg.Translations, 1)
	assert.Nil(t, repo.updateArg.Images, "absent images must not touch stored lists")
}

func TestUpdateWithImagesReplaces(t *testing.T) {
	repo := &mockRepository{}
	svc := NewBlogService(repo)

	req := &blog.UpdateBlogRequest{
		Images: map[string][]string{"en": {"new.png"}},
	}

	require.NoError(t, svc.Update(context.Background(), 7, req))
	require.NotNil(t, repo.updateArg.Images)
	assert.Equal(t, []string{"new.png"}, repo.updateArg.Images[blog.LanguageEN])
}

func TestUpdateRejectsBadID(t *testing.T) {
	svc := NewBlogService(&mockRepository{})

	err := svc.Update(context.Background(), 0, &blog.UpdateBlogRequest{})
	assert.ErrorIs(t, err, blog.ErrInvalidBlogID)
}

func TestDeleteRejectsBadID(t *testing.T) {
	svc := NewBlogService(&mockRepository{})

	assert.ErrorIs(t, svc.Delete(context.Background(), -1), blog.ErrInvalidBlogID)
}

func TestGetPublicListValidatesLanguage(t *testing.T) {
	repo := &mockRepository{listBlogs: []blog.PublicBlog{{ID: 1}}}
	svc := NewBlogService(repo)

	_, err := svc.GetPublicList(context.Background(), "de")
	assert.ErrorIs(t, err, blog.ErrInvalidLanguage)

	list, err := svc.GetPublicList(context.Background(), "es")
	require.NoError(t, err)
	assert.Equal(t, blog.LanguageES, repo.listLang)
	assert.Len(t, list.Blogs, 1)
	assert.Equal(t, blog.ChromeFor(blog.LanguageES), list.Chrome)
}

func TestGetPublicByID(t *testing.T) {
	repo := &mockRepository{getBlog: &blog.PublicBlog{ID: 5}}
	svc := NewBlogService(repo)

	_, err := svc.GetPublicByID(context.Background(), "xx", 5)
	assert.ErrorIs(t, err, blog.ErrInvalidLanguage)

	_, err = svc.GetPublicByID(context.Background(), "ru", 0)
	assert.ErrorIs(t, err, blog.ErrInvalidBlogID)

	item, err := svc.GetPublicByID(context.Background(), "ru", 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), item.ID)
	assert.Equal(t, blog.LanguageRU, repo.getLang)
	assert.Equal(t, int64(5), repo.getID)
}
