package service

import (
	"context"
	"fmt"

	"texarea-backend/internal/domains/blog"
	"texarea-backend/pkg/logger"
)

// blogService implements blog.Service on top of the repository.
type blogService struct {
	repo blog.Repository
}

func NewBlogService(repo blog.Repository) blog.Service {
	return &blogService{
		repo: repo,
	}
}

func (s *blogService) Create(ctx context.Context, req *blog.CreateBlogRequest) (*blog.CreateBlogResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	translations, err := toTranslations(req.Blogs)
	if err != nil {
		return nil, err
	}
	images, err := toImages(req.Images)
	if err != nil {
		return nil, err
	}

	id, err := s.repo.Create(ctx, blog.BlogType(req.Type), translations, images)
	if err != nil {
		return nil, fmt.Errorf("failed to create blog: %w", err)
	}

	logger.Info("Blog created", map[string]interface{}{
		"blog_id": id,
		"type":    req.Type,
	})

	return &blog.CreateBlogResponse{BlogID: id}, nil
}

func (s *blogService) Update(ctx context.Context, id int64, req *blog.UpdateBlogRequest) error {
	if id <= 0 {
		return blog.ErrInvalidBlogID
	}
	if err := req.Validate(); err != nil {
		return err
	}

	update := blog.Update{}
	if req.Type != nil {
		t := blog.BlogType(*req.Type)
		update.Type = &t
	}
	if req.Blogs != nil {
		translations, err := toTranslations(req.Blogs)
		if err != nil {
			return err
		}
		update.Translations = translations
	}
	if req.Images != nil {
		images, err := toImages(req.Images)
		if err != nil {
			return err
		}
		update.Images = images
	}

	if err := s.repo.Update(ctx, id, update); err != nil {
		return err
	}

	logger.Info("Blog updated", map[string]interface{}{"blog_id": id})
	return nil
}

func (s *blogService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return blog.ErrInvalidBlogID
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info("Blog deleted", map[string]interface{}{"blog_id": id})
	return nil
}

func (s *blogService) GetAllForAdmin(ctx context.Context) ([]blog.AdminBlog, error) {
	return s.repo.GetAllForAdmin(ctx)
}

func (s *blogService) GetPublicList(ctx context.Context, lang string) (*blog.PublicListResponse, error) {
	if !blog.IsValidLanguage(lang) {
		return nil, blog.ErrInvalidLanguage
	}

	blogs, err := s.repo.ListByLanguage(ctx, blog.Language(lang))
	if err != nil {
		return nil, err
	}

	return &blog.PublicListResponse{
		Chrome: blog.ChromeFor(blog.Language(lang)),
		Blogs:  blogs,
	}, nil
}

func (s *blogService) GetPublicByID(ctx context.Context, lang string, id int64) (*blog.PublicBlog, error) {
	if !blog.IsValidLanguage(lang) {
		return nil, blog.ErrInvalidLanguage
	}
	if id <= 0 {
		return nil, blog.ErrInvalidBlogID
	}
	return s.repo.GetByID(ctx, blog.Language(lang), id)
}

// toTranslations converts wire payloads keyed by language string into
// domain translations, rejecting unknown languages.
func toTranslations(payloads map[string]blog.TranslationPayload) (map[blog.Language]blog.Translation, error) {
	out := make(map[blog.Language]blog.Translation, len(payloads))
	for key, p := range payloads {
		if !blog.IsValidLanguage(key) {
			return nil, blog.ErrInvalidLanguage
		}
		out[blog.Language(key)] = blog.Translation{
			Title:   p.Title,
			Date:    p.Date,
			Source:  p.Source,
			Content: p.Content,
		}
	}
	return out, nil
}

func toImages(images map[string][]string) (map[blog.Language][]string, error) {
	if images == nil {
		return nil, nil
	}
	out := make(map[blog.Language][]string, len(images))
	for key, urls := range images {
		if !blog.IsValidLanguage(key) {
			return nil, blog.ErrInvalidLanguage
		}
		out[blog.Language(key)] = urls
	}
	return out, nil
}
