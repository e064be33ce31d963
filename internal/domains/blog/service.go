package blog

import (
	"context"
)

// Service exposes the blog use cases to the transport layer.
type Service interface {
	Create(ctx context.Context, req *CreateBlogRequest) (*CreateBlogResponse, error)
	Update(ctx context.Context, id int64, req *UpdateBlogRequest) error
	Delete(ctx context.Context, id int64) error
	GetAllForAdmin(ctx context.Context) ([]AdminBlog, error)
	GetPublicList(ctx context.Context, lang string) (*PublicListResponse, error)
	GetPublicByID(ctx context.Context, lang string, id int64) (*PublicBlog, error)
}
