package service

import (
	"context"
	"database/sql"

	"github.com/blog-api/internal/config"
	"github.com/blog-api/internal/models"
	"github.com/blog-api/internal/repository"
	"github.com/rs/zerolog"
)

// BlogService defines the blog operations exposed over HTTP
type BlogService interface {
	List(ctx context.Context) ([]*models.Blog, error)
	Get(ctx context.Context, id int64) (*models.Blog, error)
	ListByAuthor(ctx context.Context, authorID string) ([]*models.Blog, error)
	Latest(ctx context.Context, limit int) ([]*models.Blog, error)
	Create(ctx context.Context, req *models.CreateBlogRequest) (*models.Blog, error)
	Update(ctx context.Context, id int64, req *models.UpdateBlogRequest) (*models.Blog, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

// SystemService reports on the health of the backing store.
// *database.DB satisfies it directly.
type SystemService interface {
	HealthCheck(ctx context.Context) error
	Stats() sql.DBStats
}

// Services holds all service interfaces
type Services struct {
	Blog   BlogService
	System SystemService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, db SystemService, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		Blog:   newBlogService(repos.Blog, cfg.Blog, log),
		System: db,
	}
}
