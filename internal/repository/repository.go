package repository

import (
	"context"

	"github.com/blog-api/internal/database"
	"github.com/blog-api/internal/models"
)

// BlogRepository defines the interface for blog data operations.
// Lookups that match nothing return (nil, nil) rather than an error.
type BlogRepository interface {
	FindAll(ctx context.Context) ([]*models.Blog, error)
	FindByID(ctx context.Context, id int64) (*models.Blog, error)
	FindByAuthor(ctx context.Context, authorID string) ([]*models.Blog, error)
	FindLatest(ctx context.Context, limit int) ([]*models.Blog, error)
	Create(ctx context.Context, req *models.CreateBlogRequest) (*models.Blog, error)
	Update(ctx context.Context, id int64, req *models.UpdateBlogRequest) (*models.Blog, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Blog BlogRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Blog: NewBlogRepo(db),
	}
}
