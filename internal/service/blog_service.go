package service

import (
	"context"
	"fmt"

	"github.com/blog-api/internal/config"
	"github.com/blog-api/internal/errs"
	"github.com/blog-api/internal/models"
	"github.com/blog-api/internal/repository"
	"github.com/rs/zerolog"
)

// blogService is the concrete implementation of BlogService
type blogService struct {
	repo     repository.BlogRepository
	maxLimit int
	log      zerolog.Logger
}

func newBlogService(repo repository.BlogRepository, cfg config.BlogConfig, log zerolog.Logger) *blogService {
	return &blogService{
		repo:     repo,
		maxLimit: cfg.LatestMaxLimit,
		log:      log.With().Str("service", "blog").Logger(),
	}
}

// NewBlogService creates a BlogService backed by repo
func NewBlogService(repo repository.BlogRepository, cfg config.BlogConfig, log zerolog.Logger) BlogService {
	return newBlogService(repo, cfg, log)
}

func (s *blogService) List(ctx context.Context) ([]*models.Blog, error) {
	return s.repo.FindAll(ctx)
}

// Get returns errs.ErrNotFound when no blog has the given id
func (s *blogService) Get(ctx context.Context, id int64) (*models.Blog, error) {
	blog, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, fmt.Errorf("get blog %d: %w", id, errs.ErrNotFound)
	}
	return blog, nil
}

// ListByAuthor never reports not-found; an author without blogs yields an empty slice
func (s *blogService) ListByAuthor(ctx context.Context, authorID string) ([]*models.Blog, error) {
	return s.repo.FindByAuthor(ctx, authorID)
}

// Latest returns the newest blogs. limit < 1 means 1 and is capped at the
// configured maximum. An empty table is reported as errs.ErrNotFound.
func (s *blogService) Latest(ctx context.Context, limit int) ([]*models.Blog, error) {
	limit = s.normalizeLimit(limit)

	blogs, err := s.repo.FindLatest(ctx, limit)
	if err != nil {
		return nil, err
	}
	if len(blogs) == 0 {
		return nil, fmt.Errorf("latest blogs: %w", errs.ErrNotFound)
	}
	return blogs, nil
}

func (s *blogService) normalizeLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if s.maxLimit > 0 && limit > s.maxLimit {
		return s.maxLimit
	}
	return limit
}

func (s *blogService) Create(ctx context.Context, req *models.CreateBlogRequest) (*models.Blog, error) {
	blog, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Int64("blog_id", blog.ID).
		Str("author_id", blog.AuthorID).
		Msg("Blog created")
	return blog, nil
}

// Update applies a partial update; unknown ids yield errs.ErrNotFound
func (s *blogService) Update(ctx context.Context, id int64, req *models.UpdateBlogRequest) (*models.Blog, error) {
	blog, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, fmt.Errorf("update blog %d: %w", id, errs.ErrNotFound)
	}
	return blog, nil
}

// Delete hard-deletes a blog; unknown ids yield errs.ErrNotFound
func (s *blogService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("delete blog %d: %w", id, errs.ErrNotFound)
	}
	return nil
}

func (s *blogService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
