package service_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/blog-api/internal/config"
	"github.com/blog-api/internal/errs"
	"github.com/blog-api/internal/mocks"
	"github.com/blog-api/internal/models"
	"github.com/blog-api/internal/repository"
	"github.com/blog-api/internal/service"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newService(maxLimit int) (service.BlogService, *mocks.MockBlogRepository) {
	repo := mocks.NewMockBlogRepository()
	return service.NewBlogService(repo, config.BlogConfig{LatestMaxLimit: maxLimit}, zerolog.Nop()), repo
}

func seed(t *testing.T, svc service.BlogService, n int, authorID string) []*models.Blog {
	t.Helper()
	blogs := make([]*models.Blog, 0, n)
	for i := 0; i < n; i++ {
		blog, err := svc.Create(context.Background(), &models.CreateBlogRequest{
			AuthorID: authorID,
			Title:    fmt.Sprintf("Title %d", i),
			Content:  fmt.Sprintf("Content %d", i),
		})
		require.NoError(t, err)
		blogs = append(blogs, blog)
	}
	return blogs
}

func TestBlogService_CreateThenGet(t *testing.T) {
	svc, _ := newService(100)
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.CreateBlogRequest{
		AuthorID: "a1",
		Title:    "T",
		Content:  "C",
		Type:     strPtr("news"),
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestBlogService_Get_NotFound(t *testing.T) {
	svc, _ := newService(100)

	_, err := svc.Get(context.Background(), 999999)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestBlogService_ListByAuthor_EmptyIsNotAnError(t *testing.T) {
	svc, _ := newService(100)
	seed(t, svc, 2, "a1")

	blogs, err := svc.ListByAuthor(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, blogs)
	assert.Empty(t, blogs)

	blogs, err = svc.ListByAuthor(context.Background(), "a1")
	require.NoError(t, err)
	assert.Len(t, blogs, 2)
}

func TestBlogService_Latest(t *testing.T) {
	svc, _ := newService(3)
	created := seed(t, svc, 5, "a1")
	ctx := context.Background()

	tests := []struct {
		name    string
		limit   int
		wantLen int
	}{
		{"zero falls back to one", 0, 1},
		{"negative falls back to one", -4, 1},
		{"within bounds", 2, 2},
		{"clamped to max", 50, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blogs, err := svc.Latest(ctx, tt.limit)
			require.NoError(t, err)
			require.Len(t, blogs, tt.wantLen)
			assert.Equal(t, created[4].ID, blogs[0].ID)
			for i := 1; i < len(blogs); i++ {
				assert.True(t, blogs[i-1].CreatedAt.After(blogs[i].CreatedAt))
			}
		})
	}
}

func TestBlogService_Latest_EmptyIsNotFound(t *testing.T) {
	svc, _ := newService(100)

	_, err := svc.Latest(context.Background(), 5)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestBlogService_Update_PartialKeepsOtherFields(t *testing.T) {
	svc, _ := newService(100)
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.CreateBlogRequest{
		AuthorID: "a1",
		Title:    "Old",
		Content:  "Body",
		Image:    strPtr("cover.png"),
		Type:     strPtr("news"),
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, &models.UpdateBlogRequest{Title: strPtr("New")})
	require.NoError(t, err)

	assert.Equal(t, "New", updated.Title)
	assert.Equal(t, "Body", updated.Content)
	assert.Equal(t, "cover.png", *updated.Image)
	assert.Equal(t, "news", *updated.Type)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestBlogService_Update_Missing(t *testing.T) {
	svc, _ := newService(100)

	_, err := svc.Update(context.Background(), 42, &models.UpdateBlogRequest{Title: strPtr("x")})
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestBlogService_DeleteTwice(t *testing.T) {
	svc, _ := newService(100)
	ctx := context.Background()
	created := seed(t, svc, 1, "a1")[0]

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), errs.ErrNotFound)

	_, err := svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestBlogService_StoreErrorsPropagate(t *testing.T) {
	svc, repo := newService(100)
	repo.Err = errs.Store("find blogs", sql.ErrConnDone)
	ctx := context.Background()

	_, err := svc.List(ctx)
	assert.ErrorIs(t, err, sql.ErrConnDone)

	_, err = svc.Get(ctx, 1)
	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.NotErrorIs(t, err, errs.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, 1), sql.ErrConnDone)
}

func TestNewServices_WiresSystem(t *testing.T) {
	db := &mocks.MockDB{DBStats: sql.DBStats{OpenConnections: 3}}
	repos := &repository.Repositories{Blog: mocks.NewMockBlogRepository()}
	cfg := &config.Config{Blog: config.BlogConfig{LatestMaxLimit: 10}}

	services := service.NewServices(repos, db, cfg, zerolog.Nop())
	require.NotNil(t, services.Blog)
	assert.NoError(t, services.System.HealthCheck(context.Background()))
	assert.Equal(t, 3, services.System.Stats().OpenConnections)
}
