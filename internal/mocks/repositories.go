package mocks

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	"github.com/blog-api/internal/models"
	"github.com/blog-api/internal/repository"
)

// MockBlogRepository is an in-memory implementation of BlogRepository.
// It assigns ids and creation times the way the postgres table does.
type MockBlogRepository struct {
	mu     sync.Mutex
	Blogs  map[int64]*models.Blog
	nextID int64
	// Err, when set, is returned by every call
	Err error
	// Now supplies creation timestamps; each call must return a later time
	Now func() time.Time
}

var _ repository.BlogRepository = (*MockBlogRepository)(nil)

func NewMockBlogRepository() *MockBlogRepository {
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return &MockBlogRepository{
		Blogs:  make(map[int64]*models.Blog),
		nextID: 1,
		Now: func() time.Time {
			clock = clock.Add(time.Second)
			return clock
		},
	}
}

func (m *MockBlogRepository) FindAll(ctx context.Context) ([]*models.Blog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return m.sorted(func(*models.Blog) bool { return true }), nil
}

func (m *MockBlogRepository) FindByID(ctx context.Context, id int64) (*models.Blog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	if blog, ok := m.Blogs[id]; ok {
		cp := *blog
		return &cp, nil
	}
	return nil, nil
}

func (m *MockBlogRepository) FindByAuthor(ctx context.Context, authorID string) ([]*models.Blog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return m.sorted(func(b *models.Blog) bool { return b.AuthorID == authorID }), nil
}

func (m *MockBlogRepository) FindLatest(ctx context.Context, limit int) ([]*models.Blog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}

	blogs := m.sorted(func(*models.Blog) bool { return true })
	sort.SliceStable(blogs, func(i, j int) bool {
		if blogs[i].CreatedAt.Equal(blogs[j].CreatedAt) {
			return blogs[i].ID > blogs[j].ID
		}
		return blogs[i].CreatedAt.After(blogs[j].CreatedAt)
	})
	if len(blogs) > limit {
		blogs = blogs[:limit]
	}
	return blogs, nil
}

func (m *MockBlogRepository) Create(ctx context.Context, req *models.CreateBlogRequest) (*models.Blog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}

	now := m.Now()
	blog := &models.Blog{
		ID:        m.nextID,
		AuthorID:  req.AuthorID,
		Title:     req.Title,
		Content:   req.Content,
		Image:     req.Image,
		CreatedBy: req.CreatedBy,
		Type:      req.Type,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.nextID++
	m.Blogs[blog.ID] = blog

	cp := *blog
	return &cp, nil
}

func (m *MockBlogRepository) Update(ctx context.Context, id int64, req *models.UpdateBlogRequest) (*models.Blog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}

	blog, ok := m.Blogs[id]
	if !ok {
		return nil, nil
	}
	if req.Title != nil {
		blog.Title = *req.Title
	}
	if req.Content != nil {
		blog.Content = *req.Content
	}
	if req.Image != nil {
		blog.Image = req.Image
	}
	if req.Type != nil {
		blog.Type = req.Type
	}
	if !req.IsEmpty() {
		blog.UpdatedAt = m.Now()
	}

	cp := *blog
	return &cp, nil
}

func (m *MockBlogRepository) Delete(ctx context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return false, m.Err
	}
	if _, ok := m.Blogs[id]; !ok {
		return false, nil
	}
	delete(m.Blogs, id)
	return true, nil
}

func (m *MockBlogRepository) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	return len(m.Blogs), nil
}

// sorted returns copies of the matching blogs in id order. Callers hold m.mu.
func (m *MockBlogRepository) sorted(match func(*models.Blog) bool) []*models.Blog {
	blogs := make([]*models.Blog, 0, len(m.Blogs))
	for _, b := range m.Blogs {
		if match(b) {
			cp := *b
			blogs = append(blogs, &cp)
		}
	}
	sort.Slice(blogs, func(i, j int) bool { return blogs[i].ID < blogs[j].ID })
	return blogs
}

// MockDB is a stand-in for *database.DB in health and metrics checks
type MockDB struct {
	PingErr error
	DBStats sql.DBStats
}

func (m *MockDB) HealthCheck(ctx context.Context) error {
	return m.PingErr
}

func (m *MockDB) Stats() sql.DBStats {
	return m.DBStats
}
