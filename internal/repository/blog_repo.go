package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/blog-api/internal/database"
	"github.com/blog-api/internal/errs"
	"github.com/blog-api/internal/models"
	"github.com/lib/pq"
)

const blogsTable = "blogs"

var blogColumns = []string{
	"id", "author_id", "title", "content", "image", "created_by", "type", "created_at", "updated_at",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// rowScanner is satisfied by both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// blogRepo is the concrete implementation of BlogRepository
type blogRepo struct {
	db *database.DB
}

// NewBlogRepo creates a new blog repository
func NewBlogRepo(db *database.DB) BlogRepository {
	return &blogRepo{db: db}
}

// FindAll returns every blog ordered by id
func (r *blogRepo) FindAll(ctx context.Context) ([]*models.Blog, error) {
	query := psql.Select(blogColumns...).From(blogsTable).OrderBy("id ASC")
	blogs, err := r.list(ctx, query)
	return blogs, storeError("find blogs", err)
}

// FindByID retrieves a blog by ID
func (r *blogRepo) FindByID(ctx context.Context, id int64) (*models.Blog, error) {
	query, args, err := psql.Select(blogColumns...).
		From(blogsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, storeError("find blog", err)
	}

	blog, err := scanBlog(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storeError("find blog", err)
	}
	return blog, nil
}

// FindByAuthor returns all blogs written by authorID
func (r *blogRepo) FindByAuthor(ctx context.Context, authorID string) ([]*models.Blog, error) {
	query := psql.Select(blogColumns...).
		From(blogsTable).
		Where(sq.Eq{"author_id": authorID}).
		OrderBy("id ASC")
	blogs, err := r.list(ctx, query)
	return blogs, storeError("find blogs by author", err)
}

// FindLatest returns up to limit blogs, newest first
func (r *blogRepo) FindLatest(ctx context.Context, limit int) ([]*models.Blog, error) {
	query := psql.Select(blogColumns...).
		From(blogsTable).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit))
	blogs, err := r.list(ctx, query)
	return blogs, storeError("find latest blogs", err)
}

// Create inserts a new blog and returns the stored row
func (r *blogRepo) Create(ctx context.Context, req *models.CreateBlogRequest) (*models.Blog, error) {
	query, args, err := psql.Insert(blogsTable).
		Columns("author_id", "title", "content", "image", "created_by", "type").
		Values(req.AuthorID, req.Title, req.Content, req.Image, req.CreatedBy, req.Type).
		Suffix(returningBlog()).
		ToSql()
	if err != nil {
		return nil, storeError("create blog", err)
	}

	blog, err := scanBlog(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, storeError("create blog", err)
	}
	return blog, nil
}

// Update sets the non-nil fields of req on blog id.
// Returns (nil, nil) when no such blog exists.
func (r *blogRepo) Update(ctx context.Context, id int64, req *models.UpdateBlogRequest) (*models.Blog, error) {
	if req.IsEmpty() {
		return r.FindByID(ctx, id)
	}

	update := psql.Update(blogsTable).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": id}).
		Suffix(returningBlog())
	if req.Title != nil {
		update = update.Set("title", *req.Title)
	}
	if req.Content != nil {
		update = update.Set("content", *req.Content)
	}
	if req.Image != nil {
		update = update.Set("image", *req.Image)
	}
	if req.Type != nil {
		update = update.Set("type", *req.Type)
	}

	query, args, err := update.ToSql()
	if err != nil {
		return nil, storeError("update blog", err)
	}

	blog, err := scanBlog(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storeError("update blog", err)
	}
	return blog, nil
}

// Delete removes blog id, reporting whether a row was deleted
func (r *blogRepo) Delete(ctx context.Context, id int64) (bool, error) {
	query, args, err := psql.Delete(blogsTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return false, storeError("delete blog", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, storeError("delete blog", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, storeError("delete blog", err)
	}
	return affected > 0, nil
}

// Count returns the total number of blogs
func (r *blogRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM blogs").Scan(&count)
	return count, storeError("count blogs", err)
}

func (r *blogRepo) list(ctx context.Context, builder sq.SelectBuilder) ([]*models.Blog, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// never nil, so an empty result encodes as []
	blogs := make([]*models.Blog, 0)
	for rows.Next() {
		blog, err := scanBlog(rows)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, blog)
	}
	return blogs, rows.Err()
}

func returningBlog() string {
	return "RETURNING " + strings.Join(blogColumns, ", ")
}

func scanBlog(row rowScanner) (*models.Blog, error) {
	var blog models.Blog
	var image, createdBy, blogType sql.NullString

	err := row.Scan(
		&blog.ID, &blog.AuthorID, &blog.Title, &blog.Content,
		&image, &createdBy, &blogType, &blog.CreatedAt, &blog.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	blog.Image = nullString(image)
	blog.CreatedBy = nullString(createdBy)
	blog.Type = nullString(blogType)
	return &blog, nil
}

func nullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

// storeError tags driver failures with the postgres condition name when one is available
func storeError(op string, err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return &errs.StoreError{Op: op, Code: pqErr.Code.Name(), Err: err}
	}
	return errs.Store(op, err)
}
