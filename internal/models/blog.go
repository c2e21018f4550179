package models

import (
	"time"
)

// Blog represents a blog post in the system
type Blog struct {
	ID        int64     `json:"id" db:"id"`
	AuthorID  string    `json:"authorId" db:"author_id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	Image     *string   `json:"image" db:"image"`
	CreatedBy *string   `json:"createdBy" db:"created_by"`
	Type      *string   `json:"type" db:"type"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// CreateBlogRequest is the body accepted by POST /v1/blogs
type CreateBlogRequest struct {
	AuthorID  string  `json:"authorId" validate:"required,max=255"`
	Title     string  `json:"title" validate:"required,max=255"`
	Content   string  `json:"content" validate:"required"`
	Image     *string `json:"image" validate:"omitempty,max=2048"`
	CreatedBy *string `json:"createdBy" validate:"omitempty,max=255"`
	Type      *string `json:"type" validate:"omitempty,max=64"`
}

// UpdateBlogRequest is the body accepted by PUT /v1/blogs/:id.
// A nil field leaves the stored column unchanged. JSON null decodes to nil,
// so image and type cannot be cleared once set.
type UpdateBlogRequest struct {
	Title   *string `json:"title" validate:"omitempty,min=1,max=255"`
	Content *string `json:"content" validate:"omitempty,min=1"`
	Image   *string `json:"image" validate:"omitempty,max=2048"`
	Type    *string `json:"type" validate:"omitempty,max=64"`
}

// IsEmpty reports whether the request changes nothing
func (r *UpdateBlogRequest) IsEmpty() bool {
	return r.Title == nil && r.Content == nil && r.Image == nil && r.Type == nil
}
