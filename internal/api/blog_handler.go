package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/blog-api/internal/config"
	"github.com/blog-api/internal/service"
	"github.com/blog-api/internal/validation"
	"github.com/blog-api/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// BlogHandler handles the /v1/blogs endpoints.
// Failures are recorded with c.Error and rendered by errorMiddleware.
type BlogHandler struct {
	services     *service.Services
	queryTimeout time.Duration
	log          zerolog.Logger
}

// NewBlogHandler creates a new BlogHandler
func NewBlogHandler(services *service.Services, cfg *config.Config, log zerolog.Logger) *BlogHandler {
	return &BlogHandler{
		services:     services,
		queryTimeout: cfg.Database.QueryTimeout,
		log:          log.With().Str("handler", "blog").Logger(),
	}
}

// GetBlogs handles GET /v1/blogs
func (h *BlogHandler) GetBlogs(c *gin.Context) {
	ctx, cancel := contextWithTimeout(c, h.queryTimeout)
	defer cancel()

	blogs, err := h.services.Blog.List(ctx)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.OK(blogs))
}

// GetBlogDetail handles GET /v1/blogs/:id
func (h *BlogHandler) GetBlogDetail(c *gin.Context) {
	ctx, cancel := contextWithTimeout(c, h.queryTimeout)
	defer cancel()

	blog, err := h.services.Blog.Get(ctx, validation.BlogIDFrom(c))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.OK(blog))
}

// GetBlogsByAuthor handles GET /v1/blogs/author/:authorId
func (h *BlogHandler) GetBlogsByAuthor(c *gin.Context) {
	ctx, cancel := contextWithTimeout(c, h.queryTimeout)
	defer cancel()

	blogs, err := h.services.Blog.ListByAuthor(ctx, c.Param("authorId"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.OK(blogs))
}

// GetLatestBlogs handles GET /v1/blogs/latest?limit=N.
// A missing or non-numeric limit parses as 0, which the service treats as 1.
func (h *BlogHandler) GetLatestBlogs(c *gin.Context) {
	ctx, cancel := contextWithTimeout(c, h.queryTimeout)
	defer cancel()

	limit, _ := strconv.Atoi(c.Query("limit"))

	blogs, err := h.services.Blog.Latest(ctx, limit)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.OK(blogs))
}

// PostBlog handles POST /v1/blogs. It answers 200, not 201.
func (h *BlogHandler) PostBlog(c *gin.Context) {
	ctx, cancel := contextWithTimeout(c, h.queryTimeout)
	defer cancel()

	blog, err := h.services.Blog.Create(ctx, validation.CreateRequestFrom(c))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.OK(blog))
}

// UpdateBlog handles PUT /v1/blogs/:id
func (h *BlogHandler) UpdateBlog(c *gin.Context) {
	ctx, cancel := contextWithTimeout(c, h.queryTimeout)
	defer cancel()

	blog, err := h.services.Blog.Update(ctx, validation.BlogIDFrom(c), validation.UpdateRequestFrom(c))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.OK(blog))
}

// DeleteBlog handles DELETE /v1/blogs/:id
func (h *BlogHandler) DeleteBlog(c *gin.Context) {
	ctx, cancel := contextWithTimeout(c, h.queryTimeout)
	defer cancel()

	id := validation.BlogIDFrom(c)
	if err := h.services.Blog.Delete(ctx, id); err != nil {
		c.Error(err)
		return
	}

	h.log.Debug().Int64("blog_id", id).Msg("Blog deleted")
	c.JSON(http.StatusOK, response.OK(nil, "Blog Deleted!"))
}
