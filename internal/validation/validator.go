// Package validation rejects malformed blog requests before they reach a handler.
//
// Each middleware stores the parsed input on the gin context so handlers
// never re-read the body or re-parse path parameters.
package validation

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/blog-api/internal/errs"
	"github.com/blog-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	blogIDKey        = "blog_id"
	createRequestKey = "create_blog_request"
	updateRequestKey = "update_blog_request"
)

// Validator provides the blog validation middlewares
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance reporting fields by their JSON names
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

// BlogID parses the :id path parameter. Anything that is not a positive
// integer cannot name a blog, so it is reported as not found.
func (v *Validator) BlogID() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !parseBlogID(c) {
			return
		}
		c.Next()
	}
}

// parseBlogID stores the :id parameter on the context, or records
// ErrNotFound and aborts. It never advances the chain.
func parseBlogID(c *gin.Context) bool {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		c.Error(fmt.Errorf("invalid blog id %q: %w", raw, errs.ErrNotFound))
		c.Abort()
		return false
	}
	c.Set(blogIDKey, id)
	return true
}

// AddBlog validates the body of a create request
func (v *Validator) AddBlog() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateBlogRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortInvalidBody(c, err)
			return
		}
		if err := v.Struct(&req); err != nil {
			c.Error(err)
			c.Abort()
			return
		}
		c.Set(createRequestKey, &req)
		c.Next()
	}
}

// UpdateBlog validates the id and the body of an update request.
// An empty body is a valid no-op update.
func (v *Validator) UpdateBlog() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !parseBlogID(c) {
			return
		}

		var req models.UpdateBlogRequest
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			abortInvalidBody(c, err)
			return
		}
		if err := v.Struct(&req); err != nil {
			c.Error(err)
			c.Abort()
			return
		}
		c.Set(updateRequestKey, &req)
		c.Next()
	}
}

// DeleteBlog validates a delete request
func (v *Validator) DeleteBlog() gin.HandlerFunc {
	return v.BlogID()
}

// Struct runs the `validate` tags of s and converts failures to an *errs.ValidationError
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return errs.NewValidationError("Validation failed", errs.FieldError{Field: "body", Error: err.Error()})
	}

	fields := make([]errs.FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, errs.FieldError{Field: fe.Field(), Error: fieldMessage(fe)})
	}
	return errs.NewValidationError("Validation failed", fields...)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", fe.Param())
		}
		return fmt.Sprintf("must not exceed %s", fe.Param())
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("failed %s:%s", fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("failed %s", fe.Tag())
	}
}

func abortInvalidBody(c *gin.Context, err error) {
	c.Error(errs.NewValidationError("Invalid request body", errs.FieldError{Field: "body", Error: err.Error()}))
	c.Abort()
}

// BlogIDFrom returns the id stored by BlogID
func BlogIDFrom(c *gin.Context) int64 {
	return c.GetInt64(blogIDKey)
}

// CreateRequestFrom returns the body stored by AddBlog
func CreateRequestFrom(c *gin.Context) *models.CreateBlogRequest {
	req, _ := c.MustGet(createRequestKey).(*models.CreateBlogRequest)
	return req
}

// UpdateRequestFrom returns the body stored by UpdateBlog
func UpdateRequestFrom(c *gin.Context) *models.UpdateBlogRequest {
	req, _ := c.MustGet(updateRequestKey).(*models.UpdateBlogRequest)
	return req
}
