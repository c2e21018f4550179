package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/blog-api/internal/errs"
	"github.com/blog-api/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// requestIDMiddleware reuses the caller's X-Request-ID or generates one
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(requestIDKey, requestID)
		c.Header(requestIDHeader, requestID)
		c.Next()
	}
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Interface("error", err).
					Str("request_id", c.GetString(requestIDKey)).
					Msg("Panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					response.InternalServerError("panic", "An unexpected error occurred"))
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Str("request_id", c.GetString(requestIDKey)).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// errorMiddleware turns the last error a handler recorded with c.Error into
// the JSON error envelope. It is the only place error responses are written.
func errorMiddleware(log zerolog.Logger, exposeRaw bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := errs.HTTPStatus(err)

		if status < http.StatusInternalServerError {
			log.Warn().Err(err).
				Int("status", status).
				Str("request_id", c.GetString(requestIDKey)).
				Msg("Request rejected")
		}

		var validationErr *errs.ValidationError
		switch {
		case status == http.StatusNotFound:
			c.JSON(status, response.NotFound("Blog Not Found"))

		case errors.As(err, &validationErr):
			c.JSON(status, response.BadRequest(validationErr.Fields, validationErr.Error()))

		default:
			event := log.Error().Err(err).Str("request_id", c.GetString(requestIDKey))
			var storeErr *errs.StoreError
			if errors.As(err, &storeErr) && storeErr.Code != "" {
				event = event.Str("pg_code", storeErr.Code)
			}
			event.Msg("Request failed")

			if exposeRaw {
				c.JSON(status, response.InternalServerError(err.Error(), err.Error()))
			} else {
				c.JSON(status, response.InternalServerError(http.StatusText(status), "An unexpected error occurred"))
			}
		}
	}
}
