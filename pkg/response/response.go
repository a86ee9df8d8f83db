package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	pkgErrors "items-api/pkg/errors"
)

// OK sends 200 JSON with data as the body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends 201 JSON with data as the body. location is set as the Location header when not empty.
func Created(c *gin.Context, location string, data any) {
	if location != "" {
		c.Header("Location", location)
	}
	c.JSON(http.StatusCreated, data)
}

// Error renders err. HTTPErrors below 500 are rendered with their own status and message,
// everything else becomes a generic 500.
func Error(c *gin.Context, err error) {
	code := pkgErrors.StatusCode(err)
	if code >= http.StatusInternalServerError {
		InternalError(c, err)
		return
	}

	c.JSON(code, Resp{
		ErrorCode: code,
		Message:   err.Error(),
	})
}

// InternalError sends 500 with a correlation id. The cause is attached to the gin context
// for the access log and never sent to the client.
func InternalError(c *gin.Context, err error) {
	id := uuid.NewString()
	if err != nil {
		_ = c.Error(fmt.Errorf("error id %s: %w", id, err))
	}

	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   fmt.Sprintf("%s (id: %s)", DefaultErrorMessage, id),
	})
}

// ServiceUnavailable sends 503 with data.
func ServiceUnavailable(c *gin.Context, data any) {
	c.JSON(http.StatusServiceUnavailable, Resp{
		ErrorCode: ServiceUnavailableCode,
		Message:   http.StatusText(http.StatusServiceUnavailable),
		Data:      data,
	})
}
