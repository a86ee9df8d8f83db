package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"items-api/internal/item"
	pkgErrors "items-api/pkg/errors"
	"items-api/pkg/response"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Anything unknown is returned as is and rendered as a generic 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, item.ErrItemNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, item.ErrInvalidID),
		errors.Is(err, item.ErrNameRequired),
		errors.Is(err, item.ErrNameTooLong),
		errors.Is(err, item.ErrInvalidAttribute),
		errors.Is(err, item.ErrInvalidPayload):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return err
	}
}

// fail logs and renders err for the operation op.
func (h *handler) fail(c *gin.Context, op string, err error) {
	ctx := c.Request.Context()
	mapped := h.mapError(err)
	if pkgErrors.StatusCode(mapped) >= http.StatusInternalServerError {
		h.l.Errorf(ctx, "%s: %v", op, err)
	} else {
		h.l.Debugf(ctx, "%s: %v", op, err)
	}
	response.Error(c, mapped)
}
