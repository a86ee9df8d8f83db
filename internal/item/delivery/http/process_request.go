package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"items-api/internal/item"
)

// processCreateReq binds the create body twice: once into createReq for the typed,
// validated fields and once into a map for the free-form attributes.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	attrs, err := h.bindAttributes(c)
	if err != nil {
		return req, err
	}
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		return req, h.bindError(err)
	}
	req.Attributes = attrs
	return req, nil
}

// processUpdateReq binds the update body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	attrs, err := h.bindAttributes(c)
	if err != nil {
		return req, err
	}
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		return req, h.bindError(err)
	}
	req.ID = c.Param("id")
	req.Attributes = attrs
	return req, req.validate()
}

// bindAttributes decodes the body as a JSON object. Reserved keys are dropped by the use case.
func (h *handler) bindAttributes(c *gin.Context) (map[string]any, error) {
	var body map[string]any
	if err := c.ShouldBindBodyWith(&body, numberJSON{}); err != nil {
		return nil, item.ErrInvalidPayload
	}
	if body == nil {
		return nil, item.ErrInvalidPayload
	}
	for k, v := range body {
		conv, err := convertNumbers(v)
		if err != nil {
			return nil, item.ErrInvalidPayload
		}
		body[k] = conv
	}
	return body, nil
}

// numberJSON is binding.JSON with UseNumber, so integers above 2^53 are not rounded.
type numberJSON struct{}

func (numberJSON) Name() string { return "json" }

func (numberJSON) Bind(req *http.Request, obj any) error {
	if req == nil || req.Body == nil {
		return errors.New("invalid request")
	}
	return decodeNumberJSON(req.Body, obj)
}

func (numberJSON) BindBody(body []byte, obj any) error {
	return decodeNumberJSON(bytes.NewReader(body), obj)
}

func decodeNumberJSON(r io.Reader, obj any) error {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return dec.Decode(obj)
}

// convertNumbers replaces json.Number with int64 when integral, float64 otherwise.
func convertNumbers(v any) (any, error) {
	switch val := v.(type) {
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i, nil
		}
		return val.Float64()
	case map[string]any:
		for k, e := range val {
			conv, err := convertNumbers(e)
			if err != nil {
				return nil, err
			}
			val[k] = conv
		}
		return val, nil
	case []any:
		for i, e := range val {
			conv, err := convertNumbers(e)
			if err != nil {
				return nil, err
			}
			val[i] = conv
		}
		return val, nil
	default:
		return v, nil
	}
}

// bindError turns binding/validation failures on the name field into domain errors.
func (h *handler) bindError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].Tag() {
		case "required":
			return item.ErrNameRequired
		case "max":
			return item.ErrNameTooLong
		}
	}
	return item.ErrInvalidPayload
}
