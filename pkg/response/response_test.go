package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	pkgErrors "items-api/pkg/errors"
	"items-api/pkg/response"
)

func TestResponses(t *testing.T) {
	// Setup Gin test mode
	gin.SetMode(gin.TestMode)

	t.Run("OK", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		data := map[string]string{"foo": "bar"}
		response.OK(c, data)

		if w.Code != http.StatusOK {
			t.Errorf("expected %d but got %d", http.StatusOK, w.Code)
		}

		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}
		if body["foo"] != "bar" {
			t.Errorf("unexpected payload: %v", body)
		}
	})

	t.Run("Created", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Created(c, "/api/items/1", map[string]string{"id": "1"})

		if w.Code != http.StatusCreated {
			t.Errorf("expected 201, got %d", w.Code)
		}
		if loc := w.Header().Get("Location"); loc != "/api/items/1" {
			t.Errorf("expected Location /api/items/1, got %q", loc)
		}
	})

	t.Run("Error HTTPError", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Error(c, pkgErrors.NewHTTPError(http.StatusNotFound, "item not found"))

		if w.Code != http.StatusNotFound {
			t.Errorf("expected %d, got %d", http.StatusNotFound, w.Code)
		}

		var resp response.Resp
		json.Unmarshal(w.Body.Bytes(), &resp)

		if resp.ErrorCode != http.StatusNotFound {
			t.Errorf("expected ErrorCode 404, got %d", resp.ErrorCode)
		}
		if resp.Message != "item not found" {
			t.Errorf("expected message 'item not found', got %s", resp.Message)
		}
	})

	t.Run("Error Unknown", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Error(c, errors.New("connection reset by peer"))

		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", w.Code)
		}
		if strings.Contains(w.Body.String(), "connection reset") {
			t.Errorf("internal error details leaked: %s", w.Body.String())
		}
	})

	t.Run("InternalError", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.InternalError(c, errors.New("db crash"))

		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", w.Code)
		}

		var resp response.Resp
		json.Unmarshal(w.Body.Bytes(), &resp)
		if !strings.HasPrefix(resp.Message, response.DefaultErrorMessage) {
			t.Errorf("unexpected message %q", resp.Message)
		}
		if len(c.Errors) != 1 {
			t.Errorf("expected cause attached to context, got %d errors", len(c.Errors))
		}
	})

	t.Run("ServiceUnavailable", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.ServiceUnavailable(c, map[string]string{"status": "not ready"})

		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("expected 503, got %d", w.Code)
		}
	})
}
