package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/coursecatalog/internal/app/models/dto"
)

func newValidationRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/load", ValidateBody[dto.LoadCatalogRequest](), func(c *gin.Context) {
		req := c.MustGet(ValidatedBodyKey).(*dto.LoadCatalogRequest)
		c.JSON(http.StatusOK, dto.NewSuccessResponse(req))
	})
	return router
}

func postJSON(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/load", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestValidateBody(t *testing.T) {
	router := newValidationRouter()

	rec := postJSON(router, `{"path":"data/courses.txt"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"path":"data/courses.txt"`)

	tests := []struct {
		name    string
		body    string
		details string
	}{
		{"missing path", `{}`, "Path is required"},
		{"path too long", `{"path":"` + strings.Repeat("a", 4097) + `"}`, "Path must be at most 4096"},
		{"not json", `path=x`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(router, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, dto.ErrorCodeValidationFailed, resp.Error.Code)
			if tt.details != "" {
				assert.Equal(t, "path", resp.Error.Field)
				assert.Contains(t, resp.Error.Details, tt.details)
			}
		})
	}
}
