package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/coursecatalog/internal/app/models/dto"
	"github.com/yigit/coursecatalog/internal/catalog"
	"github.com/yigit/coursecatalog/internal/pkg/apperrors"
)

func TestErrorDetailFor(t *testing.T) {
	dangling := apperrors.NewCustomError(apperrors.ErrDanglingPrerequisite, "line 1: CS999 missing").
		WithDetails(map[string]interface{}{"line": 1, "prerequisite": "CS999"})

	tests := []struct {
		name   string
		err    error
		status int
		code   dto.ErrorCode
	}{
		{"course not found", apperrors.NewCustomError(apperrors.ErrCourseNotFound, "course X not found"), http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"not loaded", apperrors.ErrCatalogNotLoaded, http.StatusNotFound, dto.ErrorCodeCatalogNotLoaded},
		{"malformed", fmt.Errorf("load: %w", apperrors.ErrMalformedRecord), http.StatusUnprocessableEntity, dto.ErrorCodeMalformedRecord},
		{"dangling", dangling, http.StatusUnprocessableEntity, dto.ErrorCodeDanglingPrerequisite},
		{"source", apperrors.ErrSourceUnavailable, http.StatusBadRequest, dto.ErrorCodeSourceUnavailable},
		{"validation", apperrors.ErrValidationFailed, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"outside catalog dir", apperrors.NewCustomError(apperrors.ErrPermissionDenied, "'/etc/passwd' is outside the catalog directory"), http.StatusForbidden, dto.ErrorCodeForbidden},
		{"validator malformed", catalog.ValidateBatch([]string{"CS100"}), http.StatusUnprocessableEntity, dto.ErrorCodeMalformedRecord},
		{"validator dangling", catalog.ValidateBatch([]string{"CS100,Intro,CS999"}), http.StatusUnprocessableEntity, dto.ErrorCodeDanglingPrerequisite},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, detail := errorDetailFor(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, detail.Code)
		})
	}
}

func TestRejectionKeepsLineDetails(t *testing.T) {
	err := apperrors.NewCustomError(apperrors.ErrDanglingPrerequisite, "line 3: missing").
		WithDetails(map[string]interface{}{"line": 3})

	_, detail := errorDetailFor(err)
	details, ok := detail.Details.(map[string]interface{})
	if assert.True(t, ok) {
		assert.Equal(t, 3, details["line"])
		assert.Equal(t, "line 3: missing", details["reason"])
	}
	// the original error's details are not modified
	assert.NotContains(t, err.Details, "reason")
}

func TestRejectionDoesNotEchoLineText(t *testing.T) {
	lines := []string{"root:x:0:0:root:/root:/bin/bash", "DB_PASSWORD=hunter2"}
	status, detail := errorDetailFor(catalog.ValidateBatch(lines))
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	body, err := json.Marshal(dto.NewErrorResponse(detail))
	require.NoError(t, err)
	assert.NotContains(t, string(body), "root:x")
	assert.NotContains(t, string(body), "hunter2")

	details, ok := detail.Details.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 1, details["line"])
	assert.Equal(t, 1, details["fields"])
}
