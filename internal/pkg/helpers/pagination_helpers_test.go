package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/yigit/coursecatalog/internal/app/models/dto"
)

func TestNewPaginationInfo(t *testing.T) {
	tests := []struct {
		name              string
		total, page, size int
		want              dto.PaginationInfo
	}{
		{"exact pages", 20, 2, 10, dto.PaginationInfo{CurrentPage: 2, TotalPages: 2, PageSize: 10, TotalItems: 20}},
		{"partial last page", 21, 1, 10, dto.PaginationInfo{CurrentPage: 1, TotalPages: 3, PageSize: 10, TotalItems: 21}},
		{"page past the end is clamped", 5, 9, 2, dto.PaginationInfo{CurrentPage: 3, TotalPages: 3, PageSize: 2, TotalItems: 5}},
		{"empty listing", 0, 1, 10, dto.PaginationInfo{CurrentPage: 1, TotalPages: 1, PageSize: 10, TotalItems: 0}},
		{"invalid inputs use defaults", 3, 0, -1, dto.PaginationInfo{CurrentPage: 1, TotalPages: 1, PageSize: DefaultPageSize, TotalItems: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPaginationInfo(tt.total, tt.page, tt.size))
		})
	}
}

func TestCalculateSliceIndices(t *testing.T) {
	start, end := CalculateSliceIndices(2, 10, 25)
	assert.Equal(t, 10, start)
	assert.Equal(t, 20, end)

	start, end = CalculateSliceIndices(3, 10, 25)
	assert.Equal(t, 20, start)
	assert.Equal(t, 25, end)

	start, end = CalculateSliceIndices(4, 10, 25)
	assert.Equal(t, 25, start)
	assert.Equal(t, 25, end)
}

func TestParsePaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		query    string
		page     int
		size     int
		fallback int
	}{
		{"", 1, 20, 20},
		{"?page=3&size=5", 3, 5, 20},
		{"?page=-1&size=1000", 1, 20, 20},
		{"?page=x&size=y", 1, DefaultPageSize, 0},
	}

	for _, tt := range tests {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/courses"+tt.query, nil)

		page, size := ParsePaginationParams(c, tt.fallback)
		assert.Equal(t, tt.page, page, tt.query)
		assert.Equal(t, tt.size, size, tt.query)
	}
}
