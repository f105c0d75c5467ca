package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursecatalog/internal/app/models/dto"
	"github.com/yigit/coursecatalog/internal/app/services"
	"github.com/yigit/coursecatalog/internal/middleware"
	"github.com/yigit/coursecatalog/internal/pkg/apperrors"
	"github.com/yigit/coursecatalog/internal/pkg/helpers"
	"github.com/yigit/coursecatalog/internal/source"
)

// CourseController handles catalog queries and reloads
type CourseController struct {
	catalogService  services.CatalogService
	defaultPageSize int
	catalogDir      string
}

// NewCourseController creates a new CourseController. Reload requests may
// only name files inside catalogDir.
func NewCourseController(catalogService services.CatalogService, defaultPageSize int, catalogDir string) *CourseController {
	return &CourseController{
		catalogService:  catalogService,
		defaultPageSize: defaultPageSize,
		catalogDir:      catalogDir,
	}
}

// ListCourses returns one page of the catalog sorted by course number
// @Summary List courses
// @Tags courses
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.CourseListResponse}
// @Failure 404 {object} dto.ErrorResponse "No catalog loaded"
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx, c.defaultPageSize)

	courses, info, err := c.catalogService.ListCourses(ctx.Request.Context(), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.CourseListResponse{
		Courses:    courses,
		Pagination: info,
	}))
}

// GetCourse returns one course with its prerequisites resolved
// @Summary Get course details
// @Tags courses
// @Produce json
// @Param id path string true "Course number (case-insensitive)"
// @Success 200 {object} dto.APIResponse{data=dto.CourseDetail}
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	course, err := c.catalogService.GetCourse(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(course))
}

// LoadCatalog replaces the catalog with the contents of a course file
// @Summary Load a course file
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.LoadCatalogRequest true "Course file path, relative to the catalog directory"
// @Success 201 {object} dto.APIResponse{data=dto.LoadSummary}
// @Failure 400 {object} dto.ErrorResponse "File unavailable"
// @Failure 403 {object} dto.ErrorResponse "Path outside the catalog directory"
// @Failure 422 {object} dto.ErrorResponse "File rejected"
// @Router /catalog/load [post]
func (c *CourseController) LoadCatalog(ctx *gin.Context) {
	value, _ := ctx.Get(middleware.ValidatedBodyKey)
	req, ok := value.(*dto.LoadCatalogRequest)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("load request was not validated"))
		return
	}

	path, err := source.ResolveWithin(c.catalogDir, req.Path)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	summary, err := c.catalogService.LoadFromFile(ctx.Request.Context(), path)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(summary))
}

// GetStats reports load metadata and bucket occupancy of the current catalog
// @Summary Catalog statistics
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.CatalogStats}
// @Router /catalog/stats [get]
func (c *CourseController) GetStats(ctx *gin.Context) {
	stats, err := c.catalogService.Stats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(stats))
}
