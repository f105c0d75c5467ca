package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/coursecatalog/internal/app/controllers"
	"github.com/yigit/coursecatalog/internal/app/models/dto"
	"github.com/yigit/coursecatalog/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	courseController *controllers.CourseController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// Course queries (public access)
	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.ListCourses)
		courses.GET("/:id", courseController.GetCourse)
	}

	catalog := v1.Group("/catalog")
	{
		catalog.GET("/stats", courseController.GetStats)

		adminProtected := catalog.Group("")
		adminProtected.Use(authMiddleware.AdminRequired())
		{
			adminProtected.POST("/load",
				middleware.ValidateBody[dto.LoadCatalogRequest](),
				courseController.LoadCatalog,
			)
		}
	}

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewSuccessResponse(gin.H{"status": "ok"}))
	})
}
