package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/resumekit/resumekit/pkg/logger"
)

// NewRouter wires the full API surface. Shared between the server entry
// point and the end-to-end tests so the two never drift.
func NewRouter(
	documentHandler *DocumentHandler,
	exportHandler *ExportHandler,
	photoHandler *PhotoHandler,
	log logger.Logger,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(ErrorMiddleware(log))

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

		doc := api.Group("/document")
		{
			doc.GET("", documentHandler.GetDocument)
			doc.PUT("/personal-info", documentHandler.UpdatePersonalInfo)

			doc.POST("/education", documentHandler.AddEducation)
			doc.PUT("/education/:id", documentHandler.UpdateEducation)
			doc.DELETE("/education/:id", documentHandler.RemoveEducation)

			doc.POST("/work-experience", documentHandler.AddWorkExperience)
			doc.PUT("/work-experience/:id", documentHandler.UpdateWorkExperience)
			doc.DELETE("/work-experience/:id", documentHandler.RemoveWorkExperience)

			doc.POST("/skills", documentHandler.AddSkill)
			doc.PUT("/skills/:id", documentHandler.UpdateSkill)
			doc.DELETE("/skills/:id", documentHandler.RemoveSkill)

			doc.PUT("/template", documentHandler.SetTemplate)
			doc.POST("/reset", documentHandler.Reset)

			doc.POST("/photo", photoHandler.UploadPhoto)
			doc.POST("/save", documentHandler.SaveSnapshot)
			doc.POST("/restore", documentHandler.RestoreSnapshot)
		}

		export := api.Group("/export")
		{
			export.POST("/pdf", exportHandler.ExportPDF)
			export.POST("/print", exportHandler.ExportPrint)
		}
	}

	return router
}
