package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	photoUC "github.com/resumekit/resumekit/internal/application/usecase/photo"
	"github.com/resumekit/resumekit/pkg/apperror"
	"github.com/resumekit/resumekit/pkg/logger"
)

type PhotoHandler struct {
	ingestUseCase *photoUC.IngestPhotoUseCase
	logger        logger.Logger
}

func NewPhotoHandler(uc *photoUC.IngestPhotoUseCase, log logger.Logger) *PhotoHandler {
	return &PhotoHandler{ingestUseCase: uc, logger: log}
}

// UploadPhoto takes a multipart image plus a crop rectangle in source
// pixels (crop_x, crop_y, crop_w, crop_h form fields).
func (h *PhotoHandler) UploadPhoto(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.NewInvalidInput("missing 'file' form field", err))
		return
	}

	cropX, err1 := strconv.Atoi(c.PostForm("crop_x"))
	cropY, err2 := strconv.Atoi(c.PostForm("crop_y"))
	cropW, err3 := strconv.Atoi(c.PostForm("crop_w"))
	cropH, err4 := strconv.Atoi(c.PostForm("crop_h"))
	for _, e := range []error{err1, err2, err3, err4} {
		if e != nil {
			c.Error(apperror.NewInvalidInput("crop_x, crop_y, crop_w, crop_h must be integers", e))
			return
		}
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.NewInternal("failed to open uploaded file", err))
		return
	}
	defer file.Close()

	input := photoUC.IngestPhotoInput{
		File:  file,
		CropX: cropX, CropY: cropY, CropW: cropW, CropH: cropH,
	}
	output, err := h.ingestUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile_photo": output.DataURI})
}
