package photo

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/resumekit/resumekit/internal/application/service"
	"github.com/resumekit/resumekit/internal/domain/document"
	"github.com/resumekit/resumekit/internal/store"
	"github.com/resumekit/resumekit/pkg/apperror"
	"github.com/resumekit/resumekit/pkg/logger"
)

// IngestPhotoUseCase accepts an uploaded image plus a crop rectangle,
// crops and re-encodes it as a PNG data URI, and merges the result into
// the document's profile photo. The original upload is archived through
// the uploader when one is configured.
type IngestPhotoUseCase struct {
	store    *store.DocumentStore
	uploader service.Uploader
	logger   logger.Logger
}

func NewIngestPhotoUseCase(s *store.DocumentStore, u service.Uploader, log logger.Logger) *IngestPhotoUseCase {
	return &IngestPhotoUseCase{store: s, uploader: u, logger: log}
}

type IngestPhotoInput struct {
	File io.Reader
	// Crop rectangle in source image pixels.
	CropX, CropY, CropW, CropH int
}

type IngestPhotoOutput struct {
	// DataURI is the cropped photo as stored in the document.
	DataURI string
}

func (uc *IngestPhotoUseCase) Execute(ctx context.Context, input IngestPhotoInput) (*IngestPhotoOutput, error) {
	raw, err := io.ReadAll(input.File)
	if err != nil {
		return nil, apperror.NewInvalidInput("failed to read uploaded photo", err)
	}

	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, apperror.NewInvalidInput("uploaded photo is not a decodable image", err)
	}

	cropped, err := crop(src, image.Rect(input.CropX, input.CropY, input.CropX+input.CropW, input.CropY+input.CropH))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, cropped); err != nil {
		return nil, apperror.NewInternal("failed to encode cropped photo", err)
	}
	dataURI := "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())

	uc.store.UpdatePersonalInfo(document.PersonalInfoPatch{ProfilePhoto: &dataURI})

	if uc.uploader != nil {
		publicID := uuid.NewString()
		go func() {
			_, err := uc.uploader.Upload(context.Background(), bytes.NewReader(raw), "resumekit/photos/originals", publicID)
			if err != nil {
				uc.logger.Warn("Failed to archive original photo upload", zap.String("public_id", publicID), zap.Error(err))
			}
		}()
	}

	return &IngestPhotoOutput{DataURI: dataURI}, nil
}

// crop cuts the rectangle out of src, clamped to the source bounds.
func crop(src image.Image, rect image.Rectangle) (image.Image, error) {
	rect = rect.Intersect(src.Bounds())
	if rect.Empty() {
		return nil, apperror.NewInvalidInput("crop rectangle falls outside the image", nil)
	}
	out := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Draw(out, out.Bounds(), src, rect.Min, draw.Src)
	return out, nil
}
