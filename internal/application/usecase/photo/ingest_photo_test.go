package photo

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumekit/resumekit/internal/store"
	"github.com/resumekit/resumekit/pkg/logger"
)

func encodedPNG(t *testing.T, w, h int) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return &buf
}

func TestIngestPhoto_CropAndMerge(t *testing.T) {
	docStore := store.New()
	uc := NewIngestPhotoUseCase(docStore, nil, logger.NewZapLogger("test"))

	out, err := uc.Execute(context.Background(), IngestPhotoInput{
		File:  encodedPNG(t, 10, 10),
		CropX: 2, CropY: 2, CropW: 4, CropH: 4,
	})
	require.NoError(t, err)

	const prefix = "data:image/png;base64,"
	require.True(t, strings.HasPrefix(out.DataURI, prefix))

	raw, err := base64.StdEncoding.DecodeString(out.DataURI[len(prefix):])
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 4, img.Bounds().Dx())
	assert.Equal(t, 4, img.Bounds().Dy())

	assert.Equal(t, out.DataURI, docStore.Snapshot().PersonalInfo.ProfilePhoto)
}

func TestIngestPhoto_CropClampedToBounds(t *testing.T) {
	docStore := store.New()
	uc := NewIngestPhotoUseCase(docStore, nil, logger.NewZapLogger("test"))

	// Rectangle hangs over the right edge; the overlap is kept.
	out, err := uc.Execute(context.Background(), IngestPhotoInput{
		File:  encodedPNG(t, 10, 10),
		CropX: 8, CropY: 0, CropW: 6, CropH: 10,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.DataURI)
}

func TestIngestPhoto_RejectsBadInput(t *testing.T) {
	docStore := store.New()
	uc := NewIngestPhotoUseCase(docStore, nil, logger.NewZapLogger("test"))

	_, err := uc.Execute(context.Background(), IngestPhotoInput{
		File: strings.NewReader("not an image"),
	})
	assert.Error(t, err)

	// Crop fully outside the image.
	_, err = uc.Execute(context.Background(), IngestPhotoInput{
		File:  encodedPNG(t, 10, 10),
		CropX: 50, CropY: 50, CropW: 4, CropH: 4,
	})
	assert.Error(t, err)

	// Neither failure touches the document.
	assert.Empty(t, docStore.Snapshot().PersonalInfo.ProfilePhoto)
}
