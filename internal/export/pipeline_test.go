package export

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	_ "image/jpeg"
	"image/png"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumekit/resumekit/internal/domain/document"
	"github.com/resumekit/resumekit/internal/page"
	"github.com/resumekit/resumekit/internal/template"
)

func samplePage(t *testing.T) *template.Page {
	t.Helper()
	doc := document.Default()
	doc.PersonalInfo.FullName = "Ada Lovelace"
	doc.PersonalInfo.JobTitle = "Engineer"
	doc.Skills = []document.Skill{{ID: "s1", Name: "Go", Level: 4}}
	pg := template.Render(doc)
	return &pg
}

func TestExport_NoRenderTargetFails(t *testing.T) {
	p, err := NewPipeline(1)
	require.NoError(t, err)

	artifact, err := p.Export(context.Background(), nil, "Ada")

	assert.Nil(t, artifact)
	assert.Equal(t, StageFailed, p.Stage())
	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, StageCapturing, stageErr.Stage)
}

func TestExport_FullRunProducesPDFArtifact(t *testing.T) {
	p, err := NewPipeline(1)
	require.NoError(t, err)

	artifact, err := p.Export(context.Background(), samplePage(t), "Ada Lovelace")
	require.NoError(t, err)
	require.NotNil(t, artifact)

	assert.Equal(t, StageDone, p.Stage())
	assert.Equal(t, "Ada Lovelace.pdf", artifact.Filename)
	assert.Equal(t, "application/pdf", artifact.ContentType)
	assert.True(t, bytes.HasPrefix(artifact.Data, []byte("%PDF")))
	// The page size declaration must carry the exact A4 dimensions.
	assert.Contains(t, string(artifact.Data), "MediaBox")
}

func TestExport_FreshAttemptAfterTerminalStage(t *testing.T) {
	p, err := NewPipeline(1)
	require.NoError(t, err)

	_, err = p.Export(context.Background(), nil, "")
	require.Error(t, err)
	assert.Equal(t, StageFailed, p.Stage())

	// A new export starts over from Idle and can succeed.
	artifact, err := p.Export(context.Background(), samplePage(t), "")
	require.NoError(t, err)
	assert.Equal(t, StageDone, p.Stage())
	assert.Equal(t, "CV.pdf", artifact.Filename)
}

func TestRasterize_PixelSizeMatchesPageAspect(t *testing.T) {
	r, err := NewRasterizer(2)
	require.NoError(t, err)

	img, err := r.Rasterize(context.Background(), samplePage(t))
	require.NoError(t, err)

	wantW, wantH := page.PixelSize(2)
	bounds := img.Bounds()
	assert.Equal(t, wantW, bounds.Dx())
	assert.Equal(t, wantH, bounds.Dy())

	ratio := float64(bounds.Dx()) / float64(bounds.Dy())
	assert.InDelta(t, page.AspectRatio, ratio, 0.001)
}

func TestEncodeJPEG_RoundTripPreservesAspect(t *testing.T) {
	r, err := NewRasterizer(1)
	require.NoError(t, err)
	img, err := r.Rasterize(context.Background(), samplePage(t))
	require.NoError(t, err)

	data, err := encodeJPEG(img)
	require.NoError(t, err)

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.InDelta(t, page.AspectRatio, float64(cfg.Width)/float64(cfg.Height), 0.001)
}

func TestRasterize_WhiteBackground(t *testing.T) {
	r, err := NewRasterizer(1)
	require.NoError(t, err)

	empty := &template.Page{}
	img, err := r.Rasterize(context.Background(), empty)
	require.NoError(t, err)

	r8, g8, b8, _ := img.At(10, 10).RGBA()
	assert.Equal(t, uint32(0xffff), r8)
	assert.Equal(t, uint32(0xffff), g8)
	assert.Equal(t, uint32(0xffff), b8)
}

func TestRasterize_DataURIPhotoAndFallback(t *testing.T) {
	r, err := NewRasterizer(1)
	require.NoError(t, err)

	// A real embedded photo.
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))))
	dataURI := "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())

	pg := &template.Page{}
	pg.Elements = append(pg.Elements,
		template.Image{X: 10, Y: 10, W: 20, H: 20, Src: dataURI},
		// An unloadable source must degrade to the initials fallback,
		// not abort the capture.
		template.Image{X: 40, Y: 10, W: 20, H: 20, Src: "bogus", Initials: "AL", BackFill: template.RGB{R: 100, G: 100, B: 100}},
	)

	_, err = r.Rasterize(context.Background(), pg)
	assert.NoError(t, err)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "Ada Lovelace.pdf", Filename("Ada Lovelace"))
	assert.Equal(t, "CV.pdf", Filename(""))
	assert.Equal(t, "CV.pdf", Filename("   "))
}

func TestPrinter_ComposeVectorPDF(t *testing.T) {
	artifact, err := Printer{}.Compose(samplePage(t), "Ada Lovelace")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace.pdf", artifact.Filename)
	assert.True(t, bytes.HasPrefix(artifact.Data, []byte("%PDF")))

	_, err = Printer{}.Compose(nil, "Ada")
	assert.Error(t, err)
}

func TestExport_OverlappingRequestsSerialize(t *testing.T) {
	p, err := NewPipeline(1)
	require.NoError(t, err)
	pg := samplePage(t)

	// One pipeline instance is shared by every request; overlapping
	// exports must all succeed, one after the other.
	const parallel = 4
	errs := make([]error, parallel)
	artifacts := make([]*Artifact, parallel)

	var wg sync.WaitGroup
	for i := 0; i < parallel; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			artifacts[i], errs[i] = p.Export(context.Background(), pg, "Ada Lovelace")
		}(i)
	}
	wg.Wait()

	for i := 0; i < parallel; i++ {
		require.NoError(t, errs[i])
		require.NotNil(t, artifacts[i])
		assert.True(t, bytes.HasPrefix(artifacts[i].Data, []byte("%PDF")))
	}
	assert.Equal(t, StageDone, p.Stage())
}

func TestTransition_RejectsInvalidJump(t *testing.T) {
	p, err := NewPipeline(1)
	require.NoError(t, err)

	assert.Error(t, p.transition(StageEncoding))
	assert.Error(t, p.transition(StageDone))
	require.NoError(t, p.transition(StageCapturing))
	assert.Error(t, p.transition(StageDone))
}
