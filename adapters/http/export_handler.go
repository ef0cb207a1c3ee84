package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/resumekit/resumekit/adapters/event"
	"github.com/resumekit/resumekit/internal/export"
	"github.com/resumekit/resumekit/internal/store"
	"github.com/resumekit/resumekit/internal/template"
	"github.com/resumekit/resumekit/pkg/apperror"
	"github.com/resumekit/resumekit/pkg/logger"
)

// ExportHandler exposes the two download paths: the raster pipeline
// (bitmap capture embedded in a PDF) and the direct print path (vector
// composition of the same layout).
type ExportHandler struct {
	store       *store.DocumentStore
	pipeline    *export.Pipeline
	printer     export.Printer
	kafkaClient *event.KafkaProducerClient // nil when Kafka is not configured
	logger      logger.Logger
}

func NewExportHandler(s *store.DocumentStore, p *export.Pipeline, k *event.KafkaProducerClient, log logger.Logger) *ExportHandler {
	return &ExportHandler{
		store:       s,
		pipeline:    p,
		printer:     export.Printer{},
		kafkaClient: k,
		logger:      log,
	}
}

func (h *ExportHandler) ExportPDF(c *gin.Context) {
	doc := h.store.Snapshot()
	pg := template.Render(doc)

	artifact, err := h.pipeline.Export(c.Request.Context(), &pg, doc.PersonalInfo.FullName)
	if err != nil {
		stage := string(h.pipeline.Stage())
		var stageErr *export.StageError
		if errors.As(err, &stageErr) {
			stage = string(stageErr.Stage)
		}
		h.publishExportEvent(event.ExportEventTypeFailed, stage, "", 0)
		c.Error(apperror.NewExportFailed(stage, err))
		return
	}

	h.publishExportEvent(event.ExportEventTypeCompleted, string(export.StageDone), artifact.Filename, len(artifact.Data))
	writeArtifact(c, artifact)
}

func (h *ExportHandler) ExportPrint(c *gin.Context) {
	doc := h.store.Snapshot()
	pg := template.Render(doc)

	artifact, err := h.printer.Compose(&pg, doc.PersonalInfo.FullName)
	if err != nil {
		h.publishExportEvent(event.ExportEventTypeFailed, "printing", "", 0)
		c.Error(apperror.NewExportFailed("printing", err))
		return
	}

	h.publishExportEvent(event.ExportEventTypeCompleted, "printed", artifact.Filename, len(artifact.Data))
	writeArtifact(c, artifact)
}

func writeArtifact(c *gin.Context, artifact *export.Artifact) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	c.Data(http.StatusOK, artifact.ContentType, artifact.Data)
}

func (h *ExportHandler) publishExportEvent(eventType, stage, filename string, size int) {
	if h.kafkaClient == nil {
		return
	}
	go func() {
		payload := event.ExportEventPayload{
			EventType: eventType,
			Stage:     stage,
			Filename:  filename,
			SizeBytes: size,
			At:        time.Now().UTC(),
		}
		if err := h.kafkaClient.PublishExportEvent(context.Background(), payload); err != nil {
			h.logger.Error("Failed to publish Kafka export event", err, zap.String("event_type", eventType))
		}
	}()
}
