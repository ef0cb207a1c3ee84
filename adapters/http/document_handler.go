package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/resumekit/resumekit/internal/domain/document"
	"github.com/resumekit/resumekit/internal/store"
	"github.com/resumekit/resumekit/pkg/apperror"
	"github.com/resumekit/resumekit/pkg/logger"
)

// AutosaveCache drops the session autosave entry; satisfied by
// persistence.SnapshotCache.
type AutosaveCache interface {
	Clear(ctx context.Context)
}

// DocumentHandler is the editing layer's REST surface over the document
// store. Validation of shape happens here at the edge; the store itself
// admits whatever it is given.
type DocumentHandler struct {
	store  *store.DocumentStore
	repo   document.Repository // nil when Postgres is not configured
	cache  AutosaveCache       // nil when Redis is not configured
	logger logger.Logger
}

func NewDocumentHandler(s *store.DocumentStore, repo document.Repository, cache AutosaveCache, log logger.Logger) *DocumentHandler {
	return &DocumentHandler{store: s, repo: repo, cache: cache, logger: log}
}

func (h *DocumentHandler) GetDocument(c *gin.Context) {
	c.JSON(http.StatusOK, ToDocumentDTO(h.store.Snapshot()))
}

func (h *DocumentHandler) UpdatePersonalInfo(c *gin.Context) {
	var req UpdatePersonalInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for personal info update", err))
		return
	}
	h.store.UpdatePersonalInfo(req.ToDomainPatch())
	c.JSON(http.StatusOK, ToDocumentDTO(h.store.Snapshot()))
}

func (h *DocumentHandler) AddEducation(c *gin.Context) {
	var req EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for education record", err))
		return
	}
	created := h.store.AddEducation(req.ToDomain(""))
	c.JSON(http.StatusCreated, created)
}

func (h *DocumentHandler) UpdateEducation(c *gin.Context) {
	var req EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for education record", err))
		return
	}
	h.store.UpdateEducation(req.ToDomain(c.Param("id")))
	c.JSON(http.StatusOK, ToDocumentDTO(h.store.Snapshot()))
}

func (h *DocumentHandler) RemoveEducation(c *gin.Context) {
	h.store.RemoveEducation(c.Param("id"))
	c.JSON(http.StatusOK, ToDocumentDTO(h.store.Snapshot()))
}

func (h *DocumentHandler) AddWorkExperience(c *gin.Context) {
	var req WorkExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for work experience record", err))
		return
	}
	created := h.store.AddWorkExperience(req.ToDomain(""))
	c.JSON(http.StatusCreated, created)
}

func (h *DocumentHandler) UpdateWorkExperience(c *gin.Context) {
	var req WorkExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for work experience record", err))
		return
	}
	h.store.UpdateWorkExperience(req.ToDomain(c.Param("id")))
	c.JSON(http.StatusOK, ToDocumentDTO(h.store.Snapshot()))
}

func (h *DocumentHandler) RemoveWorkExperience(c *gin.Context) {
	h.store.RemoveWorkExperience(c.Param("id"))
	c.JSON(http.StatusOK, ToDocumentDTO(h.store.Snapshot()))
}

func (h *DocumentHandler) AddSkill(c *gin.Context) {
	var req SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for skill record", err))
		return
	}
	created := h.store.AddSkill(req.ToDomain(""))
	if created.ID == "" {
		// Blank names are silently dropped by the store.
		c.JSON(http.StatusOK, ToDocumentDTO(h.store.Snapshot()))
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *DocumentHandler) UpdateSkill(c *gin.Context) {
	var req SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for skill record", err))
		return
	}
	h.store.UpdateSkill(req.ToDomain(c.Param("id")))
	c.JSON(http.StatusOK, ToDocumentDTO(h.store.Snapshot()))
}

func (h *DocumentHandler) RemoveSkill(c *gin.Context) {
	h.store.RemoveSkill(c.Param("id"))
	c.JSON(http.StatusOK, ToDocumentDTO(h.store.Snapshot()))
}

// SetTemplate accepts any selector string; an unrecognized one is kept
// and falls back to the default variant at render time.
func (h *DocumentHandler) SetTemplate(c *gin.Context) {
	var req SetTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for template selection", err))
		return
	}
	h.store.SetTemplate(document.Template(req.Template))
	c.JSON(http.StatusOK, ToDocumentDTO(h.store.Snapshot()))
}

// Reset restores the default document and drops the autosave entry, so
// a restart after an explicit reset does not resurrect the old session.
func (h *DocumentHandler) Reset(c *gin.Context) {
	h.store.Reset()
	if h.cache != nil {
		h.cache.Clear(c.Request.Context())
	}
	c.JSON(http.StatusOK, ToDocumentDTO(h.store.Snapshot()))
}

func (h *DocumentHandler) SaveSnapshot(c *gin.Context) {
	if h.repo == nil {
		c.Error(apperror.NewInternal("no snapshot repository configured", nil))
		return
	}
	doc := h.store.Snapshot()
	if err := h.repo.Save(c.Request.Context(), &doc); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}

func (h *DocumentHandler) RestoreSnapshot(c *gin.Context) {
	if h.repo == nil {
		c.Error(apperror.NewInternal("no snapshot repository configured", nil))
		return
	}
	doc, err := h.repo.Load(c.Request.Context())
	if err != nil {
		if errors.Is(err, document.ErrSnapshotNotFound) {
			c.Error(apperror.NewNotFound("document snapshot", "current"))
			return
		}
		c.Error(err)
		return
	}
	h.store.Restore(*doc)
	c.JSON(http.StatusOK, ToDocumentDTO(h.store.Snapshot()))
}
