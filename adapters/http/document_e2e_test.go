package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	photoUC "github.com/resumekit/resumekit/internal/application/usecase/photo"
	"github.com/resumekit/resumekit/internal/export"
	"github.com/resumekit/resumekit/internal/store"
	"github.com/resumekit/resumekit/pkg/logger"
)

// The document API suite runs fully in memory: no Postgres, Redis or
// Kafka. Handlers with missing optional collaborators must degrade, not
// crash.
// recordingCache counts autosave clears so tests can observe the reset
// path without a Redis server.
type recordingCache struct {
	clears int
}

func (c *recordingCache) Clear(ctx context.Context) { c.clears++ }

type DocumentE2ETestSuite struct {
	suite.Suite
	Router *gin.Engine
	Store  *store.DocumentStore
	Cache  *recordingCache
}

func (s *DocumentE2ETestSuite) SetupTest() {
	appLogger := logger.NewZapLogger("development")

	s.Store = store.New()
	s.Cache = &recordingCache{}
	pipeline, err := export.NewPipeline(1)
	require.NoError(s.T(), err)

	documentHandler := NewDocumentHandler(s.Store, nil, s.Cache, appLogger)
	exportHandler := NewExportHandler(s.Store, pipeline, nil, appLogger)
	photoHandler := NewPhotoHandler(photoUC.NewIngestPhotoUseCase(s.Store, nil, appLogger), appLogger)

	gin.SetMode(gin.TestMode)
	s.Router = NewRouter(documentHandler, exportHandler, photoHandler, appLogger)
}

func TestDocumentE2E(t *testing.T) {
	suite.Run(t, new(DocumentE2ETestSuite))
}

func (s *DocumentE2ETestSuite) doJSON(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(s.T(), err)
		reader = bytes.NewBuffer(data)
	} else {
		reader = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)
	return rr
}

func (s *DocumentE2ETestSuite) Test_Editing_Flow() {
	rr := s.doJSON(http.MethodPut, "/api/document/personal-info", gin.H{
		"full_name": "Ada Lovelace",
		"job_title": "Engineer",
	})
	assert.Equal(s.T(), http.StatusOK, rr.Code)

	rr = s.doJSON(http.MethodPost, "/api/document/work-experience", gin.H{
		"company":    "Analytical Engines Ltd",
		"position":   "Lead",
		"start_date": "Jan 2020",
		"end_date":   "Dec 2021",
		"current":    true,
	})
	assert.Equal(s.T(), http.StatusCreated, rr.Code)

	var created map[string]any
	require.NoError(s.T(), json.Unmarshal(rr.Body.Bytes(), &created))
	assert.NotEmpty(s.T(), created["id"])
	// current=true overrides whatever end date was sent.
	assert.Equal(s.T(), "Present", created["end_date"])

	// Out-of-range proficiency is clamped, not rejected.
	rr = s.doJSON(http.MethodPost, "/api/document/skills", gin.H{"name": "Go", "level": 9})
	assert.Equal(s.T(), http.StatusCreated, rr.Code)
	var skill map[string]any
	require.NoError(s.T(), json.Unmarshal(rr.Body.Bytes(), &skill))
	assert.EqualValues(s.T(), 5, skill["level"])

	rr = s.doJSON(http.MethodPut, "/api/document/template", gin.H{"template": "creative"})
	assert.Equal(s.T(), http.StatusOK, rr.Code)

	rr = s.doJSON(http.MethodGet, "/api/document", nil)
	assert.Equal(s.T(), http.StatusOK, rr.Code)

	var doc DocumentDTO
	require.NoError(s.T(), json.Unmarshal(rr.Body.Bytes(), &doc))
	assert.Equal(s.T(), "Ada Lovelace", doc.PersonalInfo.FullName)
	assert.Len(s.T(), doc.WorkExperience, 1)
	assert.Len(s.T(), doc.Skills, 1)
	assert.Equal(s.T(), "creative", doc.Template)
}

func (s *DocumentE2ETestSuite) Test_Partial_PersonalInfo_Merge() {
	s.doJSON(http.MethodPut, "/api/document/personal-info", gin.H{
		"full_name": "Ada Lovelace",
		"email":     "ada@example.com",
	})
	// A later patch that only mentions email keeps the name.
	rr := s.doJSON(http.MethodPut, "/api/document/personal-info", gin.H{"email": ""})
	assert.Equal(s.T(), http.StatusOK, rr.Code)

	snapshot := s.Store.Snapshot()
	assert.Equal(s.T(), "Ada Lovelace", snapshot.PersonalInfo.FullName)
	assert.Empty(s.T(), snapshot.PersonalInfo.Email)
}

func (s *DocumentE2ETestSuite) Test_Remove_UnknownID_IsSilent() {
	s.doJSON(http.MethodPost, "/api/document/education", gin.H{"institution": "MIT"})
	before := s.Store.Snapshot()

	rr := s.doJSON(http.MethodDelete, "/api/document/education/no-such-id", nil)
	assert.Equal(s.T(), http.StatusOK, rr.Code)
	assert.Equal(s.T(), before, s.Store.Snapshot())
}

func (s *DocumentE2ETestSuite) Test_Invalid_JSON_Rejected() {
	req := httptest.NewRequest(http.MethodPut, "/api/document/personal-info", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)
	assert.Equal(s.T(), http.StatusBadRequest, rr.Code)

	rr = s.doJSON(http.MethodPost, "/api/document/skills", gin.H{"level": 3})
	assert.Equal(s.T(), http.StatusBadRequest, rr.Code)
}

func (s *DocumentE2ETestSuite) Test_Reset_RestoresDefaults() {
	s.doJSON(http.MethodPut, "/api/document/personal-info", gin.H{"full_name": "Ada"})
	s.doJSON(http.MethodPost, "/api/document/skills", gin.H{"name": "Go", "level": 3})

	rr := s.doJSON(http.MethodPost, "/api/document/reset", nil)
	assert.Equal(s.T(), http.StatusOK, rr.Code)

	var doc DocumentDTO
	require.NoError(s.T(), json.Unmarshal(rr.Body.Bytes(), &doc))
	assert.Empty(s.T(), doc.PersonalInfo.FullName)
	assert.Empty(s.T(), doc.Skills)
	assert.Equal(s.T(), "modern", doc.Template)

	// An explicit reset also drops the autosave entry, so a restart
	// cannot resurrect the old session.
	assert.Equal(s.T(), 1, s.Cache.clears)
}

func (s *DocumentE2ETestSuite) Test_Export_PDF_Download() {
	s.doJSON(http.MethodPut, "/api/document/personal-info", gin.H{"full_name": "Ada Lovelace"})

	rr := s.doJSON(http.MethodPost, "/api/export/pdf", nil)
	assert.Equal(s.T(), http.StatusOK, rr.Code)
	assert.Equal(s.T(), "application/pdf", rr.Header().Get("Content-Type"))
	assert.Contains(s.T(), rr.Header().Get("Content-Disposition"), "Ada Lovelace.pdf")
	assert.True(s.T(), bytes.HasPrefix(rr.Body.Bytes(), []byte("%PDF")))
}

func (s *DocumentE2ETestSuite) Test_Export_Print_Download() {
	rr := s.doJSON(http.MethodPost, "/api/export/print", nil)
	assert.Equal(s.T(), http.StatusOK, rr.Code)
	assert.Equal(s.T(), "application/pdf", rr.Header().Get("Content-Type"))
	// Blank name falls back to the generic filename.
	assert.Contains(s.T(), rr.Header().Get("Content-Disposition"), "CV.pdf")
	assert.True(s.T(), bytes.HasPrefix(rr.Body.Bytes(), []byte("%PDF")))
}

func (s *DocumentE2ETestSuite) Test_Save_Without_Repository() {
	rr := s.doJSON(http.MethodPost, "/api/document/save", nil)
	assert.Equal(s.T(), http.StatusInternalServerError, rr.Code)
}
