package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"vdms/internal/cases"
	"vdms/internal/knowledge"
	"vdms/internal/models"
	"vdms/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVendorsHandler(t *testing.T) {
	rec := performGet(t, VendorsHandler(store.NewSeedStore()), "/api/vendors")

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.VendorsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Vendors, 3)
	assert.Equal(t, "VENDOR-001", resp.Vendors[0].ID)
	assert.Equal(t, "TechSupply Co.", resp.Vendors[0].Name)
	assert.Equal(t, "billing@techsupply.com", resp.Vendors[0].Email)
}

func TestSampleEmailsHandler(t *testing.T) {
	rec := performGet(t, SampleEmailsHandler(), "/api/sample-emails")

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.SampleEmailsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Emails, 3)
	assert.Equal(t, "EMAIL-001", resp.Emails[0].ID)
	assert.Equal(t, "VENDOR-001", resp.Emails[0].VendorID)
	assert.Contains(t, resp.Emails[0].Body, "INV-2024-0004")
	assert.Contains(t, resp.Emails[1].Subject, "OSI-INV-521")
	assert.Contains(t, resp.Emails[2].Body, "fuel surcharge")
}

func savedCase(t *testing.T, repo *cases.Repository, caseID string) {
	t.Helper()
	require.NoError(t, repo.Save(&models.ResolutionCase{
		ID:       "rc-" + caseID,
		Dispute:  models.Dispute{CaseID: caseID, CreatedAt: time.Now()},
		Analysis: models.DisputeAnalysis{CaseID: caseID},
		Status:   models.CaseDrafted,
	}))
}

func TestCasesHandler(t *testing.T) {
	repo, err := cases.NewRepository(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)
	savedCase(t, repo, "CASE-1-AAAAAA")
	savedCase(t, repo, "CASE-2-BBBBBB")

	rec := performGet(t, CasesHandler(repo), "/api/cases")

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.CasesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.CaseIDs, 2)
	assert.Contains(t, resp.CaseIDs, "CASE-1-AAAAAA")
	assert.Contains(t, resp.CaseIDs, "CASE-2-BBBBBB")
}

func TestCaseHandler(t *testing.T) {
	repo, err := cases.NewRepository(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)
	savedCase(t, repo, "CASE-1-AAAAAA")

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/cases/CASE-1-AAAAAA", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("CASE-1-AAAAAA")

	require.NoError(t, CaseHandler(repo)(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var rc models.ResolutionCase
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rc))
	assert.Equal(t, "CASE-1-AAAAAA", rc.Analysis.CaseID)
}

func TestCaseHandler_NotFound(t *testing.T) {
	repo, err := cases.NewRepository(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/cases/CASE-MISSING", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("CASE-MISSING")

	require.NoError(t, CaseHandler(repo)(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestKnowledgeQueryHandler(t *testing.T) {
	searcher := &staticSearcher{answer: "Late fee is 1.5% per month"}
	retriever := knowledge.NewRetriever(searcher, 5, zerolog.Nop())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/knowledge/query",
		strings.NewReader(`{"invoiceNumber":"INV-2024-0004","question":"What are the late fee terms?"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, KnowledgeQueryHandler(retriever)(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.KnowledgeQueryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Late fee is 1.5% per month", resp.Answer)
}

func TestKnowledgeQueryHandler_MissingQuestion(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/knowledge/query", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, KnowledgeQueryHandler(nil)(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

type staticSearcher struct {
	answer string
}

func (s *staticSearcher) Search(_ context.Context, _ string, _ int) (*knowledge.SearchResult, error) {
	return &knowledge.SearchResult{Answer: s.answer, TotalResults: 1}, nil
}
