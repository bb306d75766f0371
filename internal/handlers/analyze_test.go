package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"vdms/internal/agent"
	"vdms/internal/cases"
	"vdms/internal/llm"
	"vdms/internal/models"
	"vdms/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePipeline struct {
	err       error
	lastEmail *models.Email
}

func (f *fakePipeline) ProcessEmail(_ context.Context, email *models.Email, _, _, _ string) (*agent.ProcessResult, error) {
	f.lastEmail = email
	if f.err != nil {
		return nil, f.err
	}

	analysis := models.DisputeAnalysis{
		CaseID:            "CASE-1700000000000-TEST01",
		VendorID:          email.VendorID,
		InitialAnalysis:   "full narrative",
		Confidence:        models.ConfidenceHigh,
		RecommendedAction: models.ActionApprovePayment,
		Reasoning:         "invoice is pending",
		DraftResponse:     "Dear vendor,",
		RequiredApprovals: []string{"Finance Manager", "Department Head"},
	}
	return &agent.ProcessResult{
		ResolutionCase: &models.ResolutionCase{
			ID:       "rc-1",
			VendorID: email.VendorID,
			Dispute:  models.Dispute{CaseID: analysis.CaseID, CreatedAt: time.Now()},
			Analysis: analysis,
			Status:   models.CaseDrafted,
		},
		EmailAnalysis: "full narrative",
	}, nil
}

func performAnalyze(t *testing.T, pipeline *fakePipeline, body string) (*httptest.ResponseRecorder, *cases.Repository) {
	t.Helper()
	repo, err := cases.NewRepository(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := AnalyzeHandler(store.NewSeedStore(), pipeline, repo, zerolog.Nop())
	require.NoError(t, handler(c))
	return rec, repo
}

func TestAnalyzeHandler_Success(t *testing.T) {
	pipeline := &fakePipeline{}
	rec, repo := performAnalyze(t, pipeline,
		`{"vendorId":"VENDOR-001","subject":"Invoice INV-2024-0004","body":"We are owed $2,000"}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "CASE-1700000000000-TEST01", resp.CaseID)
	assert.Equal(t, "TechSupply Co.", resp.VendorName)
	require.NotNil(t, resp.Analysis)
	assert.Equal(t, models.ActionApprovePayment, resp.Analysis.Recommendation)
	assert.Equal(t, []string{"Finance Manager", "Department Head"}, resp.Analysis.RequiredApprovals)
	assert.Equal(t, "full narrative", resp.FullAnalysis)

	// The submitted email is attributed to the vendor record.
	require.NotNil(t, pipeline.lastEmail)
	assert.Equal(t, "billing@techsupply.com", pipeline.lastEmail.From)
	assert.Equal(t, "VENDOR-001", pipeline.lastEmail.VendorID)

	// The drafted case is persisted.
	saved, err := repo.Get("CASE-1700000000000-TEST01")
	require.NoError(t, err)
	assert.Equal(t, models.CaseDrafted, saved.Status)
}

func TestAnalyzeHandler_MissingFields(t *testing.T) {
	rec, _ := performAnalyze(t, &fakePipeline{}, `{"vendorId":"VENDOR-001"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "Missing required fields")
}

func TestAnalyzeHandler_UnknownVendor(t *testing.T) {
	rec, _ := performAnalyze(t, &fakePipeline{},
		`{"vendorId":"VENDOR-999","subject":"s","body":"b"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp models.AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "Vendor not found: VENDOR-999")
}

func TestAnalyzeHandler_ExtractionFailure(t *testing.T) {
	pipeline := &fakePipeline{err: &agent.ExtractionError{RawOutput: "not json"}}
	rec, _ := performAnalyze(t, pipeline,
		`{"vendorId":"VENDOR-001","subject":"s","body":"b"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestAnalyzeHandler_GenerationFailure(t *testing.T) {
	pipeline := &fakePipeline{err: llm.ErrGeneration}
	rec, _ := performAnalyze(t, pipeline,
		`{"vendorId":"VENDOR-001","subject":"s","body":"b"}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
