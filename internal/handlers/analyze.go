package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"vdms/internal/agent"
	"vdms/internal/cases"
	"vdms/internal/llm"
	"vdms/internal/models"
	"vdms/internal/poller"
	"vdms/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// AnalyzeHandler runs the dispute pipeline synchronously for a
// hand-submitted email. Unlike the poller, failures surface to the
// caller: 404 for unknown vendors, 422 when extraction cannot parse the
// model output, 502 when generation itself fails.
// @Summary Analyze a vendor dispute email
// @Description Runs extraction, analysis and case assembly for a submitted email and persists the drafted case
// @Tags analyze
// @Accept json
// @Produce json
// @Param request body models.AnalyzeRequest true "Email to analyze"
// @Success 200 {object} models.AnalyzeResponse
// @Failure 400 {object} models.AnalyzeResponse
// @Failure 404 {object} models.AnalyzeResponse
// @Failure 422 {object} models.AnalyzeResponse
// @Failure 502 {object} models.AnalyzeResponse
// @Router /api/analyze [post]
func AnalyzeHandler(st store.Store, pipeline poller.Pipeline, repo *cases.Repository, logger zerolog.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.AnalyzeRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.AnalyzeResponse{
				Error: "Invalid request body",
			})
		}

		if req.VendorID == "" || req.Subject == "" || req.Body == "" {
			return c.JSON(http.StatusBadRequest, models.AnalyzeResponse{
				Error: "Missing required fields: vendorId, subject, body",
			})
		}

		ctx := c.Request().Context()
		logger.Info().Str("vendor_id", req.VendorID).Str("subject", req.Subject).Msg("Received email analysis request")

		vendor, err := st.VendorByID(ctx, req.VendorID)
		if err != nil {
			return c.JSON(http.StatusNotFound, models.AnalyzeResponse{
				Error: fmt.Sprintf("Vendor not found: %s", req.VendorID),
			})
		}

		contract, err := st.ContractByVendorID(ctx, req.VendorID)
		if err != nil {
			return c.JSON(http.StatusNotFound, models.AnalyzeResponse{
				Error: fmt.Sprintf("No contract found for vendor: %s", req.VendorID),
			})
		}

		history, err := st.PaymentHistory(ctx, req.VendorID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.AnalyzeResponse{
				Error: "Failed to load payment history",
			})
		}

		email := &models.Email{
			ID:         fmt.Sprintf("EMAIL-%d", time.Now().UnixMilli()),
			From:       vendor.Email,
			To:         "finance@company.com",
			Subject:    req.Subject,
			Body:       req.Body,
			ReceivedAt: time.Now(),
			VendorID:   vendor.ID,
		}

		result, err := pipeline.ProcessEmail(ctx, email,
			store.FormatVendorContext(vendor),
			store.FormatContractContext(contract),
			store.FormatPaymentHistory(vendor.ID, history))
		if err != nil {
			logger.Error().Err(err).Str("vendor_id", req.VendorID).Msg("Email analysis failed")

			status := http.StatusInternalServerError
			switch {
			case errors.Is(err, agent.ErrExtraction):
				status = http.StatusUnprocessableEntity
			case errors.Is(err, llm.ErrGeneration):
				status = http.StatusBadGateway
			}
			return c.JSON(status, models.AnalyzeResponse{
				Error: fmt.Sprintf("Failed to analyze email: %v", err),
			})
		}

		rc := result.ResolutionCase
		if err := repo.Save(rc); err != nil {
			logger.Error().Err(err).Str("case_id", rc.Analysis.CaseID).Msg("Failed to persist case")
			return c.JSON(http.StatusInternalServerError, models.AnalyzeResponse{
				Error: "Failed to persist case",
			})
		}

		return c.JSON(http.StatusOK, models.AnalyzeResponse{
			Success:    true,
			CaseID:     rc.Analysis.CaseID,
			VendorName: vendor.Name,
			Analysis: &models.AnalyzeSummary{
				Recommendation:    rc.Analysis.RecommendedAction,
				Confidence:        rc.Analysis.Confidence,
				Reasoning:         rc.Analysis.Reasoning,
				RequiredApprovals: rc.Analysis.RequiredApprovals,
			},
			DraftResponse: rc.Analysis.DraftResponse,
			FullAnalysis:  result.EmailAnalysis,
			CaseData:      rc,
		})
	}
}
