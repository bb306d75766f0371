package handlers

import (
	"net/http"

	"vdms/internal/knowledge"
	"vdms/internal/models"

	"github.com/labstack/echo/v4"
)

// KnowledgeQueryHandler answers ad-hoc contract questions against the
// knowledge base. Diagnostic endpoint; an empty answer means the backend
// is unconfigured or found nothing.
// @Summary Query contract terms
// @Description Asks the knowledge base a free-form question scoped to an invoice
// @Tags knowledge
// @Accept json
// @Produce json
// @Param request body models.KnowledgeQueryRequest true "Question to ask"
// @Success 200 {object} models.KnowledgeQueryResponse
// @Failure 400 {object} models.KnowledgeQueryResponse
// @Router /api/knowledge/query [post]
func KnowledgeQueryHandler(retriever *knowledge.Retriever) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.KnowledgeQueryRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.KnowledgeQueryResponse{
				Error: "Invalid request body",
			})
		}

		if req.Question == "" {
			return c.JSON(http.StatusBadRequest, models.KnowledgeQueryResponse{
				Error: "Missing required field: question",
			})
		}

		answer := ""
		if retriever != nil {
			answer = retriever.QueryTerms(c.Request().Context(), req.InvoiceNumber, req.Question)
		}

		return c.JSON(http.StatusOK, models.KnowledgeQueryResponse{
			Success: true,
			Answer:  answer,
		})
	}
}
