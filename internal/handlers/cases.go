package handlers

import (
	"errors"
	"net/http"

	"vdms/internal/cases"
	"vdms/internal/models"

	"github.com/labstack/echo/v4"
)

// CasesHandler lists persisted case ids, newest first
// @Summary List resolution cases
// @Description Returns the ids of all persisted resolution cases
// @Tags cases
// @Produce json
// @Success 200 {object} models.CasesResponse
// @Failure 500 {object} models.CasesResponse
// @Router /api/cases [get]
func CasesHandler(repo *cases.Repository) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := repo.List()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.CasesResponse{
				Error: "Failed to list cases",
			})
		}

		ids := make([]string, 0, len(list))
		for _, rc := range list {
			ids = append(ids, rc.Analysis.CaseID)
		}

		return c.JSON(http.StatusOK, models.CasesResponse{
			Success: true,
			CaseIDs: ids,
		})
	}
}

// CaseHandler reads one persisted case by case id
// @Summary Get a resolution case
// @Description Returns a single persisted resolution case document
// @Tags cases
// @Produce json
// @Param id path string true "Case id"
// @Success 200 {object} models.ResolutionCase
// @Failure 404 {object} map[string]string
// @Router /api/cases/{id} [get]
func CaseHandler(repo *cases.Repository) echo.HandlerFunc {
	return func(c echo.Context) error {
		rc, err := repo.Get(c.Param("id"))
		if errors.Is(err, cases.ErrCaseNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Case not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to read case"})
		}

		return c.JSON(http.StatusOK, rc)
	}
}
