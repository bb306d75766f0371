package handlers

import (
	"net/http"

	"vdms/internal/models"
	"vdms/internal/store"

	"github.com/labstack/echo/v4"
)

// VendorsHandler serves the vendor directory
// @Summary List vendors
// @Description Returns the known vendors with their contact details
// @Tags vendors
// @Produce json
// @Success 200 {object} models.VendorsResponse
// @Failure 500 {object} models.VendorsResponse
// @Router /api/vendors [get]
func VendorsHandler(st store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		vendors, err := st.Vendors(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.VendorsResponse{
				Error: "Failed to fetch vendors",
			})
		}

		summaries := make([]models.VendorSummary, 0, len(vendors))
		for _, v := range vendors {
			summaries = append(summaries, models.VendorSummary{
				ID:            v.ID,
				Name:          v.Name,
				Email:         v.Email,
				ContactPerson: v.ContactPerson,
			})
		}

		return c.JSON(http.StatusOK, models.VendorsResponse{
			Success: true,
			Vendors: summaries,
		})
	}
}
