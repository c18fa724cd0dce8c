package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ViewLogs handles GET /admin/logs. Every audit row comes back oldest
// first, unfiltered and unpaginated.
func (h *AdminHandler) ViewLogs(c echo.Context) error {
	items, err := h.LogRepo.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}
