package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/skyops/airline-backoffice/internal/repository"
)

// ApplyPromotion handles POST /apply_promotion.  The code is looked up,
// its expiration date checked, and the discount staged on the caller's
// server-held session for the next booking to consume.
func (h *UserHandler) ApplyPromotion(c echo.Context) error {
	sessionID, ok := c.Get("session_id").(uint64)
	if !ok || sessionID == 0 {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body struct {
		PromoCode string `json:"promo_code"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	code := strings.TrimSpace(body.PromoCode)
	if code == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "promo_code is required"})
	}

	promo, err := h.PromotionRepo.GetByCode(c.Request().Context(), code)
	if err != nil {
		if errors.Is(err, repository.ErrPromoNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Invalid promotion code!"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	// expiration is a date string; the code stops working strictly after
	// that date begins
	exp, err := time.Parse("2006-01-02", promo.ExpirationDate)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "invalid stored expiration date"})
	}
	if time.Now().UTC().After(exp) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Promotion has expired!"})
	}

	if err := h.SessionRepo.StageDiscount(c.Request().Context(), sessionID, promo.Discount); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid session"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to apply promotion"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":  fmt.Sprintf("Promotion applied! Discount: %g%%", promo.Discount),
		"discount": promo.Discount,
	})
}
