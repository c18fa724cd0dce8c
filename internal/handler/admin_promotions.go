package handler // handler package contains admin promotion handlers

import (
    "errors"   // errors is used for sentinel comparisons
    "fmt"      // fmt formats audit detail strings
    "net/http" // http provides status code constants
    "strings"  // strings offers trimming utilities

    "github.com/labstack/echo/v4" // echo is the web framework used for handlers

    "github.com/skyops/airline-backoffice/internal/model"      // model holds database row types
    "github.com/skyops/airline-backoffice/internal/repository" // repository holds database access
)

// AddPromotion handles POST /admin/promotions and creates a new promotion code
func (h *AdminHandler) AddPromotion(c echo.Context) error { // begin AddPromotion handler
    adminID, err := getUserID(c) // extract the admin ID from context
    if err != nil { // check if the user ID was not available or invalid
        return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"}) // respond with unauthorized when user ID cannot be obtained
    }
    var body struct { // anonymous struct to bind incoming JSON
        Code           string  `json:"code"`            // Code is the unique promotion code
        Discount       float64 `json:"discount"`        // Discount is the percentage taken off a booking
        ExpirationDate string  `json:"expiration_date"` // ExpirationDate is a date string in YYYY-MM-DD form
    }
    if err := c.Bind(&body); err != nil { // attempt to bind the request body into the struct
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"}) // return bad request when binding fails
    }
    code := strings.TrimSpace(body.Code)            // trim spaces around the promotion code
    expiration := strings.TrimSpace(body.ExpirationDate) // trim spaces around the expiration date
    if code == "" || expiration == "" { // both code and expiration must be present
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "code and expiration_date are required"}) // respond with error when a field is empty
    }
    promo := &model.Promotion{ // instantiate a new promotion model
        Code:           code,            // assign the trimmed code
        Discount:       body.Discount,   // assign the discount percentage
        ExpirationDate: expiration,      // assign the expiration date string as given
    }
    if err := h.PromotionRepo.Create(c.Request().Context(), promo); err != nil { // delegate creation to the repository
        if errors.Is(err, repository.ErrPromoCodeExists) { // check for the duplicate code sentinel
            return c.JSON(http.StatusConflict, map[string]string{"error": "Promotion code already exists!"}) // respond with conflict when the code is not unique
        }
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not create promotion"}) // respond with internal error for other failures
    }
    _ = h.LogRepo.Insert(c.Request().Context(), adminID, "Added Promotion", fmt.Sprintf("Code: %s, Discount: %g%%", promo.Code, promo.Discount)) // append the audit entry, best effort
    return c.JSON(http.StatusCreated, map[string]any{ // return 201 with the flash-style message and the created row
        "message":   "Promotion added successfully!", // success message shown to the admin
        "promotion": promo,                           // created promotion including its generated ID
    })
}

// ListPromotions handles GET /admin/promotions and returns every promotion, expired ones included
func (h *AdminHandler) ListPromotions(c echo.Context) error { // begin ListPromotions handler
    items, err := h.PromotionRepo.ListAll(c.Request().Context()) // fetch all promotions unfiltered
    if err != nil { // handle repository errors
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"}) // respond with internal server error
    }
    return c.JSON(http.StatusOK, map[string]any{"items": items}) // return the list wrapped in a JSON object
}
