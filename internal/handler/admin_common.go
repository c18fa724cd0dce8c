package handler // handler defines http handlers

import (
    "errors"  // errors provides sentinel values used in getUserID
    "strconv" // strconv converts strings to numeric types

    "github.com/labstack/echo/v4" // echo defines request context types

    "github.com/skyops/airline-backoffice/internal/repository" // repository holds data access layer
)

// AdminHandler bundles repositories for the administrative back office
type AdminHandler struct {
    FlightRepo      *repository.FlightRepo      // FlightRepo provides flight persistence including the archive move
    PassengerRepo   *repository.PassengerRepo   // PassengerRepo provides booking records for the overview
    UserRepo        *repository.UserRepo        // UserRepo provides account counts for the dashboard
    PromotionRepo   *repository.PromotionRepo   // PromotionRepo provides promotion persistence
    TransactionRepo *repository.TransactionRepo // TransactionRepo provides the revenue ledger
    LogRepo         *repository.LogRepo         // LogRepo provides the audit trail
}

// NewAdminHandler constructs a new AdminHandler and panics if any dependency is nil
func NewAdminHandler(flightRepo *repository.FlightRepo, passengerRepo *repository.PassengerRepo, userRepo *repository.UserRepo, promotionRepo *repository.PromotionRepo, transactionRepo *repository.TransactionRepo, logRepo *repository.LogRepo) *AdminHandler { // create a new handler with its repositories
    if flightRepo == nil || passengerRepo == nil || userRepo == nil || promotionRepo == nil || transactionRepo == nil || logRepo == nil { // check for nil dependencies
        panic("nil repository passed to NewAdminHandler") // panic when a repository is missing
    }
    return &AdminHandler{ // return a pointer to the new handler
        FlightRepo:      flightRepo,      // assign flight repository
        PassengerRepo:   passengerRepo,   // assign passenger repository
        UserRepo:        userRepo,        // assign user repository
        PromotionRepo:   promotionRepo,   // assign promotion repository
        TransactionRepo: transactionRepo, // assign transaction repository
        LogRepo:         logRepo,         // assign log repository
    }
}

// getUserID extracts the user_id from echo.Context and converts it to uint64
func getUserID(c echo.Context) (uint64, error) { // begin getUserID helper
    v := c.Get("user_id") // fetch user_id from context
    switch t := v.(type) { // perform type switch on the value
    case uint64: // when already uint64
        return t, nil // return directly
    case int: // when stored as int
        return uint64(t), nil // convert to uint64
    case int64: // when stored as int64
        return uint64(t), nil // convert to uint64
    case float64: // when stored as float64
        return uint64(t), nil // convert to uint64
    case string: // when stored as string
        if n, err := strconv.ParseUint(t, 10, 64); err == nil { // parse string to uint64
            return n, nil // return parsed number
        }
    } // end type switch
    return 0, errors.New("invalid user_id in context") // return error if value is missing or invalid
}
