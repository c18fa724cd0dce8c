package model

// Promotion is a discount code as stored in the `promotions` table.
// ExpirationDate is a "2006-01-02" date string; redemption parses it
// and rejects codes whose date is strictly in the past.  There is no
// update or delete path.
//
// Fields:
//  ID             – primary key identifier.
//  Code           – unique redemption code.
//  Discount       – percentage taken off the ticket price.
//  ExpirationDate – last day the code is valid, as a date string.
type Promotion struct {
    ID             uint64  // promotions.promo_id
    Code           string  // promotions.code
    Discount       float64 // promotions.discount
    ExpirationDate string  // promotions.expiration_date
}
