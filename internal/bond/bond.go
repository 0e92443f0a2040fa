// Package bond holds the Bond value type shared by every domain
// service. A Bond is always passed and stored by value: the original
// held products by reference, which left default construction
// ill-defined (spec.md §9); a plain struct has none of that problem.
package bond

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bond is the sole product type this core ever instantiates.
type Bond struct {
	ProductID    string // CUSIP
	IDType       string
	Ticker       string
	Coupon       decimal.Decimal
	MaturityDate time.Time
}

// IsZero reports whether b is the default-constructed Bond returned
// for an unknown or never-seen product.
func (b Bond) IsZero() bool {
	return b.ProductID == ""
}
