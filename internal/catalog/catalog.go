// Package catalog is the static seven-bond US Treasury universe this
// core trades. It is populated once at package init and never
// mutated afterward (spec.md §3: "immutable after creation").
package catalog

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wyfcoding/treasurydesk/internal/bond"
)

var (
	byMaturity = make(map[int]bond.Bond, 7)
	byCUSIP    = make(map[string]bond.Bond, 7)
)

func register(maturityYears int, cusip, ticker, coupon, maturity string) {
	b := bond.Bond{
		ProductID:    cusip,
		IDType:       "CUSIP",
		Ticker:       ticker,
		Coupon:       decimal.RequireFromString(coupon),
		MaturityDate: mustParse(maturity),
	}
	byMaturity[maturityYears] = b
	byCUSIP[cusip] = b
}

func mustParse(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func init() {
	register(2, "91282CFX4", "T 2Y", "4.000", "2024-11-30")
	register(3, "91282CFW6", "T 3Y", "3.875", "2025-11-15")
	register(5, "91282CFZ9", "T 5Y", "3.875", "2027-11-30")
	register(7, "91282CFY2", "T 7Y", "3.875", "2029-11-30")
	register(10, "91282CFV8", "T 10Y", "4.000", "2032-11-15")
	register(20, "912810TM0", "T 20Y", "4.375", "2042-11-30")
	register(30, "912810TL2", "T 30Y", "4.250", "2052-11-15")
}

// FetchByMaturity returns the bond with the given maturity in years
// and whether it exists in the catalog.
func FetchByMaturity(years int) (bond.Bond, bool) {
	b, ok := byMaturity[years]
	return b, ok
}

// FetchByCUSIP returns the bond with the given CUSIP and whether it
// exists in the catalog.
func FetchByCUSIP(cusip string) (bond.Bond, bool) {
	b, ok := byCUSIP[cusip]
	return b, ok
}
