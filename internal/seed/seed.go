// Package seed regenerates the four input files a fresh checkout
// needs, the way the original's initialization.hpp seeds prices.txt,
// marketdata.txt, trades.txt, and inquiries.txt before the pipeline
// runs. It is invoked only from cmd/seed, never from the core's own
// bootstrap, so cmd/treasurydesk keeps matching spec.md's "consumes
// four pre-existing files" framing.
package seed

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/wyfcoding/treasurydesk/internal/catalog"
)

var maturities = []int{2, 3, 5, 7, 10, 20, 30}

// Prices writes one synthetic price quote per catalog bond to w.
func Prices(w io.Writer, rng *rand.Rand) error {
	for _, years := range maturities {
		b, _ := catalog.FetchByMaturity(years)
		bidWhole := 95 + rng.Intn(10)
		bid32 := rng.Intn(32)
		offer32 := bid32 + 1
		offerWhole := bidWhole
		if offer32 >= 32 {
			offer32 -= 32
			offerWhole++
		}
		if _, err := fmt.Fprintf(w, "%s,%d-%02d0,%d-%02d0\n", b.ProductID, bidWhole, bid32, offerWhole, offer32); err != nil {
			return err
		}
	}
	return nil
}

// MarketData writes books worth of synthetic depth records (bookDepth
// BID then bookDepth OFFER per bond, repeated rounds times) to w.
func MarketData(w io.Writer, rng *rand.Rand, bookDepth, rounds int) error {
	for round := 0; round < rounds; round++ {
		for _, years := range maturities {
			b, _ := catalog.FetchByMaturity(years)
			base := 95 + rng.Intn(10)
			for i := 0; i < bookDepth; i++ {
				thirtySeconds := i
				qty := 1_000_000 * (i + 1)
				if _, err := fmt.Fprintf(w, "%s,%d-%02d0,%d,BID\n", b.ProductID, base, thirtySeconds, qty); err != nil {
					return err
				}
			}
			for i := 0; i < bookDepth; i++ {
				thirtySeconds := i
				qty := 1_000_000 * (i + 1)
				if _, err := fmt.Fprintf(w, "%s,%d-%02d0,%d,OFFER\n", b.ProductID, base+1, thirtySeconds, qty); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// Trades writes n synthetic trades to w, cycling through the three
// accounting books and picking each trade's side at random.
func Trades(w io.Writer, rng *rand.Rand, n int) error {
	books := []string{"TRSY1", "TRSY2", "TRSY3"}
	sides := []string{"BUY", "SELL"}
	for i := 0; i < n; i++ {
		years := maturities[rng.Intn(len(maturities))]
		b, _ := catalog.FetchByMaturity(years)
		price := fmt.Sprintf("%d-%02d0", 95+rng.Intn(10), rng.Intn(32))
		book := books[i%len(books)]
		side := sides[rng.Intn(len(sides))]
		qty := 250_000 * (1 + rng.Intn(8))
		if _, err := fmt.Fprintf(w, "%s,T%04d,%s,%s,%d,%s\n", b.ProductID, i+1, price, book, qty, side); err != nil {
			return err
		}
	}
	return nil
}

// Inquiries writes n synthetic customer inquiries to w, all starting
// in RECEIVED state.
func Inquiries(w io.Writer, rng *rand.Rand, n int) error {
	sides := []string{"BUY", "SELL"}
	for i := 0; i < n; i++ {
		years := maturities[rng.Intn(len(maturities))]
		b, _ := catalog.FetchByMaturity(years)
		price := fmt.Sprintf("%d-%02d0", 95+rng.Intn(10), rng.Intn(32))
		side := sides[rng.Intn(len(sides))]
		qty := 500_000 * (1 + rng.Intn(4))
		if _, err := fmt.Fprintf(w, "INQ%04d,%s,%s,%d,%s,RECEIVED\n", i+1, b.ProductID, side, qty, price); err != nil {
			return err
		}
	}
	return nil
}
