package algoexecution_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/wyfcoding/treasurydesk/internal/algoexecution"
	"github.com/wyfcoding/treasurydesk/internal/catalog"
	"github.com/wyfcoding/treasurydesk/internal/execution"
	"github.com/wyfcoding/treasurydesk/internal/marketdata"
	"github.com/wyfcoding/treasurydesk/internal/pricenotation"
)

type captureListener struct {
	orders []algoexecution.Order
}

func (c *captureListener) ProcessAdd(o algoexecution.Order) { c.orders = append(c.orders, o) }
func (c *captureListener) ProcessRemove(algoexecution.Order) {}
func (c *captureListener) ProcessUpdate(algoexecution.Order) {}

func mustParse(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := pricenotation.Parse(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return d
}

func TestS2WideSpreadNoEmission(t *testing.T) {
	b, _ := catalog.FetchByMaturity(2)
	book := marketdata.OrderBook{
		Product: b,
		BidStack: []marketdata.Order{
			{Price: mustParse(t, "99-31+"), Quantity: 1_000_000, Side: marketdata.BID},
			{Price: mustParse(t, "99-300"), Quantity: 2_000_000, Side: marketdata.BID},
		},
		OfferStack: []marketdata.Order{
			{Price: mustParse(t, "100-000"), Quantity: 1_000_000, Side: marketdata.OFFER},
			{Price: mustParse(t, "100-010"), Quantity: 2_000_000, Side: marketdata.OFFER},
		},
	}

	svc := algoexecution.New()
	sink := &captureListener{}
	svc.AddListener(sink)
	svc.AlgoExecute(book, algoexecution.BROKERTEC)

	assert.Empty(t, sink.orders, "spread 1/64 must not cross the 1/128 gate")
}

func TestS3TightSpreadAlternates(t *testing.T) {
	b, _ := catalog.FetchByMaturity(2)
	crossedBook := marketdata.OrderBook{
		Product: b,
		BidStack: []marketdata.Order{
			{Price: mustParse(t, "99-31+"), Quantity: 1_000_000, Side: marketdata.BID},
		},
		OfferStack: []marketdata.Order{
			{Price: mustParse(t, "99-31+"), Quantity: 2_000_000, Side: marketdata.OFFER},
		},
	}

	svc := algoexecution.New()
	sink := &captureListener{}
	svc.AddListener(sink)

	svc.AlgoExecute(crossedBook, algoexecution.BROKERTEC)
	svc.AlgoExecute(crossedBook, algoexecution.BROKERTEC)

	if assert.Len(t, sink.orders, 2) {
		assert.Equal(t, execution.BID, sink.orders[0].Order.Side, "first eligible emission must hit BID")
		assert.Equal(t, execution.OFFER, sink.orders[1].Order.Side, "second eligible emission must lift OFFER")
	}
}

func TestAlternationBalancesWithinOne(t *testing.T) {
	b, _ := catalog.FetchByMaturity(2)
	crossedBook := marketdata.OrderBook{
		Product: b,
		BidStack: []marketdata.Order{
			{Price: mustParse(t, "99-31+"), Quantity: 1_000_000, Side: marketdata.BID},
		},
		OfferStack: []marketdata.Order{
			{Price: mustParse(t, "99-31+"), Quantity: 2_000_000, Side: marketdata.OFFER},
		},
	}

	svc := algoexecution.New()
	sink := &captureListener{}
	svc.AddListener(sink)

	const runs = 7
	for i := 0; i < runs; i++ {
		svc.AlgoExecute(crossedBook, algoexecution.BROKERTEC)
	}

	var bids, offers int
	for _, o := range sink.orders {
		if o.Order.Side == execution.BID {
			bids++
		} else {
			offers++
		}
	}
	diff := bids - offers
	if diff < 0 {
		diff = -diff
	}
	assert.LessOrEqual(t, diff, 1)
}
