package algostreaming_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/wyfcoding/treasurydesk/internal/algostreaming"
	"github.com/wyfcoding/treasurydesk/internal/catalog"
	"github.com/wyfcoding/treasurydesk/internal/pricing"
)

type captureListener struct {
	streams []algostreaming.AlgoStream
}

func (c *captureListener) ProcessAdd(a algostreaming.AlgoStream) { c.streams = append(c.streams, a) }
func (c *captureListener) ProcessRemove(algostreaming.AlgoStream) {}
func (c *captureListener) ProcessUpdate(algostreaming.AlgoStream) {}

func TestVisibleQuantityAlternatesAndHiddenIsDoubled(t *testing.T) {
	b, _ := catalog.FetchByMaturity(2)
	svc := algostreaming.New()
	sink := &captureListener{}
	svc.AddListener(sink)

	price := pricing.Price{Product: b, Mid: decimal.NewFromInt(100), BidOfferSpread: decimal.NewFromFloat(0.03125)}
	svc.ProcessAdd(price)
	svc.ProcessAdd(price)

	if assert.Len(t, sink.streams, 2) {
		first := sink.streams[0].Stream
		second := sink.streams[1].Stream
		assert.EqualValues(t, 1_000_000, first.BidOrder.VisibleQuantity)
		assert.EqualValues(t, 2_000_000, first.BidOrder.HiddenQuantity)
		assert.EqualValues(t, 2_000_000, second.BidOrder.VisibleQuantity)
		assert.EqualValues(t, 4_000_000, second.BidOrder.HiddenQuantity)
	}
}

func TestS6QuoteStraddlesMid(t *testing.T) {
	b, _ := catalog.FetchByMaturity(2)
	svc := algostreaming.New()
	sink := &captureListener{}
	svc.AddListener(sink)

	// Price.BidOfferSpread of 1/32 here is the full top-of-book spread
	// used by the component formula's spread/2 half-offset; it
	// reproduces the literal 99-31+/100-00+ straddle spec.md §8 S6
	// names.
	price := pricing.Price{Product: b, Mid: decimal.NewFromInt(100), BidOfferSpread: decimal.NewFromFloat(0.03125)}
	svc.ProcessAdd(price)

	stream := sink.streams[0].Stream
	assert.True(t, stream.BidOrder.Price.Equal(decimal.NewFromFloat(99.984375)), "got %s", stream.BidOrder.Price)
	assert.True(t, stream.OfferOrder.Price.Equal(decimal.NewFromFloat(100.015625)), "got %s", stream.OfferOrder.Price)
}
