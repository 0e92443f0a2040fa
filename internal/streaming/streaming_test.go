package streaming_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/wyfcoding/treasurydesk/internal/algostreaming"
	"github.com/wyfcoding/treasurydesk/internal/bond"
	"github.com/wyfcoding/treasurydesk/internal/streaming"
)

type captureListener struct {
	streams []algostreaming.Stream
}

func (c *captureListener) ProcessAdd(s algostreaming.Stream)   { c.streams = append(c.streams, s) }
func (c *captureListener) ProcessRemove(algostreaming.Stream) {}
func (c *captureListener) ProcessUpdate(algostreaming.Stream) {}

func TestProcessAddFansOutTwice(t *testing.T) {
	svc := streaming.New()
	sink := &captureListener{}
	svc.AddListener(sink)

	product := bond.Bond{ProductID: "X"}
	stream := algostreaming.Stream{
		Product:    product,
		BidOrder:   algostreaming.PriceStreamOrder{Price: decimal.NewFromInt(99), Side: algostreaming.BID},
		OfferOrder: algostreaming.PriceStreamOrder{Price: decimal.NewFromInt(100), Side: algostreaming.OFFER},
	}

	svc.ProcessAdd(algostreaming.AlgoStream{Stream: stream})

	assert.Len(t, sink.streams, 2, "downstream must see each stream twice, per the preserved double-fan-out")
	assert.Equal(t, stream, svc.GetData("X"))
}
