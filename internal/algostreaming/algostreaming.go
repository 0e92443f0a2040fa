// Package algostreaming turns a mid/spread Price tick into a
// two-sided quote with alternating visible/hidden size.
package algostreaming

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/wyfcoding/treasurydesk/internal/bond"
	"github.com/wyfcoding/treasurydesk/internal/pricenotation"
	"github.com/wyfcoding/treasurydesk/internal/pricing"
	"github.com/wyfcoding/treasurydesk/internal/substrate"
)

// Side tags which side of the book a PriceStreamOrder quotes.
type Side string

const (
	BID   Side = "BID"
	OFFER Side = "OFFER"
)

const oneMillion = 1_000_000

var two = decimal.NewFromInt(2)

// PriceStreamOrder is one side of a two-sided quote.
type PriceStreamOrder struct {
	Price           decimal.Decimal
	VisibleQuantity int64
	HiddenQuantity  int64
	Side            Side
}

// Fields renders a PriceStreamOrder for the historical sink.
func (o PriceStreamOrder) Fields() []string {
	return []string{pricenotation.Format(o.Price), strconv.FormatInt(o.VisibleQuantity, 10), strconv.FormatInt(o.HiddenQuantity, 10), string(o.Side)}
}

// Stream is the bid+offer pair produced for one product on one tick.
type Stream struct {
	Product    bond.Bond
	BidOrder   PriceStreamOrder
	OfferOrder PriceStreamOrder
}

// Fields renders Stream for the historical sink.
func (s Stream) Fields() []string {
	fields := []string{s.Product.ProductID}
	fields = append(fields, s.BidOrder.Fields()...)
	fields = append(fields, s.OfferOrder.Fields()...)
	return fields
}

// AlgoStream wraps the Stream the way AlgoExecutionOrder wraps an
// execution.Order, carrying the same product-keyed shape downstream.
type AlgoStream struct {
	Stream Stream
}

// Fields renders an AlgoStream for the historical sink.
func (a AlgoStream) Fields() []string {
	fields := []string{a.Stream.Product.ProductID}
	fields = append(fields, a.Stream.BidOrder.Fields()...)
	fields = append(fields, a.Stream.OfferOrder.Fields()...)
	return fields
}

// Service computes an AlgoStream per inbound Price and fans it out,
// storing the latest value per productId.
type Service struct {
	*substrate.Service[string, AlgoStream]
	count int
}

// New constructs an empty AlgoStreamingService.
func New() *Service {
	return &Service{Service: substrate.NewService[string, AlgoStream]()}
}

// ProcessAdd implements substrate.Listener for the Pricing edge.
func (s *Service) ProcessAdd(p pricing.Price) {
	s.onPrice(p)
}

func (s *Service) ProcessRemove(pricing.Price) {}
func (s *Service) ProcessUpdate(pricing.Price) {}

func (s *Service) onPrice(p pricing.Price) {
	half := p.BidOfferSpread.Div(two)
	bidPrice := p.Mid.Sub(half)
	offerPrice := p.Mid.Add(half)

	visible := int64((s.count%2 + 1)) * oneMillion
	hidden := 2 * visible
	s.count++

	stream := Stream{
		Product: p.Product,
		BidOrder: PriceStreamOrder{
			Price: bidPrice, VisibleQuantity: visible, HiddenQuantity: hidden, Side: BID,
		},
		OfferOrder: PriceStreamOrder{
			Price: offerPrice, VisibleQuantity: visible, HiddenQuantity: hidden, Side: OFFER,
		},
	}
	algoStream := AlgoStream{Stream: stream}
	s.Set(p.Product.ProductID, algoStream)
	s.FanOut(algoStream)
}
