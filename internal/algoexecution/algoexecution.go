// Package algoexecution implements the spread-gated, alternating
// crossing strategy that converts a resting OrderBook into a MARKET
// child order.
package algoexecution

import (
	"github.com/shopspring/decimal"

	"github.com/wyfcoding/treasurydesk/internal/execution"
	"github.com/wyfcoding/treasurydesk/internal/marketdata"
	"github.com/wyfcoding/treasurydesk/internal/substrate"

	"github.com/google/uuid"
)

// Market is the venue a child order is routed to.
type Market string

const (
	BROKERTEC Market = "BROKERTEC"
	ESPEED    Market = "ESPEED"
	CME       Market = "CME"
)

// oneOneTwentyEighth is the maximum crossable spread, 1/128 of a
// dollar.
var oneOneTwentyEighth = decimal.NewFromInt(1).Div(decimal.NewFromInt(128))

// Order wraps an execution.Order with the venue it was routed to.
type Order struct {
	Order  execution.Order
	Market Market
}

// Service watches incoming order books and emits a crossing child
// order whenever the spread is tight enough. It never stores its
// output (spec.md §4.3: "do not store"), so it does not embed
// substrate.Service; it only needs the listener list half of that
// contract.
type Service struct {
	listeners []substrate.Listener[Order]
	count     int
}

// New constructs an empty AlgoExecutionService.
func New() *Service {
	return &Service{}
}

// AddListener registers a downstream subscriber for generated orders.
func (s *Service) AddListener(l substrate.Listener[Order]) {
	s.listeners = append(s.listeners, l)
}

// ProcessAdd implements substrate.Listener for the MarketData edge:
// every inbound OrderBook triggers an AlgoExecute attempt at the
// default venue.
func (s *Service) ProcessAdd(book marketdata.OrderBook) {
	s.AlgoExecute(book, BROKERTEC)
}

func (s *Service) ProcessRemove(marketdata.OrderBook) {}
func (s *Service) ProcessUpdate(marketdata.OrderBook) {}

// AlgoExecute runs the spread-gate and alternation algorithm against
// book, routing any resulting order to market.
func (s *Service) AlgoExecute(book marketdata.OrderBook, market Market) {
	bo := marketdata.BestBidOffer(book)
	if bo.Absent {
		return
	}
	if bo.Offer.Price.Sub(bo.Bid.Price).GreaterThan(oneOneTwentyEighth) {
		return
	}

	var side execution.Side
	var price decimal.Decimal
	var quantity int64
	if s.count%2 == 0 {
		side = execution.BID
		price = bo.Bid.Price
		quantity = bo.Bid.Quantity
	} else {
		side = execution.OFFER
		price = bo.Offer.Price
		quantity = bo.Offer.Quantity
	}
	s.count++

	order := Order{
		Order: execution.Order{
			Product:         book.Product,
			Side:            side,
			OrderID:         uuid.New().String(),
			OrderType:       execution.Market,
			Price:           price,
			VisibleQuantity: quantity,
			HiddenQuantity:  0,
			ParentOrderID:   "",
			IsChildOrder:    false,
		},
		Market: market,
	}
	for _, l := range s.listeners {
		l.ProcessAdd(order)
	}
}
