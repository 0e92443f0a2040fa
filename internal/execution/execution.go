// Package execution holds the ExecutionOrder artifact and the
// ExecutionService that stores and fans it out, preserving the
// upstream double-fan-out behavior described in spec.md §9.
package execution

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/wyfcoding/treasurydesk/internal/bond"
	"github.com/wyfcoding/treasurydesk/internal/pricenotation"
	"github.com/wyfcoding/treasurydesk/internal/substrate"
)

// Side is the pricing side an order was generated against.
type Side string

const (
	BID   Side = "BID"
	OFFER Side = "OFFER"
)

// OrderType is always MARKET in this core; the field exists because
// the original modeled it as an open enumeration.
type OrderType string

const Market OrderType = "MARKET"

// Order is a single child execution order: a resting quote's crossing
// fill generated by AlgoExecution. Streamed quotes use
// algostreaming.PriceStreamOrder instead.
type Order struct {
	Product         bond.Bond
	Side            Side
	OrderID         string
	OrderType       OrderType
	Price           decimal.Decimal
	VisibleQuantity int64
	HiddenQuantity  int64
	ParentOrderID   string
	IsChildOrder    bool
}

// Fields renders Order for the historical sink's formatted output.
func (o Order) Fields() []string {
	return []string{
		o.Product.ProductID,
		string(o.Side),
		o.OrderID,
		string(o.OrderType),
		pricenotation.Format(o.Price),
		strconv.FormatInt(o.VisibleQuantity, 10),
		strconv.FormatInt(o.HiddenQuantity, 10),
	}
}

// Service stores the current Order by productId (spec.md §9: keyed by
// productId, not orderId, per the original's latent key mismatch) and
// double-fans-out on receipt from its upstream AlgoExecution listener.
type Service struct {
	*substrate.Service[string, Order]
}

// New constructs an empty ExecutionService.
func New() *Service {
	return &Service{Service: substrate.NewService[string, Order]()}
}

// OnMessage stores order by productId and fans out to listeners.
func (s *Service) OnMessage(order Order) {
	s.Set(order.Product.ProductID, order)
	s.FanOut(order)
}

// ExecuteOrder fans order out to listeners again without storing it.
// Every caller that receives an AlgoExecutionOrder invokes both
// OnMessage and ExecuteOrder, so downstream listeners observe each
// order twice — preserved verbatim from the original.
func (s *Service) ExecuteOrder(order Order) {
	s.FanOut(order)
}

// Receive extracts the wrapped Order from an inbound AlgoExecution
// emission and drives both fan-out paths. Wired from algoexecution's
// listener list via substrate.ListenerFunc in cmd/treasurydesk, since
// importing algoexecution here would cycle back through Order.
func (s *Service) Receive(order Order) {
	s.OnMessage(order)
	s.ExecuteOrder(order)
}
