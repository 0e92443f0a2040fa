// Package position aggregates booked trades into per-product,
// per-book positions.
package position

import (
	"strconv"

	"github.com/wyfcoding/treasurydesk/internal/bond"
	"github.com/wyfcoding/treasurydesk/internal/substrate"
	"github.com/wyfcoding/treasurydesk/internal/tradebooking"
)

// Position is the signed quantity held per book for one product.
type Position struct {
	Product bond.Bond
	Books   map[string]int64
}

// Fields renders Position for the historical sink: productId followed
// by aggregate position.
func (p Position) Fields() []string {
	return []string{p.Product.ProductID, strconv.FormatInt(p.GetAggregatePosition(), 10)}
}

// AddPosition applies a signed trade quantity to book: BUY adds,
// SELL subtracts.
func (p *Position) AddPosition(book string, quantity int64, side tradebooking.Side) {
	if p.Books == nil {
		p.Books = make(map[string]int64)
	}
	switch side {
	case tradebooking.BUY:
		p.Books[book] += quantity
	case tradebooking.SELL:
		p.Books[book] -= quantity
	}
}

// GetAggregatePosition sums the signed quantity across every book.
func (p Position) GetAggregatePosition() int64 {
	var total int64
	for _, qty := range p.Books {
		total += qty
	}
	return total
}

// Service stores the current Position per productId and recomputes it
// on every booked trade.
type Service struct {
	*substrate.Service[string, Position]
}

// New constructs an empty PositionService.
func New() *Service {
	return &Service{Service: substrate.NewService[string, Position]()}
}

// OnMessage stores position by productId. It does not fan out:
// AddTrade is the only path that advances the Position→Risk edge.
func (s *Service) OnMessage(p Position) {
	s.Set(p.Product.ProductID, p)
}

// AddTrade folds trade into the stored Position for its product,
// default-constructing one if absent, then fans the update out.
func (s *Service) AddTrade(trade tradebooking.Trade) {
	p, ok := s.Lookup(trade.Product.ProductID)
	if !ok {
		p.Product = trade.Product
	}
	p.AddPosition(trade.Book, trade.Quantity, trade.Side)
	s.Set(trade.Product.ProductID, p)
	s.FanOut(p)
}

// ProcessAdd implements substrate.Listener for the TradeBooking edge.
func (s *Service) ProcessAdd(trade tradebooking.Trade) {
	s.AddTrade(trade)
}

func (s *Service) ProcessRemove(tradebooking.Trade) {}
func (s *Service) ProcessUpdate(tradebooking.Trade) {}
