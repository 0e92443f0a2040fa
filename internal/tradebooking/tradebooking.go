// Package tradebooking books trades, both forwarded directly from
// trades.txt and synthesized from upstream ExecutionOrders via
// deterministic round-robin book assignment.
package tradebooking

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/wyfcoding/treasurydesk/internal/bond"
	"github.com/wyfcoding/treasurydesk/internal/catalog"
	"github.com/wyfcoding/treasurydesk/internal/execution"
	"github.com/wyfcoding/treasurydesk/internal/ingest"
	"github.com/wyfcoding/treasurydesk/internal/pricenotation"
	"github.com/wyfcoding/treasurydesk/internal/substrate"
)

// Side is the booked side of a trade.
type Side string

const (
	BUY  Side = "BUY"
	SELL Side = "SELL"
)

// Trade is a single booked fill.
type Trade struct {
	Product  bond.Bond
	TradeID  string
	Price    decimal.Decimal
	Book     string
	Quantity int64
	Side     Side
}

// Fields renders Trade for the historical sink.
func (t Trade) Fields() []string {
	return []string{t.Product.ProductID, t.TradeID, pricenotation.Format(t.Price), t.Book, strconv.FormatInt(t.Quantity, 10), string(t.Side)}
}

// Service stores the current Trade by tradeId and synthesizes new
// trades from upstream ExecutionOrders via round-robin book
// assignment.
type Service struct {
	*substrate.Service[string, Trade]
	bookCounter int
}

// New constructs an empty TradeBookingService.
func New() *Service {
	return &Service{Service: substrate.NewService[string, Trade]()}
}

// OnMessage stores trade by tradeId and fans out to listeners.
func (s *Service) OnMessage(trade Trade) {
	s.Set(trade.TradeID, trade)
	s.FanOut(trade)
}

// BookTrade fans trade out to listeners again without storing it,
// the counterpart of ExecutionService's double-fan-out preserved for
// synthesized trades.
func (s *Service) BookTrade(trade Trade) {
	s.FanOut(trade)
}

// ProcessAdd implements substrate.Listener for the ExecutionOrder
// edge: it synthesizes a Trade with a round-robin book assignment
// and pushes it through both fan-out paths.
func (s *Service) ProcessAdd(order execution.Order) {
	s.bookCounter++
	book := bookForCount(s.bookCounter)

	var side Side
	switch order.Side {
	case execution.BID:
		side = SELL
	case execution.OFFER:
		side = BUY
	}

	trade := Trade{
		Product:  order.Product,
		TradeID:  order.OrderID,
		Price:    order.Price,
		Book:     book,
		Quantity: order.VisibleQuantity + order.HiddenQuantity,
		Side:     side,
	}
	s.OnMessage(trade)
	s.BookTrade(trade)
}

func (s *Service) ProcessRemove(execution.Order) {}
func (s *Service) ProcessUpdate(execution.Order) {}

// bookForCount reproduces the round-robin off-by-one preserved from
// the original (spec.md §9): the counter is incremented before the
// modulo check, so the emitted sequence is TRSY2, TRSY3, TRSY1, ...
// rather than starting at TRSY1.
func bookForCount(count int) string {
	switch count % 3 {
	case 1:
		return "TRSY2"
	case 2:
		return "TRSY3"
	default:
		return "TRSY1"
	}
}

// Connector subscribes a trades.txt-formatted stream and delivers
// each row directly to a Service via OnMessage.
type Connector struct {
	service *Service
}

// NewConnector builds a subscribe-only connector bound to service.
func NewConnector(service *Service) *Connector {
	return &Connector{service: service}
}

// Subscribe reads CSV records of the form
// productId,tradeId,price,book,quantity,side from r, one per line.
func (c *Connector) Subscribe(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		row := scanner.Text()
		if strings.TrimSpace(row) == "" {
			continue
		}
		fields := strings.Split(row, ",")
		if len(fields) != 6 {
			ingest.LogSkip(ingest.MalformedRecordError{Line: line, Raw: row, Cause: fmt.Errorf("expected 6 fields, got %d", len(fields))})
			continue
		}
		productID := fields[0]
		b, ok := catalog.FetchByCUSIP(productID)
		if !ok {
			ingest.LogSkip(ingest.UnknownProductError{ProductID: productID})
			continue
		}
		price, err := pricenotation.Parse(fields[2])
		if err != nil {
			ingest.LogSkip(ingest.MalformedRecordError{Line: line, Raw: row, Cause: err})
			continue
		}
		quantity, err := strconv.ParseInt(fields[4], 10, 64)
		if err != nil {
			ingest.LogSkip(ingest.MalformedRecordError{Line: line, Raw: row, Cause: err})
			continue
		}
		side := Side(fields[5])
		if side != BUY && side != SELL {
			ingest.LogSkip(ingest.MalformedRecordError{Line: line, Raw: row, Cause: fmt.Errorf("unknown side %q", fields[5])})
			continue
		}
		c.service.OnMessage(Trade{
			Product:  b,
			TradeID:  fields[1],
			Price:    price,
			Book:     fields[3],
			Quantity: quantity,
			Side:     side,
		})
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("tradebooking: subscribe: %w", err)
	}
	return nil
}
