// Package marketdata aggregates depth messages into order books of a
// configured depth and derives best-bid/offer from them.
package marketdata

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/wyfcoding/treasurydesk/internal/bond"
	"github.com/wyfcoding/treasurydesk/internal/catalog"
	"github.com/wyfcoding/treasurydesk/internal/ingest"
	"github.com/wyfcoding/treasurydesk/internal/pricenotation"
	"github.com/wyfcoding/treasurydesk/internal/substrate"
)

// Side is a depth record's side of the book.
type Side string

const (
	BID   Side = "BID"
	OFFER Side = "OFFER"
)

// Order is a single resting price level.
type Order struct {
	Price    decimal.Decimal
	Quantity int64
	Side     Side
}

// OrderBook is the depth snapshot for one product, rebuilt from
// scratch on every batch of 2*bookDepth records.
type OrderBook struct {
	Product    bond.Bond
	BidStack   []Order
	OfferStack []Order
}

// BidOffer is the best bid and best offer derived from an OrderBook.
type BidOffer struct {
	Bid    Order
	Offer  Order
	Absent bool // true if either stack was empty
}

// BestBidOffer selects the highest-priced bid and lowest-priced offer
// in book, first occurrence winning ties. It is a pure function of
// the book so AlgoExecutionService can call it directly on a book it
// receives via listener, without reaching back into the service that
// produced it.
func BestBidOffer(book OrderBook) BidOffer {
	var bo BidOffer
	if len(book.BidStack) == 0 || len(book.OfferStack) == 0 {
		bo.Absent = true
		return bo
	}
	bo.Bid = book.BidStack[0]
	for _, o := range book.BidStack[1:] {
		if o.Price.GreaterThan(bo.Bid.Price) {
			bo.Bid = o
		}
	}
	bo.Offer = book.OfferStack[0]
	for _, o := range book.OfferStack[1:] {
		if o.Price.LessThan(bo.Offer.Price) {
			bo.Offer = o
		}
	}
	return bo
}

// aggregateStack collapses a stack so that each distinct price
// appears once, quantity summed, in first-seen order.
func aggregateStack(stack []Order) []Order {
	order := make([]string, 0, len(stack))
	byPrice := make(map[string]Order, len(stack))
	for _, o := range stack {
		key := o.Price.String()
		agg, ok := byPrice[key]
		if !ok {
			order = append(order, key)
			byPrice[key] = o
			continue
		}
		agg.Quantity += o.Quantity
		byPrice[key] = agg
	}
	out := make([]Order, 0, len(order))
	for _, key := range order {
		out = append(out, byPrice[key])
	}
	return out
}

// Service accumulates depth records into books of bookDepth per side
// and aggregates/serves them.
type Service struct {
	*substrate.Service[string, OrderBook]
	bookDepth int

	pending map[string]*accumulator
}

type accumulator struct {
	product bond.Bond
	bids    []Order
	offers  []Order
}

// New constructs a MarketDataService with the given per-side book
// depth (spec.md default is 10).
func New(bookDepth int) *Service {
	return &Service{
		Service:   substrate.NewService[string, OrderBook](),
		bookDepth: bookDepth,
		pending:   make(map[string]*accumulator),
	}
}

// OnMessage stores the inbound book by productId, overwriting any
// prior book, then fans out to listeners.
func (s *Service) OnMessage(book OrderBook) {
	s.Set(book.Product.ProductID, book)
	s.FanOut(book)
}

// AggregateDepth rewrites the stored book for productId so each stack
// holds one Order per distinct price, and returns the aggregated
// book. Calling it twice in a row without a new book arriving is a
// fixed point.
func (s *Service) AggregateDepth(productID string) OrderBook {
	book := s.GetData(productID)
	book.BidStack = aggregateStack(book.BidStack)
	book.OfferStack = aggregateStack(book.OfferStack)
	s.Set(productID, book)
	return book
}

// GetBestBidOffer derives the best bid/offer for the stored book at
// productId.
func (s *Service) GetBestBidOffer(productID string) BidOffer {
	return BestBidOffer(s.GetData(productID))
}

// AddRecord feeds one parsed depth record into the accumulation
// buffer for its product, flushing a completed book through OnMessage
// once bookDepth bids and bookDepth offers have been collected for
// that product. A record whose side is already full is dropped.
func (s *Service) AddRecord(productID string, price decimal.Decimal, quantity int64, side Side) {
	acc, ok := s.pending[productID]
	if !ok {
		b, found := catalog.FetchByCUSIP(productID)
		if !found {
			b = bond.Bond{ProductID: productID}
		}
		acc = &accumulator{product: b}
		s.pending[productID] = acc
	}
	switch side {
	case BID:
		if len(acc.bids) < s.bookDepth {
			acc.bids = append(acc.bids, Order{Price: price, Quantity: quantity, Side: side})
		}
	case OFFER:
		if len(acc.offers) < s.bookDepth {
			acc.offers = append(acc.offers, Order{Price: price, Quantity: quantity, Side: side})
		}
	}
	if len(acc.bids) == s.bookDepth && len(acc.offers) == s.bookDepth {
		book := OrderBook{Product: acc.product, BidStack: acc.bids, OfferStack: acc.offers}
		acc.bids = nil
		acc.offers = nil
		s.OnMessage(book)
	}
}

// Connector subscribes a marketdata.txt-formatted stream and drives
// records into a Service, batch by batch.
type Connector struct {
	service *Service
}

// NewConnector builds a subscribe-only connector bound to service.
func NewConnector(service *Service) *Connector {
	return &Connector{service: service}
}

// Subscribe reads CSV records of the form productId,price,quantity,side
// from r, one per line, until EOF. price is in "aaa-bbc" notation, the
// same grammar prices.txt, trades.txt, and inquiries.txt use.
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
		if len(fields) != 4 {
			ingest.LogSkip(ingest.MalformedRecordError{Line: line, Raw: row, Cause: fmt.Errorf("expected 4 fields, got %d", len(fields))})
			continue
		}
		productID := fields[0]
		if _, ok := catalog.FetchByCUSIP(productID); !ok {
			ingest.LogSkip(ingest.UnknownProductError{ProductID: productID})
			continue
		}
		price, err := pricenotation.Parse(fields[1])
		if err != nil {
			ingest.LogSkip(ingest.MalformedRecordError{Line: line, Raw: row, Cause: err})
			continue
		}
		quantity, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			ingest.LogSkip(ingest.MalformedRecordError{Line: line, Raw: row, Cause: err})
			continue
		}
		side := Side(fields[3])
		if side != BID && side != OFFER {
			ingest.LogSkip(ingest.MalformedRecordError{Line: line, Raw: row, Cause: fmt.Errorf("unknown side %q", fields[3])})
			continue
		}
		c.service.AddRecord(productID, price, quantity, side)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("marketdata: subscribe: %w", err)
	}
	return nil
}
