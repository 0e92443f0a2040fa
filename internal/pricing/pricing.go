// Package pricing turns bid/ask quotes from prices.txt into the
// mid/spread Price artifact the algo-streaming and GUI pipelines
// consume.
package pricing

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/wyfcoding/treasurydesk/internal/bond"
	"github.com/wyfcoding/treasurydesk/internal/catalog"
	"github.com/wyfcoding/treasurydesk/internal/ingest"
	"github.com/wyfcoding/treasurydesk/internal/pricenotation"
	"github.com/wyfcoding/treasurydesk/internal/substrate"
)

var two = decimal.NewFromInt(2)

// Price is the one-current-value-per-product quote this core works
// from.
type Price struct {
	Product        bond.Bond
	Mid            decimal.Decimal
	BidOfferSpread decimal.Decimal
}

// Fields renders Price for the historical sink's formatted output.
func (p Price) Fields() []string {
	return []string{p.Product.ProductID, pricenotation.Format(p.Mid), pricenotation.Format(p.BidOfferSpread)}
}

// Service stores the current Price per productId and fans out on
// every update.
type Service struct {
	*substrate.Service[string, Price]
}

// New constructs an empty PricingService.
func New() *Service {
	return &Service{Service: substrate.NewService[string, Price]()}
}

// OnMessage stores p by productId and fans out to listeners.
func (s *Service) OnMessage(p Price) {
	s.Set(p.Product.ProductID, p)
	s.FanOut(p)
}

// Connector subscribes a prices.txt-formatted stream and delivers
// each row to a Service as a Price.
type Connector struct {
	service *Service
}

// NewConnector builds a subscribe-only connector bound to service.
func NewConnector(service *Service) *Connector {
	return &Connector{service: service}
}

// Subscribe reads CSV records of the form productId,bidPrice,askPrice
// (prices in "aaa-bbc" notation) from r, one per line, until EOF.
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
		if len(fields) != 3 {
			ingest.LogSkip(ingest.MalformedRecordError{Line: line, Raw: row, Cause: fmt.Errorf("expected 3 fields, got %d", len(fields))})
			continue
		}
		productID := fields[0]
		b, ok := catalog.FetchByCUSIP(productID)
		if !ok {
			ingest.LogSkip(ingest.UnknownProductError{ProductID: productID})
			continue
		}
		bid, err := pricenotation.Parse(fields[1])
		if err != nil {
			ingest.LogSkip(ingest.MalformedRecordError{Line: line, Raw: row, Cause: err})
			continue
		}
		ask, err := pricenotation.Parse(fields[2])
		if err != nil {
			ingest.LogSkip(ingest.MalformedRecordError{Line: line, Raw: row, Cause: err})
			continue
		}
		mid := bid.Add(ask).Div(two)
		spread := ask.Sub(bid)
		c.service.OnMessage(Price{Product: b, Mid: mid, BidOfferSpread: spread})
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("pricing: subscribe: %w", err)
	}
	return nil
}
