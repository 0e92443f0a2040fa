// Package inquiry implements the five-state customer-inquiry
// protocol, including the bidirectional connector that re-enters the
// service exactly once per RECEIVED event.
package inquiry

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

// Side is the customer's side of an inquiry.
type Side string

const (
	BUY  Side = "BUY"
	SELL Side = "SELL"
)

// State is a point in the inquiry lifecycle.
type State string

const (
	RECEIVED          State = "RECEIVED"
	QUOTED            State = "QUOTED"
	DONE              State = "DONE"
	REJECTED          State = "REJECTED"
	CUSTOMER_REJECTED State = "CUSTOMER_REJECTED"
)

// Inquiry is a customer's request for a price on a quantity of a
// product, tracked through its state machine.
type Inquiry struct {
	InquiryID string
	Product   bond.Bond
	Side      Side
	Quantity  int64
	Price     decimal.Decimal
	State     State
}

// Fields renders Inquiry for the historical sink.
func (i Inquiry) Fields() []string {
	return []string{i.InquiryID, i.Product.ProductID, string(i.Side), strconv.FormatInt(i.Quantity, 10), pricenotation.Format(i.Price), string(i.State)}
}

// Service drives the inquiry state machine, keyed by inquiryId.
type Service struct {
	*substrate.Service[string, Inquiry]
	connector *connector
}

// New constructs an InquiryService with its bidirectional connector
// already wired: the connector holds a non-owning back-reference to
// the service it re-enters.
func New() *Service {
	s := &Service{Service: substrate.NewService[string, Inquiry]()}
	s.connector = &connector{service: s}
	return s
}

// Connector exposes the subscribe/publish boundary used for file
// ingestion and the self-loop.
func (s *Service) Connector() *connector { return s.connector }

// OnMessage advances the state machine for an inbound inquiry.
func (s *Service) OnMessage(i Inquiry) {
	switch i.State {
	case RECEIVED:
		s.Set(i.InquiryID, i)
		_ = s.connector.Publish(i)
	case QUOTED:
		i.State = DONE
		s.Set(i.InquiryID, i)
		s.FanOut(i)
	default:
		// InvalidStateTransition: no-op, per spec.md §7.
	}
}

// SendQuote sets the stored inquiry's price and fans out the update
// without changing its state.
func (s *Service) SendQuote(inquiryID string, price decimal.Decimal) {
	i := s.GetData(inquiryID)
	i.Price = price
	s.Set(inquiryID, i)
	s.FanOut(i)
}

// RejectInquiry marks the stored inquiry REJECTED. No fan-out.
func (s *Service) RejectInquiry(inquiryID string) {
	i := s.GetData(inquiryID)
	i.State = REJECTED
	s.Set(inquiryID, i)
}

// connector is the inquiry edge's bidirectional Connector: Subscribe
// ingests the inquiries.txt file and feeds rows into the service;
// Publish rewrites RECEIVED to QUOTED and re-enters the service,
// bounded to exactly one re-entry per inbound RECEIVED event.
type connector struct {
	service *Service
}

// Publish implements the state-machine self-loop.
func (c *connector) Publish(i Inquiry) error {
	i.State = QUOTED
	c.service.OnMessage(i)
	return nil
}

// Subscribe reads CSV records of the form
// inquiryId,productId,side,quantity,price,state from r, one per line,
// and drives each into the service's state machine.
func (c *connector) Subscribe(r io.Reader) error {
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
		productID := fields[1]
		b, ok := catalog.FetchByCUSIP(productID)
		if !ok {
			ingest.LogSkip(ingest.UnknownProductError{ProductID: productID})
			continue
		}
		side := Side(fields[2])
		if side != BUY && side != SELL {
			ingest.LogSkip(ingest.MalformedRecordError{Line: line, Raw: row, Cause: fmt.Errorf("unknown side %q", fields[2])})
			continue
		}
		quantity, err := strconv.ParseInt(fields[3], 10, 64)
		if err != nil {
			ingest.LogSkip(ingest.MalformedRecordError{Line: line, Raw: row, Cause: err})
			continue
		}
		price, err := pricenotation.Parse(fields[4])
		if err != nil {
			ingest.LogSkip(ingest.MalformedRecordError{Line: line, Raw: row, Cause: err})
			continue
		}
		state := State(fields[5])
		switch state {
		case RECEIVED, QUOTED, DONE, REJECTED, CUSTOMER_REJECTED:
		default:
			ingest.LogSkip(ingest.MalformedRecordError{Line: line, Raw: row, Cause: fmt.Errorf("unknown state %q", fields[5])})
			continue
		}
		c.service.OnMessage(Inquiry{
			InquiryID: fields[0],
			Product:   b,
			Side:      side,
			Quantity:  quantity,
			Price:     price,
			State:     state,
		})
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("inquiry: subscribe: %w", err)
	}
	return nil
}
