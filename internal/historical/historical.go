// Package historical is the generic terminal sink every derived
// artifact eventually lands in: a timestamped, append-only text file
// per kind.
package historical

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/wyfcoding/treasurydesk/internal/timestamp"
)

// Kind names one of the five historical logs this core writes.
type Kind string

const (
	Position  Kind = "POSITION"
	Risk      Kind = "RISK"
	Execution Kind = "EXECUTION"
	Streaming Kind = "STREAMING"
	Inquiry   Kind = "INQUIRY"
)

// Filename returns the fixed output file for kind, per spec.md §6.
func (k Kind) Filename() string {
	switch k {
	case Position:
		return "positions.txt"
	case Risk:
		return "risk.txt"
	case Execution:
		return "executions.txt"
	case Streaming:
		return "streaming.txt"
	case Inquiry:
		return "allinquiries.txt"
	default:
		return ""
	}
}

// Recordable is any artifact the historical sink can format: its
// ordered field strings, timestamp-prefixed on write.
type Recordable interface {
	Fields() []string
}

// Service is a generic Listener that persists every inbound value of
// type V to its Kind's output file.
type Service[V Recordable] struct {
	kind      Kind
	connector *Connector
}

// New constructs a HistoricalDataService of kind, writing through
// connector.
func New[V Recordable](kind Kind, connector *Connector) *Service[V] {
	return &Service[V]{kind: kind, connector: connector}
}

// ProcessAdd implements substrate.Listener: it persists v via
// persistData.
func (s *Service[V]) ProcessAdd(v V) {
	s.persistData(v)
}

func (s *Service[V]) ProcessRemove(V) {}
func (s *Service[V]) ProcessUpdate(V) {}

func (s *Service[V]) persistData(v V) {
	if err := s.connector.Publish(v); err != nil {
		slog.Error("historical: persist failed", "kind", s.kind, "error", err)
	}
}

// Connector is the publish-only byte sink shared by every
// HistoricalDataService: it opens its file in append mode per write
// and writes one timestamp-prefixed, comma-joined, trailing-comma
// line.
type Connector struct {
	open func() (io.WriteCloser, error)
}

// NewConnector builds a Connector that opens the named file in append
// mode for every Publish call.
func NewConnector(open func() (io.WriteCloser, error)) *Connector {
	return &Connector{open: open}
}

// Publish appends one formatted line for v.
func (c *Connector) Publish(v Recordable) error {
	w, err := c.open()
	if err != nil {
		return fmt.Errorf("historical: open sink: %w", err)
	}
	defer w.Close()
	line := timestamp.Now() + "," + strings.Join(v.Fields(), ",") + ",\n"
	if _, err := io.WriteString(w, line); err != nil {
		return fmt.Errorf("historical: write: %w", err)
	}
	return nil
}
