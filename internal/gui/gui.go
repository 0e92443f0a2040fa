// Package gui is the millisecond-throttled sink that writes a subset
// of Pricing ticks to gui.txt, dropping anything that arrives before
// the throttle window elapses.
package gui

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/wyfcoding/treasurydesk/internal/pricing"
	"github.com/wyfcoding/treasurydesk/internal/timestamp"
)

// Clock supplies the monotonic-ish millisecond reading the throttle
// gates on. Production code uses timestamp.NowMillis; tests inject a
// fake to drive the throttle deterministically.
type Clock func() int64

// Service is GUIService: it never stores anything, it only throttles
// and writes.
type Service struct {
	throttleMs int64
	lastEmit   int64
	clock      Clock
	openSink   func() (io.WriteCloser, error)
}

// New constructs a GUIService with the given throttle window and a
// function that opens (or re-opens) the append-mode sink for each
// emission, matching the original's "opened in append mode for every
// emission" contract.
func New(throttleMs int64, clock Clock, openSink func() (io.WriteCloser, error)) *Service {
	return &Service{throttleMs: throttleMs, clock: clock, openSink: openSink}
}

// ProcessAdd implements substrate.Listener for the Pricing edge.
func (s *Service) ProcessAdd(p pricing.Price) {
	now := s.clock()
	if now-s.lastEmit < s.throttleMs {
		return
	}
	s.lastEmit = now
	if err := s.publish(p); err != nil {
		slog.Error("gui: publish failed", "error", err)
	}
}

func (s *Service) ProcessRemove(pricing.Price) {}
func (s *Service) ProcessUpdate(pricing.Price) {}

func (s *Service) publish(p pricing.Price) error {
	w, err := s.openSink()
	if err != nil {
		return fmt.Errorf("gui: open sink: %w", err)
	}
	defer w.Close()
	line := timestamp.Now() + "," + strings.Join(p.Fields(), ",") + ",\n"
	if _, err := io.WriteString(w, line); err != nil {
		return fmt.Errorf("gui: write: %w", err)
	}
	return nil
}
