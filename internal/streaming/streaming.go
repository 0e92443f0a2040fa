// Package streaming stores and republishes the two-sided quote
// AlgoStreaming produces, preserving the double-fan-out behavior
// spec.md §9 documents for this edge.
package streaming

import (
	"github.com/wyfcoding/treasurydesk/internal/algostreaming"
	"github.com/wyfcoding/treasurydesk/internal/substrate"
)

// Service stores the current Stream per productId and double-fans-out
// on receipt from its upstream AlgoStreaming listener.
type Service struct {
	*substrate.Service[string, algostreaming.Stream]
}

// New constructs an empty StreamingService.
func New() *Service {
	return &Service{Service: substrate.NewService[string, algostreaming.Stream]()}
}

// OnMessage stores stream by productId and fans out to listeners.
func (s *Service) OnMessage(stream algostreaming.Stream) {
	s.Set(stream.Product.ProductID, stream)
	s.FanOut(stream)
}

// PublishPrice fans stream out to listeners again without storing it.
func (s *Service) PublishPrice(stream algostreaming.Stream) {
	s.FanOut(stream)
}

// ProcessAdd implements substrate.Listener for the AlgoStreaming edge:
// it unwraps the AlgoStream and drives both fan-out paths.
func (s *Service) ProcessAdd(a algostreaming.AlgoStream) {
	s.OnMessage(a.Stream)
	s.PublishPrice(a.Stream)
}

func (s *Service) ProcessRemove(algostreaming.AlgoStream) {}
func (s *Service) ProcessUpdate(algostreaming.AlgoStream) {}
