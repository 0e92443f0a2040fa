// Package risk rolls positions up into per-product PV01 and, on
// demand, bucketed-sector PV01.
package risk

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/wyfcoding/treasurydesk/internal/bond"
	"github.com/wyfcoding/treasurydesk/internal/position"
	"github.com/wyfcoding/treasurydesk/internal/pricenotation"
	"github.com/wyfcoding/treasurydesk/internal/substrate"
)

// PV01 is the per-product price value of a one-basis-point yield
// shift at the current aggregate position.
type PV01 struct {
	Product  bond.Bond
	PV01     decimal.Decimal
	Quantity int64
}

// Fields renders PV01 for the historical sink.
func (p PV01) Fields() []string {
	return []string{p.Product.ProductID, pricenotation.Format(p.PV01), strconv.FormatInt(p.Quantity, 10)}
}

// BucketedSector is a read-only, configuration-time grouping of
// products risk is aggregated over.
type BucketedSector struct {
	Name     string
	Products []bond.Bond
}

// SectorPV01 is the aggregated PV01 for a BucketedSector. Quantity is
// always 1 — an intentional sentinel, not the total traded quantity
// (spec.md §4.7).
type SectorPV01 struct {
	Name     string
	PV01     decimal.Decimal
	Quantity int64
}

// Table supplies the externally defined per-million PV01 for a
// product; values are domain constants the implementer may hard-code
// or inject (spec.md §6).
type Table map[string]decimal.Decimal

// Lookup returns the PV01 value for productID, or zero if unknown.
func (t Table) Lookup(productID string) decimal.Decimal {
	return t[productID]
}

// Service stores the current PV01 per productId and recomputes it on
// every position change.
type Service struct {
	*substrate.Service[string, PV01]
	table Table
}

// New constructs a RiskService over the given PV01 table.
func New(table Table) *Service {
	return &Service{Service: substrate.NewService[string, PV01](), table: table}
}

// OnMessage stores pv01 by productId. It does not fan out: AddPosition
// is the only path that advances this edge downstream.
func (s *Service) OnMessage(pv01 PV01) {
	s.Set(pv01.Product.ProductID, pv01)
}

// AddPosition recomputes PV01 for pos's product from the externally
// supplied table and fans the update out.
func (s *Service) AddPosition(pos position.Position) {
	pv01 := PV01{
		Product:  pos.Product,
		PV01:     s.table.Lookup(pos.Product.ProductID),
		Quantity: pos.GetAggregatePosition(),
	}
	s.Set(pos.Product.ProductID, pv01)
	s.FanOut(pv01)
}

// ProcessAdd implements substrate.Listener for the Position edge.
func (s *Service) ProcessAdd(pos position.Position) {
	s.AddPosition(pos)
}

func (s *Service) ProcessRemove(position.Position) {}
func (s *Service) ProcessUpdate(position.Position) {}

// GetBucketedRisk sums pv01[p].PV01 * pv01[p].Quantity over every
// product in sector, returning the sentinel Quantity=1 shape spec.md
// §4.7 calls for.
func (s *Service) GetBucketedRisk(sector BucketedSector) SectorPV01 {
	total := decimal.Zero
	for _, b := range sector.Products {
		pv01 := s.GetData(b.ProductID)
		total = total.Add(pv01.PV01.Mul(decimal.NewFromInt(pv01.Quantity)))
	}
	return SectorPV01{Name: sector.Name, PV01: total, Quantity: 1}
}
