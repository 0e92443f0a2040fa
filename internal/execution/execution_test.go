package execution_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/wyfcoding/treasurydesk/internal/bond"
	"github.com/wyfcoding/treasurydesk/internal/execution"
)

type captureListener struct {
	orders []execution.Order
}

func (c *captureListener) ProcessAdd(o execution.Order)   { c.orders = append(c.orders, o) }
func (c *captureListener) ProcessRemove(execution.Order) {}
func (c *captureListener) ProcessUpdate(execution.Order) {}

func TestReceiveFansOutTwice(t *testing.T) {
	svc := execution.New()
	sink := &captureListener{}
	svc.AddListener(sink)

	order := execution.Order{Product: bond.Bond{ProductID: "X"}, Price: decimal.NewFromInt(100), OrderID: "o1"}
	svc.Receive(order)

	assert.Len(t, sink.orders, 2, "downstream must see each order twice, per the preserved double-fan-out")
	assert.Equal(t, order, svc.GetData("X"))
}
