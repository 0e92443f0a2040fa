package pricing_test

import (
	"os"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyfcoding/treasurydesk/internal/pricing"
)

type captureListener struct {
	prices []pricing.Price
}

func (c *captureListener) ProcessAdd(p pricing.Price)   { c.prices = append(c.prices, p) }
func (c *captureListener) ProcessRemove(pricing.Price) {}
func (c *captureListener) ProcessUpdate(pricing.Price) {}

func TestSubscribeComputesMidAndSpread(t *testing.T) {
	svc := pricing.New()
	sink := &captureListener{}
	svc.AddListener(sink)

	conn := pricing.NewConnector(svc)
	err := conn.Subscribe(strings.NewReader("91282CFX4,99-000,99-080\n"))
	assert.NoError(t, err)

	assert.Len(t, sink.prices, 1)
	price := sink.prices[0]
	assert.True(t, price.Mid.Equal(decimal.NewFromFloat(99.125)), "mid was %s", price.Mid)
	assert.True(t, price.BidOfferSpread.Equal(decimal.NewFromFloat(0.25)), "spread was %s", price.BidOfferSpread)
}

func TestSubscribeSkipsUnknownProduct(t *testing.T) {
	svc := pricing.New()
	conn := pricing.NewConnector(svc)

	err := conn.Subscribe(strings.NewReader("NOTAREALCUSIP,99-000,99-080\n"))
	assert.NoError(t, err)
	assert.True(t, svc.GetData("NOTAREALCUSIP").Product.IsZero())
}

func TestSubscribeSkipsMalformedRow(t *testing.T) {
	svc := pricing.New()
	conn := pricing.NewConnector(svc)

	err := conn.Subscribe(strings.NewReader("91282CFX4,99-000\n"))
	assert.NoError(t, err)
	assert.True(t, svc.GetData("91282CFX4").Product.IsZero())
}

func TestGoldenFileLoadsBothProducts(t *testing.T) {
	svc := pricing.New()
	conn := pricing.NewConnector(svc)

	f, err := os.Open("../../testdata/prices.txt")
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, conn.Subscribe(f))

	assert.False(t, svc.GetData("91282CFX4").Product.IsZero())
	assert.False(t, svc.GetData("91282CFV8").Product.IsZero())
}
