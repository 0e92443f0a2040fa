package marketdata_test

import (
	"os"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyfcoding/treasurydesk/internal/marketdata"
)

const cusip = "91282CFX4"

func TestBookDepthInvariant(t *testing.T) {
	const bookDepth = 2
	svc := marketdata.New(bookDepth)

	var lines []string
	for i := 0; i < bookDepth; i++ {
		lines = append(lines, cusip+",99-160,1000000,BID")
	}
	for i := 0; i < bookDepth; i++ {
		lines = append(lines, cusip+",100-000,1000000,OFFER")
	}

	require.NoError(t, marketdata.NewConnector(svc).Subscribe(strings.NewReader(strings.Join(lines, "\n"))))

	book := svc.GetData(cusip)
	assert.Len(t, book.BidStack, bookDepth)
	assert.Len(t, book.OfferStack, bookDepth)
}

func TestAggregationPreservesQuantitySum(t *testing.T) {
	svc := marketdata.New(2)
	rows := []string{
		cusip + ",99-160,1000000,BID",
		cusip + ",99-160,500000,BID",
		cusip + ",100-000,2000000,OFFER",
		cusip + ",100-160,3000000,OFFER",
	}
	require.NoError(t, marketdata.NewConnector(svc).Subscribe(strings.NewReader(strings.Join(rows, "\n"))))

	before := svc.GetData(cusip)
	var beforeSum int64
	for _, o := range before.BidStack {
		beforeSum += o.Quantity
	}

	agg := svc.AggregateDepth(cusip)
	var afterSum int64
	for _, o := range agg.BidStack {
		afterSum += o.Quantity
	}
	assert.Equal(t, beforeSum, afterSum)
	assert.Len(t, agg.BidStack, 1, "duplicate price levels must collapse")

	again := svc.AggregateDepth(cusip)
	assert.Equal(t, agg, again, "aggregation must be a fixed point")
}

func TestBestBidOffer(t *testing.T) {
	svc := marketdata.New(2)
	rows := []string{
		cusip + ",99-310,1000000,BID",   // 99.96875
		cusip + ",99-300,2000000,BID",   // 99.9375
		cusip + ",100-000,1000000,OFFER",  // 100.0
		cusip + ",100-010,2000000,OFFER", // 100.03125
	}
	require.NoError(t, marketdata.NewConnector(svc).Subscribe(strings.NewReader(strings.Join(rows, "\n"))))

	bo := svc.GetBestBidOffer(cusip)
	assert.False(t, bo.Absent)
	assert.True(t, bo.Bid.Price.Equal(decimal.NewFromFloat(99.96875)))
	assert.True(t, bo.Offer.Price.Equal(decimal.NewFromFloat(100.0)))
}

func TestGoldenFileTwoBatchesProduceTwoBooks(t *testing.T) {
	svc := marketdata.New(2)

	f, err := os.Open("../../testdata/marketdata.txt")
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, marketdata.NewConnector(svc).Subscribe(f))

	book := svc.GetData(cusip)
	assert.Len(t, book.BidStack, 2)
	assert.Len(t, book.OfferStack, 2)

	bo := svc.GetBestBidOffer(cusip)
	assert.False(t, bo.Absent)
	assert.True(t, bo.Bid.Price.Equal(decimal.NewFromFloat(99.9375)))
	assert.True(t, bo.Offer.Price.Equal(decimal.NewFromFloat(100.0)))
}
