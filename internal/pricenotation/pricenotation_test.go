package pricenotation_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyfcoding/treasurydesk/internal/pricenotation"
)

func TestParseWholeDollar(t *testing.T) {
	p, err := pricenotation.Parse("100-000")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(100).Equal(p), "got %s", p)
}

func TestParsePlusDenotesFourEighths(t *testing.T) {
	p, err := pricenotation.Parse("100-16+")
	require.NoError(t, err)
	want, _ := decimal.NewFromString("100.515625")
	assert.True(t, want.Equal(p), "got %s want %s", p, want)
}

func TestFormatRoundTrip(t *testing.T) {
	d, _ := decimal.NewFromString("100.515625")
	assert.Equal(t, "100-16+", pricenotation.Format(d))
}

func TestRoundTripGrid(t *testing.T) {
	base := decimal.NewFromInt(99)
	for ticks := 0; ticks <= 512; ticks++ {
		p := base.Add(decimal.NewFromInt(int64(ticks)).Div(decimal.NewFromInt(256)))
		formatted := pricenotation.Format(p)
		parsed, err := pricenotation.Parse(formatted)
		require.NoError(t, err)
		assert.True(t, p.Equal(parsed), "round-trip mismatch for %s: got %s -> %s", p, formatted, parsed)
	}
}
