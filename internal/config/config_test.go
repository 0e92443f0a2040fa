package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wyfcoding/treasurydesk/internal/config"
)

func TestLoadFallsBackToDefaultWhenFileMissing(t *testing.T) {
	cfg, err := config.Load("does-not-exist.toml")
	assert.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestPV01DecimalParsesTable(t *testing.T) {
	cfg := config.Default()
	table := cfg.PV01Decimal()
	assert.Len(t, table, len(cfg.PV01))
}
