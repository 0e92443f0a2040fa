// Package config loads treasurydesk's single TOML document via
// viper, the way cmd/risk/main.go in the pack loads its config: no
// environment-variable binding, no CLI flags (spec.md §6).
package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Files names the four input and six output files the core consumes
// and produces.
type Files struct {
	Prices       string `mapstructure:"prices"`
	MarketData   string `mapstructure:"market_data"`
	Trades       string `mapstructure:"trades"`
	Inquiries    string `mapstructure:"inquiries"`
	GUI          string `mapstructure:"gui"`
	Positions    string `mapstructure:"positions"`
	Risk         string `mapstructure:"risk"`
	Executions   string `mapstructure:"executions"`
	Streaming    string `mapstructure:"streaming"`
	AllInquiries string `mapstructure:"all_inquiries"`
}

// Sector is one bucketed-sector definition: a name and the CUSIPs it
// groups.
type Sector struct {
	Name   string   `mapstructure:"name"`
	CUSIPs []string `mapstructure:"cusips"`
}

// Config is the full process configuration.
type Config struct {
	Files         Files             `mapstructure:"files"`
	BookDepth     int               `mapstructure:"book_depth"`
	GUIThrottleMs int64             `mapstructure:"gui_throttle_ms"`
	LogLevel      string            `mapstructure:"log_level"`
	PV01          map[string]string `mapstructure:"pv01"`
	Sectors       []Sector          `mapstructure:"sectors"`
}

// PV01Decimal parses the configured PV01 table into decimals keyed by
// productId.
func (c Config) PV01Decimal() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(c.PV01))
	for productID, v := range c.PV01 {
		d, err := decimal.NewFromString(v)
		if err != nil {
			continue
		}
		out[productID] = d
	}
	return out
}

// Default is the compiled-in configuration used when no TOML file is
// present, so a fresh checkout still runs to completion.
func Default() Config {
	return Config{
		Files: Files{
			Prices:       "prices.txt",
			MarketData:   "marketdata.txt",
			Trades:       "trades.txt",
			Inquiries:    "inquiries.txt",
			GUI:          "gui.txt",
			Positions:    "positions.txt",
			Risk:         "risk.txt",
			Executions:   "executions.txt",
			Streaming:    "streaming.txt",
			AllInquiries: "allinquiries.txt",
		},
		BookDepth:     10,
		GUIThrottleMs: 300,
		LogLevel:      "info",
		PV01: map[string]string{
			"91282CFX4": "190",
			"91282CFW6": "280",
			"91282CFZ9": "460",
			"91282CFY2": "620",
			"91282CFV8": "850",
			"912810TM0": "1450",
			"912810TL2": "1800",
		},
		Sectors: []Sector{
			{Name: "front-end", CUSIPs: []string{"91282CFX4", "91282CFW6", "91282CFZ9"}},
			{Name: "long-end", CUSIPs: []string{"91282CFY2", "91282CFV8", "912810TM0", "912810TL2"}},
		},
	}
}

// Load reads configPath as TOML via viper and unmarshals it into a
// Config. If the file does not exist, it falls back to Default.
func Load(configPath string) (Config, error) {
	if _, err := os.Stat(configPath); err != nil {
		return Default(), nil
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", configPath, err)
	}

	cfg := Default()
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal %s: %w", configPath, err)
	}
	return cfg, nil
}
