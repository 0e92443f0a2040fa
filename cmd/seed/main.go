// Command seed regenerates prices.txt, marketdata.txt, trades.txt,
// and inquiries.txt with deterministic synthetic content, so a fresh
// checkout of treasurydesk has something to run against. It is a
// separate binary from cmd/treasurydesk on purpose: the core itself
// only ever consumes pre-existing files.
package main

import (
	"math/rand"
	"os"

	"github.com/wyfcoding/treasurydesk/internal/config"
	"github.com/wyfcoding/treasurydesk/internal/logging"
	"github.com/wyfcoding/treasurydesk/internal/seed"
)

const seedValue = 42

func main() {
	log := logging.New("treasurydesk", "seed", "info")
	cfg := config.Default()
	rng := rand.New(rand.NewSource(seedValue))

	write := func(path string, fn func(f *os.File, rng *rand.Rand) error) {
		f, err := os.Create(path)
		if err != nil {
			log.Error("create seed file", "path", path, "error", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := fn(f, rng); err != nil {
			log.Error("write seed file", "path", path, "error", err)
			os.Exit(1)
		}
		log.Info("wrote seed file", "path", path)
	}

	write(cfg.Files.Prices, func(f *os.File, rng *rand.Rand) error { return seed.Prices(f, rng) })
	write(cfg.Files.MarketData, func(f *os.File, rng *rand.Rand) error {
		return seed.MarketData(f, rng, cfg.BookDepth, 3)
	})
	write(cfg.Files.Trades, func(f *os.File, rng *rand.Rand) error { return seed.Trades(f, rng, 12) })
	write(cfg.Files.Inquiries, func(f *os.File, rng *rand.Rand) error { return seed.Inquiries(f, rng, 6) })
}
