// Command treasurydesk wires the full event pipeline together and
// drains prices.txt, trades.txt, marketdata.txt, and inquiries.txt to
// completion, in that order (spec.md §5).
package main

import (
	"io"
	"os"

	"github.com/wyfcoding/treasurydesk/internal/algoexecution"
	"github.com/wyfcoding/treasurydesk/internal/algostreaming"
	"github.com/wyfcoding/treasurydesk/internal/config"
	"github.com/wyfcoding/treasurydesk/internal/execution"
	"github.com/wyfcoding/treasurydesk/internal/gui"
	"github.com/wyfcoding/treasurydesk/internal/historical"
	"github.com/wyfcoding/treasurydesk/internal/inquiry"
	"github.com/wyfcoding/treasurydesk/internal/logging"
	"github.com/wyfcoding/treasurydesk/internal/marketdata"
	"github.com/wyfcoding/treasurydesk/internal/position"
	"github.com/wyfcoding/treasurydesk/internal/pricing"
	"github.com/wyfcoding/treasurydesk/internal/risk"
	"github.com/wyfcoding/treasurydesk/internal/streaming"
	"github.com/wyfcoding/treasurydesk/internal/substrate"
	"github.com/wyfcoding/treasurydesk/internal/timestamp"
	"github.com/wyfcoding/treasurydesk/internal/tradebooking"
)

const configPath = "configs/treasurydesk.toml"

func openAppend(path string) func() (io.WriteCloser, error) {
	return func() (io.WriteCloser, error) {
		return os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	}
}

func main() {
	log := logging.New("treasurydesk", "main", "info")
	log.Info("Program Starting...")

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}

	log.Info("Services Initializing...")

	pricingService := pricing.New()
	marketDataService := marketdata.New(cfg.BookDepth)
	algoExecutionService := algoexecution.New()
	executionService := execution.New()
	algoStreamingService := algostreaming.New()
	streamingService := streaming.New()
	guiService := gui.New(cfg.GUIThrottleMs, timestamp.NowMillis, openAppend(cfg.Files.GUI))
	inquiryService := inquiry.New()
	tradeBookingService := tradebooking.New()
	positionService := position.New()
	riskService := risk.New(cfg.PV01Decimal())

	historicalStreaming := historical.New[algostreaming.Stream](historical.Streaming, historical.NewConnector(openAppend(cfg.Files.Streaming)))
	historicalExecution := historical.New[execution.Order](historical.Execution, historical.NewConnector(openAppend(cfg.Files.Executions)))
	historicalPosition := historical.New[position.Position](historical.Position, historical.NewConnector(openAppend(cfg.Files.Positions)))
	historicalRisk := historical.New[risk.PV01](historical.Risk, historical.NewConnector(openAppend(cfg.Files.Risk)))
	historicalInquiry := historical.New[inquiry.Inquiry](historical.Inquiry, historical.NewConnector(openAppend(cfg.Files.AllInquiries)))

	log.Info("Services Initialized.")

	log.Info("Services Linking...")

	pricingService.AddListener(algoStreamingService)
	pricingService.AddListener(guiService)
	algoStreamingService.AddListener(streamingService)
	streamingService.AddListener(historicalStreaming)

	marketDataService.AddListener(algoExecutionService)
	algoExecutionService.AddListener(substrate.ListenerFunc[algoexecution.Order](func(order algoexecution.Order) {
		executionService.Receive(order.Order)
	}))
	executionService.AddListener(tradeBookingService)
	executionService.AddListener(historicalExecution)

	tradeBookingService.AddListener(positionService)
	positionService.AddListener(riskService)
	positionService.AddListener(historicalPosition)
	riskService.AddListener(historicalRisk)

	inquiryService.AddListener(historicalInquiry)

	log.Info("Services Linked.")

	pricesFile, err := os.Open(cfg.Files.Prices)
	if err != nil {
		log.Error("open prices file", "error", err)
		os.Exit(1)
	}
	log.Info("Price Data Processing...")
	if err := pricing.NewConnector(pricingService).Subscribe(pricesFile); err != nil {
		log.Error("subscribe prices", "error", err)
		os.Exit(1)
	}
	pricesFile.Close()
	log.Info("Price Data Processed.")

	tradesFile, err := os.Open(cfg.Files.Trades)
	if err != nil {
		log.Error("open trades file", "error", err)
		os.Exit(1)
	}
	log.Info("Trade Data Processing...")
	if err := tradebooking.NewConnector(tradeBookingService).Subscribe(tradesFile); err != nil {
		log.Error("subscribe trades", "error", err)
		os.Exit(1)
	}
	tradesFile.Close()
	log.Info("Trade Data Processed.")

	marketDataFile, err := os.Open(cfg.Files.MarketData)
	if err != nil {
		log.Error("open marketdata file", "error", err)
		os.Exit(1)
	}
	log.Info("Market Data Processing...")
	if err := marketdata.NewConnector(marketDataService).Subscribe(marketDataFile); err != nil {
		log.Error("subscribe marketdata", "error", err)
		os.Exit(1)
	}
	marketDataFile.Close()
	log.Info("Market Data Processed.")

	inquiriesFile, err := os.Open(cfg.Files.Inquiries)
	if err != nil {
		log.Error("open inquiries file", "error", err)
		os.Exit(1)
	}
	log.Info("Inquiry Data Processing...")
	if err := inquiryService.Connector().Subscribe(inquiriesFile); err != nil {
		log.Error("subscribe inquiries", "error", err)
		os.Exit(1)
	}
	inquiriesFile.Close()
	log.Info("Inquiry Data Processed.")

	log.Info("Program Complete.")
}
