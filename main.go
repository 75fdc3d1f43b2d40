package main

import (
	"fmt"
	"os"
	"time"

	"agrastra/internal/catalog"
	"agrastra/internal/feed"
	"agrastra/internal/ledger"
	"agrastra/internal/metrics"
	"agrastra/internal/pricing"
	"agrastra/internal/rewards"
	"agrastra/internal/server"
	"agrastra/internal/store"
)

func main() {

	db := store.NewMemoryStore()
	registry := metrics.NewRegistry()
	feedManager := feed.NewManager()

	auctionLedger := ledger.NewAuctionLedger(db, feedManager, registry)
	cropCatalog := catalog.NewCropCatalog(db)

	seedDemoData(auctionLedger, cropCatalog)

	router := server.SetupRouter(server.Services{
		Ledger:   auctionLedger,
		Catalog:  cropCatalog,
		Pricing:  pricing.NewPriceService(),
		Rewards:  rewards.NewRewardService(db),
		Feed:     feedManager,
		Registry: registry,
	})

	port := getPort()
	fmt.Printf("Starting agrastra marketplace server on %s...\n", port)
	if err := router.Run(port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// seedDemoData opens a few sample auctions and listings so the API has
// something to show on a fresh start. Failures only log; a seed is not
// worth refusing to boot over.
func seedDemoData(auctionLedger *ledger.AuctionLedger, cropCatalog *catalog.CropCatalog) {
	if os.Getenv("SKIP_SEED") != "" {
		return
	}

	seeds := []struct {
		seller, crop  string
		quantity      float64
		unit          string
		startingPrice float64
	}{
		{"farmer-demo-1", "wheat", 50, "quintal", 2100},
		{"farmer-demo-1", "rice", 30, "quintal", 1950},
		{"farmer-demo-2", "cotton", 12, "quintal", 5600},
	}
	for _, s := range seeds {
		if _, err := auctionLedger.OpenAuction(s.seller, s.crop, s.quantity, s.unit, "demo lot", s.startingPrice, 24*time.Hour); err != nil {
			fmt.Fprintf(os.Stderr, "seed auction: %v\n", err)
		}
	}

	if _, err := cropCatalog.AddCrop("farmer-demo-2", "maize", "cereal", 80, "quintal", 1900, "Nashik", "demo listing"); err != nil {
		fmt.Fprintf(os.Stderr, "seed crop: %v\n", err)
	}
}

// getPort returns the server port from env or defaults to ":8080"
func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}
