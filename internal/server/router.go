package server

import (
	"agrastra/internal/catalog"
	"agrastra/internal/feed"
	"agrastra/internal/ledger"
	"agrastra/internal/metrics"
	"agrastra/internal/pricing"
	"agrastra/internal/rewards"
	handler "agrastra/services/market/handler"

	"github.com/gin-gonic/gin"
)

// Services bundles the dependencies the router wires into handlers.
type Services struct {
	Ledger   *ledger.AuctionLedger
	Catalog  *catalog.CropCatalog
	Pricing  *pricing.PriceService
	Rewards  *rewards.RewardService
	Feed     *feed.Manager
	Registry *metrics.Registry
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(s Services) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(s.Ledger)
	catalogHandler := handler.NewCatalogHandler(s.Catalog)
	pricingHandler := handler.NewPricingHandler(s.Pricing)
	rewardsHandler := handler.NewRewardsHandler(s.Rewards)
	feedHandler := handler.NewFeedHandler(s.Ledger, s.Feed)

	auctions := router.Group("/auctions")
	{
		auctions.POST("", auctionHandler.CreateAuctionHandler)
		auctions.GET("", auctionHandler.ListAuctionsHandler)
		auctions.GET("/:auction_id", auctionHandler.GetAuctionHandler)
		auctions.POST("/:auction_id/bids", auctionHandler.PlaceBidHandler)
		auctions.POST("/:auction_id/close", auctionHandler.CloseAuctionHandler)
	}

	crops := router.Group("/crops")
	{
		crops.POST("", catalogHandler.CreateCropHandler)
		crops.GET("", catalogHandler.ListCropsHandler)
		crops.GET("/:crop_id", catalogHandler.GetCropHandler)
		crops.PUT("/:crop_id", catalogHandler.UpdateCropHandler)
		crops.DELETE("/:crop_id", catalogHandler.DeleteCropHandler)
	}

	pricingGroup := router.Group("/pricing")
	{
		pricingGroup.GET("/msp", pricingHandler.GetMSPHandler)
		pricingGroup.GET("/trends/:crop", pricingHandler.GetTrendsHandler)
	}

	rewardsGroup := router.Group("/rewards")
	{
		rewardsGroup.POST("/award", rewardsHandler.AwardPointsHandler)
		rewardsGroup.GET("/profile/:user_id", rewardsHandler.GetProfileHandler)
	}

	router.GET("/ws/auctions/:auction_id", feedHandler.WatchAuctionHandler)

	if s.Registry != nil {
		router.GET("/metrics", gin.WrapH(s.Registry.Handler()))
	}
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return router
}
