package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/nft-ledger/internal/api/middleware"
)

// SetupRoutes configures all REST API routes. Mutating operations require
// an authenticated caller; reads are public.
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		// Class endpoints
		v1.POST("/classes", middleware.Auth(authCfg), handler.IssueClass)
		v1.GET("/classes", handler.ListClasses)
		v1.GET("/classes/:class_id", handler.GetClass)
		v1.GET("/classes/:class_id/supply", handler.GetSupply)
		v1.GET("/classes/:class_id/nfts", handler.ListClassNFTs)

		// Record endpoints
		v1.POST("/nfts", middleware.Auth(authCfg), handler.MintNFT)
		v1.GET("/nfts", handler.ListNFTs)
		v1.GET("/nfts/:class_id/:local_id", handler.GetNFT)
		v1.PATCH("/nfts/:class_id/:local_id", middleware.Auth(authCfg), handler.EditNFT)
		v1.POST("/nfts/:class_id/:local_id/transfer", middleware.Auth(authCfg), handler.SendNFT)
		v1.DELETE("/nfts/:class_id/:local_id", middleware.Auth(authCfg), handler.BurnNFT)

		// Derived ownership figures
		v1.GET("/owners/:owner/classes/:class_id/balance", handler.GetBalance)
	}
}
