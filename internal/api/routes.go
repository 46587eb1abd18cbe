package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/venturelink/venturelink-api/internal/auth"
	"github.com/venturelink/venturelink-api/internal/database"
	"github.com/venturelink/venturelink-api/internal/services"
	"github.com/venturelink/venturelink-api/pkg/config"
)

// SetupRoutes configures all API routes
func SetupRoutes(r *gin.Engine, db *database.DB, svcs *services.Services, cfg *config.Config) {
	authHandler := NewAuthHandler(svcs.Auth)
	startupHandler := NewStartupHandler(svcs.Startup)
	investorHandler := NewInvestorHandler(svcs.Investor)
	incubatorHandler := NewIncubatorHandler(svcs.Incubator)
	matchHandler := NewMatchHandler(svcs.Match)
	applicationHandler := NewApplicationHandler(svcs.Application)
	commitmentHandler := NewCommitmentHandler(svcs.Commitment)
	introHandler := NewIntroHandler(svcs.Intro)
	importHandler := NewImportHandler(svcs.Import)
	healthHandler := NewHealthHandler(db)

	r.GET("/health", healthHandler.GetHealth)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes
	public := r.Group("/api/v1")
	{
		public.POST("/auth/login", authHandler.Login)
		public.POST("/auth/register", authHandler.Register)
		public.POST("/auth/activate", authHandler.Activate)
		public.POST("/auth/refresh", authHandler.RefreshToken)
		public.POST("/auth/logout", authHandler.Logout)
	}

	// Protected routes
	protected := r.Group("/api/v1")
	protected.Use(auth.JWTMiddleware(cfg.JWTSecret))
	{
		protected.GET("/auth/me", authHandler.Me)

		// Startup profiles
		protected.GET("/startups/:id", startupHandler.GetStartup)
		protected.GET("/startups", startupHandler.GetMyStartups)
		protected.POST("/startups", startupHandler.CreateStartup)
		protected.PUT("/startups/:id", startupHandler.UpdateStartup)
		protected.GET("/startups/:id/activity", startupHandler.GetActivity)
		protected.GET("/startups/:id/fundraising", startupHandler.GetFundraising)

		// Investor profiles
		protected.GET("/investors/me", investorHandler.GetMyProfile)
		protected.GET("/investors/:id", investorHandler.GetInvestor)
		protected.POST("/investors", investorHandler.CreateInvestor)
		protected.PUT("/investors/:id", investorHandler.UpdateInvestor)

		// Incubator profiles
		protected.GET("/incubators/me", incubatorHandler.GetMyProfile)
		protected.GET("/incubators/:id", incubatorHandler.GetIncubator)

		// Match scoring
		protected.GET("/matches", matchHandler.GetMatches)
		protected.GET("/matches/startups/:id", matchHandler.ScoreStartup)

		// Application funnel
		protected.POST("/applications", applicationHandler.CreateApplication)
		protected.POST("/applications/:id/action", applicationHandler.ApplyAction)
		protected.GET("/applications", applicationHandler.GetApplications)
		protected.GET("/applications/analytics", applicationHandler.GetFunnelAnalytics)

		// Soft commitments
		protected.POST("/commitments", commitmentHandler.CreateCommitment)
		protected.POST("/commitments/:id/respond", commitmentHandler.RespondToCommitment)
		protected.POST("/commitments/:id/withdraw", commitmentHandler.WithdrawCommitment)
		protected.GET("/commitments", commitmentHandler.GetMyCommitments)

		// Intro requests
		protected.POST("/intros", introHandler.CreateIntroRequest)
		protected.POST("/intros/:id/respond", introHandler.RespondToIntroRequest)
		protected.GET("/intros", introHandler.GetMyIntroRequests)

		// Bulk import
		protected.POST("/import/csv", importHandler.UploadCSV)
	}
}
