package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/popsorte/backend/internal/config"
	"github.com/popsorte/backend/internal/handlers"
	"github.com/popsorte/backend/internal/middleware"
)

// Handlers groups the constructed handlers the router wires up
type Handlers struct {
	Auth     *handlers.AuthHandler
	Ticket   *handlers.TicketHandler
	Recharge *handlers.RechargeHandler
	Results  *handlers.ResultsHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	// Public routes
	public := router.Group("/api/v1")
	{
		public.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status": "ok",
			})
		})

		auth := public.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
		}

		public.POST("/tickets", h.Ticket.SubmitTicket)
		public.GET("/tickets/game/:gameId", h.Ticket.GetTicketsByGameID)
		public.GET("/schedule", h.Ticket.GetSchedule)
		public.GET("/results", h.Results.GetResults)
		public.GET("/results/:contest", h.Results.GetResult)
		public.GET("/winners/report", h.Results.GetWinnersReport)
	}

	// Protected admin routes
	protected := router.Group("/api/v1/admin")
	protected.Use(middleware.JWTAuthMiddleware(cfg))
	{
		tickets := protected.Group("/tickets")
		{
			tickets.GET("/contest/:contest", h.Ticket.GetTicketsByContest)
		}

		recharges := protected.Group("/recharges")
		{
			recharges.GET("", h.Recharge.GetAllRecharges)
			recharges.GET("/game/:gameId", h.Recharge.GetRechargesByGameID)
			recharges.POST("/:rechargeId/invalidate", h.Recharge.InvalidateRecharge)
			recharges.POST("/:rechargeId/reinstate", h.Recharge.ReinstateRecharge)
		}

		validation := protected.Group("/validation")
		{
			validation.POST("/run", h.Recharge.RunValidation)
			validation.GET("/stats", h.Recharge.GetValidationStats)
		}

		results := protected.Group("/results")
		{
			results.POST("", h.Results.PublishResult)
		}

		winners := protected.Group("/winners")
		{
			winners.POST("/compute", h.Results.ComputeWinners)
			winners.POST("/announce/:contest", h.Results.AnnounceWinners)
		}
	}

	return router
}
