package router

import (
	"campBuzz/internal/middleware"
	"campBuzz/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupUserRoutes(api *echo.Group, handler *rest.UserHandler, authRequired echo.MiddlewareFunc, collegeAdminOnly echo.MiddlewareFunc) {
	users := api.Group("/users")

	users.GET("/email-verification/:code", handler.VerifyEmail)
	users.POST("/register", handler.Register)
	users.POST("/login", handler.Login)
	users.POST("/logout", handler.Logout, authRequired)
	users.POST("/refresh", handler.RefreshToken, authRequired)

	users.GET("/me/preferences", handler.GetPreferences, authRequired)
	users.PUT("/me/preferences", handler.UpdatePreferences, authRequired)

	users.PUT("/:id", handler.UpdateUser, authRequired, middleware.SelfOrAdmin())
	users.GET("", handler.GetAllUsers, authRequired, collegeAdminOnly)
	users.GET("/:id", handler.GetUserByID, authRequired, middleware.SelfOrAdmin())
	users.DELETE("/:id", handler.DeleteUser, authRequired, collegeAdminOnly)
}

func SetupEventRoutes(api *echo.Group, handler *rest.EventHandler, authRequired echo.MiddlewareFunc, clubAdminOnly echo.MiddlewareFunc) {
	events := api.Group("/events")

	events.GET("", handler.GetAllEvents)
	events.GET("/upcoming", handler.GetUpcomingEvents)
	events.GET("/trending", handler.GetTrendingEvents)
	events.GET("/calendar", handler.GetCalendarMonth)
	events.GET("/categories", handler.GetCategories)
	events.GET("/:id", handler.GetEventByID)

	events.POST("", handler.CreateEvent, authRequired, clubAdminOnly)
	events.PUT("/:id", handler.UpdateEvent, authRequired, clubAdminOnly)
	events.DELETE("/:id", handler.DeleteEvent, authRequired, clubAdminOnly)
}

func SetRecommendationRoutes(api *echo.Group, handler *rest.RecommendationHandler, authRequired echo.MiddlewareFunc) {
	reco := api.Group("/recommendations", authRequired)
	reco.GET("", handler.GetRecommendations)
}

func SetBudgetRoutes(api *echo.Group, handler *rest.BudgetHandler, authRequired echo.MiddlewareFunc, clubAdminOnly echo.MiddlewareFunc, collegeAdminOnly echo.MiddlewareFunc) {
	budgets := api.Group("/budgets", authRequired)

	budgets.GET("", handler.GetAllClubBudgets, collegeAdminOnly)
	budgets.GET("/:clubId", handler.GetClubBudget, clubAdminOnly)
	budgets.GET("/:clubId/categories", handler.GetCategories, clubAdminOnly)
	budgets.GET("/:clubId/transactions", handler.ListTransactions, clubAdminOnly)
	budgets.POST("/:clubId/transactions", handler.AddTransaction, clubAdminOnly)
	budgets.PUT("/transactions/:id/approve", handler.ApproveTransaction, collegeAdminOnly)
}

func SetSponsorshipRoutes(api *echo.Group, handler *rest.SponsorshipHandler, authRequired echo.MiddlewareFunc, clubAdminOnly echo.MiddlewareFunc) {
	sponsors := api.Group("/sponsors", authRequired, clubAdminOnly)
	sponsors.POST("", handler.AddSponsor)
	sponsors.GET("", handler.GetAllSponsors)

	deals := api.Group("/sponsorship-deals", authRequired, clubAdminOnly)
	deals.POST("", handler.CreateDeal)
	deals.GET("", handler.ListDeals)
	deals.PUT("/:id/status", handler.UpdateDealStatus)
	deals.PUT("/:id/roi", handler.RecordROI)

	api.GET("/clubs/:clubId/sponsorship", handler.GetClubSponsorship, authRequired, clubAdminOnly)
}
