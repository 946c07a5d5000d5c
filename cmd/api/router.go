package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authDelivery "habitus-backend/internal/auth/delivery"
	authUsecase "habitus-backend/internal/auth/usecase"
	habitDelivery "habitus-backend/internal/habit/delivery"
	settingsDelivery "habitus-backend/internal/settings/delivery"
	statsDelivery "habitus-backend/internal/stats/delivery"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, authHandler *authDelivery.AuthHandler, taskHandler *habitDelivery.TaskHandler, statsHandler *statsDelivery.StatsHandler, settingsHandler *settingsDelivery.SettingsHandler) {
	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", authDelivery.AuthMiddleware(authUc), authHandler.Me)
		}

		// Device routes (protected)
		devices := api.Group("/devices")
		devices.Use(authDelivery.AuthMiddleware(authUc))
		{
			devices.POST("/register", authHandler.RegisterDevice)
			devices.DELETE("/:token", authHandler.UnregisterDevice)
		}

		// Task routes (protected)
		tasks := api.Group("/tasks")
		tasks.Use(authDelivery.AuthMiddleware(authUc))
		{
			tasks.GET("", taskHandler.GetTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/search", taskHandler.SearchTasks)
			tasks.GET("/day/:date", taskHandler.GetTasksForDay)
			tasks.GET("/:id", taskHandler.GetTaskByID)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
			tasks.POST("/:id/complete", taskHandler.CompleteTask)
			tasks.DELETE("/:id/complete/:date", taskHandler.UncompleteTask)
		}

		// Statistics routes (protected)
		stats := api.Group("/stats")
		stats.Use(authDelivery.AuthMiddleware(authUc))
		{
			stats.GET("/daily", statsHandler.GetDailyAggregates)
			stats.GET("/streaks", statsHandler.GetStreaks)
		}

		// Settings routes (protected)
		settings := api.Group("/settings")
		settings.Use(authDelivery.AuthMiddleware(authUc))
		{
			settings.GET("", settingsHandler.GetSettings)
			settings.PUT("", settingsHandler.UpdateSettings)
		}
	}
}
