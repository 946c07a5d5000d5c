package api

import (
	"github.com/gin-gonic/gin"

	authDelivery "habitus-backend/internal/auth/delivery"
	authUsecase "habitus-backend/internal/auth/usecase"
	habitDelivery "habitus-backend/internal/habit/delivery"
	habitUsecase "habitus-backend/internal/habit/usecase"
	settingsDelivery "habitus-backend/internal/settings/delivery"
	settingsUsecase "habitus-backend/internal/settings/usecase"
	statsDelivery "habitus-backend/internal/stats/delivery"
	statsUsecase "habitus-backend/internal/stats/usecase"
	"habitus-backend/pkg/config"
)

type Handler struct {
	authUsecase     authUsecase.AuthUsecase
	authHandler     *authDelivery.AuthHandler
	taskHandler     *habitDelivery.TaskHandler
	statsHandler    *statsDelivery.StatsHandler
	settingsHandler *settingsDelivery.SettingsHandler
	config          *config.Config
}

func NewHandler(authUc authUsecase.AuthUsecase, taskUc habitUsecase.TaskUsecase, statsUc statsUsecase.StatsUsecase, settingsUc settingsUsecase.SettingsUsecase, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase:     authUc,
		authHandler:     authDelivery.NewAuthHandler(authUc),
		taskHandler:     habitDelivery.NewTaskHandler(taskUc),
		statsHandler:    statsDelivery.NewStatsHandler(statsUc),
		settingsHandler: settingsDelivery.NewSettingsHandler(settingsUc),
		config:          cfg,
	}
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.authUsecase, h.authHandler, h.taskHandler, h.statsHandler, h.settingsHandler)

	return r.Run(addr)
}
