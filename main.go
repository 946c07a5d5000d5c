package main

import (
	"log"

	api "habitus-backend/cmd/api"
	authdomain "habitus-backend/internal/auth/domain"
	authRepo "habitus-backend/internal/auth/repository"
	authUsecase "habitus-backend/internal/auth/usecase"
	habitdomain "habitus-backend/internal/habit/domain"
	habitRepo "habitus-backend/internal/habit/repository"
	habitUsecase "habitus-backend/internal/habit/usecase"
	"habitus-backend/internal/reminder"
	settingsdomain "habitus-backend/internal/settings/domain"
	settingsRepo "habitus-backend/internal/settings/repository"
	settingsUsecase "habitus-backend/internal/settings/usecase"
	statsUsecase "habitus-backend/internal/stats/usecase"
	"habitus-backend/pkg/config"
	"habitus-backend/pkg/database"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(
		&authdomain.User{},
		&authdomain.RefreshToken{},
		&authdomain.DeviceToken{},
		&habitdomain.TaskDefinition{},
		&habitdomain.CompletionRecord{},
		&settingsdomain.Settings{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	deviceTokenRepository := authRepo.NewDeviceTokenRepository(db)
	taskRepository := habitRepo.NewTaskDefinitionRepository(db)
	completionRepository := habitRepo.NewCompletionRepository(db)
	settingsRepository := settingsRepo.NewSettingsRepository(db)

	// Initialize use cases
	authUc := authUsecase.NewAuthUsecase(userRepository, deviceTokenRepository, cfg)
	taskUc := habitUsecase.NewTaskUsecase(taskRepository, completionRepository)
	settingsUc := settingsUsecase.NewSettingsUsecase(settingsRepository)
	statsUc := statsUsecase.NewStatsUsecase(taskRepository, completionRepository, settingsUc, cfg.StreakLookback)

	// Start the reminder scheduler
	notifier := reminder.NewLogNotifier(deviceTokenRepository)
	scheduler := reminder.NewScheduler(settingsRepository, statsUc, notifier, cfg.ReminderInterval)
	scheduler.Start()
	defer scheduler.Stop()

	// Initialize HTTP handler and start server
	handler := api.NewHandler(authUc, taskUc, statsUc, settingsUc, cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
