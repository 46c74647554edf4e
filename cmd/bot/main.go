package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"territorial-admin-bot/internal/config"
	"territorial-admin-bot/internal/handler"
	"territorial-admin-bot/internal/repository"
	"territorial-admin-bot/internal/service"
	"territorial-admin-bot/pkg/telegram"
)

func main() {
	logrus.Info("Initializing config...")
	cfg := config.GetBotConfig()
	logrus.Info("Config initialized...")

	db, err := gorm.Open(sqlite.Open(cfg.DatabaseURL), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		logrus.Fatal("Failed to connect to database:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logrus.Fatal("Failed to get database instance:", err)
	}

	if _, err = sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		logrus.Infof("Warning: Failed to enable foreign keys: %v", err)
	}

	leaveRepo, err := repository.NewGormLeaveRecordRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create leave record repository")
	}

	contactRepo, err := repository.NewGormContactRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create contact repository")
	}

	branchRepo, err := repository.NewGormBranchStatusRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create branch status repository")
	}

	emergencyRepo, err := repository.NewGormEmergencyStatusRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create emergency status repository")
	}

	leaveService, err := service.NewLeaveService(leaveRepo, cfg.CalendarYear, cfg.DataDir)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create leave service")
	}
	logrus.Infof("Leave calendar year: %d", cfg.CalendarYear)

	contactsService, err := service.NewContactsService(contactRepo, cfg.DataDir)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create contacts service")
	}

	statusService := service.NewStatusService(branchRepo, emergencyRepo)
	faqService := service.NewFAQService(cfg.DataDir)

	client, err := telegram.NewClient(cfg.TelegramToken)
	if err != nil {
		logrus.Fatal("Failed to create Telegram client:", err)
	}

	logrus.Infof("Authorized on account %s", client.Bot.Self.UserName)

	botHandler := handler.NewHandler(
		client,
		leaveService,
		contactsService,
		statusService,
		faqService,
		cfg,
	)

	updates := client.Bot.GetUpdatesChan(client.UpdateConfig)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go botHandler.HandleUpdates(updates)

	logrus.Info("Bot started. Press Ctrl+C to stop.")
	<-stop

	if err := sqlDB.Close(); err != nil {
		logrus.Infof("Error closing database: %v", err)
	}

	logrus.Info("Bot stopped gracefully")
}
