package main

import (
	"fmt"
	"log"
	"os"
	"time"

	accounthandlers "course_content_service/internal/account/api/handlers"
	accountrouter "course_content_service/internal/account/api/router"
	accountapp "course_content_service/internal/account/app"
	accountdomain "course_content_service/internal/account/domain"
	accountrepo "course_content_service/internal/account/repository"
	"course_content_service/pkg/config"
	"course_content_service/pkg/database"
	"course_content_service/pkg/logger"

	_ "course_content_service/docs" // generated Swagger docs

	"github.com/gofiber/fiber/v2"
	fiber_log "github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"
)

func main() {
	logger.Log = logger.Initialize(config.EnvConfig.AccountService, config.EnvConfig.AccountServiceLogPath)

	cfg := config.LoadConfig[config.Account](config.EnvConfig.AccountService, config.EnvConfig.AccountServiceYAMLPath)

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable",
		cfg.PostgreSQL.Host, cfg.PostgreSQL.User, cfg.PostgreSQL.Password, cfg.PostgreSQL.Database, cfg.PostgreSQL.Port)
	db, err := database.NewDatabaseConnection(database.Connection{
		ConnectStr:    dsn,
		RetryCount:    cfg.PostgreSQL.RetryCount,
		RetryInterval: time.Duration(cfg.PostgreSQL.RetryInterval) * time.Second,
	})
	if err != nil {
		logger.Log.Fatal("Unable to connect to postgreSQL database after retries",
			zap.String("address", fmt.Sprintf("[%s]", dsn)),
			zap.Error(err))
	}
	defer db.Close()

	masterName, sentinelAddrs := config.GetRedisSetting()
	redisRepo, err := database.NewRedisRepository[accountdomain.UserSession](masterName, sentinelAddrs, cfg.RedisAccount.RedisDB)
	if err != nil {
		logger.Log.Fatal("Unable to connect to redis after retries", zap.Error(err))
	}

	userRepo := accountrepo.NewUserRepository(db)
	userHandler := accounthandlers.NewUserHandler(
		accountapp.NewUserUseCase(userRepo, cfg.SessionTTL, redisRepo))

	r := fiber.New()

	file, err := os.OpenFile(fmt.Sprintf("%s/access.log", config.EnvConfig.AccountServiceLogPath), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer file.Close()

	r.Use(fiber_log.New(fiber_log.Config{
		Output: file,
	}))

	accountrouter.RegisterRoutes(r, userHandler)

	if err := r.Listen(":" + cfg.Port); err != nil {
		logger.Log.Fatal("Server failed to start", zap.Error(err))
	}
}
