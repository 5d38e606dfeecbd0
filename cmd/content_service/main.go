package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	contenthandlers "course_content_service/internal/content/api/handlers"
	contentrouter "course_content_service/internal/content/api/router"
	contentapp "course_content_service/internal/content/app"
	contentrepo "course_content_service/internal/content/repository"
	mediahandlers "course_content_service/internal/media/api/handlers"
	mediarouter "course_content_service/internal/media/api/router"
	mediaapp "course_content_service/internal/media/app"
	mediadomain "course_content_service/internal/media/domain"
	"course_content_service/pkg/config"
	"course_content_service/pkg/database"
	"course_content_service/pkg/logger"

	_ "course_content_service/docs" // generated Swagger docs

	"github.com/gofiber/fiber/v2"
	fiber_log "github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"
)

func main() {
	logger.Log = logger.Initialize(config.EnvConfig.ContentService, config.EnvConfig.ContentServiceLogPath)

	cfg := config.LoadConfig[config.Content](config.EnvConfig.ContentService, config.EnvConfig.ContentServiceYAMLPath)

	// MongoDB holds the course / chapter / video collections
	mongoURI := fmt.Sprintf("mongodb://%s:%s@%s:%d", cfg.Mongo.User, cfg.Mongo.Password, cfg.Mongo.Host, cfg.Mongo.Port)
	if cfg.Mongo.User == "" {
		mongoURI = fmt.Sprintf("mongodb://%s:%d", cfg.Mongo.Host, cfg.Mongo.Port)
	}
	mongoDB, err := database.NewMongoDB(context.Background(), database.Connection{
		ConnectStr:    mongoURI,
		RetryCount:    cfg.Mongo.RetryCount,
		RetryInterval: time.Duration(cfg.Mongo.RetryInterval) * time.Second,
	}, cfg.Mongo.Database)
	if err != nil {
		logger.Log.Fatal("Unable to connect to MongoDB after retries",
			zap.String("address", fmt.Sprintf("%s:%d", cfg.Mongo.Host, cfg.Mongo.Port)),
			zap.Error(err))
	}
	defer mongoDB.Close(context.Background())

	courseRepo := contentrepo.NewCourseRepository(mongoDB.Database)
	chapterRepo := contentrepo.NewChapterRepository(mongoDB.Database)
	videoRepo := contentrepo.NewVideoRepository(mongoDB.Database)

	// MinIO stores the uploaded thumbnails and video files
	minioClient, err := database.NewMinIOConnection(database.MinIOConnection{
		Endpoint:   fmt.Sprintf("%s:%d", cfg.MinIO.Host, cfg.MinIO.Port),
		User:       cfg.MinIO.User,
		Password:   cfg.MinIO.Password,
		BucketName: cfg.MinIO.BucketName,
		UseSSL:     cfg.MinIO.UseSSL,

		RetryCount:    cfg.MinIO.RetryCount,
		RetryInterval: time.Duration(cfg.MinIO.RetryInterval) * time.Second,
	})
	if err != nil {
		logger.Log.Fatal("Unable to connect to minio after retries", zap.Error(err))
	}

	rabbitURL := fmt.Sprintf("amqp://%s:%s@%s:%s/", cfg.RabbitMQ.User, cfg.RabbitMQ.Password, cfg.RabbitMQ.IP, cfg.RabbitMQ.Port)
	conn, err := database.ConnectRabbitMQWithRetry(database.Connection{
		ConnectStr:    rabbitURL,
		RetryCount:    cfg.RabbitMQ.RetryCount,
		RetryInterval: time.Duration(cfg.RabbitMQ.RetryInterval) * time.Second,
	})
	if err != nil {
		log.Fatalf("RabbitMQ connect failed: %v", err)
	}
	defer conn.Close()

	rabbitChannel, err := database.GetRabbitMQChannelWithRetry(conn, cfg.RabbitMQ.RetryCount, time.Duration(cfg.RabbitMQ.RetryInterval)*time.Second)
	if err != nil {
		log.Fatalf("RabbitMQ channel failed: %v", err)
	}
	defer rabbitChannel.Close()

	if _, err := rabbitChannel.QueueDeclare(
		mediadomain.QueueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		log.Fatalf("Queue Declare failed: %v", err)
	}

	kafkaWriter, err := database.NewKafkaWriterWithRetry(database.KafkaConnection{
		Brokers:       cfg.Kafka.Brokers,
		Topic:         cfg.Kafka.Topic,
		RetryCount:    cfg.Kafka.RetryCount,
		RetryInterval: time.Duration(cfg.Kafka.RetryInterval) * time.Second,
	})
	if err != nil {
		log.Fatalf("Kafka writer failed: %v", err)
	}
	defer kafkaWriter.Close()

	events := contentapp.NewEventPublisher(database.NewKafkaRepository(kafkaWriter))
	aggregator := contentapp.NewAggregator(courseRepo, chapterRepo, videoRepo)

	courseHandler := contenthandlers.NewCourseHandler(
		contentapp.NewCourseUseCase(courseRepo, chapterRepo, videoRepo, events))
	chapterHandler := contenthandlers.NewChapterHandler(
		contentapp.NewChapterUseCase(courseRepo, chapterRepo, videoRepo, aggregator, events))
	videoHandler := contenthandlers.NewVideoHandler(
		contentapp.NewVideoUseCase(courseRepo, chapterRepo, videoRepo, aggregator, events))

	uploadHandler := mediahandlers.NewUploadHandler(
		mediaapp.NewMediaUseCase(minioClient, database.NewRabbitRepository(rabbitChannel)))

	// the publish worker promotes staged uploads in the background
	consumer := mediaapp.NewConsumer(rabbitChannel, minioClient, mediadomain.QueueName)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go consumer.StartConsumer(ctx)

	r := fiber.New()

	file, err := os.OpenFile(fmt.Sprintf("%s/access.log", config.EnvConfig.ContentServiceLogPath), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer file.Close()

	r.Use(fiber_log.New(fiber_log.Config{
		Output: file,
	}))

	contentrouter.RegisterRoutes(r, courseHandler, chapterHandler, videoHandler)
	mediarouter.RegisterRoutes(r, uploadHandler)

	if err := r.Listen(":" + cfg.Port); err != nil {
		logger.Log.Fatal("Server failed to start", zap.Error(err))
	}
}
