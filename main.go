package main

import (
	"os"

	"qaforum/config"
	"qaforum/handlers"
	"qaforum/middleware"
	"qaforum/models"
	"qaforum/routes"
	"qaforum/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Auto-migrate database models
	err = db.AutoMigrate(
		&models.User{},
		&models.Question{},
		&models.Answer{},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	// Optional Redis-backed question list cache
	redisClient := config.InitRedis(cfg)
	if redisClient != nil {
		log.Info().Str("host", cfg.RedisHost).Msg("question list cache enabled")
	}

	// Initialize services
	userService := services.NewUserService(db, redisClient)
	questionService := services.NewQuestionService(db, redisClient)
	answerService := services.NewAnswerService(db)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService, cfg.Debug)
	questionHandler := handlers.NewQuestionHandler(questionService, userService, cfg.Debug)
	answerHandler := handlers.NewAnswerHandler(answerService, questionService, userService, cfg.Debug)

	// Setup Gin router
	router := gin.Default()

	// Add CORS middleware
	router.Use(middleware.CORS())

	// Setup routes
	routes.SetupRoutes(router, userHandler, questionHandler, answerHandler)

	// Start server
	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := router.Run(cfg.BindAddress + ":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
