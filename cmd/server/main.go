package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coachdesk/platform/internal/api"
	"coachdesk/platform/internal/auth"
	"coachdesk/platform/internal/config"
	"coachdesk/platform/internal/logger"
	"coachdesk/platform/internal/repository/mongo"
	"coachdesk/platform/internal/service"
	"coachdesk/platform/internal/session"
	"coachdesk/platform/internal/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.Get().Fatal().Err(err).Msg("could not load config")
	}

	log := logger.Init(logger.Options{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})
	log.Info().Str("addr", cfg.Server.Address).Msg("starting server")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatal().Err(err).Msg("could not connect to MongoDB")
	}
	defer func() {
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Error().Err(err).Msg("failed to disconnect MongoDB")
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Info().Str("db", cfg.Database.Name).Msg("database connection established")

	// --- Ensure Indexes ---
	go func() { // Run index creation concurrently/in background
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureCustomerIndexes(ctx, appDB.Collection("customers"))
		mongo.EnsureTrainerIndexes(ctx, appDB.Collection("trainers"))
		mongo.EnsureWorkoutIndexes(ctx, appDB.Collection("workouts"))
		mongo.EnsureNutritionIndexes(ctx, appDB.Collection("nutrition_targets"))
		mongo.EnsureWeightGoalIndexes(ctx, appDB.Collection("weight_goals"))
		mongo.EnsureMessageIndexes(ctx, appDB.Collection("messages"))
		mongo.EnsureExerciseIndexes(ctx, appDB.Collection("exercises"))
		mongo.EnsureBrandingIndexes(ctx, appDB.Collection("branding"))
		log.Info().Msg("index creation process completed")
	}()

	// --- Session Store ---
	redisClient, err := session.Connect(context.Background(), cfg.Redis.Addr, cfg.Redis.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("could not connect to Redis")
	}
	defer redisClient.Close()
	sessions := session.NewStore(redisClient, cfg.Auth.SessionTTL)
	log.Info().Str("addr", cfg.Redis.Addr).Msg("session store connected")

	// --- File Storage ---
	fileStorage, err := storage.NewS3Storage(cfg.S3)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize S3 storage")
	}

	// --- Repositories ---
	customerRepo := mongo.NewMongoCustomerRepository(appDB)
	trainerRepo := mongo.NewMongoTrainerRepository(appDB)
	workoutRepo := mongo.NewMongoWorkoutRepository(appDB)
	nutritionRepo := mongo.NewMongoNutritionRepository(appDB)
	weightGoalRepo := mongo.NewMongoWeightGoalRepository(appDB)
	messageRepo := mongo.NewMongoMessageRepository(appDB)
	exerciseRepo := mongo.NewMongoExerciseRepository(appDB)
	brandingRepo := mongo.NewMongoBrandingRepository(appDB)
	uploadRepo := mongo.NewMongoUploadRepository(appDB)

	// --- Auth Plumbing ---
	codec := auth.NewTokenCodec(cfg.Auth.CustomerTokenSecret)
	authenticator := auth.NewAuthenticator(codec, sessions, cfg.Auth.JWTSecret, cfg.Auth.CustomerTokenMaxAge)

	// --- Services ---
	authService := service.NewAuthService(customerRepo, trainerRepo, codec, sessions, cfg.Auth.JWTSecret, cfg.Auth.JWTExpiration)
	customerService := service.NewCustomerService(customerRepo, workoutRepo, nutritionRepo, weightGoalRepo, messageRepo)
	adminService := service.NewAdminService(customerRepo, messageRepo, exerciseRepo, brandingRepo, uploadRepo, fileStorage)
	platformService := service.NewPlatformService(trainerRepo, customerRepo)
	brandingService := service.NewBrandingService(brandingRepo, fileStorage)
	billingService := service.NewBillingService(cfg.Billing)

	// --- Router ---
	router := gin.New()
	router.Use(gin.Recovery(), api.MetricsMiddleware())

	api.SetupRoutes(
		router,
		authenticator,
		cfg.Auth.CustomerTokenMaxAge,
		cfg.Auth.SessionTTL,
		authService,
		customerService,
		adminService,
		platformService,
		brandingService,
		billingService,
	)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("listen and serve failed")
		}
	}()
	log.Info().Str("addr", cfg.Server.Address).Msg("server listening")

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}
	log.Info().Msg("server exiting")
}
