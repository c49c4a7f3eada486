package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"recruitment-intake-backend/config"
	v1 "recruitment-intake-backend/internal/delivery/http/v1"
	"recruitment-intake-backend/internal/repository/postgres"
	"recruitment-intake-backend/internal/repository/redisstore"
	"recruitment-intake-backend/internal/usecase"
	"recruitment-intake-backend/pkg/database"
	"recruitment-intake-backend/pkg/logger"
	"recruitment-intake-backend/pkg/redis"
	"recruitment-intake-backend/pkg/validation"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting recruitment intake backend", "port", cfg.Port)

	// 3. Custom validators for request binding (mobile, postal_code, admission_score)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	// 4. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 5. Setup Redis (refresh tokens, rate limit counters)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	defer redis.Close()

	// 6. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	applicantRepo := postgres.NewApplicantRepository(dbPool)
	educationRepo := postgres.NewEducationRepository(dbPool)
	experienceRepo := postgres.NewWorkExperienceRepository(dbPool)
	contactRepo := postgres.NewContactRepository(dbPool)
	familyRepo := postgres.NewFamilyRepository(dbPool)
	languageRepo := postgres.NewLanguageRepository(dbPool)
	militaryRepo := postgres.NewMilitaryRepository(dbPool)
	trainingRepo := postgres.NewTrainingRepository(dbPool)
	skillRepo := postgres.NewSkillRepository(dbPool)
	detailsRepo := postgres.NewApplicationDetailsRepository(dbPool)
	tokenRepo := redisstore.NewTokenStore(redis.Client())

	// 7. Setup UseCases
	healthUC := usecase.NewHealthUsecase(dbPool)
	authUC := usecase.NewAuthUsecase(userRepo, tokenRepo, usecase.AuthConfig{
		JWTSecret:  cfg.JWTSecret,
		AccessTTL:  time.Duration(cfg.AccessTTLMin) * time.Minute,
		RefreshTTL: time.Duration(cfg.RefreshTTLDays) * 24 * time.Hour,
		BcryptCost: cfg.BcryptCost,
	})
	jobUC := usecase.NewJobUsecase(jobRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo)
	applicantUC := usecase.NewApplicantUsecase(applicantRepo)
	educationUC := usecase.NewEducationUsecase(educationRepo)
	experienceUC := usecase.NewExperienceUsecase(experienceRepo)
	contactUC := usecase.NewContactUsecase(contactRepo)
	familyUC := usecase.NewFamilyUsecase(familyRepo)
	languageUC := usecase.NewLanguageUsecase(languageRepo)
	militaryUC := usecase.NewMilitaryUsecase(militaryRepo)
	trainingUC := usecase.NewTrainingUsecase(trainingRepo)
	skillUC := usecase.NewSkillUsecase(skillRepo)
	detailsUC := usecase.NewApplicationDetailsUsecase(detailsRepo)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		HealthUC:      healthUC,
		AuthUC:        authUC,
		JobUC:         jobUC,
		ApplicationUC: applicationUC,
		ApplicantUC:   applicantUC,
		EducationUC:   educationUC,
		ExperienceUC:  experienceUC,
		ContactUC:     contactUC,
		FamilyUC:      familyUC,
		LanguageUC:    languageUC,
		MilitaryUC:    militaryUC,
		TrainingUC:    trainingUC,
		SkillUC:       skillUC,
		DetailsUC:     detailsUC,
		Config:        cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
