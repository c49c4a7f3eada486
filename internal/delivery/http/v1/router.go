package v1

import (
	"net/http"
	"time"

	"recruitment-intake-backend/config"
	"recruitment-intake-backend/internal/delivery/http/middleware"
	"recruitment-intake-backend/internal/delivery/http/response"
	"recruitment-intake-backend/internal/domain"
	"recruitment-intake-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	HealthUC      usecase.HealthUsecase
	AuthUC        domain.AuthUsecase
	JobUC         domain.JobUsecase
	ApplicationUC domain.ApplicationUsecase
	ApplicantUC   domain.ApplicantUsecase
	EducationUC   domain.EducationUsecase
	ExperienceUC  domain.WorkExperienceUsecase
	ContactUC     domain.ContactUsecase
	FamilyUC      domain.FamilyUsecase
	LanguageUC    domain.LanguageUsecase
	MilitaryUC    domain.MilitaryUsecase
	TrainingUC    domain.TrainingUsecase
	SkillUC       domain.SkillUsecase
	DetailsUC     domain.ApplicationDetailsUsecase
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// CORS must run before anything that can short-circuit the request
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second
	r.Use(middleware.RateLimitMiddleware(
		middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))
	loginLimiter := middleware.RateLimitMiddleware(
		middleware.LoginRateLimitConfig(deps.Config.RateLimitLoginThreshold, window))

	v1 := r.Group("/v1")
	v1.Use(middleware.CSRFMiddleware(deps.Config.CookieSecure))

	v1.GET("/health", func(c *gin.Context) {
		status := deps.HealthUC.Check(c.Request.Context())
		code := http.StatusOK
		if status["status"] != "ok" {
			code = http.StatusServiceUnavailable
		}
		response.Success(c, code, "System health", status)
	})

	// Catalog reads are public but identity-aware: an admin browsing jobs
	// sees the postings assigned to them, everyone else the open catalog.
	catalog := v1.Group("")
	catalog.Use(middleware.OptionalAuth(deps.Config, deps.AuthUC))

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Config, deps.AuthUC))
	{
		NewAuthHandler(v1, protected, deps.AuthUC, deps.Config, loginLimiter)
		NewJobHandler(catalog, protected, deps.JobUC)
		NewApplicationHandler(protected, deps.ApplicationUC)
		NewApplicantHandler(protected, deps.ApplicantUC)
		NewEducationHandler(protected, deps.EducationUC)
		NewExperienceHandler(protected, deps.ExperienceUC)
		NewContactHandler(protected, deps.ContactUC)
		NewFamilyHandler(protected, deps.FamilyUC)
		NewLanguageHandler(protected, deps.LanguageUC)
		NewMilitaryHandler(protected, deps.MilitaryUC)
		NewTrainingHandler(protected, deps.TrainingUC)
		NewSkillHandler(protected, deps.SkillUC)
		NewApplicationDetailsHandler(protected, deps.DetailsUC)
	}

	return r
}
