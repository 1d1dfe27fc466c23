package router

import (
	"time"

	"github.com/Baaaki/trainergo/internal/config"
	"github.com/Baaaki/trainergo/internal/handler"
	"github.com/Baaaki/trainergo/internal/middleware"
	"github.com/Baaaki/trainergo/internal/repository"
	"github.com/Baaaki/trainergo/internal/service"
	"github.com/Baaaki/trainergo/internal/utils"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Deps are the long-lived resources the router wires into handlers.
// Redis is optional: without it the auth routes are not rate limited and
// the admin IP ban routes are not registered.
type Deps struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client
	Sentry bool
}

// TokenOptions derives the JWT settings from config.
func TokenOptions(cfg *config.Config) utils.TokenOptions {
	return utils.TokenOptions{
		Secret:    cfg.JWTSecret,
		Issuer:    cfg.JWTIssuer,
		Audience:  cfg.JWTAudience,
		ExpiresIn: cfg.JWTExpiry,
	}
}

// Setup builds the gin engine with every route registered.
func Setup(deps Deps) *gin.Engine {
	cfg := deps.Config
	tokens := TokenOptions(cfg)

	// Repositories
	userRepo := repository.NewUserRepository(deps.DB)
	courseRepo := repository.NewCourseRepository(deps.DB)
	enrollmentRepo := repository.NewEnrollmentRepository(deps.DB)
	athleteRepo := repository.NewAthleteRepository(deps.DB)
	planRepo := repository.NewWorkoutPlanRepository(deps.DB)
	diaryRepo := repository.NewDiaryRepository(deps.DB)

	// Services
	authService := service.NewAuthService(userRepo, tokens)
	courseService := service.NewCourseService(courseRepo)
	enrollmentService := service.NewEnrollmentService(enrollmentRepo, courseRepo, userRepo)
	athleteService := service.NewAthleteService(athleteRepo, userRepo)
	planService := service.NewWorkoutPlanService(planRepo, userRepo)
	diaryService := service.NewDiaryService(diaryRepo, athleteRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	adminHandler := handler.NewAdminHandler(authService)
	courseHandler := handler.NewCourseHandler(courseService)
	enrollmentHandler := handler.NewEnrollmentHandler(enrollmentService)
	athleteHandler := handler.NewAthleteHandler(athleteService)
	planHandler := handler.NewWorkoutPlanHandler(planService)
	diaryHandler := handler.NewDiaryHandler(diaryService)
	healthHandler := handler.NewHealthHandler(deps.DB)

	metrics := middleware.NewMetrics()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(metrics.Middleware())
	if deps.Sentry {
		r.Use(sentrygin.New(sentrygin.Options{
			Repanic: true,
			Timeout: 2 * time.Second,
		}))
	}
	// cors.New panics on an empty origin list, so no origins means no CORS at all
	if origins := cfg.AllowedOrigins(); len(origins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.HSTSMiddleware(cfg.IsProduction()))

	r.GET("/health", healthHandler.Health)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api")

	var limiter *middleware.RateLimiter
	if deps.Redis != nil {
		limiter = middleware.NewRateLimiter(deps.Redis, middleware.RateLimiterConfig{
			MaxRequests: cfg.RateLimitMaxRequests,
			Window:      cfg.RateLimitWindow,
			BlockTime:   cfg.RateLimitBlockTime,
			KeyPrefix:   "ratelimit:auth",
		})
	}

	auth := api.Group("/auth")
	if limiter != nil {
		auth.Use(limiter.Middleware())
	}
	{
		auth.POST("/register/user", authHandler.RegisterUser)
		auth.POST("/register/coach", authHandler.RegisterCoach)
		auth.POST("/login", authHandler.Login)
		auth.GET("/me", middleware.AuthMiddleware(tokens), authHandler.Me)
	}

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(tokens))

	courses := protected.Group("/courses")
	{
		courses.GET("", courseHandler.List)
		courses.POST("", courseHandler.Create)
		courses.PUT("/:id", courseHandler.Update)
		courses.DELETE("/:id", courseHandler.Delete)
	}

	enrollments := protected.Group("/enrollments")
	{
		enrollments.POST("/join/:courseId", enrollmentHandler.Join)
		enrollments.DELETE("/leave/:courseId", enrollmentHandler.Leave)
		enrollments.GET("/my-enrollments", enrollmentHandler.MyEnrollments)
		enrollments.GET("/course/:courseId/students", enrollmentHandler.Students)
		enrollments.POST("/course/:courseId/enroll-student", enrollmentHandler.EnrollStudent)
	}

	athletes := protected.Group("/athletes")
	{
		athletes.GET("/my-athletes", athleteHandler.MyAthletes)
		athletes.POST("/add-by-email", athleteHandler.AddByEmail)
		athletes.GET("/my-profile", athleteHandler.MyProfile)
		athletes.GET("/my-profiles", athleteHandler.MyProfiles)
		athletes.GET("/:userId", athleteHandler.Detail)
		athletes.PUT("", athleteHandler.Update)
	}

	plans := protected.Group("/workoutplans")
	{
		plans.GET("/athlete/:athleteUserId", planHandler.ForAthlete)
		plans.GET("/my-plans", planHandler.MyPlans)
		plans.POST("", planHandler.Create)
		plans.PUT("/:id", planHandler.Update)
		plans.DELETE("/:id", planHandler.Delete)
	}

	diary := protected.Group("/diary")
	{
		diary.POST("/workout", diaryHandler.LogWorkout)
		diary.GET("/workout/:athleteUserId", diaryHandler.Workouts)
		diary.POST("/measurement", diaryHandler.LogMeasurement)
		diary.GET("/measurement/:athleteUserId", diaryHandler.Measurements)
	}

	admin := protected.Group("/admin")
	admin.Use(middleware.AdminMiddleware())
	{
		admin.GET("/users", adminHandler.ListUsers)
		if limiter != nil {
			banHandler := handler.NewIPBanHandler(limiter)
			admin.POST("/banned-ips", banHandler.Ban)
			admin.DELETE("/banned-ips/:ip", banHandler.Unban)
		}
	}

	return r
}
