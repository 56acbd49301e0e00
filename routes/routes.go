package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/DhyanMarasinghe/Fitnesstrackerpro/config"
	"github.com/DhyanMarasinghe/Fitnesstrackerpro/controllers"
	"github.com/DhyanMarasinghe/Fitnesstrackerpro/middlewares"
	"github.com/DhyanMarasinghe/Fitnesstrackerpro/services"
)

// SetupRouter wires services, controllers and middleware into the gin engine.
func SetupRouter(db *gorm.DB, cfg *config.Config, log *zap.Logger, limiter middlewares.CounterStore) *gin.Engine {
	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middlewares.RequestLogger(log))
	r.Use(middlewares.Recovery(log))

	secret := []byte(cfg.JWTSecret)

	authCtl := controllers.NewAuthController(services.NewAuthService(db, secret), log, cfg.Production())
	stepsCtl := controllers.NewStepsController(services.NewStepsService(db), log)
	workoutCtl := controllers.NewWorkoutController(services.NewWorkoutService(db), log)
	userCtl := controllers.NewUserController(services.NewUserService(db), log)
	progressCtl := controllers.NewProgressController(services.NewProgressService(db), log)

	// Public auth routes, throttled per client address.
	auth := r.Group("/auth")
	{
		auth.POST("/register",
			middlewares.RateLimit(limiter, log, "register",
				middlewares.RegisterAttempts, middlewares.RateLimitWindow,
				"Too many registration attempts. Please try again later."),
			authCtl.Register)
		auth.POST("/login",
			middlewares.RateLimit(limiter, log, "login",
				middlewares.LoginAttempts, middlewares.RateLimitWindow,
				"Too many login attempts. Please try again later."),
			authCtl.Login)
	}

	// Everything else requires an authenticated caller.
	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware(secret))
	{
		api.GET("/steps", stepsCtl.List)
		api.POST("/steps", stepsCtl.Upsert)
		api.PUT("/steps", stepsCtl.Update)
		api.DELETE("/steps", stepsCtl.Delete)

		api.GET("/workouts", workoutCtl.List)
		api.POST("/workouts", workoutCtl.Create)
		api.PUT("/workouts", workoutCtl.Update)
		api.DELETE("/workouts", workoutCtl.Delete)

		user := api.Group("/user")
		{
			user.GET("/profile", userCtl.GetProfile)
			user.PUT("/profile", userCtl.UpdateProfile)
			user.GET("/goals", userCtl.GetGoals)
			user.POST("/goals", userCtl.SetGoals)
			user.PUT("/goals", userCtl.UpdateGoals)
		}

		api.GET("/dashboard", progressCtl.Dashboard)
		api.GET("/progress", progressCtl.Report)
	}

	return r
}
