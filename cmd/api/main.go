package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"gymdesk/internal/cache"
	"gymdesk/internal/config"
	"gymdesk/internal/database"
	"gymdesk/internal/middleware"
	"gymdesk/internal/modules/auth"
	"gymdesk/internal/modules/billing"
	"gymdesk/internal/modules/members"
	"gymdesk/internal/modules/schedule"
	jwtsvc "gymdesk/internal/pkg/jwt"
	"gymdesk/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadRuntimeConfig()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal(err)
	}

	orgRepo := repository.NewOrganizationRepository(db)
	userRepo := repository.NewUserRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	planRepo := repository.NewPlanRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	templateRepo := repository.NewClassTemplateRepository(db)
	instanceRepo := repository.NewClassInstanceRepository(db)
	ledgerRepo := repository.NewGenerationLogRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	invalidator := cache.NewInvalidator(cache.NewClient(cfg.RedisAddr, cfg.RedisPassword))

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	memberService := members.NewService(memberRepo, planRepo)
	memberHandler := members.NewHandler(memberService)

	billingService := billing.NewService(planRepo, paymentRepo, memberRepo)
	billingHandler := billing.NewHandler(billingService)

	scheduleService := schedule.NewService(templateRepo, instanceRepo, ledgerRepo, orgRepo, cfg.DefaultTimezone)
	scheduleHandler := schedule.NewHandler(scheduleService, invalidator)

	if cfg.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			staff := protected.Group("/")
			staff.Use(middleware.StaffOnly())
			{
				scheduleHandler.RegisterRoutes(staff)
				memberHandler.RegisterRoutes(staff)
				billingHandler.RegisterRoutes(staff)
			}

			admin := protected.Group("/")
			admin.Use(middleware.AdminOnly())
			{
				authHandler.RegisterAdminRoutes(admin)
			}
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
