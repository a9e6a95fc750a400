package v1

import (
	"log"

	"career-connect/internal/config"
	"career-connect/internal/delivery/http/handler"
	"career-connect/internal/delivery/http/middleware"
	"career-connect/internal/infrastructure/cache"
	"career-connect/internal/infrastructure/email"
	"career-connect/internal/infrastructure/persistence/mongodb"
	"career-connect/internal/pkg/jwt"
	"career-connect/internal/usecase"
	ucauth "career-connect/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func Register(r fiber.Router, cfg config.Config, db *mongo.Database, logger *log.Logger) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	authMw := middleware.NewAuthMiddleware(jwtSvc)

	jobRepo := mongodb.NewJobRepository(db)
	savedRepo := mongodb.NewSavedJobRepository(db)
	userRepo := mongodb.NewUserRepository(db)
	adminRepo := mongodb.NewAdminRepository(db)
	materialRepo := mongodb.NewMaterialRepository(db)

	var mailer email.Service
	if cfg.Email.SendGridAPIKey != "" {
		mailer = email.NewSendGridClient(cfg.Email.SendGridAPIKey, cfg.Email.Sender, cfg.Email.SenderName, logger)
	} else {
		mailer = email.NewLogSender(logger)
	}

	codeStore := cache.NewRedis(logger)
	otpSvc := ucauth.NewOTPService(codeStore, mailer, cfg.OTP.TTL, logger)

	authUC := usecase.NewAuthUsecase(userRepo, adminRepo, jwtSvc, otpSvc, logger)
	overviewUC := usecase.NewOverviewUsecase(jobRepo, logger)
	savedUC := usecase.NewSavedJobsUsecase(jobRepo, savedRepo, logger)
	jobAdminUC := usecase.NewJobAdminUsecase(jobRepo, logger)
	materialUC := usecase.NewMaterialUsecase(materialRepo, logger)

	authHandler := handler.NewAuthHandler(authUC)
	jobsHandler := handler.NewJobsHandler(overviewUC, savedUC, jobAdminUC)
	adminJobsHandler := handler.NewAdminJobsHandler(jobAdminUC)
	materialHandler := handler.NewMaterialHandler(materialUC)

	authHandler.RegisterRoutes(r)

	protected := r.Group("", authMw.Middleware())
	authHandler.RegisterProtected(protected)
	jobsHandler.RegisterRoutes(protected)
	materialHandler.RegisterRoutes(protected)

	admin := r.Group("/admin", authMw.Middleware(), authMw.RequireAdmin())
	adminJobsHandler.RegisterRoutes(admin)
	materialHandler.RegisterAdminRoutes(admin)
}
