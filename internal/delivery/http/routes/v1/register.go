package v1

import (
	"alumni-connect/internal/config"
	"alumni-connect/internal/database"
	"alumni-connect/internal/delivery/http/handler"
	"alumni-connect/internal/delivery/http/middleware"
	"alumni-connect/internal/pkg/jwt"
	"alumni-connect/internal/repository"
	"alumni-connect/internal/usecase"
	ucdonation "alumni-connect/internal/usecase/donation"
	ucevent "alumni-connect/internal/usecase/event"
	ucfeedback "alumni-connect/internal/usecase/feedback"
	ucmessage "alumni-connect/internal/usecase/message"
	ucstats "alumni-connect/internal/usecase/stats"
	ucuser "alumni-connect/internal/usecase/user"

	"github.com/gofiber/fiber/v3"
)

// Register wires the repositories, usecases, and handlers onto the /api/v1
// router. Registration, login, the event catalog, stats, and feedback are
// public; everything acting on behalf of a user requires an access token.
func Register(r fiber.Router, cfg config.Config, db database.DB, cache usecase.Cache, notifier ucmessage.Notifier) {
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

	userRepo := repository.NewPostgresUserRepository(db)
	eventRepo := repository.NewPostgresEventRepository(db)
	messageRepo := repository.NewPostgresMessageRepository(db)
	donationRepo := repository.NewPostgresDonationRepository(db)
	feedbackRepo := repository.NewPostgresFeedbackRepository(db)

	userUC := ucuser.NewService(userRepo, eventRepo, donationRepo)
	authUC := usecase.NewAuthUsecase(userRepo, userUC, jwtSvc)
	eventUC := ucevent.NewService(eventRepo, userRepo, cache)
	messageUC := ucmessage.NewService(messageRepo, userRepo, notifier)
	donationUC := ucdonation.NewService(donationRepo, userRepo)
	feedbackUC := ucfeedback.NewService(feedbackRepo)
	statsUC := ucstats.NewService(userRepo, eventRepo, donationRepo, cache)

	authHandler := handler.NewAuthHandler(authUC)
	userHandler := handler.NewUserHandler(userUC)
	eventHandler := handler.NewEventHandler(eventUC)
	messageHandler := handler.NewMessageHandler(messageUC)
	donationHandler := handler.NewDonationHandler(donationUC)
	feedbackHandler := handler.NewFeedbackHandler(feedbackUC)
	statsHandler := handler.NewStatsHandler(statsUC)

	authGroup := r.Group("/auth")
	authHandler.RegisterRoutes(authGroup)

	r.Get("/events", eventHandler.List)
	r.Get("/stats", statsHandler.Overview)
	r.Post("/feedback", feedbackHandler.Submit)

	protected := r.Group("", authMw.Middleware())
	userHandler.RegisterRoutes(protected)
	messageHandler.RegisterRoutes(protected)
	protected.Post("/events/register", eventHandler.Register)
	protected.Post("/donate", donationHandler.Donate)
}
