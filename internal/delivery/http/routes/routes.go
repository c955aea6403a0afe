package routes

import (
	"alumni-connect/internal/config"
	"alumni-connect/internal/database"
	"alumni-connect/internal/delivery/http/handler"
	v1 "alumni-connect/internal/delivery/http/routes/v1"
	"alumni-connect/internal/usecase"
	ucmessage "alumni-connect/internal/usecase/message"
	"alumni-connect/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	cfg      config.Config
	db       database.DB
	cache    usecase.Cache
	notifier ucmessage.Notifier
	wsh      *ws.Handler
}

func NewRegistry(cfg config.Config, db database.DB, cache usecase.Cache, notifier ucmessage.Notifier, wsh *ws.Handler) *Registry {
	return &Registry{cfg: cfg, db: db, cache: cache, notifier: notifier, wsh: wsh}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	handler.NewHealthHandler(r.db).RegisterRoutes(app)

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.cfg, r.db, r.cache, r.notifier)

	if r.wsh != nil {
		app.Get("/ws/messages", r.wsh.HandleMessagesWS)
	}
}
