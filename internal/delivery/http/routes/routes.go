package routes

import (
	"log"

	"career-connect/internal/config"
	"career-connect/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type Registry struct {
	cfg    config.Config
	client *mongo.Client
	db     *mongo.Database
	logger *log.Logger
	health *handler.HealthHandler
}

func NewRegistry(cfg config.Config, client *mongo.Client, db *mongo.Database, logger *log.Logger) *Registry {
	return &Registry{
		cfg:    cfg,
		client: client,
		db:     db,
		logger: logger,
		health: handler.NewHealthHandler(client),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	r.health.RegisterRoutes(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.cfg, r.db, r.logger)
}
