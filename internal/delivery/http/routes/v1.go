package routes

import (
	"log"

	"career-connect/internal/config"
	v1 "career-connect/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func RegisterV1(r fiber.Router, cfg config.Config, db *mongo.Database, logger *log.Logger) {
	if r == nil {
		return
	}

	v1.Register(r, cfg, db, logger)
}
