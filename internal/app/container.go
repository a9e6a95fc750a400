package app

import (
	"context"
	"log"
	"time"

	"career-connect/internal/config"
	dbmongo "career-connect/internal/database/mongo"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

type Container struct {
	Config config.Config
	Client *mongo.Client
	DB     *mongo.Database
	Logger *log.Logger
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, db, err := dbmongo.Connect(ctx, cfg.Mongo)
	if err != nil {
		return nil, err
	}

	if err := dbmongo.EnsureIndexes(ctx, db); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return &Container{Config: cfg, Client: client, DB: db, Logger: logger}, nil
}

func (c *Container) Close() error {
	if c == nil || c.Client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return c.Client.Disconnect(ctx)
}
