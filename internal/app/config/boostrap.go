package config

import (
	"context"
	"database/sql"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Worker is a background job that must finish before connections close.
type Worker interface {
	Stop()
}

// Bootstrap carries the live connections shared by the HTTP server. Redis,
// RabbitMQ and Postgres stay nil when their feature is switched off.
type Bootstrap struct {
	Router         *chi.Mux
	Postgres       *sql.DB
	Redis          *redis.Client
	RabbitMQ       *amqp091.Connection
	Logger         *zap.Logger
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	Workers        []Worker
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	for _, worker := range b.Workers {
		worker.Stop()
	}

	if b.Redis != nil {
		err := b.Redis.Close()
		if err != nil {
			return err
		}
		log.Println("Successfully closing Redis")
	}

	if b.RabbitMQ != nil {
		err := b.RabbitMQ.Close()
		if err != nil {
			return err
		}
		log.Println("Successfully closing RabbitMQ")
	}

	if b.Postgres != nil {
		err := b.Postgres.Close()
		if err != nil {
			return err
		}
		log.Println("Successfully closing Postgres")
	}

	// Sync on a stdout sink returns EINVAL on Linux; ignored.
	_ = b.Logger.Sync()
	log.Println("Successfully closing Logger")

	return nil
}
