package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"clinic-service/internal/app/config"

	_ "github.com/lib/pq"
)

const postgresPingTimeout = 5 * time.Second

func PostgresDSN(driverConfig *config.DriverConfig) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		driverConfig.Postgres.Host,
		driverConfig.Postgres.Port,
		driverConfig.Postgres.Username,
		driverConfig.Postgres.Password,
		driverConfig.Postgres.DBName,
		driverConfig.Postgres.SSLMode,
	)
}

func NewPostgresDB(driverConfig *config.DriverConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", PostgresDSN(driverConfig))
	if err != nil {
		return nil, fmt.Errorf("open postgres connection: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), postgresPingTimeout)
	defer cancel()

	err = db.PingContext(ctx)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to postgres at %s:%s: %w", driverConfig.Postgres.Host, driverConfig.Postgres.Port, err)
	}

	log.Println("Successfully connected to postgres database")
	return db, nil
}
