package main

import (
	"flag"
	"os"

	"clinic-service/internal/app/config"
	"clinic-service/internal/app/drivers/database"
	"clinic-service/internal/app/drivers/logger"

	migrate "github.com/rubenv/sql-migrate"
	"github.com/sirupsen/logrus"
)

const (
	exitOK = iota
	exitFailure
	exitUsage
)

func main() {
	direction := flag.String("direction", "up", "migration direction: up, down or status")
	maxMigrations := flag.Int("max", 0, "maximum number of migrations to apply, 0 for all")
	flag.Parse()

	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	log := logger.NewLogrusLogger(driverConfig, internalConfig)

	os.Exit(run(log, driverConfig, *direction, *maxMigrations))
}

// run returns the process exit code so the deferred Close runs before exit.
func run(log *logrus.Logger, driverConfig *config.DriverConfig, direction string, maxMigrations int) int {
	migrationDirection, ok := parseDirection(direction)
	if !ok && direction != "status" {
		log.Errorf("Unknown direction %q", direction)
		return exitUsage
	}

	db, err := database.NewPostgresDB(driverConfig)
	if err != nil {
		log.WithError(err).Error("Error connecting to postgres")
		return exitFailure
	}
	defer db.Close()

	if direction == "status" {
		pending, err := database.PendingMigrations(db)
		if err != nil {
			log.WithError(err).Error("Error planning migrations")
			return exitFailure
		}
		for _, migration := range pending {
			log.WithField("id", migration.Id).Info("Pending migration")
		}
		log.Infof("%d pending migrations", len(pending))
		return exitOK
	}

	n, err := database.Migrate(db, migrationDirection, maxMigrations)
	if err != nil {
		log.WithError(err).Error("Error executing migration")
		return exitFailure
	}
	log.WithField("direction", direction).Infof("Applied %d migrations!", n)
	return exitOK
}

func parseDirection(direction string) (migrate.MigrationDirection, bool) {
	switch direction {
	case "up":
		return migrate.Up, true
	case "down":
		return migrate.Down, true
	default:
		return migrate.Up, false
	}
}
