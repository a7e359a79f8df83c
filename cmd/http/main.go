package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-service/internal/app/config"
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/delivery/http/controllers"
	"clinic-service/internal/app/delivery/http/middlewares"
	"clinic-service/internal/app/delivery/http/routers"
	"clinic-service/internal/app/drivers/database"
	"clinic-service/internal/app/drivers/logger"
	"clinic-service/internal/app/drivers/messaging"
	"clinic-service/internal/app/services/core/appointments"
	"clinic-service/internal/app/services/core/doctors"
	"clinic-service/internal/app/services/core/patients"
	"clinic-service/internal/app/services/inmemory"
	"clinic-service/internal/app/services/postgres"
	"clinic-service/internal/app/services/shared/cache"
	"clinic-service/internal/app/services/shared/events"
	"clinic-service/internal/app/services/shared/redis"
	"clinic-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger, err := logger.NewZapLogger(driverConfig, internalConfig)
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		zapLogger.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		zapLogger.Fatal("Error bootstrapping the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", internalConfig.App.Port),
		Handler: bootstrap.Router,
	}

	go func() {
		zapLogger.Info("Server started", zap.String("addr", server.Addr), zap.String("storage_driver", internalConfig.App.StorageDriver))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	zapLogger.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error releasing resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	internalConfig := bootstrap.InternalConfig

	// Stores
	var (
		doctorRepository      contracts.DoctorRepository
		patientRepository     contracts.PatientRepository
		appointmentRepository contracts.AppointmentRepository
	)
	switch internalConfig.App.StorageDriver {
	case constvars.StorageDriverMemory:
		db := inmemory.NewDatabase()
		doctorRepository = inmemory.NewDoctorRepository(db)
		patientRepository = inmemory.NewPatientRepository(db)
		appointmentRepository = inmemory.NewAppointmentRepository(db)
	case constvars.StorageDriverPostgres:
		db, err := database.NewPostgresDB(bootstrap.DriverConfig)
		if err != nil {
			return err
		}
		bootstrap.Postgres = db
		doctorRepository = postgres.NewDoctorRepository(db)
		patientRepository = postgres.NewPatientRepository(db)
		appointmentRepository = postgres.NewAppointmentRepository(db)
	default:
		return fmt.Errorf("unknown storage driver %q", internalConfig.App.StorageDriver)
	}

	// Doctor cache
	if internalConfig.Cache.Enabled {
		redisClient, err := database.NewRedisClient(bootstrap.DriverConfig)
		if err != nil {
			return err
		}
		bootstrap.Redis = redisClient
		redisRepository := redis.NewRedisRepository(redisClient)
		doctorTTL := time.Duration(internalConfig.Cache.DoctorTTLInSeconds) * time.Second

		warmer := cache.NewWarmer(doctorRepository, redisRepository, doctorTTL, internalConfig.Cache.WarmupCronSpec, bootstrap.Logger)
		warmer.Start(context.Background())
		bootstrap.Workers = append(bootstrap.Workers, warmer)

		doctorRepository = cache.NewDoctorRepository(doctorRepository, redisRepository, doctorTTL, bootstrap.Logger)
	}

	// Appointment events
	eventPublisher := events.NewLogPublisher(bootstrap.Logger)
	if internalConfig.Events.Enabled {
		connection, err := messaging.NewRabbitMQ(bootstrap.DriverConfig)
		if err != nil {
			return err
		}
		bootstrap.RabbitMQ = connection
		eventPublisher, err = events.NewRabbitMQPublisher(connection, internalConfig.Events.AppointmentQueue)
		if err != nil {
			return err
		}
		bootstrap.Logger.Info("Appointment events publishing to RabbitMQ",
			zap.String(constvars.LoggingQueueKey, internalConfig.Events.AppointmentQueue),
		)
	}

	// Usecases
	doctorUsecase := doctors.NewDoctorUsecase(doctorRepository, appointmentRepository, bootstrap.Logger)
	patientUsecase := patients.NewPatientUsecase(patientRepository, bootstrap.Logger)
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentRepository,
		doctorUsecase,
		patientUsecase,
		eventPublisher,
		internalConfig.Booking.LookupConcurrency,
		bootstrap.Logger,
	)

	// Controllers
	timeout := internalConfig.App.RequestTimeoutInSeconds
	doctorController := controllers.NewDoctorController(bootstrap.Logger, doctorUsecase, timeout)
	patientController := controllers.NewPatientController(bootstrap.Logger, patientUsecase, timeout)
	appointmentController := controllers.NewAppointmentController(bootstrap.Logger, appointmentUsecase, timeout)

	routers.SetupRoutes(
		bootstrap.Router,
		internalConfig,
		middlewares.NewMiddlewares(bootstrap.Logger, internalConfig),
		doctorController,
		patientController,
		appointmentController,
	)
	return nil
}
