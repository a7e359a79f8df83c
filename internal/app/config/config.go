package config

import (
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Postgres: Postgres{
			Host:     utils.GetEnvString("POSTGRES_HOST", "localhost"),
			Port:     utils.GetEnvString("POSTGRES_PORT", "5432"),
			Username: utils.GetEnvString("POSTGRES_USERNAME", "postgres"),
			Password: utils.GetEnvString("POSTGRES_PASSWORD", "postgres"),
			DBName:   utils.GetEnvString("POSTGRES_DB_NAME", "clinic"),
			SSLMode:  utils.GetEnvString("POSTGRES_SSL_MODE", "disable"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		RabbitMQ: RabbitMQ{
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                     utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                    utils.GetEnvString("APP_PORT", "8080"),
			Version:                 utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                utils.GetEnvString("APP_TIMEZONE", "America/Bogota"),
			EndpointPrefix:          utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			StorageDriver:           utils.GetEnvString("APP_STORAGE_DRIVER", constvars.StorageDriverPostgres),
			MaxRequests:             utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeout:         utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds: utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 5),
			WriteRequestsPerSecond:  utils.GetEnvInt("APP_WRITE_REQUESTS_PER_SECOND", 5),
			WriteBlockTimeInSeconds: utils.GetEnvInt("APP_WRITE_BLOCK_TIME_IN_SECONDS", 60),
			CompressionLevel:        utils.GetEnvInt("APP_COMPRESSION_LEVEL", 5),
		},
		Cache: AppCache{
			Enabled:            utils.GetEnvBool("APP_CACHE_ENABLED", false),
			DoctorTTLInSeconds: utils.GetEnvInt("APP_CACHE_DOCTOR_TTL_IN_SECONDS", 300),
			WarmupCronSpec:     utils.GetEnvString("APP_CACHE_WARMUP_CRON_SPEC", constvars.DefaultDoctorWarmupCronSpec),
		},
		Events: AppEvents{
			Enabled:          utils.GetEnvBool("APP_EVENTS_ENABLED", false),
			AppointmentQueue: utils.GetEnvString("APP_RABBITMQ_APPOINTMENT_QUEUE", "clinic.appointments"),
		},
		Booking: AppBooking{
			LookupConcurrency: utils.GetEnvInt("APP_BOOKING_LOOKUP_CONCURRENCY", 4),
		},
	}
}
