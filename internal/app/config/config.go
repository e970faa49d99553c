package config

import (
	"clinix-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			URI:      utils.GetEnvString("MONGODB_URI", ""),
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "clinix"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                              utils.GetEnvString("APP_ENV", "development"),
			Port:                             utils.GetEnvString("APP_PORT", ":4000"),
			Name:                             utils.GetEnvString("APP_NAME", "Clinix Sphere API"),
			Version:                          utils.GetEnvString("APP_VERSION", "v1.0"),
			Timezone:                         utils.GetEnvString("APP_TIMEZONE", "UTC"),
			CORSAllowedOrigins:               utils.GetEnvStringSlice("APP_CORS_ALLOWED_ORIGINS", []string{"*"}),
			MaxRequests:                      utils.GetEnvInt("APP_MAX_REQUESTS", 100),
			ShutdownTimeout:                  utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds:          utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			AuthMaxRequestsPerMinute:         utils.GetEnvInt("APP_AUTH_MAX_REQUESTS_PER_MINUTE", 30),
			LoginMaxAttempts:                 utils.GetEnvInt("APP_LOGIN_MAX_ATTEMPTS", 5),
			LoginAttemptWindowInSeconds:      utils.GetEnvInt("APP_LOGIN_ATTEMPT_WINDOW_IN_SECONDS", 300),
			DoctorDirectoryCacheTTLInSeconds: utils.GetEnvInt("APP_DOCTOR_DIRECTORY_CACHE_TTL_IN_SECONDS", 300),
			StrictStatusTransitions:          utils.GetEnvBool("APP_STRICT_STATUS_TRANSITIONS", false),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			Issuer:        utils.GetEnvString("JWT_ISSUER", "clinix-service"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 24),
		},
		RabbitMQ: AppRabbitMQ{
			Enabled:     utils.GetEnvBool("RABBITMQ_ENABLED", false),
			EventsQueue: utils.GetEnvString("RABBITMQ_EVENTS_QUEUE", "clinix.events"),
		},
		Minio: AppMinio{
			Enabled:    utils.GetEnvBool("MINIO_ENABLED", false),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "clinix-prescriptions"),
		},
	}
}
