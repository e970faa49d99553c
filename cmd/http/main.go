package main

import (
	"clinix-service/internal/app/config"
	"clinix-service/internal/app/contracts"
	"clinix-service/internal/app/delivery/http/controllers"
	"clinix-service/internal/app/delivery/http/middlewares"
	"clinix-service/internal/app/delivery/http/routers"
	"clinix-service/internal/app/drivers/database"
	"clinix-service/internal/app/drivers/logger"
	"clinix-service/internal/app/drivers/messaging"
	"clinix-service/internal/app/drivers/storage"
	"clinix-service/internal/app/services/core/appointments"
	"clinix-service/internal/app/services/core/auth"
	"clinix-service/internal/app/services/core/doctors"
	"clinix-service/internal/app/services/core/prescriptions"
	"clinix-service/internal/app/services/core/users"
	"clinix-service/internal/app/services/shared/events"
	"clinix-service/internal/app/services/shared/jwtmanager"
	"clinix-service/internal/app/services/shared/metrics"
	"clinix-service/internal/app/services/shared/ratelimiter"
	"clinix-service/internal/app/services/shared/redis"
	prescriptionStorage "clinix-service/internal/app/services/shared/storage"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         log,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}
	if internalConfig.RabbitMQ.Enabled {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig)
	}
	if internalConfig.Minio.Enabled {
		bootstrap.Minio = storage.NewMinio(driverConfig, internalConfig.Minio.BucketName)
	}

	err := bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:              internalConfig.App.Port,
		Handler:           chiRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server started", zap.String("address", internalConfig.App.Port), zap.String("env", internalConfig.App.Env))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Failed to release drivers", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	log := bootstrap.Logger
	internalConfig := bootstrap.InternalConfig

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(metricsNamespace(internalConfig.App.Name), registry)

	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	// Side effects
	var eventPublisher contracts.EventPublisher
	if bootstrap.RabbitMQ != nil {
		publisher, err := events.NewRabbitMQPublisher(bootstrap.RabbitMQ, internalConfig.RabbitMQ.EventsQueue)
		if err != nil {
			return err
		}
		eventPublisher = publisher
	} else {
		eventPublisher = events.NewNoopPublisher(log)
	}

	var prescriptionArchive contracts.PrescriptionArchive
	if bootstrap.Minio != nil {
		prescriptionArchive = prescriptionStorage.NewMinioPrescriptionArchive(bootstrap.Minio, internalConfig.Minio.BucketName)
	} else {
		prescriptionArchive = prescriptionStorage.NewNoopPrescriptionArchive()
	}

	// Repositories
	userRepository := users.NewUserMongoRepository(bootstrap.MongoDB)
	appointmentRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB)
	prescriptionRepository := prescriptions.NewPrescriptionMongoRepository(bootstrap.MongoDB)

	indexCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	for _, repository := range []interface{ EnsureIndexes(context.Context) error }{
		userRepository,
		appointmentRepository,
		prescriptionRepository,
	} {
		err := repository.EnsureIndexes(indexCtx)
		if err != nil {
			return err
		}
	}
	log.Info("MongoDB indexes ensured")

	// Auth
	tokenManager, err := jwtmanager.NewJWTManager(internalConfig, log)
	if err != nil {
		return err
	}
	resourceLimiter := ratelimiter.NewResourceLimiter(redisRepository, log)

	// Usecases
	doctorUsecase := doctors.NewDoctorUsecase(userRepository, redisRepository, appMetrics, internalConfig, log)
	authUsecase := auth.NewAuthUsecase(userRepository, tokenManager, resourceLimiter, doctorUsecase, appMetrics, internalConfig, log)
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentRepository,
		userRepository,
		appointments.NewTransitionPolicy(internalConfig.App.StrictStatusTransitions),
		eventPublisher,
		appMetrics,
		internalConfig,
		log,
	)
	prescriptionUsecase := prescriptions.NewPrescriptionUsecase(
		prescriptionRepository,
		appointmentRepository,
		userRepository,
		prescriptionArchive,
		eventPublisher,
		appMetrics,
		log,
	)

	// Middlewares
	appMiddlewares := middlewares.NewMiddlewares(log, internalConfig, tokenManager, appMetrics)

	routers.SetupRoutes(bootstrap.Router, internalConfig, appMiddlewares, registry, &routers.Controllers{
		Health:       controllers.NewHealthController(internalConfig),
		Auth:         controllers.NewAuthController(log, authUsecase, internalConfig),
		Appointment:  controllers.NewAppointmentController(log, appointmentUsecase, internalConfig),
		Doctor:       controllers.NewDoctorController(log, doctorUsecase, internalConfig),
		Prescription: controllers.NewPrescriptionController(log, prescriptionUsecase, internalConfig),
	})
	return nil
}

// metricsNamespace turns "Clinix Sphere API" into "clinix_sphere_api".
func metricsNamespace(appName string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(appName) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	namespace := strings.Trim(b.String(), "_")
	if namespace == "" {
		return "clinix"
	}
	return namespace
}
