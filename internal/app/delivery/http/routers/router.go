package routers

import (
	"clinix-service/internal/app/config"
	"clinix-service/internal/app/delivery/http/controllers"
	"clinix-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Controllers struct {
	Health       *controllers.HealthController
	Auth         *controllers.AuthController
	Appointment  *controllers.AppointmentController
	Doctor       *controllers.DoctorController
	Prescription *controllers.PrescriptionController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	gatherer prometheus.Gatherer,
	ctrls *Controllers,
) {
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.Instrument)
	router.Use(middlewares.ErrorHandler)

	corsOptions := cors.Options{
		AllowedOrigins:   internalConfig.App.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	if internalConfig.App.MaxRequests > 0 {
		router.Use(middlewares.GlobalRateLimit())
	}

	router.Get("/", ctrls.Health.Health)
	router.Method("GET", "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	router.Route("/auth", func(r chi.Router) {
		attachAuthRoutes(r, internalConfig, middlewares, ctrls.Auth)
	})

	router.Route("/app", func(r chi.Router) {
		attachAppointmentRoutes(r, middlewares, ctrls.Appointment)
	})

	router.Route("/doctors", func(r chi.Router) {
		attachDoctorRoutes(r, middlewares, ctrls.Doctor, ctrls.Appointment)
	})

	router.Route("/prescriptions", func(r chi.Router) {
		attachPrescriptionRoutes(r, middlewares, ctrls.Prescription)
	})
}
