package routers

import (
	"clinix-service/internal/app/config"
	"clinix-service/internal/app/delivery/http/controllers"
	"clinix-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, internalConfig *config.InternalConfig, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	if internalConfig.App.AuthMaxRequestsPerMinute > 0 {
		router.Use(middlewares.AuthRateLimit())
	}

	router.Post("/register", authController.Register)
	router.Post("/login", authController.Login)
}
