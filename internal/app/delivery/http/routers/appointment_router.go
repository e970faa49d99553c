package routers

import (
	"clinix-service/internal/app/delivery/http/controllers"
	"clinix-service/internal/app/delivery/http/middlewares"
	"clinix-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.Use(middlewares.Authenticate)

	router.With(middlewares.RequireRoles(constvars.RolePatient)).Post("/book", appointmentController.Book)
	router.With(middlewares.RequireRoles(constvars.RolePatient)).Get("/my-appointments", appointmentController.ListMine)
	router.With(middlewares.RequireRoles(constvars.RoleAdmin)).Get("/", appointmentController.ListAll)
	router.With(middlewares.RequireRoles(constvars.RoleDoctor)).Patch("/{id}/status", appointmentController.UpdateStatus)
	router.Get("/{id}", appointmentController.GetByID)
}
