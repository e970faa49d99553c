package routers

import (
	"clinix-service/internal/app/delivery/http/controllers"
	"clinix-service/internal/app/delivery/http/middlewares"
	"clinix-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorController *controllers.DoctorController, appointmentController *controllers.AppointmentController) {
	router.Get("/all", doctorController.ListDoctors)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate, middlewares.RequireRoles(constvars.RoleDoctor))
		r.Get("/appointments", appointmentController.ListForDoctor)
		r.Patch("/appointments/{id}/status", appointmentController.UpdateStatus)
	})
}
