package routers

import (
	"clinix-service/internal/app/delivery/http/controllers"
	"clinix-service/internal/app/delivery/http/middlewares"
	"clinix-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPrescriptionRoutes(router chi.Router, middlewares *middlewares.Middlewares, prescriptionController *controllers.PrescriptionController) {
	router.Use(middlewares.Authenticate)

	router.With(middlewares.RequireRoles(constvars.RolePatient)).Get("/patient/my-prescriptions", prescriptionController.ListForPatient)
	router.With(middlewares.RequireRoles(constvars.RoleDoctor)).Get("/doctor/my-prescriptions", prescriptionController.ListForDoctor)
	router.With(middlewares.RequireRoles(constvars.RoleDoctor)).Post("/{appointmentId}", prescriptionController.Create)
	router.Get("/{appointmentId}", prescriptionController.GetByAppointment)
}
