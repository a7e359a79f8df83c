package routers

import (
	"clinic-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, appointmentController *controllers.AppointmentController) {
	router.Get("/", appointmentController.FindAll)
	router.Post("/", appointmentController.CreateAppointment)
	router.Get("/patient/{identification}", appointmentController.FindAppointmentsByPatientIdentification)
	router.Get("/{appointmentID}", appointmentController.FindAppointmentByID)
	router.Delete("/{appointmentID}", appointmentController.DeleteAppointmentByID)
}
