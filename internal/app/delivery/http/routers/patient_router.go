package routers

import (
	"clinic-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, patientController *controllers.PatientController) {
	router.Get("/", patientController.FindAll)
	router.Post("/", patientController.Create)
	router.Get("/identification/{identification}", patientController.FindByIdentification)
	router.Get("/{patientID}", patientController.FindByID)
	router.Patch("/{patientID}", patientController.Update)
	router.Delete("/{patientID}", patientController.Delete)
}
