package routers

import (
	"clinic-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, doctorController *controllers.DoctorController) {
	router.Get("/", doctorController.FindAll)
	router.Post("/", doctorController.Create)
	router.Get("/identification/{identification}", doctorController.FindByIdentification)
	router.Get("/{doctorID}", doctorController.FindByID)
	router.Patch("/{doctorID}", doctorController.Update)
	router.Delete("/{doctorID}", doctorController.Delete)
}
