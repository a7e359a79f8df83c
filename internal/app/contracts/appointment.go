package contracts

import (
	"context"

	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
)

type AppointmentUsecase interface {
	FindAll(ctx context.Context) ([]models.Appointment, error)
	CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*responses.Appointment, error)
	FindAppointmentByID(ctx context.Context, appointmentID int64) (*responses.Appointment, error)
	FindAppointmentsByPatientIdentification(ctx context.Context, identification string) ([]responses.AppointmentSummary, error)
	DeleteAppointmentByID(ctx context.Context, appointmentID int64) (*models.Appointment, error)
}

type AppointmentRepository interface {
	FindAll(ctx context.Context) ([]models.Appointment, error)
	FindByID(ctx context.Context, appointmentID int64) (*models.Appointment, error)
	FindByDoctorID(ctx context.Context, doctorID int64) ([]models.Appointment, error)
	FindByPatientID(ctx context.Context, patientID int64) ([]models.Appointment, error)
	Create(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error)
	Delete(ctx context.Context, appointmentID int64) error
}

type AppointmentEventPublisher interface {
	Publish(ctx context.Context, event *models.AppointmentEvent) error
}
