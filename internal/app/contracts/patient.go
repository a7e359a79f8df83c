package contracts

import (
	"context"

	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/dto/requests"
)

type PatientUsecase interface {
	FindAll(ctx context.Context) ([]models.Patient, error)
	FindByID(ctx context.Context, patientID int64) (*models.Patient, error)
	FindByIdentification(ctx context.Context, identification string) (*models.Patient, error)
	Create(ctx context.Context, request *requests.CreatePatient) (*models.Patient, error)
	Update(ctx context.Context, existing *models.Patient, request *requests.UpdatePatient) (*models.Patient, error)
	Delete(ctx context.Context, existing *models.Patient) (*models.Patient, error)
}

type PatientRepository interface {
	FindAll(ctx context.Context) ([]models.Patient, error)
	FindByID(ctx context.Context, patientID int64) (*models.Patient, error)
	FindByIdentification(ctx context.Context, identification string) (*models.Patient, error)
	Create(ctx context.Context, patient *models.Patient) (*models.Patient, error)
	Update(ctx context.Context, patient *models.Patient) error
	Delete(ctx context.Context, patientID int64) error
}
