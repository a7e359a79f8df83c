package contracts

import (
	"context"

	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/dto/requests"
)

type DoctorUsecase interface {
	FindAll(ctx context.Context) ([]models.Doctor, error)
	FindByID(ctx context.Context, doctorID int64) (*models.Doctor, error)
	FindByIdentification(ctx context.Context, identification string) ([]models.Doctor, error)
	Create(ctx context.Context, request *requests.CreateDoctor) (*models.Doctor, error)
	Update(ctx context.Context, existing *models.Doctor, request *requests.UpdateDoctor) (*models.Doctor, error)
	Delete(ctx context.Context, existing *models.Doctor) (*models.Doctor, error)
}

// DoctorRepository lookups return (nil, nil) or an empty slice when nothing
// matches; only store faults come back as errors.
type DoctorRepository interface {
	FindAll(ctx context.Context) ([]models.Doctor, error)
	FindByID(ctx context.Context, doctorID int64) (*models.Doctor, error)
	FindByIdentification(ctx context.Context, identification string) ([]models.Doctor, error)
	Create(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error)
	Update(ctx context.Context, doctor *models.Doctor) error
	Delete(ctx context.Context, doctorID int64) error
}
