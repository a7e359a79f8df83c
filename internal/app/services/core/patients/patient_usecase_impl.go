package patients

import (
	"context"
	"time"

	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientRepository contracts.PatientRepository
	Log               *zap.Logger
}

func NewPatientUsecase(patientRepository contracts.PatientRepository, logger *zap.Logger) contracts.PatientUsecase {
	return &patientUsecase{
		PatientRepository: patientRepository,
		Log:               logger,
	}
}

func (uc *patientUsecase) FindAll(ctx context.Context) ([]models.Patient, error) {
	patients, err := uc.PatientRepository.FindAll(ctx)
	if err != nil {
		return nil, exceptions.ErrLookup(err, constvars.EntityPatient, constvars.ComponentPatientUsecase)
	}
	return patients, nil
}

func (uc *patientUsecase) FindByID(ctx context.Context, patientID int64) (*models.Patient, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, exceptions.ErrLookup(err, constvars.EntityPatient, constvars.ComponentPatientUsecase)
	}
	if patient == nil {
		return nil, exceptions.ErrNotFound(constvars.EntityPatient)
	}
	return patient, nil
}

func (uc *patientUsecase) FindByIdentification(ctx context.Context, identification string) (*models.Patient, error) {
	patient, err := uc.PatientRepository.FindByIdentification(ctx, identification)
	if err != nil {
		return nil, exceptions.ErrLookup(err, constvars.EntityPatient, constvars.ComponentPatientUsecase)
	}
	if patient == nil {
		return nil, exceptions.ErrNotFound(constvars.EntityPatient)
	}
	return patient, nil
}

func (uc *patientUsecase) Create(ctx context.Context, request *requests.CreatePatient) (*models.Patient, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("patientUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIdentificationKey, request.Identification),
	)

	existing, err := uc.FindByIdentification(ctx, request.Identification)
	if err != nil && !exceptions.IsKind(err, exceptions.KindNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrAlreadyExists(constvars.EntityPatient)
	}

	now := time.Now()
	patient := &models.Patient{
		Identification: request.Identification,
		GivenName:      request.GivenName,
		FamilyName:     request.FamilyName,
		Phone:          request.Phone,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := uc.PatientRepository.Create(ctx, patient)
	if err != nil {
		return nil, exceptions.ErrCreate(err, constvars.EntityPatient, constvars.ComponentPatientUsecase)
	}

	uc.Log.Info("patientUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, created.ID),
	)
	return created, nil
}

func (uc *patientUsecase) Update(ctx context.Context, existing *models.Patient, request *requests.UpdatePatient) (*models.Patient, error) {
	updated := existing.Apply(utils.MapUpdatePatientRequestToPatch(request))
	if updated.Identification != existing.Identification {
		owner, err := uc.FindByIdentification(ctx, updated.Identification)
		if err != nil && !exceptions.IsKind(err, exceptions.KindNotFound) {
			return nil, err
		}
		if owner != nil && owner.ID != existing.ID {
			uc.Log.Info("patientUsecase.Update identification already registered",
				zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
				zap.Int64(constvars.LoggingPatientIDKey, owner.ID),
			)
			return nil, exceptions.ErrAlreadyExists(constvars.EntityPatient)
		}
	}
	updated.UpdatedAt = time.Now()

	err := uc.PatientRepository.Update(ctx, &updated)
	if err != nil {
		return nil, exceptions.ErrUpdate(err, constvars.EntityPatient, constvars.ComponentPatientUsecase)
	}
	return &updated, nil
}

// Delete does not look at the patient's appointments, unlike doctor
// deletion. Rows that still reference the patient make the store fail,
// which surfaces as a Delete error.
func (uc *patientUsecase) Delete(ctx context.Context, existing *models.Patient) (*models.Patient, error) {
	err := uc.PatientRepository.Delete(ctx, existing.ID)
	if err != nil {
		return nil, exceptions.ErrDelete(err, constvars.EntityPatient, constvars.ComponentPatientUsecase)
	}

	uc.Log.Info("patientUsecase.Delete succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
		zap.Int64(constvars.LoggingPatientIDKey, existing.ID),
	)
	snapshot := *existing
	return &snapshot, nil
}
