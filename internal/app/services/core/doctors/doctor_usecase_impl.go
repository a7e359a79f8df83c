package doctors

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

type doctorUsecase struct {
	DoctorRepository      contracts.DoctorRepository
	AppointmentRepository contracts.AppointmentRepository
	Log                   *zap.Logger
}

func NewDoctorUsecase(
	doctorRepository contracts.DoctorRepository,
	appointmentRepository contracts.AppointmentRepository,
	logger *zap.Logger,
) contracts.DoctorUsecase {
	return &doctorUsecase{
		DoctorRepository:      doctorRepository,
		AppointmentRepository: appointmentRepository,
		Log:                   logger,
	}
}

func (uc *doctorUsecase) FindAll(ctx context.Context) ([]models.Doctor, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("doctorUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	doctors, err := uc.DoctorRepository.FindAll(ctx)
	if err != nil {
		return nil, exceptions.ErrLookup(err, constvars.EntityDoctor, constvars.ComponentDoctorUsecase)
	}

	uc.Log.Info("doctorUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingDoctorCountKey, len(doctors)),
	)
	return doctors, nil
}

func (uc *doctorUsecase) FindByID(ctx context.Context, doctorID int64) (*models.Doctor, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, exceptions.ErrLookup(err, constvars.EntityDoctor, constvars.ComponentDoctorUsecase)
	}
	if doctor == nil {
		return nil, exceptions.ErrNotFound(constvars.EntityDoctor)
	}
	return doctor, nil
}

// FindByIdentification returns every specialty record registered under the
// identification.
func (uc *doctorUsecase) FindByIdentification(ctx context.Context, identification string) ([]models.Doctor, error) {
	doctors, err := uc.DoctorRepository.FindByIdentification(ctx, identification)
	if err != nil {
		return nil, exceptions.ErrLookup(err, constvars.EntityDoctor, constvars.ComponentDoctorUsecase)
	}
	if len(doctors) == 0 {
		return nil, exceptions.ErrNotFound(constvars.EntityDoctor)
	}
	return doctors, nil
}

// Create registers a doctor for one specialty. An identification may hold
// several specialty records, but only under the same full name and never
// twice for the same specialty.
func (uc *doctorUsecase) Create(ctx context.Context, request *requests.CreateDoctor) (*models.Doctor, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("doctorUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIdentificationKey, request.Identification),
		zap.String(constvars.LoggingSpecialtyKey, request.Specialty),
	)

	candidate := models.Doctor{
		Identification: request.Identification,
		GivenName:      request.GivenName,
		FamilyName:     request.FamilyName,
		Specialty:      request.Specialty,
		Office:         request.Office,
		Email:          request.Email,
	}
	if err := uc.ensureIdentityAvailable(ctx, &candidate); err != nil {
		return nil, err
	}

	now := time.Now()
	candidate.CreatedAt = now
	candidate.UpdatedAt = now

	created, err := uc.DoctorRepository.Create(ctx, &candidate)
	if err != nil {
		return nil, exceptions.ErrCreate(err, constvars.EntityDoctor, constvars.ComponentDoctorUsecase)
	}

	uc.Log.Info("doctorUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingDoctorIDKey, created.ID),
	)
	return created, nil
}

// Update applies the patch under the same identity rules as Create, ignoring
// the record being updated.
func (uc *doctorUsecase) Update(ctx context.Context, existing *models.Doctor, request *requests.UpdateDoctor) (*models.Doctor, error) {
	updated := existing.Apply(utils.MapUpdateDoctorRequestToPatch(request))
	if updated.Identification != existing.Identification ||
		updated.FullName() != existing.FullName() ||
		updated.Specialty != existing.Specialty {
		if err := uc.ensureIdentityAvailable(ctx, &updated); err != nil {
			return nil, err
		}
	}
	updated.UpdatedAt = time.Now()

	err := uc.DoctorRepository.Update(ctx, &updated)
	if err != nil {
		return nil, exceptions.ErrUpdate(err, constvars.EntityDoctor, constvars.ComponentDoctorUsecase)
	}

	uc.Log.Info("doctorUsecase.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
		zap.Int64(constvars.LoggingDoctorIDKey, updated.ID),
	)
	return &updated, nil
}

// ensureIdentityAvailable rejects a candidate whose identification belongs to
// another full name or already holds its specialty. Records with the
// candidate's own ID are skipped.
func (uc *doctorUsecase) ensureIdentityAvailable(ctx context.Context, candidate *models.Doctor) error {
	requestID := utils.RequestIDFromContext(ctx)

	existing, err := uc.FindByIdentification(ctx, candidate.Identification)
	if err != nil && !exceptions.IsKind(err, exceptions.KindNotFound) {
		return err
	}

	for _, doctor := range existing {
		if doctor.ID == candidate.ID {
			continue
		}
		if doctor.FullName() != candidate.FullName() {
			uc.Log.Info("doctorUsecase identification bound to another name",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int64(constvars.LoggingDoctorIDKey, doctor.ID),
			)
			return exceptions.ErrAlreadyExists(constvars.EntityDoctor)
		}
	}
	for _, doctor := range existing {
		if doctor.ID != candidate.ID && doctor.Specialty == candidate.Specialty {
			uc.Log.Info("doctorUsecase specialty already registered",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int64(constvars.LoggingDoctorIDKey, doctor.ID),
			)
			return exceptions.ErrAlreadyExists(constvars.EntityDoctor)
		}
	}
	return nil
}

// Delete refuses to remove a doctor that still has appointments.
func (uc *doctorUsecase) Delete(ctx context.Context, existing *models.Doctor) (*models.Doctor, error) {
	requestID := utils.RequestIDFromContext(ctx)

	appointments, err := uc.AppointmentRepository.FindByDoctorID(ctx, existing.ID)
	if err != nil {
		return nil, exceptions.ErrLookup(err, constvars.EntityAppointment, constvars.ComponentDoctorUsecase)
	}
	if len(appointments) > 0 {
		uc.Log.Info("doctorUsecase.Delete doctor has scheduled appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingDoctorIDKey, existing.ID),
			zap.Int(constvars.LoggingAppointmentCountKey, len(appointments)),
		)
		return nil, exceptions.ErrConflict(constvars.EntityDoctor, constvars.ErrClientDoctorHasAppointments)
	}

	err = uc.DoctorRepository.Delete(ctx, existing.ID)
	if err != nil {
		return nil, exceptions.ErrDelete(err, constvars.EntityDoctor, constvars.ComponentDoctorUsecase)
	}

	uc.Log.Info("doctorUsecase.Delete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingDoctorIDKey, existing.ID),
	)
	snapshot := *existing
	return &snapshot, nil
}
