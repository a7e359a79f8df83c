package appointments

import (
	"context"
	"fmt"
	"sync"
	"time"

	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	DoctorUsecase         contracts.DoctorUsecase
	PatientUsecase        contracts.PatientUsecase
	EventPublisher        contracts.AppointmentEventPublisher
	LookupConcurrency     int
	Log                   *zap.Logger
}

// NewAppointmentUsecase wires the booking workflow. lookupConcurrency bounds
// the doctor lookups fanned out when listing a patient's appointments; values
// below 1 mean sequential.
func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	doctorUsecase contracts.DoctorUsecase,
	patientUsecase contracts.PatientUsecase,
	eventPublisher contracts.AppointmentEventPublisher,
	lookupConcurrency int,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	if lookupConcurrency < 1 {
		lookupConcurrency = 1
	}
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		DoctorUsecase:         doctorUsecase,
		PatientUsecase:        patientUsecase,
		EventPublisher:        eventPublisher,
		LookupConcurrency:     lookupConcurrency,
		Log:                   logger,
	}
}

func (uc *appointmentUsecase) FindAll(ctx context.Context) ([]models.Appointment, error) {
	appointments, err := uc.AppointmentRepository.FindAll(ctx)
	if err != nil {
		return nil, exceptions.ErrLookup(err, constvars.EntityAppointment, constvars.ComponentAppointmentUsecase)
	}
	return appointments, nil
}

// CreateAppointment books a patient with a doctor. Each step stops the
// workflow on failure; nothing is written until patient, doctor and
// specialty all check out.
func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*responses.Appointment, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("appointmentUsecase.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIdentificationKey, request.PatientIdentification),
		zap.Int64(constvars.LoggingDoctorIDKey, request.DoctorID),
		zap.String(constvars.LoggingSpecialtyKey, request.Specialty),
	)

	patient, err := uc.PatientUsecase.FindByIdentification(ctx, request.PatientIdentification)
	if err != nil {
		uc.Log.Error("appointmentUsecase.CreateAppointment error resolving patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	doctor, err := uc.DoctorUsecase.FindByID(ctx, request.DoctorID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.CreateAppointment error resolving doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if doctor.Specialty != request.Specialty {
		message := fmt.Sprintf(constvars.ErrClientDoctorSpecialtyMismatch, doctor.FamilyName, request.Specialty)
		return nil, exceptions.ErrConflict(constvars.EntityAppointment, message)
	}

	now := time.Now()
	appointment := &models.Appointment{
		DoctorID:  doctor.ID,
		PatientID: patient.ID,
		Schedule:  request.Schedule,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := uc.AppointmentRepository.Create(ctx, appointment)
	if err != nil {
		return nil, exceptions.ErrCreate(err, constvars.EntityAppointment, constvars.ComponentAppointmentUsecase)
	}

	uc.publish(ctx, constvars.EventAppointmentCreated, created)

	uc.Log.Info("appointmentUsecase.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, created.ID),
	)
	return utils.MapAppointmentToResponse(patient, doctor, created), nil
}

func (uc *appointmentUsecase) FindAppointmentByID(ctx context.Context, appointmentID int64) (*responses.Appointment, error) {
	appointment, err := uc.findByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	doctor, err := uc.DoctorUsecase.FindByID(ctx, appointment.DoctorID)
	if err != nil {
		return nil, err
	}

	patient, err := uc.PatientUsecase.FindByID(ctx, appointment.PatientID)
	if err != nil {
		return nil, err
	}

	return utils.MapAppointmentToResponse(patient, doctor, appointment), nil
}

// FindAppointmentsByPatientIdentification lists a patient's appointments in
// store order. A patient without appointments is reported as NotFound.
func (uc *appointmentUsecase) FindAppointmentsByPatientIdentification(ctx context.Context, identification string) ([]responses.AppointmentSummary, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("appointmentUsecase.FindAppointmentsByPatientIdentification called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIdentificationKey, identification),
	)

	patient, err := uc.PatientUsecase.FindByIdentification(ctx, identification)
	if err != nil {
		return nil, err
	}

	appointments, err := uc.AppointmentRepository.FindByPatientID(ctx, patient.ID)
	if err != nil {
		return nil, exceptions.ErrLookup(err, constvars.EntityAppointment, constvars.ComponentAppointmentUsecase)
	}
	if len(appointments) == 0 {
		return nil, exceptions.ErrNotFound(constvars.EntityAppointments)
	}

	doctors, err := uc.resolveDoctors(ctx, appointments)
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindAppointmentsByPatientIdentification error resolving doctors",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	summaries := make([]responses.AppointmentSummary, 0, len(appointments))
	for i := range appointments {
		summaries = append(summaries, utils.MapAppointmentToSummary(doctors[appointments[i].DoctorID], &appointments[i]))
	}

	uc.Log.Info("appointmentUsecase.FindAppointmentsByPatientIdentification succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentCountKey, len(summaries)),
		zap.Int(constvars.LoggingDoctorCountKey, len(doctors)),
	)
	return summaries, nil
}

// resolveDoctors fetches each distinct doctor once. The map lives for this
// call only; lookups run concurrently up to LookupConcurrency and the first
// failure cancels the others.
func (uc *appointmentUsecase) resolveDoctors(ctx context.Context, appointments []models.Appointment) (map[int64]*models.Doctor, error) {
	var mu sync.Mutex
	doctors := make(map[int64]*models.Doctor)
	requested := make(map[int64]bool)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(uc.LookupConcurrency)

	for _, appointment := range appointments {
		doctorID := appointment.DoctorID
		if requested[doctorID] {
			continue
		}
		requested[doctorID] = true

		group.Go(func() error {
			doctor, err := uc.DoctorUsecase.FindByID(groupCtx, doctorID)
			if err != nil {
				return err
			}
			mu.Lock()
			doctors[doctorID] = doctor
			mu.Unlock()
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return doctors, nil
}

// DeleteAppointmentByID removes the appointment and returns it as it was.
func (uc *appointmentUsecase) DeleteAppointmentByID(ctx context.Context, appointmentID int64) (*models.Appointment, error) {
	appointment, err := uc.findByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	err = uc.AppointmentRepository.Delete(ctx, appointment.ID)
	if err != nil {
		return nil, exceptions.ErrDelete(err, constvars.EntityAppointment, constvars.ComponentAppointmentUsecase)
	}

	uc.publish(ctx, constvars.EventAppointmentDeleted, appointment)

	uc.Log.Info("appointmentUsecase.DeleteAppointmentByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointment.ID),
	)
	return appointment, nil
}

func (uc *appointmentUsecase) findByID(ctx context.Context, appointmentID int64) (*models.Appointment, error) {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, exceptions.ErrLookup(err, constvars.EntityAppointment, constvars.ComponentAppointmentUsecase)
	}
	if appointment == nil {
		return nil, exceptions.ErrNotFound(constvars.EntityAppointment)
	}
	return appointment, nil
}

// publish announces a committed change. The row is already stored, so a
// failed publication is logged and the request still succeeds.
func (uc *appointmentUsecase) publish(ctx context.Context, eventType string, appointment *models.Appointment) {
	if uc.EventPublisher == nil {
		return
	}

	event := &models.AppointmentEvent{
		Type:          eventType,
		AppointmentID: appointment.ID,
		DoctorID:      appointment.DoctorID,
		PatientID:     appointment.PatientID,
		Schedule:      appointment.Schedule,
		OccurredAt:    time.Now(),
	}

	err := uc.EventPublisher.Publish(ctx, event)
	if err != nil {
		uc.Log.Warn("appointmentUsecase.publish failed",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String(constvars.LoggingEventTypeKey, eventType),
			zap.Int64(constvars.LoggingAppointmentIDKey, appointment.ID),
			zap.Error(err),
		)
	}
}
