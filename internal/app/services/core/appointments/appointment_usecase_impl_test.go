package appointments

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/app/services/core/doctors"
	"clinic-service/internal/app/services/core/patients"
	"clinic-service/internal/app/services/inmemory"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"clinic-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// countingDoctorRepository records FindByID calls and can fail for one id.
type countingDoctorRepository struct {
	contracts.DoctorRepository
	findByIDCalls atomic.Int64
	failID        int64
}

func (r *countingDoctorRepository) FindByID(ctx context.Context, doctorID int64) (*models.Doctor, error) {
	r.findByIDCalls.Add(1)
	if r.failID != 0 && doctorID == r.failID {
		return nil, errors.New("connection reset by peer")
	}
	return r.DoctorRepository.FindByID(ctx, doctorID)
}

type failingAppointmentRepository struct {
	contracts.AppointmentRepository
}

func (r *failingAppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	return nil, errors.New("disk full")
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []models.AppointmentEvent
	err    error
}

func (p *recordingPublisher) Publish(ctx context.Context, event *models.AppointmentEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, *event)
	return p.err
}

type fixture struct {
	doctorRepository      *countingDoctorRepository
	patientRepository     contracts.PatientRepository
	appointmentRepository contracts.AppointmentRepository
	publisher             *recordingPublisher
	usecase               contracts.AppointmentUsecase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := zap.NewNop()
	db := inmemory.NewDatabase()

	f := &fixture{
		doctorRepository:      &countingDoctorRepository{DoctorRepository: inmemory.NewDoctorRepository(db)},
		patientRepository:     inmemory.NewPatientRepository(db),
		appointmentRepository: inmemory.NewAppointmentRepository(db),
		publisher:             &recordingPublisher{},
	}

	doctorUsecase := doctors.NewDoctorUsecase(f.doctorRepository, f.appointmentRepository, logger)
	patientUsecase := patients.NewPatientUsecase(f.patientRepository, logger)
	f.usecase = NewAppointmentUsecase(f.appointmentRepository, doctorUsecase, patientUsecase, f.publisher, 4, logger)

	ctx := context.Background()
	_, err := f.patientRepository.Create(ctx, &models.Patient{Identification: "123", GivenName: "Ana", FamilyName: "Ruiz"})
	require.NoError(t, err)
	_, err = f.patientRepository.Create(ctx, &models.Patient{Identification: "456", GivenName: "Luis", FamilyName: "Gómez"})
	require.NoError(t, err)

	seed := []models.Doctor{
		{Identification: "900", GivenName: "John", FamilyName: "Doe", Specialty: constvars.SpecialtyGeneralMedicine, Office: "101"},
		{Identification: "901", GivenName: "Maria", FamilyName: "Lopez", Specialty: constvars.SpecialtyCardiology, Office: "202"},
		{Identification: "902", GivenName: "Pedro", FamilyName: "Diaz", Specialty: constvars.SpecialtyPediatrics, Office: "303"},
	}
	for i := range seed {
		_, err := f.doctorRepository.DoctorRepository.Create(ctx, &seed[i])
		require.NoError(t, err)
	}
	return f
}

func (f *fixture) storedAppointments(t *testing.T) []models.Appointment {
	t.Helper()
	appointments, err := f.appointmentRepository.FindAll(context.Background())
	require.NoError(t, err)
	return appointments
}

func TestCreateAppointment(t *testing.T) {
	ctx := context.Background()

	t.Run("Books the documented example", func(t *testing.T) {
		f := newFixture(t)

		appointment, err := f.usecase.CreateAppointment(ctx, &requests.CreateAppointment{
			PatientIdentification: "123",
			DoctorID:              1,
			Specialty:             "Medicina general",
			Schedule:              "Monday 08:00",
		})

		require.NoError(t, err)
		assert.Equal(t, &responses.Appointment{
			PatientIdentification: "123",
			DoctorFullName:        "John Doe",
			Specialty:             "Medicina general",
			Schedule:              "Monday 08:00",
			Office:                "101",
		}, appointment)
		assert.Len(t, f.storedAppointments(t), 1)
	})

	t.Run("Response mirrors the resolved doctor", func(t *testing.T) {
		f := newFixture(t)
		cases := []struct {
			doctorID  int64
			specialty string
			fullName  string
			office    string
		}{
			{1, constvars.SpecialtyGeneralMedicine, "John Doe", "101"},
			{2, constvars.SpecialtyCardiology, "Maria Lopez", "202"},
			{3, constvars.SpecialtyPediatrics, "Pedro Diaz", "303"},
		}
		for _, tc := range cases {
			appointment, err := f.usecase.CreateAppointment(ctx, &requests.CreateAppointment{
				PatientIdentification: "456",
				DoctorID:              tc.doctorID,
				Specialty:             tc.specialty,
				Schedule:              "Wednesday 10:00",
			})
			require.NoError(t, err)
			assert.Equal(t, tc.specialty, appointment.Specialty)
			assert.Equal(t, tc.fullName, appointment.DoctorFullName)
			assert.Equal(t, tc.office, appointment.Office)
		}
	})

	t.Run("Specialty mismatch is a conflict and stores nothing", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.usecase.CreateAppointment(ctx, &requests.CreateAppointment{
			PatientIdentification: "123",
			DoctorID:              1,
			Specialty:             constvars.SpecialtyCardiology,
			Schedule:              "Monday 08:00",
		})

		assert.True(t, exceptions.IsKind(err, exceptions.KindConflict))
		assert.Equal(t, int64(1), f.doctorRepository.findByIDCalls.Load(), "doctor should have been resolved")
		assert.Empty(t, f.storedAppointments(t))
		assert.Empty(t, f.publisher.events)
	})

	t.Run("Unknown patient is not found", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.usecase.CreateAppointment(ctx, &requests.CreateAppointment{
			PatientIdentification: "000",
			DoctorID:              1,
			Specialty:             constvars.SpecialtyGeneralMedicine,
			Schedule:              "Monday 08:00",
		})

		assert.ErrorIs(t, err, exceptions.ErrNotFound(constvars.EntityPatient))
		assert.Empty(t, f.storedAppointments(t))
	})

	t.Run("Unknown doctor is not found", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.usecase.CreateAppointment(ctx, &requests.CreateAppointment{
			PatientIdentification: "123",
			DoctorID:              77,
			Specialty:             constvars.SpecialtyGeneralMedicine,
			Schedule:              "Monday 08:00",
		})

		assert.ErrorIs(t, err, exceptions.ErrNotFound(constvars.EntityDoctor))
		assert.Empty(t, f.storedAppointments(t))
	})

	t.Run("Store fault becomes a create error", func(t *testing.T) {
		f := newFixture(t)
		logger := zap.NewNop()
		usecase := NewAppointmentUsecase(
			&failingAppointmentRepository{AppointmentRepository: f.appointmentRepository},
			doctors.NewDoctorUsecase(f.doctorRepository, f.appointmentRepository, logger),
			patients.NewPatientUsecase(f.patientRepository, logger),
			nil, 1, logger,
		)

		_, err := usecase.CreateAppointment(ctx, &requests.CreateAppointment{
			PatientIdentification: "123",
			DoctorID:              1,
			Specialty:             constvars.SpecialtyGeneralMedicine,
			Schedule:              "Monday 08:00",
		})

		require.Error(t, err)
		assert.True(t, exceptions.IsKind(err, exceptions.KindCreate))
		assert.Contains(t, err.Error(), "Error creating a new appointment")
	})

	t.Run("Publishes a created event", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.usecase.CreateAppointment(ctx, &requests.CreateAppointment{
			PatientIdentification: "123",
			DoctorID:              1,
			Specialty:             constvars.SpecialtyGeneralMedicine,
			Schedule:              "Monday 08:00",
		})

		require.NoError(t, err)
		require.Len(t, f.publisher.events, 1)
		assert.Equal(t, constvars.EventAppointmentCreated, f.publisher.events[0].Type)
		assert.Equal(t, int64(1), f.publisher.events[0].DoctorID)
	})

	t.Run("Publish failure does not fail the booking", func(t *testing.T) {
		f := newFixture(t)
		f.publisher.err = errors.New("channel closed")

		_, err := f.usecase.CreateAppointment(ctx, &requests.CreateAppointment{
			PatientIdentification: "123",
			DoctorID:              1,
			Specialty:             constvars.SpecialtyGeneralMedicine,
			Schedule:              "Monday 08:00",
		})

		assert.NoError(t, err)
		assert.Len(t, f.storedAppointments(t), 1)
	})

	t.Run("Cancelled context aborts", func(t *testing.T) {
		f := newFixture(t)
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := f.usecase.CreateAppointment(cancelled, &requests.CreateAppointment{
			PatientIdentification: "123",
			DoctorID:              1,
			Specialty:             constvars.SpecialtyGeneralMedicine,
			Schedule:              "Monday 08:00",
		})

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestFindAppointmentByID(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.usecase.CreateAppointment(ctx, &requests.CreateAppointment{
		PatientIdentification: "456",
		DoctorID:              2,
		Specialty:             constvars.SpecialtyCardiology,
		Schedule:              "Thursday 11:00",
	})
	require.NoError(t, err)

	t.Run("Existing appointment", func(t *testing.T) {
		appointment, err := f.usecase.FindAppointmentByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "456", appointment.PatientIdentification)
		assert.Equal(t, "Maria Lopez", appointment.DoctorFullName)
		assert.Equal(t, "Thursday 11:00", appointment.Schedule)
	})

	t.Run("Missing appointment", func(t *testing.T) {
		_, err := f.usecase.FindAppointmentByID(ctx, 99)
		assert.ErrorIs(t, err, exceptions.ErrNotFound(constvars.EntityAppointment))
	})
}

func TestFindAppointmentsByPatientIdentification(t *testing.T) {
	ctx := context.Background()

	book := func(t *testing.T, f *fixture, doctorID int64, specialty, schedule string) {
		t.Helper()
		_, err := f.usecase.CreateAppointment(ctx, &requests.CreateAppointment{
			PatientIdentification: "123",
			DoctorID:              doctorID,
			Specialty:             specialty,
			Schedule:              schedule,
		})
		require.NoError(t, err)
	}

	t.Run("Patient without appointments is not found", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.usecase.FindAppointmentsByPatientIdentification(ctx, "123")

		assert.ErrorIs(t, err, exceptions.ErrNotFound(constvars.EntityAppointments))
	})

	t.Run("Unknown patient is not found", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.usecase.FindAppointmentsByPatientIdentification(ctx, "000")

		assert.ErrorIs(t, err, exceptions.ErrNotFound(constvars.EntityPatient))
	})

	t.Run("Returns one summary per appointment in order", func(t *testing.T) {
		f := newFixture(t)
		book(t, f, 1, constvars.SpecialtyGeneralMedicine, "Monday 08:00")
		book(t, f, 2, constvars.SpecialtyCardiology, "Monday 09:00")
		book(t, f, 1, constvars.SpecialtyGeneralMedicine, "Tuesday 08:00")
		book(t, f, 3, constvars.SpecialtyPediatrics, "Tuesday 10:00")
		book(t, f, 2, constvars.SpecialtyCardiology, "Friday 16:00")
		f.doctorRepository.findByIDCalls.Store(0)

		summaries, err := f.usecase.FindAppointmentsByPatientIdentification(ctx, "123")

		require.NoError(t, err)
		require.Len(t, summaries, 5)
		assert.Equal(t, []string{"Monday 08:00", "Monday 09:00", "Tuesday 08:00", "Tuesday 10:00", "Friday 16:00"},
			[]string{summaries[0].Schedule, summaries[1].Schedule, summaries[2].Schedule, summaries[3].Schedule, summaries[4].Schedule})
		assert.Equal(t, "Maria Lopez", summaries[4].DoctorFullName)
		assert.Equal(t, "303", summaries[3].Office)
		assert.Equal(t, int64(3), f.doctorRepository.findByIDCalls.Load(), "each distinct doctor is looked up once")
	})

	t.Run("Doctor lookup failure is reported", func(t *testing.T) {
		f := newFixture(t)
		book(t, f, 1, constvars.SpecialtyGeneralMedicine, "Monday 08:00")
		book(t, f, 2, constvars.SpecialtyCardiology, "Monday 09:00")
		f.doctorRepository.failID = 2

		_, err := f.usecase.FindAppointmentsByPatientIdentification(ctx, "123")

		assert.True(t, exceptions.IsKind(err, exceptions.KindLookup))
	})
}

func TestDeleteAppointmentByID(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.usecase.CreateAppointment(ctx, &requests.CreateAppointment{
		PatientIdentification: "123",
		DoctorID:              1,
		Specialty:             constvars.SpecialtyGeneralMedicine,
		Schedule:              "Monday 08:00",
	})
	require.NoError(t, err)

	deleted, err := f.usecase.DeleteAppointmentByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Monday 08:00", deleted.Schedule)
	assert.Empty(t, f.storedAppointments(t))
	assert.Equal(t, constvars.EventAppointmentDeleted, f.publisher.events[len(f.publisher.events)-1].Type)

	_, err = f.usecase.DeleteAppointmentByID(ctx, 1)
	assert.True(t, exceptions.IsKind(err, exceptions.KindNotFound), "second delete must be NotFound, never Delete")
}

func TestFindAllAppointments(t *testing.T) {
	f := newFixture(t)

	appointments, err := f.usecase.FindAll(context.Background())

	require.NoError(t, err)
	assert.Empty(t, appointments)
}
