package inmemory

import (
	"context"
	"testing"

	"clinic-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctorRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewDoctorRepository(NewDatabase())

	first, err := repo.Create(ctx, &models.Doctor{Identification: "900", GivenName: "John", FamilyName: "Doe", Specialty: "Medicina general", Office: "101"})
	require.NoError(t, err)
	second, err := repo.Create(ctx, &models.Doctor{Identification: "900", GivenName: "John", FamilyName: "Doe", Specialty: "Cardiología", Office: "102"})
	require.NoError(t, err)

	t.Run("Ids are assigned in order", func(t *testing.T) {
		assert.Equal(t, int64(1), first.ID)
		assert.Equal(t, int64(2), second.ID)
	})

	t.Run("Duplicate specialty is rejected", func(t *testing.T) {
		_, err := repo.Create(ctx, &models.Doctor{Identification: "900", Specialty: "Cardiología"})
		assert.ErrorIs(t, err, ErrUniqueViolation)
	})

	t.Run("Lookup by identification returns every specialty", func(t *testing.T) {
		doctors, err := repo.FindByIdentification(ctx, "900")
		require.NoError(t, err)
		assert.Len(t, doctors, 2)
	})

	t.Run("Missing id is nil without error", func(t *testing.T) {
		doctor, err := repo.FindByID(ctx, 42)
		assert.NoError(t, err)
		assert.Nil(t, doctor)
	})

	t.Run("Returned records are copies", func(t *testing.T) {
		doctor, err := repo.FindByID(ctx, first.ID)
		require.NoError(t, err)
		doctor.Office = "999"

		again, err := repo.FindByID(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, "101", again.Office)
	})

	t.Run("Cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := repo.FindAll(cancelled)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Update onto an existing specialty is rejected", func(t *testing.T) {
		moved := *second
		moved.Specialty = "Medicina general"
		assert.ErrorIs(t, repo.Update(ctx, &moved), ErrUniqueViolation)

		stored, err := repo.FindByID(ctx, second.ID)
		require.NoError(t, err)
		assert.Equal(t, "Cardiología", stored.Specialty)
	})

	t.Run("Update keeping its own key succeeds", func(t *testing.T) {
		changed := *second
		changed.Office = "205"
		require.NoError(t, repo.Update(ctx, &changed))

		stored, err := repo.FindByID(ctx, second.ID)
		require.NoError(t, err)
		assert.Equal(t, "205", stored.Office)
	})
}

func TestPatientRepositoryUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewPatientRepository(NewDatabase())

	first, err := repo.Create(ctx, &models.Patient{Identification: "123", GivenName: "Ana"})
	require.NoError(t, err)
	second, err := repo.Create(ctx, &models.Patient{Identification: "456", GivenName: "Luis"})
	require.NoError(t, err)

	t.Run("Taken identification is rejected", func(t *testing.T) {
		moved := *second
		moved.Identification = first.Identification
		assert.ErrorIs(t, repo.Update(ctx, &moved), ErrUniqueViolation)

		found, err := repo.FindByIdentification(ctx, "456")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, second.ID, found.ID)
	})

	t.Run("Same identification on the same record succeeds", func(t *testing.T) {
		changed := *first
		changed.GivenName = "Ana María"
		require.NoError(t, repo.Update(ctx, &changed))

		found, err := repo.FindByID(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ana María", found.GivenName)
	})

	t.Run("Unknown id reports a missing record", func(t *testing.T) {
		assert.ErrorIs(t, repo.Update(ctx, &models.Patient{ID: 99, Identification: "789"}), ErrRecordMissing)
	})
}

func TestReferencedRecordsCannotBeDeleted(t *testing.T) {
	ctx := context.Background()
	db := NewDatabase()
	doctors := NewDoctorRepository(db)
	patients := NewPatientRepository(db)
	appointments := NewAppointmentRepository(db)

	doctor, err := doctors.Create(ctx, &models.Doctor{Identification: "900", Specialty: "Medicina general"})
	require.NoError(t, err)
	patient, err := patients.Create(ctx, &models.Patient{Identification: "123"})
	require.NoError(t, err)
	appointment, err := appointments.Create(ctx, &models.Appointment{DoctorID: doctor.ID, PatientID: patient.ID, Schedule: "Monday 08:00"})
	require.NoError(t, err)

	assert.ErrorIs(t, doctors.Delete(ctx, doctor.ID), ErrForeignKeyViolation)
	assert.ErrorIs(t, patients.Delete(ctx, patient.ID), ErrForeignKeyViolation)

	require.NoError(t, appointments.Delete(ctx, appointment.ID))
	assert.NoError(t, patients.Delete(ctx, patient.ID))
	assert.NoError(t, doctors.Delete(ctx, doctor.ID))
}

func TestAppointmentRepository(t *testing.T) {
	ctx := context.Background()
	db := NewDatabase()
	doctor, _ := NewDoctorRepository(db).Create(ctx, &models.Doctor{Identification: "900"})
	patient, _ := NewPatientRepository(db).Create(ctx, &models.Patient{Identification: "123"})
	repo := NewAppointmentRepository(db)

	t.Run("Unknown references are rejected", func(t *testing.T) {
		_, err := repo.Create(ctx, &models.Appointment{DoctorID: 7, PatientID: patient.ID})
		assert.ErrorIs(t, err, ErrForeignKeyViolation)
	})

	for _, schedule := range []string{"Monday 08:00", "Tuesday 09:00", "Friday 17:30"} {
		_, err := repo.Create(ctx, &models.Appointment{DoctorID: doctor.ID, PatientID: patient.ID, Schedule: schedule})
		require.NoError(t, err)
	}

	t.Run("Patient listing keeps insertion order", func(t *testing.T) {
		appointments, err := repo.FindByPatientID(ctx, patient.ID)
		require.NoError(t, err)
		require.Len(t, appointments, 3)
		assert.Equal(t, "Monday 08:00", appointments[0].Schedule)
		assert.Equal(t, "Friday 17:30", appointments[2].Schedule)
	})

	t.Run("Empty listing is an empty slice", func(t *testing.T) {
		appointments, err := repo.FindByDoctorID(ctx, 99)
		require.NoError(t, err)
		assert.NotNil(t, appointments)
		assert.Empty(t, appointments)
	})

	t.Run("Deleting twice reports a missing record", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, 1))
		assert.ErrorIs(t, repo.Delete(ctx, 1), ErrRecordMissing)
	})
}
