package inmemory

import (
	"context"

	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
)

type appointmentRepository struct {
	DB *Database
}

func NewAppointmentRepository(db *Database) contracts.AppointmentRepository {
	return &appointmentRepository{DB: db}
}

func (r *appointmentRepository) FindAll(ctx context.Context) ([]models.Appointment, error) {
	return r.filter(ctx, func(models.Appointment) bool { return true })
}

func (r *appointmentRepository) FindByID(ctx context.Context, appointmentID int64) (*models.Appointment, error) {
	appointments, err := r.filter(ctx, func(a models.Appointment) bool { return a.ID == appointmentID })
	if err != nil || len(appointments) == 0 {
		return nil, err
	}
	return &appointments[0], nil
}

func (r *appointmentRepository) FindByDoctorID(ctx context.Context, doctorID int64) ([]models.Appointment, error) {
	return r.filter(ctx, func(a models.Appointment) bool { return a.DoctorID == doctorID })
}

func (r *appointmentRepository) FindByPatientID(ctx context.Context, patientID int64) ([]models.Appointment, error) {
	return r.filter(ctx, func(a models.Appointment) bool { return a.PatientID == patientID })
}

// filter returns matches in insertion order.
func (r *appointmentRepository) filter(ctx context.Context, match func(models.Appointment) bool) ([]models.Appointment, error) {
	appointments := make([]models.Appointment, 0)
	err := r.DB.read(ctx, func() {
		for _, appointment := range r.DB.appointments {
			if match(appointment) {
				appointments = append(appointments, appointment)
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	created := *appointment
	err := r.DB.write(ctx, func() error {
		if !r.exists(created.DoctorID, created.PatientID) {
			return ErrForeignKeyViolation
		}
		r.DB.lastAppointmentID++
		created.ID = r.DB.lastAppointmentID
		r.DB.appointments = append(r.DB.appointments, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *appointmentRepository) exists(doctorID, patientID int64) bool {
	var doctorFound, patientFound bool
	for _, doctor := range r.DB.doctors {
		if doctor.ID == doctorID {
			doctorFound = true
			break
		}
	}
	for _, patient := range r.DB.patients {
		if patient.ID == patientID {
			patientFound = true
			break
		}
	}
	return doctorFound && patientFound
}

func (r *appointmentRepository) Delete(ctx context.Context, appointmentID int64) error {
	return r.DB.write(ctx, func() error {
		for i := range r.DB.appointments {
			if r.DB.appointments[i].ID == appointmentID {
				r.DB.appointments = append(r.DB.appointments[:i], r.DB.appointments[i+1:]...)
				return nil
			}
		}
		return ErrRecordMissing
	})
}
