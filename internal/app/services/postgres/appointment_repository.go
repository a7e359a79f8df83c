package postgres

import (
	"context"
	"database/sql"
	"errors"

	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/queries"
)

type appointmentRepository struct {
	DB *sql.DB
}

func NewAppointmentRepository(db *sql.DB) contracts.AppointmentRepository {
	return &appointmentRepository{DB: db}
}

func scanAppointment(row scanner) (*models.Appointment, error) {
	var appointment models.Appointment
	err := row.Scan(
		&appointment.ID,
		&appointment.DoctorID,
		&appointment.PatientID,
		&appointment.Schedule,
		&appointment.CreatedAt,
		&appointment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) query(ctx context.Context, query string, args ...interface{}) ([]models.Appointment, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	appointments := make([]models.Appointment, 0)
	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		appointments = append(appointments, *appointment)
	}
	return appointments, rows.Err()
}

func (r *appointmentRepository) FindAll(ctx context.Context) ([]models.Appointment, error) {
	return r.query(ctx, queries.GetAllAppointments)
}

func (r *appointmentRepository) FindByID(ctx context.Context, appointmentID int64) (*models.Appointment, error) {
	appointment, err := scanAppointment(r.DB.QueryRowContext(ctx, queries.GetAppointmentByID, appointmentID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return appointment, err
}

func (r *appointmentRepository) FindByDoctorID(ctx context.Context, doctorID int64) ([]models.Appointment, error) {
	return r.query(ctx, queries.GetAppointmentsByDoctorID, doctorID)
}

func (r *appointmentRepository) FindByPatientID(ctx context.Context, patientID int64) ([]models.Appointment, error) {
	return r.query(ctx, queries.GetAppointmentsByPatientID, patientID)
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	created := *appointment
	err := r.DB.QueryRowContext(ctx, queries.InsertAppointment,
		appointment.DoctorID,
		appointment.PatientID,
		appointment.Schedule,
		appointment.CreatedAt,
		appointment.UpdatedAt,
	).Scan(&created.ID)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *appointmentRepository) Delete(ctx context.Context, appointmentID int64) error {
	result, err := r.DB.ExecContext(ctx, queries.DeleteAppointment, appointmentID)
	if err != nil {
		return err
	}
	return expectAffected(result)
}
