package postgres

import (
	"context"
	"database/sql"
	"errors"

	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/queries"
)

type patientRepository struct {
	DB *sql.DB
}

func NewPatientRepository(db *sql.DB) contracts.PatientRepository {
	return &patientRepository{DB: db}
}

func scanPatient(row scanner) (*models.Patient, error) {
	var patient models.Patient
	var phone sql.NullString
	err := row.Scan(
		&patient.ID,
		&patient.Identification,
		&patient.GivenName,
		&patient.FamilyName,
		&phone,
		&patient.CreatedAt,
		&patient.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	patient.Phone = phone.String
	return &patient, nil
}

// nullablePhone stores an empty phone as NULL.
func nullablePhone(phone string) sql.NullString {
	return sql.NullString{String: phone, Valid: phone != ""}
}

func (r *patientRepository) FindAll(ctx context.Context) ([]models.Patient, error) {
	rows, err := r.DB.QueryContext(ctx, queries.GetAllPatients)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	patients := make([]models.Patient, 0)
	for rows.Next() {
		patient, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		patients = append(patients, *patient)
	}
	return patients, rows.Err()
}

func (r *patientRepository) FindByID(ctx context.Context, patientID int64) (*models.Patient, error) {
	return r.findOne(ctx, queries.GetPatientByID, patientID)
}

func (r *patientRepository) FindByIdentification(ctx context.Context, identification string) (*models.Patient, error) {
	return r.findOne(ctx, queries.GetPatientByIdentification, identification)
}

func (r *patientRepository) findOne(ctx context.Context, query string, arg interface{}) (*models.Patient, error) {
	patient, err := scanPatient(r.DB.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return patient, err
}

func (r *patientRepository) Create(ctx context.Context, patient *models.Patient) (*models.Patient, error) {
	created := *patient
	err := r.DB.QueryRowContext(ctx, queries.InsertPatient,
		patient.Identification,
		patient.GivenName,
		patient.FamilyName,
		nullablePhone(patient.Phone),
		patient.CreatedAt,
		patient.UpdatedAt,
	).Scan(&created.ID)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *patientRepository) Update(ctx context.Context, patient *models.Patient) error {
	result, err := r.DB.ExecContext(ctx, queries.UpdatePatient,
		patient.Identification,
		patient.GivenName,
		patient.FamilyName,
		nullablePhone(patient.Phone),
		patient.UpdatedAt,
		patient.ID,
	)
	if err != nil {
		return err
	}
	return expectAffected(result)
}

func (r *patientRepository) Delete(ctx context.Context, patientID int64) error {
	result, err := r.DB.ExecContext(ctx, queries.DeletePatient, patientID)
	if err != nil {
		return err
	}
	return expectAffected(result)
}
