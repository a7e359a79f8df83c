package postgres

import (
	"context"
	"database/sql"
	"errors"

	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/queries"
)

type doctorRepository struct {
	DB *sql.DB
}

func NewDoctorRepository(db *sql.DB) contracts.DoctorRepository {
	return &doctorRepository{DB: db}
}

func scanDoctor(row scanner) (*models.Doctor, error) {
	var doctor models.Doctor
	err := row.Scan(
		&doctor.ID,
		&doctor.Identification,
		&doctor.GivenName,
		&doctor.FamilyName,
		&doctor.Specialty,
		&doctor.Office,
		&doctor.Email,
		&doctor.CreatedAt,
		&doctor.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) query(ctx context.Context, query string, args ...interface{}) ([]models.Doctor, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	doctors := make([]models.Doctor, 0)
	for rows.Next() {
		doctor, err := scanDoctor(rows)
		if err != nil {
			return nil, err
		}
		doctors = append(doctors, *doctor)
	}
	return doctors, rows.Err()
}

func (r *doctorRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	return r.query(ctx, queries.GetAllDoctors)
}

func (r *doctorRepository) FindByID(ctx context.Context, doctorID int64) (*models.Doctor, error) {
	doctor, err := scanDoctor(r.DB.QueryRowContext(ctx, queries.GetDoctorByID, doctorID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return doctor, err
}

func (r *doctorRepository) FindByIdentification(ctx context.Context, identification string) ([]models.Doctor, error) {
	return r.query(ctx, queries.GetDoctorsByIdentification, identification)
}

func (r *doctorRepository) Create(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error) {
	created := *doctor
	err := r.DB.QueryRowContext(ctx, queries.InsertDoctor,
		doctor.Identification,
		doctor.GivenName,
		doctor.FamilyName,
		doctor.Specialty,
		doctor.Office,
		doctor.Email,
		doctor.CreatedAt,
		doctor.UpdatedAt,
	).Scan(&created.ID)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *doctorRepository) Update(ctx context.Context, doctor *models.Doctor) error {
	result, err := r.DB.ExecContext(ctx, queries.UpdateDoctor,
		doctor.Identification,
		doctor.GivenName,
		doctor.FamilyName,
		doctor.Specialty,
		doctor.Office,
		doctor.Email,
		doctor.UpdatedAt,
		doctor.ID,
	)
	if err != nil {
		return err
	}
	return expectAffected(result)
}

func (r *doctorRepository) Delete(ctx context.Context, doctorID int64) error {
	result, err := r.DB.ExecContext(ctx, queries.DeleteDoctor, doctorID)
	if err != nil {
		return err
	}
	return expectAffected(result)
}
