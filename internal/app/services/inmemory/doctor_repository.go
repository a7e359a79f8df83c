package inmemory

import (
	"context"

	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
)

type doctorRepository struct {
	DB *Database
}

func NewDoctorRepository(db *Database) contracts.DoctorRepository {
	return &doctorRepository{DB: db}
}

func (r *doctorRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	doctors := make([]models.Doctor, 0)
	err := r.DB.read(ctx, func() {
		doctors = append(doctors, r.DB.doctors...)
	})
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) FindByID(ctx context.Context, doctorID int64) (*models.Doctor, error) {
	var found *models.Doctor
	err := r.DB.read(ctx, func() {
		for _, doctor := range r.DB.doctors {
			if doctor.ID == doctorID {
				doctor := doctor
				found = &doctor
				return
			}
		}
	})
	return found, err
}

func (r *doctorRepository) FindByIdentification(ctx context.Context, identification string) ([]models.Doctor, error) {
	doctors := make([]models.Doctor, 0)
	err := r.DB.read(ctx, func() {
		for _, doctor := range r.DB.doctors {
			if doctor.Identification == identification {
				doctors = append(doctors, doctor)
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) Create(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error) {
	created := *doctor
	err := r.DB.write(ctx, func() error {
		for _, existing := range r.DB.doctors {
			if existing.Identification == created.Identification && existing.Specialty == created.Specialty {
				return ErrUniqueViolation
			}
		}
		r.DB.lastDoctorID++
		created.ID = r.DB.lastDoctorID
		r.DB.doctors = append(r.DB.doctors, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *doctorRepository) Update(ctx context.Context, doctor *models.Doctor) error {
	return r.DB.write(ctx, func() error {
		for _, existing := range r.DB.doctors {
			if existing.ID != doctor.ID && existing.Identification == doctor.Identification && existing.Specialty == doctor.Specialty {
				return ErrUniqueViolation
			}
		}
		for i := range r.DB.doctors {
			if r.DB.doctors[i].ID == doctor.ID {
				r.DB.doctors[i] = *doctor
				return nil
			}
		}
		return ErrRecordMissing
	})
}

func (r *doctorRepository) Delete(ctx context.Context, doctorID int64) error {
	return r.DB.write(ctx, func() error {
		if r.DB.referencedByAppointment(func(a models.Appointment) bool { return a.DoctorID == doctorID }) {
			return ErrForeignKeyViolation
		}
		for i := range r.DB.doctors {
			if r.DB.doctors[i].ID == doctorID {
				r.DB.doctors = append(r.DB.doctors[:i], r.DB.doctors[i+1:]...)
				return nil
			}
		}
		return ErrRecordMissing
	})
}
