package inmemory

import (
	"context"

	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
)

type patientRepository struct {
	DB *Database
}

func NewPatientRepository(db *Database) contracts.PatientRepository {
	return &patientRepository{DB: db}
}

func (r *patientRepository) FindAll(ctx context.Context) ([]models.Patient, error) {
	patients := make([]models.Patient, 0)
	err := r.DB.read(ctx, func() {
		patients = append(patients, r.DB.patients...)
	})
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) FindByID(ctx context.Context, patientID int64) (*models.Patient, error) {
	return r.findFirst(ctx, func(p models.Patient) bool { return p.ID == patientID })
}

func (r *patientRepository) FindByIdentification(ctx context.Context, identification string) (*models.Patient, error) {
	return r.findFirst(ctx, func(p models.Patient) bool { return p.Identification == identification })
}

func (r *patientRepository) findFirst(ctx context.Context, match func(models.Patient) bool) (*models.Patient, error) {
	var found *models.Patient
	err := r.DB.read(ctx, func() {
		for _, patient := range r.DB.patients {
			if match(patient) {
				patient := patient
				found = &patient
				return
			}
		}
	})
	return found, err
}

func (r *patientRepository) Create(ctx context.Context, patient *models.Patient) (*models.Patient, error) {
	created := *patient
	err := r.DB.write(ctx, func() error {
		for _, existing := range r.DB.patients {
			if existing.Identification == created.Identification {
				return ErrUniqueViolation
			}
		}
		r.DB.lastPatientID++
		created.ID = r.DB.lastPatientID
		r.DB.patients = append(r.DB.patients, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *patientRepository) Update(ctx context.Context, patient *models.Patient) error {
	return r.DB.write(ctx, func() error {
		for _, existing := range r.DB.patients {
			if existing.ID != patient.ID && existing.Identification == patient.Identification {
				return ErrUniqueViolation
			}
		}
		for i := range r.DB.patients {
			if r.DB.patients[i].ID == patient.ID {
				r.DB.patients[i] = *patient
				return nil
			}
		}
		return ErrRecordMissing
	})
}

func (r *patientRepository) Delete(ctx context.Context, patientID int64) error {
	return r.DB.write(ctx, func() error {
		if r.DB.referencedByAppointment(func(a models.Appointment) bool { return a.PatientID == patientID }) {
			return ErrForeignKeyViolation
		}
		for i := range r.DB.patients {
			if r.DB.patients[i].ID == patientID {
				r.DB.patients = append(r.DB.patients[:i], r.DB.patients[i+1:]...)
				return nil
			}
		}
		return ErrRecordMissing
	})
}
