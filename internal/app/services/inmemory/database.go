package inmemory

import (
	"context"
	"errors"
	"sync"

	"clinic-service/internal/app/models"
)

var (
	// ErrForeignKeyViolation mirrors the relational schema: a doctor or
	// patient referenced by an appointment cannot be removed.
	ErrForeignKeyViolation = errors.New("inmemory: record is still referenced by an appointment")
	ErrUniqueViolation     = errors.New("inmemory: unique constraint violated")
	ErrRecordMissing       = errors.New("inmemory: record does not exist")
)

// Database holds the three tables behind a single lock so references
// between them stay consistent.
type Database struct {
	mutex sync.RWMutex

	doctors      []models.Doctor
	patients     []models.Patient
	appointments []models.Appointment

	lastDoctorID      int64
	lastPatientID     int64
	lastAppointmentID int64
}

func NewDatabase() *Database {
	return &Database{}
}

func (db *Database) read(ctx context.Context, fn func()) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	db.mutex.RLock()
	defer db.mutex.RUnlock()
	fn()
	return nil
}

func (db *Database) write(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	db.mutex.Lock()
	defer db.mutex.Unlock()
	return fn()
}

func (db *Database) referencedByAppointment(match func(models.Appointment) bool) bool {
	for _, appointment := range db.appointments {
		if match(appointment) {
			return true
		}
	}
	return false
}
