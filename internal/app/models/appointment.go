package models

import "time"

// Appointment links a patient to a doctor for a free-form time slot.
// Schedule is stored as given; nothing parses it.
type Appointment struct {
	ID        int64     `json:"id"`
	DoctorID  int64     `json:"doctor_id"`
	PatientID int64     `json:"patient_id"`
	Schedule  string    `json:"schedule"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AppointmentEvent is the message published after an appointment is
// created or deleted.
type AppointmentEvent struct {
	Type          string    `json:"type"`
	AppointmentID int64     `json:"appointment_id"`
	DoctorID      int64     `json:"doctor_id"`
	PatientID     int64     `json:"patient_id"`
	Schedule      string    `json:"schedule"`
	OccurredAt    time.Time `json:"occurred_at"`
}
