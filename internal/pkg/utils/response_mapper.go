package utils

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/dto/responses"
)

func MapAppointmentToResponse(patient *models.Patient, doctor *models.Doctor, appointment *models.Appointment) *responses.Appointment {
	return &responses.Appointment{
		PatientIdentification: patient.Identification,
		DoctorFullName:        doctor.FullName(),
		Specialty:             doctor.Specialty,
		Schedule:              appointment.Schedule,
		Office:                doctor.Office,
	}
}

func MapAppointmentToSummary(doctor *models.Doctor, appointment *models.Appointment) responses.AppointmentSummary {
	return responses.AppointmentSummary{
		DoctorFullName: doctor.FullName(),
		Specialty:      doctor.Specialty,
		Schedule:       appointment.Schedule,
		Office:         doctor.Office,
	}
}
