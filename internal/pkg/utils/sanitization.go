package utils

import (
	"strings"

	"clinic-service/internal/pkg/dto/requests"
)

// SanitizeRequest normalizes a decoded request body in place before validation.
// Unknown types are left untouched.
func SanitizeRequest(request interface{}) {
	switch r := request.(type) {
	case *requests.CreateDoctor:
		SanitizeCreateDoctorRequest(r)
	case *requests.UpdateDoctor:
		SanitizeUpdateDoctorRequest(r)
	case *requests.CreatePatient:
		SanitizeCreatePatientRequest(r)
	case *requests.UpdatePatient:
		SanitizeUpdatePatientRequest(r)
	case *requests.CreateAppointment:
		SanitizeCreateAppointmentRequest(r)
	}
}

func SanitizeCreateDoctorRequest(request *requests.CreateDoctor) {
	request.Identification = strings.TrimSpace(request.Identification)
	request.GivenName = strings.TrimSpace(request.GivenName)
	request.FamilyName = strings.TrimSpace(request.FamilyName)
	request.Specialty = strings.TrimSpace(request.Specialty)
	request.Office = strings.TrimSpace(request.Office)
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
}

func SanitizeUpdateDoctorRequest(request *requests.UpdateDoctor) {
	trimPointer(request.Identification)
	trimPointer(request.GivenName)
	trimPointer(request.FamilyName)
	trimPointer(request.Specialty)
	trimPointer(request.Office)
	if request.Email != nil {
		*request.Email = strings.ToLower(strings.TrimSpace(*request.Email))
	}
}

func SanitizeCreatePatientRequest(request *requests.CreatePatient) {
	request.Identification = strings.TrimSpace(request.Identification)
	request.GivenName = strings.TrimSpace(request.GivenName)
	request.FamilyName = strings.TrimSpace(request.FamilyName)
	request.Phone = NormalizePhoneDigits(request.Phone)
}

func SanitizeUpdatePatientRequest(request *requests.UpdatePatient) {
	trimPointer(request.Identification)
	trimPointer(request.GivenName)
	trimPointer(request.FamilyName)
	if request.Phone != nil {
		*request.Phone = NormalizePhoneDigits(*request.Phone)
	}
}

// Schedule is free text and is only trimmed.
func SanitizeCreateAppointmentRequest(request *requests.CreateAppointment) {
	request.PatientIdentification = strings.TrimSpace(request.PatientIdentification)
	request.Specialty = strings.TrimSpace(request.Specialty)
	request.Schedule = strings.TrimSpace(request.Schedule)
}

func trimPointer(value *string) {
	if value != nil {
		*value = strings.TrimSpace(*value)
	}
}
