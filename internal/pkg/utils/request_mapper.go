package utils

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/dto/requests"
)

func MapUpdateDoctorRequestToPatch(req *requests.UpdateDoctor) models.DoctorPatch {
	return models.DoctorPatch{
		Identification: req.Identification,
		GivenName:      req.GivenName,
		FamilyName:     req.FamilyName,
		Specialty:      req.Specialty,
		Office:         req.Office,
		Email:          req.Email,
	}
}

func MapUpdatePatientRequestToPatch(req *requests.UpdatePatient) models.PatientPatch {
	return models.PatientPatch{
		Identification: req.Identification,
		GivenName:      req.GivenName,
		FamilyName:     req.FamilyName,
		Phone:          req.Phone,
	}
}
