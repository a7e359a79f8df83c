package requests

type CreateAppointment struct {
	PatientIdentification string `json:"patient_identification" validate:"required,max=32"`
	DoctorID              int64  `json:"doctor_id" validate:"required,gt=0"`
	Specialty             string `json:"specialty" validate:"required,specialty"`
	Schedule              string `json:"schedule" validate:"required,max=100"`
}
