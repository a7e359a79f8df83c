package responses

// Appointment is the denormalized view handed to callers. It never carries
// internal ids.
type Appointment struct {
	PatientIdentification string `json:"patient_identification"`
	DoctorFullName        string `json:"doctor"`
	Specialty             string `json:"specialty"`
	Schedule              string `json:"schedule"`
	Office                string `json:"office"`
}

// AppointmentSummary is Appointment without the patient identification,
// used when the caller already asked by that identification.
type AppointmentSummary struct {
	DoctorFullName string `json:"doctor"`
	Specialty      string `json:"specialty"`
	Schedule       string `json:"schedule"`
	Office         string `json:"office"`
}
