package constvars

const (
	URLParamDoctorID       = "doctorID"
	URLParamPatientID      = "patientID"
	URLParamAppointmentID  = "appointmentID"
	URLParamIdentification = "identification"
)
