package constvars

const (
	GetDoctorsSuccessMessage   = "successfully retrieved doctors"
	GetDoctorSuccessMessage    = "successfully retrieved doctor"
	CreateDoctorSuccessMessage = "doctor created successfully"
	UpdateDoctorSuccessMessage = "doctor updated successfully"
	DeleteDoctorSuccessMessage = "doctor deleted successfully"

	GetPatientsSuccessMessage   = "successfully retrieved patients"
	GetPatientSuccessMessage    = "successfully retrieved patient"
	CreatePatientSuccessMessage = "patient created successfully"
	UpdatePatientSuccessMessage = "patient updated successfully"
	DeletePatientSuccessMessage = "patient deleted successfully"

	GetAppointmentsSuccessMessage   = "successfully retrieved appointments"
	GetAppointmentSuccessMessage    = "successfully retrieved appointment"
	CreateAppointmentSuccessMessage = "appointment created successfully"
	DeleteAppointmentSuccessMessage = "appointment deleted successfully"
)
