package constvars

// Entity names carried by errors and shown to clients.
const (
	EntityDoctor       = "Doctor"
	EntityPatient      = "Patient"
	EntityAppointment  = "Appointment"
	EntityAppointments = "Appointments"
)

// Component names recorded on infrastructure errors.
const (
	ComponentDoctorUsecase      = "doctorUsecase"
	ComponentPatientUsecase     = "patientUsecase"
	ComponentAppointmentUsecase = "appointmentUsecase"
)
