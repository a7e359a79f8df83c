package queries

const (
	appointmentColumns = "id, doctor_id, patient_id, schedule, created_at, updated_at"

	GetAllAppointments         = "SELECT " + appointmentColumns + " FROM appointments ORDER BY id"
	GetAppointmentByID         = "SELECT " + appointmentColumns + " FROM appointments WHERE id = $1"
	GetAppointmentsByDoctorID  = "SELECT " + appointmentColumns + " FROM appointments WHERE doctor_id = $1 ORDER BY id"
	GetAppointmentsByPatientID = "SELECT " + appointmentColumns + " FROM appointments WHERE patient_id = $1 ORDER BY id"
	InsertAppointment          = "INSERT INTO appointments (doctor_id, patient_id, schedule, created_at, updated_at) VALUES ($1, $2, $3, $4, $5) RETURNING id"
	DeleteAppointment          = "DELETE FROM appointments WHERE id = $1"
)
