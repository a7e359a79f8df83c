package queries

const (
	patientColumns = "id, identification, given_name, family_name, phone, created_at, updated_at"

	GetAllPatients             = "SELECT " + patientColumns + " FROM patients ORDER BY id"
	GetPatientByID             = "SELECT " + patientColumns + " FROM patients WHERE id = $1"
	GetPatientByIdentification = "SELECT " + patientColumns + " FROM patients WHERE identification = $1"
	InsertPatient              = "INSERT INTO patients (identification, given_name, family_name, phone, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id"
	UpdatePatient              = "UPDATE patients SET identification = $1, given_name = $2, family_name = $3, phone = $4, updated_at = $5 WHERE id = $6"
	DeletePatient              = "DELETE FROM patients WHERE id = $1"
)
