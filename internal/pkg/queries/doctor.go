package queries

const (
	doctorColumns = "id, identification, given_name, family_name, specialty, office, email, created_at, updated_at"

	GetAllDoctors              = "SELECT " + doctorColumns + " FROM doctors ORDER BY id"
	GetDoctorByID              = "SELECT " + doctorColumns + " FROM doctors WHERE id = $1"
	GetDoctorsByIdentification = "SELECT " + doctorColumns + " FROM doctors WHERE identification = $1 ORDER BY id"
	InsertDoctor               = "INSERT INTO doctors (identification, given_name, family_name, specialty, office, email, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id"
	UpdateDoctor               = "UPDATE doctors SET identification = $1, given_name = $2, family_name = $3, specialty = $4, office = $5, email = $6, updated_at = $7 WHERE id = $8"
	DeleteDoctor               = "DELETE FROM doctors WHERE id = $1"
)
