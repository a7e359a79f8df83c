package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	ResourceDoctors      = "doctors"
	ResourcePatients     = "patients"
	ResourceAppointments = "appointments"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

// EnvDebugErrors adds the error cause and location to error bodies.
const EnvDebugErrors = "APP_DEBUG_ERRORS"

const ResponseUnknown = "unknown"
