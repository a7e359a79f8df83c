package constvars

// Validation messages for request bodies, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required":  "is required",
	"email":     "must be a valid email",
	"numeric":   "must be a number",
	"min":       "must be at least %s characters long",
	"max":       "must be at most %s characters long",
	"oneof":     "must be one of: %s",
	"gt":        "must be greater than %s",
	"specialty": "must be a registered specialty",
	"office":    "must be a room code between 100 and 999",
	"phone":     "must be an international number with 10 to 15 digits",
}

var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gt":    true,
}

// Error messages for clients
const (
	ErrClientRecordNotFound                = "%s has not been found."
	ErrClientRecordAlreadyExists           = "Record has not been created. %s already exists"
	ErrClientCreateRecord                  = "Error creating a new %s"
	ErrClientGetRecord                     = "Error getting %s"
	ErrClientUpdateRecord                  = "Error updating %s"
	ErrClientDeleteRecord                  = "Error deleting %s"
	ErrClientDoctorHasAppointments         = "Doctor has scheduled appointments"
	ErrClientDoctorSpecialtyMismatch       = "Doctor %s does not practice %s"
	ErrClientIDMustBeANumber               = "ID must be a number"
	ErrClientBodyBadStructure              = "Body has a bad structure"
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "Internal Server Error"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientTooManyRequests               = "Too many requests, you are blocked temporarily."
)

// Error messages for developers
const (
	ErrDevPanic = "recovered from panic: %v"
)
