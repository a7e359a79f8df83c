package constvars

const (
	LoggingRequestIDKey        = "request_id"
	LoggingRequestKey          = "request"
	LoggingResponseLengthKey   = "response_length"
	LoggingDoctorIDKey         = "doctor_id"
	LoggingPatientIDKey        = "patient_id"
	LoggingAppointmentIDKey    = "appointment_id"
	LoggingIdentificationKey   = "identification"
	LoggingSpecialtyKey        = "specialty"
	LoggingAppointmentCountKey = "appointment_count"
	LoggingDoctorCountKey      = "doctor_count"
	LoggingRedisKey            = "redis_key"
	LoggingQueueKey            = "queue"
	LoggingEventTypeKey        = "event_type"
	LoggingMethodKey           = "method"
	LoggingEndpointKey         = "endpoint"
	LoggingRemoteAddrKey       = "remote_addr"
	LoggingUserAgentKey        = "user_agent"
	LoggingStatusCodeKey       = "status_code"
	LoggingDurationKey         = "duration"
	LoggingSuccessKey          = "success"
	LoggingLocationKey         = "location"
	LoggingCronSpecKey         = "cron_spec"
)
