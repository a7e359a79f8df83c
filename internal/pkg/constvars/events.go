package constvars

const (
	EventAppointmentCreated = "appointment.created"
	EventAppointmentDeleted = "appointment.deleted"
)

const (
	RedisDoctorKeyFormat          = "doctor:%d"
	RedisDoctorTombstoneKeyFormat = "doctor:%d:stale"
)

const (
	RedisDoctorWarmupLockKey    = "doctor:warmup:leader"
	DefaultDoctorWarmupCronSpec = "@every 10m"
)
