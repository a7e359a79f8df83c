package config

type InternalConfig struct {
	App     App
	Cache   AppCache
	Events  AppEvents
	Booking AppBooking
}

type App struct {
	Env                     string
	Port                    string
	Version                 string
	Timezone                string
	EndpointPrefix          string
	StorageDriver           string
	MaxRequests             int
	ShutdownTimeout         int
	RequestTimeoutInSeconds int
	WriteRequestsPerSecond  int
	WriteBlockTimeInSeconds int
	CompressionLevel        int
}

// AppCache controls the Redis read-through cache in front of doctor lookups.
type AppCache struct {
	Enabled            bool
	DoctorTTLInSeconds int
	WarmupCronSpec     string
}

type AppEvents struct {
	Enabled          bool
	AppointmentQueue string
}

type AppBooking struct {
	LookupConcurrency int
}
