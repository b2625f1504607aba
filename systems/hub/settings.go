package hub

// ISettings defines account data the hub needs at init time.
// The root plugin settings object implements it after the host fills
// and validates the YAML config.
type ISettings interface {
	AccountEmail() string
	AccountPassword() string
	AccountRegion() string
	AccountBaseURL() string
	AccountTimezone() string
	PollingSchedule() string
}
