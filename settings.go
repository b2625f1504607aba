package petlibro

import (
	"fmt"
	"strings"

	"github.com/jjjonesjr33/petlibro/systems/logger"
	"github.com/jjjonesjr33/petlibro/utils"
	yaml "gopkg.in/yaml.v2"
)

// Region to API base URL map. Only regions with a known vendor cluster
// are accepted by validation.
var regionBaseURLs = map[string]string{
	"US": "https://api.us.petlibro.com",
}

// Settings describes plugin settings filled from YAML by the host.
type Settings struct {
	Email        string `yaml:"email" validate:"required,email"`
	Password     string `yaml:"password" validate:"required"`
	Region       string `yaml:"region" validate:"required" default:"US"`
	Timezone     string `yaml:"timezone" default:"America/Chicago"`
	PollSchedule string `yaml:"pollSchedule" default:"@every 1m0s"`
}

// ErrUnknownRegion defines a region without a known API cluster.
type ErrUnknownRegion struct {
	Region string
}

// Error formats output.
func (e *ErrUnknownRegion) Error() string {
	return fmt.Sprintf("unknown region %s", e.Region)
}

// ErrInvalidSettings defines config which failed field validation.
type ErrInvalidSettings struct {
}

// Error formats output.
func (e *ErrInvalidSettings) Error() string {
	return "invalid plugin settings"
}

// Validate checks settings consistency after un-marshaling.
func (s *Settings) Validate() error {
	s.Region = strings.ToUpper(s.Region)
	if _, ok := regionBaseURLs[s.Region]; !ok {
		return &ErrUnknownRegion{Region: s.Region}
	}

	return nil
}

// AccountEmail returns account email.
func (s *Settings) AccountEmail() string {
	return s.Email
}

// AccountPassword returns account password.
func (s *Settings) AccountPassword() string {
	return s.Password
}

// AccountRegion returns account region code.
func (s *Settings) AccountRegion() string {
	return s.Region
}

// AccountBaseURL returns the API base URL of the account region.
func (s *Settings) AccountBaseURL() string {
	return regionBaseURLs[s.Region]
}

// AccountTimezone returns the configured timezone.
func (s *Settings) AccountTimezone() string {
	return s.Timezone
}

// PollingSchedule returns the cron schedule used for device polling.
func (s *Settings) PollingSchedule() string {
	return s.PollSchedule
}

// ParseSettings un-marshals raw YAML config, applies defaults and
// enforces the field validation tags.
func ParseSettings(raw []byte) (*Settings, error) {
	settings := &Settings{}
	if err := yaml.Unmarshal(raw, settings); err != nil {
		return nil, err
	}

	if !utils.NewValidator(logger.NewConsoleLogger()).Validate(settings) {
		return nil, &ErrInvalidSettings{}
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return settings, nil
}
