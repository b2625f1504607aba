package enums

import "fmt"

// DeviceType describes enum with known PETLIBRO device models.
type DeviceType int

const (
	// DevUnknown describes unknown device type.
	DevUnknown DeviceType = iota
	// DevGranaryFeeder describes the Granary Smart Feeder.
	DevGranaryFeeder
	// DevGranaryCameraFeeder describes the Granary Smart Camera Feeder.
	DevGranaryCameraFeeder
	// DevOneRFIDFeeder describes the One RFID Smart Feeder.
	DevOneRFIDFeeder
	// DevPolarWetFeeder describes the Polar Wet Food Feeder.
	DevPolarWetFeeder
	// DevDockstreamFountain describes the Dockstream Smart Fountain.
	DevDockstreamFountain
	// DevDockstreamRFIDFountain describes the Dockstream Smart RFID Fountain.
	DevDockstreamRFIDFountain
)

var deviceTypeNames = map[DeviceType]string{
	DevUnknown:                "unknown",
	DevGranaryFeeder:          "granary-feeder",
	DevGranaryCameraFeeder:    "granary-camera-feeder",
	DevOneRFIDFeeder:          "one-rfid-feeder",
	DevPolarWetFeeder:         "polar-wet-feeder",
	DevDockstreamFountain:     "dockstream-fountain",
	DevDockstreamRFIDFountain: "dockstream-rfid-fountain",
}

// String returns device type name.
func (i DeviceType) String() string {
	name, ok := deviceTypeNames[i]
	if !ok {
		return deviceTypeNames[DevUnknown]
	}

	return name
}

// DeviceTypeString transforms string representation into device type.
func DeviceTypeString(s string) (DeviceType, error) {
	for k, v := range deviceTypeNames {
		if v == s {
			return k, nil
		}
	}

	return DevUnknown, fmt.Errorf("%s does not belong to DeviceType values", s)
}
