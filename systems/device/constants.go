package device

import "time"

const (
	logSystem = "device"

	// Devices are polled once a minute; a command is given a short grace
	// period before the follow-up refresh so the cloud state settles.
	defaultUpdatePeriod = 60 * time.Second
	postCommandDefer    = 2 * time.Second
)

// Vendor product names reported by the device list endpoint.
const (
	ProductGranaryFeeder       = "Granary Smart Feeder"
	ProductGranaryCameraFeeder = "Granary Smart Camera Feeder"
	ProductOneRFIDFeeder       = "One RFID Smart Feeder"
	ProductPolarWetFeeder      = "Polar Wet Food Feeder"
	ProductDockstreamFountain  = "Dockstream Smart Fountain"
	ProductDockstreamRFID      = "Dockstream Smart RFID Fountain"
)
