package device

import (
	pluginDevice "github.com/jjjonesjr33/petlibro/plugins/device"
)

// Product name to model constructor registry. An unlisted product means
// the account has a device this plugin does not understand yet.
var deviceConstructors = map[string]func(*ConstructDevice) pluginDevice.IDevice{
	ProductGranaryFeeder:       NewGranarySmartFeeder,
	ProductGranaryCameraFeeder: NewGranarySmartCameraFeeder,
	ProductOneRFIDFeeder:       NewOneRFIDSmartFeeder,
	ProductPolarWetFeeder:      NewPolarWetFoodFeeder,
	ProductDockstreamFountain:  NewDockstreamSmartFountain,
	ProductDockstreamRFID:      NewDockstreamSmartRFIDFountain,
}

// NewDevice constructs a device model out of a device list entry.
func NewDevice(ctor *ConstructDevice) (pluginDevice.IDevice, error) {
	product := asString(ctor.RawDevice["productName"], "")
	construct, ok := deviceConstructors[product]
	if !ok {
		return nil, &ErrUnknownProduct{Product: product}
	}

	return construct(ctor), nil
}
