package device

import (
	pluginDevice "github.com/jjjonesjr33/petlibro/plugins/device"
	"github.com/jjjonesjr33/petlibro/plugins/device/enums"
)

// GranarySmartCameraFeeder is the granary feeder with a built-in camera.
type GranarySmartCameraFeeder struct {
	feederDevice
}

// NewGranarySmartCameraFeeder constructs a camera feeder model.
func NewGranarySmartCameraFeeder(ctor *ConstructDevice) pluginDevice.IDevice {
	d := &GranarySmartCameraFeeder{
		feederDevice: feederDevice{newBaseDevice(ctor, enums.DevGranaryCameraFeeder)},
	}

	d.fragments = d.feederFragments(ctor.API)
	d.registerFeederCommands()
	d.derive = deriveCameraFeeder
	d.finish(defaultUpdatePeriod, cameraFeederProperties)
	return d
}

func deriveCameraFeeder(s *DeviceState) {
	deriveGranary(s)

	s.SetProperty(enums.PropResolution, s.Str("resolution", "unknown", infoDocs...))
	s.SetProperty(enums.PropNightVision, s.Str("nightVision", "unknown", infoDocs...))
	s.SetProperty(enums.PropVideoRecordOn, s.Bool("videoRecordSwitch", false, infoDocs...))
}

var cameraFeederProperties = append(granaryProperties,
	enums.PropResolution,
	enums.PropNightVision,
	enums.PropVideoRecordOn,
)
