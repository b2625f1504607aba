package device

import (
	pluginDevice "github.com/jjjonesjr33/petlibro/plugins/device"
	"github.com/jjjonesjr33/petlibro/plugins/device/enums"
)

// PolarWetFoodFeeder is the rotating-plate wet food feeder.
type PolarWetFoodFeeder struct {
	feederDevice
}

// NewPolarWetFoodFeeder constructs a wet food feeder model.
func NewPolarWetFoodFeeder(ctor *ConstructDevice) pluginDevice.IDevice {
	d := &PolarWetFoodFeeder{
		feederDevice: feederDevice{newBaseDevice(ctor, enums.DevPolarWetFeeder)},
	}

	d.fragments = append(d.feederFragments(ctor.API),
		fragment{endpoint: enums.EndpointFeedingPlanTemplates, optional: true,
			fetch: ctor.API.DeviceFeedingPlanTemplates},
		fragment{endpoint: enums.EndpointWetFeedingPlan, optional: true,
			fetch: ctor.API.DeviceWetFeedingPlan})

	d.registerFeederCommands()
	d.derive = deriveWetFeeder
	d.finish(defaultUpdatePeriod, wetFeederProperties)
	return d
}

func deriveWetFeeder(s *DeviceState) {
	deriveFeeder(s)
	deriveNextFeeding(s)

	s.SetProperty(enums.PropPlatePosition, s.Int("platePosition", 0, infoDocs...))
	s.SetProperty(enums.PropActiveFeedingPlan,
		s.Str("templateName", "unknown", enums.EndpointWetFeedingPlan))
}

var wetFeederProperties = []enums.Property{
	enums.PropSerial,
	enums.PropName,
	enums.PropModel,
	enums.PropModelName,
	enums.PropMac,
	enums.PropSoftwareVersion,
	enums.PropHardwareVersion,
	enums.PropOnline,
	enums.PropBatteryState,
	enums.PropElectricQuantity,
	enums.PropWifiSsid,
	enums.PropWifiRssi,
	enums.PropRunningState,
	enums.PropSleepMode,
	enums.PropFeedingPlanActive,
	enums.PropNextFeedingTime,
	enums.PropNextFeedingEndTime,
	enums.PropActiveFeedingPlan,
	enums.PropPlatePosition,
	enums.PropDoorBlocked,
	enums.PropUnitType,
}
