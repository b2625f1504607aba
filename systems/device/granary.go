package device

import (
	pluginDevice "github.com/jjjonesjr33/petlibro/plugins/device"
	"github.com/jjjonesjr33/petlibro/plugins/device/enums"
)

// GranarySmartFeeder is the basic dry food feeder.
type GranarySmartFeeder struct {
	feederDevice
}

// NewGranarySmartFeeder constructs a granary feeder model.
func NewGranarySmartFeeder(ctor *ConstructDevice) pluginDevice.IDevice {
	d := &GranarySmartFeeder{
		feederDevice: feederDevice{newBaseDevice(ctor, enums.DevGranaryFeeder)},
	}

	d.fragments = d.feederFragments(ctor.API)
	d.registerFeederCommands()
	d.derive = deriveGranary
	d.finish(defaultUpdatePeriod, granaryProperties)
	return d
}

// Granary feeders report dispensed food in milliliters and the app shows
// cups, so the derived quantity is converted.
func deriveGranary(s *DeviceState) {
	deriveFeeder(s)

	ml := s.Float("todayFeedingQuantity", 0, enums.EndpointGrainStatus)
	s.SetProperty(enums.PropTodayFeedingQuantity, MlToCups(ml))
}

var granaryProperties = []enums.Property{
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
	enums.PropTodayFeedingQuantity,
	enums.PropTodayFeedingTimes,
	enums.PropFoodLow,
	enums.PropDispenserBlocked,
	enums.PropChildLock,
	enums.PropSoundEnabled,
	enums.PropLightEnabled,
	enums.PropVolume,
	enums.PropDesiccantDaysRemaining,
	enums.PropUnitType,
}
