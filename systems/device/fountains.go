package device

import (
	"context"

	pluginDevice "github.com/jjjonesjr33/petlibro/plugins/device"
	"github.com/jjjonesjr33/petlibro/plugins/device/enums"
)

// Shared behavior of water fountains.
type fountainDevice struct {
	*baseDevice
}

func (d *fountainDevice) registerFountainCommands() {
	d.commands[enums.CmdSetLightSwitch] = func(ctx context.Context,
		args map[string]interface{}) error {
		enable, err := argBool(args, "enable")
		if err != nil {
			return err
		}

		return d.api.SetLightSwitch(ctx, d.serial, enable)
	}
	d.commands[enums.CmdSetSoundSwitch] = func(ctx context.Context,
		args map[string]interface{}) error {
		enable, err := argBool(args, "enable")
		if err != nil {
			return err
		}

		return d.api.SetSoundSwitch(ctx, d.serial, enable)
	}
	d.commands[enums.CmdManualCleaning] = func(ctx context.Context,
		_ map[string]interface{}) error {
		return d.api.ManualCleaning(ctx, d.serial)
	}
}

// ManualCleaning triggers a cleaning cycle.
func (d *fountainDevice) ManualCleaning(ctx context.Context) error {
	return d.api.ManualCleaning(ctx, d.serial)
}

// TodayWaterMl returns water dispensed today.
func (d *fountainDevice) TodayWaterMl() int {
	v, _ := d.GetProperty(enums.PropTodayWaterMl)
	return asInt(v, 0)
}

// WeightPercent returns the water weight percent.
func (d *fountainDevice) WeightPercent() int {
	v, _ := d.GetProperty(enums.PropWeightPercent)
	return asInt(v, 0)
}

// RemainingFilterDays returns remaining filter days.
func (d *fountainDevice) RemainingFilterDays() int {
	v, _ := d.GetProperty(enums.PropFilterDaysRemaining)
	return asInt(v, 0)
}

func (d *fountainDevice) fountainFragments(api fragmentAPI) []fragment {
	return []fragment{
		{endpoint: enums.EndpointBaseInfo, fetch: api.DeviceBaseInfo},
		{endpoint: enums.EndpointRealInfo, fetch: api.DeviceRealInfo},
	}
}

// DockstreamSmartFountain is the basic water fountain.
type DockstreamSmartFountain struct {
	fountainDevice
}

// NewDockstreamSmartFountain constructs a fountain model.
func NewDockstreamSmartFountain(ctor *ConstructDevice) pluginDevice.IDevice {
	d := &DockstreamSmartFountain{
		fountainDevice: fountainDevice{newBaseDevice(ctor, enums.DevDockstreamFountain)},
	}

	d.fragments = d.fountainFragments(ctor.API)
	d.registerFountainCommands()
	d.derive = deriveFountain
	d.finish(defaultUpdatePeriod, fountainProperties)
	return d
}

// DockstreamSmartRFIDFountain is the fountain with per-pet RFID tracking.
type DockstreamSmartRFIDFountain struct {
	fountainDevice
}

// NewDockstreamSmartRFIDFountain constructs an RFID fountain model.
func NewDockstreamSmartRFIDFountain(ctor *ConstructDevice) pluginDevice.IDevice {
	d := &DockstreamSmartRFIDFountain{
		fountainDevice: fountainDevice{newBaseDevice(ctor, enums.DevDockstreamRFIDFountain)},
	}

	d.fragments = d.fountainFragments(ctor.API)
	d.registerFountainCommands()
	d.derive = deriveFountain
	d.finish(defaultUpdatePeriod, fountainProperties)
	return d
}

var fountainProperties = []enums.Property{
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
	enums.PropWeight,
	enums.PropWeightPercent,
	enums.PropTodayWaterMl,
	enums.PropWaterInterval,
	enums.PropWaterDuration,
	enums.PropFilterDaysRemaining,
	enums.PropCleaningDaysRemaining,
	enums.PropVacuumState,
	enums.PropPumpAirState,
	enums.PropLightEnabled,
	enums.PropSoundEnabled,
}
