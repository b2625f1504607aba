package device

import (
	"context"

	pluginDevice "github.com/jjjonesjr33/petlibro/plugins/device"
	"github.com/jjjonesjr33/petlibro/plugins/device/enums"
)

// OneRFIDSmartFeeder is the feeder with an RFID tag reader, a motorized
// barn door and a dot-matrix screen.
type OneRFIDSmartFeeder struct {
	feederDevice
}

// NewOneRFIDSmartFeeder constructs an RFID feeder model.
func NewOneRFIDSmartFeeder(ctor *ConstructDevice) pluginDevice.IDevice {
	d := &OneRFIDSmartFeeder{
		feederDevice: feederDevice{newBaseDevice(ctor, enums.DevOneRFIDFeeder)},
	}

	d.fragments = append(d.feederFragments(ctor.API),
		fragment{endpoint: enums.EndpointAttributeSettings, optional: true,
			fetch: ctor.API.DeviceAttributeSettings},
		fragment{endpoint: enums.EndpointFeedingPlanToday, optional: true,
			fetch: ctor.API.DeviceFeedingPlanToday})

	d.registerFeederCommands()
	d.registerExtraCommands()
	d.derive = deriveFeeder
	d.finish(defaultUpdatePeriod, rfidFeederProperties)
	return d
}

func (d *OneRFIDSmartFeeder) registerExtraCommands() {
	d.commands[enums.CmdDisplayOn] = func(ctx context.Context, _ map[string]interface{}) error {
		return d.api.SetDisplaySwitch(ctx, d.serial, true)
	}
	d.commands[enums.CmdDisplayOff] = func(ctx context.Context, _ map[string]interface{}) error {
		return d.api.SetDisplaySwitch(ctx, d.serial, false)
	}
	d.commands[enums.CmdSetDisplayText] = func(ctx context.Context,
		args map[string]interface{}) error {
		text, err := argString(args, "text")
		if err != nil {
			return err
		}

		return d.api.SetDisplayText(ctx, d.serial, text)
	}
	d.commands[enums.CmdOpenLid] = func(ctx context.Context, _ map[string]interface{}) error {
		return d.api.OpenLid(ctx, d.serial)
	}
	d.commands[enums.CmdSetLidSpeed] = func(ctx context.Context,
		args map[string]interface{}) error {
		speed, err := argString(args, "speed")
		if err != nil {
			return err
		}

		return d.api.SetLidSpeed(ctx, d.serial, speed)
	}
	d.commands[enums.CmdSetLidMode] = func(ctx context.Context,
		args map[string]interface{}) error {
		mode, err := argString(args, "mode")
		if err != nil {
			return err
		}

		return d.api.SetLidMode(ctx, d.serial, mode)
	}
}

// DisplayOn turns the screen on.
func (d *OneRFIDSmartFeeder) DisplayOn(ctx context.Context) error {
	return d.api.SetDisplaySwitch(ctx, d.serial, true)
}

// DisplayOff turns the screen off.
func (d *OneRFIDSmartFeeder) DisplayOff(ctx context.Context) error {
	return d.api.SetDisplaySwitch(ctx, d.serial, false)
}

// SetDisplayText updates the text shown on the screen.
func (d *OneRFIDSmartFeeder) SetDisplayText(ctx context.Context, text string) error {
	return d.api.SetDisplayText(ctx, d.serial, text)
}

// OpenLid opens the barn door.
func (d *OneRFIDSmartFeeder) OpenLid(ctx context.Context) error {
	return d.api.OpenLid(ctx, d.serial)
}

// SetLidSpeed sets the barn door close speed.
func (d *OneRFIDSmartFeeder) SetLidSpeed(ctx context.Context, speed string) error {
	return d.api.SetLidSpeed(ctx, d.serial, speed)
}

// SetLidMode sets the barn door operation mode.
func (d *OneRFIDSmartFeeder) SetLidMode(ctx context.Context, mode string) error {
	return d.api.SetLidMode(ctx, d.serial, mode)
}

var rfidFeederProperties = []enums.Property{
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
	enums.PropTodayFeedingQuantities,
	enums.PropTodayFeedingTimes,
	enums.PropTodayEatingTimes,
	enums.PropTodayEatingSeconds,
	enums.PropFoodLow,
	enums.PropDispenserBlocked,
	enums.PropDoorState,
	enums.PropDoorBlocked,
	enums.PropChildLock,
	enums.PropSoundEnabled,
	enums.PropLightEnabled,
	enums.PropDisplayOn,
	enums.PropVolume,
	enums.PropDesiccantDaysRemaining,
	enums.PropUnitType,
}
