package device

import (
	"context"

	"github.com/jjjonesjr33/petlibro/plugins/device/enums"
)

// Shared behavior of dry food feeders. Model structs embed it and extend
// the command table with their own extras.
type feederDevice struct {
	*baseDevice
}

// Registers commands every feeder supports.
func (d *feederDevice) registerFeederCommands() {
	d.commands[enums.CmdManualFeed] = func(ctx context.Context, _ map[string]interface{}) error {
		return d.api.ManualFeed(ctx, d.serial)
	}
	d.commands[enums.CmdSetFeedingPlan] = d.switchCommand(d.api.SetFeedingPlan)
	d.commands[enums.CmdSetChildLock] = d.switchCommand(d.api.SetChildLock)
	d.commands[enums.CmdSetLightEnable] = d.switchCommand(d.api.SetLightEnable)
	d.commands[enums.CmdSetLightSwitch] = d.switchCommand(d.api.SetLightSwitch)
	d.commands[enums.CmdSetSoundEnable] = d.switchCommand(d.api.SetSoundEnable)
	d.commands[enums.CmdSetSoundSwitch] = d.switchCommand(d.api.SetSoundSwitch)
	d.commands[enums.CmdSetVolume] = func(ctx context.Context, args map[string]interface{}) error {
		volume, err := argFloat(args, "volume")
		if err != nil {
			return err
		}

		return d.api.SetVolume(ctx, d.serial, volume)
	}
	d.commands[enums.CmdSoundOn] = func(ctx context.Context, _ map[string]interface{}) error {
		return d.api.SetSoundSetting(ctx, d.serial, true)
	}
	d.commands[enums.CmdSoundOff] = func(ctx context.Context, _ map[string]interface{}) error {
		return d.api.SetSoundSetting(ctx, d.serial, false)
	}
	d.commands[enums.CmdDesiccantReset] = func(ctx context.Context, _ map[string]interface{}) error {
		return d.api.DesiccantReset(ctx, d.serial)
	}
	d.commands[enums.CmdSetDesiccantFrequency] = func(ctx context.Context,
		args map[string]interface{}) error {
		key, err := argString(args, "key")
		if err != nil {
			return err
		}

		frequency, err := argFloat(args, "frequency")
		if err != nil {
			return err
		}

		return d.api.SetDesiccantFrequency(ctx, d.serial, key, frequency)
	}
}

// Wraps a deviceSn+enable API call into a command handler.
func (d *feederDevice) switchCommand(
	call func(ctx context.Context, serial string, enable bool) error) commandFunc {
	return func(ctx context.Context, args map[string]interface{}) error {
		enable, err := argBool(args, "enable")
		if err != nil {
			return err
		}

		return call(ctx, d.serial, enable)
	}
}

// ManualFeed dispenses one portion.
func (d *feederDevice) ManualFeed(ctx context.Context) error {
	return d.api.ManualFeed(ctx, d.serial)
}

// SetFeedingPlan switches the feeding plan on or off.
func (d *feederDevice) SetFeedingPlan(ctx context.Context, enable bool) error {
	return d.api.SetFeedingPlan(ctx, d.serial, enable)
}

// TodayFeedingQuantity returns quantity dispensed today.
func (d *feederDevice) TodayFeedingQuantity() int {
	v, _ := d.GetProperty(enums.PropTodayFeedingQuantity)
	return asInt(v, 0)
}

// TodayFeedingTimes returns number of feedings today.
func (d *feederDevice) TodayFeedingTimes() int {
	v, _ := d.GetProperty(enums.PropTodayFeedingTimes)
	return asInt(v, 0)
}

// FoodLow returns the low food level flag.
func (d *feederDevice) FoodLow() bool {
	v, _ := d.GetProperty(enums.PropFoodLow)
	return asBool(v, false)
}

// SetLightEnable switches the light function on or off.
func (d *feederDevice) SetLightEnable(ctx context.Context, enable bool) error {
	return d.api.SetLightEnable(ctx, d.serial, enable)
}

// SetLightSwitch turns the light on or off.
func (d *feederDevice) SetLightSwitch(ctx context.Context, enable bool) error {
	return d.api.SetLightSwitch(ctx, d.serial, enable)
}

// SetSoundEnable switches the sound function on or off.
func (d *feederDevice) SetSoundEnable(ctx context.Context, enable bool) error {
	return d.api.SetSoundEnable(ctx, d.serial, enable)
}

// SetSoundSwitch turns the sound on or off.
func (d *feederDevice) SetSoundSwitch(ctx context.Context, enable bool) error {
	return d.api.SetSoundSwitch(ctx, d.serial, enable)
}

// SetVolume sets the sound level.
func (d *feederDevice) SetVolume(ctx context.Context, volume float64) error {
	return d.api.SetVolume(ctx, d.serial, volume)
}

// DesiccantReset resets the desiccant counter.
func (d *feederDevice) DesiccantReset(ctx context.Context) error {
	return d.api.DesiccantReset(ctx, d.serial)
}

// SetDesiccantFrequency sets the desiccant replacement frequency.
func (d *feederDevice) SetDesiccantFrequency(ctx context.Context, key string,
	frequency float64) error {
	return d.api.SetDesiccantFrequency(ctx, d.serial, key, frequency)
}

// RemainingDesiccantDays returns remaining desiccant days.
func (d *feederDevice) RemainingDesiccantDays() string {
	v, _ := d.GetProperty(enums.PropDesiccantDaysRemaining)
	return asString(v, "unknown")
}

// Fragments shared by every feeder. Grain status is optional since some
// firmwares drop it while the device is busy.
func (d *feederDevice) feederFragments(api fragmentAPI) []fragment {
	return []fragment{
		{endpoint: enums.EndpointBaseInfo, fetch: api.DeviceBaseInfo},
		{endpoint: enums.EndpointRealInfo, fetch: api.DeviceRealInfo},
		{endpoint: enums.EndpointGrainStatus, optional: true, fetch: api.DeviceGrainStatus},
	}
}

// Narrow view of the API used when wiring fragment fetchers.
type fragmentAPI interface {
	DeviceBaseInfo(ctx context.Context, serial string) (map[string]interface{}, error)
	DeviceRealInfo(ctx context.Context, serial string) (map[string]interface{}, error)
	DeviceAttributeSettings(ctx context.Context, serial string) (map[string]interface{}, error)
	DeviceGrainStatus(ctx context.Context, serial string) (map[string]interface{}, error)
	DeviceFeedingPlanToday(ctx context.Context, serial string) (map[string]interface{}, error)
	DeviceFeedingPlanTemplates(ctx context.Context, serial string) (map[string]interface{}, error)
	DeviceWetFeedingPlan(ctx context.Context, serial string) (map[string]interface{}, error)
}
