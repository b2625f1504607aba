package device

import "context"

// IFeeder defines devices which dispense food.
type IFeeder interface {
	IDevice
	ManualFeed(ctx context.Context) error
	SetFeedingPlan(ctx context.Context, enable bool) error
	TodayFeedingQuantity() int
	TodayFeedingTimes() int
	FoodLow() bool
}

// ISoundLight defines devices with sound and light switches.
type ISoundLight interface {
	SetLightEnable(ctx context.Context, enable bool) error
	SetLightSwitch(ctx context.Context, enable bool) error
	SetSoundEnable(ctx context.Context, enable bool) error
	SetSoundSwitch(ctx context.Context, enable bool) error
	SetVolume(ctx context.Context, volume float64) error
}

// IDesiccant defines devices with a desiccant compartment.
type IDesiccant interface {
	DesiccantReset(ctx context.Context) error
	SetDesiccantFrequency(ctx context.Context, key string, frequency float64) error
	RemainingDesiccantDays() string
}

// ILidControl defines feeders with a motorized lid.
type ILidControl interface {
	OpenLid(ctx context.Context) error
	SetLidSpeed(ctx context.Context, speed string) error
	SetLidMode(ctx context.Context, mode string) error
}

// IDisplay defines devices with a screen.
type IDisplay interface {
	DisplayOn(ctx context.Context) error
	DisplayOff(ctx context.Context) error
	SetDisplayText(ctx context.Context, text string) error
}

// IFountain defines devices which dispense water.
type IFountain interface {
	IDevice
	ManualCleaning(ctx context.Context) error
	TodayWaterMl() int
	WeightPercent() int
	RemainingFilterDays() int
}
