// Package providers contains interfaces for internal systems.
package providers

import (
	"context"
)

// IPetLibroAPI defines typed surface over the vendor cloud API.
// Fragment reads are cached for a short window; commands never are.
type IPetLibroAPI interface {
	Login(ctx context.Context) error
	Logout(ctx context.Context) error

	ListDevices(ctx context.Context) ([]map[string]interface{}, error)
	DeviceBaseInfo(ctx context.Context, serial string) (map[string]interface{}, error)
	DeviceRealInfo(ctx context.Context, serial string) (map[string]interface{}, error)
	DeviceAttributeSettings(ctx context.Context, serial string) (map[string]interface{}, error)
	DeviceGrainStatus(ctx context.Context, serial string) (map[string]interface{}, error)
	DeviceFeedingPlanToday(ctx context.Context, serial string) (map[string]interface{}, error)
	DeviceFeedingPlanTemplates(ctx context.Context, serial string) (map[string]interface{}, error)
	DeviceWetFeedingPlan(ctx context.Context, serial string) (map[string]interface{}, error)

	ManualFeed(ctx context.Context, serial string) error
	SetFeedingPlan(ctx context.Context, serial string, enable bool) error
	SetChildLock(ctx context.Context, serial string, enable bool) error
	SetLightEnable(ctx context.Context, serial string, enable bool) error
	SetLightSwitch(ctx context.Context, serial string, enable bool) error
	SetSoundEnable(ctx context.Context, serial string, enable bool) error
	SetSoundSwitch(ctx context.Context, serial string, enable bool) error
	SetVolume(ctx context.Context, serial string, volume float64) error
	SetSoundSetting(ctx context.Context, serial string, on bool) error
	SetDisplaySwitch(ctx context.Context, serial string, on bool) error
	SetDisplayText(ctx context.Context, serial string, text string) error
	DesiccantReset(ctx context.Context, serial string) error
	SetDesiccantFrequency(ctx context.Context, serial string, key string, frequency float64) error
	OpenLid(ctx context.Context, serial string) error
	SetLidSpeed(ctx context.Context, serial string, speed string) error
	SetLidMode(ctx context.Context, serial string, mode string) error
	ManualCleaning(ctx context.Context, serial string) error
}
