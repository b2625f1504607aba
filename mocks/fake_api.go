//+build !release

package mocks

import (
	"context"
	"sync"

	"github.com/jjjonesjr33/petlibro/plugins/device/enums"
	"github.com/jjjonesjr33/petlibro/providers"
)

// Fake API with per-endpoint canned payloads and error injection.
// Counters are guarded since the hub refreshes devices concurrently.
type FakeAPI struct {
	sync.Mutex
	Devices   []map[string]interface{}
	Fragments map[enums.Endpoint]map[string]interface{}
	Errors    map[enums.Endpoint]error
	ListErr   error

	Commands      []string
	FragmentCalls int
}

func (f *FakeAPI) Login(ctx context.Context) error {
	return nil
}

func (f *FakeAPI) Logout(ctx context.Context) error {
	return nil
}

func (f *FakeAPI) ListDevices(ctx context.Context) ([]map[string]interface{}, error) {
	if nil != f.ListErr {
		return nil, f.ListErr
	}

	return f.Devices, nil
}

func (f *FakeAPI) fragment(endpoint enums.Endpoint) (map[string]interface{}, error) {
	f.Lock()
	defer f.Unlock()

	f.FragmentCalls++
	if err, ok := f.Errors[endpoint]; ok && nil != err {
		return nil, err
	}

	return f.Fragments[endpoint], nil
}

func (f *FakeAPI) DeviceBaseInfo(ctx context.Context, serial string) (map[string]interface{}, error) {
	return f.fragment(enums.EndpointBaseInfo)
}

func (f *FakeAPI) DeviceRealInfo(ctx context.Context, serial string) (map[string]interface{}, error) {
	return f.fragment(enums.EndpointRealInfo)
}

func (f *FakeAPI) DeviceAttributeSettings(ctx context.Context, serial string) (map[string]interface{}, error) {
	return f.fragment(enums.EndpointAttributeSettings)
}

func (f *FakeAPI) DeviceGrainStatus(ctx context.Context, serial string) (map[string]interface{}, error) {
	return f.fragment(enums.EndpointGrainStatus)
}

func (f *FakeAPI) DeviceFeedingPlanToday(ctx context.Context, serial string) (map[string]interface{}, error) {
	return f.fragment(enums.EndpointFeedingPlanToday)
}

func (f *FakeAPI) DeviceFeedingPlanTemplates(ctx context.Context, serial string) (map[string]interface{}, error) {
	return f.fragment(enums.EndpointFeedingPlanTemplates)
}

func (f *FakeAPI) DeviceWetFeedingPlan(ctx context.Context, serial string) (map[string]interface{}, error) {
	return f.fragment(enums.EndpointWetFeedingPlan)
}

func (f *FakeAPI) record(name string) error {
	f.Lock()
	defer f.Unlock()

	f.Commands = append(f.Commands, name)
	return nil
}

func (f *FakeAPI) ManualFeed(ctx context.Context, serial string) error {
	return f.record("manual_feed")
}

func (f *FakeAPI) SetFeedingPlan(ctx context.Context, serial string, enable bool) error {
	return f.record("set_feeding_plan")
}

func (f *FakeAPI) SetChildLock(ctx context.Context, serial string, enable bool) error {
	return f.record("set_child_lock")
}

func (f *FakeAPI) SetLightEnable(ctx context.Context, serial string, enable bool) error {
	return f.record("set_light_enable")
}

func (f *FakeAPI) SetLightSwitch(ctx context.Context, serial string, enable bool) error {
	return f.record("set_light_switch")
}

func (f *FakeAPI) SetSoundEnable(ctx context.Context, serial string, enable bool) error {
	return f.record("set_sound_enable")
}

func (f *FakeAPI) SetSoundSwitch(ctx context.Context, serial string, enable bool) error {
	return f.record("set_sound_switch")
}

func (f *FakeAPI) SetVolume(ctx context.Context, serial string, volume float64) error {
	return f.record("set_volume")
}

func (f *FakeAPI) SetSoundSetting(ctx context.Context, serial string, on bool) error {
	return f.record("sound_setting")
}

func (f *FakeAPI) SetDisplaySwitch(ctx context.Context, serial string, on bool) error {
	return f.record("display_switch")
}

func (f *FakeAPI) SetDisplayText(ctx context.Context, serial string, text string) error {
	return f.record("set_display_text")
}

func (f *FakeAPI) DesiccantReset(ctx context.Context, serial string) error {
	return f.record("desiccant_reset")
}

func (f *FakeAPI) SetDesiccantFrequency(ctx context.Context, serial string, key string, frequency float64) error {
	return f.record("set_desiccant_frequency")
}

func (f *FakeAPI) OpenLid(ctx context.Context, serial string) error {
	return f.record("open_lid")
}

func (f *FakeAPI) SetLidSpeed(ctx context.Context, serial string, speed string) error {
	return f.record("set_lid_speed")
}

func (f *FakeAPI) SetLidMode(ctx context.Context, serial string, mode string) error {
	return f.record("set_lid_mode")
}

func (f *FakeAPI) ManualCleaning(ctx context.Context, serial string) error {
	return f.record("manual_cleaning")
}

// FakeNewAPI creates a fake API provider.
func FakeNewAPI(devices []map[string]interface{},
	fragments map[enums.Endpoint]map[string]interface{}) *FakeAPI {
	if nil == fragments {
		fragments = make(map[enums.Endpoint]map[string]interface{})
	}

	return &FakeAPI{
		Devices:   devices,
		Fragments: fragments,
		Errors:    make(map[enums.Endpoint]error),
	}
}

var _ providers.IPetLibroAPI = (*FakeAPI)(nil)
