// Package api provides typed surface over the PETLIBRO cloud endpoints.
package api

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jjjonesjr33/petlibro/plugins/common"
	"github.com/jjjonesjr33/petlibro/plugins/device/enums"
	"github.com/jjjonesjr33/petlibro/providers"
	"github.com/jjjonesjr33/petlibro/systems/session"
	"github.com/jjjonesjr33/petlibro/utils"
	"github.com/pkg/errors"
)

// ConstructClient has all data required for a new API client.
type ConstructClient struct {
	Session  *session.Session
	Logger   common.ILoggerProvider
	Clock    providers.IClockProvider
	CacheTTL time.Duration
}

// API client implementation.
type client struct {
	session *session.Session
	logger  common.ILoggerProvider
	cache   *responseCache
}

// NewClient constructs a new API client.
func NewClient(ctor *ConstructClient) providers.IPetLibroAPI {
	clock := ctor.Clock
	if nil == clock {
		clock = utils.NewClock()
	}

	ttl := ctor.CacheTTL
	if 0 == ttl {
		ttl = DefaultCacheTTL
	}

	return &client{
		session: ctor.Session,
		logger:  ctor.Logger,
		cache:   newResponseCache(ttl, clock),
	}
}

// Login performs account login.
func (c *client) Login(ctx context.Context) error {
	return c.session.Login(ctx)
}

// Logout invalidates the session.
func (c *client) Logout(ctx context.Context) error {
	return c.session.Logout(ctx)
}

// ListDevices returns all account devices.
func (c *client) ListDevices(ctx context.Context) ([]map[string]interface{}, error) {
	raw, err := c.session.Post(ctx, enums.EndpointDeviceList.Path(), map[string]interface{}{})
	if err != nil {
		return nil, err
	}

	if isEmptyPayload(raw) {
		return nil, nil
	}

	var devices []map[string]interface{}
	if err := json.Unmarshal(raw, &devices); err != nil {
		return nil, &session.ErrBadPayload{}
	}

	return devices, nil
}

// DeviceBaseInfo returns device base info fragment.
func (c *client) DeviceBaseInfo(ctx context.Context, serial string) (map[string]interface{}, error) {
	return c.fragment(ctx, serial, enums.EndpointBaseInfo)
}

// DeviceRealInfo returns device real-time info fragment.
func (c *client) DeviceRealInfo(ctx context.Context, serial string) (map[string]interface{}, error) {
	return c.fragment(ctx, serial, enums.EndpointRealInfo)
}

// DeviceAttributeSettings returns device attribute settings fragment.
func (c *client) DeviceAttributeSettings(ctx context.Context, serial string) (map[string]interface{}, error) {
	return c.fragment(ctx, serial, enums.EndpointAttributeSettings)
}

// DeviceGrainStatus returns feeder grain status fragment.
func (c *client) DeviceGrainStatus(ctx context.Context, serial string) (map[string]interface{}, error) {
	return c.fragment(ctx, serial, enums.EndpointGrainStatus)
}

// DeviceFeedingPlanToday returns today's feeding plan fragment.
func (c *client) DeviceFeedingPlanToday(ctx context.Context, serial string) (map[string]interface{}, error) {
	return c.fragment(ctx, serial, enums.EndpointFeedingPlanToday)
}

// DeviceFeedingPlanTemplates returns feeding plan templates fragment.
func (c *client) DeviceFeedingPlanTemplates(ctx context.Context, serial string) (map[string]interface{}, error) {
	return c.fragment(ctx, serial, enums.EndpointFeedingPlanTemplates)
}

// DeviceWetFeedingPlan returns wet feeding plan fragment.
func (c *client) DeviceWetFeedingPlan(ctx context.Context, serial string) (map[string]interface{}, error) {
	return c.fragment(ctx, serial, enums.EndpointWetFeedingPlan)
}

// ManualFeed triggers manual feeding.
func (c *client) ManualFeed(ctx context.Context, serial string) error {
	return c.command(ctx, manualFeedingPath, map[string]interface{}{
		"deviceSn":  serial,
		"grainNum":  1,
		"requestId": newRequestID(),
	})
}

// SetFeedingPlan switches the feeding plan on or off.
func (c *client) SetFeedingPlan(ctx context.Context, serial string, enable bool) error {
	return c.enableSwitch(ctx, feedingPlanSwitchPath, serial, enable)
}

// SetChildLock switches the child lock on or off.
func (c *client) SetChildLock(ctx context.Context, serial string, enable bool) error {
	return c.enableSwitch(ctx, childLockSwitchPath, serial, enable)
}

// SetLightEnable switches the light function on or off.
func (c *client) SetLightEnable(ctx context.Context, serial string, enable bool) error {
	return c.enableSwitch(ctx, lightEnableSwitchPath, serial, enable)
}

// SetLightSwitch turns the light on or off.
func (c *client) SetLightSwitch(ctx context.Context, serial string, enable bool) error {
	return c.enableSwitch(ctx, lightSwitchPath, serial, enable)
}

// SetSoundEnable switches the sound function on or off.
func (c *client) SetSoundEnable(ctx context.Context, serial string, enable bool) error {
	return c.enableSwitch(ctx, soundEnableSwitchPath, serial, enable)
}

// SetSoundSwitch turns the sound on or off.
func (c *client) SetSoundSwitch(ctx context.Context, serial string, enable bool) error {
	return c.enableSwitch(ctx, soundSwitchPath, serial, enable)
}

// SetVolume sets the sound level.
func (c *client) SetVolume(ctx context.Context, serial string, volume float64) error {
	return c.command(ctx, volumeSettingPath, map[string]interface{}{
		"deviceSn": serial,
		"volume":   volume,
	})
}

// SetSoundSetting turns the sound setting on or off.
func (c *client) SetSoundSetting(ctx context.Context, serial string, on bool) error {
	return c.command(ctx, soundSettingPath, map[string]interface{}{
		"deviceSn":       serial,
		"soundSwitch":    on,
		"soundAgingType": 1,
		"soundStartTime": nil,
		"soundEndTime":   nil,
	})
}

// SetDisplaySwitch turns the screen display on or off.
func (c *client) SetDisplaySwitch(ctx context.Context, serial string, on bool) error {
	return c.command(ctx, displayMatrixSettingPath, map[string]interface{}{
		"deviceSn":               serial,
		"screenDisplayAgingType": 1,
		"screenDisplayStartTime": nil,
		"screenDisplayEndTime":   nil,
		"screenDisplaySwitch":    on,
	})
}

// SetDisplayText updates the text shown on the device screen.
func (c *client) SetDisplayText(ctx context.Context, serial string, text string) error {
	return c.command(ctx, displayTextSettingPath, map[string]interface{}{
		"deviceSn": serial,
		"text":     text,
	})
}

// DesiccantReset resets the desiccant counter.
func (c *client) DesiccantReset(ctx context.Context, serial string) error {
	return c.command(ctx, desiccantResetPath, map[string]interface{}{
		"deviceSn":  serial,
		"requestId": newRequestID(),
		"timeout":   commandTimeoutMs,
	})
}

// SetDesiccantFrequency sets the desiccant replacement frequency.
func (c *client) SetDesiccantFrequency(ctx context.Context, serial string,
	key string, frequency float64) error {
	return c.command(ctx, maintenanceFrequencyPath, map[string]interface{}{
		"deviceSn":  serial,
		"key":       key,
		"frequency": frequency,
		"requestId": newRequestID(),
		"timeout":   commandTimeoutMs,
	})
}

// OpenLid triggers manual lid opening.
func (c *client) OpenLid(ctx context.Context, serial string) error {
	return c.command(ctx, doorStateChangePath, map[string]interface{}{
		"deviceSn":      serial,
		"barnDoorState": true,
		"timeout":       lidTimeoutMs,
	})
}

// SetLidSpeed sets the lid close speed.
func (c *client) SetLidSpeed(ctx context.Context, serial string, speed string) error {
	return c.command(ctx, lidSpeedSettingPath, map[string]interface{}{
		"deviceSn": serial,
		"speed":    speed,
	})
}

// SetLidMode sets the lid operation mode.
func (c *client) SetLidMode(ctx context.Context, serial string, mode string) error {
	return c.command(ctx, lidModeSettingPath, map[string]interface{}{
		"deviceSn": serial,
		"mode":     mode,
	})
}

// ManualCleaning triggers a manual cleaning cycle.
func (c *client) ManualCleaning(ctx context.Context, serial string) error {
	return c.command(ctx, manualCleaningPath, map[string]interface{}{
		"deviceSn":  serial,
		"requestId": newRequestID(),
		"timeout":   commandTimeoutMs,
	})
}

// Fetches one fragment endpoint, serving fresh repeats from cache.
func (c *client) fragment(ctx context.Context, serial string,
	endpoint enums.Endpoint) (map[string]interface{}, error) {
	if data, ok := c.cache.get(serial, endpoint); ok {
		c.logger.Debug("Serving fragment from cache", common.LogSystemToken, logSystem,
			common.LogSerialToken, serial, common.LogEndpointToken, endpoint.String())
		return data, nil
	}

	raw, err := c.session.PostSerial(ctx, endpoint.Path(), serial, map[string]interface{}{})
	if err != nil {
		return nil, errors.Wrap(err, endpoint.String())
	}

	data := map[string]interface{}{}
	if !isEmptyPayload(raw) {
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, &session.ErrBadPayload{}
		}
	}

	c.cache.set(serial, endpoint, data)
	return data, nil
}

// Fire-and-forget command POST; callers follow up with a refresh.
func (c *client) command(ctx context.Context, path string, body map[string]interface{}) error {
	_, err := c.session.Post(ctx, path, body)
	return err
}

// Switch commands share the same two-field body.
func (c *client) enableSwitch(ctx context.Context, path string, serial string, enable bool) error {
	return c.command(ctx, path, map[string]interface{}{
		"deviceSn": serial,
		"enable":   enable,
	})
}

// Vendor expects a 32-char hex request ID for actuating commands.
func newRequestID() string {
	return strings.Replace(uuid.New().String(), "-", "", -1)
}

// Some endpoints legitimately return null data.
func isEmptyPayload(raw json.RawMessage) bool {
	return 0 == len(raw) || "null" == string(raw)
}
