package device

import (
	"context"
	"errors"
	"testing"

	"github.com/jjjonesjr33/petlibro/mocks"
	pluginDevice "github.com/jjjonesjr33/petlibro/plugins/device"
	"github.com/jjjonesjr33/petlibro/plugins/device/enums"
	"github.com/stretchr/testify/assert"
)

func granaryListEntry() map[string]interface{} {
	return map[string]interface{}{
		"deviceSn":          "SN1",
		"name":              "Kitchen Feeder",
		"productName":       ProductGranaryFeeder,
		"productIdentifier": "PLAF103",
	}
}

func newTestFeeder(t *testing.T, api *mocks.FakeAPI) pluginDevice.IDevice {
	dev, err := NewDevice(&ConstructDevice{
		RawDevice:  granaryListEntry(),
		API:        api,
		Logger:     mocks.FakeNewLogger(nil),
		FanOut:     mocks.FakeNewFanOut(nil),
		UpdateChan: make(chan *pluginDevice.StateUpdateData, 10),
	})
	assert.NoError(t, err, "construct")
	return dev
}

// Tests refresh of a granary feeder with the cups conversion.
func TestGranaryRefresh(t *testing.T) {
	api := mocks.FakeNewAPI(nil, map[enums.Endpoint]map[string]interface{}{
		enums.EndpointBaseInfo: {"softwareVersion": "1.0.2"},
		enums.EndpointRealInfo: {"online": true, "surplusGrain": true, "wifiRssi": float64(-54)},
		enums.EndpointGrainStatus: {
			"todayFeedingQuantity": float64(2366),
			"todayFeedingTimes":    float64(3),
		},
	})

	dev := newTestFeeder(t, api)
	assert.NoError(t, dev.Refresh(context.Background()), "refresh")

	v, _ := dev.GetProperty(enums.PropTodayFeedingQuantity)
	assert.Equal(t, 10, v, "cups")

	v, _ = dev.GetProperty(enums.PropTodayFeedingTimes)
	assert.Equal(t, 3, v, "feedings")

	v, _ = dev.GetProperty(enums.PropFoodLow)
	assert.Equal(t, false, v, "food low")

	v, _ = dev.GetProperty(enums.PropOnline)
	assert.Equal(t, true, v, "online")

	v, _ = dev.GetProperty(enums.PropWifiRssi)
	assert.Equal(t, -54, v, "rssi")

	assert.Equal(t, enums.DevGranaryFeeder, dev.GetType(), "type")
	assert.Equal(t, "SN1", dev.GetSerial(), "serial")
	assert.Equal(t, "Kitchen Feeder", dev.GetName(), "name")
}

// Tests that a failed optional fragment does not abort refresh.
func TestOptionalFragmentAbsorbed(t *testing.T) {
	api := mocks.FakeNewAPI(nil, map[enums.Endpoint]map[string]interface{}{
		enums.EndpointBaseInfo: {},
		enums.EndpointRealInfo: {"online": true},
	})
	api.Errors[enums.EndpointGrainStatus] = errors.New("busy")

	dev := newTestFeeder(t, api)
	assert.NoError(t, dev.Refresh(context.Background()), "refresh")

	v, _ := dev.GetProperty(enums.PropTodayFeedingQuantity)
	assert.Equal(t, 0, v, "quantity default")
}

// Tests that a failed required fragment aborts refresh.
func TestRequiredFragmentAborts(t *testing.T) {
	api := mocks.FakeNewAPI(nil, nil)
	api.Errors[enums.EndpointBaseInfo] = errors.New("down")

	dev := newTestFeeder(t, api)
	assert.Error(t, dev.Refresh(context.Background()), "refresh")
}

// Tests that refresh keeps fields the cloud stopped reporting.
func TestRefreshKeepsKnownFields(t *testing.T) {
	api := mocks.FakeNewAPI(nil, map[enums.Endpoint]map[string]interface{}{
		enums.EndpointBaseInfo: {},
		enums.EndpointRealInfo: {"wifiSsid": "home", "online": true},
	})

	dev := newTestFeeder(t, api)
	assert.NoError(t, dev.Refresh(context.Background()), "first refresh")

	api.Fragments[enums.EndpointRealInfo] = map[string]interface{}{"online": false}
	assert.NoError(t, dev.Refresh(context.Background()), "second refresh")

	v, _ := dev.GetProperty(enums.PropWifiSsid)
	assert.Equal(t, "home", v, "ssid kept")

	v, _ = dev.GetProperty(enums.PropOnline)
	assert.Equal(t, false, v, "online updated")
}

// Tests command dispatch and the unsupported command error.
func TestCommandDispatch(t *testing.T) {
	api := mocks.FakeNewAPI(nil, nil)
	dev := newTestFeeder(t, api)
	ctx := context.Background()

	assert.NoError(t, dev.InvokeCommand(ctx, enums.CmdManualFeed, nil), "manual feed")
	assert.Equal(t, []string{"manual_feed"}, api.Commands, "recorded call")

	err := dev.InvokeCommand(ctx, enums.CmdManualCleaning, nil)
	assert.Error(t, err, "unsupported")
	assert.IsType(t, &ErrUnsupportedCommand{}, err, "error type")
}

// Tests command argument validation.
func TestCommandArguments(t *testing.T) {
	api := mocks.FakeNewAPI(nil, nil)
	dev := newTestFeeder(t, api)
	ctx := context.Background()

	err := dev.InvokeCommand(ctx, enums.CmdSetChildLock, nil)
	assert.IsType(t, &ErrBadCommandArgument{}, err, "missing arg")

	err = dev.InvokeCommand(ctx, enums.CmdSetChildLock, map[string]interface{}{"enable": "yes"})
	assert.IsType(t, &ErrBadCommandArgument{}, err, "wrong type")

	err = dev.InvokeCommand(ctx, enums.CmdSetChildLock, map[string]interface{}{"enable": true})
	assert.NoError(t, err, "valid arg")
}

// Tests that one refresh produces exactly one update notification.
func TestSingleNotifyPerRefresh(t *testing.T) {
	api := mocks.FakeNewAPI(nil, map[enums.Endpoint]map[string]interface{}{
		enums.EndpointBaseInfo:    {},
		enums.EndpointRealInfo:    {},
		enums.EndpointGrainStatus: {},
	})

	updates := make(chan *pluginDevice.StateUpdateData, 10)
	dev, err := NewDevice(&ConstructDevice{
		RawDevice:  granaryListEntry(),
		API:        api,
		Logger:     mocks.FakeNewLogger(nil),
		FanOut:     mocks.FakeNewFanOut(nil),
		UpdateChan: updates,
	})
	assert.NoError(t, err, "construct")
	assert.NoError(t, dev.Refresh(context.Background()), "refresh")

	assert.Equal(t, 1, len(updates), "single notification")
	msg := <-updates
	assert.Equal(t, "SN1", msg.Serial, "serial")
}

// Tests the RFID feeder eating telemetry.
func TestRFIDFeederTelemetry(t *testing.T) {
	api := mocks.FakeNewAPI(nil, map[enums.Endpoint]map[string]interface{}{
		enums.EndpointBaseInfo: {},
		enums.EndpointRealInfo: {"barnDoorState": true, "screenDisplaySwitch": true},
		enums.EndpointGrainStatus: {
			"todayFeedingQuantity": float64(120),
			"todayEatingTimes":     float64(4),
			"eatingTime":           "3'20''",
		},
	})

	raw := granaryListEntry()
	raw["productName"] = ProductOneRFIDFeeder

	dev, err := NewDevice(&ConstructDevice{
		RawDevice:  raw,
		API:        api,
		Logger:     mocks.FakeNewLogger(nil),
		FanOut:     mocks.FakeNewFanOut(nil),
		UpdateChan: make(chan *pluginDevice.StateUpdateData, 10),
	})
	assert.NoError(t, err, "construct")
	assert.Equal(t, enums.DevOneRFIDFeeder, dev.GetType(), "type")
	assert.NoError(t, dev.Refresh(context.Background()), "refresh")

	v, _ := dev.GetProperty(enums.PropTodayEatingSeconds)
	assert.Equal(t, 200, v, "eating seconds")

	v, _ = dev.GetProperty(enums.PropTodayFeedingQuantity)
	assert.Equal(t, 120, v, "raw quantity, no cups conversion")

	v, _ = dev.GetProperty(enums.PropDoorState)
	assert.Equal(t, true, v, "door state")

	v, _ = dev.GetProperty(enums.PropDisplayOn)
	assert.Equal(t, true, v, "display")
}

// Tests fountain telemetry derivation.
func TestFountainTelemetry(t *testing.T) {
	api := mocks.FakeNewAPI(nil, map[enums.Endpoint]map[string]interface{}{
		enums.EndpointBaseInfo: {},
		enums.EndpointRealInfo: {
			"weight":                   float64(1530),
			"weightPercent":            float64(64),
			"todayTotalMl":             float64(420),
			"remainingReplacementDays": float64(12),
		},
	})

	raw := granaryListEntry()
	raw["productName"] = ProductDockstreamRFID

	dev, err := NewDevice(&ConstructDevice{
		RawDevice:  raw,
		API:        api,
		Logger:     mocks.FakeNewLogger(nil),
		FanOut:     mocks.FakeNewFanOut(nil),
		UpdateChan: make(chan *pluginDevice.StateUpdateData, 10),
	})
	assert.NoError(t, err, "construct")
	assert.Equal(t, enums.DevDockstreamRFIDFountain, dev.GetType(), "type")
	assert.NoError(t, dev.Refresh(context.Background()), "refresh")

	fountain, ok := dev.(*DockstreamSmartRFIDFountain)
	assert.True(t, ok, "concrete type")
	assert.Equal(t, 420, fountain.TodayWaterMl(), "water")
	assert.Equal(t, 64, fountain.WeightPercent(), "percent")
	assert.Equal(t, 12, fountain.RemainingFilterDays(), "filter days")
}

// Tests the unknown product error.
func TestUnknownProduct(t *testing.T) {
	raw := granaryListEntry()
	raw["productName"] = "Space Feeder 3000"

	_, err := NewDevice(&ConstructDevice{
		RawDevice: raw,
		API:       mocks.FakeNewAPI(nil, nil),
		Logger:    mocks.FakeNewLogger(nil),
	})
	assert.Error(t, err, "construct")
	assert.IsType(t, &ErrUnknownProduct{}, err, "error type")
}

// Tests that list-entry properties exist before the first refresh.
func TestInitialDerive(t *testing.T) {
	dev := newTestFeeder(t, mocks.FakeNewAPI(nil, nil))

	v, _ := dev.GetProperty(enums.PropSerial)
	assert.Equal(t, "SN1", v, "serial")

	v, _ = dev.GetProperty(enums.PropModel)
	assert.Equal(t, "PLAF103", v, "model")

	v, _ = dev.GetProperty(enums.PropBatteryState)
	assert.Equal(t, "unknown", v, "battery default")
}
