package hub

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jjjonesjr33/petlibro/mocks"
	pluginDevice "github.com/jjjonesjr33/petlibro/plugins/device"
	"github.com/jjjonesjr33/petlibro/plugins/device/enums"
	"github.com/jjjonesjr33/petlibro/systems/device"
	"github.com/jjjonesjr33/petlibro/systems/session"
	"github.com/stretchr/testify/assert"
)

type fakeSettings struct {
}

func (*fakeSettings) AccountEmail() string    { return "user@example.com" }
func (*fakeSettings) AccountPassword() string { return "secret" }
func (*fakeSettings) AccountRegion() string   { return "US" }
func (*fakeSettings) AccountBaseURL() string  { return "http://localhost" }
func (*fakeSettings) AccountTimezone() string { return "America/Chicago" }
func (*fakeSettings) PollingSchedule() string { return "@every 1m0s" }

func accountDevices() []map[string]interface{} {
	return []map[string]interface{}{
		{"deviceSn": "SN1", "name": "Feeder A", "productName": device.ProductGranaryFeeder},
		{"deviceSn": "SN2", "name": "Fountain B", "productName": device.ProductDockstreamFountain},
		{"deviceSn": "SN3", "name": "Mystery", "productName": "Space Feeder 3000"},
	}
}

func newTestHub(api *mocks.FakeAPI) (*Hub, *mocks.FakeClock) {
	clock := mocks.FakeNewClock(time.Unix(1000, 0))
	h := NewHub(&ConstructHub{
		Settings: &fakeSettings{},
		Clock:    clock,
		Cron:     mocks.FakeNewCron(),
		API:      api,
	})

	h.Init(&pluginDevice.InitDataDevice{ // nolint: errcheck
		Logger:                mocks.FakeNewLogger(nil),
		Secret:                mocks.FakeNewSecretStore(map[string]string{}, false),
		FanOut:                mocks.FakeNewFanOut(nil),
		DeviceStateUpdateChan: make(chan *pluginDevice.StateUpdateData, 100),
	})

	return h, clock
}

// Tests device discovery with an unknown product in the account.
func TestLoadDevices(t *testing.T) {
	api := mocks.FakeNewAPI(accountDevices(), map[enums.Endpoint]map[string]interface{}{
		enums.EndpointBaseInfo: {},
		enums.EndpointRealInfo: {"online": true},
	})

	h, _ := newTestHub(api)
	discovered, err := h.LoadDevices(context.Background())
	assert.NoError(t, err, "load")
	assert.Equal(t, 2, len(discovered), "two supported devices")
	assert.Equal(t, 2, len(h.Devices()), "hub devices")
	assert.NotNil(t, h.GetDevice("SN1"), "feeder present")
	assert.NotNil(t, h.GetDevice("SN2"), "fountain present")
	assert.Nil(t, h.GetDevice("SN3"), "unknown product skipped")
}

// Tests that repeated loads are idempotent, including skipped serials.
func TestLoadDevicesIdempotent(t *testing.T) {
	api := mocks.FakeNewAPI(accountDevices(), map[enums.Endpoint]map[string]interface{}{
		enums.EndpointBaseInfo: {},
		enums.EndpointRealInfo: {},
	})

	h, _ := newTestHub(api)
	first, err := h.LoadDevices(context.Background())
	assert.NoError(t, err, "first load")
	assert.Equal(t, 2, len(first), "first discovery")

	second, err := h.LoadDevices(context.Background())
	assert.NoError(t, err, "second load")
	assert.Equal(t, 0, len(second), "nothing new")
	assert.Equal(t, 2, len(h.Devices()), "no duplicates")
}

// Tests that a device appearing later is picked up.
func TestLoadDevicesNewArrival(t *testing.T) {
	api := mocks.FakeNewAPI(accountDevices()[:1], map[enums.Endpoint]map[string]interface{}{
		enums.EndpointBaseInfo: {},
		enums.EndpointRealInfo: {},
	})

	h, _ := newTestHub(api)
	first, _ := h.LoadDevices(context.Background())
	assert.Equal(t, 1, len(first), "initial discovery")

	api.Devices = accountDevices()[:2]
	second, err := h.LoadDevices(context.Background())
	assert.NoError(t, err, "second load")
	assert.Equal(t, 1, len(second), "one new device")
	assert.Equal(t, "SN2", second[0].Device.GetSerial(), "new serial")
}

// Tests that updates within the debounce window are skipped.
func TestUpdateDebounce(t *testing.T) {
	api := mocks.FakeNewAPI(accountDevices()[:2], map[enums.Endpoint]map[string]interface{}{
		enums.EndpointBaseInfo: {},
		enums.EndpointRealInfo: {},
	})

	h, clock := newTestHub(api)
	_, err := h.LoadDevices(context.Background())
	assert.NoError(t, err, "load")

	calls := api.FragmentCalls
	assert.NoError(t, h.Update(context.Background()), "debounced update")
	assert.Equal(t, calls, api.FragmentCalls, "no refresh inside window")

	clock.Advance(11 * time.Second)
	assert.NoError(t, h.Update(context.Background()), "due update")
	assert.True(t, api.FragmentCalls > calls, "devices refreshed")
}

// Tests that one failing device does not block the others and local
// failures do not raise an aggregate error.
func TestUpdatePartialFailureIsolated(t *testing.T) {
	api := mocks.FakeNewAPI(accountDevices()[:2], map[enums.Endpoint]map[string]interface{}{
		enums.EndpointBaseInfo: {},
		enums.EndpointRealInfo: {},
	})

	h, clock := newTestHub(api)
	_, err := h.LoadDevices(context.Background())
	assert.NoError(t, err, "load")

	api.Errors[enums.EndpointBaseInfo] = errors.New("device glitch")
	clock.Advance(11 * time.Second)
	assert.NoError(t, h.Update(context.Background()), "local failures absorbed")
}

// Tests that API class failures raise an aggregate error.
func TestUpdateAPIFailure(t *testing.T) {
	api := mocks.FakeNewAPI(accountDevices()[:2], map[enums.Endpoint]map[string]interface{}{
		enums.EndpointBaseInfo: {},
		enums.EndpointRealInfo: {},
	})

	h, clock := newTestHub(api)
	_, err := h.LoadDevices(context.Background())
	assert.NoError(t, err, "load")

	api.Errors[enums.EndpointBaseInfo] = &session.ErrAPI{Code: 500, Msg: "server error"}
	clock.Advance(11 * time.Second)

	err = h.Update(context.Background())
	assert.Error(t, err, "aggregate error")
	assert.IsType(t, &ErrUpdateFailed{}, err, "error type")
}

// Tests that credential rejection stays visible through the aggregate.
func TestUpdateInvalidAuthCause(t *testing.T) {
	api := mocks.FakeNewAPI(accountDevices()[:2], map[enums.Endpoint]map[string]interface{}{
		enums.EndpointBaseInfo: {},
		enums.EndpointRealInfo: {},
	})

	h, clock := newTestHub(api)
	_, err := h.LoadDevices(context.Background())
	assert.NoError(t, err, "load")

	api.Errors[enums.EndpointBaseInfo] = &session.ErrInvalidAuth{}
	clock.Advance(11 * time.Second)

	err = h.Update(context.Background())
	assert.Error(t, err, "aggregate error")
	assert.IsType(t, &ErrUpdateFailed{}, err, "error type")
	assert.True(t, session.IsInvalidAuth(err), "invalid auth cause")
}

// Tests that the hub refuses to work before Init.
func TestNotInitialized(t *testing.T) {
	h := NewHub(&ConstructHub{Settings: &fakeSettings{}})

	_, err := h.LoadDevices(context.Background())
	assert.IsType(t, &ErrNotInitialized{}, err, "load")
	assert.IsType(t, &ErrNotInitialized{}, h.Update(context.Background()), "update")
}

// Tests a device list failure during load.
func TestLoadDevicesListFailure(t *testing.T) {
	api := mocks.FakeNewAPI(nil, nil)
	api.ListErr = &session.ErrAPI{Code: 500, Msg: "server error"}

	h, _ := newTestHub(api)
	_, err := h.LoadDevices(context.Background())
	assert.Error(t, err, "load")
	assert.True(t, session.IsAPIError(err), "api error class")
}

// Tests that Init falls back to own logger and fan-out providers.
func TestInitDefaultProviders(t *testing.T) {
	api := mocks.FakeNewAPI(accountDevices()[:1], map[enums.Endpoint]map[string]interface{}{
		enums.EndpointBaseInfo: {},
		enums.EndpointRealInfo: {},
	})

	h := NewHub(&ConstructHub{
		Settings: &fakeSettings{},
		Clock:    mocks.FakeNewClock(time.Unix(1000, 0)),
		Cron:     mocks.FakeNewCron(),
		API:      api,
	})

	err := h.Init(&pluginDevice.InitDataDevice{
		Secret:                mocks.FakeNewSecretStore(map[string]string{}, false),
		DeviceStateUpdateChan: make(chan *pluginDevice.StateUpdateData, 10),
	})
	assert.NoError(t, err, "init")

	discovered, err := h.LoadDevices(context.Background())
	assert.NoError(t, err, "load")
	assert.Equal(t, 1, len(discovered), "device")
}

// Tests hub metadata.
func TestHubSpec(t *testing.T) {
	h, _ := newTestHub(mocks.FakeNewAPI(nil, nil))
	assert.Equal(t, "petlibro", h.GetName(), "name")
	assert.Equal(t, 60*time.Second, h.GetSpec().UpdatePeriod, "update period")
}
