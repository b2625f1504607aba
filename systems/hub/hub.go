// Package hub orchestrates PETLIBRO device discovery and polling.
package hub

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/jjjonesjr33/petlibro/plugins/common"
	pluginDevice "github.com/jjjonesjr33/petlibro/plugins/device"
	"github.com/jjjonesjr33/petlibro/providers"
	"github.com/jjjonesjr33/petlibro/systems/api"
	"github.com/jjjonesjr33/petlibro/systems/device"
	"github.com/jjjonesjr33/petlibro/systems/fanout"
	"github.com/jjjonesjr33/petlibro/systems/logger"
	"github.com/jjjonesjr33/petlibro/systems/session"
	"github.com/jjjonesjr33/petlibro/utils"
	"github.com/pkg/errors"
)

// ConstructHub has account and transport data required for a new hub.
// Logger, secret store and update channels arrive later through Init.
type ConstructHub struct {
	Settings ISettings

	Transport    *http.Client
	Clock        providers.IClockProvider
	Cron         providers.ICronProvider
	API          providers.IPetLibroAPI
	CacheTTL     time.Duration
	PollSchedule string
}

// Hub implements pluginDevice.IHub over one PETLIBRO account.
type Hub struct {
	ctor *ConstructHub

	logger     common.ILoggerProvider
	secret     common.ISecretProvider
	fanOut     common.IFanOutProvider
	updateChan chan *pluginDevice.StateUpdateData

	api   providers.IPetLibroAPI
	clock providers.IClockProvider
	cron  providers.ICronProvider
	jobID int

	mutex   sync.Mutex
	devices map[string]pluginDevice.IDevice
	order   []string

	// Serials already seen by LoadDevices, including devices with an
	// unknown product which were skipped. Keeps repeated loads quiet.
	knownSerials map[string]bool
	lastRefresh  map[string]time.Time
}

// NewHub constructs a new hub.
func NewHub(ctor *ConstructHub) *Hub {
	return &Hub{
		ctor:         ctor,
		devices:      make(map[string]pluginDevice.IDevice),
		knownSerials: make(map[string]bool),
		lastRefresh:  make(map[string]time.Time),
	}
}

// Init wires the host-supplied dependencies and builds the session and
// the API client. Polling starts right away so the hub works standalone;
// host-driven Update calls are absorbed by the same debounce. A missing
// logger or fan-out falls back to the console and in-process providers
// so the hub runs outside the host platform too.
func (h *Hub) Init(data *pluginDevice.InitDataDevice) error {
	h.logger = data.Logger
	if nil == h.logger {
		h.logger = logger.NewConsoleLogger()
	}

	h.fanOut = data.FanOut
	if nil == h.fanOut {
		h.fanOut = fanout.NewFanOut()
	}

	h.secret = data.Secret
	h.updateChan = data.DeviceStateUpdateChan

	h.clock = h.ctor.Clock
	if nil == h.clock {
		h.clock = utils.NewClock()
	}

	h.api = h.ctor.API
	if nil == h.api {
		sess := session.NewSession(&session.ConstructSession{
			BaseURL:   h.ctor.Settings.AccountBaseURL(),
			Transport: h.ctor.Transport,
			Timezone:  h.ctor.Settings.AccountTimezone(),
			Secret:    h.secret,
			Logger:    h.logger,
			Credentials: session.Credentials{
				Email:    h.ctor.Settings.AccountEmail(),
				Password: h.ctor.Settings.AccountPassword(),
				Region:   h.ctor.Settings.AccountRegion(),
			},
		})

		h.api = api.NewClient(&api.ConstructClient{
			Session:  sess,
			Logger:   h.logger,
			Clock:    h.clock,
			CacheTTL: h.ctor.CacheTTL,
		})
	}

	h.cron = h.ctor.Cron
	if nil == h.cron {
		h.cron = utils.NewCron()
	}

	schedule := h.ctor.PollSchedule
	if "" == schedule {
		schedule = h.ctor.Settings.PollingSchedule()
	}

	if "" == schedule {
		schedule = defaultPollSchedule
	}

	id, err := h.cron.AddFunc(schedule, func() {
		if err := h.Update(context.Background()); err != nil {
			h.logger.Error("Scheduled update failed", err,
				common.LogSystemToken, logSystem)
		}
	})
	if err != nil {
		return errors.Wrap(err, "failed to schedule polling")
	}

	h.jobID = id
	h.logger.Info("PETLIBRO hub initialized", common.LogSystemToken, logSystem)
	return nil
}

// Unload stops polling and invalidates the session.
func (h *Hub) Unload() {
	if nil != h.cron {
		h.cron.RemoveFunc(h.jobID)
	}

	if nil != h.api {
		if err := h.api.Logout(context.Background()); err != nil {
			h.logger.Warn("Logout failed during unload", common.LogSystemToken, logSystem)
		}
	}

	if nil != h.logger {
		h.logger.Flush()
	}
}

// GetName returns hub name.
func (h *Hub) GetName() string {
	return hubName
}

// GetSpec returns hub spec.
func (h *Hub) GetSpec() *pluginDevice.Spec {
	return &pluginDevice.Spec{
		UpdatePeriod: updatePeriod,
	}
}

// LoadDevices queries the account device list and constructs models for
// serials not seen before. Repeated calls are idempotent: existing and
// previously skipped serials are left untouched. New devices get an
// initial refresh; a failed refresh keeps the device with list-entry
// state only.
func (h *Hub) LoadDevices(ctx context.Context) ([]*pluginDevice.DiscoveredDevice, error) {
	if nil == h.api {
		return nil, &ErrNotInitialized{}
	}

	list, err := h.api.ListDevices(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "device list failed")
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	discovered := make([]*pluginDevice.DiscoveredDevice, 0)

	for _, raw := range list {
		serial, _ := raw["deviceSn"].(string)
		if "" == serial {
			h.logger.Warn("Skipping device list entry without serial",
				common.LogSystemToken, logSystem)
			continue
		}

		if h.knownSerials[serial] {
			continue
		}

		product, _ := raw["productName"].(string)

		dev, err := device.NewDevice(&device.ConstructDevice{
			RawDevice:  raw,
			API:        h.api,
			Logger:     h.logger,
			FanOut:     h.fanOut,
			UpdateChan: h.updateChan,
		})
		if err != nil {
			h.logger.Warn("Skipping unsupported device",
				common.LogSystemToken, logSystem, common.LogSerialToken, serial,
				common.LogProductNameToken, product)
			h.knownSerials[serial] = true
			continue
		}

		if err := dev.Refresh(ctx); err != nil {
			h.logger.Error("Initial refresh failed", err,
				common.LogSystemToken, logSystem, common.LogSerialToken, serial)
		} else {
			h.lastRefresh[serial] = h.clock.Now()
		}

		h.devices[serial] = dev
		h.order = append(h.order, serial)
		h.knownSerials[serial] = true

		h.logger.Info("Discovered new device", common.LogSystemToken, logSystem,
			common.LogSerialToken, serial, common.LogProductNameToken, product,
			common.LogDeviceTypeToken, dev.GetType().String())

		discovered = append(discovered, &pluginDevice.DiscoveredDevice{
			Type:   dev.GetType(),
			Device: dev,
			State:  dev.State(),
		})
	}

	return discovered, nil
}

// Update refreshes all known devices concurrently. Devices refreshed
// within the debounce window are skipped. A failing device never blocks
// the others; an aggregate error is returned only when at least one
// failure is an API or transport class problem.
func (h *Hub) Update(ctx context.Context) error {
	if nil == h.api {
		return &ErrNotInitialized{}
	}

	h.mutex.Lock()
	due := make([]pluginDevice.IDevice, 0, len(h.order))
	now := h.clock.Now()
	for _, serial := range h.order {
		if last, ok := h.lastRefresh[serial]; ok && now.Sub(last) < debounceWindow {
			continue
		}

		due = append(due, h.devices[serial])
		h.lastRefresh[serial] = now
	}
	h.mutex.Unlock()

	if 0 == len(due) {
		return nil
	}

	var wg sync.WaitGroup
	wg.Add(len(due))

	failures := make(chan error, len(due))
	for _, dev := range due {
		go func(d pluginDevice.IDevice) {
			defer wg.Done()

			if err := d.Refresh(ctx); err != nil {
				h.logger.Error("Device refresh failed", err,
					common.LogSystemToken, logSystem,
					common.LogSerialToken, d.GetSerial())
				failures <- err
			}
		}(dev)
	}

	wg.Wait()
	close(failures)

	failed := 0
	var apiErr error
	for err := range failures {
		failed++
		if nil == apiErr && session.IsAPIError(err) {
			apiErr = err
		}
	}

	if nil != apiErr {
		return &ErrUpdateFailed{Failed: failed, Reason: apiErr}
	}

	return nil
}

// GetDevice returns a device by serial, nil when unknown.
func (h *Hub) GetDevice(serial string) pluginDevice.IDevice {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	return h.devices[serial]
}

// Devices returns all known devices in discovery order.
func (h *Hub) Devices() []pluginDevice.IDevice {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	out := make([]pluginDevice.IDevice, 0, len(h.order))
	for _, serial := range h.order {
		out = append(out, h.devices[serial])
	}

	return out
}

// Compile-time contract check.
var _ pluginDevice.IHub = (*Hub)(nil)
