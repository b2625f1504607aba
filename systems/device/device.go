// Package device implements PETLIBRO device models on top of the API client.
package device

import (
	"context"
	"sync"
	"time"

	"github.com/jjjonesjr33/petlibro/plugins/common"
	pluginDevice "github.com/jjjonesjr33/petlibro/plugins/device"
	"github.com/jjjonesjr33/petlibro/plugins/device/enums"
	"github.com/jjjonesjr33/petlibro/providers"
	"github.com/pkg/errors"
)

// ConstructDevice has all data required for a new device model.
type ConstructDevice struct {
	RawDevice map[string]interface{}
	API       providers.IPetLibroAPI
	Logger    common.ILoggerProvider
	FanOut    common.IFanOutProvider

	UpdateChan chan *pluginDevice.StateUpdateData
}

// Fetches one state fragment. Optional fragments are absorbed on failure,
// required ones abort the refresh cycle.
type fragment struct {
	endpoint enums.Endpoint
	optional bool
	fetch    func(ctx context.Context, serial string) (map[string]interface{}, error)
}

type commandFunc func(ctx context.Context, args map[string]interface{}) error

// Shared device plumbing. Variants compose it with their fragment list,
// derive step and command table.
type baseDevice struct {
	serial     string
	name       string
	deviceType enums.DeviceType
	spec       *pluginDevice.Spec

	api        providers.IPetLibroAPI
	logger     common.ILoggerProvider
	fanOut     common.IFanOutProvider
	updateChan chan *pluginDevice.StateUpdateData

	mutex sync.Mutex
	state *DeviceState

	fragments []fragment
	commands  map[enums.Command]commandFunc
	derive    func(s *DeviceState)
}

func newBaseDevice(ctor *ConstructDevice, deviceType enums.DeviceType) *baseDevice {
	state := NewDeviceState()
	state.MergeDoc(enums.EndpointDeviceList, ctor.RawDevice)

	d := &baseDevice{
		serial:     state.Str("deviceSn", "", enums.EndpointDeviceList),
		name:       state.Str("name", "unknown", enums.EndpointDeviceList),
		deviceType: deviceType,
		api:        ctor.API,
		logger:     ctor.Logger,
		fanOut:     ctor.FanOut,
		updateChan: ctor.UpdateChan,
		state:      state,
		commands:   make(map[enums.Command]commandFunc),
	}

	return d
}

// GetSerial returns device serial number.
func (d *baseDevice) GetSerial() string {
	return d.serial
}

// GetName returns device display name.
func (d *baseDevice) GetName() string {
	return d.name
}

// GetType returns device type.
func (d *baseDevice) GetType() enums.DeviceType {
	return d.deviceType
}

// GetSpec returns device spec.
func (d *baseDevice) GetSpec() *pluginDevice.Spec {
	return d.spec
}

// Refresh pulls all state fragments and recomputes derived properties.
// A failed optional fragment is logged and skipped; a failed required
// fragment aborts the cycle without touching already merged data.
// Exactly one state notification is emitted per successful cycle.
func (d *baseDevice) Refresh(ctx context.Context) error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	for _, f := range d.fragments {
		doc, err := f.fetch(ctx, d.serial)
		if err != nil {
			if f.optional {
				d.logger.Warn("Skipping failed state fragment",
					common.LogSystemToken, logSystem, common.LogSerialToken, d.serial,
					common.LogEndpointToken, f.endpoint.String())
				continue
			}

			return errors.Wrap(err, (&ErrFragmentFailed{Endpoint: f.endpoint.String()}).Error())
		}

		d.state.MergeDoc(f.endpoint, doc)
	}

	if nil != d.derive {
		d.derive(d.state)
	}

	d.notify()
	return nil
}

// GetProperty returns a derived property value.
func (d *baseDevice) GetProperty(property enums.Property) (interface{}, bool) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	return d.state.Property(property)
}

// State returns a copy of the derived property table.
func (d *baseDevice) State() map[enums.Property]interface{} {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	return d.state.Properties()
}

// InvokeCommand dispatches a command through the device command table.
func (d *baseDevice) InvokeCommand(ctx context.Context, cmd enums.Command,
	args map[string]interface{}) error {
	handler, ok := d.commands[cmd]
	if !ok {
		d.logger.Warn("Received unsupported command",
			common.LogSystemToken, logSystem, common.LogSerialToken, d.serial,
			common.LogDeviceCommandToken, cmd.String())
		return &ErrUnsupportedCommand{Command: cmd.String()}
	}

	d.logger.Debug("Invoking device command",
		common.LogSystemToken, logSystem, common.LogSerialToken, d.serial,
		common.LogDeviceCommandToken, cmd.String())
	return handler(ctx, args)
}

// Publishes the refreshed state to the hub and the host fan-out.
func (d *baseDevice) notify() {
	state := d.state.Properties()

	if nil != d.updateChan {
		d.updateChan <- &pluginDevice.StateUpdateData{
			Serial: d.serial,
			State:  state,
		}
	}

	if nil != d.fanOut {
		d.fanOut.ChannelInDeviceUpdates() <- &common.MsgDeviceUpdate{
			Serial: d.serial,
			Name:   d.name,
			Type:   d.deviceType,
			State:  state,
		}
	}
}

// Commands supported by every device get generated from the table.
func (d *baseDevice) supportedCommands() []enums.Command {
	out := make([]enums.Command, 0, len(d.commands))
	for cmd := range d.commands {
		out = append(out, cmd)
	}

	return out
}

// Runs the initial derive pass over the device list entry and freezes
// the device spec. Called last by every model constructor.
func (d *baseDevice) finish(updatePeriod time.Duration, properties []enums.Property) {
	if nil != d.derive {
		d.derive(d.state)
	}

	d.spec = &pluginDevice.Spec{
		UpdatePeriod:           updatePeriod,
		SupportedCommands:      d.supportedCommands(),
		SupportedProperties:    properties,
		PostCommandDeferUpdate: postCommandDefer,
	}
}

// Pulls a typed argument out of the command args bag.
func argBool(args map[string]interface{}, name string) (bool, error) {
	v, ok := args[name]
	if !ok {
		return false, &ErrBadCommandArgument{Argument: name}
	}

	b, ok := v.(bool)
	if !ok {
		return false, &ErrBadCommandArgument{Argument: name}
	}

	return b, nil
}

func argFloat(args map[string]interface{}, name string) (float64, error) {
	v, ok := args[name]
	if !ok {
		return 0, &ErrBadCommandArgument{Argument: name}
	}

	switch t := v.(type) {
	case float64:
		return t, nil
	case int:
		return float64(t), nil
	}

	return 0, &ErrBadCommandArgument{Argument: name}
}

func argString(args map[string]interface{}, name string) (string, error) {
	v, ok := args[name]
	if !ok {
		return "", &ErrBadCommandArgument{Argument: name}
	}

	s, ok := v.(string)
	if !ok {
		return "", &ErrBadCommandArgument{Argument: name}
	}

	return s, nil
}
