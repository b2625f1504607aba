// Package device contains the device contract exposed to the host platform.
package device

import (
	"context"
	"time"

	"github.com/jjjonesjr33/petlibro/plugins/common"
	"github.com/jjjonesjr33/petlibro/plugins/device/enums"
)

// IDevice defines generic PETLIBRO device interface.
// Widgets read state through the property table and never mutate it;
// after a successful command they are expected to trigger a refresh.
type IDevice interface {
	GetSerial() string
	GetName() string
	GetType() enums.DeviceType
	GetSpec() *Spec
	Refresh(ctx context.Context) error
	GetProperty(enums.Property) (interface{}, bool)
	State() map[enums.Property]interface{}
	InvokeCommand(ctx context.Context, cmd enums.Command, args map[string]interface{}) error
}

// Spec contains information about the device.
type Spec struct {
	UpdatePeriod           time.Duration
	SupportedCommands      []enums.Command
	SupportedProperties    []enums.Property
	PostCommandDeferUpdate time.Duration
}

// StateUpdateData contains updated state of the device.
type StateUpdateData struct {
	Serial string
	State  map[enums.Property]interface{}
}

// DiscoveredDevice contains information about a newly discovered device.
type DiscoveredDevice struct {
	Type   enums.DeviceType
	Device IDevice
	State  map[enums.Property]interface{}
}

// InitDataDevice has data required for initializing the hub.
type InitDataDevice struct {
	Logger common.ILoggerProvider
	Secret common.ISecretProvider
	FanOut common.IFanOutProvider

	DeviceStateUpdateChan chan *StateUpdateData
}
