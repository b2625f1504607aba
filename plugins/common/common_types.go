// Package common contains shared data available for the hub and the host platform.
package common

import (
	"github.com/jjjonesjr33/petlibro/plugins/device/enums"
)

// ILoggerProvider defines logger which will be passed to every component.
type ILoggerProvider interface {
	Debug(msg string, fields ...string)
	Info(msg string, fields ...string)
	Warn(msg string, fields ...string)
	Error(msg string, err error, fields ...string)
	Fatal(msg string, err error, fields ...string)
	Flush()
}

// ISecretProvider defines host's durable key-value store.
// The session uses it to persist the refreshed auth token across restarts.
type ISecretProvider interface {
	Get(string) (string, error)
	Set(name string, data string) error
}

// ISettings describes interface used by the plugin settings.
// After un-marshaling raw config, the host will invoke internal validation
// and then call this method.
type ISettings interface {
	Validate() error
}

// MsgDeviceUpdate contains data with updated device's state.
type MsgDeviceUpdate struct {
	Serial    string
	Name      string
	Type      enums.DeviceType
	State     map[enums.Property]interface{}
	FirstSeen bool
}

// IFanOutProvider defines interface used for distributing
// device updates across host widgets.
type IFanOutProvider interface {
	SubscribeDeviceUpdates() (int64, chan *MsgDeviceUpdate)
	UnSubscribeDeviceUpdates(int64)
	ChannelInDeviceUpdates() chan *MsgDeviceUpdate
}
