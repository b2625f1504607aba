package device

import "context"

// IHub defines hub interface. Hub is different from other devices,
// since it operates multiple different devices under one account.
type IHub interface {
	Init(*InitDataDevice) error
	Unload()
	GetName() string
	GetSpec() *Spec

	LoadDevices(ctx context.Context) ([]*DiscoveredDevice, error)
	Update(ctx context.Context) error
	GetDevice(serial string) IDevice
	Devices() []IDevice
}
