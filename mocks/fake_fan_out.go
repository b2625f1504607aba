//+build !release

package mocks

import (
	"github.com/jjjonesjr33/petlibro/plugins/common"
)

// Fake fan-out which drains the input channel and counts messages.
type fakeFanOut struct {
	in       chan *common.MsgDeviceUpdate
	callback func(*common.MsgDeviceUpdate)
}

func (f *fakeFanOut) SubscribeDeviceUpdates() (int64, chan *common.MsgDeviceUpdate) {
	return 0, make(chan *common.MsgDeviceUpdate, 10)
}

func (f *fakeFanOut) UnSubscribeDeviceUpdates(int64) {
}

func (f *fakeFanOut) ChannelInDeviceUpdates() chan *common.MsgDeviceUpdate {
	return f.in
}

// FakeNewFanOut creates a fake fan-out provider.
func FakeNewFanOut(callback func(*common.MsgDeviceUpdate)) *fakeFanOut {
	f := &fakeFanOut{
		in:       make(chan *common.MsgDeviceUpdate, 100),
		callback: callback,
	}

	go func() {
		for msg := range f.in {
			if nil != f.callback {
				f.callback(msg)
			}
		}
	}()

	return f
}
