// Package fanout contains pub-sub distribution of device state updates.
package fanout

import (
	"math/rand"
	"sync"

	"github.com/jjjonesjr33/petlibro/plugins/common"
	"github.com/jjjonesjr33/petlibro/utils"
)

// Implements IFanOutProvider.
type provider struct {
	device sync.Mutex

	inDeviceUpdates  chan *common.MsgDeviceUpdate
	outDeviceUpdates map[int64]chan *common.MsgDeviceUpdate
}

// NewFanOut constructs a new FanOut provider.
func NewFanOut() common.IFanOutProvider {
	p := &provider{
		inDeviceUpdates:  make(chan *common.MsgDeviceUpdate, 10),
		outDeviceUpdates: make(map[int64]chan *common.MsgDeviceUpdate),

		device: sync.Mutex{},
	}

	go p.internalCycle()
	return p
}

// SubscribeDeviceUpdates allows to subscribe to the devices updates.
func (p *provider) SubscribeDeviceUpdates() (int64, chan *common.MsgDeviceUpdate) {
	p.device.Lock()
	defer p.device.Unlock()

	c := make(chan *common.MsgDeviceUpdate, 10)
	rnd := p.getID()
	p.outDeviceUpdates[rnd] = c
	return rnd, c
}

// UnSubscribeDeviceUpdates allows to un-subscribe from the device updates.
func (p *provider) UnSubscribeDeviceUpdates(id int64) {
	p.device.Lock()
	defer p.device.Unlock()

	c, ok := p.outDeviceUpdates[id]
	if !ok {
		return
	}

	close(c)
	delete(p.outDeviceUpdates, id)
}

// ChannelInDeviceUpdates returns input channel for the device updates.
func (p *provider) ChannelInDeviceUpdates() chan *common.MsgDeviceUpdate {
	return p.inDeviceUpdates
}

// Returns random ID.
func (p *provider) getID() int64 {
	return utils.TimeNow() + rand.Int63()
}

func (p *provider) internalCycle() {
	for u := range p.inDeviceUpdates {
		go p.deviceUpdates(u)
	}
}

// Broadcasts device updates.
func (p *provider) deviceUpdates(update *common.MsgDeviceUpdate) {
	p.device.Lock()
	defer p.device.Unlock()

	for _, v := range p.outDeviceUpdates {
		v <- update
	}
}
