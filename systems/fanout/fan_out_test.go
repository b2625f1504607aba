package fanout

import (
	"testing"
	"time"

	"github.com/jjjonesjr33/petlibro/plugins/common"
	"github.com/stretchr/testify/assert"
)

// Tests device updates channels.
func TestDeviceUpdates(t *testing.T) {
	fo := NewFanOut()
	idd1, d1 := fo.SubscribeDeviceUpdates()
	idd2, d2 := fo.SubscribeDeviceUpdates()
	var m1 *common.MsgDeviceUpdate
	var m2 *common.MsgDeviceUpdate
	d1Exited := false

	go func() {
		for m := range d1 {
			m1 = m
		}

		d1Exited = true
	}()

	go func() {
		for m := range d2 {
			m2 = m
		}
	}()

	fo.ChannelInDeviceUpdates() <- &common.MsgDeviceUpdate{Serial: "SN1"}
	time.Sleep(1 * time.Second)
	assert.NotNil(t, m1, "channel 1")
	assert.NotNil(t, m2, "channel 2")
	assert.Equal(t, "SN1", m1.Serial, "serial")

	m1 = nil
	m2 = nil

	fo.UnSubscribeDeviceUpdates(idd1)
	fo.ChannelInDeviceUpdates() <- &common.MsgDeviceUpdate{Serial: "SN2"}
	time.Sleep(1 * time.Second)

	assert.Nil(t, m1, "unsubscribe channel 1")
	assert.NotNil(t, m2, "unsubscribe channel 2")
	assert.True(t, d1Exited, "exit channel 1")

	fo.UnSubscribeDeviceUpdates(idd2)
	fo.UnSubscribeDeviceUpdates(idd2)
}
