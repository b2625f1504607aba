package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Tests device type round-trip.
func TestDeviceTypeRoundTrip(t *testing.T) {
	for k, v := range deviceTypeNames {
		parsed, err := DeviceTypeString(v)
		assert.NoError(t, err, v)
		assert.Equal(t, k, parsed, v)
	}

	_, err := DeviceTypeString("not a device")
	assert.Error(t, err, "unknown name")
}

// Tests endpoint round-trip and vendor paths.
func TestEndpointRoundTrip(t *testing.T) {
	for k, v := range endpointNames {
		parsed, err := EndpointString(v)
		assert.NoError(t, err, v)
		assert.Equal(t, k, parsed, v)
		assert.NotEmpty(t, k.Path(), v)
	}

	assert.Equal(t, "/device/device/baseInfo", EndpointBaseInfo.Path(), "base info path")
	assert.Equal(t, "/device/data/grainStatus", EndpointGrainStatus.Path(), "grain status path")
}

// Tests property round-trip.
func TestPropertyRoundTrip(t *testing.T) {
	for k, v := range propertyNames {
		parsed, err := PropertyString(v)
		assert.NoError(t, err, v)
		assert.Equal(t, k, parsed, v)
	}

	_, err := PropertyString("not a property")
	assert.Error(t, err, "unknown name")
}

// Tests command round-trip.
func TestCommandRoundTrip(t *testing.T) {
	for k, v := range commandNames {
		parsed, err := CommandString(v)
		assert.NoError(t, err, v)
		assert.Equal(t, k, parsed, v)
	}

	_, err := CommandString("not a command")
	assert.Error(t, err, "unknown name")
}
