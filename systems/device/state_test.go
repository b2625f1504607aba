package device

import (
	"testing"

	"github.com/jjjonesjr33/petlibro/plugins/device/enums"
	"github.com/stretchr/testify/assert"
)

// Tests that merging never erases previously known fields.
func TestMergeDocUnion(t *testing.T) {
	s := NewDeviceState()
	s.MergeDoc(enums.EndpointRealInfo, map[string]interface{}{
		"wifiSsid": "home",
		"online":   true,
	})
	s.MergeDoc(enums.EndpointRealInfo, map[string]interface{}{
		"online": false,
	})

	assert.Equal(t, "home", s.Str("wifiSsid", "unknown", enums.EndpointRealInfo), "kept field")
	assert.False(t, s.Bool("online", true, enums.EndpointRealInfo), "updated field")
}

// Tests that nil values do not overwrite known data.
func TestMergeDocSkipsNil(t *testing.T) {
	s := NewDeviceState()
	s.MergeDoc(enums.EndpointBaseInfo, map[string]interface{}{"mac": "aa:bb"})
	s.MergeDoc(enums.EndpointBaseInfo, map[string]interface{}{"mac": nil})

	assert.Equal(t, "aa:bb", s.Str("mac", "unknown", enums.EndpointBaseInfo), "mac")
}

// Tests accessor defaults for absent fields.
func TestAccessorDefaults(t *testing.T) {
	s := NewDeviceState()

	assert.Equal(t, "unknown", s.Str("batteryState", "unknown", infoDocs...), "string default")
	assert.False(t, s.Bool("online", false, infoDocs...), "bool default")
	assert.Equal(t, 0, s.Int("electricQuantity", 0, infoDocs...), "int default")
	assert.Equal(t, -100, s.Int("wifiRssi", -100, infoDocs...), "rssi default")
}

// Tests sub-document search order.
func TestDocSearchOrder(t *testing.T) {
	s := NewDeviceState()
	s.MergeDoc(enums.EndpointBaseInfo, map[string]interface{}{"wifiSsid": "base"})
	s.MergeDoc(enums.EndpointRealInfo, map[string]interface{}{"wifiSsid": "real"})

	assert.Equal(t, "real", s.Str("wifiSsid", "unknown", infoDocs...), "real info wins")
}

// Tests the milliliters to cups conversion.
func TestMlToCups(t *testing.T) {
	assert.Equal(t, 10, MlToCups(2366), "ten cups")
	assert.Equal(t, 0, MlToCups(0), "zero")
	assert.Equal(t, 1, MlToCups(237), "one cup")
}

// Tests the eating time notation parser.
func TestParseEatingTime(t *testing.T) {
	assert.Equal(t, 200, ParseEatingTime("3'20''"), "minutes and seconds")
	assert.Equal(t, 45, ParseEatingTime("0'45''"), "seconds only")
	assert.Equal(t, 0, ParseEatingTime(""), "empty")
	assert.Equal(t, 0, ParseEatingTime("garbage"), "malformed")
	assert.Equal(t, 0, ParseEatingTime("x'y''"), "non numeric")
}

// Tests JSON number coercion.
func TestNumberCoercion(t *testing.T) {
	s := NewDeviceState()
	s.MergeDoc(enums.EndpointRealInfo, map[string]interface{}{
		"electricQuantity": float64(85),
		"weight":           float64(1530.5),
	})

	assert.Equal(t, 85, s.Int("electricQuantity", 0, enums.EndpointRealInfo), "int")
	assert.Equal(t, 1530.5, s.Float("weight", 0, enums.EndpointRealInfo), "float")
}
