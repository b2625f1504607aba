package device

import (
	"math"
	"strconv"
	"strings"

	"github.com/jjjonesjr33/petlibro/plugins/device/enums"
)

// mlPerCup is the vendor's milliliters-per-cup conversion factor.
const mlPerCup = 236.588

// DeviceState keeps raw endpoint payloads as named sub-documents plus
// a flat table of derived properties. Sub-documents are merged field by
// field, so a fragment which temporarily drops a field never erases the
// last known value.
type DeviceState struct {
	docs  map[enums.Endpoint]map[string]interface{}
	props map[enums.Property]interface{}
}

// NewDeviceState constructs an empty device state.
func NewDeviceState() *DeviceState {
	return &DeviceState{
		docs:  make(map[enums.Endpoint]map[string]interface{}),
		props: make(map[enums.Property]interface{}),
	}
}

// MergeDoc merges an endpoint payload into its sub-document.
func (s *DeviceState) MergeDoc(endpoint enums.Endpoint, doc map[string]interface{}) {
	existing, ok := s.docs[endpoint]
	if !ok {
		existing = make(map[string]interface{}, len(doc))
		s.docs[endpoint] = existing
	}

	for k, v := range doc {
		if nil == v {
			continue
		}

		existing[k] = v
	}
}

// Doc returns the sub-document of an endpoint, nil when never fetched.
func (s *DeviceState) Doc(endpoint enums.Endpoint) map[string]interface{} {
	return s.docs[endpoint]
}

// Raw returns the first occurrence of a field across the sub-documents,
// searched in the supplied order.
func (s *DeviceState) Raw(field string, endpoints ...enums.Endpoint) (interface{}, bool) {
	for _, ep := range endpoints {
		if doc, ok := s.docs[ep]; ok {
			if v, ok := doc[field]; ok && nil != v {
				return v, true
			}
		}
	}

	return nil, false
}

// Str returns a string field or the default.
func (s *DeviceState) Str(field string, def string, endpoints ...enums.Endpoint) string {
	v, ok := s.Raw(field, endpoints...)
	if !ok {
		return def
	}

	return asString(v, def)
}

// Bool returns a boolean field or the default.
func (s *DeviceState) Bool(field string, def bool, endpoints ...enums.Endpoint) bool {
	v, ok := s.Raw(field, endpoints...)
	if !ok {
		return def
	}

	return asBool(v, def)
}

// Int returns an integer field or the default.
func (s *DeviceState) Int(field string, def int, endpoints ...enums.Endpoint) int {
	v, ok := s.Raw(field, endpoints...)
	if !ok {
		return def
	}

	return asInt(v, def)
}

// Float returns a float field or the default.
func (s *DeviceState) Float(field string, def float64, endpoints ...enums.Endpoint) float64 {
	v, ok := s.Raw(field, endpoints...)
	if !ok {
		return def
	}

	return asFloat(v, def)
}

// SetProperty stores a derived property value.
func (s *DeviceState) SetProperty(property enums.Property, value interface{}) {
	s.props[property] = value
}

// Property returns a derived property value.
func (s *DeviceState) Property(property enums.Property) (interface{}, bool) {
	v, ok := s.props[property]
	return v, ok
}

// Properties returns a copy of the derived property table.
func (s *DeviceState) Properties() map[enums.Property]interface{} {
	out := make(map[enums.Property]interface{}, len(s.props))
	for k, v := range s.props {
		out[k] = v
	}

	return out
}

// MlToCups converts milliliters into vendor cups.
func MlToCups(ml float64) int {
	return int(math.Round(ml / mlPerCup))
}

// ParseEatingTime converts the vendor's minute'second'' notation
// into seconds. Malformed input yields zero.
func ParseEatingTime(value string) int {
	if "" == value {
		return 0
	}

	parts := strings.Split(strings.Replace(value, "''", "", -1), "'")
	if 2 != len(parts) {
		return 0
	}

	minutes, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}

	seconds, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}

	return minutes*60 + seconds
}

func asString(v interface{}, def string) string {
	if s, ok := v.(string); ok {
		return s
	}

	return def
}

func asBool(v interface{}, def bool) bool {
	if b, ok := v.(bool); ok {
		return b
	}

	return def
}

// JSON numbers decode as float64, so integers need a coercion step.
func asInt(v interface{}, def int) int {
	switch t := v.(type) {
	case float64:
		return int(t)
	case int:
		return t
	case int64:
		return int(t)
	}

	return def
}

func asFloat(v interface{}, def float64) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case int64:
		return float64(t)
	}

	return def
}
