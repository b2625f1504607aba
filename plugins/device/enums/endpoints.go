package enums

import "fmt"

// Endpoint describes enum with known device data endpoints.
// Every endpoint payload is merged into the device state as a named fragment.
type Endpoint int

const (
	// EndpointDeviceList describes account device list endpoint.
	EndpointDeviceList Endpoint = iota
	// EndpointBaseInfo describes device base info endpoint.
	EndpointBaseInfo
	// EndpointRealInfo describes device real-time info endpoint.
	EndpointRealInfo
	// EndpointAttributeSettings describes device attribute settings endpoint.
	EndpointAttributeSettings
	// EndpointGrainStatus describes feeder grain status endpoint.
	EndpointGrainStatus
	// EndpointFeedingPlanToday describes today's feeding plan endpoint.
	EndpointFeedingPlanToday
	// EndpointFeedingPlanTemplates describes feeding plan templates endpoint.
	EndpointFeedingPlanTemplates
	// EndpointWetFeedingPlan describes wet feeding plan endpoint.
	EndpointWetFeedingPlan
)

var endpointNames = map[Endpoint]string{
	EndpointDeviceList:           "device_list",
	EndpointBaseInfo:             "base_info",
	EndpointRealInfo:             "real_info",
	EndpointAttributeSettings:    "attribute_settings",
	EndpointGrainStatus:          "grain_status",
	EndpointFeedingPlanToday:     "feeding_plan_today",
	EndpointFeedingPlanTemplates: "feeding_plan_templates",
	EndpointWetFeedingPlan:       "wet_feeding_plan",
}

var endpointPaths = map[Endpoint]string{
	EndpointDeviceList:           "/device/device/list",
	EndpointBaseInfo:             "/device/device/baseInfo",
	EndpointRealInfo:             "/device/device/realInfo",
	EndpointAttributeSettings:    "/device/setting/getAttributeSetting",
	EndpointGrainStatus:          "/device/data/grainStatus",
	EndpointFeedingPlanToday:     "/device/feedingPlan/todayNew",
	EndpointFeedingPlanTemplates: "/device/feedingPlan/templateList",
	EndpointWetFeedingPlan:       "/device/feedingPlan/wetFeedingPlan",
}

// String returns endpoint name.
func (i Endpoint) String() string {
	return endpointNames[i]
}

// Path returns vendor API path of the endpoint.
func (i Endpoint) Path() string {
	return endpointPaths[i]
}

// EndpointString transforms string representation into endpoint.
func EndpointString(s string) (Endpoint, error) {
	for k, v := range endpointNames {
		if v == s {
			return k, nil
		}
	}

	return EndpointDeviceList, fmt.Errorf("%s does not belong to Endpoint values", s)
}
