package enums

import "fmt"

// Property describes enum with known devices' properties.
type Property int

const (
	// PropSerial describes device serial number.
	PropSerial Property = iota
	// PropName describes device display name.
	PropName
	// PropModel describes vendor product identifier.
	PropModel
	// PropModelName describes vendor product name.
	PropModelName
	// PropMac describes device MAC address.
	PropMac
	// PropSoftwareVersion describes device firmware version.
	PropSoftwareVersion
	// PropHardwareVersion describes device hardware version.
	PropHardwareVersion
	// PropOnline describes device connectivity state.
	PropOnline
	// PropBatteryState describes battery state.
	PropBatteryState
	// PropElectricQuantity describes battery charge percent.
	PropElectricQuantity
	// PropWifiSsid describes Wi-Fi network name.
	PropWifiSsid
	// PropWifiRssi describes Wi-Fi signal strength.
	PropWifiRssi
	// PropRunningState describes device running state.
	PropRunningState
	// PropSleepMode describes whether the device sleeps.
	PropSleepMode
	// PropFeedingPlanActive describes feeding plan switch state.
	PropFeedingPlanActive
	// PropTodayFeedingQuantity describes dispensed quantity for today.
	PropTodayFeedingQuantity
	// PropTodayFeedingQuantities describes per-meal quantities for today.
	PropTodayFeedingQuantities
	// PropTodayFeedingTimes describes number of feedings today.
	PropTodayFeedingTimes
	// PropTodayEatingTimes describes number of eating visits today.
	PropTodayEatingTimes
	// PropTodayEatingSeconds describes total eating time today.
	PropTodayEatingSeconds
	// PropFoodLow describes low food level flag.
	PropFoodLow
	// PropDispenserBlocked describes grain outlet blocked flag.
	PropDispenserBlocked
	// PropDoorState describes barn door open state.
	PropDoorState
	// PropDoorBlocked describes barn door error flag.
	PropDoorBlocked
	// PropChildLock describes child lock switch state.
	PropChildLock
	// PropSoundEnabled describes sound switch state.
	PropSoundEnabled
	// PropLightEnabled describes light switch state.
	PropLightEnabled
	// PropDisplayOn describes screen display switch state.
	PropDisplayOn
	// PropVolume describes sound volume.
	PropVolume
	// PropDesiccantDaysRemaining describes remaining desiccant days.
	PropDesiccantDaysRemaining
	// PropUnitType describes reporting unit of the device.
	PropUnitType
	// PropNextFeedingTime describes next planned feeding start.
	PropNextFeedingTime
	// PropNextFeedingEndTime describes next planned feeding end.
	PropNextFeedingEndTime
	// PropActiveFeedingPlan describes active feeding plan name.
	PropActiveFeedingPlan
	// PropPlatePosition describes wet feeder plate position.
	PropPlatePosition
	// PropWeight describes water weight in grams.
	PropWeight
	// PropWeightPercent describes water weight percent.
	PropWeightPercent
	// PropTodayWaterMl describes water dispensed today.
	PropTodayWaterMl
	// PropWaterInterval describes water dispensing interval.
	PropWaterInterval
	// PropWaterDuration describes water dispensing duration.
	PropWaterDuration
	// PropFilterDaysRemaining describes remaining filter days.
	PropFilterDaysRemaining
	// PropCleaningDaysRemaining describes remaining cleaning days.
	PropCleaningDaysRemaining
	// PropVacuumState describes vacuum state flag.
	PropVacuumState
	// PropPumpAirState describes air pump state flag.
	PropPumpAirState
	// PropResolution describes camera resolution.
	PropResolution
	// PropNightVision describes camera night vision mode.
	PropNightVision
	// PropVideoRecordOn describes camera recording switch state.
	PropVideoRecordOn
)

var propertyNames = map[Property]string{
	PropSerial:                 "serial",
	PropName:                   "name",
	PropModel:                  "model",
	PropModelName:              "model_name",
	PropMac:                    "mac",
	PropSoftwareVersion:        "software_version",
	PropHardwareVersion:        "hardware_version",
	PropOnline:                 "online",
	PropBatteryState:           "battery_state",
	PropElectricQuantity:       "electric_quantity",
	PropWifiSsid:               "wifi_ssid",
	PropWifiRssi:               "wifi_rssi",
	PropRunningState:           "running_state",
	PropSleepMode:              "sleep_mode",
	PropFeedingPlanActive:      "feeding_plan_active",
	PropTodayFeedingQuantity:   "today_feeding_quantity",
	PropTodayFeedingQuantities: "today_feeding_quantities",
	PropTodayFeedingTimes:      "today_feeding_times",
	PropTodayEatingTimes:       "today_eating_times",
	PropTodayEatingSeconds:     "today_eating_seconds",
	PropFoodLow:                "food_low",
	PropDispenserBlocked:       "dispenser_blocked",
	PropDoorState:              "door_state",
	PropDoorBlocked:            "door_blocked",
	PropChildLock:              "child_lock",
	PropSoundEnabled:           "sound_enabled",
	PropLightEnabled:           "light_enabled",
	PropDisplayOn:              "display_on",
	PropVolume:                 "volume",
	PropDesiccantDaysRemaining: "desiccant_days_remaining",
	PropUnitType:               "unit_type",
	PropNextFeedingTime:        "next_feeding_time",
	PropNextFeedingEndTime:     "next_feeding_end_time",
	PropActiveFeedingPlan:      "active_feeding_plan",
	PropPlatePosition:          "plate_position",
	PropWeight:                 "weight",
	PropWeightPercent:          "weight_percent",
	PropTodayWaterMl:           "today_water_ml",
	PropWaterInterval:          "water_interval",
	PropWaterDuration:          "water_duration",
	PropFilterDaysRemaining:    "filter_days_remaining",
	PropCleaningDaysRemaining:  "cleaning_days_remaining",
	PropVacuumState:            "vacuum_state",
	PropPumpAirState:           "pump_air_state",
	PropResolution:             "resolution",
	PropNightVision:            "night_vision",
	PropVideoRecordOn:          "video_record_on",
}

// String returns property name.
func (i Property) String() string {
	return propertyNames[i]
}

// PropertyString transforms string representation into property.
func PropertyString(s string) (Property, error) {
	for k, v := range propertyNames {
		if v == s {
			return k, nil
		}
	}

	return PropSerial, fmt.Errorf("%s does not belong to Property values", s)
}
