package device

import (
	"fmt"

	"github.com/jjjonesjr33/petlibro/plugins/device/enums"
)

// Sub-document search order for fields reported by several endpoints.
// Real-time info wins over base info, which wins over the list entry.
var infoDocs = []enums.Endpoint{
	enums.EndpointRealInfo,
	enums.EndpointBaseInfo,
	enums.EndpointDeviceList,
}

// Derives properties shared by every device model.
func deriveCommon(s *DeviceState) {
	s.SetProperty(enums.PropSerial, s.Str("deviceSn", "unknown", infoDocs...))
	s.SetProperty(enums.PropName, s.Str("name", "unknown", infoDocs...))
	s.SetProperty(enums.PropModel, s.Str("productIdentifier", "unknown", infoDocs...))
	s.SetProperty(enums.PropModelName, s.Str("productName", "unknown", infoDocs...))
	s.SetProperty(enums.PropMac, s.Str("mac", "unknown", infoDocs...))
	s.SetProperty(enums.PropSoftwareVersion, s.Str("softwareVersion", "unknown", infoDocs...))
	s.SetProperty(enums.PropHardwareVersion, s.Str("hardwareVersion", "unknown", infoDocs...))
	s.SetProperty(enums.PropOnline, s.Bool("online", false, infoDocs...))
	s.SetProperty(enums.PropBatteryState, s.Str("batteryState", "unknown", infoDocs...))
	s.SetProperty(enums.PropElectricQuantity, s.Int("electricQuantity", 0, infoDocs...))
	s.SetProperty(enums.PropWifiSsid, s.Str("wifiSsid", "unknown", infoDocs...))
	s.SetProperty(enums.PropWifiRssi, s.Int("wifiRssi", -100, infoDocs...))
	s.SetProperty(enums.PropRunningState, s.Str("runningState", "unknown", infoDocs...))
	s.SetProperty(enums.PropSleepMode, s.Bool("whetherInSleepMode", false, infoDocs...))
}

// Derives properties shared by dry food feeders.
func deriveFeeder(s *DeviceState) {
	deriveCommon(s)

	s.SetProperty(enums.PropFeedingPlanActive, s.Bool("enableFeedingPlan", false, infoDocs...))
	s.SetProperty(enums.PropChildLock, s.Bool("childLockSwitch", false, infoDocs...))
	s.SetProperty(enums.PropSoundEnabled, s.Bool("enableSound", false, infoDocs...))
	s.SetProperty(enums.PropLightEnabled, s.Bool("enableLight", false, infoDocs...))
	s.SetProperty(enums.PropDisplayOn, s.Bool("screenDisplaySwitch", false, infoDocs...))
	s.SetProperty(enums.PropVolume, s.Int("volume", 0, infoDocs...))
	s.SetProperty(enums.PropUnitType, s.Int("unitType", 1, infoDocs...))
	s.SetProperty(enums.PropDesiccantDaysRemaining,
		s.Str("remainingDesiccantDays", "unknown", infoDocs...))

	// Surplus grain present means food is fine, so absence of the field
	// must read as not-low.
	s.SetProperty(enums.PropFoodLow, !s.Bool("surplusGrain", true, infoDocs...))
	s.SetProperty(enums.PropDispenserBlocked, !s.Bool("grainOutletState", true, infoDocs...))
	s.SetProperty(enums.PropDoorState, s.Bool("barnDoorState", false, infoDocs...))
	s.SetProperty(enums.PropDoorBlocked, s.Bool("barnDoorError", false, infoDocs...))

	grain := []enums.Endpoint{enums.EndpointGrainStatus}
	s.SetProperty(enums.PropTodayFeedingQuantity, s.Int("todayFeedingQuantity", 0, grain...))
	s.SetProperty(enums.PropTodayFeedingTimes, s.Int("todayFeedingTimes", 0, grain...))
	s.SetProperty(enums.PropTodayEatingTimes, s.Int("todayEatingTimes", 0, grain...))
	s.SetProperty(enums.PropTodayEatingSeconds,
		ParseEatingTime(s.Str("eatingTime", "", grain...)))

	if v, ok := s.Raw("todayFeedingQuantities", grain...); ok {
		s.SetProperty(enums.PropTodayFeedingQuantities, v)
	} else {
		s.SetProperty(enums.PropTodayFeedingQuantities, []interface{}{})
	}
}

// Derives properties shared by water fountains.
func deriveFountain(s *DeviceState) {
	deriveCommon(s)

	s.SetProperty(enums.PropWeight, s.Float("weight", 0, infoDocs...))
	s.SetProperty(enums.PropWeightPercent, s.Int("weightPercent", 0, infoDocs...))
	s.SetProperty(enums.PropTodayWaterMl, s.Int("todayTotalMl", 0, infoDocs...))
	s.SetProperty(enums.PropWaterInterval, s.Int("useWaterInterval", 0, infoDocs...))
	s.SetProperty(enums.PropWaterDuration, s.Int("useWaterDuration", 0, infoDocs...))
	s.SetProperty(enums.PropFilterDaysRemaining,
		s.Int("remainingReplacementDays", 0, infoDocs...))
	s.SetProperty(enums.PropCleaningDaysRemaining,
		s.Int("remainingCleaningDays", 0, infoDocs...))
	s.SetProperty(enums.PropVacuumState, s.Bool("vacuumState", false, infoDocs...))
	s.SetProperty(enums.PropPumpAirState, s.Bool("pumpAirState", false, infoDocs...))
	s.SetProperty(enums.PropLightEnabled, s.Bool("lightSwitch", false, infoDocs...))
	s.SetProperty(enums.PropSoundEnabled, s.Bool("soundSwitch", false, infoDocs...))
}

// Assembles the next feeding timestamp out of the separate day and time
// fields. The cloud reports feeding windows within one day only.
func deriveNextFeeding(s *DeviceState) {
	day := s.Str("nextFeedingDay", "", infoDocs...)
	start := s.Str("nextFeedingTime", "", infoDocs...)
	end := s.Str("nextFeedingEndTime", "", infoDocs...)

	if "" == day || "" == start {
		s.SetProperty(enums.PropNextFeedingTime, "unknown")
		s.SetProperty(enums.PropNextFeedingEndTime, "unknown")
		return
	}

	s.SetProperty(enums.PropNextFeedingTime, fmt.Sprintf("%s %s", day, start))
	if "" == end {
		s.SetProperty(enums.PropNextFeedingEndTime, "unknown")
		return
	}

	s.SetProperty(enums.PropNextFeedingEndTime, fmt.Sprintf("%s %s", day, end))
}
