package api

import "time"

const (
	logSystem = "api"

	// DefaultCacheTTL is the window within which repeated fragment
	// fetches are served from cache to absorb bursty callers.
	DefaultCacheTTL = 10 * time.Second

	commandTimeoutMs = 5000
	lidTimeoutMs     = 8000
)

// Command endpoints. Fragment endpoints live in the enums package
// since their payloads double as device state fragments.
const (
	manualFeedingPath        = "/device/device/manualFeeding"
	desiccantResetPath       = "/device/device/desiccantReset"
	maintenanceFrequencyPath = "/device/device/maintenanceFrequencySetting"
	manualCleaningPath       = "/device/device/manualCleaning"
	doorStateChangePath      = "/device/device/doorStateChange"
	feedingPlanSwitchPath    = "/device/setting/updateFeedingPlanSwitch"
	childLockSwitchPath      = "/device/setting/updateChildLockSwitch"
	lightEnableSwitchPath    = "/device/setting/updateLightEnableSwitch"
	lightSwitchPath          = "/device/setting/updateLightSwitch"
	soundEnableSwitchPath    = "/device/setting/updateSoundEnableSwitch"
	soundSwitchPath          = "/device/setting/updateSoundSwitch"
	volumeSettingPath        = "/device/setting/updateVolumeSetting"
	soundSettingPath         = "/device/setting/updateSoundSetting"
	displayMatrixSettingPath = "/device/setting/updateDisplayMatrixSetting"
	displayTextSettingPath   = "/device/setting/updateDisplayTextSetting"
	lidSpeedSettingPath      = "/device/setting/updateLidSpeedSetting"
	lidModeSettingPath       = "/device/setting/updateLidModeSetting"
)
