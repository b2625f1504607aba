package enums

import "fmt"

// Command describes enum with known device commands.
type Command int

const (
	// CmdManualFeed describes manual feeding command.
	CmdManualFeed Command = iota
	// CmdSetFeedingPlan describes feeding plan switch command.
	CmdSetFeedingPlan
	// CmdSetChildLock describes child lock switch command.
	CmdSetChildLock
	// CmdSetLightEnable describes light enable switch command.
	CmdSetLightEnable
	// CmdSetLightSwitch describes light on/off command.
	CmdSetLightSwitch
	// CmdSetSoundEnable describes sound enable switch command.
	CmdSetSoundEnable
	// CmdSetSoundSwitch describes sound on/off command.
	CmdSetSoundSwitch
	// CmdSetVolume describes sound volume command.
	CmdSetVolume
	// CmdSoundOn describes sound setting on command.
	CmdSoundOn
	// CmdSoundOff describes sound setting off command.
	CmdSoundOff
	// CmdDisplayOn describes display on command.
	CmdDisplayOn
	// CmdDisplayOff describes display off command.
	CmdDisplayOff
	// CmdSetDisplayText describes display text command.
	CmdSetDisplayText
	// CmdDesiccantReset describes desiccant reset command.
	CmdDesiccantReset
	// CmdSetDesiccantFrequency describes desiccant frequency command.
	CmdSetDesiccantFrequency
	// CmdOpenLid describes manual lid open command.
	CmdOpenLid
	// CmdSetLidSpeed describes lid close speed command.
	CmdSetLidSpeed
	// CmdSetLidMode describes lid mode command.
	CmdSetLidMode
	// CmdManualCleaning describes manual cleaning command.
	CmdManualCleaning
)

var commandNames = map[Command]string{
	CmdManualFeed:            "manual_feed",
	CmdSetFeedingPlan:        "set_feeding_plan",
	CmdSetChildLock:          "set_child_lock",
	CmdSetLightEnable:        "set_light_enable",
	CmdSetLightSwitch:        "set_light_switch",
	CmdSetSoundEnable:        "set_sound_enable",
	CmdSetSoundSwitch:        "set_sound_switch",
	CmdSetVolume:             "set_volume",
	CmdSoundOn:               "sound_on",
	CmdSoundOff:              "sound_off",
	CmdDisplayOn:             "display_on",
	CmdDisplayOff:            "display_off",
	CmdSetDisplayText:        "set_display_text",
	CmdDesiccantReset:        "desiccant_reset",
	CmdSetDesiccantFrequency: "set_desiccant_frequency",
	CmdOpenLid:               "open_lid",
	CmdSetLidSpeed:           "set_lid_speed",
	CmdSetLidMode:            "set_lid_mode",
	CmdManualCleaning:        "manual_cleaning",
}

// String returns command name.
func (i Command) String() string {
	return commandNames[i]
}

// CommandString transforms string representation into command.
func CommandString(s string) (Command, error) {
	for k, v := range commandNames {
		if v == s {
			return k, nil
		}
	}

	return CmdManualFeed, fmt.Errorf("%s does not belong to Command values", s)
}
