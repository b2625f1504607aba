// Package petlibro is a device-hub plugin for PETLIBRO smart feeders
// and fountains. The host loads it through Load, fills the returned
// settings from YAML and drives the hub through the device contract.
package petlibro

import (
	"github.com/jjjonesjr33/petlibro/systems/hub"
)

// Load is the plugin entry point. It returns the hub implementation and
// its settings object. The hub is usable only after the host validates
// the settings and calls Init.
func Load() (interface{}, interface{}, error) {
	settings := &Settings{}
	h := hub.NewHub(&hub.ConstructHub{
		Settings: settings,
	})

	return h, settings, nil
}
