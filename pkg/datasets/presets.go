package datasets

import (
	"github.com/travigo/agency-tools/pkg/agency"
	"github.com/travigo/agency-tools/pkg/agency/seabus"
)

var presets = map[string]func() agency.Config{
	seabus.PresetName:             seabus.Config,
	seabus.PresetName + "-legacy": seabus.LegacyConfig,
}

func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	return names
}
