package generate

import (
	"strings"

	"github.com/temirov/lotto/internal/ui"
)

const (
	colorConfigurationKeyConstant  = "color"
	formatConfigurationKeyConstant = "format"
	pauseConfigurationKeyConstant  = "pause"
	configurationKeySeparator      = "."
)

// CommandConfiguration captures configuration values for the generate command.
type CommandConfiguration struct {
	RequiredCount string `mapstructure:"-"`
	Color         string `mapstructure:"color"`
	Format        string `mapstructure:"format"`
	Pause         bool   `mapstructure:"pause"`
}

// DefaultCommandConfiguration provides baseline configuration values for the generate command.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		Color:  string(ui.ColorModeAuto),
		Format: string(ui.OutputFormatConsole),
		Pause:  false,
	}
}

// DefaultConfigurationValues returns Viper defaults for the generate command rooted at prefix.
func DefaultConfigurationValues(prefix string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		prefix + configurationKeySeparator + colorConfigurationKeyConstant:  defaults.Color,
		prefix + configurationKeySeparator + formatConfigurationKeyConstant: defaults.Format,
		prefix + configurationKeySeparator + pauseConfigurationKeyConstant:  defaults.Pause,
	}
}

// Sanitize trims configured values.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.RequiredCount = strings.TrimSpace(configuration.RequiredCount)
	sanitized.Color = strings.TrimSpace(configuration.Color)
	sanitized.Format = strings.TrimSpace(configuration.Format)
	return sanitized
}
