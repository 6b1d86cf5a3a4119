package drawstats

import "strings"

const (
	defaultDrawCountConstant          = 100
	drawsConfigurationKeyConstant     = "draws"
	configurationKeySeparatorConstant = "."
)

// CommandConfiguration captures configuration values for the stats command.
type CommandConfiguration struct {
	RequiredCount string `mapstructure:"-"`
	Draws         int    `mapstructure:"draws"`
	Color         string `mapstructure:"-"`
	Format        string `mapstructure:"-"`
}

// DefaultCommandConfiguration provides baseline configuration values for the stats command.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{Draws: defaultDrawCountConstant}
}

// DefaultConfigurationValues returns Viper defaults for the stats command rooted at prefix.
func DefaultConfigurationValues(prefix string) map[string]any {
	return map[string]any{
		prefix + configurationKeySeparatorConstant + drawsConfigurationKeyConstant: defaultDrawCountConstant,
	}
}

// Sanitize trims configured values and restores the default draw count when unset.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.RequiredCount = strings.TrimSpace(configuration.RequiredCount)
	sanitized.Color = strings.TrimSpace(configuration.Color)
	sanitized.Format = strings.TrimSpace(configuration.Format)
	if sanitized.Draws == 0 {
		sanitized.Draws = defaultDrawCountConstant
	}
	return sanitized
}
