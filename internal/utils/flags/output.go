package flags

import "github.com/spf13/cobra"

const (
	// CountFlagName exposes the shared required-count flag name.
	CountFlagName = "count"
	// CountFlagShorthand provides the shorthand for the count flag.
	CountFlagShorthand = "n"
	// CountFlagUsage describes the shared count flag purpose.
	CountFlagUsage = "Count of unique numbers to generate (overrides requiredNumberOfLotteryNumbers)"
	// ColorFlagName exposes the shared color mode flag name.
	ColorFlagName = "color"
	// ColorFlagUsage describes the shared color mode flag purpose.
	ColorFlagUsage = "Control ANSI colors in console output."
	// FormatFlagName exposes the shared output format flag name.
	FormatFlagName = "format"
	// FormatFlagUsage describes the shared output format flag purpose.
	FormatFlagUsage = "Select the output format."
)

// OutputFlagDefinition lists the accepted values for the output flags.
type OutputFlagDefinition struct {
	ColorChoices  []string
	FormatChoices []string
}

// OutputFlagValues stores output flag values.
type OutputFlagValues struct {
	Count  int
	Color  string
	Format string
}

// BindOutputFlags attaches the count, color, and format flags to the provided command.
func BindOutputFlags(command *cobra.Command, defaults OutputFlagValues, definition OutputFlagDefinition) *OutputFlagValues {
	values := defaults
	if command == nil {
		return &values
	}

	flagSet := command.Flags()
	flagSet.IntVarP(&values.Count, CountFlagName, CountFlagShorthand, defaults.Count, CountFlagUsage)
	flagSet.StringVar(&values.Color, ColorFlagName, defaults.Color, FormatChoiceUsage(defaults.Color, definition.ColorChoices, ColorFlagUsage))
	flagSet.StringVar(&values.Format, FormatFlagName, defaults.Format, FormatChoiceUsage(defaults.Format, definition.FormatChoices, FormatFlagUsage))

	return &values
}

// FlagChanged reports whether the named local or inherited flag was set on the command line.
func FlagChanged(command *cobra.Command, flagName string) bool {
	if command == nil {
		return false
	}
	if command.Flags().Changed(flagName) {
		return true
	}
	return command.InheritedFlags().Changed(flagName)
}
