package ui

import (
	"fmt"
	"strings"
)

const (
	colorModeAutoStringConstant             = "auto"
	colorModeAlwaysStringConstant           = "always"
	colorModeNeverStringConstant            = "never"
	outputFormatConsoleStringConstant       = "console"
	outputFormatYAMLStringConstant          = "yaml"
	unsupportedColorModeTemplateConstant    = "unsupported color mode: %s"
	unsupportedOutputFormatTemplateConstant = "unsupported output format: %s"
)

// ColorMode selects whether console output carries ANSI colors.
type ColorMode string

// Supported color modes.
const (
	ColorModeAuto   ColorMode = ColorMode(colorModeAutoStringConstant)
	ColorModeAlways ColorMode = ColorMode(colorModeAlwaysStringConstant)
	ColorModeNever  ColorMode = ColorMode(colorModeNeverStringConstant)
)

// OutputFormat selects how generated numbers are written.
type OutputFormat string

// Supported output formats.
const (
	OutputFormatConsole OutputFormat = OutputFormat(outputFormatConsoleStringConstant)
	OutputFormatYAML    OutputFormat = OutputFormat(outputFormatYAMLStringConstant)
)

// ColorModeChoices lists the accepted color mode values.
func ColorModeChoices() []string {
	return []string{string(ColorModeAuto), string(ColorModeAlways), string(ColorModeNever)}
}

// OutputFormatChoices lists the accepted output format values.
func OutputFormatChoices() []string {
	return []string{string(OutputFormatConsole), string(OutputFormatYAML)}
}

// ParseColorMode normalizes a configured color mode, treating an empty value as auto.
func ParseColorMode(rawValue string) (ColorMode, error) {
	normalizedValue := strings.ToLower(strings.TrimSpace(rawValue))
	switch ColorMode(normalizedValue) {
	case "", ColorModeAuto:
		return ColorModeAuto, nil
	case ColorModeAlways, ColorModeNever:
		return ColorMode(normalizedValue), nil
	default:
		return "", fmt.Errorf(unsupportedColorModeTemplateConstant, rawValue)
	}
}

// ParseOutputFormat normalizes a configured output format, treating an empty value as console.
func ParseOutputFormat(rawValue string) (OutputFormat, error) {
	normalizedValue := strings.ToLower(strings.TrimSpace(rawValue))
	switch OutputFormat(normalizedValue) {
	case "", OutputFormatConsole:
		return OutputFormatConsole, nil
	case OutputFormatYAML:
		return OutputFormatYAML, nil
	default:
		return "", fmt.Errorf(unsupportedOutputFormatTemplateConstant, rawValue)
	}
}
