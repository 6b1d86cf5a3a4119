package drawstats

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/lotto/internal/lottery"
	"github.com/temirov/lotto/internal/ui"
	"github.com/temirov/lotto/internal/utils"
	flagutils "github.com/temirov/lotto/internal/utils/flags"
)

const (
	commandUseNameConstant           = "stats"
	commandShortDescriptionConstant  = "Summarize repeated lottery draws"
	commandLongDescriptionConstant   = "stats runs the generator repeatedly and reports the mean, median, and standard deviation of the drawn numbers together with how often each category appeared."
	commandExampleConstant           = "lotto stats --draws 1000 --count 6"
	drawsFlagNameConstant            = "draws"
	drawsFlagUsageConstant           = "Number of generations to summarize"
	invalidDrawCountMessageConstant  = "draw count must be positive"
	invalidDrawCountTemplateConstant = "%w: %d"
	summaryCompletedLogMessage       = "draw statistics computed"
	generationFailedLogMessage       = "lottery number generation failed"
	logFieldDrawsConstant            = "draws"
	logFieldRequiredCountConstant    = "required_count"
)

// ErrInvalidDrawCount indicates a non-positive draw count.
var ErrInvalidDrawCount = errors.New(invalidDrawCountMessageConstant)

// LoggerProvider yields a zap logger instance.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the stats command.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider func() CommandConfiguration
	RandomSourceProvider  lottery.RandomSourceProvider
}

// Build constructs the stats command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:     commandUseNameConstant,
		Short:   commandShortDescriptionConstant,
		Long:    commandLongDescriptionConstant,
		Example: commandExampleConstant,
		Args:    cobra.NoArgs,
	}

	outputFlagValues := flagutils.BindOutputFlags(command, flagutils.OutputFlagValues{
		Count:  lottery.DefaultRequiredCount,
		Color:  string(ui.ColorModeAuto),
		Format: string(ui.OutputFormatConsole),
	}, flagutils.OutputFlagDefinition{
		ColorChoices:  ui.ColorModeChoices(),
		FormatChoices: ui.OutputFormatChoices(),
	})

	var drawsFlagValue int
	command.Flags().IntVar(&drawsFlagValue, drawsFlagNameConstant, defaultDrawCountConstant, drawsFlagUsageConstant)

	command.RunE = func(command *cobra.Command, arguments []string) error {
		return builder.run(command, outputFlagValues, drawsFlagValue)
	}

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, outputFlagValues *flagutils.OutputFlagValues, drawsFlagValue int) error {
	configuration := builder.resolveConfiguration()
	logger := builder.resolveLogger()

	drawCount := configuration.Draws
	if flagutils.FlagChanged(command, drawsFlagNameConstant) {
		drawCount = drawsFlagValue
	}
	if drawCount <= 0 {
		return fmt.Errorf(invalidDrawCountTemplateConstant, ErrInvalidDrawCount, drawCount)
	}

	requiredCount := lottery.ParseRequiredCount(configuration.RequiredCount)
	if flagutils.FlagChanged(command, flagutils.CountFlagName) {
		requiredCount = outputFlagValues.Count
	}

	colorValue := configuration.Color
	if flagutils.FlagChanged(command, flagutils.ColorFlagName) {
		colorValue = outputFlagValues.Color
	}
	colorMode, colorModeError := ui.ParseColorMode(colorValue)
	if colorModeError != nil {
		return colorModeError
	}

	formatValue := configuration.Format
	if flagutils.FlagChanged(command, flagutils.FormatFlagName) {
		formatValue = outputFlagValues.Format
	}
	outputFormat, outputFormatError := ui.ParseOutputFormat(formatValue)
	if outputFormatError != nil {
		return outputFormatError
	}

	summaryRenderer := ui.NewNumberRenderer(utils.NewFlushingWriter(command.OutOrStdout()), colorMode, outputFormat)
	failureRenderer := ui.NewNumberRenderer(utils.NewFlushingWriter(command.ErrOrStderr()), colorMode, ui.OutputFormatConsole)

	generator := lottery.NewGenerator(lottery.GeneratorDependencies{
		RandomSourceProvider: builder.RandomSourceProvider,
		Logger:               logger.Named(commandUseNameConstant).WithOptions(zap.IncreaseLevel(zap.WarnLevel)),
	})

	results := make([]*lottery.Result, 0, drawCount)
	for drawIndex := 0; drawIndex < drawCount; drawIndex++ {
		result, generateError := generator.Generate(requiredCount)
		if generateError != nil {
			logger.Error(generationFailedLogMessage, zap.Error(generateError))
			return failureRenderer.RenderFailure(generateError.Error())
		}
		results = append(results, result)
	}

	summary, summarizeError := lottery.Summarize(results)
	if summarizeError != nil {
		return failureRenderer.RenderFailure(summarizeError.Error())
	}

	logger.Info(
		summaryCompletedLogMessage,
		zap.Int(logFieldDrawsConstant, drawCount),
		zap.Int(logFieldRequiredCountConstant, requiredCount),
	)

	return summaryRenderer.RenderSummary(summary)
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider().Sanitize()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
