package generate

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/lotto/internal/lottery"
	"github.com/temirov/lotto/internal/ui"
	"github.com/temirov/lotto/internal/utils"
	flagutils "github.com/temirov/lotto/internal/utils/flags"
)

const (
	commandUseNameConstant            = "generate"
	commandShortDescriptionConstant   = "Generate unique lottery numbers"
	commandLongDescriptionConstant    = "generate draws the requested count of unique lottery numbers between 1 and 48 and prints them in ascending order, colored by category: grey 1-9, blue 10-19, pink 20-29, green 30-39, yellow 40-49."
	commandExampleConstant            = "lotto generate --count 7 --color always"
	pauseFlagNameConstant             = "pause"
	pauseFlagUsageConstant            = "Wait for Return before exiting when attached to a terminal."
	pausePromptConstant               = "Press <Return> to continue"
	generationFailedLogMessage        = "lottery number generation failed"
	renderFailedLogMessage            = "unable to render lottery numbers"
	generationRequestedLogMessage     = "lottery numbers requested"
	logFieldRequiredCountConstant     = "required_count"
	logFieldConfigurationFileConstant = "config_file"
	logFieldErrorConstant             = "error"
	pauseReadErrorTemplateConstant    = "unable to read confirmation: %w"
	commandNotProvidedMessageConstant = "command not provided"
)

// ErrCommandNotProvided indicates Attach received a nil command.
var ErrCommandNotProvided = errors.New(commandNotProvidedMessageConstant)

// LoggerProvider yields a zap logger instance.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the generate command.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider func() CommandConfiguration
	RandomSourceProvider  lottery.RandomSourceProvider
	TerminalDetector      func() bool
}

// Build constructs the generate command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:     commandUseNameConstant,
		Short:   commandShortDescriptionConstant,
		Long:    commandLongDescriptionConstant,
		Example: commandExampleConstant,
		Args:    cobra.NoArgs,
	}

	if attachError := builder.Attach(command); attachError != nil {
		return nil, attachError
	}

	return command, nil
}

// Attach binds the generate flags to command and makes it run number generation.
// The root command uses it so that running the bare binary accepts the same flags.
func (builder *CommandBuilder) Attach(command *cobra.Command) error {
	if command == nil {
		return ErrCommandNotProvided
	}

	defaults := DefaultCommandConfiguration()
	outputFlagValues := flagutils.BindOutputFlags(command, flagutils.OutputFlagValues{
		Count:  lottery.DefaultRequiredCount,
		Color:  defaults.Color,
		Format: defaults.Format,
	}, flagutils.OutputFlagDefinition{
		ColorChoices:  ui.ColorModeChoices(),
		FormatChoices: ui.OutputFormatChoices(),
	})

	var pauseFlagValue bool
	flagutils.AddToggleFlag(command.Flags(), &pauseFlagValue, pauseFlagNameConstant, defaults.Pause, pauseFlagUsageConstant)

	command.RunE = func(command *cobra.Command, arguments []string) error {
		return builder.run(command, outputFlagValues, pauseFlagValue)
	}

	return nil
}

func (builder *CommandBuilder) run(command *cobra.Command, outputFlagValues *flagutils.OutputFlagValues, pauseFlagValue bool) error {
	configuration := builder.resolveConfiguration()
	logger := builder.resolveLogger()

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

	pause := configuration.Pause
	if flagutils.FlagChanged(command, pauseFlagNameConstant) {
		pause = pauseFlagValue
	}

	configurationFilePath, _ := utils.NewCommandContextAccessor().ConfigurationFilePath(command.Context())
	logger.Debug(
		generationRequestedLogMessage,
		zap.Int(logFieldRequiredCountConstant, requiredCount),
		zap.String(logFieldConfigurationFileConstant, configurationFilePath),
	)

	outputWriter := utils.NewFlushingWriter(command.OutOrStdout())
	resultRenderer := ui.NewNumberRenderer(outputWriter, colorMode, outputFormat)
	failureRenderer := ui.NewNumberRenderer(utils.NewFlushingWriter(command.ErrOrStderr()), colorMode, ui.OutputFormatConsole)

	generator := lottery.NewGenerator(lottery.GeneratorDependencies{
		RandomSourceProvider: builder.RandomSourceProvider,
		Logger:               logger,
	})

	result, generateError := generator.Generate(requiredCount)
	if generateError != nil {
		logger.Error(generationFailedLogMessage, zap.Error(generateError))
		if renderError := failureRenderer.RenderFailure(generateError.Error()); renderError != nil {
			return renderError
		}
	} else if renderError := resultRenderer.RenderResult(result); renderError != nil {
		logger.Error(renderFailedLogMessage, zap.Error(renderError))
		if failureRenderError := failureRenderer.RenderFailure(renderError.Error()); failureRenderError != nil {
			return failureRenderError
		}
	}

	if pause && builder.attachedToTerminal() {
		return waitForConfirmation(outputWriter, command.InOrStdin())
	}
	return nil
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

func (builder *CommandBuilder) attachedToTerminal() bool {
	if builder.TerminalDetector != nil {
		return builder.TerminalDetector()
	}
	return StandardInputIsTerminal()
}

// StandardInputIsTerminal reports whether standard input is an interactive terminal.
func StandardInputIsTerminal() bool {
	fileDescriptor := os.Stdin.Fd()
	return isatty.IsTerminal(fileDescriptor) || isatty.IsCygwinTerminal(fileDescriptor)
}

func waitForConfirmation(writer io.Writer, reader io.Reader) error {
	if _, writeError := fmt.Fprintln(writer, pausePromptConstant); writeError != nil {
		return writeError
	}
	if _, readError := bufio.NewReader(reader).ReadString('\n'); readError != nil && !errors.Is(readError, io.EOF) {
		return fmt.Errorf(pauseReadErrorTemplateConstant, readError)
	}
	return nil
}
