package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"syscall"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/temirov/lotto/internal/drawstats"
	"github.com/temirov/lotto/internal/generate"
	"github.com/temirov/lotto/internal/lottery"
	"github.com/temirov/lotto/internal/utils"
	flagutils "github.com/temirov/lotto/internal/utils/flags"
)

const (
	applicationNameConstant                 = "lotto"
	applicationShortDescriptionConstant     = "Generate unique, color-coded lottery numbers"
	applicationLongDescriptionConstant      = "lotto draws unique lottery numbers, tags each with its color category, and prints them to the console. Running lotto without a subcommand behaves like lotto generate."
	configFileFlagNameConstant              = "config"
	configFileFlagUsageConstant             = "Optional path to a configuration file (YAML or JSON)."
	logLevelFlagNameConstant                = "log-level"
	logLevelFlagUsageConstant               = "Override the configured log level."
	logFormatFlagNameConstant               = "log-format"
	logFormatFlagUsageConstant              = "Override the configured log format."
	commonConfigurationKeyConstant          = "common"
	commonLogLevelConfigKeyConstant         = commonConfigurationKeyConstant + ".log_level"
	commonLogFormatConfigKeyConstant        = commonConfigurationKeyConstant + ".log_format"
	requiredCountConfigKeyConstant          = "requiredNumberOfLotteryNumbers"
	toolsConfigurationKeyConstant           = "tools"
	generateConfigurationKeyConstant        = toolsConfigurationKeyConstant + ".generate"
	statsConfigurationKeyConstant           = toolsConfigurationKeyConstant + ".stats"
	environmentPrefixConstant               = "LOTTO"
	configurationNameConstant               = "config"
	configurationTypeConstant               = "yaml"
	configurationInitializedMessageConstant = "configuration initialized"
	configurationLogLevelFieldConstant      = "log_level"
	configurationLogFormatFieldConstant     = "log_format"
	configurationFileFieldConstant          = "config_file"
	configurationLoadErrorTemplateConstant  = "unable to load configuration: %w"
	loggerCreationErrorTemplateConstant     = "unable to create logger: %w"
	loggerSyncErrorTemplateConstant         = "unable to flush logger: %w"
	commandBuildErrorTemplateConstant       = "unable to build %s command: %w"
	generateCommandNameConstant             = "generate"
	statsCommandNameConstant                = "stats"
	requiredCountIgnoredMessageConstant     = "ignoring non-scalar requiredNumberOfLotteryNumbers"
)

// applicationVersion is overridden at build time with -ldflags "-X github.com/temirov/lotto/cmd/cli.applicationVersion=...".
var applicationVersion = "dev"

// ApplicationConfiguration describes the persisted configuration for the CLI entrypoint.
type ApplicationConfiguration struct {
	Common                         ApplicationCommonConfiguration `mapstructure:"common"`
	RequiredNumberOfLotteryNumbers any                            `mapstructure:"requiredNumberOfLotteryNumbers"`
	Tools                          ApplicationToolsConfiguration  `mapstructure:"tools"`
}

// ApplicationCommonConfiguration stores logging configuration shared across commands.
type ApplicationCommonConfiguration struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// ApplicationToolsConfiguration holds configuration for CLI subcommands.
type ApplicationToolsConfiguration struct {
	Generate generate.CommandConfiguration  `mapstructure:"generate"`
	Stats    drawstats.CommandConfiguration `mapstructure:"stats"`
}

// ApplicationDependencies enumerates collaborators that may be replaced, primarily in tests.
type ApplicationDependencies struct {
	RandomSourceProvider lottery.RandomSourceProvider
	TerminalDetector     func() bool
	SearchPaths          []string
}

// Application wires the Cobra root command, configuration loader, and structured logger.
type Application struct {
	rootCommand            *cobra.Command
	configurationLoader    *utils.ConfigurationLoader
	loggerFactory          *utils.LoggerFactory
	logger                 *zap.Logger
	configuration          ApplicationConfiguration
	configurationMetadata  utils.LoadedConfiguration
	configurationFilePath  string
	logLevelFlagValue      string
	logFormatFlagValue     string
	commandContextAccessor utils.CommandContextAccessor
}

// NewApplication assembles a fully wired CLI application instance.
func NewApplication() (*Application, error) {
	return NewApplicationWithDependencies(ApplicationDependencies{})
}

// NewApplicationWithDependencies assembles the CLI application around the provided collaborators.
func NewApplicationWithDependencies(dependencies ApplicationDependencies) (*Application, error) {
	searchPaths := dependencies.SearchPaths
	if searchPaths == nil {
		searchPaths = utils.DefaultSearchPaths(applicationNameConstant)
	}

	configurationLoader := utils.NewConfigurationLoader(
		configurationNameConstant,
		configurationTypeConstant,
		environmentPrefixConstant,
		searchPaths,
	)
	configurationLoader.SetEmbeddedConfiguration(EmbeddedDefaultConfiguration())

	application := &Application{
		configurationLoader:    configurationLoader,
		loggerFactory:          utils.NewLoggerFactory(),
		logger:                 zap.NewNop(),
		commandContextAccessor: utils.NewCommandContextAccessor(),
	}

	generateBuilder := generate.CommandBuilder{
		LoggerProvider: func() *zap.Logger {
			return application.logger
		},
		ConfigurationProvider: application.generateConfiguration,
		RandomSourceProvider:  dependencies.RandomSourceProvider,
		TerminalDetector:      dependencies.TerminalDetector,
	}
	generateCommand, generateBuildError := generateBuilder.Build()
	if generateBuildError != nil {
		return nil, fmt.Errorf(commandBuildErrorTemplateConstant, generateCommandNameConstant, generateBuildError)
	}

	statsBuilder := drawstats.CommandBuilder{
		LoggerProvider: func() *zap.Logger {
			return application.logger
		},
		ConfigurationProvider: application.statsConfiguration,
		RandomSourceProvider:  dependencies.RandomSourceProvider,
	}
	statsCommand, statsBuildError := statsBuilder.Build()
	if statsBuildError != nil {
		return nil, fmt.Errorf(commandBuildErrorTemplateConstant, statsCommandNameConstant, statsBuildError)
	}

	cobraCommand := &cobra.Command{
		Use:           applicationNameConstant,
		Short:         applicationShortDescriptionConstant,
		Long:          applicationLongDescriptionConstant,
		Version:       applicationVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(command *cobra.Command, arguments []string) error {
			return application.initializeConfiguration(command)
		},
	}
	if attachError := generateBuilder.Attach(cobraCommand); attachError != nil {
		return nil, fmt.Errorf(commandBuildErrorTemplateConstant, applicationNameConstant, attachError)
	}

	cobraCommand.SetContext(context.Background())
	cobraCommand.PersistentFlags().StringVar(&application.configurationFilePath, configFileFlagNameConstant, "", configFileFlagUsageConstant)
	cobraCommand.PersistentFlags().StringVar(&application.logLevelFlagValue, logLevelFlagNameConstant, "", logLevelFlagUsageConstant)
	cobraCommand.PersistentFlags().StringVar(
		&application.logFormatFlagValue,
		logFormatFlagNameConstant,
		"",
		flagutils.FormatChoiceUsage(string(utils.LogFormatConsole), utils.LogFormatChoices(), logFormatFlagUsageConstant),
	)

	cobraCommand.AddCommand(generateCommand, statsCommand)

	application.rootCommand = cobraCommand

	return application, nil
}

// Execute runs the configured Cobra command hierarchy and ensures logger flushing.
func (application *Application) Execute() error {
	executionError := application.rootCommand.Execute()
	if syncError := application.flushLogger(); syncError != nil {
		return fmt.Errorf(loggerSyncErrorTemplateConstant, syncError)
	}
	return executionError
}

// SetArguments replaces the command-line arguments parsed by Execute.
func (application *Application) SetArguments(arguments []string) {
	application.rootCommand.SetArgs(arguments)
}

// SetStreams redirects the standard input, output, and error streams used by commands.
func (application *Application) SetStreams(input io.Reader, output io.Writer, errorOutput io.Writer) {
	application.rootCommand.SetIn(input)
	application.rootCommand.SetOut(output)
	application.rootCommand.SetErr(errorOutput)
}

// Execute builds a fresh application instance and executes the root command hierarchy.
func Execute() error {
	application, applicationError := NewApplication()
	if applicationError != nil {
		return applicationError
	}
	return application.Execute()
}

func (application *Application) initializeConfiguration(command *cobra.Command) error {
	defaultValues := map[string]any{
		commonLogLevelConfigKeyConstant:  string(utils.LogLevelWarn),
		commonLogFormatConfigKeyConstant: string(utils.LogFormatConsole),
		requiredCountConfigKeyConstant:   "",
	}
	for configurationKey, configurationValue := range generate.DefaultConfigurationValues(generateConfigurationKeyConstant) {
		defaultValues[configurationKey] = configurationValue
	}
	for configurationKey, configurationValue := range drawstats.DefaultConfigurationValues(statsConfigurationKeyConstant) {
		defaultValues[configurationKey] = configurationValue
	}

	loadedConfiguration, loadError := application.configurationLoader.LoadConfiguration(application.configurationFilePath, defaultValues, &application.configuration)
	if loadError != nil {
		return fmt.Errorf(configurationLoadErrorTemplateConstant, loadError)
	}

	application.configurationMetadata = loadedConfiguration

	if application.persistentFlagChanged(command, logLevelFlagNameConstant) {
		application.configuration.Common.LogLevel = application.logLevelFlagValue
	}

	if application.persistentFlagChanged(command, logFormatFlagNameConstant) {
		application.configuration.Common.LogFormat = application.logFormatFlagValue
	}

	logger, loggerCreationError := application.loggerFactory.CreateLogger(
		utils.LogLevel(application.configuration.Common.LogLevel),
		utils.LogFormat(application.configuration.Common.LogFormat),
	)
	if loggerCreationError != nil {
		return fmt.Errorf(loggerCreationErrorTemplateConstant, loggerCreationError)
	}

	application.logger = logger

	application.logger.Info(
		configurationInitializedMessageConstant,
		zap.String(configurationLogLevelFieldConstant, application.configuration.Common.LogLevel),
		zap.String(configurationLogFormatFieldConstant, application.configuration.Common.LogFormat),
		zap.String(configurationFileFieldConstant, application.configurationMetadata.ConfigFileUsed),
	)

	if command != nil {
		updatedContext := application.commandContextAccessor.WithConfigurationFilePath(
			command.Context(),
			application.configurationMetadata.ConfigFileUsed,
		)
		command.SetContext(updatedContext)
		if rootCommand := command.Root(); rootCommand != nil {
			rootCommand.SetContext(updatedContext)
		}
	}

	return nil
}

func (application *Application) generateConfiguration() generate.CommandConfiguration {
	configuration := application.configuration.Tools.Generate
	configuration.RequiredCount = application.requiredCountSetting()
	return configuration
}

func (application *Application) statsConfiguration() drawstats.CommandConfiguration {
	configuration := application.configuration.Tools.Stats
	configuration.RequiredCount = application.requiredCountSetting()
	configuration.Color = application.configuration.Tools.Generate.Color
	configuration.Format = application.configuration.Tools.Generate.Format
	return configuration
}

// requiredCountSetting renders the configured count as text; lists, maps, and other
// non-scalar values become empty so the generator falls back to its default.
func (application *Application) requiredCountSetting() string {
	configuredValue, conversionError := cast.ToStringE(application.configuration.RequiredNumberOfLotteryNumbers)
	if conversionError != nil {
		application.logger.Warn(
			requiredCountIgnoredMessageConstant,
			zap.Any(requiredCountConfigKeyConstant, application.configuration.RequiredNumberOfLotteryNumbers),
		)
		return ""
	}
	return configuredValue
}

func (application *Application) flushLogger() error {
	if application.logger == nil {
		return nil
	}

	syncError := application.logger.Sync()
	switch {
	case syncError == nil:
		return nil
	case errors.Is(syncError, syscall.ENOTSUP):
		return nil
	case errors.Is(syncError, syscall.EINVAL):
		return nil
	case errors.Is(syncError, syscall.ENOTTY):
		return nil
	default:
		return syncError
	}
}

func (application *Application) persistentFlagChanged(command *cobra.Command, flagName string) bool {
	if command == nil {
		return false
	}

	flagSetsToInspect := []*pflag.FlagSet{
		command.PersistentFlags(),
		command.InheritedFlags(),
	}

	if rootCommand := command.Root(); rootCommand != nil {
		flagSetsToInspect = append(flagSetsToInspect, rootCommand.PersistentFlags())
	}

	for _, flagSet := range flagSetsToInspect {
		if flagSet != nil && flagSet.Changed(flagName) {
			return true
		}
	}

	return false
}
