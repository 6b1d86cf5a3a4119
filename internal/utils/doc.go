// Package utils exposes the ambient helpers shared by lotto commands.
//
// ConfigurationLoader layers embedded defaults, configuration files, and
// environment variables through Viper. LoggerFactory builds zap loggers for
// diagnostics, and FlushingWriter keeps console output visible as it is
// written.
package utils
