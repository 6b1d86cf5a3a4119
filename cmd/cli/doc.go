// Package cli constructs the lotto command-line interface, wiring the Cobra
// command hierarchy, the Viper configuration loader, and zap logging around
// the lottery number generator.
package cli
