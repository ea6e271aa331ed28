// Package cli assembles the checkrepos command-line application: the Cobra
// root command, configuration loading, and structured logging shared by the
// scan subcommand.
package cli
