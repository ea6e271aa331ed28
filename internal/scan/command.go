package scan

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"checkrepos/internal/execshell"
	"checkrepos/internal/ui"
	"checkrepos/internal/utils/flags"
	pathutils "checkrepos/internal/utils/path"
)

const (
	commandUseConstant                    = "scan [root ...]"
	commandShortDescriptionConstant       = "Report the status of every git repository beneath the given roots"
	commandLongDescriptionConstant        = "scan walks the provided root directories, finds every git working copy, and reports which ones are clean, need a push, or carry unstaged changes."
	commandExecutionErrorTemplateConstant = "repository scan failed: %w"
	flagVerboseNameConstant               = "verbose"
	flagVerboseShorthandConstant          = "v"
	flagVerboseDescriptionConstant        = "Print a status line for every repository, not only those needing attention"
	flagBranchNameConstant                = "branch"
	flagBranchShorthandConstant           = "b"
	flagBranchDescriptionConstant         = "Append the current branch name to each repository line"
	flagColorNameConstant                 = "color"
	flagColorDescriptionConstant          = "Colorize console output"
	flagIgnoreFileNameConstant            = "ignore-file"
	flagIgnoreFileDescriptionConstant     = "Name of the per-root ignore marker file"
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider supplies scan configuration defaults.
type ConfigurationProvider func() CommandConfiguration

// HumanReadableLoggingProvider reports whether console log mirroring is enabled.
type HumanReadableLoggingProvider func() bool

// CommandBuilder assembles the Cobra command for repository scanning.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	HumanReadableLogging  HumanReadableLoggingProvider
	Discoverer            RepositoryDiscoverer
	Executor              GitExecutor
	OutputWriter          io.Writer

	verboseFlagValue bool
	branchFlagValue  bool
	colorFlagValue   bool
}

// Build constructs the scan command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.ArbitraryArgs,
		RunE:  builder.run,
	}

	defaults := builder.resolveConfiguration()
	flags.AddToggleFlag(command.Flags(), &builder.verboseFlagValue, flagVerboseNameConstant, flagVerboseShorthandConstant, defaults.Verbose, flagVerboseDescriptionConstant)
	flags.AddToggleFlag(command.Flags(), &builder.branchFlagValue, flagBranchNameConstant, flagBranchShorthandConstant, defaults.RecordBranches, flagBranchDescriptionConstant)
	flags.AddToggleFlag(command.Flags(), &builder.colorFlagValue, flagColorNameConstant, "", defaults.ColorEnabled, flagColorDescriptionConstant)
	command.Flags().String(flagIgnoreFileNameConstant, defaults.IgnoreFileName, flagIgnoreFileDescriptionConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration := builder.resolveRunConfiguration(command, arguments)

	logger := builder.resolveLogger()
	executor, executorError := builder.resolveExecutor(logger)
	if executorError != nil {
		return executorError
	}

	service, serviceError := NewService(logger, builder.Discoverer, executor)
	if serviceError != nil {
		return serviceError
	}

	scanResult, scanError := service.Run(command.Context(), ScanOptions{
		Roots:          configuration.Roots,
		IgnoreFileName: configuration.IgnoreFileName,
		RecordBranches: configuration.RecordBranches,
	})
	if scanError != nil {
		return fmt.Errorf(commandExecutionErrorTemplateConstant, scanError)
	}

	reporter := NewReporter(builder.resolveOutputWriter(command), ReportingConfiguration{
		Verbose:        configuration.Verbose,
		ColorEnabled:   configuration.ColorEnabled,
		RecordBranches: configuration.RecordBranches,
	})
	reporter.Report(scanResult)

	return nil
}

// resolveRunConfiguration layers flag overrides and positional roots over configured defaults.
func (builder *CommandBuilder) resolveRunConfiguration(command *cobra.Command, arguments []string) CommandConfiguration {
	configuration := builder.resolveConfiguration()

	if command.Flags().Changed(flagVerboseNameConstant) {
		configuration.Verbose = builder.verboseFlagValue
	}
	if command.Flags().Changed(flagBranchNameConstant) {
		configuration.RecordBranches = builder.branchFlagValue
	}
	if command.Flags().Changed(flagColorNameConstant) {
		configuration.ColorEnabled = builder.colorFlagValue
	}
	if command.Flags().Changed(flagIgnoreFileNameConstant) {
		ignoreFileValue, _ := command.Flags().GetString(flagIgnoreFileNameConstant)
		configuration.IgnoreFileName = ignoreFileValue
	}

	if len(arguments) > 0 {
		configuration.Roots = arguments
	}
	configuration = configuration.sanitize()
	configuration.Roots = pathutils.NewScanRootSanitizer().Sanitize(configuration.Roots)

	if len(configuration.IgnoreFileName) == 0 {
		configuration.IgnoreFileName = DefaultIgnoreFileName
	}

	return configuration
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider().sanitize()
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

func (builder *CommandBuilder) resolveExecutor(logger *zap.Logger) (GitExecutor, error) {
	if builder.Executor != nil {
		return builder.Executor, nil
	}

	humanReadableLogging := false
	if builder.HumanReadableLogging != nil {
		humanReadableLogging = builder.HumanReadableLogging()
	}

	commandRunner := execshell.NewOSCommandRunner()
	shellExecutor, creationError := execshell.NewShellExecutor(logger, commandRunner, humanReadableLogging)
	if creationError != nil {
		return nil, creationError
	}
	if humanReadableLogging {
		shellExecutor.SetCommandEventObserver(ui.NewConsoleCommandEventLogger(logger))
	}

	return shellExecutor, nil
}

func (builder *CommandBuilder) resolveOutputWriter(command *cobra.Command) io.Writer {
	if builder.OutputWriter != nil {
		return builder.OutputWriter
	}
	return command.OutOrStdout()
}
