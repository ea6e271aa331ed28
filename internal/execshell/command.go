package execshell

import (
	"errors"
	"fmt"
	"strings"
)

const (
	gitToolNameConstant                        = "git"
	commandFailedTemplateConstant              = "%s exited with code %d%s"
	commandExecutionFailedTemplateConstant     = "%s could not be executed: %s"
	commandFailureStandardErrorSuffixConstant  = ": %s"
	commandLabelArgumentsSeparatorConstant     = " "
	loggerNotConfiguredMessageConstant         = "shell executor requires a logger"
	commandRunnerNotConfiguredMessageConstant  = "shell executor requires a command runner"
	unknownExecutionFailureMessageConstant     = "unknown execution failure"
	commandLabelWorkingDirectorySuffixConstant = " (in %s)"
)

// Initialization errors reported by NewShellExecutor.
var (
	ErrLoggerNotConfigured        = errors.New(loggerNotConfiguredMessageConstant)
	ErrCommandRunnerNotConfigured = errors.New(commandRunnerNotConfiguredMessageConstant)
)

// CommandName identifies an external executable supported by the executor.
type CommandName string

// Supported external tools.
const (
	CommandGit CommandName = CommandName(gitToolNameConstant)
)

// CommandDetails describes a single invocation of an external tool.
type CommandDetails struct {
	Arguments            []string
	WorkingDirectory     string
	EnvironmentVariables map[string]string
	StandardInput        []byte
}

// ShellCommand pairs a tool name with its invocation details.
type ShellCommand struct {
	Name    CommandName
	Details CommandDetails
}

// ExecutionResult captures the observable outcome of running a command.
type ExecutionResult struct {
	StandardOutput string
	StandardError  string
	ExitCode       int
}

// CommandFailedError reports a command that completed with a non-zero exit code.
type CommandFailedError struct {
	Command ShellCommand
	Result  ExecutionResult
}

// Error renders the failure including exit code and trimmed standard error output.
func (failure CommandFailedError) Error() string {
	standardErrorSuffix := ""
	trimmedStandardError := strings.TrimSpace(failure.Result.StandardError)
	if len(trimmedStandardError) > 0 {
		standardErrorSuffix = fmt.Sprintf(commandFailureStandardErrorSuffixConstant, trimmedStandardError)
	}
	return fmt.Sprintf(commandFailedTemplateConstant, describeCommand(failure.Command), failure.Result.ExitCode, standardErrorSuffix)
}

// CommandExecutionError reports a command that could not be started or monitored.
type CommandExecutionError struct {
	Command ShellCommand
	Cause   error
}

// Error renders the execution failure with its underlying cause.
func (failure CommandExecutionError) Error() string {
	causeMessage := unknownExecutionFailureMessageConstant
	if failure.Cause != nil {
		causeMessage = failure.Cause.Error()
	}
	return fmt.Sprintf(commandExecutionFailedTemplateConstant, describeCommand(failure.Command), causeMessage)
}

// Unwrap exposes the underlying cause for errors.Is and errors.As inspection.
func (failure CommandExecutionError) Unwrap() error {
	return failure.Cause
}

func describeCommand(command ShellCommand) string {
	commandLabel := string(command.Name)
	if len(command.Details.Arguments) > 0 {
		commandLabel = commandLabel + commandLabelArgumentsSeparatorConstant + strings.Join(command.Details.Arguments, commandLabelArgumentsSeparatorConstant)
	}
	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) > 0 {
		commandLabel = commandLabel + fmt.Sprintf(commandLabelWorkingDirectorySuffixConstant, trimmedWorkingDirectory)
	}
	return commandLabel
}
