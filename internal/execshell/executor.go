package execshell

import (
	"context"

	"go.uber.org/zap"
)

const (
	startedLogMessageConstant          = "external command started"
	completedLogMessageConstant        = "external command completed"
	failedLogMessageConstant           = "external command failed"
	executionFailureLogMessageConstant = "external command execution failure"
	logFieldCommandConstant            = "command"
	logFieldWorkingDirectoryConstant   = "working_directory"
	logFieldExitCodeConstant           = "exit_code"
	logFieldStandardErrorConstant      = "standard_error"
)

// CommandRunner abstracts process execution so the executor can be tested without spawning processes.
type CommandRunner interface {
	Run(executionContext context.Context, command ShellCommand) (ExecutionResult, error)
}

// ShellExecutor runs external tools while emitting structured logs and lifecycle events.
type ShellExecutor struct {
	logger               *zap.Logger
	commandRunner        CommandRunner
	messageFormatter     CommandMessageFormatter
	eventObserver        CommandEventObserver
	humanReadableLogging bool
}

// NewShellExecutor validates dependencies and constructs a ShellExecutor.
func NewShellExecutor(logger *zap.Logger, commandRunner CommandRunner, humanReadableLogging ...bool) (*ShellExecutor, error) {
	if logger == nil {
		return nil, ErrLoggerNotConfigured
	}
	if commandRunner == nil {
		return nil, ErrCommandRunnerNotConfigured
	}

	humanReadable := false
	if len(humanReadableLogging) > 0 {
		humanReadable = humanReadableLogging[0]
	}

	return &ShellExecutor{
		logger:               logger,
		commandRunner:        commandRunner,
		messageFormatter:     CommandMessageFormatter{},
		eventObserver:        discardingCommandEventObserver{},
		humanReadableLogging: humanReadable,
	}, nil
}

// SetCommandEventObserver registers an observer receiving command lifecycle notifications.
func (executor *ShellExecutor) SetCommandEventObserver(observer CommandEventObserver) {
	if observer == nil {
		executor.eventObserver = discardingCommandEventObserver{}
		return
	}
	executor.eventObserver = observer
}

// ExecuteGit runs the git tool with the provided details.
func (executor *ShellExecutor) ExecuteGit(executionContext context.Context, details CommandDetails) (ExecutionResult, error) {
	command := ShellCommand{Name: CommandGit, Details: details}
	return executor.execute(executionContext, command)
}

func (executor *ShellExecutor) execute(executionContext context.Context, command ShellCommand) (ExecutionResult, error) {
	executor.logCommandStarted(command)
	executor.eventObserver.CommandStarted(command)

	executionResult, runError := executor.commandRunner.Run(executionContext, command)
	if runError != nil {
		executionFailure := CommandExecutionError{Command: command, Cause: runError}
		executor.logExecutionFailure(command, runError)
		executor.eventObserver.CommandExecutionFailed(command, runError)
		return ExecutionResult{}, executionFailure
	}

	if executionResult.ExitCode != 0 {
		commandFailure := CommandFailedError{Command: command, Result: executionResult}
		executor.logCommandFailed(command, executionResult)
		executor.eventObserver.CommandCompleted(command, executionResult)
		return ExecutionResult{}, commandFailure
	}

	executor.logCommandCompleted(command, executionResult)
	executor.eventObserver.CommandCompleted(command, executionResult)
	return executionResult, nil
}

func (executor *ShellExecutor) logCommandStarted(command ShellCommand) {
	if executor.humanReadableLogging {
		executor.logger.Debug(executor.messageFormatter.BuildStartedMessage(command))
		return
	}
	executor.logger.Debug(
		startedLogMessageConstant,
		zap.String(logFieldCommandConstant, describeCommand(command)),
		zap.String(logFieldWorkingDirectoryConstant, command.Details.WorkingDirectory),
	)
}

func (executor *ShellExecutor) logCommandCompleted(command ShellCommand, result ExecutionResult) {
	if executor.humanReadableLogging {
		executor.logger.Debug(executor.messageFormatter.BuildSuccessMessage(command))
		return
	}
	executor.logger.Debug(
		completedLogMessageConstant,
		zap.String(logFieldCommandConstant, describeCommand(command)),
		zap.Int(logFieldExitCodeConstant, result.ExitCode),
	)
}

func (executor *ShellExecutor) logCommandFailed(command ShellCommand, result ExecutionResult) {
	if executor.humanReadableLogging {
		executor.logger.Warn(executor.messageFormatter.BuildFailureMessage(command, result))
		return
	}
	executor.logger.Warn(
		failedLogMessageConstant,
		zap.String(logFieldCommandConstant, describeCommand(command)),
		zap.Int(logFieldExitCodeConstant, result.ExitCode),
		zap.String(logFieldStandardErrorConstant, result.StandardError),
	)
}

func (executor *ShellExecutor) logExecutionFailure(command ShellCommand, failure error) {
	if executor.humanReadableLogging {
		executor.logger.Error(executor.messageFormatter.BuildExecutionFailureMessage(command, failure))
		return
	}
	executor.logger.Error(
		executionFailureLogMessageConstant,
		zap.String(logFieldCommandConstant, describeCommand(command)),
		zap.Error(failure),
	)
}
