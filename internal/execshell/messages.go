package execshell

import (
	"fmt"
	"strings"
)

type messageStage int

const (
	messageStageStart messageStage = iota
	messageStageSuccess
	messageStageFailure
	messageStageExecutionFailure
)

const (
	genericStartTemplateConstant            = "Running %s"
	genericSuccessTemplateConstant          = "Completed %s"
	genericFailureTemplateConstant          = "%s failed with exit code %d%s"
	genericExecutionFailureTemplateConstant = "%s failed: %s"
	standardErrorSuffixTemplateConstant     = ": %s"
	unknownFailureMessageConstant           = "unknown error"
	emptyStringConstant                     = ""
	defaultWorkingDirectoryLabelConstant    = "current directory"
)

const (
	gitStatusSubcommandNameConstant = "status"
	gitStatusShortFlagConstant      = "--short"
)

const (
	gitShortStatusStartTemplateConstant            = "Listing changed files in %s"
	gitShortStatusSuccessTemplateConstant          = "Listed changed files in %s"
	gitShortStatusFailureTemplateConstant          = "Failed to list changed files in %s (exit code %d%s)"
	gitShortStatusExecutionFailureTemplateConstant = "Unable to list changed files in %s: %s"
	gitFullStatusStartTemplateConstant             = "Reviewing working tree status in %s"
	gitFullStatusSuccessTemplateConstant           = "Collected working tree status for %s"
	gitFullStatusFailureTemplateConstant           = "Failed to review working tree status in %s (exit code %d%s)"
	gitFullStatusExecutionFailureTemplateConstant  = "Unable to review working tree status in %s: %s"
)

// CommandMessageFormatter builds human-readable messages for command lifecycle events.
type CommandMessageFormatter struct{}

// BuildStartedMessage formats the message describing a command about to run.
func (formatter CommandMessageFormatter) BuildStartedMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageStart)
}

// BuildSuccessMessage formats the message describing a completed command with a zero exit code.
func (formatter CommandMessageFormatter) BuildSuccessMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageSuccess)
}

// BuildFailureMessage formats the message describing a command that returned a non-zero exit code.
func (formatter CommandMessageFormatter) BuildFailureMessage(command ShellCommand, result ExecutionResult) string {
	return formatter.buildMessage(command, result, nil, messageStageFailure)
}

// BuildExecutionFailureMessage formats the message describing an unexpected execution failure.
func (formatter CommandMessageFormatter) BuildExecutionFailureMessage(command ShellCommand, failure error) string {
	return formatter.buildMessage(command, ExecutionResult{}, failure, messageStageExecutionFailure)
}

func (formatter CommandMessageFormatter) buildMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	if command.Name == CommandGit && len(command.Details.Arguments) > 0 {
		subcommand := strings.TrimSpace(command.Details.Arguments[0])
		if subcommand == gitStatusSubcommandNameConstant {
			return formatter.describeGitStatusMessage(command, result, failure, stage)
		}
	}
	return formatter.buildGenericMessage(command, result, failure, stage)
}

func (formatter CommandMessageFormatter) describeGitStatusMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	workingDirectory := formatter.describeWorkingDirectory(command)

	if containsArgument(command.Details.Arguments, gitStatusShortFlagConstant) {
		switch stage {
		case messageStageStart:
			return fmt.Sprintf(gitShortStatusStartTemplateConstant, workingDirectory)
		case messageStageSuccess:
			return fmt.Sprintf(gitShortStatusSuccessTemplateConstant, workingDirectory)
		case messageStageFailure:
			return fmt.Sprintf(gitShortStatusFailureTemplateConstant, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
		case messageStageExecutionFailure:
			return fmt.Sprintf(gitShortStatusExecutionFailureTemplateConstant, workingDirectory, formatter.describeFailure(failure))
		}
	}

	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitFullStatusStartTemplateConstant, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(gitFullStatusSuccessTemplateConstant, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(gitFullStatusFailureTemplateConstant, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(gitFullStatusExecutionFailureTemplateConstant, workingDirectory, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) buildGenericMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	commandLabel := describeCommand(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(genericStartTemplateConstant, commandLabel)
	case messageStageSuccess:
		return fmt.Sprintf(genericSuccessTemplateConstant, commandLabel)
	case messageStageFailure:
		return fmt.Sprintf(genericFailureTemplateConstant, commandLabel, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(genericExecutionFailureTemplateConstant, commandLabel, formatter.describeFailure(failure))
	default:
		return emptyStringConstant
	}
}

func (formatter CommandMessageFormatter) formatStandardErrorSuffix(standardError string) string {
	trimmedStandardError := strings.TrimSpace(standardError)
	if len(trimmedStandardError) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(standardErrorSuffixTemplateConstant, trimmedStandardError)
}

func (formatter CommandMessageFormatter) describeWorkingDirectory(command ShellCommand) string {
	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return defaultWorkingDirectoryLabelConstant
	}
	return trimmedWorkingDirectory
}

func (formatter CommandMessageFormatter) describeFailure(failure error) string {
	if failure == nil {
		return unknownFailureMessageConstant
	}
	return failure.Error()
}

func containsArgument(arguments []string, value string) bool {
	for _, argument := range arguments {
		if strings.TrimSpace(argument) == value {
			return true
		}
	}
	return false
}
