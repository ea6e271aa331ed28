package execshell

// CommandEventObserver receives lifecycle notifications while a shell command runs.
type CommandEventObserver interface {
	// CommandStarted fires before the command process launches.
	CommandStarted(command ShellCommand)
	// CommandCompleted fires after the process exits and supplies the captured result.
	CommandCompleted(command ShellCommand, result ExecutionResult)
	// CommandExecutionFailed fires when the process could not produce an execution result.
	CommandExecutionFailed(command ShellCommand, failure error)
}

// discardingCommandEventObserver drops every notification. It backs executors without a registered observer.
type discardingCommandEventObserver struct{}

func (discardingCommandEventObserver) CommandStarted(ShellCommand) {}

func (discardingCommandEventObserver) CommandCompleted(ShellCommand, ExecutionResult) {}

func (discardingCommandEventObserver) CommandExecutionFailed(ShellCommand, error) {}
