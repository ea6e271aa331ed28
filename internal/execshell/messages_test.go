package execshell

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildStartedMessageForShortStatusNamesRepository(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name: CommandGit,
		Details: CommandDetails{
			Arguments:        []string{"status", "--short"},
			WorkingDirectory: "/workspace/repo",
		},
	}

	message := formatter.BuildStartedMessage(command)

	require.Equal(t, "Listing changed files in /workspace/repo", message)
}

func TestBuildFailureMessageForFullStatusIncludesExitCodeAndStandardError(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name: CommandGit,
		Details: CommandDetails{
			Arguments:        []string{"status"},
			WorkingDirectory: "/workspace/repo",
		},
	}
	result := ExecutionResult{ExitCode: 128, StandardError: "fatal: not a git repository"}

	message := formatter.BuildFailureMessage(command, result)

	require.Equal(t, "Failed to review working tree status in /workspace/repo (exit code 128: fatal: not a git repository)", message)
}

func TestBuildStartedMessageWithoutWorkingDirectoryUsesCurrentDirectoryLabel(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name:    CommandGit,
		Details: CommandDetails{Arguments: []string{"status"}},
	}

	message := formatter.BuildStartedMessage(command)

	require.Equal(t, "Reviewing working tree status in current directory", message)
}
