package ui_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"checkrepos/internal/execshell"
	"checkrepos/internal/ui"
)

func newObservedEventLogger(testInstance *testing.T) (*ui.ConsoleCommandEventLogger, *observer.ObservedLogs) {
	testInstance.Helper()

	observedCore, observedLogs := observer.New(zap.InfoLevel)
	return ui.NewConsoleCommandEventLogger(zap.New(observedCore)), observedLogs
}

func statusCommandInDirectory(workingDirectory string, arguments ...string) execshell.ShellCommand {
	return execshell.ShellCommand{
		Name:    execshell.CommandGit,
		Details: execshell.CommandDetails{Arguments: arguments, WorkingDirectory: workingDirectory},
	}
}

func TestConsoleCommandEventLoggerDescribesStatusQueries(testInstance *testing.T) {
	eventLogger, observedLogs := newObservedEventLogger(testInstance)

	eventLogger.CommandStarted(statusCommandInDirectory("/projects/app", "status", "--short"))
	eventLogger.CommandCompleted(statusCommandInDirectory("/projects/app", "status"), execshell.ExecutionResult{})

	logEntries := observedLogs.All()
	require.Len(testInstance, logEntries, 2)
	require.Equal(testInstance, "Listing changed files in /projects/app", logEntries[0].Message)
	require.Equal(testInstance, zap.InfoLevel, logEntries[0].Level)
	require.Equal(testInstance, "Collected working tree status for /projects/app", logEntries[1].Message)
}

func TestConsoleCommandEventLoggerWarnsOnFailedCommands(testInstance *testing.T) {
	eventLogger, observedLogs := newObservedEventLogger(testInstance)

	failedResult := execshell.ExecutionResult{ExitCode: 128, StandardError: "fatal: not a git repository"}
	eventLogger.CommandCompleted(statusCommandInDirectory("/projects/broken", "status", "--short"), failedResult)

	logEntries := observedLogs.All()
	require.Len(testInstance, logEntries, 1)
	require.Equal(testInstance, zap.WarnLevel, logEntries[0].Level)
	require.Equal(testInstance, "Failed to list changed files in /projects/broken (exit code 128: fatal: not a git repository)", logEntries[0].Message)
}
