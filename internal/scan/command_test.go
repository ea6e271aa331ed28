package scan_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"checkrepos/internal/scan"
	"checkrepos/internal/utils/flags"
)

func createFakeRepository(testInstance *testing.T, rootDirectory string, repositoryName string) string {
	testInstance.Helper()

	repositoryPath := filepath.Join(rootDirectory, repositoryName)
	require.NoError(testInstance, os.MkdirAll(filepath.Join(repositoryPath, ".git"), 0o755))
	return repositoryPath
}

func executeScanCommand(testInstance *testing.T, builder *scan.CommandBuilder, arguments []string) (string, error) {
	testInstance.Helper()

	outputBuffer := &bytes.Buffer{}
	builder.OutputWriter = outputBuffer

	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	command.SetArgs(arguments)
	command.SetOut(outputBuffer)
	command.SetErr(outputBuffer)
	executionError := command.Execute()

	return outputBuffer.String(), executionError
}

func TestScanCommandReportsDiscoveredRepositories(testInstance *testing.T) {
	rootDirectory := testInstance.TempDir()
	cleanRepository := createFakeRepository(testInstance, rootDirectory, cleanRepositoryName)
	unstagedRepository := createFakeRepository(testInstance, rootDirectory, unstagedRepositoryName)

	executor := &stubGitExecutor{outputs: map[string]repositoryStatusOutputs{
		cleanRepository:    {fullStatus: cleanFullStatusConstant},
		unstagedRepository: {shortStatus: unstagedShortStatus, fullStatus: unstagedFullStatusConstant},
	}}

	builder := &scan.CommandBuilder{Executor: executor}
	commandOutput, executionError := executeScanCommand(testInstance, builder, []string{"--color=no", rootDirectory})
	require.NoError(testInstance, executionError)

	require.Contains(testInstance, commandOutput, unstagedRepository+": ✗ Unstaged changes")
	require.NotContains(testInstance, commandOutput, cleanRepository+": ✓")
	require.Contains(testInstance, commandOutput, "Checks completed")
	require.Contains(testInstance, commandOutput, "Unstaged changes: 1")
	require.Contains(testInstance, commandOutput, "1/2 okay")
}

func TestScanCommandVerboseFlagPrintsCleanRepositories(testInstance *testing.T) {
	rootDirectory := testInstance.TempDir()
	cleanRepository := createFakeRepository(testInstance, rootDirectory, cleanRepositoryName)

	executor := &stubGitExecutor{outputs: map[string]repositoryStatusOutputs{
		cleanRepository: {fullStatus: cleanFullStatusConstant},
	}}

	builder := &scan.CommandBuilder{Executor: executor}
	commandOutput, executionError := executeScanCommand(testInstance, builder, []string{"--color=no", "--verbose", "--branch", rootDirectory})
	require.NoError(testInstance, executionError)

	require.Contains(testInstance, commandOutput, cleanRepository+": ✓ - main")
	require.Contains(testInstance, commandOutput, "All 1 repositories okay.")
}

func TestScanCommandBareVerboseShorthandKeepsRootPositional(testInstance *testing.T) {
	rootDirectory := testInstance.TempDir()
	cleanRepository := createFakeRepository(testInstance, rootDirectory, cleanRepositoryName)

	executor := &stubGitExecutor{outputs: map[string]repositoryStatusOutputs{
		cleanRepository: {fullStatus: cleanFullStatusConstant},
	}}

	builder := &scan.CommandBuilder{Executor: executor}
	arguments := flags.NormalizeToggleArguments([]string{"--color=no", "-v", rootDirectory})
	commandOutput, executionError := executeScanCommand(testInstance, builder, arguments)
	require.NoError(testInstance, executionError)

	require.Contains(testInstance, commandOutput, cleanRepository+": ✓")
	require.Contains(testInstance, commandOutput, "All 1 repositories okay.")
}

func TestScanCommandConfigurationDefaultsApplyWithoutFlags(testInstance *testing.T) {
	rootDirectory := testInstance.TempDir()
	cleanRepository := createFakeRepository(testInstance, rootDirectory, cleanRepositoryName)

	executor := &stubGitExecutor{outputs: map[string]repositoryStatusOutputs{
		cleanRepository: {fullStatus: cleanFullStatusConstant},
	}}
	configurationProvider := func() scan.CommandConfiguration {
		return scan.CommandConfiguration{
			Roots:          []string{rootDirectory},
			Verbose:        true,
			ColorEnabled:   false,
			IgnoreFileName: scan.DefaultIgnoreFileName,
		}
	}

	builder := &scan.CommandBuilder{Executor: executor, ConfigurationProvider: configurationProvider}
	commandOutput, executionError := executeScanCommand(testInstance, builder, nil)
	require.NoError(testInstance, executionError)

	require.Contains(testInstance, commandOutput, cleanRepository+": ✓")
}

func TestScanCommandFlagOverridesDisableConfiguredVerbose(testInstance *testing.T) {
	rootDirectory := testInstance.TempDir()
	cleanRepository := createFakeRepository(testInstance, rootDirectory, cleanRepositoryName)

	executor := &stubGitExecutor{outputs: map[string]repositoryStatusOutputs{
		cleanRepository: {fullStatus: cleanFullStatusConstant},
	}}
	configurationProvider := func() scan.CommandConfiguration {
		return scan.CommandConfiguration{
			Roots:        []string{rootDirectory},
			Verbose:      true,
			ColorEnabled: false,
		}
	}

	builder := &scan.CommandBuilder{Executor: executor, ConfigurationProvider: configurationProvider}
	commandOutput, executionError := executeScanCommand(testInstance, builder, []string{"--verbose=no"})
	require.NoError(testInstance, executionError)

	require.NotContains(testInstance, commandOutput, cleanRepository+": ✓")
	require.Contains(testInstance, commandOutput, "All 1 repositories okay.")
}

func TestScanCommandCustomIgnoreFileFlag(testInstance *testing.T) {
	rootDirectory := testInstance.TempDir()
	cleanRepository := createFakeRepository(testInstance, rootDirectory, cleanRepositoryName)
	createFakeRepository(testInstance, rootDirectory, ignoredRepositoryName)
	ignoreFilePath := filepath.Join(rootDirectory, "custom_ignore")
	require.NoError(testInstance, os.WriteFile(ignoreFilePath, []byte(ignoredRepositoryName+"\n"), 0o644))

	executor := &stubGitExecutor{outputs: map[string]repositoryStatusOutputs{
		cleanRepository: {fullStatus: cleanFullStatusConstant},
	}}

	builder := &scan.CommandBuilder{Executor: executor}
	commandOutput, executionError := executeScanCommand(testInstance, builder, []string{"--color=no", "--ignore-file", "custom_ignore", rootDirectory})
	require.NoError(testInstance, executionError)

	require.Contains(testInstance, commandOutput, "All 1 repositories okay.")
}

func TestScanCommandFailsForMissingRoot(testInstance *testing.T) {
	missingRoot := filepath.Join(testInstance.TempDir(), "absent")

	builder := &scan.CommandBuilder{Executor: &stubGitExecutor{outputs: map[string]repositoryStatusOutputs{}}}
	_, executionError := executeScanCommand(testInstance, builder, []string{missingRoot})

	var notFoundError scan.DirectoryNotFoundError
	require.ErrorAs(testInstance, executionError, &notFoundError)
	require.Equal(testInstance, missingRoot, notFoundError.Path)
}
