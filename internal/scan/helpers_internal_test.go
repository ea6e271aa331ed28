package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyWorkingCopy(testInstance *testing.T) {
	testCases := []struct {
		name                   string
		shortStatusOutput      string
		fullStatusOutput       string
		expectedClassification RepositoryClassification
	}{
		{
			name:                   "empty_short_status_without_ahead_marker_is_clean",
			shortStatusOutput:      "",
			fullStatusOutput:       "On branch main\nnothing to commit, working tree clean\n",
			expectedClassification: ClassificationClean,
		},
		{
			name:                   "whitespace_only_short_status_is_clean",
			shortStatusOutput:      "\n",
			fullStatusOutput:       "On branch main\nnothing to commit, working tree clean\n",
			expectedClassification: ClassificationClean,
		},
		{
			name:                   "ahead_marker_requires_push",
			shortStatusOutput:      "",
			fullStatusOutput:       "On branch main\nYour branch is ahead of 'origin/main' by 3 commits.\n",
			expectedClassification: ClassificationNeedsPush,
		},
		{
			name:                   "unstaged_changes_win_over_ahead_marker",
			shortStatusOutput:      " M cmd/cli/application.go\n",
			fullStatusOutput:       "On branch main\nYour branch is ahead of 'origin/main' by 1 commit.\n",
			expectedClassification: ClassificationUnstagedChanges,
		},
		{
			name:                   "untracked_files_count_as_unstaged",
			shortStatusOutput:      "?? scratch.txt\n",
			fullStatusOutput:       "On branch main\n",
			expectedClassification: ClassificationUnstagedChanges,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subtestInstance *testing.T) {
			classification := classifyWorkingCopy(testCase.shortStatusOutput, testCase.fullStatusOutput)
			require.Equal(subtestInstance, testCase.expectedClassification, classification)
		})
	}
}

func TestExtractBranchName(testInstance *testing.T) {
	testCases := []struct {
		name               string
		fullStatusOutput   string
		expectedBranchName string
	}{
		{
			name:               "branch_heading_yields_branch_name",
			fullStatusOutput:   "On branch feature/scanner\nnothing to commit\n",
			expectedBranchName: "feature/scanner",
		},
		{
			name:               "detached_head_yields_empty_name",
			fullStatusOutput:   "HEAD detached at 1a2b3c4\nnothing to commit\n",
			expectedBranchName: "",
		},
		{
			name:               "empty_output_yields_empty_name",
			fullStatusOutput:   "",
			expectedBranchName: "",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subtestInstance *testing.T) {
			require.Equal(subtestInstance, testCase.expectedBranchName, extractBranchName(testCase.fullStatusOutput))
		})
	}
}

func TestLoadIgnoredDirectoryNames(testInstance *testing.T) {
	testInstance.Run("missing_marker_yields_empty_set", func(subtestInstance *testing.T) {
		ignoredNames, loadError := loadIgnoredDirectoryNames(subtestInstance.TempDir(), DefaultIgnoreFileName)
		require.NoError(subtestInstance, loadError)
		require.Empty(subtestInstance, ignoredNames)
	})

	testInstance.Run("marker_directory_yields_empty_set", func(subtestInstance *testing.T) {
		rootDirectory := subtestInstance.TempDir()
		require.NoError(subtestInstance, os.Mkdir(filepath.Join(rootDirectory, DefaultIgnoreFileName), 0o755))

		ignoredNames, loadError := loadIgnoredDirectoryNames(rootDirectory, DefaultIgnoreFileName)
		require.NoError(subtestInstance, loadError)
		require.Empty(subtestInstance, ignoredNames)
	})

	testInstance.Run("entries_are_trimmed_and_blank_lines_dropped", func(subtestInstance *testing.T) {
		rootDirectory := subtestInstance.TempDir()
		markerContent := "  archived  \n\nvendor-mirror\n   \n"
		require.NoError(subtestInstance, os.WriteFile(filepath.Join(rootDirectory, DefaultIgnoreFileName), []byte(markerContent), 0o644))

		ignoredNames, loadError := loadIgnoredDirectoryNames(rootDirectory, DefaultIgnoreFileName)
		require.NoError(subtestInstance, loadError)
		require.Len(subtestInstance, ignoredNames, 2)
		require.Contains(subtestInstance, ignoredNames, "archived")
		require.Contains(subtestInstance, ignoredNames, "vendor-mirror")
	})
}
