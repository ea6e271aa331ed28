package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultIgnoreFileName is the per-root marker file listing directory names to skip.
	DefaultIgnoreFileName = ".check_ignore"

	ignoreFileStatErrorTemplateConstant = "unable to inspect ignore file %s: %w"
	ignoreFileReadErrorTemplateConstant = "unable to read ignore file %s: %w"
)

// loadIgnoredDirectoryNames reads the ignore marker inside rootDirectory and
// returns the set of directory names it lists. A missing marker or one that is
// not a regular file yields an empty set; any other read failure aborts the scan.
func loadIgnoredDirectoryNames(rootDirectory string, ignoreFileName string) (map[string]struct{}, error) {
	ignoreFilePath := filepath.Join(rootDirectory, ignoreFileName)

	fileInformation, statError := os.Stat(ignoreFilePath)
	if statError != nil {
		if errors.Is(statError, fs.ErrNotExist) {
			return map[string]struct{}{}, nil
		}
		return nil, fmt.Errorf(ignoreFileStatErrorTemplateConstant, ignoreFilePath, statError)
	}
	if !fileInformation.Mode().IsRegular() {
		return map[string]struct{}{}, nil
	}

	ignoreFileContent, readError := os.ReadFile(ignoreFilePath)
	if readError != nil {
		return nil, fmt.Errorf(ignoreFileReadErrorTemplateConstant, ignoreFilePath, readError)
	}

	ignoredDirectoryNames := map[string]struct{}{}
	for _, rawLine := range strings.Split(string(ignoreFileContent), statusLineSeparatorConstant) {
		trimmedLine := strings.TrimSpace(rawLine)
		if len(trimmedLine) == 0 {
			continue
		}
		ignoredDirectoryNames[trimmedLine] = struct{}{}
	}

	return ignoredDirectoryNames, nil
}
