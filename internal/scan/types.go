package scan

import (
	"context"
	"fmt"

	"checkrepos/internal/execshell"
)

const directoryNotFoundTemplateConstant = "directory does not exist at %s"

// RepositoryClassification identifies the working tree state of a repository.
type RepositoryClassification string

// Repository classifications reported by the scanner.
const (
	ClassificationClean           RepositoryClassification = "clean"
	ClassificationNeedsPush       RepositoryClassification = "needs_push"
	ClassificationUnstagedChanges RepositoryClassification = "unstaged_changes"
	ClassificationUnknown         RepositoryClassification = "unknown"
)

// RepositoryStatus captures the scan outcome for a single repository.
type RepositoryStatus struct {
	Path           string
	Classification RepositoryClassification
	BranchName     string
	FailureReason  string
}

// ScanOptions configures a single scan run.
type ScanOptions struct {
	Roots          []string
	IgnoreFileName string
	RecordBranches bool
}

// ScanResult aggregates the outcome of a scan across every queried repository.
type ScanResult struct {
	Repositories  []RepositoryStatus
	OkayCount     int
	PushCount     int
	UnstagedCount int
	ErrorCount    int
	IgnoredCount  int
	PushList      []string
	UnstagedList  []string
	ErrorList     []string
}

// DirectoryNotFoundError reports a scan root that does not exist on disk.
type DirectoryNotFoundError struct {
	Path string
}

// Error renders the missing directory message.
func (failure DirectoryNotFoundError) Error() string {
	return fmt.Sprintf(directoryNotFoundTemplateConstant, failure.Path)
}

// RepositoryDiscoverer locates git working copies beneath the provided roots.
type RepositoryDiscoverer interface {
	DiscoverRepositories(roots []string) ([]string, error)
}

// GitExecutor runs git commands and returns their captured output.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}
