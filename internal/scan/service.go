package scan

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"checkrepos/internal/execshell"
	"checkrepos/internal/repos/discovery"
)

const (
	executorNotConfiguredMessageConstant = "scan service requires a git executor"
	currentDirectoryRootConstant         = "."

	scanIdentifierLogFieldConstant        = "scan_id"
	rootLogFieldConstant                  = "root"
	repositoryLogFieldConstant            = "repository"
	classificationLogFieldConstant        = "classification"
	discoveredCountLogFieldConstant       = "discovered"
	ignoredCountLogFieldConstant          = "ignored"
	discoveredRepositoriesMessageConstant = "discovered repositories"
	repositoryClassifiedMessageConstant   = "repository classified"
	repositoryQueryFailedMessageConstant  = "repository status query failed"
)

// ErrExecutorNotConfigured is returned when NewService receives no git executor.
var ErrExecutorNotConfigured = errors.New(executorNotConfiguredMessageConstant)

// Service coordinates repository discovery, ignore filtering, and classification.
type Service struct {
	logger     *zap.Logger
	discoverer RepositoryDiscoverer
	executor   GitExecutor
}

// NewService constructs a Service. The discoverer defaults to the filesystem
// walker when nil; the executor is required.
func NewService(logger *zap.Logger, discoverer RepositoryDiscoverer, executor GitExecutor) (*Service, error) {
	if executor == nil {
		return nil, ErrExecutorNotConfigured
	}

	resolvedLogger := logger
	if resolvedLogger == nil {
		resolvedLogger = zap.NewNop()
	}

	resolvedDiscoverer := discoverer
	if resolvedDiscoverer == nil {
		resolvedDiscoverer = discovery.NewFilesystemRepositoryDiscoverer()
	}

	return &Service{logger: resolvedLogger, discoverer: resolvedDiscoverer, executor: executor}, nil
}

// Run scans every root sequentially and aggregates per-repository outcomes.
// All roots are validated before the first git query runs.
func (service *Service) Run(executionContext context.Context, options ScanOptions) (ScanResult, error) {
	scanRoots := options.Roots
	if len(scanRoots) == 0 {
		scanRoots = []string{currentDirectoryRootConstant}
	}

	ignoreFileName := options.IgnoreFileName
	if len(ignoreFileName) == 0 {
		ignoreFileName = DefaultIgnoreFileName
	}

	for _, rootDirectory := range scanRoots {
		rootInformation, statError := os.Stat(rootDirectory)
		if statError != nil || !rootInformation.IsDir() {
			return ScanResult{}, DirectoryNotFoundError{Path: rootDirectory}
		}
	}

	scanLogger := service.logger.With(zap.String(scanIdentifierLogFieldConstant, uuid.NewString()))

	result := ScanResult{}
	visitedRepositories := map[string]struct{}{}

	for _, rootDirectory := range scanRoots {
		ignoredDirectoryNames, ignoreError := loadIgnoredDirectoryNames(rootDirectory, ignoreFileName)
		if ignoreError != nil {
			return ScanResult{}, ignoreError
		}

		repositoryPaths, discoveryError := service.discoverer.DiscoverRepositories([]string{rootDirectory})
		if discoveryError != nil {
			return ScanResult{}, discoveryError
		}

		includedRepositories := make([]string, 0, len(repositoryPaths))
		ignoredRepositoryCount := 0
		for _, repositoryPath := range repositoryPaths {
			if _, alreadyVisited := visitedRepositories[repositoryPath]; alreadyVisited {
				continue
			}
			visitedRepositories[repositoryPath] = struct{}{}

			if _, ignored := ignoredDirectoryNames[filepath.Base(repositoryPath)]; ignored {
				ignoredRepositoryCount++
				continue
			}
			includedRepositories = append(includedRepositories, repositoryPath)
		}
		result.IgnoredCount += ignoredRepositoryCount

		scanLogger.Debug(discoveredRepositoriesMessageConstant,
			zap.String(rootLogFieldConstant, rootDirectory),
			zap.Int(discoveredCountLogFieldConstant, len(includedRepositories)),
			zap.Int(ignoredCountLogFieldConstant, ignoredRepositoryCount),
		)

		for _, repositoryPath := range includedRepositories {
			repositoryStatus := service.classifyRepository(executionContext, scanLogger, repositoryPath, options.RecordBranches)
			result.Repositories = append(result.Repositories, repositoryStatus)

			switch repositoryStatus.Classification {
			case ClassificationClean:
				result.OkayCount++
			case ClassificationNeedsPush:
				result.PushCount++
				result.PushList = append(result.PushList, repositoryStatus.Path)
			case ClassificationUnstagedChanges:
				result.UnstagedCount++
				result.UnstagedList = append(result.UnstagedList, repositoryStatus.Path)
			case ClassificationUnknown:
				result.ErrorCount++
				result.ErrorList = append(result.ErrorList, repositoryStatus.Path)
			}
		}
	}

	return result, nil
}

// classifyRepository runs the two read-only status queries for one repository.
// A failing query records the repository as unknown without aborting the scan.
func (service *Service) classifyRepository(executionContext context.Context, scanLogger *zap.Logger, repositoryPath string, recordBranches bool) RepositoryStatus {
	shortStatusResult, shortStatusError := service.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        shortStatusArguments(),
		WorkingDirectory: repositoryPath,
	})
	if shortStatusError != nil {
		return service.unknownStatus(scanLogger, repositoryPath, shortStatusError)
	}

	fullStatusResult, fullStatusError := service.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        fullStatusArguments(),
		WorkingDirectory: repositoryPath,
	})
	if fullStatusError != nil {
		return service.unknownStatus(scanLogger, repositoryPath, fullStatusError)
	}

	repositoryStatus := RepositoryStatus{
		Path:           repositoryPath,
		Classification: classifyWorkingCopy(shortStatusResult.StandardOutput, fullStatusResult.StandardOutput),
	}
	if recordBranches {
		repositoryStatus.BranchName = extractBranchName(fullStatusResult.StandardOutput)
	}

	scanLogger.Debug(repositoryClassifiedMessageConstant,
		zap.String(repositoryLogFieldConstant, repositoryPath),
		zap.String(classificationLogFieldConstant, string(repositoryStatus.Classification)),
	)

	return repositoryStatus
}

func (service *Service) unknownStatus(scanLogger *zap.Logger, repositoryPath string, queryError error) RepositoryStatus {
	scanLogger.Warn(repositoryQueryFailedMessageConstant,
		zap.String(repositoryLogFieldConstant, repositoryPath),
		zap.Error(queryError),
	)

	return RepositoryStatus{
		Path:           repositoryPath,
		Classification: ClassificationUnknown,
		FailureReason:  queryError.Error(),
	}
}
