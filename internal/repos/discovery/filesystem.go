package discovery

import (
	"io/fs"
	"path/filepath"
	"sort"
)

const gitMetadataEntryNameConstant = ".git"

// FilesystemRepositoryDiscoverer locates git working copies on disk.
type FilesystemRepositoryDiscoverer struct{}

// NewFilesystemRepositoryDiscoverer constructs a repository discoverer backed by filepath.WalkDir.
func NewFilesystemRepositoryDiscoverer() *FilesystemRepositoryDiscoverer {
	return &FilesystemRepositoryDiscoverer{}
}

// DiscoverRepositories walks the provided roots and returns the sorted set of
// directories containing a .git entry. A .git regular file counts as well so
// linked worktrees are discovered alongside ordinary clones.
func (discoverer *FilesystemRepositoryDiscoverer) DiscoverRepositories(roots []string) ([]string, error) {
	seenRepositories := make(map[string]struct{})
	var repositoryPaths []string

	for _, rootDirectory := range roots {
		walkError := filepath.WalkDir(rootDirectory, func(candidatePath string, directoryEntry fs.DirEntry, entryError error) error {
			if entryError != nil {
				return nil
			}

			if directoryEntry.Name() != gitMetadataEntryNameConstant {
				return nil
			}

			repositoryPath := filepath.Dir(candidatePath)
			if _, alreadySeen := seenRepositories[repositoryPath]; !alreadySeen {
				seenRepositories[repositoryPath] = struct{}{}
				repositoryPaths = append(repositoryPaths, repositoryPath)
			}

			if directoryEntry.IsDir() {
				return fs.SkipDir
			}
			return nil
		})
		if walkError != nil {
			return nil, walkError
		}
	}

	sort.Strings(repositoryPaths)
	return repositoryPaths, nil
}
