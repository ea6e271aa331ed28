package pathutils

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ScanRootSanitizer normalizes scan root inputs before repository discovery runs.
//
// Sanitization trims whitespace, expands home directory shortcuts, drops empty
// entries, and prunes roots nested inside other provided roots so the same
// repository is never visited through two overlapping walks.
type ScanRootSanitizer struct {
	homeExpander *HomeExpander
}

// NewScanRootSanitizer constructs a ScanRootSanitizer with operating system home lookup.
func NewScanRootSanitizer() *ScanRootSanitizer {
	return NewScanRootSanitizerWithExpander(nil)
}

// NewScanRootSanitizerWithExpander constructs a ScanRootSanitizer using the provided expander.
func NewScanRootSanitizerWithExpander(homeExpander *HomeExpander) *ScanRootSanitizer {
	resolvedExpander := homeExpander
	if resolvedExpander == nil {
		resolvedExpander = NewHomeExpander()
	}
	return &ScanRootSanitizer{homeExpander: resolvedExpander}
}

// Sanitize returns the cleaned scan roots in their original order.
func (sanitizer *ScanRootSanitizer) Sanitize(candidateRoots []string) []string {
	expander := NewHomeExpander()
	if sanitizer != nil && sanitizer.homeExpander != nil {
		expander = sanitizer.homeExpander
	}

	expandedRoots := make([]string, 0, len(candidateRoots))
	for candidateIndex := range candidateRoots {
		trimmedCandidate := strings.TrimSpace(candidateRoots[candidateIndex])
		if len(trimmedCandidate) == 0 {
			continue
		}

		expandedRoot := expander.Expand(trimmedCandidate)
		if len(expandedRoot) == 0 {
			continue
		}

		expandedRoots = append(expandedRoots, expandedRoot)
	}

	if len(expandedRoots) == 0 {
		return nil
	}

	return pruneNestedRoots(expandedRoots)
}

func pruneNestedRoots(candidateRoots []string) []string {
	type rootDetails struct {
		originalIndex int
		value         string
		canonical     string
	}

	detailedRoots := make([]rootDetails, 0, len(candidateRoots))
	for index := range candidateRoots {
		detailedRoots = append(detailedRoots, rootDetails{
			originalIndex: index,
			value:         candidateRoots[index],
			canonical:     canonicalizeRoot(candidateRoots[index]),
		})
	}

	sort.SliceStable(detailedRoots, func(first int, second int) bool {
		firstLength := len(detailedRoots[first].canonical)
		secondLength := len(detailedRoots[second].canonical)
		if firstLength == secondLength {
			return detailedRoots[first].canonical < detailedRoots[second].canonical
		}
		return firstLength < secondLength
	})

	selectedRoots := make([]rootDetails, 0, len(detailedRoots))
	for _, candidate := range detailedRoots {
		nested := false
		for _, existing := range selectedRoots {
			if isNestedRoot(existing.canonical, candidate.canonical) {
				nested = true
				break
			}
		}
		if !nested {
			selectedRoots = append(selectedRoots, candidate)
		}
	}

	sort.SliceStable(selectedRoots, func(first int, second int) bool {
		return selectedRoots[first].originalIndex < selectedRoots[second].originalIndex
	})

	prunedRoots := make([]string, 0, len(selectedRoots))
	for _, candidate := range selectedRoots {
		prunedRoots = append(prunedRoots, candidate.value)
	}

	return prunedRoots
}

func canonicalizeRoot(root string) string {
	cleanedRoot := filepath.Clean(root)
	absoluteRoot, absoluteError := filepath.Abs(cleanedRoot)
	if absoluteError != nil {
		return cleanedRoot
	}
	return filepath.Clean(absoluteRoot)
}

func isNestedRoot(parentRoot string, candidateRoot string) bool {
	if candidateRoot == parentRoot {
		return true
	}
	if len(candidateRoot) <= len(parentRoot) {
		return false
	}
	if !strings.HasPrefix(candidateRoot, parentRoot) {
		return false
	}
	return candidateRoot[len(parentRoot)] == os.PathSeparator
}
