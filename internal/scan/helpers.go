package scan

import "strings"

const (
	gitStatusSubcommandConstant = "status"
	gitStatusShortFlagConstant  = "--short"
	branchAheadMarkerConstant   = "Your branch is ahead"
	branchHeadingPrefixConstant = "On branch "
	statusLineSeparatorConstant = "\n"
)

func shortStatusArguments() []string {
	return []string{gitStatusSubcommandConstant, gitStatusShortFlagConstant}
}

func fullStatusArguments() []string {
	return []string{gitStatusSubcommandConstant}
}

// classifyWorkingCopy derives the repository classification from the two
// status reports. Unstaged changes win over an unpushed branch.
func classifyWorkingCopy(shortStatusOutput string, fullStatusOutput string) RepositoryClassification {
	if len(strings.TrimSpace(shortStatusOutput)) > 0 {
		return ClassificationUnstagedChanges
	}
	if statusReportsBranchAhead(fullStatusOutput) {
		return ClassificationNeedsPush
	}
	return ClassificationClean
}

// statusReportsBranchAhead detects local commits that have not been pushed.
func statusReportsBranchAhead(fullStatusOutput string) bool {
	return strings.Contains(fullStatusOutput, branchAheadMarkerConstant)
}

// extractBranchName pulls the branch name from the status heading. Detached
// heads and unexpected headings yield an empty name rather than an error.
func extractBranchName(fullStatusOutput string) string {
	firstLine, _, _ := strings.Cut(fullStatusOutput, statusLineSeparatorConstant)
	if !strings.HasPrefix(firstLine, branchHeadingPrefixConstant) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(firstLine, branchHeadingPrefixConstant))
}
