package scan

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	pathColorConstant     = lipgloss.Color("12")
	cleanColorConstant    = lipgloss.Color("10")
	pushColorConstant     = lipgloss.Color("11")
	unstagedColorConstant = lipgloss.Color("9")
	unknownColorConstant  = lipgloss.Color("9")
	summaryColorConstant  = lipgloss.Color("10")

	cleanMarkConstant            = "✓"
	unstagedMarkConstant         = "✗ Unstaged changes"
	requiresPushLabelConstant    = "- Requires push"
	statusUnknownMarkConstant    = "? Status unknown"
	pathSeparatorSuffixConstant  = ": "
	branchLabelSeparatorConstant = " - "
	listItemSeparatorConstant    = ", "
	checksCompletedLabelConstant = "Checks completed"
	unstagedSummaryTemplate      = "Unstaged changes: %d"
	pushSummaryTemplate          = "Requires push: %d"
	unknownSummaryTemplate       = "Status unknown: %d"
	allOkaySummaryTemplate       = "All %d repositories okay."
	partialOkaySummaryTemplate   = "%d/%d okay"
	reportLineTerminatorConstant = "\n"
)

// ReportingConfiguration controls which repositories are printed and how.
type ReportingConfiguration struct {
	Verbose        bool
	ColorEnabled   bool
	RecordBranches bool
}

// Reporter renders scan results for the console.
type Reporter struct {
	writer        io.Writer
	configuration ReportingConfiguration

	pathStyle     lipgloss.Style
	cleanStyle    lipgloss.Style
	pushStyle     lipgloss.Style
	unstagedStyle lipgloss.Style
	unknownStyle  lipgloss.Style
	summaryStyle  lipgloss.Style
}

// NewReporter constructs a Reporter writing to the provided destination.
func NewReporter(writer io.Writer, configuration ReportingConfiguration) *Reporter {
	reporter := &Reporter{writer: writer, configuration: configuration}
	if configuration.ColorEnabled {
		reporter.pathStyle = lipgloss.NewStyle().Bold(true).Foreground(pathColorConstant)
		reporter.cleanStyle = lipgloss.NewStyle().Bold(true).Foreground(cleanColorConstant)
		reporter.pushStyle = lipgloss.NewStyle().Bold(true).Foreground(pushColorConstant)
		reporter.unstagedStyle = lipgloss.NewStyle().Bold(true).Foreground(unstagedColorConstant)
		reporter.unknownStyle = lipgloss.NewStyle().Bold(true).Foreground(unknownColorConstant)
		reporter.summaryStyle = lipgloss.NewStyle().Bold(true).Foreground(summaryColorConstant)
	} else {
		plainStyle := lipgloss.NewStyle()
		reporter.pathStyle = plainStyle
		reporter.cleanStyle = plainStyle
		reporter.pushStyle = plainStyle
		reporter.unstagedStyle = plainStyle
		reporter.unknownStyle = plainStyle
		reporter.summaryStyle = plainStyle
	}
	return reporter
}

// Report prints per-repository lines followed by the summary block. Clean and
// push lines appear only in verbose mode; unstaged and unknown lines always
// print.
func (reporter *Reporter) Report(result ScanResult) {
	for _, repositoryStatus := range result.Repositories {
		switch repositoryStatus.Classification {
		case ClassificationClean:
			if reporter.configuration.Verbose {
				reporter.printRepositoryLine(repositoryStatus, reporter.cleanStyle, cleanMarkConstant)
			}
		case ClassificationNeedsPush:
			if reporter.configuration.Verbose {
				reporter.printRepositoryLine(repositoryStatus, reporter.pushStyle, requiresPushLabelConstant)
			}
		case ClassificationUnstagedChanges:
			reporter.printRepositoryLine(repositoryStatus, reporter.unstagedStyle, unstagedMarkConstant)
		case ClassificationUnknown:
			reporter.printRepositoryLine(repositoryStatus, reporter.unknownStyle, statusUnknownMarkConstant)
		}
	}

	reporter.printSummary(result)
}

func (reporter *Reporter) printRepositoryLine(repositoryStatus RepositoryStatus, statusStyle lipgloss.Style, statusLabel string) {
	line := reporter.pathStyle.Render(repositoryStatus.Path+pathSeparatorSuffixConstant) + statusStyle.Render(statusLabel)
	if reporter.configuration.RecordBranches && len(repositoryStatus.BranchName) > 0 {
		line += branchLabelSeparatorConstant + repositoryStatus.BranchName
	}
	reporter.printLine(line)
}

func (reporter *Reporter) printSummary(result ScanResult) {
	reporter.printLine(reporter.summaryStyle.Render(checksCompletedLabelConstant))

	if result.UnstagedCount > 0 {
		reporter.printLine(reporter.unstagedStyle.Render(fmt.Sprintf(unstagedSummaryTemplate, result.UnstagedCount)))
		if reporter.configuration.Verbose {
			reporter.printLine(reporter.unstagedStyle.Render(strings.Join(result.UnstagedList, listItemSeparatorConstant)))
		}
	}
	if result.PushCount > 0 {
		reporter.printLine(reporter.pushStyle.Render(fmt.Sprintf(pushSummaryTemplate, result.PushCount)))
		if reporter.configuration.Verbose {
			reporter.printLine(reporter.pushStyle.Render(strings.Join(result.PushList, listItemSeparatorConstant)))
		}
	}
	if result.ErrorCount > 0 {
		reporter.printLine(reporter.unknownStyle.Render(fmt.Sprintf(unknownSummaryTemplate, result.ErrorCount)))
		if reporter.configuration.Verbose {
			reporter.printLine(reporter.unknownStyle.Render(strings.Join(result.ErrorList, listItemSeparatorConstant)))
		}
	}

	totalRepositories := len(result.Repositories)
	if result.OkayCount == totalRepositories {
		reporter.printLine(reporter.summaryStyle.Render(fmt.Sprintf(allOkaySummaryTemplate, result.OkayCount)))
		return
	}
	reporter.printLine(reporter.pushStyle.Render(fmt.Sprintf(partialOkaySummaryTemplate, result.OkayCount, totalRepositories)))
}

func (reporter *Reporter) printLine(line string) {
	if reporter.writer == nil {
		return
	}
	fmt.Fprint(reporter.writer, line+reportLineTerminatorConstant)
}
