package flags_test

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"checkrepos/internal/utils/flags"
)

const (
	toggleFlagNameConstant      = "verbose-toggle"
	toggleFlagShorthandConstant = "V"
	toggleFlagUsageConstant     = "print every repository"
)

func newToggleFlagSet(testInstance *testing.T, defaultValue bool) (*pflag.FlagSet, *bool) {
	testInstance.Helper()

	flagSet := pflag.NewFlagSet("toggle-test", pflag.ContinueOnError)
	target := new(bool)
	flags.AddToggleFlag(flagSet, target, toggleFlagNameConstant, toggleFlagShorthandConstant, defaultValue, toggleFlagUsageConstant)
	return flagSet, target
}

func TestAddToggleFlagParsesLiteralValues(testInstance *testing.T) {
	testCases := []struct {
		name          string
		arguments     []string
		expectedValue bool
		expectError   bool
	}{
		{name: "yes_literal", arguments: []string{"--verbose-toggle=yes"}, expectedValue: true},
		{name: "no_literal", arguments: []string{"--verbose-toggle=no"}, expectedValue: false},
		{name: "on_literal", arguments: []string{"--verbose-toggle=on"}, expectedValue: true},
		{name: "off_literal", arguments: []string{"--verbose-toggle=off"}, expectedValue: false},
		{name: "bare_flag_defaults_true", arguments: []string{"--verbose-toggle"}, expectedValue: true},
		{name: "numeric_literal", arguments: []string{"--verbose-toggle=1"}, expectedValue: true},
		{name: "unsupported_literal", arguments: []string{"--verbose-toggle=maybe"}, expectError: true},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subtestInstance *testing.T) {
			flagSet, target := newToggleFlagSet(subtestInstance, false)

			parseError := flagSet.Parse(testCase.arguments)
			if testCase.expectError {
				require.Error(subtestInstance, parseError)
				return
			}
			require.NoError(subtestInstance, parseError)
			require.Equal(subtestInstance, testCase.expectedValue, *target)
		})
	}
}

func TestAddToggleFlagAppliesDefaultValue(testInstance *testing.T) {
	_, target := newToggleFlagSet(testInstance, true)
	require.True(testInstance, *target)
}

func TestNormalizeToggleArgumentsAttachesDetachedValues(testInstance *testing.T) {
	flagSet, target := newToggleFlagSet(testInstance, true)

	normalizedArguments := flags.NormalizeToggleArguments([]string{"--verbose-toggle", "no", "extra-positional"})
	require.Equal(testInstance, []string{"--verbose-toggle=no", "extra-positional"}, normalizedArguments)

	require.NoError(testInstance, flagSet.Parse(normalizedArguments))
	require.False(testInstance, *target)
	require.Equal(testInstance, []string{"extra-positional"}, flagSet.Args())
}

func TestNormalizeToggleArgumentsKeepsPositionalAfterBareToggle(testInstance *testing.T) {
	flagSet, target := newToggleFlagSet(testInstance, false)

	normalizedArguments := flags.NormalizeToggleArguments([]string{"--verbose-toggle", "/home/developer/projects"})
	require.Equal(testInstance, []string{"--verbose-toggle", "/home/developer/projects"}, normalizedArguments)

	require.NoError(testInstance, flagSet.Parse(normalizedArguments))
	require.True(testInstance, *target)
	require.Equal(testInstance, []string{"/home/developer/projects"}, flagSet.Args())
}

func TestNormalizeToggleArgumentsKeepsPositionalAfterBareShorthand(testInstance *testing.T) {
	flagSet, target := newToggleFlagSet(testInstance, false)

	normalizedArguments := flags.NormalizeToggleArguments([]string{"scan", "-V", "/home/developer/projects"})
	require.Equal(testInstance, []string{"scan", "-V", "/home/developer/projects"}, normalizedArguments)

	require.NoError(testInstance, flagSet.Parse(normalizedArguments))
	require.True(testInstance, *target)
	require.Equal(testInstance, []string{"scan", "/home/developer/projects"}, flagSet.Args())
}

func TestNormalizeToggleArgumentsStopsAtTerminator(testInstance *testing.T) {
	newToggleFlagSet(testInstance, false)

	normalizedArguments := flags.NormalizeToggleArguments([]string{"--", "--verbose-toggle", "no"})
	require.Equal(testInstance, []string{"--", "--verbose-toggle", "no"}, normalizedArguments)
}

func TestNormalizeToggleArgumentsLeavesUnknownFlagsUntouched(testInstance *testing.T) {
	newToggleFlagSet(testInstance, false)

	normalizedArguments := flags.NormalizeToggleArguments([]string{"--other-flag", "value"})
	require.Equal(testInstance, []string{"--other-flag", "value"}, normalizedArguments)
}
