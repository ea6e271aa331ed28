package flags

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/pflag"
)

const (
	toggleTrueCanonicalValue  = "true"
	toggleFalseCanonicalValue = "false"
	toggleYesLiteral          = "yes"
	toggleNoLiteral           = "no"
	toggleOnLiteral           = "on"
	toggleOffLiteral          = "off"
	toggleOneLiteral          = "1"
	toggleZeroLiteral         = "0"
	toggleParseErrorTemplate  = "invalid toggle value %q"
	toggleUsagePlaceholder    = "<yes|no>"
	longFlagPrefixConstant    = "--"
	shortFlagPrefixConstant   = "-"
	flagValueSeparator        = "="
	argumentTerminator        = "--"
)

var (
	trueLiteralSet = map[string]struct{}{
		toggleTrueCanonicalValue: {},
		toggleYesLiteral:         {},
		toggleOnLiteral:          {},
		toggleOneLiteral:         {},
	}
	falseLiteralSet = map[string]struct{}{
		toggleFalseCanonicalValue: {},
		toggleNoLiteral:           {},
		toggleOffLiteral:          {},
		toggleZeroLiteral:         {},
	}

	toggleFlagRegistryMutex sync.RWMutex
	toggleFlagNames         = map[string]struct{}{}
	toggleFlagShorthands    = map[string]struct{}{}
)

// AddToggleFlag registers a boolean flag that additionally accepts yes/no and on/off literals.
func AddToggleFlag(flagSet *pflag.FlagSet, target *bool, name string, shorthand string, defaultValue bool, usage string) {
	if flagSet == nil || len(name) == 0 {
		return
	}

	toggleValue := newToggleFlagValue(defaultValue, target)
	if len(shorthand) > 0 {
		flagSet.VarP(toggleValue, name, shorthand, usage)
	} else {
		flagSet.Var(toggleValue, name, usage)
	}

	registeredFlag := flagSet.Lookup(name)
	if registeredFlag == nil {
		return
	}
	registeredFlag.NoOptDefVal = toggleTrueCanonicalValue
	registeredFlag.Usage = formatToggleUsage(usage)

	registerToggleFlag(name, shorthand)
}

func formatToggleUsage(description string) string {
	trimmedDescription := strings.TrimSpace(description)
	if len(trimmedDescription) == 0 {
		return fmt.Sprintf("`%s`", toggleUsagePlaceholder)
	}
	return fmt.Sprintf("`%s` %s", toggleUsagePlaceholder, trimmedDescription)
}

// NormalizeToggleArguments rewrites "--flag value" into "--flag=value" for
// registered toggle flags so pflag parses the detached value. Only recognized
// toggle literals are folded; any other trailing argument stays positional so
// invocations like "scan -v <root>" keep their root directory.
func NormalizeToggleArguments(arguments []string) []string {
	if len(arguments) == 0 {
		return nil
	}

	normalizedArguments := make([]string, 0, len(arguments))
	argumentIndex := 0
	for argumentIndex < len(arguments) {
		currentArgument := arguments[argumentIndex]
		if currentArgument == argumentTerminator {
			normalizedArguments = append(normalizedArguments, arguments[argumentIndex:]...)
			break
		}

		if flagName, isToggle := toggleFlagIdentifier(currentArgument); isToggle && len(flagName) > 0 {
			if argumentIndex+1 < len(arguments) && isToggleLiteral(arguments[argumentIndex+1]) {
				normalizedArguments = append(normalizedArguments, currentArgument+flagValueSeparator+arguments[argumentIndex+1])
				argumentIndex += 2
				continue
			}
		}

		normalizedArguments = append(normalizedArguments, currentArgument)
		argumentIndex++
	}

	return normalizedArguments
}

// isToggleLiteral reports whether the argument is one of the recognized toggle values.
func isToggleLiteral(argument string) bool {
	if strings.HasPrefix(argument, shortFlagPrefixConstant) {
		return false
	}
	_, parseError := parseToggleValue(argument)
	return parseError == nil
}

// toggleFlagIdentifier reports whether the argument names a registered toggle flag without an attached value.
func toggleFlagIdentifier(argument string) (string, bool) {
	if !strings.HasPrefix(argument, shortFlagPrefixConstant) {
		return "", false
	}
	if strings.Contains(argument, flagValueSeparator) {
		return "", false
	}

	toggleFlagRegistryMutex.RLock()
	defer toggleFlagRegistryMutex.RUnlock()

	if strings.HasPrefix(argument, longFlagPrefixConstant) {
		flagName := strings.TrimPrefix(argument, longFlagPrefixConstant)
		_, registered := toggleFlagNames[flagName]
		return flagName, registered
	}

	shorthand := strings.TrimPrefix(argument, shortFlagPrefixConstant)
	if len(shorthand) != 1 {
		return "", false
	}
	_, registered := toggleFlagShorthands[shorthand]
	return shorthand, registered
}

func registerToggleFlag(name string, shorthand string) {
	toggleFlagRegistryMutex.Lock()
	defer toggleFlagRegistryMutex.Unlock()
	toggleFlagNames[name] = struct{}{}
	if len(shorthand) > 0 {
		toggleFlagShorthands[shorthand] = struct{}{}
	}
}

type toggleFlagValue struct {
	currentValue bool
	target       *bool
}

func newToggleFlagValue(defaultValue bool, target *bool) *toggleFlagValue {
	if target != nil {
		*target = defaultValue
	}
	return &toggleFlagValue{currentValue: defaultValue, target: target}
}

// Set parses yes/no style literals and stores the resulting boolean.
func (value *toggleFlagValue) Set(rawValue string) error {
	parsedValue, parseError := parseToggleValue(rawValue)
	if parseError != nil {
		return parseError
	}

	value.currentValue = parsedValue
	if value.target != nil {
		*value.target = parsedValue
	}

	return nil
}

func (value *toggleFlagValue) String() string {
	if value != nil && value.currentValue {
		return toggleTrueCanonicalValue
	}
	return toggleFalseCanonicalValue
}

func (value *toggleFlagValue) Type() string {
	return "bool"
}

func parseToggleValue(rawValue string) (bool, error) {
	trimmedValue := strings.TrimSpace(rawValue)
	if len(trimmedValue) == 0 {
		trimmedValue = toggleTrueCanonicalValue
	}

	normalizedValue := strings.ToLower(trimmedValue)
	if _, isTrue := trueLiteralSet[normalizedValue]; isTrue {
		return true, nil
	}
	if _, isFalse := falseLiteralSet[normalizedValue]; isFalse {
		return false, nil
	}

	return false, fmt.Errorf(toggleParseErrorTemplate, rawValue)
}
