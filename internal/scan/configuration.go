package scan

import "strings"

const (
	configurationKeySeparatorConstant  = "."
	rootsConfigurationKeyConstant      = "roots"
	verboseConfigurationKeyConstant    = "verbose"
	branchConfigurationKeyConstant     = "branch"
	colorConfigurationKeyConstant      = "color"
	ignoreFileConfigurationKeyConstant = "ignore_file"
)

// CommandConfiguration captures configuration values for the scan command.
type CommandConfiguration struct {
	Roots          []string `mapstructure:"roots"`
	Verbose        bool     `mapstructure:"verbose"`
	RecordBranches bool     `mapstructure:"branch"`
	ColorEnabled   bool     `mapstructure:"color"`
	IgnoreFileName string   `mapstructure:"ignore_file"`
}

// DefaultCommandConfiguration provides baseline configuration values for the scan command.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		Roots:          nil,
		Verbose:        false,
		RecordBranches: false,
		ColorEnabled:   true,
		IgnoreFileName: DefaultIgnoreFileName,
	}
}

// DefaultConfigurationValues exposes scan defaults keyed beneath the provided configuration prefix.
func DefaultConfigurationValues(configurationPrefix string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		configurationPrefix + configurationKeySeparatorConstant + rootsConfigurationKeyConstant:      defaults.Roots,
		configurationPrefix + configurationKeySeparatorConstant + verboseConfigurationKeyConstant:    defaults.Verbose,
		configurationPrefix + configurationKeySeparatorConstant + branchConfigurationKeyConstant:     defaults.RecordBranches,
		configurationPrefix + configurationKeySeparatorConstant + colorConfigurationKeyConstant:      defaults.ColorEnabled,
		configurationPrefix + configurationKeySeparatorConstant + ignoreFileConfigurationKeyConstant: defaults.IgnoreFileName,
	}
}

// sanitize trims configuration values without applying implicit defaults.
func (configuration CommandConfiguration) sanitize() CommandConfiguration {
	sanitized := configuration

	sanitized.IgnoreFileName = strings.TrimSpace(configuration.IgnoreFileName)
	sanitized.Roots = sanitizeConfiguredRoots(configuration.Roots)

	return sanitized
}

func sanitizeConfiguredRoots(rawRoots []string) []string {
	sanitizedRoots := make([]string, 0, len(rawRoots))
	for _, candidateRoot := range rawRoots {
		trimmedRoot := strings.TrimSpace(candidateRoot)
		if len(trimmedRoot) == 0 {
			continue
		}
		sanitizedRoots = append(sanitizedRoots, trimmedRoot)
	}
	if len(sanitizedRoots) == 0 {
		return nil
	}
	return sanitizedRoots
}
