package utils

import "context"

type commandContextKey int

const (
	configurationFilePathContextKey commandContextKey = iota
)

// CommandContextAccessor reads and writes CLI values carried on command execution contexts.
type CommandContextAccessor struct{}

// NewCommandContextAccessor constructs a CommandContextAccessor.
func NewCommandContextAccessor() CommandContextAccessor {
	return CommandContextAccessor{}
}

// WithConfigurationFilePath returns a context carrying the resolved configuration file path.
func (accessor CommandContextAccessor) WithConfigurationFilePath(parentContext context.Context, configurationFilePath string) context.Context {
	if parentContext == nil {
		parentContext = context.Background()
	}
	return context.WithValue(parentContext, configurationFilePathContextKey, configurationFilePath)
}

// ConfigurationFilePath reports the configuration file path stored on the context, when present.
func (accessor CommandContextAccessor) ConfigurationFilePath(executionContext context.Context) (string, bool) {
	if executionContext == nil {
		return "", false
	}
	configurationFilePath, pathStored := executionContext.Value(configurationFilePathContextKey).(string)
	return configurationFilePath, pathStored
}
