package cli

import (
	"bytes"
	_ "embed"
)

//go:embed default_config.yaml
var embeddedDefaultConfiguration []byte

// EmbeddedDefaultConfiguration returns a copy of the embedded default configuration together with its type identifier.
func EmbeddedDefaultConfiguration() ([]byte, string) {
	return bytes.Clone(embeddedDefaultConfiguration), configurationTypeConstant
}
