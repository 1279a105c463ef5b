package pipeline

import (
	_ "embed"

	"github.com/thanujayalath/checkstyle/internal/config"
)

//go:embed default.yaml
var defaultConfig []byte

// DefaultConfig returns the module tree used when no configuration is
// given.
func DefaultConfig() *config.Module {
	m, err := config.Parse(defaultConfig, config.FormatYAML)
	if err != nil {
		panic(err)
	}
	return m
}
