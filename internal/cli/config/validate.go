package config

import (
	"fmt"
	"os"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}
	switch c.OutputFormat {
	case "table", "json":
	default:
		return fmt.Errorf("output must be one of table|json, got %q", c.OutputFormat)
	}
	return nil
}

// ValidateQuestionsFile checks that a configured questions file exists.
// Commands that never read the catalogue skip this.
func (c *Config) ValidateQuestionsFile() error {
	if c.QuestionsFile == "" {
		return nil
	}
	if _, err := os.Stat(c.QuestionsFile); os.IsNotExist(err) {
		return fmt.Errorf("questions file does not exist: %s\nHint: Create the file or use --questions to specify a different path", c.QuestionsFile)
	}
	return nil
}
