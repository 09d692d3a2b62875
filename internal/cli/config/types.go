// Package config provides configuration management for the bodmas CLI.
//
// Configuration is merged from defaults, an optional bodmas.yaml file,
// BODMAS_* environment variables, and command-line flags, in increasing
// order of precedence.
package config

// Config holds all CLI configuration options.
type Config struct {
	QuestionsFile string `koanf:"questions_file"`
	Port          int    `koanf:"port"`
	Watch         bool   `koanf:"watch"`
	Verbose       bool   `koanf:"verbose"`
	OutputFormat  string `koanf:"output"`
}

// Default configuration values.
const (
	DefaultPort   = 5000
	DefaultOutput = "table"
)
