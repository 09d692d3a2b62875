// Package commands implements the bodmas CLI subcommands.
package commands

import (
	"fmt"

	"github.com/stepwise-labs/bodmas/internal/cli/config"
	"github.com/stepwise-labs/bodmas/internal/tutor"
)

// getConfig returns the configuration loaded by the root command.
func getConfig() *config.Config {
	return config.GetCurrentConfig()
}

// loadCatalog builds the question catalogue, applying a configured
// questions file on top of the built-ins.
func loadCatalog(cfg *config.Config) (*tutor.Catalog, error) {
	catalog := tutor.NewCatalog()
	if cfg.QuestionsFile == "" {
		return catalog, nil
	}
	if err := cfg.ValidateQuestionsFile(); err != nil {
		return nil, err
	}
	if err := catalog.LoadFile(cfg.QuestionsFile); err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}
	return catalog, nil
}
