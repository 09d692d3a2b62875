// Package commands_test provides tests for CLI command creation.
package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSolveCommand(t *testing.T) {
	cmd := NewSolveCommand()

	assert.Equal(t, "solve <expression>", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")
}

func TestNewExplainCommand(t *testing.T) {
	cmd := NewExplainCommand()

	assert.Equal(t, "explain <expression>", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")
}

func TestNewCheckCommand(t *testing.T) {
	cmd := NewCheckCommand()

	assert.Equal(t, "check <expression> <answer>", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")
}

func TestNewQuestionsCommand(t *testing.T) {
	cmd := NewQuestionsCommand()

	assert.Equal(t, "questions", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotNil(t, cmd.Flags().Lookup("difficulty"), "flag difficulty should exist")
}

func TestNewPracticeCommand(t *testing.T) {
	cmd := NewPracticeCommand()

	assert.Equal(t, "practice", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotNil(t, cmd.Flags().Lookup("difficulty"), "flag difficulty should exist")
}

func TestNewServeCommand(t *testing.T) {
	cmd := NewServeCommand()

	assert.Equal(t, "serve", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")
	assert.NotNil(t, cmd.Flags().Lookup("no-watch"), "flag no-watch should exist")
}

func TestNewVersionCommand(t *testing.T) {
	cmd := NewVersionCommand("0.1.0")

	assert.Equal(t, "version", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
}
