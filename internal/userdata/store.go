// Package userdata persists the user's last calculator inputs and
// keeps the derived results current.
package userdata

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"spawnsmart/internal/calculator"
	"spawnsmart/internal/domain"

	"go.uber.org/zap"
)

// defaultInput mirrors the calculator's initial form state
var defaultInput = domain.CalculatorInput{
	ExperienceLevel: "beginner",
	SpawnAmount:     1,
	SubstrateRatio:  2,
	SubstrateType:   "cvg",
	ContainerSize:   5,
}

// Store holds the current calculator inputs and results, backed by a
// single JSON file. Loaded on startup, overwritten on explicit save.
type Store struct {
	path   string
	logger *zap.Logger

	mu      sync.RWMutex
	input   domain.CalculatorInput
	results domain.CalculatorResult
}

// NewStore creates a store persisting to the given file path and
// loads any previously saved inputs
func NewStore(path string, logger *zap.Logger) *Store {
	s := &Store{
		path:   path,
		logger: logger,
		input:  defaultInput,
	}
	s.results = calculator.Calculate(s.input)
	if err := s.load(); err != nil {
		logger.Warn("No saved calculator inputs loaded", zap.Error(err))
	}
	return s
}

// Input returns the current calculator inputs
func (s *Store) Input() domain.CalculatorInput {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.input
}

// Results returns the current calculation results
func (s *Store) Results() domain.CalculatorResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.results
}

// Update replaces the inputs and recomputes results. Changing the
// experience level re-defaults the substrate ratio to that level's
// default, matching the form behavior.
func (s *Store) Update(input domain.CalculatorInput) domain.CalculatorResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if input.ExperienceLevel != s.input.ExperienceLevel {
		if level := domain.ExperienceLevelByID(input.ExperienceLevel); level != nil {
			input.SubstrateRatio = level.DefaultSubstrateRatio
		}
	}

	s.input = input
	s.results = calculator.Calculate(input)
	return s.results
}

// Reset restores the default inputs and recomputes results
func (s *Store) Reset() domain.CalculatorInput {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.input = defaultInput
	s.results = calculator.Calculate(s.input)
	return s.input
}

// Save writes the current inputs to disk
func (s *Store) Save() error {
	s.mu.RLock()
	input := s.input
	s.mu.RUnlock()

	data, err := json.MarshalIndent(input, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding calculator inputs: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing calculator inputs: %w", err)
	}

	s.logger.Debug("Saved calculator inputs", zap.String("path", s.path))
	return nil
}

// load reads previously saved inputs; a missing file is not an error
// worth surfacing beyond the startup log
func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	var input domain.CalculatorInput
	if err := json.Unmarshal(data, &input); err != nil {
		return fmt.Errorf("decoding saved inputs: %w", err)
	}

	s.mu.Lock()
	s.input = input
	s.results = calculator.Calculate(input)
	s.mu.Unlock()
	return nil
}
