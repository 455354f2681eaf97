package git

import (
	"fmt"

	"github.com/go-git/go-git/v5/plumbing/format/config"
)

// ReadConfig returns the raw local git configuration of the repository
func (r *Repository) ReadConfig() (*config.Config, error) {
	cfg, err := r.Config()
	if err != nil {
		return nil, fmt.Errorf("failed to read git config: %w", err)
	}
	return cfg.Raw, nil
}

// UpdateConfig loads the local configuration, applies fn to its raw form and writes
// the result back in one step. Nothing is written if fn fails.
func (r *Repository) UpdateConfig(fn func(raw *config.Config) error) error {
	cfg, err := r.Config()
	if err != nil {
		return fmt.Errorf("failed to read git config: %w", err)
	}
	if err := fn(cfg.Raw); err != nil {
		return err
	}
	if err := r.SetConfig(cfg); err != nil {
		return fmt.Errorf("failed to write git config: %w", err)
	}
	return nil
}
