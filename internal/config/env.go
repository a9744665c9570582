package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the environment. Every malformed variable is
// reported at once, not only the first one.
func parseEnv(cfg *StructuredConfig) error {
	err := env.Parse(cfg)
	if err == nil {
		return nil
	}

	var aggregate env.AggregateError
	if errors.As(err, &aggregate) {
		return fmt.Errorf("%w: %w", ErrInvalidEnvConfigs, errors.Join(aggregate.Errors...))
	}

	return fmt.Errorf("%w: %w", ErrInvalidEnvConfigs, err)
}
