// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var configValidator = validator.New(validator.WithRequiredStructEnabled())

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Each group is validated against its `validate` struct tags; the first
// failing group is reported wrapped in its ErrInvalid*Configs sentinel.
func (cfg *StructuredConfig) validate() error {
	if err := configValidator.Struct(cfg.App); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return fmt.Errorf("%w: %w", ErrInvalidServerConfigs, errNoServerAddress)
	}
	if err := configValidator.Struct(cfg.Server); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidServerConfigs, err)
	}

	if err := configValidator.Struct(cfg.Storage); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidStorageConfigs, err)
	}

	if err := configValidator.Struct(cfg.Adapter); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAdapterConfigs, err)
	}

	if err := configValidator.Struct(cfg.Workers); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidWorkerConfigs, err)
	}

	return nil
}
