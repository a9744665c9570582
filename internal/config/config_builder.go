package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// layer is one parsed configuration source.
type layer struct {
	source string
	cfg    *StructuredConfig
}

// configBuilder collects layers from the configured sources and merges them
// in the order they were added.
type configBuilder struct {
	args   []string
	layers []layer
	err    error
}

func newConfigBuilder(args ...string) *configBuilder {
	return &configBuilder{args: args}
}

func (b *configBuilder) add(source string, cfg *StructuredConfig, err error) *configBuilder {
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("%s: %w", source, err))
		return b
	}
	b.layers = append(b.layers, layer{source: source, cfg: cfg})
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	cfg := new(StructuredConfig)
	return b.add("env", cfg, parseEnv(cfg))
}

func (b *configBuilder) withFlags() *configBuilder {
	cfg, err := ParseFlags(b.args)
	return b.add("flags", cfg, err)
}

// withJSON loads the file named by the last layer that sets JSONFilePath.
// Without such a layer it adds nothing.
func (b *configBuilder) withJSON() *configBuilder {
	path := b.jsonPath()
	if path == "" {
		return b
	}

	cfg, err := parseJSON(path)
	return b.add("json", cfg, err)
}

func (b *configBuilder) jsonPath() string {
	for i := len(b.layers) - 1; i >= 0; i-- {
		if p := b.layers[i].cfg.JSONFilePath; p != "" {
			return p
		}
	}
	return ""
}

// build merges the layers; non-zero fields of later layers win.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error loading configuration: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, l := range b.layers {
		if err := mergo.Merge(merged, l.cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging %s configuration: %w", l.source, err)
		}
	}

	return merged, nil
}
