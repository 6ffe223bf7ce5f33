// Package config contains the configuration file support.
package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/tarampampam/clparser/pkg/argv"
)

// Config is used to unmarshal the configuration file content.
type Config struct {
	// pointers are used to distinguish between unset and set values (nil = unset)
	ErrorMode   *string `yaml:"errorMode"`   // first|all
	MatchPolicy *string `yaml:"matchPolicy"` // first-name|first-success
}

// FromFile initializes self state by reading the configuration file from the provided path. Values from
// the next file will overwrite the previous ones.
func (c *Config) FromFile(path string) error {
	if c == nil {
		return errors.New("config is nil")
	}

	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "failed to open the config file")
	}

	defer func() { _ = f.Close() }()

	var dec = yaml.NewDecoder(f)

	dec.KnownFields(true)

	if err = dec.Decode(c); err != nil {
		if errors.Is(err, io.EOF) { // empty file
			return nil
		}

		return errors.Wrap(err, "failed to decode the config file")
	}

	return nil
}

// ResolverOptions converts the configuration values into the resolver options. Unset values are skipped.
func (c *Config) ResolverOptions() ([]argv.ResolverOption, error) {
	var opts = make([]argv.ResolverOption, 0, 2) //nolint:gomnd

	if c.ErrorMode != nil {
		m, err := argv.ParseErrorMode(*c.ErrorMode)
		if err != nil {
			return nil, errors.Wrap(err, "wrong errorMode value")
		}

		opts = append(opts, argv.WithErrorMode(m))
	}

	if c.MatchPolicy != nil {
		p, err := argv.ParseMatchPolicy(*c.MatchPolicy)
		if err != nil {
			return nil, errors.Wrap(err, "wrong matchPolicy value")
		}

		opts = append(opts, argv.WithMatchPolicy(p))
	}

	return opts, nil
}
