package config

import (
	"fmt"

	"github.com/heartmarshall/ipa-transcriber/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if _, ok := domain.ParseDialect(c.Transcription.DefaultDialect); !ok {
		return fmt.Errorf("transcription.default_dialect %q is not a known dialect", c.Transcription.DefaultDialect)
	}

	if c.Transcription.MaxInputChars <= 0 {
		return fmt.Errorf("transcription.max_input_chars must be > 0 (got %d)", c.Transcription.MaxInputChars)
	}

	if c.Fallback.Enabled && c.Fallback.BaseURL == "" {
		return fmt.Errorf("fallback.base_url is required when the fallback is enabled")
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	return nil
}
