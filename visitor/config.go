package visitor

import (
	"fmt"

	"github.com/oddbit-project/visitordata/utils"
)

const (
	DefaultRegion             = "US"
	DefaultIDLength           = 11
	DefaultMaxTimestampOffset = 600000

	ErrInvalidConfig = utils.Error("invalid visitor data configuration")
)

// Config token generation parameters
type Config struct {
	Region             string `json:"region" env:"REGION" default:"US"`
	IDLength           int    `json:"idLength" env:"ID_LENGTH" default:"11"`
	MaxTimestampOffset int    `json:"maxTimestampOffset" env:"MAX_TIMESTAMP_OFFSET" default:"600000"`
}

func NewDefaultConfig() *Config {
	return &Config{
		Region:             DefaultRegion,
		IDLength:           DefaultIDLength,
		MaxTimestampOffset: DefaultMaxTimestampOffset,
	}
}

// Validate checks the configuration
// MaxTimestampOffset is an exclusive upper bound, so it must be at least 1
func (c *Config) Validate() error {
	if c.Region == "" {
		return fmt.Errorf("%w: region must not be empty", ErrInvalidConfig)
	}
	if c.IDLength < 1 {
		return fmt.Errorf("%w: idLength must be greater than 0", ErrInvalidConfig)
	}
	if c.MaxTimestampOffset < 1 {
		return fmt.Errorf("%w: maxTimestampOffset must be greater than 0", ErrInvalidConfig)
	}
	return nil
}
