package follower

import (
	"errors"
	"time"

	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/model"
)

const (
	DefaultPollInterval = 30 * time.Second
	DefaultBatchSize    = 500
	DefaultWorkers      = 8
)

// Config tunes the follower loop.
type Config struct {
	PollInterval time.Duration
	BatchSize    int
	Workers      int
	// Caller is the identity headers are submitted as.
	Caller model.Caller
}

func DefaultConfig(caller model.Caller) Config {
	return Config{
		PollInterval: DefaultPollInterval,
		BatchSize:    DefaultBatchSize,
		Workers:      DefaultWorkers,
		Caller:       caller,
	}
}

func (c Config) Validate() error {
	switch {
	case c.PollInterval <= 0:
		return errors.New("poll interval must be positive")
	case c.BatchSize <= 0:
		return errors.New("batch size must be positive")
	case c.Workers <= 0:
		return errors.New("worker count must be positive")
	case c.Caller.ID == "":
		return errors.New("caller id is required")
	}
	return nil
}
