/*
NAME
  config.go

DESCRIPTION
  config.go provides the motion estimation tunables that aren't fixed
  per-frame geometry (me_lambda, me_range_scale,
  allow_high_precision_mv, bit_depth): a JSON-loadable Config, in the
  style of revid/config.Config, with live reload via fsnotify so a
  long-running encoder can retune the search without restarting.

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package config contains the tunable configuration for the motion
// estimation core.
package config

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"github.com/ausocean/utils/logging"
)

// Default tunable values, applied by New, and by Validate (which logs
// each one via LogInvalidField) when a numeric value is unset or out of
// range.
const (
	DefaultMELambda             = 1.0
	DefaultMERangeScale         = 1
	DefaultBitDepth             = 8
	DefaultAllowHighPrecisionMV = true
)

// Config holds the motion estimation tunables. A zero Config is not
// valid; use New or Load.
type Config struct {
	MELambda             float64 `json:"me_lambda"`
	MERangeScale         int     `json:"me_range_scale"`
	BitDepth             int     `json:"bit_depth"`
	AllowHighPrecisionMV bool    `json:"allow_high_precision_mv"`

	// Logger holds an implementation of the Logger interface; must be
	// set for Validate to log defaulted fields.
	Logger logging.Logger
}

// New returns a Config populated with defaults.
func New(logger logging.Logger) Config {
	return Config{
		MELambda:             DefaultMELambda,
		MERangeScale:         DefaultMERangeScale,
		BitDepth:             DefaultBitDepth,
		AllowHighPrecisionMV: DefaultAllowHighPrecisionMV,
		Logger:               logger,
	}
}

// Validate defaults any unset or out-of-range fields, logging each one
// via LogInvalidField.
func (c *Config) Validate() error {
	if c.MELambda <= 0 {
		c.LogInvalidField("MELambda", DefaultMELambda)
		c.MELambda = DefaultMELambda
	}
	if c.MERangeScale <= 0 {
		c.LogInvalidField("MERangeScale", DefaultMERangeScale)
		c.MERangeScale = DefaultMERangeScale
	}
	switch c.BitDepth {
	case 8, 10, 12:
	default:
		c.LogInvalidField("BitDepth", DefaultBitDepth)
		c.BitDepth = DefaultBitDepth
	}
	return nil
}

// LogInvalidField logs that a field was bad or unset and has been
// defaulted, matching revid/config.Config.LogInvalidField.
func (c *Config) LogInvalidField(name string, def interface{}) {
	if c.Logger != nil {
		c.Logger.Info(name+" bad or unset, defaulting", name, def)
	}
}

// Load reads a JSON-encoded Config from path and validates it.
func Load(path string, logger logging.Logger) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config: reading %s", path)
	}
	c := New(logger)
	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, errors.Wrapf(err, "config: parsing %s", path)
	}
	c.Logger = logger
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Watcher reloads a Config from disk whenever the backing file
// changes. Each successfully parsed revision becomes Current and is
// sent on Updates if its one-slot buffer is free; otherwise that
// revision is not sent.
type Watcher struct {
	path    string
	logger  logging.Logger
	watcher *fsnotify.Watcher

	mu      sync.Mutex
	current Config

	Updates chan Config
}

// NewWatcher starts watching path for changes, having already loaded
// an initial Config from it.
func NewWatcher(path string, logger logging.Logger) (*Watcher, error) {
	initial, err := Load(path, logger)
	if err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "config: creating watcher")
	}
	if err := fw.Add(path); err != nil {
		fw.Close()
		return nil, errors.Wrapf(err, "config: watching %s", path)
	}

	w := &Watcher{
		path:    path,
		logger:  logger,
		watcher: fw,
		current: initial,
		Updates: make(chan Config, 1),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			c, err := Load(w.path, w.logger)
			if err != nil {
				if w.logger != nil {
					w.logger.Warning("config: reload failed", "error", err)
				}
				continue
			}
			w.mu.Lock()
			w.current = c
			w.mu.Unlock()
			select {
			case w.Updates <- c:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if w.logger != nil {
				w.logger.Warning("config: watch error", "error", err)
			}
		}
	}
}

// Current returns the most recently loaded Config.
func (w *Watcher) Current() Config {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
