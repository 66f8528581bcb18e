/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config

import (
	"github.com/samsonasik/mezzio-hal/apis"
)

const (
	// DefaultMaxUnwrap represents the default for MaxUnwrap.
	// A value of 8 should be sufficient for all practical purposes.
	DefaultMaxUnwrap = 8
	// DefaultConcurrency represents the default for Concurrency.
	// Collection items are embedded sequentially.
	DefaultConcurrency = 1
	// DefaultDetectCycles represents the default for DetectCycles.
	DefaultDetectCycles = false
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure MaxUnwrap and Concurrency are valid.
	if cfg.MaxUnwrap < 0 {
		cfg.MaxUnwrap = DefaultMaxUnwrap
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = DefaultConcurrency
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		MaxUnwrap:    DefaultMaxUnwrap,
		Concurrency:  DefaultConcurrency,
		DetectCycles: DefaultDetectCycles,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithMaxUnwrap sets the MaxUnwrap option.
// A negative value resets to the default.
func WithMaxUnwrap(max int) Option {
	return func(c *apis.Config) {
		if max < 0 {
			c.MaxUnwrap = DefaultMaxUnwrap
			return
		}
		c.MaxUnwrap = max
	}
}

// WithConcurrency sets how many collection items may be generated at once.
// Values below 1 reset to the default.
func WithConcurrency(n int) Option {
	return func(c *apis.Config) {
		if n < 1 {
			c.Concurrency = DefaultConcurrency
			return
		}
		c.Concurrency = n
	}
}

// WithDetectCycles enables or disables circular reference detection.
func WithDetectCycles(detect bool) Option {
	return func(c *apis.Config) {
		c.DetectCycles = detect
	}
}
