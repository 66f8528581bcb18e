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

package config_test

import (
	"testing"

	"github.com/samsonasik/mezzio-hal/config"
)

func TestDefaultConfigValues(t *testing.T) {
	got := config.DefaultConfig()

	if got.MaxUnwrap != config.DefaultMaxUnwrap {
		t.Fatalf("MaxUnwrap = %d, want %d", got.MaxUnwrap, config.DefaultMaxUnwrap)
	}
	if got.Concurrency != config.DefaultConcurrency {
		t.Fatalf("Concurrency = %d, want %d", got.Concurrency, config.DefaultConcurrency)
	}
	if got.DetectCycles != config.DefaultDetectCycles {
		t.Fatalf("DetectCycles = %v, want %v", got.DetectCycles, config.DefaultDetectCycles)
	}
}

func TestNewConfig_NoOptions_EqualsDefault(t *testing.T) {
	def := config.DefaultConfig()
	got := config.NewConfig()
	if got != def {
		t.Fatalf("NewConfig() = %+v, want default %+v", got, def)
	}
}

func TestWithDetectCycles(t *testing.T) {
	c := config.NewConfig(config.WithDetectCycles(true))
	if !c.DetectCycles {
		t.Fatalf("DetectCycles = %v, want true", c.DetectCycles)
	}

	c2 := config.NewConfig(config.WithDetectCycles(false))
	if c2.DetectCycles {
		t.Fatalf("DetectCycles = %v, want false", c2.DetectCycles)
	}
}

func TestWithConcurrency(t *testing.T) {
	c := config.NewConfig(config.WithConcurrency(4))
	if c.Concurrency != 4 {
		t.Fatalf("Concurrency = %d, want 4", c.Concurrency)
	}

	for _, n := range []int{0, -3} {
		c := config.NewConfig(config.WithConcurrency(n))
		if c.Concurrency != config.DefaultConcurrency {
			t.Fatalf("WithConcurrency(%d): Concurrency = %d, want default %d", n, c.Concurrency, config.DefaultConcurrency)
		}
	}
}

func TestWithMaxUnwrap_Positive(t *testing.T) {
	c := config.NewConfig(config.WithMaxUnwrap(3))
	if c.MaxUnwrap != 3 {
		t.Fatalf("MaxUnwrap = %d, want 3", c.MaxUnwrap)
	}
}

func TestWithMaxUnwrap_Negative_ResetsToDefault(t *testing.T) {
	c := config.NewConfig(config.WithMaxUnwrap(-1))
	if c.MaxUnwrap != config.DefaultMaxUnwrap {
		t.Fatalf("MaxUnwrap = %d, want default %d", c.MaxUnwrap, config.DefaultMaxUnwrap)
	}
}

func TestOptionsOrder_LastWins(t *testing.T) {
	c := config.NewConfig(
		config.WithDetectCycles(false),
		config.WithDetectCycles(true),
		config.WithMaxUnwrap(2),
		config.WithMaxUnwrap(5),
		config.WithConcurrency(2),
		config.WithConcurrency(8),
	)

	if !c.DetectCycles {
		t.Errorf("DetectCycles = %v, want true (last option wins)", c.DetectCycles)
	}
	if c.MaxUnwrap != 5 {
		t.Errorf("MaxUnwrap = %d, want 5 (last option wins)", c.MaxUnwrap)
	}
	if c.Concurrency != 8 {
		t.Errorf("Concurrency = %d, want 8 (last option wins)", c.Concurrency)
	}
}

func TestNewConfig_Guardrails_MaxUnwrapZeroAllowed(t *testing.T) {
	// The constructor only resets negative values.
	c := config.NewConfig(config.WithMaxUnwrap(0))
	if c.MaxUnwrap != 0 {
		t.Fatalf("MaxUnwrap = %d, want 0 (zero is allowed)", c.MaxUnwrap)
	}
}
