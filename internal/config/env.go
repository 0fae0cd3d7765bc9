// This file contains environment variable utilities for configuration override.

package config

import (
	"os"
	"strconv"
)

// ─────────────────────────────────────────────────────────────────────────────
// Environment Variable Utilities
// ─────────────────────────────────────────────────────────────────────────────

// envOverride declares a single environment variable override: an env key
// (without the ARBINT_ prefix) and a function that applies it to a
// Thresholds value when set.
type envOverride struct {
	envKey string
	apply  func(*Thresholds, string)
}

// envOverrides is the declarative table of all environment variable
// overrides, grouped by the field they tune.
var envOverrides = []envOverride{
	{"SECTION", func(t *Thresholds, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			t.Section = parsed
		}
	}},
	{"DOUBLE_DIV_SECTIONS", func(t *Thresholds, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			t.DoubleDivSections = parsed
		}
	}},
	{"KARATSUBA_CUTOFF", func(t *Thresholds, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			t.KaratsubaCutoff = parsed
		}
	}},
	{"INTEGER_FFT_CUTOFF", func(t *Thresholds, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			t.IntegerFFTCutoff = parsed
		}
	}},
	{"U64_BOUND", func(t *Thresholds, v string) {
		if parsed, err := strconv.ParseUint(v, 10, 64); err == nil {
			t.U64Bound = parsed
		}
	}},
	{"BASE_OVERFLOW_CUTOFF", func(t *Thresholds, v string) {
		if parsed, err := strconv.ParseUint(v, 10, 64); err == nil {
			t.BaseOverflowCutoff = parsed
		}
	}},
}

// applyEnvOverrides applies any set ARBINT_* environment variables to t.
//
// Supported environment variables (all prefixed with ARBINT_):
//   - SECTION, DOUBLE_DIV_SECTIONS, KARATSUBA_CUTOFF, INTEGER_FFT_CUTOFF,
//     U64_BOUND, BASE_OVERFLOW_CUTOFF
func applyEnvOverrides(t *Thresholds) {
	for _, o := range envOverrides {
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(t, val)
		}
	}
}
