// SPDX-License-Identifier: MIT

// Package matrix: functional options for diagnostic formatting.
// This file defines:
//   - documented defaults (constants),
//   - FormatOption and the WithX constructors (panic on nonsensical values),
//   - gatherFormatOptions, which applies options over the defaults.
//
// Options never change numeric results; they only affect Format output.
package matrix

import "fmt"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWidth is the fixed column width used by Format and String.
	DefaultWidth = 10

	// DefaultPrecision is the number of fractional digits printed per value.
	DefaultPrecision = 6
)

// Upper bounds for the formatting knobs. Values beyond them are programmer errors.
const (
	maxWidth     = 64
	maxPrecision = 17
)

// formatOptions is the internal, immutable-after-gather option set.
type formatOptions struct {
	width     int
	precision int
}

// FormatOption configures Dense.Format.
type FormatOption func(*formatOptions)

// WithWidth sets the fixed column width.
// Panics if w < 1 or w > 64.
func WithWidth(w int) FormatOption {
	if w < 1 || w > maxWidth {
		panic(fmt.Sprintf("matrix: WithWidth: width %d out of [1,%d]", w, maxWidth))
	}

	return func(o *formatOptions) { o.width = w }
}

// WithPrecision sets the number of fractional digits.
// Panics if p < 0 or p > 17.
func WithPrecision(p int) FormatOption {
	if p < 0 || p > maxPrecision {
		panic(fmt.Sprintf("matrix: WithPrecision: precision %d out of [0,%d]", p, maxPrecision))
	}

	return func(o *formatOptions) { o.precision = p }
}

// gatherFormatOptions applies opts over the defaults. Nil options are skipped.
func gatherFormatOptions(opts ...FormatOption) formatOptions {
	o := formatOptions{width: DefaultWidth, precision: DefaultPrecision}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
