// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for Matrix construction.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each option changes observable allocation behavior.
//   - Safe by construction: panic only on nonsensical values (programmer error).
package sparse

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultCapacity is the initial capacity of the entry list.
	// Zero means "grow on demand" (append doubling).
	DefaultCapacity = 0

	// maxProductCapacity caps the pre-size hint Mul derives for its result,
	// so a pair of wide operands cannot trigger a huge up-front allocation.
	maxProductCapacity = 1 << 16
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	capacity int // DefaultCapacity; >= 0
}

// WithCapacity pre-sizes the entry list for n stored points.
// Implementation:
//   - Stage 1: validate n >= 0 (panic otherwise).
//   - Stage 2: return a setter writing the capacity hint.
//
// Notes:
//   - A hint only: Set grows the list past n when needed.
//
// Complexity:
//   - Time O(1), Space O(1) (the allocation happens in New).
func WithCapacity(n int) Option {
	if n < 0 {
		panic(panicCapacityNegative)
	}

	return func(o *Options) { o.capacity = n }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{capacity: DefaultCapacity}
}

// gatherOptions applies opts on top of the defaults, skipping nil setters.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
