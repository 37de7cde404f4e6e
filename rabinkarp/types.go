package rabinkarp

import "errors"

// Hash parameter defaults and limits.
//
// The limits keep every intermediate product inside int64: a code point is
// below 2^21 and every residue is below 2^31, so ord·h < 2^52 and
// hash·base < 2^62.
const (
	// DefaultBase is the radix of the polynomial (one digit per byte value).
	DefaultBase int64 = 256

	// DefaultModulus is the small prime the hash is reduced by.
	DefaultModulus int64 = 101

	// MaxBase is the largest accepted base.
	MaxBase int64 = 1<<31 - 1

	// MaxModulus is the largest accepted modulus.
	MaxModulus int64 = 1<<31 - 1
)

// Sentinel errors returned by Hash, NewWindow and SearchWithOptions.
var (
	// ErrBadBase indicates a base outside [1, MaxBase].
	ErrBadBase = errors.New("rabinkarp: base must be in [1, MaxBase]")

	// ErrBadModulus indicates a modulus outside [2, MaxModulus].
	ErrBadModulus = errors.New("rabinkarp: modulus must be in [2, MaxModulus]")

	// ErrEmptyWindow indicates a rolling window of length zero.
	ErrEmptyWindow = errors.New("rabinkarp: window must be non-empty")
)

// Options configures the polynomial hash.
//
//   - Base   : radix of the polynomial, default 256.
//   - Modulus: every hash value lies in [0, Modulus), default 101.
type Options struct {
	Base    int64
	Modulus int64
}

// Option is a functional option for the hash parameters.
type Option func(*Options)

// WithBase sets the polynomial radix. Validated when the option is used.
func WithBase(base int64) Option {
	return func(o *Options) {
		o.Base = base
	}
}

// WithModulus sets the modulus. Validated when the option is used.
func WithModulus(modulus int64) Option {
	return func(o *Options) {
		o.Modulus = modulus
	}
}

// DefaultOptions returns base 256 and modulus 101.
func DefaultOptions() Options {
	return Options{
		Base:    DefaultBase,
		Modulus: DefaultModulus,
	}
}

// Validate checks Base and Modulus against their limits.
func (o Options) Validate() error {
	if o.Base < 1 || o.Base > MaxBase {
		return ErrBadBase
	}
	if o.Modulus < 2 || o.Modulus > MaxModulus {
		return ErrBadModulus
	}

	return nil
}

// buildOptions applies opts over the defaults and validates the result.
func buildOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return Options{}, err
	}

	return cfg, nil
}
