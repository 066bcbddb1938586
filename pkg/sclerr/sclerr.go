// Package sclerr defines the stable integer error codes surfaced across the
// crypto core's public API, mirroring the source library's return-code
// table rather than an ad-hoc error type per package.
package sclerr

import "fmt"

// Code is a stable integer error code. It implements error so it can be
// returned, wrapped, and matched with errors.As/errors.Is like any other Go
// error, while still carrying the exact numeric value external callers
// (firmware, FFI boundaries) depend on.
type Code int32

const (
	OK             Code = 0
	ERROR          Code = -1
	InvalidInput   Code = -2
	InvalidOutput  Code = -3
	InvalidMode    Code = -4
	InvalidLength  Code = -5
	RNGError       Code = -13
	ReseedRequired Code = -14

	// Component-specific codes, positive-valued; exact numeric values are
	// this module's own and are not required to match the source's
	// internal numbering, which was never made a stable public surface.
	HWTimeout        Code = 1
	HashLenInvalid   Code = 2
	InvalidSignature Code = 3
	NotOnCurve       Code = 4
	InvalidKey       Code = 5
	InvalidTag       Code = 6
	NotInvertible    Code = 7
	APIEntryPoint    Code = 8
)

func (c Code) Error() string {
	if s, ok := names[c]; ok {
		return s
	}
	return fmt.Sprintf("sclerr: code %d", int32(c))
}

// Ok reports whether c represents success.
func (c Code) Ok() bool { return c == OK }

var names = map[Code]string{
	OK:               "ok",
	ERROR:            "generic error",
	InvalidInput:     "invalid input",
	InvalidOutput:    "invalid output",
	InvalidMode:      "invalid mode",
	InvalidLength:    "invalid length",
	RNGError:         "rng exhausted or failing",
	ReseedRequired:   "trng reseed required",
	HWTimeout:        "hardware accelerator poll timed out",
	HashLenInvalid:   "hash length unsupported for curve",
	InvalidSignature: "invalid ecdsa signature",
	NotOnCurve:       "point not on curve",
	InvalidKey:       "invalid key",
	InvalidTag:       "aead tag mismatch",
	NotInvertible:    "value has no modular inverse",
	APIEntryPoint:    "backend entry point not installed",
}
