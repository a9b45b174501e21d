package binding

import (
	"go.uber.org/atomic"

	"github.com/mhlabs/mobilecore"
	"github.com/mhlabs/mobilecore/jwtdecode"
)

var defaultRegistry atomic.Pointer[Registry]

func init() {
	r, err := NewRegistry()
	if err != nil {
		panic("binding: default registry: " + err.Error())
	}
	defaultRegistry.Store(r)
}

// Default returns the registry used by the package-level functions.
func Default() *Registry {
	return defaultRegistry.Load()
}

// SetDefault replaces the registry used by the package-level functions.
// Handles issued by the previous registry are not carried over, so hosts
// call this once, before creating any calculator.
func SetDefault(r *Registry) {
	if r == nil {
		return
	}
	defaultRegistry.Store(r)
}

// SayHi returns the fixed greeting.
func SayHi() string {
	return mobilecore.SayHi()
}

// NewCalculator creates a calculator in the default registry.
func NewCalculator(initial int32) (Handle, Status) {
	return Default().NewCalculator(initial)
}

// ReleaseCalculator releases a calculator from the default registry.
func ReleaseCalculator(h Handle) Status {
	return Default().Release(h)
}

// Reset overwrites the register of a calculator in the default registry.
func Reset(h Handle, v int32) Status {
	return Default().Reset(h, v)
}

// Add adds x to a calculator in the default registry.
func Add(h Handle, x int32) Status {
	return Default().Add(h, x)
}

// Subtract subtracts x from a calculator in the default registry.
func Subtract(h Handle, x int32) Status {
	return Default().Subtract(h, x)
}

// Multiply multiplies a calculator in the default registry by x.
func Multiply(h Handle, x int32) Status {
	return Default().Multiply(h, x)
}

// Divide divides a calculator in the default registry by x.
func Divide(h Handle, x int32) Status {
	return Default().Divide(h, x)
}

// Value reads a calculator in the default registry.
func Value(h Handle) (int32, Status) {
	return Default().Value(h)
}

// DecodeJWT decodes token with the default registry's decoder.
func DecodeJWT(token string) (jwtdecode.DecodedJWT, Status) {
	return Default().DecodeJWT(token)
}

// DecodeJWTEnvelope decodes token with the default registry's decoder and
// returns a JSON DecodeEnvelope.
func DecodeJWTEnvelope(token string) []byte {
	return Default().DecodeJWTEnvelope(token)
}
