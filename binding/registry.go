// Package binding exposes the calculator and the JWT decoder through a
// language-agnostic contract: opaque handles, scalars, strings and Status
// codes. No Go pointer crosses the boundary; callers own copies of all
// returned data.
package binding

import (
	"context"
	"sort"
	"sync"

	"github.com/samber/lo"
	"go.uber.org/atomic"

	"github.com/mhlabs/mobilecore"
	"github.com/mhlabs/mobilecore/calculator"
	"github.com/mhlabs/mobilecore/jwtdecode"
)

// Handle identifies a calculator owned by a Registry. Zero is never issued.
type Handle uint64

const liveCalculatorsGauge = "binding_live_calculators"

// Registry owns calculators on behalf of foreign callers and hands out
// handles to them.
type Registry struct {
	next atomic.Uint64

	mu          sync.RWMutex
	calculators map[Handle]*calculator.Calculator

	calculatorOpts []calculator.Option
	decoder        *jwtdecode.Decoder
	metrics        mobilecore.Metrics
	logger         mobilecore.Logger
}

// NewRegistry creates an empty Registry.
func NewRegistry(opts ...Option) (*Registry, error) {
	r := &Registry{
		calculators: make(map[Handle]*calculator.Calculator),
		metrics:     &mobilecore.NoopMetrics{},
		logger:      mobilecore.NopLogger{},
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	if r.decoder == nil {
		d, err := jwtdecode.NewDecoder()
		if err != nil {
			return nil, err
		}
		r.decoder = d
	}

	// Surface bad calculator options here rather than on every NewCalculator.
	if _, err := calculator.New(0, r.calculatorOpts...); err != nil {
		return nil, err
	}

	return r, nil
}

// NewCalculator creates a calculator starting at initial and returns its handle.
func (r *Registry) NewCalculator(initial int32) (Handle, Status) {
	c, err := calculator.New(initial, r.calculatorOpts...)
	if err != nil {
		return 0, StatusFromError(err)
	}

	h := Handle(r.next.Inc())

	r.mu.Lock()
	r.calculators[h] = c
	live := len(r.calculators)
	r.mu.Unlock()

	r.logger.Debug("Calculator created", "handle", uint64(h), "initial", initial)
	r.metrics.SetGauge(liveCalculatorsGauge, float64(live), map[string]string{})
	return h, statusOK
}

// Release drops the calculator behind h. The handle is invalid afterwards.
func (r *Registry) Release(h Handle) Status {
	r.mu.Lock()
	_, ok := r.calculators[h]
	delete(r.calculators, h)
	live := len(r.calculators)
	r.mu.Unlock()

	if !ok {
		return StatusFromError(ErrInvalidHandle)
	}

	r.logger.Debug("Calculator released", "handle", uint64(h))
	r.metrics.SetGauge(liveCalculatorsGauge, float64(live), map[string]string{})
	return statusOK
}

// Reset overwrites the register of the calculator behind h.
func (r *Registry) Reset(h Handle, v int32) Status {
	c, ok := r.lookup(h)
	if !ok {
		return StatusFromError(ErrInvalidHandle)
	}
	c.Reset(v)
	return statusOK
}

// Add adds x to the calculator behind h.
func (r *Registry) Add(h Handle, x int32) Status {
	return r.apply(h, x, (*calculator.Calculator).Add)
}

// Subtract subtracts x from the calculator behind h.
func (r *Registry) Subtract(h Handle, x int32) Status {
	return r.apply(h, x, (*calculator.Calculator).Subtract)
}

// Multiply multiplies the calculator behind h by x.
func (r *Registry) Multiply(h Handle, x int32) Status {
	return r.apply(h, x, (*calculator.Calculator).Multiply)
}

// Divide divides the calculator behind h by x.
func (r *Registry) Divide(h Handle, x int32) Status {
	return r.apply(h, x, (*calculator.Calculator).Divide)
}

// Value returns the register of the calculator behind h. The only possible
// failure is an invalid handle.
func (r *Registry) Value(h Handle) (int32, Status) {
	c, ok := r.lookup(h)
	if !ok {
		return 0, StatusFromError(ErrInvalidHandle)
	}
	return c.Value(), statusOK
}

// Len returns the number of live calculators.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.calculators)
}

// Handles returns the live handles in ascending order.
func (r *Registry) Handles() []Handle {
	r.mu.RLock()
	handles := lo.Keys(r.calculators)
	r.mu.RUnlock()

	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })
	return handles
}

// DecodeJWT decodes token with the registry's decoder.
func (r *Registry) DecodeJWT(token string) (jwtdecode.DecodedJWT, Status) {
	decoded, err := r.decoder.Decode(context.Background(), token)
	return decoded, StatusFromError(err)
}

func (r *Registry) lookup(h Handle) (*calculator.Calculator, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.calculators[h]
	return c, ok
}

func (r *Registry) apply(h Handle, x int32, op func(*calculator.Calculator, int32) error) Status {
	c, ok := r.lookup(h)
	if !ok {
		return StatusFromError(ErrInvalidHandle)
	}
	return StatusFromError(op(c, x))
}
