package boundz

import (
	"context"
	"sync"
	"time"

	"github.com/zoobzio/clockz"
	"github.com/zoobzio/hookz"
	"github.com/zoobzio/metricz"
	"github.com/zoobzio/tracez"
)

// Name identifies a counter instance in errors, events, and traces.
type Name = string

// Policy selects how a Counter behaves when an addition would exceed its limit.
type Policy string

// Counter overflow policies.
const (
	Wrap     Policy = "wrap"     // reduce modulo the range size
	Saturate Policy = "saturate" // clamp at the limit
	Reject   Policy = "reject"   // refuse the addition, return *OverflowError
)

// Metric keys for Counter observability.
const (
	CounterAddsTotal      = metricz.Key("counter.adds.total")
	CounterOverflowsTotal = metricz.Key("counter.overflows.total")
	CounterSaturatedTotal = metricz.Key("counter.saturated.total")
	CounterRejectedTotal  = metricz.Key("counter.rejected.total")
	CounterValueGauge     = metricz.Key("counter.value")
)

// Span names for Counter.
const (
	CounterAddSpan = tracez.Key("counter.add")
)

// Span tags for Counter.
const (
	CounterTagName     = tracez.Tag("counter.name")
	CounterTagPolicy   = tracez.Tag("counter.policy")
	CounterTagOverflow = tracez.Tag("counter.overflow")

	// Hook event keys.
	CounterEventWrapped   = hookz.Key("counter.wrapped")
	CounterEventSaturated = hookz.Key("counter.saturated")
	CounterEventRejected  = hookz.Key("counter.rejected")
)

// CounterEvent describes one overflow decision made by a Counter. It is emitted
// via hookz whenever an addition trips the counter's policy, allowing external
// systems to track wraparounds, saturation, and rejected additions.
type CounterEvent[T Unsigned] struct {
	Name      Name      // Counter instance name
	Policy    Policy    // Policy in effect when the event fired
	Before    T         // Value before the addition
	Delta     T         // The addend
	Value     T         // Value after the policy was applied
	Limit     T         // Configured bound
	Timestamp time.Time // When the event occurred
}

// Counter is a bounded accumulator. Additions below the limit behave like plain
// integer addition; an addition that would exceed the limit is resolved by the
// counter's Policy: Wrap reduces modulo the range size, Saturate pegs the value
// at the limit, and Reject refuses the addition and returns a *OverflowError
// that matches ErrOverflow with errors.Is.
//
// CRITICAL: Counter is a STATEFUL component. Create it once and reuse it - a
// fresh Counter per call always starts from zero and its policy never engages.
//
// The limit defaults to the maximum value of T, giving native fixed-width
// semantics; SetLimit lowers the bound for quota-style use.
//
// Example - saturating request quota:
//
//	quota := boundz.NewCounter[uint32]("api-quota", boundz.Saturate)
//	quota.SetLimit(10_000)
//
//	quota.OnSaturated(func(_ context.Context, e boundz.CounterEvent[uint32]) error {
//	    alert.Warn("quota %s pegged at %d", e.Name, e.Limit)
//	    return nil
//	})
//
//	used, _ := quota.Add(ctx, cost)
//
// Counter is safe for concurrent use. The policy and limit can be updated at
// runtime for dynamic behavior.
//
// # Observability
//
// Counter provides comprehensive observability through metrics, tracing, and events:
//
// Metrics:
//   - counter.adds.total: Counter of Add calls
//   - counter.overflows.total: Counter of additions that tripped the policy
//   - counter.saturated.total: Counter of additions clamped at the limit
//   - counter.rejected.total: Counter of additions refused under Reject
//   - counter.value: Gauge tracking the current value
//
// Traces:
//   - counter.add: Span for each addition
//
// Events (via hooks):
//   - counter.wrapped: Fired when an addition wrapped past the limit
//   - counter.saturated: Fired when an addition was clamped at the limit
//   - counter.rejected: Fired when an addition was refused
type Counter[T Unsigned] struct {
	clock  clockz.Clock
	name   Name
	policy Policy
	value  T
	limit  T
	mu     sync.RWMutex

	// Observability
	metrics *metricz.Registry
	tracer  *tracez.Tracer
	hooks   *hookz.Hooks[CounterEvent[T]]
}

// NewCounter creates a Counter with the given name and overflow policy.
// The limit defaults to the maximum value of T and the value starts at zero.
func NewCounter[T Unsigned](name Name, policy Policy) *Counter[T] {
	// Initialize observability components
	registry := metricz.New()
	tracer := tracez.New()

	// Register metrics
	registry.Counter(CounterAddsTotal)
	registry.Counter(CounterOverflowsTotal)
	registry.Counter(CounterSaturatedTotal)
	registry.Counter(CounterRejectedTotal)
	registry.Gauge(CounterValueGauge)

	return &Counter[T]{
		name:    name,
		policy:  policy,
		limit:   MaxOf[T](),
		metrics: registry,
		tracer:  tracer,
		hooks:   hookz.New[CounterEvent[T]](),
	}
}

// Add applies delta to the counter under its policy and returns the resulting
// value. Under Reject, an addition that would exceed the limit leaves the value
// unchanged and returns a *OverflowError; the other policies never return an
// error. The context is passed to the span and to hook handlers.
func (c *Counter[T]) Add(ctx context.Context, delta T) (T, error) {
	c.mu.Lock()

	ctx, span := c.tracer.StartSpan(ctx, CounterAddSpan)
	defer span.Finish()
	span.SetTag(CounterTagName, string(c.name))
	span.SetTag(CounterTagPolicy, string(c.policy))

	c.metrics.Counter(CounterAddsTotal).Inc()

	before := c.value
	headroom := c.limit - c.value

	if delta <= headroom {
		// In range - plain addition, no policy involved
		c.value += delta
		value := c.value
		c.metrics.Gauge(CounterValueGauge).Set(float64(value))
		span.SetTag(CounterTagOverflow, "false")
		c.mu.Unlock()
		return value, nil
	}

	// The addition trips the policy
	c.metrics.Counter(CounterOverflowsTotal).Inc()
	span.SetTag(CounterTagOverflow, "true")

	event := CounterEvent[T]{
		Name:      c.name,
		Policy:    c.policy,
		Before:    before,
		Delta:     delta,
		Limit:     c.limit,
		Timestamp: c.getClock().Now(),
	}

	switch c.policy {
	case Saturate:
		c.value = c.limit
		c.metrics.Counter(CounterSaturatedTotal).Inc()
	case Reject:
		c.metrics.Counter(CounterRejectedTotal).Inc()
	default: // Wrap
		if c.limit == MaxOf[T]() {
			// Full range - native modular addition
			c.value = before + delta
		} else {
			// Reduced range [0, limit]: the step from limit to 0 consumes
			// one unit of the excess, the rest reduces modulo limit+1.
			excess := delta - headroom - 1
			c.value = excess % (c.limit + 1)
		}
	}

	value := c.value
	event.Value = value
	c.metrics.Gauge(CounterValueGauge).Set(float64(value))
	c.mu.Unlock()

	switch event.Policy {
	case Saturate:
		_ = c.hooks.Emit(ctx, CounterEventSaturated, event) //nolint:errcheck
		return value, nil
	case Reject:
		_ = c.hooks.Emit(ctx, CounterEventRejected, event) //nolint:errcheck
		return value, &OverflowError[T]{
			Counter:   c.name,
			Value:     before,
			Delta:     delta,
			Limit:     event.Limit,
			Timestamp: event.Timestamp,
		}
	default:
		_ = c.hooks.Emit(ctx, CounterEventWrapped, event) //nolint:errcheck
		return value, nil
	}
}

// Value returns the current counter value.
func (c *Counter[T]) Value() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Reset sets the counter back to zero.
func (c *Counter[T]) Reset() *Counter[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = 0
	c.metrics.Gauge(CounterValueGauge).Set(0)
	return c
}

// SetLimit updates the counter's bound. Lowering the limit below the current
// value clamps the value to the new limit.
func (c *Counter[T]) SetLimit(limit T) *Counter[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.limit = limit
	if c.value > limit {
		c.value = limit
		c.metrics.Gauge(CounterValueGauge).Set(float64(limit))
	}
	return c
}

// SetPolicy updates the overflow policy.
// This allows for dynamic behavior changes at runtime.
func (c *Counter[T]) SetPolicy(policy Policy) *Counter[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.policy = policy
	return c
}

// Limit returns the current bound.
func (c *Counter[T]) Limit() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.limit
}

// OverflowPolicy returns the current overflow policy.
func (c *Counter[T]) OverflowPolicy() Policy {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.policy
}

// Name returns the name of this counter.
func (c *Counter[T]) Name() Name {
	return c.name
}

// WithClock sets a custom clock for testing.
func (c *Counter[T]) WithClock(clock clockz.Clock) *Counter[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clock = clock
	return c
}

// getClock returns the clock to use.
func (c *Counter[T]) getClock() clockz.Clock {
	if c.clock == nil {
		return clockz.RealClock
	}
	return c.clock
}

// Metrics returns the metrics registry for this counter.
func (c *Counter[T]) Metrics() *metricz.Registry {
	return c.metrics
}

// Tracer returns the tracer for this counter.
func (c *Counter[T]) Tracer() *tracez.Tracer {
	return c.tracer
}

// Close gracefully shuts down observability components.
func (c *Counter[T]) Close() error {
	if c.tracer != nil {
		c.tracer.Close()
	}
	c.hooks.Close()
	return nil
}

// OnWrapped registers a handler for additions that wrapped past the limit.
// The handler is called asynchronously after Add returns.
func (c *Counter[T]) OnWrapped(handler func(context.Context, CounterEvent[T]) error) error {
	_, err := c.hooks.Hook(CounterEventWrapped, handler)
	return err
}

// OnSaturated registers a handler for additions clamped at the limit.
// The handler is called asynchronously after Add returns.
func (c *Counter[T]) OnSaturated(handler func(context.Context, CounterEvent[T]) error) error {
	_, err := c.hooks.Hook(CounterEventSaturated, handler)
	return err
}

// OnRejected registers a handler for additions refused under the Reject policy.
// The handler is called asynchronously after Add returns.
func (c *Counter[T]) OnRejected(handler func(context.Context, CounterEvent[T]) error) error {
	_, err := c.hooks.Hook(CounterEventRejected, handler)
	return err
}
