// Package boundz provides fixed-width bounded-value primitives for Go: overflow-policy
// arithmetic, an Option type for absence, bounds-checked sequence access, and an
// instrumented bounded counter.
//
// # Overview
//
// Go's integer arithmetic silently wraps. boundz makes the overflow behavior an
// explicit, caller-chosen policy instead of an accident. Every arithmetic helper is a
// pure function over fixed-width unsigned values, so results are reproducible and
// trivially testable. The same policies that govern one-shot arithmetic also govern
// the stateful Counter, which announces its overflow decisions through metrics,
// traces, and hook events.
//
// # Core Concepts
//
// Four overflow policies, named after their behavior when a result exceeds the
// representable range:
//
//   - Wrapping: reduce modulo the range size (Go's native behavior, made explicit)
//   - Checked: signal absence via Option instead of returning an out-of-range value
//   - Overflowing: return the wrapped value together with a did-overflow flag
//   - Saturating: clamp to the maximum representable value
//
// Add computes one sum under all four policies at once:
//
//	s := boundz.Add[uint8](250, 10)
//	s.Wrapped    // 4
//	s.Checked    // None
//	s.Overflowed // true (s.Value == 4)
//	s.Saturated  // 255
//
// # Absence vs. Fault
//
// Two distinct failure idioms are modeled, and never mixed:
//
//   - Absence (Option[T]): an expected, recoverable out-of-domain condition.
//     CheckedAdd on overflow and Sequence.Get out of range return None;
//     the caller decides the fallback.
//   - Fault (panic): a programming-error-class precondition violation.
//     Sequence.MustGet out of range panics with a *BoundsError; it is never
//     converted to a default value.
//
// # Bounded Counter
//
// Counter is a stateful accumulator with a configurable bound and one of the three
// recoverable policies (Wrap, Saturate, Reject). It is safe for concurrent use and
// exposes its behavior through metricz counters, tracez spans, and hookz events:
//
//	c := boundz.NewCounter[uint8]("requests", boundz.Saturate)
//	c.OnSaturated(func(_ context.Context, e boundz.CounterEvent[uint8]) error {
//	    log.Printf("counter %s pegged at %d", e.Name, e.Limit)
//	    return nil
//	})
//	v, _ := c.Add(ctx, 200)
//
// CRITICAL: Counter is stateful. Create it once and reuse it; a fresh Counter per
// call always starts from zero and its policy never engages.
//
// # Installation
//
//	go get github.com/derek2403/boundz
//
// Requires Go 1.21+ for generic type constraints.
package boundz
