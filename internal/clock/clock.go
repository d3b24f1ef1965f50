// Package clock abstracts the single wall-clock read a verification needs
// behind an injectable source (spec.md §9: "abstract now() behind an
// injectable source to make timing scenarios deterministic under test"),
// wrapping github.com/andres-erbsen/clock the way the teacher's go.mod
// already pulls it in transitively.
package clock

import "github.com/andres-erbsen/clock"

// Clock reports the current time. It is the interface httpsig's
// verification path takes its one wall-clock read from (spec.md §5: "There
// is one wall-clock read per verification ... implementations must take it
// once and reuse it across all three checks").
type Clock = clock.Clock

// New returns the real, wall-clock-backed Clock used in production.
func New() Clock { return clock.New() }

// NewMock returns a controllable Clock for deterministic timing tests
// (created/expires/maxAge/maxSkew scenarios).
func NewMock() *clock.Mock { return clock.NewMock() }
