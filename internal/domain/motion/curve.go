package motion

import "sort"

// Curve maps normalized time in [0,1] to a normalized distance.
// Curves need not be monotonic.
type Curve interface {
	Evaluate(t float64) float64
}

// CurveFunc adapts a plain function to the Curve interface.
type CurveFunc func(t float64) float64

// Evaluate implements Curve.
func (f CurveFunc) Evaluate(t float64) float64 { return f(t) }

// LinearCurve returns t clamped to [0,1].
type LinearCurve struct{}

// Evaluate implements Curve.
func (LinearCurve) Evaluate(t float64) float64 { return Clamp01(t) }

// EaseInOutCurve is a smoothstep ease.
type EaseInOutCurve struct{}

// Evaluate implements Curve.
func (EaseInOutCurve) Evaluate(t float64) float64 {
	t = Clamp01(t)
	return t * t * (3 - 2*t)
}

// Key is one control point of a KeyframeCurve.
type Key struct {
	Time  float64
	Value float64
}

// KeyframeCurve interpolates linearly between keys.
// Times outside the key range evaluate to the first/last value.
type KeyframeCurve struct {
	keys []Key
}

// NewKeyframeCurve creates a curve from keys in any order.
func NewKeyframeCurve(keys ...Key) *KeyframeCurve {
	sorted := make([]Key, len(keys))
	copy(sorted, keys)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Time < sorted[j].Time
	})
	return &KeyframeCurve{keys: sorted}
}

// Evaluate implements Curve.
func (c *KeyframeCurve) Evaluate(t float64) float64 {
	n := len(c.keys)
	if n == 0 {
		return 0
	}
	if t <= c.keys[0].Time {
		return c.keys[0].Value
	}
	if t >= c.keys[n-1].Time {
		return c.keys[n-1].Value
	}

	i := sort.Search(n, func(i int) bool { return c.keys[i].Time >= t })
	a, b := c.keys[i-1], c.keys[i]
	f := SafeDivide(t-a.Time, b.Time-a.Time)
	return a.Value + (b.Value-a.Value)*f
}

// Keys returns a copy of the control points.
func (c *KeyframeCurve) Keys() []Key {
	out := make([]Key, len(c.keys))
	copy(out, c.keys)
	return out
}
