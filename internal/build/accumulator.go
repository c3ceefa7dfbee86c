package build

// optional holds a value that may be set at most once. Setting it a second
// time makes it absent again; the cardinality check in apply reports the
// repetition, so the accumulator only has to keep the outcome predictable.
type optional[T any] struct {
	seen int
	val  T
}

func (o *optional[T]) set(v T) {
	o.seen++
	o.val = v
}

func (o *optional[T]) ok() bool { return o.seen == 1 }

// required holds a value that must be set exactly once. When it was never
// set, or set more than once, value falls back to the caller's sentinel.
type required[T any] struct {
	seen int
	val  T
}

func (r *required[T]) set(v T) {
	r.seen++
	if r.seen == 1 {
		r.val = v
	}
}

func (r *required[T]) value(sentinel T) T {
	if r.seen == 1 {
		return r.val
	}
	return sentinel
}

// multi collects any number of values in add order.
type multi[T any] struct {
	vals []T
}

func (m *multi[T]) add(v T) { m.vals = append(m.vals, v) }

// counter hands out auto-incremented bit positions and enum values. An
// explicit value in the source resets the counter to continue from there.
type counter struct {
	next float64
}

func (ct *counter) take() float64 {
	v := ct.next
	ct.next++
	return v
}

func (ct *counter) reset(v float64) { ct.next = v + 1 }
