package geom

// CastInt converts v to To, reporting false if the value is not
// representable in To.
func CastInt[To, From Integer](v From) (To, bool) {
	t := To(v)
	if From(t) != v || (v < 0) != (t < 0) {
		return 0, false
	}
	return t, true
}

// Cast converts both components of p to To.
func Cast[To, From Integer](p Pair[From]) (Pair[To], bool) {
	x, ok := CastInt[To](p.X)
	if !ok {
		return Pair[To]{}, false
	}
	y, ok := CastInt[To](p.Y)
	if !ok {
		return Pair[To]{}, false
	}
	return Pair[To]{X: x, Y: y}, true
}

// AddInt returns a + b, reporting false on overflow.
func AddInt[T Integer](a, b T) (T, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, false
	}
	return s, true
}

// SubInt returns a - b, reporting false on overflow.
func SubInt[T Integer](a, b T) (T, bool) {
	s := a - b
	if (b > 0 && s > a) || (b < 0 && s < a) {
		return 0, false
	}
	return s, true
}

// CheckedAdd returns p + o, reporting false if either component overflows.
func CheckedAdd[T Integer](p, o Pair[T]) (Pair[T], bool) {
	x, ok := AddInt(p.X, o.X)
	if !ok {
		return Pair[T]{}, false
	}
	y, ok := AddInt(p.Y, o.Y)
	if !ok {
		return Pair[T]{}, false
	}
	return Pair[T]{X: x, Y: y}, true
}

// CheckedSub returns p - o, reporting false if either component overflows.
func CheckedSub[T Integer](p, o Pair[T]) (Pair[T], bool) {
	x, ok := SubInt(p.X, o.X)
	if !ok {
		return Pair[T]{}, false
	}
	y, ok := SubInt(p.Y, o.Y)
	if !ok {
		return Pair[T]{}, false
	}
	return Pair[T]{X: x, Y: y}, true
}
