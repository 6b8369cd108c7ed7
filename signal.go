package bst

// Signal is returned by traversal visitors to control the traversal.
//
// The zero value of Signal means 'continue'. A signal created by Stop tells the
// traversal to abort immediately and to hand the result back to the caller.
type Signal[R any] struct {
	stop   bool
	result R
}

// Continue returns a signal which lets a traversal proceed to the next value.
func Continue[R any]() Signal[R] {
	return Signal[R]{}
}

// Stop returns a signal which aborts a traversal, carrying result r.
func Stop[R any](r R) Signal[R] {
	return Signal[R]{stop: true, result: r}
}

// IsStop reports whether s requests (or resulted from) an aborted traversal.
func (s Signal[R]) IsStop() bool {
	return s.stop
}

// Result returns the result carried by a stop signal. For a continue signal,
// Result returns the zero value of R and false.
func (s Signal[R]) Result() (R, bool) {
	if !s.stop {
		var zero R
		return zero, false
	}
	return s.result, true
}
