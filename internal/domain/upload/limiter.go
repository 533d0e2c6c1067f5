package upload

// Limiter bounds how many uploads are processed at once. Compression is
// CPU-heavy; everything past the ceiling is rejected instead of queued.
type Limiter struct {
	slots chan struct{}
}

// NewLimiter creates a limiter with the given concurrency ceiling
func NewLimiter(max int) *Limiter {
	return &Limiter{slots: make(chan struct{}, max)}
}

// TryAcquire claims a slot without blocking. When it succeeds the caller
// must invoke the returned release function exactly once.
func (l *Limiter) TryAcquire() (release func(), ok bool) {
	select {
	case l.slots <- struct{}{}:
		return func() { <-l.slots }, true
	default:
		return nil, false
	}
}
