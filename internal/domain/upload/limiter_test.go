package upload

import "testing"

func TestLimiterCeiling(t *testing.T) {
	l := NewLimiter(2)

	r1, ok := l.TryAcquire()
	if !ok {
		t.Fatal("first acquire should succeed")
	}
	_, ok = l.TryAcquire()
	if !ok {
		t.Fatal("second acquire should succeed")
	}
	if _, ok := l.TryAcquire(); ok {
		t.Fatal("third acquire should be rejected")
	}

	r1()
	if _, ok := l.TryAcquire(); !ok {
		t.Fatal("release should free a slot")
	}
}
