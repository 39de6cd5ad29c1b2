package studiosite

import (
	"testing"
	"time"
)

func TestLoginLimiterBlocksAfterMax(t *testing.T) {
	limiter := NewLoginLimiter(2, 200*time.Millisecond)
	ip := "203.0.113.10"

	if !limiter.Check(ip) {
		t.Fatalf("expected fresh ip to pass")
	}
	limiter.Record(ip)
	if !limiter.Check(ip) {
		t.Fatalf("expected ip to pass after one failure")
	}
	limiter.Record(ip)
	if limiter.Check(ip) {
		t.Fatalf("expected ip to be blocked after max failures")
	}
}

func TestLoginLimiterCheckDoesNotRecord(t *testing.T) {
	limiter := NewLoginLimiter(1, 200*time.Millisecond)
	ip := "203.0.113.15"

	// Repeated checks without failures must never block.
	for i := 0; i < 5; i++ {
		if !limiter.Check(ip) {
			t.Fatalf("check %d blocked an ip with no recorded failures", i)
		}
	}
}

func TestLoginLimiterResetsAfterWindow(t *testing.T) {
	limiter := NewLoginLimiter(1, 150*time.Millisecond)
	ip := "203.0.113.20"

	limiter.Record(ip)
	if limiter.Check(ip) {
		t.Fatalf("expected ip to be blocked within the window")
	}

	time.Sleep(200 * time.Millisecond)
	if !limiter.Check(ip) {
		t.Fatalf("expected ip to pass after the window expired")
	}
}

func TestLoginLimiterIsPerIP(t *testing.T) {
	limiter := NewLoginLimiter(1, 200*time.Millisecond)

	limiter.Record("203.0.113.30")
	if limiter.Check("203.0.113.30") {
		t.Fatalf("expected first ip to be blocked")
	}
	if !limiter.Check("203.0.113.31") {
		t.Fatalf("expected second ip to pass independently")
	}
}
