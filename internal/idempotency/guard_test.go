package idempotency

import (
	"context"
	"testing"
)

func TestGuard_HashKey_Deterministic(t *testing.T) {
	g := New(nil, []byte("salt-1"))

	a := g.HashKey("client-key-1")
	b := g.HashKey("client-key-1")
	if a != b {
		t.Fatalf("HashKey should be deterministic: got %q and %q", a, b)
	}
}

func TestGuard_HashKey_DiffersByKey(t *testing.T) {
	g := New(nil, []byte("salt-1"))

	if g.HashKey("client-key-1") == g.HashKey("client-key-2") {
		t.Fatal("different client keys must hash to different values")
	}
}

func TestGuard_HashKey_DiffersBySalt(t *testing.T) {
	a := New(nil, []byte("salt-1"))
	b := New(nil, []byte("salt-2"))

	if a.HashKey("client-key-1") == b.HashKey("client-key-1") {
		t.Fatal("different salts must hash the same key differently")
	}
}

func TestPollBackoff_BoundedAndIncreasing(t *testing.T) {
	if len(pollBackoff) == 0 {
		t.Fatal("pollBackoff must not be empty")
	}
	for i := 1; i < len(pollBackoff); i++ {
		if pollBackoff[i] <= pollBackoff[i-1] {
			t.Errorf("pollBackoff should be strictly increasing: step %d (%v) <= step %d (%v)",
				i, pollBackoff[i], i-1, pollBackoff[i-1])
		}
	}
}

func TestGuard_Run_RequiresClientKey(t *testing.T) {
	g := New(nil, []byte("salt"))

	_, _, err := g.Run(context.Background(), "propose:order", "", nil)
	if err == nil {
		t.Fatal("expected an idempotency-required error for an empty client key")
	}
}
