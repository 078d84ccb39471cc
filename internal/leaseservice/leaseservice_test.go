package leaseservice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"workorder.io/engine/ent"
)

func TestFilterRetryBackoff_NoBackoffConfiguredKeepsAll(t *testing.T) {
	s := &Service{cfg: Config{RetryBackoff: 0}}
	items := []*ent.Item{{ID: "i1", Attempts: 5, UpdatedAt: time.Now().UTC()}}

	got := s.filterRetryBackoff(items)
	require.Len(t, got, 1)
}

func TestFilterRetryBackoff_NeverAttemptedAlwaysEligible(t *testing.T) {
	s := &Service{cfg: Config{RetryBackoff: time.Minute}}
	items := []*ent.Item{{ID: "i1", Attempts: 0, UpdatedAt: time.Now().UTC()}}

	got := s.filterRetryBackoff(items)
	require.Len(t, got, 1)
}

func TestFilterRetryBackoff_RecentlyFailedExcluded(t *testing.T) {
	s := &Service{cfg: Config{RetryBackoff: time.Minute, RetryJitter: 0}}
	items := []*ent.Item{{ID: "i1", Attempts: 1, UpdatedAt: time.Now().UTC()}}

	got := s.filterRetryBackoff(items)
	require.Empty(t, got)
}

func TestFilterRetryBackoff_PastBackoffWindowEligible(t *testing.T) {
	s := &Service{cfg: Config{RetryBackoff: time.Minute, RetryJitter: 0}}
	items := []*ent.Item{{ID: "i1", Attempts: 1, UpdatedAt: time.Now().UTC().Add(-2 * time.Minute)}}

	got := s.filterRetryBackoff(items)
	require.Len(t, got, 1)
}

func TestFilterRetryBackoff_EligibleOnceBackoffPlusMaxJitterElapsed(t *testing.T) {
	s := &Service{cfg: Config{RetryBackoff: time.Minute, RetryJitter: 30 * time.Second}}
	// Jitter is drawn from [0s, 30s], so the window is at most 60s+30s.
	items := []*ent.Item{{ID: "i1", Attempts: 1, UpdatedAt: time.Now().UTC().Add(-90 * time.Second)}}

	// 90s elapsed reaches the largest possible window, so the item is
	// eligible whatever the jitter draw.
	got := s.filterRetryBackoff(items)
	require.Len(t, got, 1)
}
