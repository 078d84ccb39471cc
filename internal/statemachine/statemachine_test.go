package statemachine

import "testing"

func TestDefaultOrderTransitions_Allowed(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{"queued", "checked_out", true},
		{"queued", "submitted", true},
		{"queued", "rejected", true},
		{"queued", "failed", true},
		{"queued", "applied", false},
		{"checked_out", "in_progress", true},
		{"checked_out", "queued", true},
		{"checked_out", "completed", false},
		{"submitted", "approved", true},
		{"submitted", "queued", false},
		{"approved", "applied", true},
		{"applied", "completed", true},
		{"rejected", "queued", true},
		{"rejected", "dead_lettered", true},
		{"completed", "queued", false},
		{"dead_lettered", "queued", false},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			if got := DefaultOrderTransitions.Allowed(tt.from, tt.to); got != tt.want {
				t.Errorf("Allowed(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestDefaultItemTransitions_Allowed(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{"queued", "leased", true},
		{"queued", "in_progress", false},
		{"leased", "in_progress", true},
		{"leased", "queued", true},
		{"submitted", "accepted", true},
		{"submitted", "rejected", true},
		{"accepted", "completed", true},
		{"accepted", "queued", false},
		{"rejected", "queued", true},
		{"rejected", "completed", false},
		{"failed", "queued", true},
		{"failed", "dead_lettered", true},
		{"completed", "failed", false},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			if got := DefaultItemTransitions.Allowed(tt.from, tt.to); got != tt.want {
				t.Errorf("Allowed(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestTerminalStatesHaveNoOutgoingEdges(t *testing.T) {
	for _, state := range []string{"completed", "dead_lettered"} {
		if edges := DefaultOrderTransitions[state]; len(edges) != 0 {
			t.Errorf("order state %q should be terminal, has edges %v", state, edges)
		}
		if edges := DefaultItemTransitions[state]; len(edges) != 0 {
			t.Errorf("item state %q should be terminal, has edges %v", state, edges)
		}
	}
}

func TestNew_NilTablesFallBackToDefaults(t *testing.T) {
	m := New(nil, nil, nil)
	if m.tableFor(EntityOrder).Allowed("queued", "checked_out") != true {
		t.Error("expected default order table to allow queued -> checked_out")
	}
	if m.tableFor(EntityItem).Allowed("queued", "leased") != true {
		t.Error("expected default item table to allow queued -> leased")
	}
}
