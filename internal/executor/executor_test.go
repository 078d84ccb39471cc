package executor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"workorder.io/engine/internal/registry"
)

func TestChecksumOf_Deterministic(t *testing.T) {
	payload := map[string]interface{}{"a": 1, "b": "two"}

	got := checksumOf(payload)
	want := checksumOf(map[string]interface{}{"a": 1, "b": "two"})
	require.Equal(t, want, got)
	require.Len(t, got, 64) // hex-encoded sha256
}

func TestChecksumOf_DiffersByPayload(t *testing.T) {
	a := checksumOf(map[string]interface{}{"a": 1})
	b := checksumOf(map[string]interface{}{"a": 2})
	require.NotEqual(t, a, b)
}

func TestNotesString_NilIsEmpty(t *testing.T) {
	require.Equal(t, "", notesString(nil))
}

func TestNotesString_MarshalsMap(t *testing.T) {
	got := notesString(map[string]interface{}{"reason": "retry"})
	require.Contains(t, got, "reason")
	require.Contains(t, got, "retry")
}

func TestFieldErrsToMap(t *testing.T) {
	errs := []registry.FieldError{
		{Field: "name", Message: "required"},
		{Field: "age", Message: "must be positive"},
	}
	got := fieldErrsToMap(errs)
	require.Equal(t, "required", got["name"])
	require.Equal(t, "must be positive", got["age"])
}

func TestToDetailErrors(t *testing.T) {
	errs := []registry.FieldError{{Field: "name", Message: "required"}}
	got := toDetailErrors(errs)
	require.Len(t, got, 1)
	require.Equal(t, "name", got[0].Field)
	require.Equal(t, "required", got[0].Message)
}

func TestFinalizeMode_Constants(t *testing.T) {
	require.Equal(t, FinalizeMode("strict"), FinalizeStrict)
	require.Equal(t, FinalizeMode("best_effort"), FinalizeBestEffort)
}
