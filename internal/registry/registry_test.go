package registry

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"workorder.io/engine/internal/pkg/apperr"
)

type fakeContract struct {
	id string
}

func (f *fakeContract) TypeID() string      { return f.id }
func (f *fakeContract) Schema() interface{} { return nil }
func (f *fakeContract) Plan(ctx context.Context, payload map[string]interface{}) ([]ItemSpec, error) {
	return []ItemSpec{{Type: f.id, Input: payload}}, nil
}
func (f *fakeContract) ValidateSubmission(ctx context.Context, item ItemSnapshot, result map[string]interface{}) []FieldError {
	return nil
}
func (f *fakeContract) ReadyForApproval(ctx context.Context, order OrderSnapshot, items []ItemSnapshot) bool {
	return true
}
func (f *fakeContract) Apply(ctx context.Context, order OrderSnapshot, items []ItemSnapshot) (map[string]interface{}, error) {
	return map[string]interface{}{"summary": "done"}, nil
}

func TestTypeRegistry_RegisterAndLookup(t *testing.T) {
	r := New()
	r.Register(&fakeContract{id: "t1"})

	got, err := r.Lookup("t1")
	require.NoError(t, err)
	require.Equal(t, "t1", got.TypeID())
}

func TestTypeRegistry_LookupUnknownType(t *testing.T) {
	r := New()

	_, err := r.Lookup("missing")
	require.Error(t, err)

	appErr, ok := apperr.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperr.CodeTypeNotFound, appErr.Code)
}

func TestTypeRegistry_RegisterReplacesExisting(t *testing.T) {
	r := New()
	first := &fakeContract{id: "t1"}
	second := &fakeContract{id: "t1"}
	r.Register(first)
	r.Register(second)

	got, err := r.Lookup("t1")
	require.NoError(t, err)
	require.Same(t, second, got)
}

func TestTypeRegistry_ConcurrentRegisterAndLookup(t *testing.T) {
	r := New()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r.Register(&fakeContract{id: "t1"})
			_, _ = r.Lookup("t1")
		}(i)
	}
	wg.Wait()

	ids := r.TypeIDs()
	require.Len(t, ids, 1)
}
