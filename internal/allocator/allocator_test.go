package allocator

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"workorder.io/engine/internal/registry"
)

type provisionPayload struct {
	Message string `json:"msg" validate:"required"`
}

type schemaContract struct {
	id     string
	schema interface{}
}

func (c *schemaContract) TypeID() string      { return c.id }
func (c *schemaContract) Schema() interface{} { return c.schema }
func (c *schemaContract) Plan(ctx context.Context, payload map[string]interface{}) ([]registry.ItemSpec, error) {
	return nil, nil
}
func (c *schemaContract) ValidateSubmission(ctx context.Context, item registry.ItemSnapshot, result map[string]interface{}) []registry.FieldError {
	return nil
}
func (c *schemaContract) ReadyForApproval(ctx context.Context, order registry.OrderSnapshot, items []registry.ItemSnapshot) bool {
	return true
}
func (c *schemaContract) Apply(ctx context.Context, order registry.OrderSnapshot, items []registry.ItemSnapshot) (map[string]interface{}, error) {
	return nil, nil
}

func newTestAllocator() *Allocator {
	return &Allocator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func TestValidatePayload_NoSchemaSkipsValidation(t *testing.T) {
	a := newTestAllocator()
	contract := &schemaContract{id: "t1", schema: nil}

	errs := a.validatePayload(contract, map[string]interface{}{})
	require.Empty(t, errs)
}

func TestValidatePayload_RequiredFieldMissing(t *testing.T) {
	a := newTestAllocator()
	contract := &schemaContract{id: "t1", schema: &provisionPayload{}}

	errs := a.validatePayload(contract, map[string]interface{}{})
	require.NotEmpty(t, errs)
	require.Equal(t, "Message", errs[0].Field)
}

func TestValidatePayload_ValidPayloadPasses(t *testing.T) {
	a := newTestAllocator()
	contract := &schemaContract{id: "t1", schema: &provisionPayload{}}

	errs := a.validatePayload(contract, map[string]interface{}{"msg": "hi"})
	require.Empty(t, errs)
}
