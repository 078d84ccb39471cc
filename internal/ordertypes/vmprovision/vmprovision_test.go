package vmprovision

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"workorder.io/engine/internal/pkg/logger"
	"workorder.io/engine/internal/provider"
	"workorder.io/engine/internal/registry"
	"workorder.io/engine/internal/service"
)

func init() {
	_ = logger.Init("error", "json")
}

func TestTypeID(t *testing.T) {
	require.Equal(t, "vm.provision", New(nil).TypeID())
}

func TestPlan_ProducesOneItem(t *testing.T) {
	payload := map[string]interface{}{"name": "vm-a", "cpu": float64(2)}

	specs, err := New(nil).Plan(context.Background(), payload)
	require.NoError(t, err)
	require.Len(t, specs, 1)
	require.Equal(t, "vm.create", specs[0].Type)
	require.Equal(t, 3, specs[0].MaxAttempts)
	require.Equal(t, payload, specs[0].Input)
}

func TestValidateSubmission_RequiresVMName(t *testing.T) {
	errs := New(nil).ValidateSubmission(context.Background(), registry.ItemSnapshot{}, map[string]interface{}{
		"status": "RUNNING",
	})
	require.Len(t, errs, 1)
	require.Equal(t, "vm_name", errs[0].Field)
}

func TestValidateSubmission_RejectsUnknownStatus(t *testing.T) {
	errs := New(nil).ValidateSubmission(context.Background(), registry.ItemSnapshot{}, map[string]interface{}{
		"vm_name": "vm-a",
		"status":  "BOGUS",
	})
	require.Len(t, errs, 1)
	require.Equal(t, "status", errs[0].Field)
}

func TestValidateSubmission_AcceptsCompleteResult(t *testing.T) {
	errs := New(nil).ValidateSubmission(context.Background(), registry.ItemSnapshot{}, map[string]interface{}{
		"vm_name": "vm-a",
		"status":  "RUNNING",
	})
	require.Empty(t, errs)
}

func TestReadyForApproval_FalseUntilResultPresent(t *testing.T) {
	typ := New(nil)
	notReady := []registry.ItemSnapshot{{ID: "i1"}}
	require.False(t, typ.ReadyForApproval(context.Background(), registry.OrderSnapshot{}, notReady))

	ready := []registry.ItemSnapshot{{ID: "i1", Result: map[string]interface{}{"vm_name": "vm-a"}}}
	require.True(t, typ.ReadyForApproval(context.Background(), registry.OrderSnapshot{}, ready))
}

func TestReadyForApproval_FalseWhenNoItems(t *testing.T) {
	require.False(t, New(nil).ReadyForApproval(context.Background(), registry.OrderSnapshot{}, nil))
}

func TestSpecFromInput_RejectsMissingFields(t *testing.T) {
	_, err := specFromInput(map[string]interface{}{"name": "vm-a"})
	require.Error(t, err)
}

func TestSpecFromInput_RejectsNonPositiveResources(t *testing.T) {
	_, err := specFromInput(map[string]interface{}{
		"name": "vm-a", "namespace": "ns", "cluster": "c1", "image": "img",
		"cpu": float64(0), "memory_mb": float64(512),
	})
	require.Error(t, err)
}

func TestSpecFromInput_BuildsSpec(t *testing.T) {
	spec, err := specFromInput(map[string]interface{}{
		"name": "vm-a", "namespace": "ns", "cluster": "c1", "image": "img",
		"cpu": float64(2), "memory_mb": float64(2048), "disk_gb": float64(20),
	})
	require.NoError(t, err)
	require.Equal(t, "vm-a", spec.Name)
	require.Equal(t, "ns", spec.namespace)
	require.Equal(t, "c1", spec.cluster)
	require.Equal(t, "img", spec.Image)
	require.Equal(t, 2, spec.CPU)
	require.Equal(t, 2048, spec.MemoryMB)
	require.Equal(t, 20, spec.DiskGB)
}

func TestIntFromInput_HandlesFloatAndInt(t *testing.T) {
	require.Equal(t, 4, intFromInput(float64(4)))
	require.Equal(t, 4, intFromInput(4))
	require.Equal(t, 0, intFromInput("nope"))
	require.Equal(t, 0, intFromInput(nil))
}

func TestApply_RejectsWrongItemCount(t *testing.T) {
	_, err := New(nil).Apply(context.Background(), registry.OrderSnapshot{ID: "o1"}, nil)
	require.Error(t, err)
}

func TestApply_CreatesVMAgainstProvider(t *testing.T) {
	vmSvc := service.NewVMService(provider.NewMockProvider())
	typ := New(vmSvc)

	items := []registry.ItemSnapshot{
		{
			ID: "i1",
			Input: map[string]interface{}{
				"name": "vm-a", "namespace": "ns", "cluster": "c1", "image": "img",
				"cpu": float64(2), "memory_mb": float64(2048),
			},
		},
	}

	result, err := typ.Apply(context.Background(), registry.OrderSnapshot{ID: "o1"}, items)
	require.NoError(t, err)
	require.Equal(t, "vm-a", result["vm_name"])
	require.Equal(t, "ns", result["namespace"])
	require.Equal(t, "c1", result["cluster"])
}

func TestApply_WrapsInputErrorWithOrderID(t *testing.T) {
	typ := New(service.NewVMService(provider.NewMockProvider()))

	items := []registry.ItemSnapshot{{ID: "i1", Input: map[string]interface{}{"name": "vm-a"}}}
	_, err := typ.Apply(context.Background(), registry.OrderSnapshot{ID: "o1"}, items)
	require.ErrorContains(t, err, "o1")
}
