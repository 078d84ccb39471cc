// Package vmprovision implements the demo OrderTypeContract that plugs a VM-provisioning domain into the engine: one
// order, one item, and an Apply that calls out to the KubeVirt
// provisioning stack (internal/service, internal/provider,
// internal/domain), adapted from internal/jobs/vm_create.go's
// catalog-driven flow but simplified to take cpu/memory/image
// straight off the order payload instead of resolving them through a
// Template/InstanceSize catalog (out of scope for this engine).
//
// Import Path (ADR-0016): workorder.io/engine/internal/ordertypes/vmprovision
package vmprovision

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"workorder.io/engine/internal/domain"
	"workorder.io/engine/internal/pkg/logger"
	"workorder.io/engine/internal/registry"
	"workorder.io/engine/internal/service"
)

// TypeID is the registry key this contract is registered under.
const TypeID = "vm.provision"

// itemType is the single item type Plan produces.
const itemType = "vm.create"

// Payload is the propose() payload schema for vm.provision orders.
// Allocator.validatePayload decodes the order's raw payload into this
// shape and runs the validator tags over it.
type Payload struct {
	Name      string `json:"name" validate:"required"`
	Namespace string `json:"namespace" validate:"required"`
	Cluster   string `json:"cluster" validate:"required"`
	Image     string `json:"image" validate:"required"`
	CPU       int    `json:"cpu" validate:"required,min=1"`
	MemoryMB  int    `json:"memory_mb" validate:"required,min=128"`
	DiskGB    int    `json:"disk_gb" validate:"omitempty,min=1"`
}

// Result is the shape ValidateSubmission expects an item's result to
// match once the provisioning worker reports back.
type Result struct {
	VMName string `json:"vm_name"`
	Status string `json:"status"`
}

// Type implements registry.OrderTypeContract for VM provisioning.
type Type struct {
	vmService *service.VMService
}

// New builds the vm.provision contract over a VMService.
func New(vmService *service.VMService) *Type {
	return &Type{vmService: vmService}
}

var _ registry.OrderTypeContract = (*Type)(nil)

func (t *Type) TypeID() string { return TypeID }

func (t *Type) Schema() interface{} { return &Payload{} }

// Plan produces the single vm.create item a vm.provision order needs.
// There is no Template/InstanceSize catalog resolution: cpu/memory_mb/image/disk_gb travel directly in Input.
func (t *Type) Plan(_ context.Context, payload map[string]interface{}) ([]registry.ItemSpec, error) {
	return []registry.ItemSpec{
		{
			Type:        itemType,
			Input:       payload,
			MaxAttempts: 3,
		},
	}, nil
}

// ValidateSubmission requires a non-empty vm_name and a recognized
// domain.VMStatus in the submitted result.
func (t *Type) ValidateSubmission(_ context.Context, _ registry.ItemSnapshot, result map[string]interface{}) []registry.FieldError {
	var errs []registry.FieldError

	vmName, _ := result["vm_name"].(string)
	if strings.TrimSpace(vmName) == "" {
		errs = append(errs, registry.FieldError{Field: "vm_name", Message: "vm_name is required"})
	}

	status, _ := result["status"].(string)
	if !isKnownVMStatus(status) {
		errs = append(errs, registry.FieldError{Field: "status", Message: "status is not a recognized VM status"})
	}

	return errs
}

func isKnownVMStatus(status string) bool {
	switch domain.VMStatus(status) {
	case domain.VMStatusCreating, domain.VMStatusRunning, domain.VMStatusStopping,
		domain.VMStatusStopped, domain.VMStatusDeleting, domain.VMStatusFailed,
		domain.VMStatusPending, domain.VMStatusMigrating, domain.VMStatusPaused:
		return true
	default:
		return false
	}
}

// ReadyForApproval is ready once the order's single item has submitted
// a result (vm.provision orders never fan out into multiple items).
func (t *Type) ReadyForApproval(_ context.Context, _ registry.OrderSnapshot, items []registry.ItemSnapshot) bool {
	for _, it := range items {
		if it.Result == nil {
			return false
		}
	}
	return len(items) > 0
}

// Apply executes the K8s VM creation, mirroring VMCreateWorker.Work's
// step 6. The executor calls it from Approve while the approve
// transaction is still open. Idempotent: a VM that a prior partial
// attempt already created on the cluster is returned as-is by
// VMService.ExecuteK8sCreate.
func (t *Type) Apply(ctx context.Context, order registry.OrderSnapshot, items []registry.ItemSnapshot) (map[string]interface{}, error) {
	if len(items) != 1 {
		return nil, fmt.Errorf("vm.provision order %s: expected exactly one item, got %d", order.ID, len(items))
	}
	item := items[0]

	spec, err := specFromInput(item.Input)
	if err != nil {
		return nil, fmt.Errorf("vm.provision order %s: %w", order.ID, err)
	}

	vm, err := t.vmService.ExecuteK8sCreate(ctx, spec.cluster, spec.namespace, spec.VMSpec)
	if err != nil {
		return nil, fmt.Errorf("vm.provision order %s: execute k8s create: %w", order.ID, err)
	}

	logger.Info("vm.provision applied",
		zap.String("order_id", order.ID),
		zap.String("vm_name", vm.Name),
		zap.String("cluster", spec.cluster),
		zap.String("namespace", spec.namespace),
	)

	return map[string]interface{}{
		"vm_name":   vm.Name,
		"namespace": vm.Namespace,
		"cluster":   spec.cluster,
		"status":    string(vm.Status),
	}, nil
}

type provisionSpec struct {
	*domain.VMSpec
	cluster   string
	namespace string
}

func specFromInput(input map[string]interface{}) (*provisionSpec, error) {
	name, _ := input["name"].(string)
	namespace, _ := input["namespace"].(string)
	cluster, _ := input["cluster"].(string)
	image, _ := input["image"].(string)
	if strings.TrimSpace(name) == "" || strings.TrimSpace(namespace) == "" ||
		strings.TrimSpace(cluster) == "" || strings.TrimSpace(image) == "" {
		return nil, fmt.Errorf("missing required field among name/namespace/cluster/image")
	}

	cpu := intFromInput(input["cpu"])
	memoryMB := intFromInput(input["memory_mb"])
	diskGB := intFromInput(input["disk_gb"])
	if cpu <= 0 || memoryMB <= 0 {
		return nil, fmt.Errorf("cpu and memory_mb must be positive")
	}

	return &provisionSpec{
		VMSpec: &domain.VMSpec{
			Name:     name,
			CPU:      cpu,
			MemoryMB: memoryMB,
			DiskGB:   diskGB,
			Image:    image,
		},
		cluster:   cluster,
		namespace: namespace,
	}, nil
}

// intFromInput handles both float64 (the shape encoding/json produces
// for numbers decoded into interface{}) and int, since Input comes
// from the Item's JSON column by way of the generic propose() payload.
func intFromInput(v interface{}) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	default:
		return 0
	}
}
